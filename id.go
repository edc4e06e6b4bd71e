package event

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// HandlerIDBytes is the number of random bytes in a HandlerID. It is large
// enough to resist random as well as deliberately crafted collisions.
const HandlerIDBytes = 32

var (
	// ErrInvalidHandlerID is returned when parsing a malformed HandlerID.
	ErrInvalidHandlerID = errors.New("event: invalid handler id")

	// ErrDuplicateHandlerID is returned by Register when the freshly drawn
	// ID is already taken. The registered handler is left untouched.
	ErrDuplicateHandlerID = errors.New("event: duplicate handler id")
)

// HandlerID identifies a registered handler. It consists of random bytes, so
// uniqueness depends on the quality of the random source.
type HandlerID [HandlerIDBytes]byte

func newHandlerID(r io.Reader) (HandlerID, error) {
	var id HandlerID
	if _, err := io.ReadFull(r, id[:]); err != nil {
		return HandlerID{}, fmt.Errorf("event: generating handler id: %w", err)
	}
	return id, nil
}

// ParseHandlerID parses the hex form produced by HandlerID.String.
func ParseHandlerID(s string) (HandlerID, error) {
	var id HandlerID
	if hex.DecodedLen(len(s)) != HandlerIDBytes {
		return HandlerID{}, fmt.Errorf("%w: want %d hex characters, got %d", ErrInvalidHandlerID, hex.EncodedLen(HandlerIDBytes), len(s))
	}
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return HandlerID{}, fmt.Errorf("%w: %w", ErrInvalidHandlerID, err)
	}
	return id, nil
}

func (id HandlerID) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether id is the zero value, which Register never hands out
// in practice.
func (id HandlerID) IsZero() bool {
	return id == HandlerID{}
}

// short is used in log and error messages where the full id is noise.
func (id HandlerID) short() string {
	return hex.EncodeToString(id[:4])
}
