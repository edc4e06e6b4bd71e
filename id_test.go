package event

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestHandlerIDUniqueness(t *testing.T) {
	ev := New[int, HandlerFunc[int]](quietLogger())
	const n = 10000

	seen := make(map[HandlerID]struct{}, n)
	for range n {
		id, err := ev.Register(func(int) {})
		require.NoError(t, err)
		require.False(t, id.IsZero())
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
	require.Equal(t, n, ev.Len())
}

func TestSeededRandSourceIsDeterministic(t *testing.T) {
	seed := [32]byte{'c', 'o', 'n', 'c', 'u', 'r', 'r', 'e', 'n', 't'}
	a := New[int, HandlerFunc[int]](WithRandSource(rand.NewChaCha8(seed)), quietLogger())
	b := New[int, HandlerFunc[int]](WithRandSource(rand.NewChaCha8(seed)), quietLogger())

	for range 16 {
		ida, err := a.Register(func(int) {})
		require.NoError(t, err)
		idb, err := b.Register(func(int) {})
		require.NoError(t, err)
		require.Equal(t, ida, idb)
	}
}

type constReader byte

func (c constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(c)
	}
	return len(p), nil
}

func TestDuplicateHandlerIDKeepsExisting(t *testing.T) {
	ev := New[int, *Stateful[int, string]](WithRandSource(constReader(0xab)), quietLogger())

	id, err := ev.Register(NewStateful(func(int, *string) {}, "first"))
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("ab", HandlerIDBytes), id.String())

	_, err = ev.Register(NewStateful(func(int, *string) {}, "second"))
	require.ErrorIs(t, err, ErrDuplicateHandlerID)
	require.Equal(t, 1, ev.Len())

	h, ok := ev.Lookup(id)
	require.True(t, ok)
	require.Equal(t, "first", h.State())
}

func TestRandSourceFailure(t *testing.T) {
	errEntropy := errors.New("out of entropy")
	ev := New[int, HandlerFunc[int]](WithRandSource(iotest.ErrReader(errEntropy)), quietLogger())

	id, err := ev.Register(func(int) {})
	require.ErrorIs(t, err, errEntropy)
	require.True(t, id.IsZero())
	require.Equal(t, 0, ev.Len())
}

func TestShortRandSource(t *testing.T) {
	ev := New[int, HandlerFunc[int]](WithRandSource(strings.NewReader("too short")), quietLogger())
	_, err := ev.Register(func(int) {})
	require.Error(t, err)
	require.Equal(t, 0, ev.Len())
}

func TestParseHandlerID(t *testing.T) {
	ev := New[int, HandlerFunc[int]](quietLogger())
	id, err := ev.Register(func(int) {})
	require.NoError(t, err)

	s := id.String()
	require.Len(t, s, 2*HandlerIDBytes)
	parsed, err := ParseHandlerID(s)
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, ok := ev.Lookup(parsed)
	require.True(t, ok)
}

func TestParseHandlerIDInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"abcd",
		strings.Repeat("a", 2*HandlerIDBytes+1),
		strings.Repeat("zz", HandlerIDBytes),
	} {
		_, err := ParseHandlerID(s)
		require.ErrorIs(t, err, ErrInvalidHandlerID, "input %q", s)
	}
}
