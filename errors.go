package event

import (
	"errors"
	"fmt"
)

// errHandlerExited is the PanicError value for a handler that called
// runtime.Goexit instead of returning.
var errHandlerExited = errors.New("event: handler exited without returning")

// PanicError describes a handler which terminated abnormally during an
// emission.
type PanicError struct {
	// ID of the failed handler.
	ID HandlerID
	// Value passed to panic.
	Value any
	// Stack of the handler's goroutine at the time of the panic.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("event: handler %s panicked: %v", e.ID.short(), e.Value)
}

// Unwrap exposes the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
