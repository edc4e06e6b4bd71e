package event

import (
	"context"
	"errors"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// Emit invokes all currently registered handlers in parallel with arg and
// waits for them to return. It returns true if every handler returned
// normally and false if any of them panicked. A panicking handler never
// keeps the others from running.
func (e *Event[A, H]) Emit(arg A) bool {
	return e.Dispatch(context.Background(), arg) == nil
}

// Dispatch works like Emit, but reports which handlers failed: the result is
// nil, or a join of one *PanicError per handler that panicked. ctx is only
// used for tracing; it does not interrupt running handlers, so a handler
// which never returns blocks Dispatch forever.
func (e *Event[A, H]) Dispatch(ctx context.Context, arg A) error {
	e.once.Do(e.init)

	e.emitting.Lock()
	defer e.emitting.Unlock()

	entries := e.snapshot()
	ctx, span, start := e.tel.start(ctx, len(entries))

	outcomes := make([]error, len(entries))
	var g errgroup.Group
	for i, ent := range entries {
		g.Go(func() error {
			react(ent.id, ent.handler, arg, &outcomes[i])
			return outcomes[i]
		})
	}
	// Wait only reports the first failure, and misses handlers that called
	// runtime.Goexit, so the outcomes are authoritative.
	_ = g.Wait()

	var failed []*PanicError
	for _, err := range outcomes {
		if perr, ok := err.(*PanicError); ok {
			failed = append(failed, perr)
			e.log.ErrorContext(ctx, "event: handler panicked",
				"handler", perr.ID.short(),
				"panic", perr.Value,
				"stack", string(perr.Stack),
			)
		}
	}
	e.tel.done(ctx, span, start, failed)
	if len(failed) == 0 {
		return nil
	}
	return errors.Join(asErrors(failed)...)
}

// react runs one handler and stores a *PanicError in out if it does not
// return normally. out is written from a deferred call so runtime.Goexit is
// caught as well as panic.
func react[A any, H Handler[A]](id HandlerID, handler H, arg A, out *error) {
	returned := false
	defer func() {
		if r := recover(); r != nil {
			*out = &PanicError{ID: id, Value: r, Stack: debug.Stack()}
		} else if !returned {
			*out = &PanicError{ID: id, Value: errHandlerExited, Stack: debug.Stack()}
		}
	}()
	handler.React(arg)
	returned = true
}
