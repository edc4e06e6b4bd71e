package event

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"sync"
)

// Event manages handlers of type H, which all accept arguments of type A.
// Use H = Handler[A] to register handlers of different types with one Event.
//
// The zero value is an empty Event using crypto/rand, slog.Default() and the
// global otel providers.
type Event[A any, H Handler[A]] struct {
	l        sync.RWMutex
	handlers map[HandlerID]H

	// emitting serialises emissions so a handler is never run twice at once.
	emitting sync.Mutex

	once sync.Once
	opts options
	log  *slog.Logger
	tel  *telemetry
}

// New creates an Event without handlers.
func New[A any, H Handler[A]](opts ...Option) *Event[A, H] {
	e := new(Event[A, H])
	for _, opt := range opts {
		opt(&e.opts)
	}
	e.once.Do(e.init)
	return e
}

func (e *Event[A, H]) init() {
	if e.opts.rand == nil {
		e.opts.rand = rand.Reader
	}
	e.log = e.opts.logger
	if e.log == nil {
		e.log = slog.Default()
	}
	e.tel = newTelemetry(e.opts.tracer, e.opts.meter)
}

// Register adds a handler which is notified of all future emissions and
// returns the ID it can be looked up with. Registering during an emission is
// allowed; the handler takes part from the next emission on.
//
// If the drawn ID is already in use, Register fails with
// ErrDuplicateHandlerID and the existing handler stays registered.
func (e *Event[A, H]) Register(handler H) (HandlerID, error) {
	e.once.Do(e.init)

	e.l.Lock()
	defer e.l.Unlock()

	id, err := newHandlerID(e.opts.rand)
	if err != nil {
		return HandlerID{}, err
	}
	if _, ok := e.handlers[id]; ok {
		return HandlerID{}, fmt.Errorf("%w: %s", ErrDuplicateHandlerID, id.short())
	}
	if e.handlers == nil {
		e.handlers = map[HandlerID]H{}
	}
	e.handlers[id] = handler

	e.tel.registered.Add(context.Background(), 1)
	e.log.Debug("event: handler registered", "handler", id.short(), "handlers", len(e.handlers))
	return id, nil
}

// Lookup returns the handler registered under id. The second result is false
// if there is none.
//
// A handler's state is written by its own goroutine during an emission, so
// inspect it between emissions.
func (e *Event[A, H]) Lookup(id HandlerID) (H, bool) {
	e.l.RLock()
	defer e.l.RUnlock()
	h, ok := e.handlers[id]
	return h, ok
}

// Len returns the number of registered handlers.
func (e *Event[A, H]) Len() int {
	e.l.RLock()
	defer e.l.RUnlock()
	return len(e.handlers)
}

type entry[H any] struct {
	id      HandlerID
	handler H
}

// snapshot copies the current handlers so an emission does not hold the lock
// while they run.
func (e *Event[A, H]) snapshot() []entry[H] {
	e.l.RLock()
	defer e.l.RUnlock()
	entries := make([]entry[H], 0, len(e.handlers))
	for id, h := range e.handlers {
		entries = append(entries, entry[H]{id: id, handler: h})
	}
	return entries
}
