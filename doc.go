// Package event implements an event which runs all of its registered
// handlers concurrently every time it is emitted. Each handler is assigned a
// random HandlerID on registration, with which it can be looked up later to
// inspect any state it has accumulated.
//
// IDs are 256 random bits drawn from crypto/rand, so they are infeasible to
// guess. Uniqueness is probabilistic; a collision is reported as
// ErrDuplicateHandlerID rather than overwriting the existing handler.
//
// # Register handlers
//
// Any type with a React method is a Handler. Two conveniences are provided, a
// stateless HandlerFunc and a Stateful handler which owns a state value:
//
//	ev := event.New[int, *event.Stateful[int, int]]()
//	id, err := ev.Register(event.NewStateful(func(arg int, sum *int) {
//	    *sum += arg
//	}, 0))
//
// # Emit
//
// Emit hands the argument to every registered handler, each on its own
// goroutine, and blocks until all of them have returned:
//
//	ok := ev.Emit(5)
//	h, _ := ev.Lookup(id)
//	fmt.Println(ok, h.State()) // true 5
//
// A handler that panics does not stop the others. Emit reports it by
// returning false; Dispatch returns the recovered panics as errors.
//
// # Mixing handler kinds
//
// To register different handler types with one event, instantiate it with the
// Handler interface itself:
//
//	ev := event.New[string, event.Handler[string]]()
//	ev.Register(event.HandlerFunc[string](func(s string) { fmt.Println(s) }))
//	ev.Register(event.NewStateful(func(s string, n *int) { *n++ }, 0))
package event
