package event

// Handler reacts to the argument of an emitted event. React may mutate state
// owned by the handler; it is never called concurrently with itself.
type Handler[A any] interface {
	React(arg A)
}

// HandlerFunc adapts a plain function to a Handler with no state of its own.
type HandlerFunc[A any] func(arg A)

func (f HandlerFunc[A]) React(arg A) {
	f(arg)
}

// Stateful is a Handler which carries a state value across emissions. The
// function receives a pointer to the state on every event.
type Stateful[A, S any] struct {
	fn    func(arg A, state *S)
	state S
}

// NewStateful returns a handler which calls fn with initial as the state for
// the first event it receives.
func NewStateful[A, S any](fn func(arg A, state *S), initial S) *Stateful[A, S] {
	return &Stateful[A, S]{fn: fn, state: initial}
}

func (s *Stateful[A, S]) React(arg A) {
	s.fn(arg, &s.state)
}

// State returns a copy of the current state.
func (s *Stateful[A, S]) State() S {
	return s.state
}
