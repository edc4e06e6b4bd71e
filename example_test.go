package event_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	event "github.com/florian1345/concurrent-event"
)

func ExampleNewStateful() {
	ev := event.New[int, *event.Stateful[int, int]]()
	id, err := ev.Register(event.NewStateful(func(arg int, sum *int) { *sum += arg }, 0))
	if err != nil {
		panic(err)
	}
	ev.Emit(2)
	ev.Emit(3)

	h, _ := ev.Lookup(id)
	fmt.Println(h.State())
	// Output: 5
}

type printer struct{}

func (printer) React(arg string) {
	fmt.Println(arg)
}

func ExampleHandler() {
	ev := event.New[string, printer]()
	if _, err := ev.Register(printer{}); err != nil {
		panic(err)
	}
	fmt.Println(ev.Emit("Hello, World!"))
	// Output:
	// Hello, World!
	// true
}

func ExampleEvent_Dispatch() {
	ev := event.New[int, event.Handler[int]](event.WithLogger(slog.New(slog.DiscardHandler)))
	id, _ := ev.Register(event.HandlerFunc[int](func(arg int) {
		if arg < 0 {
			panic("negative argument")
		}
	}))

	err := ev.Dispatch(context.Background(), -1)
	var perr *event.PanicError
	if errors.As(err, &perr) {
		fmt.Println(perr.ID == id, perr.Value)
	}
	// Output: true negative argument
}
