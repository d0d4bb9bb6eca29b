package event_test

import (
	"fmt"

	"github.com/yaoapp/emitter/event"
)

type lecturer struct{ name string }

func (l *lecturer) react(what string) func() {
	return func() { fmt.Printf("%s: %s\n", l.name, what) }
}

func Example() {
	ann := &lecturer{name: "ann"}
	bob := &lecturer{name: "bob"}

	em := event.New().
		On("begin", ann, ann.react("begin")).
		On("slide", bob, bob.react("slide")).
		On("slide.funny", ann, ann.react("slide.funny"))

	em.Emit("begin").Emit("slide.funny")

	em.Off("slide", ann)
	em.Emit("slide.funny")

	// Output:
	// ann: begin
	// ann: slide.funny
	// bob: slide
	// bob: slide
}

func ExampleEmitter_Several() {
	em := event.New().Several("tick", nil, func() { fmt.Println("tick") }, 2)
	em.Emit("tick").Emit("tick").Emit("tick")

	// Output:
	// tick
	// tick
}

func ExampleEmitter_Through() {
	n := 0
	em := event.New().Through("tick", nil, func() { fmt.Println("tick", n) }, 2)
	for n = 1; n <= 5; n++ {
		em.Emit("tick")
	}

	// Output:
	// tick 1
	// tick 3
	// tick 5
}

func ExampleBind() {
	ann := &lecturer{name: "ann"}
	em := event.New().On("end", ann, event.Bind(ann, func(l *lecturer) {
		fmt.Println(l.name, "leaves")
	}))
	em.Emit("end")

	// Output:
	// ann leaves
}
