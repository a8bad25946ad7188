package park

import (
	"fmt"
	"time"
)

// Event is something a visitor is told about another visitor.
type Event interface {
	// Message is the one-line announcement shown to the receiver.
	Message() string
	parkEvent()
}

// ArrivedEvent is sent when someone connects.
type ArrivedEvent struct {
	User string
}

func (e ArrivedEvent) Message() string { return e.User + " arrived in the park" }
func (ArrivedEvent) parkEvent()        {}

// LeftEvent is sent when someone disconnects.
type LeftEvent struct {
	User string
}

func (e LeftEvent) Message() string { return e.User + " left the park" }
func (LeftEvent) parkEvent()        {}

// RunEndedEvent is sent when someone's pet runs out of a stat.
type RunEndedEvent struct {
	User     string
	Pet      string
	Survived time.Duration
	Cause    string
}

func (e RunEndedEvent) Message() string {
	return fmt.Sprintf("%s (%s) lasted %.1fs, out of %s", e.Pet, e.User, e.Survived.Seconds(), e.Cause)
}
func (RunEndedEvent) parkEvent() {}
