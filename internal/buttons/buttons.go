package buttons

import (
	"context"
	"strings"
)

// Button is one bit of a controller State.
type Button uint8

const (
	Up Button = 1 << iota
	Down
	Left
	Right
	A
	Start
	Quit
)

var buttonNames = []struct {
	button Button
	name   string
}{
	{Up, "up"},
	{Down, "down"},
	{Left, "left"},
	{Right, "right"},
	{A, "a"},
	{Start, "start"},
	{Quit, "quit"},
}

func (b Button) String() string {
	for _, bn := range buttonNames {
		if bn.button == b {
			return bn.name
		}
	}
	return "unknown"
}

// State is the set of buttons held during one poll.
type State uint8

func (s State) Held(b Button) bool { return s&State(b) != 0 }

func (s State) With(b Button) State { return s | State(b) }

func (s State) Without(b Button) State { return s &^ State(b) }

// String joins the held buttons with "+", the same form ParseState accepts.
func (s State) String() string {
	var parts []string
	for _, bn := range buttonNames {
		if s.Held(bn.button) {
			parts = append(parts, bn.name)
		}
	}
	return strings.Join(parts, "+")
}

// Buttons is a controller polled once per frame. Poll returns false when no
// controller is connected, in which case the state must be ignored.
type Buttons interface {
	Start(ctx context.Context) error
	Stop() error
	Poll() (State, bool)
}

// NoopButtons behaves like a port with nothing plugged in.
type NoopButtons struct{}

func NewNoopButtons() NoopButtons { return NoopButtons{} }

func (NoopButtons) Start(ctx context.Context) error { return nil }
func (NoopButtons) Stop() error                     { return nil }
func (NoopButtons) Poll() (State, bool)             { return 0, false }
