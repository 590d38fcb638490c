package buttons

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrBadScript = errors.New("bad input script")

// Script replays a fixed sequence of controller states, one per Poll.
// Once the sequence is exhausted it reports Quit on every poll.
type Script struct {
	frames []State
	next   int
}

// ParseScript reads comma separated frames; each frame is a "+"-joined list of
// button names, and an empty frame means nothing held. "a,,down+a" holds A,
// then nothing, then Down and A together.
func ParseScript(text string) (*Script, error) {
	s := &Script{}
	text = strings.TrimSpace(text)
	if text == "" {
		return s, nil
	}
	for i, raw := range strings.Split(text, ",") {
		st, err := ParseState(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: frame %d: %v", ErrBadScript, i, err)
		}
		s.frames = append(s.frames, st)
	}
	return s, nil
}

// NewScript replays frames as given.
func NewScript(frames ...State) *Script {
	return &Script{frames: append([]State(nil), frames...)}
}

// ParseState reads a "+"-joined list of button names such as "down+a".
func ParseState(text string) (State, error) {
	var st State
	for _, name := range strings.Split(text, "+") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		b, ok := lookupButton(name)
		if !ok {
			return 0, fmt.Errorf("unknown button %q", name)
		}
		st = st.With(b)
	}
	return st, nil
}

func lookupButton(name string) (Button, bool) {
	for _, bn := range buttonNames {
		if bn.name == name {
			return bn.button, true
		}
	}
	return 0, false
}

func (s *Script) Start(ctx context.Context) error { return nil }
func (s *Script) Stop() error                     { return nil }

func (s *Script) Poll() (State, bool) {
	if s.next >= len(s.frames) {
		return State(Quit), true
	}
	st := s.frames[s.next]
	s.next++
	return st, true
}

// Len is the number of scripted frames.
func (s *Script) Len() int { return len(s.frames) }
