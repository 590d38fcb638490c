//go:build !linux

package buttons

import (
	"context"
	"errors"
	"time"
)

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Evdev is only available on linux; elsewhere Start fails.
type Evdev struct {
	Glob   string
	Rescan time.Duration
	Logger logger
}

func NewEvdev(glob string) *Evdev { return &Evdev{Glob: glob, Rescan: time.Second} }

func (e *Evdev) Start(ctx context.Context) error {
	return errors.New("evdev input is only supported on linux")
}

func (e *Evdev) Stop() error         { return nil }
func (e *Evdev) Poll() (State, bool) { return 0, false }
