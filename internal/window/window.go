// Package window shows the game in a desktop window and reads the keyboard and
// any standard-layout gamepad as the controller.
package window

import (
	"context"
	"errors"
	"image"

	"github.com/rook-computer/tictactoe/internal/buttons"
)

const Title = "tictactoe"

// ErrUnavailable is returned by Run in builds without window support.
var ErrUnavailable = errors.New("window mode requires cgo (build with CGO_ENABLED=1)")

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Window owns the event loop once Run is called; the game is driven from its
// update callback instead of a ticker.
type Window struct {
	Scale  int
	FPS    int
	Logger logger

	frame *image.RGBA
	pad   buttons.State
}

func New(scale, fps int) *Window {
	if scale < 1 {
		scale = 1
	}
	if fps <= 0 {
		fps = 60
	}
	return &Window{Scale: scale, FPS: fps}
}

func (w *Window) Start(ctx context.Context) error { return nil }
func (w *Window) Stop() error                     { return nil }

// Present keeps a copy of frame for the next draw callback.
func (w *Window) Present(frame *image.RGBA) error {
	if w.frame == nil || w.frame.Rect != frame.Rect {
		w.frame = image.NewRGBA(frame.Rect)
	}
	copy(w.frame.Pix, frame.Pix)
	return nil
}

// Poll returns the state sampled at the start of the current update. The
// keyboard is always there, so a controller is always connected.
func (w *Window) Poll() (buttons.State, bool) { return w.pad, true }

func (w *Window) infof(format string, args ...interface{}) {
	if w.Logger != nil {
		w.Logger.Infof("window", format, args...)
	}
}
