// Package term runs the game inside a terminal. Each character cell shows two
// frame pixels stacked with the upper half block, and keys stand in for the
// controller.
package term

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gdamore/tcell/v2"
	"github.com/rook-computer/tictactoe/internal/buttons"
	"github.com/rook-computer/tictactoe/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

const halfBlock = '▀'

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Screen is both the renderer and the controller of the terminal backend.
type Screen struct {
	Logger logger

	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	dst    *image.RGBA
}

// New wraps screen; a nil screen opens the controlling terminal on Start.
func New(screen tcell.Screen) *Screen {
	return &Screen{screen: screen}
}

func (s *Screen) Start(ctx context.Context) error {
	if s.events != nil {
		return nil
	}
	if s.screen == nil {
		sc, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		s.screen = sc
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()

	s.events = make(chan tcell.Event, 64)
	s.done = make(chan struct{})
	go pollEvents(s.screen, s.events, s.done)

	w, h := s.screen.Size()
	s.infof("terminal %dx%d cells", w, h)
	return nil
}

// pollEvents feeds events until the screen is finalised.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		default:
			// The frame loop is behind; dropping keys is better than blocking.
		}
	}
}

func (s *Screen) Stop() error {
	if s.events == nil {
		return nil
	}
	close(s.done)
	s.screen.Fini()
	s.events = nil
	s.infof("terminal restored")
	return nil
}

// Poll drains the pending key events. Terminals do not report key release,
// so every key counts as held for exactly the frame that reads it.
func (s *Screen) Poll() (buttons.State, bool) {
	var st buttons.State
	if s.events == nil {
		return st, true
	}
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				st |= KeyState(ev)
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return st, true
		}
	}
}

// Present scales frame into the terminal, two pixel rows per cell row,
// letterboxed in black.
func (s *Screen) Present(frame *image.RGBA) error {
	if s.events == nil {
		return nil
	}
	w, h := s.screen.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	bounds := image.Rect(0, 0, w, h*2)
	if s.dst == nil || s.dst.Rect != bounds {
		s.dst = image.NewRGBA(bounds)
	}
	draw.Draw(s.dst, bounds, image.Black, image.Point{}, draw.Src)
	target := layout.FitAspect(bounds, frame.Rect)
	xdraw.ApproxBiLinear.Scale(s.dst, target, frame, frame.Rect, xdraw.Src, nil)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			style := CellStyle(s.dst.RGBAAt(x, 2*y), s.dst.RGBAAt(x, 2*y+1))
			s.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// CellStyle paints the upper half of a cell with top and the lower with bottom.
func CellStyle(top, bottom color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bottom))
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// KeyState maps one key press to controller buttons: arrows or hjkl move,
// Enter or Space place, r restarts, Esc, q or Ctrl-C quit.
func KeyState(ev *tcell.EventKey) buttons.State {
	var st buttons.State
	switch ev.Key() {
	case tcell.KeyUp:
		return st.With(buttons.Up)
	case tcell.KeyDown:
		return st.With(buttons.Down)
	case tcell.KeyLeft:
		return st.With(buttons.Left)
	case tcell.KeyRight:
		return st.With(buttons.Right)
	case tcell.KeyEnter:
		return st.With(buttons.A)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return st.With(buttons.Quit)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return st.With(buttons.Up)
		case 'j':
			return st.With(buttons.Down)
		case 'h':
			return st.With(buttons.Left)
		case 'l':
			return st.With(buttons.Right)
		case ' ':
			return st.With(buttons.A)
		case 'r':
			return st.With(buttons.Start)
		case 'q':
			return st.With(buttons.Quit)
		}
	}
	return st
}

func (s *Screen) infof(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Infof("term", format, args...)
	}
}
