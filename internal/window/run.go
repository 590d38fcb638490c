//go:build cgo

package window

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rook-computer/tictactoe/internal/buttons"
	"github.com/rook-computer/tictactoe/internal/render"
)

// Run opens the window and calls step once per tick until step fails, ctx is
// done or the window is closed. It blocks and must run on the main goroutine.
func (w *Window) Run(ctx context.Context, step func() error) error {
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowSize(render.ScreenWidth*w.Scale, render.ScreenHeight*w.Scale)
	ebiten.SetTPS(w.FPS)
	w.infof("window %dx%d at %d tps", render.ScreenWidth*w.Scale, render.ScreenHeight*w.Scale, w.FPS)
	return ebiten.RunGame(&game{w: w, ctx: ctx, step: step})
}

type game struct {
	w    *Window
	ctx  context.Context
	step func() error
	img  *ebiten.Image
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.w.pad = readKeyboard() | readGamepads()
	return g.step()
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.w.frame
	if frame == nil {
		return
	}
	if g.img == nil || g.img.Bounds() != frame.Rect {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(frame.Rect.Dx(), frame.Rect.Dy())
	}
	g.img.WritePixels(frame.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.ScreenWidth, render.ScreenHeight
}

var keyButtons = []struct {
	key    ebiten.Key
	button buttons.Button
}{
	{ebiten.KeyArrowUp, buttons.Up},
	{ebiten.KeyArrowDown, buttons.Down},
	{ebiten.KeyArrowLeft, buttons.Left},
	{ebiten.KeyArrowRight, buttons.Right},
	{ebiten.KeyEnter, buttons.A},
	{ebiten.KeySpace, buttons.A},
	{ebiten.KeyR, buttons.Start},
	{ebiten.KeyEscape, buttons.Quit},
	{ebiten.KeyQ, buttons.Quit},
}

var padButtons = []struct {
	button ebiten.StandardGamepadButton
	state  buttons.Button
}{
	{ebiten.StandardGamepadButtonLeftTop, buttons.Up},
	{ebiten.StandardGamepadButtonLeftBottom, buttons.Down},
	{ebiten.StandardGamepadButtonLeftLeft, buttons.Left},
	{ebiten.StandardGamepadButtonLeftRight, buttons.Right},
	{ebiten.StandardGamepadButtonRightBottom, buttons.A},
	{ebiten.StandardGamepadButtonCenterRight, buttons.Start},
}

func readKeyboard() buttons.State {
	var st buttons.State
	for _, kb := range keyButtons {
		if ebiten.IsKeyPressed(kb.key) {
			st = st.With(kb.button)
		}
	}
	return st
}

// readGamepads merges every gamepad with a standard layout into one state.
func readGamepads() buttons.State {
	var st buttons.State
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, pb := range padButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, pb.button) {
				st = st.With(pb.state)
			}
		}
	}
	return st
}
