package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rook-computer/tictactoe/internal/buttons"
	"github.com/rook-computer/tictactoe/internal/game"
	"github.com/rook-computer/tictactoe/internal/render"
)

// ErrQuit is returned by Frame once the player asked to leave.
var ErrQuit = errors.New("quit requested")

// App owns the game, the surface and both ends of the frame loop:
// poll input, update the game, render, present.
type App struct {
	Game    *game.State
	Surface *render.Surface
	Render  render.Renderer
	Buttons buttons.Buttons
	Logger  Logger

	// Overlay, when set, adds a debug panel to every frame.
	Overlay *render.Overlay
	FPS     int
	// MaxFrames stops the loop after that many frames; zero means no limit.
	MaxFrames uint64

	movedBefore bool
	frames      uint64
}

func New(renderer render.Renderer, buttonDriver buttons.Buttons) *App {
	return &App{
		Game:    game.New(),
		Surface: render.NewSurface(render.ScreenWidth, render.ScreenHeight),
		Render:  renderer,
		Buttons: buttonDriver,
		Logger:  NoopLogger{},
		FPS:     60,
	}
}

// Start brings up the display and then the controller. Either failing is fatal.
func (app *App) Start(ctx context.Context) error {
	if app.Render == nil {
		app.Render = render.NoopRenderer{}
	}
	if app.Buttons == nil {
		app.Buttons = buttons.NewNoopButtons()
	}
	if err := app.Render.Start(ctx); err != nil {
		return fmt.Errorf("renderer start: %w", err)
	}
	if err := app.Buttons.Start(ctx); err != nil {
		_ = app.Render.Stop()
		return fmt.Errorf("input start: %w", err)
	}
	app.Logger.Infof("app", "started, %dx%d at %d fps", app.Surface.Width(), app.Surface.Height(), app.FPS)
	return nil
}

func (app *App) Stop() error {
	return errors.Join(app.Buttons.Stop(), app.Render.Stop())
}

// Frames is the number of frames presented so far.
func (app *App) Frames() uint64 { return app.frames }

// Step applies one frame of controller state to the game and reports whether
// Quit was held.
//
// The d-pad is edge triggered: a move happens only on a frame where some
// direction is held and none was held on the previous frame. Up wins over Down
// and Left over Right, but one vertical and one horizontal move can happen
// together. A is checked every frame while the game runs; Start only restarts
// an ended game, and is looked at after A.
func (app *App) Step(pad buttons.State) bool {
	moved := false
	if pad.Held(buttons.Up) {
		moved = true
		app.moveCursor(game.Up)
	} else if pad.Held(buttons.Down) {
		moved = true
		app.moveCursor(game.Down)
	}
	if pad.Held(buttons.Left) {
		moved = true
		app.moveCursor(game.Left)
	} else if pad.Held(buttons.Right) {
		moved = true
		app.moveCursor(game.Right)
	}
	app.movedBefore = moved

	if pad.Held(buttons.A) && !app.Game.Ended() {
		player := app.Game.CurrentPlayer
		if app.Game.PlaceAtCursor() {
			app.Logger.Infof("game", "%v placed at %d,%d", player, app.Game.CursorRow, app.Game.CursorCol)
			if app.Game.Ended() {
				app.Logger.Infof("game", "game over: %v", app.Game.Winner)
			}
		}
	}
	if pad.Held(buttons.Start) && app.Game.Ended() {
		app.Game.NewGame()
		app.Logger.Infof("game", "new game")
	}

	return pad.Held(buttons.Quit)
}

func (app *App) moveCursor(d game.Direction) {
	if !app.movedBefore {
		app.Game.MoveCursor(d)
	}
}

// Frame runs one loop iteration. With no controller connected the input step
// is skipped and the frame is still drawn. It returns ErrQuit after presenting
// the frame on which Quit was held or MaxFrames was reached.
func (app *App) Frame() error {
	quit := false
	if pad, ok := app.Buttons.Poll(); ok {
		quit = app.Step(pad)
	}

	render.RenderFrame(app.Surface, app.Game)
	if app.Overlay != nil {
		app.Overlay.Draw(app.Surface, app.overlayLines())
	}
	if err := app.Render.Present(app.Surface.Image()); err != nil {
		app.Logger.Errorf("render", "present failed: %v", err)
	}
	app.frames++

	if quit {
		app.Logger.Infof("app", "quit after %d frames", app.frames)
		return ErrQuit
	}
	if app.MaxFrames > 0 && app.frames >= app.MaxFrames {
		app.Logger.Infof("app", "frame limit %d reached", app.MaxFrames)
		return ErrQuit
	}
	return nil
}

// Run calls Frame at FPS until quit or ctx is done. FPS <= 0 runs unthrottled.
// A quit request ends the loop without error.
func (app *App) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if app.FPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(app.FPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if err := app.Frame(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

func (app *App) overlayLines() []string {
	st := app.Game
	lines := []string{
		fmt.Sprintf("turn  %v", st.CurrentPlayer),
		fmt.Sprintf("phase %v", st.Phase()),
		fmt.Sprintf("cur   %d,%d", st.CursorRow, st.CursorCol),
		fmt.Sprintf("frame %d", app.frames),
	}
	if st.Ended() {
		lines = append(lines, st.Winner.String())
	}
	return lines
}
