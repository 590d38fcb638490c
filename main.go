package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/tictactoe/internal/app"
	"github.com/rook-computer/tictactoe/internal/buttons"
	"github.com/rook-computer/tictactoe/internal/config"
	"github.com/rook-computer/tictactoe/internal/render"
	"github.com/rook-computer/tictactoe/internal/system"
	"github.com/rook-computer/tictactoe/internal/term"
	"github.com/rook-computer/tictactoe/internal/window"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "display and input backend: fb, window, term or headless")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second, 0 runs unthrottled")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging to the debug log file and the on-screen overlay")
	flag.StringVar(&cfg.Framebuffer.Device, "fb", cfg.Framebuffer.Device, "framebuffer device")
	flag.StringVar(&cfg.Framebuffer.InputGlob, "input", cfg.Framebuffer.InputGlob, "glob of evdev input devices")
	flag.IntVar(&cfg.Window.Scale, "scale", cfg.Window.Scale, "window scale factor")
	flag.Uint64Var(&cfg.Headless.Frames, "frames", cfg.Headless.Frames, "stop after this many frames, 0 for no limit")
	flag.StringVar(&cfg.Headless.Script, "script", cfg.Headless.Script, "headless input script, e.g. \"a,down,a\"")
	flag.StringVar(&cfg.Headless.Snapshot, "snapshot", cfg.Headless.Snapshot, "write the last headless frame to this PNG file")
	flag.StringVar(&cfg.Log.StdioLog, "stdio-log", cfg.Log.StdioLog, "redirect stdout+stderr (including panics) to this file")
	flag.StringVar(&cfg.OverlayFont, "overlay-font", cfg.OverlayFont, "TTF/OTF font for the debug overlay")
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintln(out, config.Usage())
	}
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	// Best-effort: keep crash output readable when the console is left in graphics mode.
	if restoreStdio, err := system.RedirectStdIO(cfg.Log.StdioLog); err != nil {
		fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
	} else {
		defer restoreStdio()
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, win, err := newApp(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if err := a.Start(ctx); err != nil {
		logger.Errorf("main", "start failed: %v", err)
		fmt.Fprintf(os.Stderr, "unable to set video mode: %v\n", err)
		return 1
	}

	if win != nil {
		err = win.Run(ctx, a.Frame)
	} else {
		err = a.Run(ctx)
	}
	if errors.Is(err, app.ErrQuit) || errors.Is(err, context.Canceled) {
		err = nil
	}

	if stopErr := a.Stop(); stopErr != nil {
		logger.Errorf("main", "stop failed: %v", stopErr)
	}
	if err != nil {
		logger.Errorf("main", "loop failed: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger.Infof("main", "exit after %d frames", a.Frames())
	return 0
}

// newLogger writes timestamped lines to the debug log file when debug is on,
// otherwise structured logs to stderr. The terminal backend owns the screen,
// so its non-debug logs are dropped.
func newLogger(cfg *config.Config) (app.Logger, func()) {
	if cfg.Debug {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger := app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
			return logger, func() { _ = f.Close() }
		}
		fmt.Fprintln(os.Stderr, "debug log open error:", err)
	}

	var w io.Writer = os.Stderr
	if cfg.Backend == config.BackendTerminal {
		w = io.Discard
	}
	return app.NewSlogLogger(app.NewSlog(w, cfg.Log.Level, cfg.Log.Format)), func() {}
}

// newApp wires the configured backend. The window backend drives the loop
// itself and is returned separately.
func newApp(cfg *config.Config, logger app.Logger) (*app.App, *window.Window, error) {
	var (
		renderer render.Renderer
		input    buttons.Buttons
		win      *window.Window
	)

	switch cfg.Backend {
	case config.BackendFramebuffer:
		fb := render.NewFBRenderer(cfg.Framebuffer.Device)
		fb.Logger = logger
		ev := buttons.NewEvdev(cfg.Framebuffer.InputGlob)
		ev.Logger = logger
		renderer, input = fb, ev
	case config.BackendWindow:
		win = window.New(cfg.Window.Scale, cfg.FPS)
		win.Logger = logger
		renderer, input = win, win
	case config.BackendTerminal:
		screen := term.New(nil)
		screen.Logger = logger
		renderer, input = screen, screen
	case config.BackendHeadless:
		snap := render.NewSnapshotRenderer(cfg.Headless.Snapshot)
		snap.Logger = logger
		renderer = snap
		if cfg.Headless.Script != "" {
			script, err := buttons.ParseScript(cfg.Headless.Script)
			if err != nil {
				return nil, nil, err
			}
			input = script
		}
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}

	a := app.New(renderer, input)
	a.Logger = logger
	a.FPS = cfg.FPS
	a.MaxFrames = cfg.Headless.Frames
	if cfg.Debug {
		a.Overlay = render.NewOverlay(cfg.OverlayFont, logger)
	}
	return a, win, nil
}
