package render

import (
	"context"
	"image"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/tictactoe/internal/render/layout"
	"github.com/rook-computer/tictactoe/internal/system"
	xdraw "golang.org/x/image/draw"
)

// FBRenderer presents frames on a Linux framebuffer device, scaled with
// nearest-neighbour sampling and letterboxed to keep the frame's aspect ratio.
type FBRenderer struct {
	Device string
	Logger logger

	fbDev   *fb.Device
	target  image.Rectangle
	console *system.Console
}

func NewFBRenderer(device string) *FBRenderer {
	if device == "" {
		device = "/dev/fb0"
	}
	return &FBRenderer{Device: device}
}

func (r *FBRenderer) Start(ctx context.Context) error {
	dev, err := fb.Open(r.Device)
	if err != nil {
		return err
	}
	r.fbDev = dev

	bounds := dev.Bounds()
	r.target = layout.FitAspect(bounds, image.Rect(0, 0, ScreenWidth, ScreenHeight))
	draw.Draw(dev, bounds, image.Black, image.Point{}, draw.Src)
	if r.Logger != nil {
		r.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d target=%v", r.Device, bounds.Dx(), bounds.Dy(), r.target)
	}

	// Graphics mode hides the blinking console cursor; failure is not fatal.
	r.console = &system.Console{Logger: r.Logger}
	r.console.Acquire()
	return nil
}

func (r *FBRenderer) Stop() error {
	if r.console != nil {
		r.console.Release()
		r.console = nil
	}
	if r.fbDev != nil {
		r.fbDev.Close()
		r.fbDev = nil
	}
	return nil
}

func (r *FBRenderer) Present(frame *image.RGBA) error {
	if r.fbDev == nil {
		return nil
	}
	if r.target == frame.Rect {
		draw.Draw(r.fbDev, r.target, frame, frame.Rect.Min, draw.Src)
		return nil
	}
	xdraw.NearestNeighbor.Scale(r.fbDev, r.target, frame, frame.Rect, xdraw.Src, nil)
	return nil
}
