package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
)

// Renderer presents finished frames. Start must succeed before the first
// Present; a failed Start is a fatal startup error.
type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	Present(frame *image.RGBA) error
}

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// NoopRenderer discards every frame.
type NoopRenderer struct{}

func (NoopRenderer) Start(ctx context.Context) error { return nil }
func (NoopRenderer) Stop() error                     { return nil }
func (NoopRenderer) Present(*image.RGBA) error       { return nil }

// SnapshotRenderer keeps a copy of the last presented frame and, when Path is
// set, writes it as a PNG on Stop.
type SnapshotRenderer struct {
	Path   string
	Logger logger

	last *image.RGBA
}

func NewSnapshotRenderer(path string) *SnapshotRenderer { return &SnapshotRenderer{Path: path} }

func (r *SnapshotRenderer) Start(ctx context.Context) error { return nil }

func (r *SnapshotRenderer) Present(frame *image.RGBA) error {
	if r.last == nil || r.last.Rect != frame.Rect {
		r.last = image.NewRGBA(frame.Rect)
	}
	copy(r.last.Pix, frame.Pix)
	return nil
}

// Last returns the most recent frame, or nil before the first Present.
func (r *SnapshotRenderer) Last() *image.RGBA { return r.last }

func (r *SnapshotRenderer) Stop() error {
	if r.Path == "" || r.last == nil {
		return nil
	}
	if err := WritePNG(r.Path, r.last); err != nil {
		return err
	}
	if r.Logger != nil {
		r.Logger.Infof("snapshot", "wrote %s", r.Path)
	}
	return nil
}

func WritePNG(path string, img image.Image) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
