//go:build !cgo

package window

import "context"

func (w *Window) Run(ctx context.Context, step func() error) error {
	return ErrUnavailable
}
