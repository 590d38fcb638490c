package window

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	w := New(0, 0)

	assert.Equal(t, 1, w.Scale)
	assert.Equal(t, 60, w.FPS)
	assert.Equal(t, 3, New(3, 30).Scale)
}

func TestWindow_Present(t *testing.T) {
	// Given: a started window
	w := New(1, 60)
	require.NoError(t, w.Start(context.Background()))
	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))
	frame.Pix[0] = 0xAB

	// When: the caller reuses its buffer after Present
	require.NoError(t, w.Present(frame))
	frame.Pix[0] = 0

	// Then: the window still holds the presented pixels
	assert.Equal(t, uint8(0xAB), w.frame.Pix[0])
	assert.NoError(t, w.Stop())
}

func TestWindow_Poll(t *testing.T) {
	w := New(1, 60)

	st, ok := w.Poll()

	assert.True(t, ok)
	assert.Zero(t, st)
}
