package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 160, 160), Cell(0, 0, 160))
	assert.Equal(t, image.Rect(320, 160, 480, 320), Cell(1, 2, 160))
}

func TestCentre(t *testing.T) {
	assert.Equal(t, image.Pt(80, 80), Centre(Cell(0, 0, 160)))
	assert.Equal(t, image.Pt(400, 240), Centre(Cell(1, 2, 160)))
	assert.Equal(t, image.Pt(2, 2), Centre(image.Rect(5, 5, 0, 0)))
}

func TestInset(t *testing.T) {
	t.Run("Shrinks every side", func(t *testing.T) {
		assert.Equal(t, image.Rect(10, 10, 150, 150), Inset(image.Rect(0, 0, 160, 160), 10))
	})

	t.Run("Non-positive padding is identity", func(t *testing.T) {
		r := image.Rect(1, 2, 3, 4)
		assert.Equal(t, r, Inset(r, 0))
		assert.Equal(t, r, Inset(r, -3))
	})

	t.Run("Oversized padding collapses", func(t *testing.T) {
		out := Inset(image.Rect(0, 0, 10, 10), 8)
		assert.True(t, out.Empty())
		assert.Equal(t, 0, out.Dx())
	})
}

func TestBorder(t *testing.T) {
	bands := Border(image.Rect(160, 0, 320, 160), 5)

	assert.Equal(t, image.Rect(160, 0, 320, 5), bands[0])
	assert.Equal(t, image.Rect(160, 155, 320, 160), bands[1])
	assert.Equal(t, image.Rect(160, 0, 165, 160), bands[2])
	assert.Equal(t, image.Rect(315, 0, 320, 160), bands[3])
}

func TestFitAspect(t *testing.T) {
	src := image.Rect(0, 0, 640, 480)

	t.Run("Wide destination letterboxes sideways", func(t *testing.T) {
		assert.Equal(t, image.Rect(240, 0, 1680, 1080), FitAspect(image.Rect(0, 0, 1920, 1080), src))
	})

	t.Run("Tall destination letterboxes vertically", func(t *testing.T) {
		assert.Equal(t, image.Rect(0, 40, 640, 520), FitAspect(image.Rect(0, 0, 640, 560), src))
	})

	t.Run("Same aspect fills", func(t *testing.T) {
		assert.Equal(t, image.Rect(0, 0, 1280, 960), FitAspect(image.Rect(0, 0, 1280, 960), src))
	})

	t.Run("Empty source", func(t *testing.T) {
		assert.True(t, FitAspect(image.Rect(0, 0, 10, 10), image.Rectangle{}).Empty())
	})
}
