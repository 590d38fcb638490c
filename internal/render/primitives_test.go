package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// lit returns every pixel of s that equals c.
func lit(s *Surface, c color.Color) map[image.Point]bool {
	out := map[image.Point]bool{}
	b := s.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r1, g1, b1, a1 := s.RGBAAt(x, y).RGBA()
			r2, g2, b2, a2 := c.RGBA()
			if r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2 {
				out[image.Pt(x, y)] = true
			}
		}
	}
	return out
}

func TestDrawCircle(t *testing.T) {
	t.Run("Cell sized circle", func(t *testing.T) {
		s := NewSurface(ScreenWidth, ScreenHeight)
		cx, cy, r := 240, 240, CircleRadius

		DrawCircle(s, cx, cy, r, OColor)
		pixels := lit(s, OColor)

		// Then: the four axis points start one pixel inside the radius
		assert.True(t, pixels[image.Pt(cx+r-1, cy)])
		assert.True(t, pixels[image.Pt(cx-r+1, cy)])
		assert.True(t, pixels[image.Pt(cx, cy+r-1)])
		assert.True(t, pixels[image.Pt(cx, cy-r+1)])
		assert.False(t, pixels[image.Pt(cx, cy)])

		// And: the outline is eight-way symmetric and close to the radius
		for p := range pixels {
			dx, dy := p.X-cx, p.Y-cy
			for _, m := range []image.Point{{dx, -dy}, {-dx, dy}, {-dx, -dy}, {dy, dx}, {-dy, -dx}} {
				assert.True(t, pixels[image.Pt(cx+m.X, cy+m.Y)], "mirror of %v", p)
			}
			d := math.Hypot(float64(dx), float64(dy))
			assert.InDelta(t, float64(r)-0.5, d, 0.75, "pixel %v", p)
		}
	})

	t.Run("Radius one plots the centre", func(t *testing.T) {
		s := NewSurface(10, 10)

		DrawCircle(s, 5, 5, 1, OColor)

		assert.Equal(t, map[image.Point]bool{image.Pt(5, 5): true}, lit(s, OColor))
	})

	t.Run("Clipped at the corner", func(t *testing.T) {
		s := NewSurface(ScreenWidth, ScreenHeight)

		assert.NotPanics(t, func() { DrawCircle(s, 0, 0, 15, OColor) })
		assert.True(t, lit(s, OColor)[image.Pt(14, 0)])
	})
}

func TestDrawX(t *testing.T) {
	t.Run("Inset diagonals in a cell", func(t *testing.T) {
		s := NewSurface(ScreenWidth, ScreenHeight)

		DrawX(s, 1, 2, CellSize, XColor)
		pixels := lit(s, XColor)

		left, top := 2*CellSize+MarkInset, CellSize+MarkInset
		size := CellSize - 2*MarkInset
		assert.Len(t, pixels, 2*size)
		assert.True(t, pixels[image.Pt(left, top)])
		assert.True(t, pixels[image.Pt(left+size-1, top+size-1)])
		assert.True(t, pixels[image.Pt(left, top+size-1)])
		assert.True(t, pixels[image.Pt(left+size-1, top)])
		assert.False(t, pixels[image.Pt(left-1, top-1)])
	})

	t.Run("At a pixel origin", func(t *testing.T) {
		s := NewSurface(ScreenWidth, ScreenHeight)

		DrawXAt(s, 480, 0, 30, XColor)
		pixels := lit(s, XColor)

		assert.Len(t, pixels, 60)
		assert.True(t, pixels[image.Pt(480, 0)])
		assert.True(t, pixels[image.Pt(480, 29)])
		assert.True(t, pixels[image.Pt(509, 29)])
	})
}

// First-octant offsets (x >= y) of the outlines DrawCircle must produce.
var circleOctants = map[int][]image.Point{
	15: {{14, 0}, {14, 1}, {14, 2}, {14, 3}, {14, 4}, {14, 5}, {13, 6}, {13, 7}, {12, 8}, {12, 9}, {11, 10}},
	70: {
		{69, 0}, {69, 1}, {69, 2}, {69, 3}, {69, 4}, {69, 5}, {69, 6}, {69, 7}, {69, 8}, {69, 9},
		{69, 10}, {69, 11}, {68, 12}, {68, 13}, {68, 14}, {68, 15}, {68, 16}, {67, 17}, {67, 18}, {67, 19},
		{67, 20}, {66, 21}, {66, 22}, {66, 23}, {65, 24}, {65, 25}, {64, 26}, {64, 27}, {64, 28}, {63, 29},
		{63, 30}, {62, 31}, {62, 32}, {61, 33}, {61, 34}, {60, 35}, {60, 36}, {59, 37}, {58, 38}, {58, 39},
		{57, 40}, {56, 41}, {56, 42}, {55, 43}, {54, 44}, {53, 45}, {52, 46}, {51, 47}, {50, 48}, {49, 49},
	},
}

func TestDrawCircle_ExactOutline(t *testing.T) {
	for _, r := range []int{15, 70} {
		t.Run(fmt.Sprintf("Radius %d", r), func(t *testing.T) {
			// Given: the octant mirrored eight ways around the centre
			cx, cy := 240, 240
			want := map[image.Point]bool{}
			for _, p := range circleOctants[r] {
				for _, m := range []image.Point{
					{p.X, p.Y}, {p.X, -p.Y}, {-p.X, p.Y}, {-p.X, -p.Y},
					{p.Y, p.X}, {p.Y, -p.X}, {-p.Y, p.X}, {-p.Y, -p.X},
				} {
					want[image.Pt(cx+m.X, cy+m.Y)] = true
				}
			}
			s := NewSurface(ScreenWidth, ScreenHeight)

			// When
			DrawCircle(s, cx, cy, r, OColor)

			// Then: exactly those pixels are lit
			assert.Equal(t, want, lit(s, OColor))
		})
	}
}
