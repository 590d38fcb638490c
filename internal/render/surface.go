package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is a fixed-size RGBA pixel buffer. Every write is clipped to its bounds.
type Surface struct {
	img *image.RGBA
}

func NewSurface(width, height int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (s *Surface) Width() int              { return s.img.Rect.Dx() }
func (s *Surface) Height() int             { return s.img.Rect.Dy() }
func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }

// Image exposes the backing buffer to presenters.
func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) RGBAAt(x, y int) color.RGBA { return s.img.RGBAAt(x, y) }

// SetPixel overwrites one pixel. Coordinates outside the surface are ignored.
func (s *Surface) SetPixel(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return
	}
	s.img.SetRGBA(x, y, c)
}

// FillRect overwrites the part of rect that lies on the surface.
func (s *Surface) FillRect(rect image.Rectangle, c color.RGBA) {
	rect = rect.Intersect(s.img.Rect)
	if rect.Empty() {
		return
	}
	draw.Draw(s.img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func (s *Surface) Clear(c color.RGBA) {
	s.FillRect(s.img.Rect, c)
}
