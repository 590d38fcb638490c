package layout

import "image"

// Cell returns the square of board cell (row, col) for cells of cellSize pixels
// laid out from the origin.
func Cell(row, col, cellSize int) image.Rectangle {
	x := col * cellSize
	y := row * cellSize
	return image.Rect(x, y, x+cellSize, y+cellSize)
}

// Centre returns the integer centre of rect, rounding towards Min.
func Centre(rect image.Rectangle) image.Point {
	rect = Normalize(rect)
	return image.Pt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/2)
}

// Inset shrinks rect by paddingPx on all sides.
// A padding larger than half the rect collapses it to an empty rect.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	rect = Normalize(rect)
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	if out.Min.X > out.Max.X {
		out.Max.X = out.Min.X
	}
	if out.Min.Y > out.Max.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Border returns the top, bottom, left and right bands of width thicknessPx
// lying just inside rect.
func Border(rect image.Rectangle, thicknessPx int) [4]image.Rectangle {
	rect = Normalize(rect)
	return [4]image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+thicknessPx),
		image.Rect(rect.Min.X, rect.Max.Y-thicknessPx, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+thicknessPx, rect.Max.Y),
		image.Rect(rect.Max.X-thicknessPx, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
}

// FitAspect returns the largest rectangle with the aspect ratio of src that fits
// into dst, centred in dst.
func FitAspect(dst, src image.Rectangle) image.Rectangle {
	dst = Normalize(dst)
	src = Normalize(src)
	if src.Empty() || dst.Empty() {
		return image.Rectangle{Min: dst.Min, Max: dst.Min}
	}
	width := dst.Dx()
	height := width * src.Dy() / src.Dx()
	if height > dst.Dy() {
		height = dst.Dy()
		width = height * src.Dx() / src.Dy()
	}
	x := dst.Min.X + (dst.Dx()-width)/2
	y := dst.Min.Y + (dst.Dy()-height)/2
	return image.Rect(x, y, x+width, y+height)
}
