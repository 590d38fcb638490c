package render

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	overlayFontSize = 14
	overlayMargin   = 10
)

// Overlay draws debug text in the empty panel right of the board.
type Overlay struct {
	face font.Face
}

// NewOverlay uses the built-in 7x13 face, or the font at fontPath when given.
// A font that cannot be read or parsed falls back to the built-in face.
func NewOverlay(fontPath string, log logger) *Overlay {
	if fontPath == "" {
		return &Overlay{face: basicfont.Face7x13}
	}
	face, err := loadFace(fontPath)
	if err != nil {
		if log != nil {
			log.Errorf("overlay", "font %s unusable, using basicfont: %v", fontPath, err)
		}
		return &Overlay{face: basicfont.Face7x13}
	}
	if log != nil {
		log.Infof("overlay", "loaded %s at %dpt", fontPath, overlayFontSize)
	}
	return &Overlay{face: face}
}

func loadFace(path string) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	otf, otErr := opentype.Parse(data)
	if otErr == nil {
		return opentype.NewFace(otf, &opentype.FaceOptions{Size: overlayFontSize, DPI: 72, Hinting: font.HintingFull})
	}

	// Older TrueType files opentype rejects still parse with freetype.
	ttf, ttErr := truetype.Parse(data)
	if ttErr != nil {
		return nil, fmt.Errorf("opentype: %v; truetype: %w", otErr, ttErr)
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: overlayFontSize, DPI: 72, Hinting: font.HintingFull}), nil
}

// Draw writes lines bottom-aligned in the panel right of the board.
func (o *Overlay) Draw(s *Surface, lines []string) {
	if len(lines) == 0 {
		return
	}
	metrics := o.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = metrics.Ascent.Ceil() + metrics.Descent.Ceil()
	}

	x := CellSize*3 + LineThickness + overlayMargin
	baseline := s.Height() - overlayMargin - metrics.Descent.Ceil() - (len(lines)-1)*lineHeight

	drawer := &font.Drawer{
		Dst:  s.Image(),
		Src:  image.NewUniform(OverlayColor),
		Face: o.face,
	}
	for _, line := range lines {
		drawer.Dot = fixed.P(x, baseline)
		drawer.DrawString(line)
		baseline += lineHeight
	}
}
