package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Anchor tells which point of the text box Field.Position refers to.
type Anchor int

const (
	// AnchorLeftAscender puts the position at the left edge, on the
	// ascender line of the font.
	AnchorLeftAscender Anchor = iota

	// AnchorRightBaseline puts the position at the right edge, on the
	// baseline.
	AnchorRightBaseline
)

// Field describes where and how one line of text is drawn.
type Field struct {
	Position image.Point
	Size     float64
	Anchor   Anchor
	Stroke   int // outline width in pixels, 0 for none
}

// Origin returns the baseline start point of text drawn with face.
func (f Field) Origin(face font.Face, text string) fixed.Point26_6 {
	dot := fixed.P(f.Position.X, f.Position.Y)
	switch f.Anchor {
	case AnchorRightBaseline:
		dot.X -= font.MeasureString(face, text)
	default:
		dot.Y += face.Metrics().Ascent
	}
	return dot
}

// DrawText draws text on dst at the position of field. With a stroke, the
// text is first stamped in strokeColor at every offset within the stroke
// radius, then drawn in fg on top.
func DrawText(dst draw.Image, face font.Face, text string, field Field, fg, strokeColor color.Color) {
	origin := field.Origin(face, text)
	d := &font.Drawer{
		Dst:  dst,
		Face: face,
	}

	if w := field.Stroke; w > 0 {
		d.Src = image.NewUniform(strokeColor)
		for dy := -w; dy <= w; dy++ {
			for dx := -w; dx <= w; dx++ {
				if dx*dx+dy*dy > w*w || (dx == 0 && dy == 0) {
					continue
				}
				d.Dot = origin.Add(fixed.P(dx, dy))
				d.DrawString(text)
			}
		}
	}

	d.Src = image.NewUniform(fg)
	d.Dot = origin
	d.DrawString(text)
}
