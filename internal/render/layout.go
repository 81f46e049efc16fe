package render

import (
	"image"
	"image/color"
)

// Layout places the four text fields of a sticker. Coordinates refer to
// the template before it is resized.
type Layout struct {
	Weekday   Field
	MonthName Field
	Day       Field
	Year      Field

	Foreground  color.Color
	StrokeColor color.Color
}

// Font sizes used by the default layout.
const (
	SizeSmall  = 30
	SizeMedium = 60
	SizeBig    = 70
	SizeExtra  = 120
)

// DefaultLayout returns the layout the seasonal templates are drawn for.
func DefaultLayout() Layout {
	return Layout{
		Weekday: Field{
			Position: image.Pt(50, 50),
			Size:     SizeBig,
		},
		MonthName: Field{
			Position: image.Pt(450, 420),
			Size:     SizeMedium,
			Anchor:   AnchorRightBaseline,
			Stroke:   2,
		},
		Day: Field{
			Position: image.Pt(180, 190),
			Size:     SizeExtra,
			Stroke:   4,
		},
		Year: Field{
			Position: image.Pt(356, 162),
			Size:     SizeSmall,
		},
		Foreground:  color.White,
		StrokeColor: color.Black,
	}
}

// Sizes returns the distinct font sizes used by l.
func (l Layout) Sizes() []float64 {
	var sizes []float64
	seen := make(map[float64]bool, 4)
	for _, f := range []Field{l.Weekday, l.MonthName, l.Day, l.Year} {
		if !seen[f.Size] {
			seen[f.Size] = true
			sizes = append(sizes, f.Size)
		}
	}
	return sizes
}
