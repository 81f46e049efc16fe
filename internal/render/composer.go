package render

import (
	"context"
	"fmt"
	"image"

	ioutils "github.com/handiism/jalali-stickers/internal/io"
	"github.com/handiism/jalali-stickers/internal/model"
	"github.com/handiism/jalali-stickers/internal/shaping"
)

// Composer draws day descriptors onto their seasonal templates.
type Composer struct {
	templates model.TemplateSet
	fonts     *FontSet
	images    *ioutils.ImageService
	layout    Layout
	width     int
	height    int
}

// NewComposer creates a Composer producing width x height stickers. The
// font set must have a face for every size in layout.
func NewComposer(templates model.TemplateSet, fonts *FontSet, images *ioutils.ImageService, layout Layout, width, height int) *Composer {
	return &Composer{
		templates: templates,
		fonts:     fonts,
		images:    images,
		layout:    layout,
		width:     width,
		height:    height,
	}
}

// Compose renders the sticker of day: the template of its season with the
// weekday, month name, day number and year drawn on a copy, resized to the
// output size.
func (c *Composer) Compose(ctx context.Context, day model.DayDescriptor) (*image.RGBA, error) {
	path, err := c.templates.Path(day.Season)
	if err != nil {
		return nil, err
	}
	canvas, err := c.images.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}

	fields := []struct {
		text  string
		field Field
	}{
		{day.Weekday, c.layout.Weekday},
		{day.MonthName, c.layout.MonthName},
		{day.DayInMonth, c.layout.Day},
		{day.Year, c.layout.Year},
	}
	for _, f := range fields {
		text, err := shaping.Format(f.text)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", f.text, err)
		}
		face, err := c.fonts.Face(f.field.Size)
		if err != nil {
			return nil, err
		}
		DrawText(canvas, face, text, f.field, c.layout.Foreground, c.layout.StrokeColor)
	}

	return c.images.Resize(ctx, canvas, c.width, c.height), nil
}
