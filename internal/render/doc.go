// Package render composes sticker images.
//
// A Composer loads the template of a day's season, draws the four text
// fields of the day with golang.org/x/image/font and resizes the result:
//
//	fonts, err := render.LoadFontSet("vazir.ttf", layout.Sizes()...)
//	if err != nil {
//	    return err
//	}
//	defer fonts.Close()
//
//	c := render.NewComposer(templates, fonts, ioutils.NewImageService(), layout, 507, 512)
//	img, err := c.Compose(ctx, day)
//
// Text is passed through shaping.Format before drawing, since font.Drawer
// lays glyphs out left to right without any script support.
//
// # Layout
//
// DefaultLayout places the weekday, the month name, the day number and the
// year at fixed template coordinates. Each Field has an Anchor (left edge on
// the ascender line, or right edge on the baseline) and an optional outline
// stroke. Text is white, strokes are black.
package render
