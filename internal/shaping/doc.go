// Package shaping prepares Arabic-script text for renderers that have no
// script support.
//
// golang.org/x/image/font draws a string as a plain left-to-right run of
// glyphs. Persian text needs two passes before it can be drawn that way:
//
//   - Reshape picks the joined presentation form of every letter
//     (isolated, initial, medial or final);
//   - Visual applies the Unicode bidirectional algorithm, using
//     golang.org/x/text/unicode/bidi, and returns the line in display order.
//
// Format runs both passes:
//
//	text, err := shaping.Format("فروردین")
//	if err != nil {
//	    return err
//	}
//	drawer.DrawString(text)
package shaping
