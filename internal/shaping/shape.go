package shaping

// Format prepares Persian text for a left-to-right glyph renderer: letters
// are joined first, then the line is put in visual order.
func Format(s string) (string, error) {
	return Visual(Reshape(s))
}
