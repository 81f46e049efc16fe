package shaping

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Visual reorders a single line of text from logical to visual order, so a
// renderer that lays glyphs out strictly left to right shows right-to-left
// runs correctly. Right-to-left runs are reversed with their brackets
// mirrored; in a right-to-left paragraph the run order is reversed too.
func Visual(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return "", fmt.Errorf("bidi: %w", err)
	}
	order, err := p.Order()
	if err != nil {
		return "", fmt.Errorf("bidi: %w", err)
	}

	runs := make([]string, 0, order.NumRuns())
	for i := 0; i < order.NumRuns(); i++ {
		run := order.Run(i)
		text := run.String()
		if run.Direction() == bidi.RightToLeft {
			text = bidi.ReverseString(text)
		}
		runs = append(runs, text)
	}

	if baseDirection(s) == bidi.RightToLeft {
		for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
			runs[i], runs[j] = runs[j], runs[i]
		}
	}
	return strings.Join(runs, ""), nil
}

// baseDirection applies rules P2 and P3: the first strong character decides
// the paragraph direction, left to right when there is none.
func baseDirection(s string) bidi.Direction {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return bidi.LeftToRight
		case bidi.R, bidi.AL:
			return bidi.RightToLeft
		}
	}
	return bidi.LeftToRight
}
