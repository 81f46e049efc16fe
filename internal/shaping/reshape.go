package shaping

import (
	"strings"
	"unicode"
)

const (
	zwnj = '‌'
	zwj  = '‍'
	lam  = 'ل'
)

// forms holds the presentation forms of a letter. Right-joining letters
// only have isolated and final forms.
type forms struct {
	isolated, final, initial, medial rune
}

func (f forms) dual() bool { return f.initial != 0 }

var letters = map[rune]forms{
	'ء': {0xFE80, 0, 0, 0},
	'آ': {0xFE81, 0xFE82, 0, 0},
	'أ': {0xFE83, 0xFE84, 0, 0},
	'ؤ': {0xFE85, 0xFE86, 0, 0},
	'إ': {0xFE87, 0xFE88, 0, 0},
	'ئ': {0xFE89, 0xFE8A, 0xFE8B, 0xFE8C},
	'ا': {0xFE8D, 0xFE8E, 0, 0},
	'ب': {0xFE8F, 0xFE90, 0xFE91, 0xFE92},
	'ة': {0xFE93, 0xFE94, 0, 0},
	'ت': {0xFE95, 0xFE96, 0xFE97, 0xFE98},
	'ث': {0xFE99, 0xFE9A, 0xFE9B, 0xFE9C},
	'ج': {0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0},
	'ح': {0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4},
	'خ': {0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8},
	'د': {0xFEA9, 0xFEAA, 0, 0},
	'ذ': {0xFEAB, 0xFEAC, 0, 0},
	'ر': {0xFEAD, 0xFEAE, 0, 0},
	'ز': {0xFEAF, 0xFEB0, 0, 0},
	'س': {0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4},
	'ش': {0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8},
	'ص': {0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC},
	'ض': {0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0},
	'ط': {0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4},
	'ظ': {0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8},
	'ع': {0xFEC9, 0xFECA, 0xFECB, 0xFECC},
	'غ': {0xFECD, 0xFECE, 0xFECF, 0xFED0},
	'ف': {0xFED1, 0xFED2, 0xFED3, 0xFED4},
	'ق': {0xFED5, 0xFED6, 0xFED7, 0xFED8},
	'ك': {0xFED9, 0xFEDA, 0xFEDB, 0xFEDC},
	'ل': {0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0},
	'م': {0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4},
	'ن': {0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8},
	'ه': {0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC},
	'و': {0xFEED, 0xFEEE, 0, 0},
	'ى': {0xFEEF, 0xFEF0, 0xFBE8, 0xFBE9},
	'ي': {0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4},
	'پ': {0xFB56, 0xFB57, 0xFB58, 0xFB59}, // peh
	'چ': {0xFB7A, 0xFB7B, 0xFB7C, 0xFB7D}, // tcheh
	'ژ': {0xFB8A, 0xFB8B, 0, 0},           // jeh
	'ک': {0xFB8E, 0xFB8F, 0xFB90, 0xFB91}, // keheh
	'گ': {0xFB92, 0xFB93, 0xFB94, 0xFB95}, // gaf
	'ی': {0xFBFC, 0xFBFD, 0xFBFE, 0xFBFF}, // farsi yeh
}

// lamAlef maps the alef that follows a lam to the isolated and final
// forms of the mandatory ligature.
var lamAlef = map[rune][2]rune{
	'آ': {0xFEF5, 0xFEF6},
	'أ': {0xFEF7, 0xFEF8},
	'إ': {0xFEF9, 0xFEFA},
	'ا': {0xFEFB, 0xFEFC},
}

// Reshape replaces Arabic-script letters with the presentation forms that
// match their joining context. ZWNJ breaks a join and is dropped along
// with ZWJ; combining marks are skipped when looking for neighbours.
func Reshape(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == zwnj || r == zwj {
			continue
		}
		f, ok := letters[r]
		if !ok {
			b.WriteRune(r)
			continue
		}

		joinsPrev := joinsForward(runes, prevLetter(runes, i))

		if r == lam && i+1 < len(runes) {
			if lig, ok := lamAlef[runes[i+1]]; ok {
				if joinsPrev {
					b.WriteRune(lig[1])
				} else {
					b.WriteRune(lig[0])
				}
				i++
				continue
			}
		}

		joinsNext := false
		if f.dual() {
			if j := nextLetter(runes, i); j >= 0 {
				next, ok := letters[runes[j]]
				joinsNext = ok && next.final != 0
			}
		}

		switch {
		case joinsPrev && joinsNext:
			b.WriteRune(f.medial)
		case joinsPrev && f.final != 0:
			b.WriteRune(f.final)
		case joinsNext:
			b.WriteRune(f.initial)
		default:
			b.WriteRune(f.isolated)
		}
	}
	return b.String()
}

// joinsForward reports whether the letter at index i connects to the
// letter after it.
func joinsForward(runes []rune, i int) bool {
	if i < 0 {
		return false
	}
	f, ok := letters[runes[i]]
	return ok && f.dual()
}

func prevLetter(runes []rune, i int) int {
	for j := i - 1; j >= 0; j-- {
		if !isTransparent(runes[j]) {
			return j
		}
	}
	return -1
}

func nextLetter(runes []rune, i int) int {
	for j := i + 1; j < len(runes); j++ {
		if !isTransparent(runes[j]) {
			return j
		}
	}
	return -1
}

func isTransparent(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
