package persian

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownName is returned when a month or weekday name has no
	// Persian translation.
	ErrUnknownName = errors.New("unknown name")

	// ErrInvalidNumber is returned when a numeral string is not a
	// non-negative integer.
	ErrInvalidNumber = errors.New("invalid number")
)

var digits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

var months = map[string]string{
	"Farvardin":   "فروردین",
	"Ordibehesht": "اردیبهشت",
	"Khordad":     "خرداد",
	"Tir":         "تیر",
	"Mordad":      "مرداد",
	"Shahrivar":   "شهریور",
	"Mehr":        "مهر",
	"Aban":        "آبان",
	"Azar":        "آذر",
	"Dey":         "دی",
	"Bahman":      "بهمن",
	"Esfand":      "اسفند",
}

var weekdays = map[string]string{
	"Saturday":  "شنبه",
	"Sunday":    "یک‌شنبه",
	"Monday":    "دوشنبه",
	"Tuesday":   "سه‌شنبه",
	"Wednesday": "چهارشنبه",
	"Thursday":  "پنج‌شنبه",
	"Friday":    "جمعه",
}

// Digits replaces every ASCII digit in s with its Persian counterpart.
// Other characters are kept as they are.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return digits[r-'0']
		}
		return r
	}, s)
}

// Number translates a Latin numeral to Persian digits. Values below ten
// are padded with a Persian zero, so "7" becomes "۰۷".
func Number(s string) (string, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return FormatInt(n), nil
}

// FormatInt is Number for an int. Negative values are not padded.
func FormatInt(n int) string {
	if n >= 0 && n < 10 {
		return string(digits[0]) + string(digits[n])
	}
	return Digits(strconv.Itoa(n))
}

// Month returns the Persian name of a Jalali month given its Latin
// spelling, e.g. "Mehr".
func Month(name string) (string, error) {
	fa, ok := months[name]
	if !ok {
		return "", fmt.Errorf("%w: month %q", ErrUnknownName, name)
	}
	return fa, nil
}

// Weekday returns the Persian name of an English weekday name, e.g.
// "Friday". It accepts the output of time.Weekday.String.
func Weekday(name string) (string, error) {
	fa, ok := weekdays[name]
	if !ok {
		return "", fmt.Errorf("%w: weekday %q", ErrUnknownName, name)
	}
	return fa, nil
}
