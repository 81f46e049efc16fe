package model

import (
	"path/filepath"

	"github.com/handiism/jalali-stickers/internal/jalali"
)

// DayDescriptor holds everything needed to render the sticker of one day.
//
// Text fields are already translated to Persian script and digits; they
// are shaped for display only when drawn. A descriptor is built once by
// the calendar package and is not modified afterwards.
//
// Example:
//
//	day := DayDescriptor{
//	    Date:             jalali.Date{Year: 1404, Month: jalali.Farvardin, Day: 1},
//	    MonthNameEnglish: "Farvardin",
//	    Season:           SeasonSpring,
//	    Weekday:          "جمعه",
//	    MonthName:        "فروردین",
//	    DayInMonth:       "۰۱",
//	    Year:             "۱۴۰۴",
//	}
//	day.OutputPath("out") // "out/Farvardin/۰۱.png"
type DayDescriptor struct {
	// Date is the Jalali date the descriptor was built from.
	Date jalali.Date

	// MonthNameEnglish is the Latin month name. It is only used as the
	// output folder name.
	MonthNameEnglish string

	// Season selects the background template.
	Season Season

	// Weekday is the Persian weekday name.
	Weekday string

	// MonthName is the Persian month name.
	MonthName string

	// DayInMonth is the day number in Persian digits, zero padded to two
	// digits. It is also the output file name.
	DayInMonth string

	// Year is the year number in Persian digits.
	Year string
}

// OutputPath returns the PNG path of the day under root:
// <root>/<MonthNameEnglish>/<DayInMonth>.png.
func (d DayDescriptor) OutputPath(root string) string {
	return filepath.Join(root, d.MonthNameEnglish, d.DayInMonth+".png")
}
