// Package calendar builds the table of day descriptors for a Jalali year.
//
//	year := calendar.CurrentYear(time.Now())
//	days, err := calendar.BuildYear(year)
//	// len(days) is 365, or 366 in a leap year
//
// The table is built eagerly and in date order. The current year is only
// read from the clock by the caller; BuildYear itself takes the year as a
// parameter.
package calendar
