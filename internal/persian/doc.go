// Package persian translates calendar fields to Persian script.
//
// The translation tables are fixed and read-only:
//
//	persian.Number("7")         // "۰۷"
//	persian.FormatInt(1404)     // "۱۴۰۴"
//	persian.Month("Farvardin")  // "فروردین"
//	persian.Weekday("Friday")   // "جمعه"
//
// Unknown month or weekday names return an error wrapping ErrUnknownName.
// Callers building a calendar treat that as a programming error, since the
// names always come from the jalali and time packages.
package persian
