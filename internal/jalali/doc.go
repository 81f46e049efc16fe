// Package jalali implements the solar Hijri (Jalali) calendar arithmetic
// needed by the sticker generator.
//
// Leap years follow the 33-year arithmetic cycle, in which years whose
// remainder modulo 33 is one of 1, 5, 9, 13, 17, 22, 26 or 30 have 366 days.
// Conversion to and from the Gregorian calendar is anchored on
// 1 Farvardin 1403 = 20 March 2024.
//
//	today := jalali.FromTime(time.Now())
//	first := jalali.FirstDay(today.Year)
//	last := jalali.LastDay(today.Year)
//	for d := first; !last.Before(d); d = d.AddDays(1) {
//	    fmt.Println(d, d.Weekday())
//	}
package jalali
