package jalali

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a year, month and day do not form a
// valid Jalali date.
var ErrInvalidDate = errors.New("invalid jalali date")

// Month is a Jalali month, Farvardin = 1.
type Month int

const (
	Farvardin Month = iota + 1
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

var monthNames = [...]string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

// String returns the Latin spelling of the month, e.g. "Farvardin".
func (m Month) String() string {
	if m < Farvardin || m > Esfand {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Months returns the twelve months in calendar order.
func Months() []Month {
	months := make([]Month, 0, 12)
	for m := Farvardin; m <= Esfand; m++ {
		months = append(months, m)
	}
	return months
}

// Date is a calendar day in the Jalali (solar Hijri) calendar.
type Date struct {
	Year  int
	Month Month
	Day   int
}

// 1 Farvardin 1403 fell on Wednesday 20 March 2024.
var (
	epochDate = Date{Year: 1403, Month: Farvardin, Day: 1}
	epochTime = time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
)

const secondsPerDay = 24 * 60 * 60

// leapResidues are the positions of the leap years inside the 33-year cycle.
var leapResidues = [...]int{1, 5, 9, 13, 17, 22, 26, 30}

// IsLeap reports whether year has 366 days (Esfand has 30 days).
func IsLeap(year int) bool {
	r := year % 33
	if r < 0 {
		r += 33
	}
	for _, v := range leapResidues {
		if r == v {
			return true
		}
	}
	return false
}

// YearDays returns the number of days in year.
func YearDays(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysIn returns the number of days in month m of year.
func DaysIn(m Month, year int) int {
	switch {
	case m >= Farvardin && m <= Shahrivar:
		return 31
	case m >= Mehr && m <= Bahman:
		return 30
	case m == Esfand:
		if IsLeap(year) {
			return 30
		}
		return 29
	}
	return 0
}

// New returns the date year/month/day or ErrInvalidDate.
func New(year int, month Month, day int) (Date, error) {
	if year < 1 || month < Farvardin || month > Esfand || day < 1 || day > DaysIn(month, year) {
		return Date{}, fmt.Errorf("%w: %04d/%02d/%02d", ErrInvalidDate, year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// FirstDay returns 1 Farvardin of year.
func FirstDay(year int) Date {
	return Date{Year: year, Month: Farvardin, Day: 1}
}

// LastDay returns the day before 1 Farvardin of the following year.
func LastDay(year int) Date {
	return FirstDay(year + 1).AddDays(-1)
}

// FromTime converts the civil date of t, in t's location, to a Jalali date.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	civil := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := floorDiv(civil.Unix()-epochTime.Unix(), secondsPerDay)
	return fromOrdinal(ordinal(epochDate) + days)
}

// Time returns midnight UTC of the Gregorian day matching d.
func (d Date) Time() time.Time {
	return epochTime.AddDate(0, 0, int(ordinal(d)-ordinal(epochDate)))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return fromOrdinal(ordinal(d) + int64(n))
}

// Before reports whether d comes strictly before other.
func (d Date) Before(other Date) bool {
	return ordinal(d) < ordinal(other)
}

// DayOfYear returns the 1-based position of d inside its year.
func (d Date) DayOfYear() int {
	if d.Month <= Shahrivar {
		return int(d.Month-1)*31 + d.Day
	}
	return 186 + int(d.Month-Mehr)*30 + d.Day
}

// String formats d as YYYY/MM/DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, int(d.Month), d.Day)
}

// leapsBefore counts the leap years in [1, year).
func leapsBefore(year int) int64 {
	n := int64(year - 1)
	q, r := n/33, n%33
	count := q * int64(len(leapResidues))
	for _, v := range leapResidues {
		if int64(v) <= r {
			count++
		}
	}
	return count
}

// ordinal returns the number of days between 1 Farvardin of year 1 and d.
func ordinal(d Date) int64 {
	return int64(d.Year-1)*365 + leapsBefore(d.Year) + int64(d.DayOfYear()-1)
}

func fromOrdinal(n int64) Date {
	// 12053 days per 33-year cycle.
	year := int(n*33/12053) + 1
	for ordinal(FirstDay(year+1)) <= n {
		year++
	}
	for ordinal(FirstDay(year)) > n {
		year--
	}

	doy := int(n-ordinal(FirstDay(year))) + 1
	if doy <= 186 {
		return Date{Year: year, Month: Month((doy-1)/31 + 1), Day: (doy-1)%31 + 1}
	}
	k := doy - 187
	return Date{Year: year, Month: Mehr + Month(k/30), Day: k%30 + 1}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
