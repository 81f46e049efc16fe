package calendar

import (
	"fmt"
	"time"

	"github.com/handiism/jalali-stickers/internal/jalali"
	"github.com/handiism/jalali-stickers/internal/model"
	"github.com/handiism/jalali-stickers/internal/persian"
)

// CurrentYear returns the Jalali year that contains now.
func CurrentYear(now time.Time) int {
	return jalali.FromTime(now).Year
}

// BuildYear returns one descriptor per day of the Jalali year, from
// 1 Farvardin to the last day of Esfand, in date order.
func BuildYear(year int) ([]model.DayDescriptor, error) {
	first := jalali.FirstDay(year)
	last := jalali.LastDay(year)

	days := make([]model.DayDescriptor, 0, jalali.YearDays(year))
	for d := first; !last.Before(d); d = d.AddDays(1) {
		day, err := Describe(d)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

// Describe translates the fields of a single date.
func Describe(d jalali.Date) (model.DayDescriptor, error) {
	weekday, err := persian.Weekday(d.Weekday().String())
	if err != nil {
		return model.DayDescriptor{}, fmt.Errorf("describe %v: %w", d, err)
	}
	month, err := persian.Month(d.Month.String())
	if err != nil {
		return model.DayDescriptor{}, fmt.Errorf("describe %v: %w", d, err)
	}

	return model.DayDescriptor{
		Date:             d,
		MonthNameEnglish: d.Month.String(),
		Season:           model.SeasonOf(d.Month),
		Weekday:          weekday,
		MonthName:        month,
		DayInMonth:       persian.FormatInt(d.Day),
		Year:             persian.FormatInt(d.Year),
	}, nil
}
