package calendar

import (
	"testing"
	"time"

	"github.com/handiism/jalali-stickers/internal/jalali"
	"github.com/handiism/jalali-stickers/internal/model"
)

func TestBuildYear_Length(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{1402, 365},
		{1403, 366},
		{1404, 365},
		{1408, 366},
	}

	for _, tt := range tests {
		days, err := BuildYear(tt.year)
		if err != nil {
			t.Fatalf("BuildYear(%d) unexpected error: %v", tt.year, err)
		}
		if len(days) != tt.want {
			t.Errorf("BuildYear(%d) returned %d days, want %d", tt.year, len(days), tt.want)
		}
	}
}

func TestBuildYear_OrderedAndUnique(t *testing.T) {
	days, err := BuildYear(1403)
	if err != nil {
		t.Fatalf("BuildYear unexpected error: %v", err)
	}

	seen := make(map[string]bool, len(days))
	for i, day := range days {
		if day.Date.Year != 1403 {
			t.Fatalf("day %d belongs to year %d", i, day.Date.Year)
		}
		if i > 0 && !days[i-1].Date.Before(day.Date) {
			t.Fatalf("day %d (%v) is not after day %d (%v)", i, day.Date, i-1, days[i-1].Date)
		}
		key := day.MonthNameEnglish + "/" + day.DayInMonth
		if seen[key] {
			t.Fatalf("duplicate (month, day) %s", key)
		}
		seen[key] = true
	}

	if first := days[0].Date; first != (jalali.Date{Year: 1403, Month: jalali.Farvardin, Day: 1}) {
		t.Errorf("first day = %v", first)
	}
	if last := days[len(days)-1].Date; last != (jalali.Date{Year: 1403, Month: jalali.Esfand, Day: 30}) {
		t.Errorf("last day = %v", last)
	}
}

func TestBuildYear_Seasons(t *testing.T) {
	days, err := BuildYear(1404)
	if err != nil {
		t.Fatalf("BuildYear unexpected error: %v", err)
	}

	for _, day := range days {
		var want model.Season
		switch m := day.Date.Month; {
		case m <= jalali.Khordad:
			want = "1"
		case m <= jalali.Shahrivar:
			want = "2"
		case m <= jalali.Azar:
			want = "3"
		default:
			want = "4"
		}
		if day.Season != want {
			t.Fatalf("%v: season %q, want %q", day.Date, day.Season, want)
		}
	}
}

func TestBuildYear_FarvardinFiles(t *testing.T) {
	days, err := BuildYear(1404)
	if err != nil {
		t.Fatalf("BuildYear unexpected error: %v", err)
	}

	var names []string
	for _, day := range days {
		if day.MonthNameEnglish == "Farvardin" {
			names = append(names, day.DayInMonth)
		}
	}
	if len(names) != 31 {
		t.Fatalf("Farvardin has %d days, want 31", len(names))
	}
	if names[0] != "۰۱" || names[8] != "۰۹" || names[9] != "۱۰" || names[30] != "۳۱" {
		t.Errorf("unexpected day names: %v", names)
	}
}

func TestDescribe(t *testing.T) {
	day, err := Describe(jalali.Date{Year: 1404, Month: jalali.Farvardin, Day: 1})
	if err != nil {
		t.Fatalf("Describe unexpected error: %v", err)
	}

	want := model.DayDescriptor{
		Date:             jalali.Date{Year: 1404, Month: jalali.Farvardin, Day: 1},
		MonthNameEnglish: "Farvardin",
		Season:           model.SeasonSpring,
		Weekday:          "جمعه",
		MonthName:        "فروردین",
		DayInMonth:       "۰۱",
		Year:             "۱۴۰۴",
	}
	if day != want {
		t.Errorf("Describe = %+v, want %+v", day, want)
	}
}

func TestCurrentYear(t *testing.T) {
	now := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	if got := CurrentYear(now); got != 1405 {
		t.Errorf("CurrentYear = %d, want 1405", got)
	}
}
