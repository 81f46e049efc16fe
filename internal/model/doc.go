// Package model defines the data passed between the calendar builder and
// the image composer.
//
// # DayDescriptor
//
// One DayDescriptor exists per day of the target Jalali year. It carries
// the translated text fields and the output location of the sticker:
//
//	day.OutputPath("out") // out/<MonthNameEnglish>/<DayInMonth>.png
//
// # Seasons and templates
//
// Months are grouped into four seasons of three months each. SeasonOf maps
// a month to its season and TemplateSet maps a season to its background
// image:
//
//	set, err := model.NewTemplateSet(map[string]string{
//	    "1": "templates/bahaar.png",
//	    "2": "templates/tabestoon.png",
//	    "3": "templates/paeiz.png",
//	    "4": "templates/zemestoon.png",
//	})
//	path, err := set.Path(model.SeasonOf(jalali.Mehr)) // templates/paeiz.png
package model
