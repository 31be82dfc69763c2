package display

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/noah-isme/drivingschool-api/internal/models"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "es-CO"

type localeFormat struct {
	months   [12]string
	weekdays [7]string
	date     func(day int, month string, year int) string
	am, pm   string
}

var (
	spanish = localeFormat{
		months:   [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		weekdays: [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		date: func(day int, month string, year int) string {
			return fmt.Sprintf("%d de %s de %d", day, month, year)
		},
		am: "a. m.",
		pm: "p. m.",
	}
	english = localeFormat{
		months:   [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		date: func(day int, month string, year int) string {
			return fmt.Sprintf("%s %d, %d", month, day, year)
		},
		am: "AM",
		pm: "PM",
	}

	// first entry is the fallback for unsupported locales
	supportedTags = []language.Tag{language.Spanish, language.English}
	formats       = []localeFormat{spanish, english}
	matcher       = language.NewMatcher(supportedTags)
)

func formatFor(locale string) localeFormat {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return formats[0]
	}
	_, idx, _ := matcher.Match(tag)
	return formats[idx]
}

// FormatDate renders an ISO date as a long, locale specific date,
// e.g. "16 de julio de 2024" for es-CO.
func FormatDate(iso, locale string) (string, error) {
	d, err := time.Parse(models.DateLayout, iso)
	if err != nil {
		return "", appErrors.InvalidArgument("invalid date %q, expected YYYY-MM-DD", iso)
	}
	f := formatFor(locale)
	return f.date(d.Day(), f.months[d.Month()-1], d.Year()), nil
}

// FormatTime renders an HH:MM clock time on a 12 hour clock with two digit hours,
// e.g. "02:00 p. m." for es-CO.
func FormatTime(hhmm, locale string) (string, error) {
	t, err := time.Parse(models.TimeLayout, hhmm)
	if err != nil {
		return "", appErrors.InvalidArgument("invalid time %q, expected HH:MM", hhmm)
	}
	f := formatFor(locale)
	suffix := f.am
	if t.Hour() >= 12 {
		suffix = f.pm
	}
	return fmt.Sprintf("%s %s", t.Format("03:04"), suffix), nil
}

// FormatWeekday returns the locale specific name of the ISO date's weekday.
func FormatWeekday(iso, locale string) (string, error) {
	d, err := time.Parse(models.DateLayout, iso)
	if err != nil {
		return "", appErrors.InvalidArgument("invalid date %q, expected YYYY-MM-DD", iso)
	}
	return formatFor(locale).weekdays[d.Weekday()], nil
}
