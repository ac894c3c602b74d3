package schedule

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Spanish weekday names in canonical form: lowercase, diacritics stripped.
// "Miércoles", "miercoles" and "MIERCOLES" all resolve to the same name.
var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miercoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sabado",
}

// WeekdayName resolves a calendar date to its canonical Spanish day name.
func WeekdayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}

// NormalizeDayName lowercases a day name and strips combining marks so that
// accented and unaccented spellings compare equal.
func NormalizeDayName(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(strings.TrimSpace(s)))
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsValidDayName reports whether s names a day of the week (any spelling
// NormalizeDayName accepts).
func IsValidDayName(s string) bool {
	normalized := NormalizeDayName(s)
	for _, name := range weekdayNames {
		if name == normalized {
			return true
		}
	}
	return false
}
