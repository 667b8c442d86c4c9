package pharmacy

import (
	"regexp"
	"strings"
)

// OpeningHour is one day's open window. A window whose close is before its
// open is kept as imported.
type OpeningHour struct {
	Day   Day
	Open  ClockTime
	Close ClockTime
}

var segmentPattern = regexp.MustCompile(`^(.+?)\s+(\d{2}:\d{2})\s*-\s*(\d{2}:\d{2})$`)

// ParseOpeningHours expands a schedule such as
//
//	Mon - Fri 08:00 - 17:00 / Sat, Sun 08:00 - 12:00
//
// into one OpeningHour per day. Segments that cannot be parsed are skipped
// and returned in the second result so callers can report them.
func ParseOpeningHours(raw string) ([]OpeningHour, []string) {
	var (
		hours   []OpeningHour
		skipped []string
	)
	for _, segment := range strings.Split(raw, "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		parsed, ok := parseSegment(segment)
		if !ok {
			skipped = append(skipped, segment)
			continue
		}
		hours = append(hours, parsed...)
	}
	return hours, skipped
}

func parseSegment(segment string) ([]OpeningHour, bool) {
	m := segmentPattern.FindStringSubmatch(segment)
	if m == nil {
		return nil, false
	}
	days, ok := parseDaySpec(m[1])
	if !ok {
		return nil, false
	}
	open, err := ParseClockTime(m[2])
	if err != nil {
		return nil, false
	}
	closing, err := ParseClockTime(m[3])
	if err != nil {
		return nil, false
	}

	hours := make([]OpeningHour, len(days))
	for i, d := range days {
		hours[i] = OpeningHour{Day: d, Open: open, Close: closing}
	}
	return hours, true
}

// parseDaySpec handles "Mon, Wed, Fri" and "Mon - Fri".
func parseDaySpec(spec string) ([]Day, bool) {
	if from, to, isRange := strings.Cut(spec, "-"); isRange {
		start, err := ParseDay(from)
		if err != nil {
			return nil, false
		}
		end, err := ParseDay(to)
		if err != nil {
			return nil, false
		}
		return DaysBetween(start, end), true
	}

	var days []Day
	for _, tok := range strings.Split(spec, ",") {
		d, err := ParseDay(tok)
		if err != nil {
			return nil, false
		}
		days = append(days, d)
	}
	return days, len(days) > 0
}
