package pharmacy

import (
	"strings"

	"mask-ledger/internal/pkg/errs"
)

// Day is one of the seven three-letter weekday tokens stored with opening hours.
type Day string

const (
	Monday    Day = "Mon"
	Tuesday   Day = "Tue"
	Wednesday Day = "Wed"
	Thursday  Day = "Thu"
	Friday    Day = "Fri"
	Saturday  Day = "Sat"
	Sunday    Day = "Sun"
)

// Week is ordered Monday first; ranges wrap around its end.
var Week = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDay accepts a three-letter token in any letter case.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	for _, d := range Week {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", errs.Invalid("day must be one of Mon, Tue, Wed, Thu, Fri, Sat, Sun")
}

func (d Day) index() int {
	for i, w := range Week {
		if w == d {
			return i
		}
	}
	return -1
}

// DaysBetween expands an inclusive range, wrapping past Sunday when start
// comes after end (Sat..Mon gives Sat, Sun, Mon).
func DaysBetween(start, end Day) []Day {
	from, to := start.index(), end.index()
	if from < 0 || to < 0 {
		return nil
	}
	var days []Day
	for i := from; ; i = (i + 1) % len(Week) {
		days = append(days, Week[i])
		if i == to {
			return days
		}
	}
}
