package pharmacy

import (
	"fmt"
	"strconv"
	"strings"

	"mask-ledger/internal/pkg/errs"
)

// ClockTime is a wall-clock time of day with second precision.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseClockTime accepts HH:MM and HH:MM:SS in 24-hour form.
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ClockTime{}, errs.Invalid("time must be provided in HH:MM or HH:MM:SS format")
	}

	limits := []int{23, 59, 59}
	var vals [3]int
	for i, p := range parts {
		if len(p) != 2 {
			return ClockTime{}, errs.Invalid("time must be provided in HH:MM or HH:MM:SS format")
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return ClockTime{}, errs.Invalid("time must be provided in HH:MM or HH:MM:SS format")
		}
		vals[i] = n
	}
	return ClockTime{Hour: vals[0], Minute: vals[1], Second: vals[2]}, nil
}

func ClockTimeFromSeconds(secs int64) ClockTime {
	return ClockTime{
		Hour:   int(secs / 3600),
		Minute: int(secs % 3600 / 60),
		Second: int(secs % 60),
	}
}

// Seconds since midnight.
func (t ClockTime) Seconds() int64 {
	return int64(t.Hour*3600 + t.Minute*60 + t.Second)
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t ClockTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
