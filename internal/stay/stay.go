// Package stay turns a check-in/check-out pair into the labelled stay summary
// shown next to every quote.
package stay

import (
	"errors"
	"fmt"
	"time"
)

const (
	secondsPerDay  = 86400
	secondsPerHour = 3600
)

// Range is a check-in/check-out (or daycare start/end) pair.
type Range struct {
	Start time.Time
	End   time.Time
}

// Elapsed returns the wall-clock difference End - Start, read in Start's
// zone. A stay across a DST change is measured by the clocks on the wall,
// so 09:00 to 09:00 the next day is always one night.
func (r Range) Elapsed() time.Duration {
	return wall(r.End.In(r.Start.Location())).Sub(wall(r.Start))
}

// Valid reports whether End is strictly after Start on the wall clock.
func (r Range) Valid() bool {
	return r.Elapsed() > 0
}

func wall(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)
}

// InvalidRangeError is returned whenever a range ends at or before its start.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: end %s is not after start %s",
		e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
}

// IsInvalidRange reports whether err carries an *InvalidRangeError.
func IsInvalidRange(err error) bool {
	var target *InvalidRangeError
	return errors.As(err, &target)
}

// Summary is the nights/days/hours/minutes decomposition of a stay.
type Summary struct {
	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout"`
	Nights   int64  `json:"nights"`
	Days     int64  `json:"days"`
	Hours    int64  `json:"hours"`
	Minutes  int64  `json:"minutes"`
}

// Summarize decomposes r. Seconds below a full minute are dropped. Days is
// nights+1 for overnight stays and 0 otherwise.
func Summarize(r Range) (Summary, error) {
	if !r.Valid() {
		return Summary{}, &InvalidRangeError{Start: r.Start, End: r.End}
	}

	secs := int64(r.Elapsed() / time.Second)
	nights := secs / secondsPerDay
	rem := secs % secondsPerDay

	var days int64
	if nights > 0 {
		days = nights + 1
	}

	return Summary{
		CheckIn:  Label(r.Start),
		CheckOut: Label(r.End),
		Nights:   nights,
		Days:     days,
		Hours:    rem / secondsPerHour,
		Minutes:  (rem % secondsPerHour) / 60,
	}, nil
}

// FormatDuration renders the three-line block: check-in, check-out, period.
func FormatDuration(r Range) (string, error) {
	s, err := Summarize(r)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

func (s Summary) String() string {
	return fmt.Sprintf("● 입실 시간: %s\n● 퇴실 시간: %s\n● 위탁 기간: %d박 %d일 %d시간 %d분",
		s.CheckIn, s.CheckOut, s.Nights, s.Days, s.Hours, s.Minutes)
}

// Label formats t as "2006-01-02 오후 03:04:05".
func Label(t time.Time) string {
	meridiem := "오전"
	if t.Hour() >= 12 {
		meridiem = "오후"
	}
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%s %s %02d:%02d:%02d", t.Format("2006-01-02"), meridiem, h, t.Minute(), t.Second())
}
