package quote

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Animal count bounds accepted by the booking form.
const (
	MinAnimals = 1
	MaxAnimals = 50
)

// HotelingInput is what the form collects for an overnight stay.
type HotelingInput struct {
	CheckIn     time.Time `json:"checkin" validate:"required"`
	CheckOut    time.Time `json:"checkout" validate:"required"`
	AnimalCount int       `json:"animal_count" validate:"min=1,max=50"`
	Diaper      bool      `json:"diaper"`
	Bath        bool      `json:"bath"`
}

// DaycareInput is what the form collects for a same-day stay.
type DaycareInput struct {
	Start       time.Time `json:"start" validate:"required"`
	End         time.Time `json:"end" validate:"required"`
	AnimalCount int       `json:"animal_count" validate:"min=1,max=50"`
	Diaper      bool      `json:"diaper"`
}

// Clock is a wall-clock time without a date.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// ParseClock accepts HH:MM or HH:MM:SS.
func ParseClock(s string) (Clock, error) {
	t := strings.TrimSpace(s)
	parts := strings.Split(t, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return Clock{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return Clock{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	var sec int
	if len(parts) == 3 {
		sec, err = strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return Clock{}, fmt.Errorf("invalid time %q, expected HH:MM:SS", s)
		}
	}
	return Clock{Hour: h, Minute: m, Second: sec}, nil
}

// MustClock is ParseClock for literals.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) String() string {
	if c.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	}
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On places c on day's calendar date in day's location.
func (c Clock) On(day time.Time) time.Time {
	y, mo, d := day.Date()
	return time.Date(y, mo, d, c.Hour, c.Minute, c.Second, 0, day.Location())
}

// ParseDate parses YYYY-MM-DD in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// ParseDateTime parses "YYYY-MM-DD HH:MM[:SS]" in loc.
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	date, clock, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date-time %q, expected YYYY-MM-DD HH:MM", s)
	}
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	c, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return c.On(day), nil
}

// DefaultHoteling is the form's initial state: today from checkIn to checkOut,
// one animal, no add-ons.
func DefaultHoteling(now time.Time, checkIn, checkOut Clock) HotelingInput {
	return HotelingInput{
		CheckIn:     checkIn.On(now),
		CheckOut:    checkOut.On(now),
		AnimalCount: MinAnimals,
	}
}

// DefaultDaycare is the form's initial daycare state.
func DefaultDaycare(now time.Time, start, end Clock) DaycareInput {
	return DaycareOn(now, start, end, MinAnimals, false)
}

// DaycareOn builds a daycare input on a single calendar day.
func DaycareOn(day time.Time, start, end Clock, animals int, diaper bool) DaycareInput {
	return DaycareInput{
		Start:       start.On(day),
		End:         end.On(day),
		AnimalCount: animals,
		Diaper:      diaper,
	}
}
