package web

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cast"

	"staycalc/internal/quote"
)

// Defaults are the clock times prefilled in the form.
type Defaults struct {
	CheckIn      quote.Clock
	CheckOut     quote.Clock
	DaycareStart quote.Clock
	DaycareEnd   quote.Clock
}

// formValues mirrors the form fields as typed by the user.
type formValues struct {
	Service string

	CheckInDate  string
	CheckInTime  string
	CheckOutDate string
	CheckOutTime string

	DaycareDate string
	StartTime   string
	EndTime     string

	Count  string
	Diaper bool
	Bath   bool
}

func (f formValues) IsHoteling() bool {
	return f.Service != string(quote.Daycare)
}

func defaultForm(now time.Time, d Defaults) formValues {
	today := now.Format("2006-01-02")
	return formValues{
		Service:      string(quote.Hoteling),
		CheckInDate:  today,
		CheckInTime:  d.CheckIn.String(),
		CheckOutDate: today,
		CheckOutTime: d.CheckOut.String(),
		DaycareDate:  today,
		StartTime:    d.DaycareStart.String(),
		EndTime:      d.DaycareEnd.String(),
		Count:        "1",
	}
}

// readForm overlays the submitted values on def; blank fields keep the default.
func readForm(v url.Values, def formValues) formValues {
	return formValues{
		Service:      orDefault(v.Get("service"), def.Service),
		CheckInDate:  orDefault(v.Get("checkin_date"), def.CheckInDate),
		CheckInTime:  orDefault(v.Get("checkin_time"), def.CheckInTime),
		CheckOutDate: orDefault(v.Get("checkout_date"), def.CheckOutDate),
		CheckOutTime: orDefault(v.Get("checkout_time"), def.CheckOutTime),
		DaycareDate:  orDefault(v.Get("date"), def.DaycareDate),
		StartTime:    orDefault(v.Get("start_time"), def.StartTime),
		EndTime:      orDefault(v.Get("end_time"), def.EndTime),
		Count:        orDefault(v.Get("count"), def.Count),
		Diaper:       cast.ToBool(strings.TrimSpace(v.Get("diaper"))),
		Bath:         cast.ToBool(strings.TrimSpace(v.Get("bath"))),
	}
}

func (f formValues) animalCount() (int, error) {
	n, err := cast.ToIntE(strings.TrimSpace(f.Count))
	if err != nil {
		return 0, fmt.Errorf("animal count %q is not a number", f.Count)
	}
	return n, nil
}

func (f formValues) hoteling(loc *time.Location) (quote.HotelingInput, error) {
	in, err := quote.ParseDateTime(f.CheckInDate+" "+f.CheckInTime, loc)
	if err != nil {
		return quote.HotelingInput{}, fmt.Errorf("check-in: %w", err)
	}
	out, err := quote.ParseDateTime(f.CheckOutDate+" "+f.CheckOutTime, loc)
	if err != nil {
		return quote.HotelingInput{}, fmt.Errorf("check-out: %w", err)
	}
	n, err := f.animalCount()
	if err != nil {
		return quote.HotelingInput{}, err
	}
	return quote.HotelingInput{
		CheckIn:     in,
		CheckOut:    out,
		AnimalCount: n,
		Diaper:      f.Diaper,
		Bath:        f.Bath,
	}, nil
}

func (f formValues) daycare(loc *time.Location) (quote.DaycareInput, error) {
	day, err := quote.ParseDate(f.DaycareDate, loc)
	if err != nil {
		return quote.DaycareInput{}, err
	}
	start, err := quote.ParseClock(f.StartTime)
	if err != nil {
		return quote.DaycareInput{}, fmt.Errorf("start: %w", err)
	}
	end, err := quote.ParseClock(f.EndTime)
	if err != nil {
		return quote.DaycareInput{}, fmt.Errorf("end: %w", err)
	}
	n, err := f.animalCount()
	if err != nil {
		return quote.DaycareInput{}, err
	}
	return quote.DaycareOn(day, start, end, n, f.Diaper), nil
}

// calcURL returns "/?service=..." with dates always present and every other
// field only when it differs from def.
func calcURL(f, def formValues) string {
	v := url.Values{}
	v.Set("service", f.Service)
	set := func(key, val, defVal string) {
		if val != "" && val != defVal {
			v.Set(key, val)
		}
	}

	if f.IsHoteling() {
		v.Set("checkin_date", f.CheckInDate)
		v.Set("checkout_date", f.CheckOutDate)
		set("checkin_time", f.CheckInTime, def.CheckInTime)
		set("checkout_time", f.CheckOutTime, def.CheckOutTime)
		if f.Bath {
			v.Set("bath", "true")
		}
	} else {
		v.Set("date", f.DaycareDate)
		set("start_time", f.StartTime, def.StartTime)
		set("end_time", f.EndTime, def.EndTime)
	}
	set("count", f.Count, def.Count)
	if f.Diaper {
		v.Set("diaper", "true")
	}
	return "/?" + v.Encode()
}

func orDefault(val, def string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return strings.TrimSpace(val)
}
