// Package tariff implements the hoteling and daycare fee schedules.
//
// Amounts are whole won. Both calculators are pure: the result depends only on
// the request, and a range that does not move forward in time is rejected with
// *stay.InvalidRangeError.
package tariff

import (
	"math"

	"github.com/dustin/go-humanize"

	"staycalc/internal/stay"
)

// Hoteling schedule.
const (
	NightlyRate       int64 = 30000
	LateCheckoutFee   int64 = 10000
	HotelDiaperPerDay int64 = 2000
	BathPerAnimal     int64 = 20000

	// LateCheckoutAfterH is the grace period past the last full night.
	LateCheckoutAfterH float64 = 3
)

// Daycare schedule.
const (
	DaycareShortFee   int64 = 10000
	DaycareHalfDayFee int64 = 15000
	DaycareFullDayFee int64 = 20000
	DaycareDiaperFee  int64 = 2000

	DaycareShortMaxH   float64 = 3
	DaycareHalfDayMaxH float64 = 6
)

// MultiAnimalRate is applied to the total when more than one animal stays.
const MultiAnimalRate = 0.9

// HotelingRequest is an overnight boarding quote request.
type HotelingRequest struct {
	Range       stay.Range
	AnimalCount int
	Diaper      bool
	Bath        bool
}

// DaycareRequest is a same-day boarding quote request.
type DaycareRequest struct {
	Range       stay.Range
	AnimalCount int
	Diaper      bool
}

// Breakdown itemizes a fee. Gross = Subtotal * Multiplier and
// Total = Gross - Discount.
type Breakdown struct {
	Hours      float64 `json:"hours"`
	Nights     int64   `json:"nights"`
	Tier       string  `json:"tier,omitempty"`
	Base       int64   `json:"base"`
	Surcharge  int64   `json:"surcharge"`
	Diaper     int64   `json:"diaper"`
	Bath       int64   `json:"bath"`
	Subtotal   int64   `json:"subtotal"`
	Multiplier int64   `json:"multiplier"`
	Gross      int64   `json:"gross"`
	Discount   int64   `json:"discount"`
	Total      int64   `json:"total"`
}

// Hoteling returns the total hoteling fee.
func Hoteling(req HotelingRequest) (int64, error) {
	b, err := HotelingBreakdown(req)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// HotelingBreakdown prices an overnight stay. Add-ons are already scaled by
// the animal count and the running total is multiplied by it again.
// TODO: confirm the double count on add-ons with the front desk before changing it.
func HotelingBreakdown(req HotelingRequest) (Breakdown, error) {
	hours := elapsedHours(req.Range)
	if hours <= 0 {
		return Breakdown{}, &stay.InvalidRangeError{Start: req.Range.Start, End: req.Range.End}
	}

	count := int64(req.AnimalCount)
	nights := int64(math.Floor(hours / 24))
	remainder := math.Mod(hours, 24)

	b := Breakdown{
		Hours:  hours,
		Nights: nights,
		Base:   nights * NightlyRate,
	}
	if remainder > LateCheckoutAfterH {
		b.Surcharge = LateCheckoutFee
	}
	if req.Diaper {
		b.Diaper = HotelDiaperPerDay * max(nights, 1) * count
	}
	if req.Bath {
		b.Bath = BathPerAnimal * count
	}

	b.Subtotal = b.Base + b.Surcharge + b.Diaper + b.Bath
	b.Multiplier = count
	b.Gross = b.Subtotal * count
	b.Total = discounted(b.Gross, count)
	b.Discount = b.Gross - b.Total
	return b, nil
}

// Daycare returns the total daycare fee.
func Daycare(req DaycareRequest) (int64, error) {
	b, err := DaycareBreakdown(req)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// DaycareBreakdown prices a same-day stay by duration tier.
func DaycareBreakdown(req DaycareRequest) (Breakdown, error) {
	hours := elapsedHours(req.Range)
	if hours <= 0 {
		return Breakdown{}, &stay.InvalidRangeError{Start: req.Range.Start, End: req.Range.End}
	}

	count := int64(req.AnimalCount)
	fee, tier := daycareTier(hours)

	b := Breakdown{
		Hours: hours,
		Tier:  tier,
		Base:  fee * count,
	}
	if req.Diaper {
		b.Diaper = DaycareDiaperFee * count
	}

	b.Subtotal = b.Base + b.Diaper
	b.Multiplier = 1
	b.Gross = b.Subtotal
	b.Total = discounted(b.Gross, count)
	b.Discount = b.Gross - b.Total
	return b, nil
}

func daycareTier(hours float64) (int64, string) {
	switch {
	case hours <= DaycareShortMaxH:
		return DaycareShortFee, "3시간 이하"
	case hours <= DaycareHalfDayMaxH:
		return DaycareHalfDayFee, "6시간 이하"
	default:
		return DaycareFullDayFee, "6시간 초과"
	}
}

// discounted truncates toward zero, it does not round.
func discounted(total, count int64) int64 {
	if count <= 1 {
		return total
	}
	return int64(float64(total) * MultiAnimalRate)
}

func elapsedHours(r stay.Range) float64 {
	return r.Elapsed().Seconds() / 3600.0
}

// FormatWon renders an amount the way the booking desk quotes it: "136,000원".
func FormatWon(amount int64) string {
	return humanize.Comma(amount) + "원"
}
