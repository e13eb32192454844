package tariff

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycalc/internal/stay"
)

var checkIn = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func span(d time.Duration) stay.Range {
	return stay.Range{Start: checkIn, End: checkIn.Add(d)}
}

func TestHoteling(t *testing.T) {
	tests := []struct {
		name string
		req  HotelingRequest
		want int64
	}{
		{
			name: "one night",
			req:  HotelingRequest{Range: span(24 * time.Hour), AnimalCount: 1},
			want: 30000,
		},
		{
			name: "one night with late checkout",
			req:  HotelingRequest{Range: span(28 * time.Hour), AnimalCount: 1},
			want: 40000,
		},
		{
			name: "exactly three hours over is not late",
			req:  HotelingRequest{Range: span(27 * time.Hour), AnimalCount: 1},
			want: 30000,
		},
		{
			name: "two nights two animals with diaper",
			req:  HotelingRequest{Range: span(48 * time.Hour), AnimalCount: 2, Diaper: true},
			want: 122400,
		},
		{
			name: "same day short stay costs nothing without add-ons",
			req:  HotelingRequest{Range: span(time.Hour), AnimalCount: 1},
			want: 0,
		},
		{
			name: "same day long stay only pays the surcharge",
			req:  HotelingRequest{Range: span(5 * time.Hour), AnimalCount: 1},
			want: 10000,
		},
		{
			name: "diaper charged at least one day",
			req:  HotelingRequest{Range: span(2 * time.Hour), AnimalCount: 1, Diaper: true},
			want: 2000,
		},
		{
			name: "bath single animal",
			req:  HotelingRequest{Range: span(24 * time.Hour), AnimalCount: 1, Bath: true},
			want: 50000,
		},
		{
			// (30000 + 10000 + 2000*1*3 + 20000*3) * 3 = 318000, then 10% off.
			name: "everything for three animals",
			req:  HotelingRequest{Range: span(24*time.Hour + 4*time.Hour), AnimalCount: 3, Diaper: true, Bath: true},
			want: 286200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hoteling(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHotelingBreakdown(t *testing.T) {
	b, err := HotelingBreakdown(HotelingRequest{Range: span(48 * time.Hour), AnimalCount: 2, Diaper: true})
	require.NoError(t, err)

	assert.Equal(t, int64(2), b.Nights)
	assert.Equal(t, int64(60000), b.Base)
	assert.Zero(t, b.Surcharge)
	assert.Equal(t, int64(8000), b.Diaper)
	assert.Zero(t, b.Bath)
	assert.Equal(t, int64(68000), b.Subtotal)
	assert.Equal(t, int64(2), b.Multiplier)
	assert.Equal(t, int64(136000), b.Gross)
	assert.Equal(t, int64(13600), b.Discount)
	assert.Equal(t, int64(122400), b.Total)
	assert.InDelta(t, 48.0, b.Hours, 1e-9)
}

func TestDaycare(t *testing.T) {
	tests := []struct {
		name string
		req  DaycareRequest
		want int64
	}{
		{"two hours", DaycareRequest{Range: span(2 * time.Hour), AnimalCount: 1}, 10000},
		{"exactly three hours", DaycareRequest{Range: span(3 * time.Hour), AnimalCount: 1}, 10000},
		{"just over three hours", DaycareRequest{Range: span(3*time.Hour + time.Minute), AnimalCount: 1}, 15000},
		{"four hours", DaycareRequest{Range: span(4 * time.Hour), AnimalCount: 1}, 15000},
		{"exactly six hours", DaycareRequest{Range: span(6 * time.Hour), AnimalCount: 1}, 15000},
		{"seven hours", DaycareRequest{Range: span(7 * time.Hour), AnimalCount: 1}, 20000},
		{"no per hour charge past the top tier", DaycareRequest{Range: span(11 * time.Hour), AnimalCount: 1}, 20000},
		{"three animals with diaper", DaycareRequest{Range: span(2 * time.Hour), AnimalCount: 3, Diaper: true}, 32400},
		{"single animal with diaper", DaycareRequest{Range: span(7 * time.Hour), AnimalCount: 1, Diaper: true}, 22000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Daycare(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaycareBreakdown(t *testing.T) {
	b, err := DaycareBreakdown(DaycareRequest{Range: span(2 * time.Hour), AnimalCount: 3, Diaper: true})
	require.NoError(t, err)

	assert.Equal(t, "3시간 이하", b.Tier)
	assert.Equal(t, int64(30000), b.Base)
	assert.Equal(t, int64(6000), b.Diaper)
	assert.Equal(t, int64(36000), b.Gross)
	assert.Equal(t, int64(3600), b.Discount)
	assert.Equal(t, int64(32400), b.Total)
	assert.Equal(t, int64(1), b.Multiplier)
}

func TestHoteling_AcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	for _, r := range []stay.Range{
		{Start: time.Date(2024, 3, 9, 9, 0, 0, 0, ny), End: time.Date(2024, 3, 10, 9, 0, 0, 0, ny)},
		{Start: time.Date(2024, 11, 2, 9, 0, 0, 0, ny), End: time.Date(2024, 11, 3, 9, 0, 0, 0, ny)},
	} {
		b, err := HotelingBreakdown(HotelingRequest{Range: r, AnimalCount: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(1), b.Nights)
		assert.Zero(t, b.Surcharge)
		assert.Equal(t, int64(30000), b.Total)
	}
}

func TestInvalidRange(t *testing.T) {
	ranges := []stay.Range{
		span(0),
		span(-time.Minute),
		span(-30 * time.Hour),
	}

	for _, r := range ranges {
		fee, err := Hoteling(HotelingRequest{Range: r, AnimalCount: 2, Diaper: true, Bath: true})
		assert.Zero(t, fee)
		assert.True(t, stay.IsInvalidRange(err))

		fee, err = Daycare(DaycareRequest{Range: r, AnimalCount: 2, Diaper: true})
		assert.Zero(t, fee)
		assert.True(t, stay.IsInvalidRange(err))
	}
}

func TestIdempotent(t *testing.T) {
	hreq := HotelingRequest{Range: span(53*time.Hour + 17*time.Minute), AnimalCount: 4, Diaper: true, Bath: true}
	dreq := DaycareRequest{Range: span(5 * time.Hour), AnimalCount: 4, Diaper: true}

	h1, err := Hoteling(hreq)
	require.NoError(t, err)
	h2, err := Hoteling(hreq)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	d1, err := Daycare(dreq)
	require.NoError(t, err)
	d2, err := Daycare(dreq)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestFormatWon(t *testing.T) {
	assert.Equal(t, "0원", FormatWon(0))
	assert.Equal(t, "30,000원", FormatWon(30000))
	assert.Equal(t, "122,400원", FormatWon(122400))
	assert.Equal(t, "1,234,567원", FormatWon(1234567))
}
