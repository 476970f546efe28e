//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatorQuote(t *testing.T) {
	loc := ist(t)
	peak := peakRule(t, "Peak Hours", 18, 21, 1.5, 0, 1)
	weekend := dayRule(t, "Weekend", pricing.KindWeekend, []time.Weekday{time.Saturday, time.Sunday}, 1.2, 0, 2)

	t.Run("peak hour example: 200/hr, 18:00-19:00, x1.5", func(t *testing.T) {
		calc := pricing.NewCalculator(pricing.NewRuleSet([]pricing.Rule{peak}), loc)
		start := time.Date(2026, 9, 4, 18, 0, 0, 0, loc)

		q := calc.Quote(200, start, start.Add(time.Hour), nil, nil)

		assert.Equal(t, 300.0, q.CourtFee)
		assert.Equal(t, int64(300), q.Total)
		assert.Equal(t, []string{"Peak Hours (x1.5 +0)"}, q.ModifierLabels())
		assert.Zero(t, q.CoachFee)
		assert.Zero(t, q.EquipmentFee)
	})

	t.Run("weekend example: 100/hr, 2 hours, x1.2", func(t *testing.T) {
		calc := pricing.NewCalculator(pricing.NewRuleSet([]pricing.Rule{weekend, peak}), loc)
		start := time.Date(2026, 9, 5, 10, 0, 0, 0, loc) // Saturday morning, off-peak

		q := calc.Quote(100, start, start.Add(2*time.Hour), nil, nil)

		assert.InDelta(t, 240.0, q.CourtFee, 1e-9)
		assert.Equal(t, int64(240), q.Total)
	})

	t.Run("coach fee is flat and rule-exempt", func(t *testing.T) {
		calc := pricing.NewCalculator(pricing.NewRuleSet([]pricing.Rule{peak}), loc)
		start := time.Date(2026, 9, 4, 18, 0, 0, 0, loc)
		coach := &pricing.CoachCharge{ID: uuid.New(), Name: "Coach Basil", HourlyRate: 250}

		q := calc.Quote(200, start, start.Add(90*time.Minute), coach, nil)

		// Court: 200*1.5*1.5h = 450; coach: 250*1.5h = 375, untouched by x1.5.
		assert.InDelta(t, 450.0, q.CourtFee, 1e-9)
		assert.InDelta(t, 375.0, q.CoachFee, 1e-9)
		assert.Equal(t, int64(825), q.Total)
	})

	t.Run("equipment lines sum per unit, unresolved lines cost zero", func(t *testing.T) {
		calc := pricing.NewCalculator(pricing.NewRuleSet(nil), loc)
		start := time.Date(2026, 9, 4, 10, 0, 0, 0, loc)
		lines := []pricing.EquipmentCharge{
			{ItemID: uuid.New(), Name: "Yonex Professional Racket", Quantity: 2, UnitPrice: 20, Found: true},
			{ItemID: uuid.New(), Quantity: 3, Found: false},
		}

		q := calc.Quote(100, start, start.Add(time.Hour), nil, lines)

		assert.Equal(t, 40.0, q.EquipmentFee)
		assert.Equal(t, int64(140), q.Total)
		require.Len(t, q.Lines, 2)
		assert.False(t, q.Lines[1].Found)
		assert.Zero(t, q.Lines[1].Cost())
	})

	t.Run("quote is pure and repeatable", func(t *testing.T) {
		calc := pricing.NewCalculator(pricing.NewRuleSet([]pricing.Rule{weekend, peak}), loc)
		start := time.Date(2026, 9, 5, 18, 0, 0, 0, loc)
		coach := &pricing.CoachCharge{ID: uuid.New(), Name: "Coach Tovino", HourlyRate: 150}

		first := calc.Quote(200, start, start.Add(time.Hour), coach, nil)
		second := calc.Quote(200, start, start.Add(time.Hour), coach, nil)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("quote not deterministic (-first +second):\n%s", diff)
		}
	})

	t.Run("rule predicates follow the business timezone", func(t *testing.T) {
		calc := pricing.NewCalculator(pricing.NewRuleSet([]pricing.Rule{peak}), loc)
		// 12:30 UTC == 18:00 IST, inside the peak range only in IST.
		start := time.Date(2026, 9, 4, 12, 30, 0, 0, time.UTC)

		q := calc.Quote(200, start, start.Add(time.Hour), nil, nil)
		assert.Equal(t, int64(300), q.Total)
	})
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{240.0, 240},
		{240.4, 240},
		{240.5, 241},
		{240.6, 241},
		{0.0, 0},
		{0.5, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pricing.RoundHalfUp(tt.in), "RoundHalfUp(%v)", tt.in)
	}
}
