//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ist(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func mustRule(t *testing.T, spec pricing.RuleSpec) pricing.Rule {
	t.Helper()
	r, err := pricing.NewRule(spec)
	require.NoError(t, err)
	return r
}

func peakRule(t *testing.T, name string, startHour, endHour int, mult, add float64, priority int) pricing.Rule {
	t.Helper()
	return mustRule(t, pricing.RuleSpec{
		ID:         uuid.New(),
		Name:       name,
		Kind:       pricing.KindPeakHour,
		Multiplier: mult,
		Addition:   add,
		StartHour:  startHour,
		EndHour:    endHour,
		Priority:   priority,
	})
}

func dayRule(t *testing.T, name string, kind pricing.Kind, days []time.Weekday, mult, add float64, priority int) pricing.Rule {
	t.Helper()
	return mustRule(t, pricing.RuleSpec{
		ID:         uuid.New(),
		Name:       name,
		Kind:       kind,
		Multiplier: mult,
		Addition:   add,
		Days:       days,
		Priority:   priority,
	})
}

func TestNewRule(t *testing.T) {
	tests := []struct {
		name string
		spec pricing.RuleSpec
		err  error
	}{
		{
			name: "valid peak rule",
			spec: pricing.RuleSpec{ID: uuid.New(), Name: "Peak Hours", Kind: pricing.KindPeakHour, Multiplier: 1.5, StartHour: 18, EndHour: 21},
		},
		{
			name: "valid weekend rule",
			spec: pricing.RuleSpec{ID: uuid.New(), Name: "Weekend", Kind: pricing.KindWeekend, Multiplier: 1.2, Days: []time.Weekday{time.Saturday, time.Sunday}},
		},
		{
			name: "empty name",
			spec: pricing.RuleSpec{ID: uuid.New(), Name: "  ", Kind: pricing.KindWeekend, Multiplier: 1, Days: []time.Weekday{time.Saturday}},
			err:  pricing.ErrEmptyRuleName,
		},
		{
			name: "unknown kind",
			spec: pricing.RuleSpec{ID: uuid.New(), Name: "x", Kind: "happy_hour", Multiplier: 1},
			err:  pricing.ErrInvalidRuleKind,
		},
		{
			name: "negative multiplier",
			spec: pricing.RuleSpec{ID: uuid.New(), Name: "x", Kind: pricing.KindWeekend, Multiplier: -1, Days: []time.Weekday{time.Sunday}},
			err:  pricing.ErrNegativeMultiplier,
		},
		{
			name: "peak rule without hour range",
			spec: pricing.RuleSpec{ID: uuid.New(), Name: "x", Kind: pricing.KindPeakHour, Multiplier: 1.5},
			err:  pricing.ErrMissingHourRange,
		},
		{
			name: "peak rule with inverted range",
			spec: pricing.RuleSpec{ID: uuid.New(), Name: "x", Kind: pricing.KindPeakHour, Multiplier: 1.5, StartHour: 21, EndHour: 18},
			err:  pricing.ErrInvalidHourRange,
		},
		{
			name: "weekend rule without days",
			spec: pricing.RuleSpec{ID: uuid.New(), Name: "x", Kind: pricing.KindWeekend, Multiplier: 1.2},
			err:  pricing.ErrMissingDays,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pricing.NewRule(tt.spec)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRuleSetApply(t *testing.T) {
	loc := ist(t)

	// 2026-09-04 is a Friday, 2026-09-05 a Saturday.
	fridayEvening := time.Date(2026, 9, 4, 18, 0, 0, 0, loc)
	saturdayMorning := time.Date(2026, 9, 5, 10, 0, 0, 0, loc)
	saturdayEvening := time.Date(2026, 9, 5, 18, 30, 0, 0, loc)

	peak := peakRule(t, "Peak Hours", 18, 21, 1.5, 0, 1)
	weekend := dayRule(t, "Weekend", pricing.KindWeekend, []time.Weekday{time.Saturday, time.Sunday}, 1.2, 0, 2)

	t.Run("empty set returns base rate unchanged", func(t *testing.T) {
		rate, applied := pricing.NewRuleSet(nil).Apply(200, fridayEvening)
		assert.Equal(t, 200.0, rate)
		assert.Empty(t, applied)
	})

	t.Run("peak rule matches start hour in half-open range", func(t *testing.T) {
		rs := pricing.NewRuleSet([]pricing.Rule{peak})

		rate, applied := rs.Apply(200, fridayEvening)
		assert.Equal(t, 300.0, rate)
		require.Len(t, applied, 1)
		assert.Equal(t, "Peak Hours (x1.5 +0)", applied[0].Label())

		// 21:00 is outside [18, 21)
		rate, applied = rs.Apply(200, time.Date(2026, 9, 4, 21, 0, 0, 0, loc))
		assert.Equal(t, 200.0, rate)
		assert.Empty(t, applied)
	})

	t.Run("weekend rule matches start weekday", func(t *testing.T) {
		rs := pricing.NewRuleSet([]pricing.Rule{weekend})

		rate, _ := rs.Apply(100, saturdayMorning)
		assert.Equal(t, 120.0, rate)

		rate, applied := rs.Apply(100, fridayEvening)
		assert.Equal(t, 100.0, rate)
		assert.Empty(t, applied)
	})

	t.Run("rules of different kinds compound", func(t *testing.T) {
		rs := pricing.NewRuleSet([]pricing.Rule{peak, weekend})

		rate, applied := rs.Apply(200, saturdayEvening)
		assert.InDelta(t, 200*1.5*1.2, rate, 1e-9)
		require.Len(t, applied, 2)
		assert.Equal(t, "Peak Hours", applied[0].Name)
		assert.Equal(t, "Weekend", applied[1].Name)
	})

	t.Run("priority pins order for non-commuting rules", func(t *testing.T) {
		double := dayRule(t, "Tournament Day", pricing.KindHoliday, []time.Weekday{time.Saturday}, 2, 0, 2)
		plusFifty := dayRule(t, "Maintenance Levy", pricing.KindHoliday, []time.Weekday{time.Saturday}, 1, 50, 1)

		// Insertion order says double first, priority says levy first:
		// (100*1 + 50) * 2 = 300, not 100*2 + 50 = 250.
		rs := pricing.NewRuleSet([]pricing.Rule{double, plusFifty})
		rate, applied := rs.Apply(100, saturdayMorning)
		assert.Equal(t, 300.0, rate)
		require.Len(t, applied, 2)
		assert.Equal(t, "Maintenance Levy", applied[0].Name)
	})

	t.Run("apply is deterministic across calls", func(t *testing.T) {
		rs := pricing.NewRuleSet([]pricing.Rule{weekend, peak})
		rate1, applied1 := rs.Apply(200, saturdayEvening)
		rate2, applied2 := rs.Apply(200, saturdayEvening)
		assert.Equal(t, rate1, rate2)
		assert.Equal(t, applied1, applied2)
	})
}
