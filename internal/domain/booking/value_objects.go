package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidWindow = errors.New("window end must be after start")

// TimeWindow is a half-open interval [start, end). A reservation ending
// exactly when another begins does not overlap it.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !end.After(start) {
		return TimeWindow{}, ErrInvalidWindow
	}
	return TimeWindow{start: start, end: end}, nil
}

func (w TimeWindow) Start() time.Time { return w.start }
func (w TimeWindow) End() time.Time   { return w.end }

// Overlaps implements the half-open intersection test
// a.start < b.end && a.end > b.start.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && w.end.After(other.start)
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// DurationHours may be fractional (a 90 minute window is 1.5 hours).
func (w TimeWindow) DurationHours() float64 {
	return w.Duration().Hours()
}

// ToTstzrange renders the window for the Postgres range exclusion
// constraint on bookings.
func (w TimeWindow) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// Money is an amount in whole currency units. Fees are computed as
// decimals; only the booking total is stored as Money, rounded half-up at
// quote time.
type Money struct {
	units int64
}

func NewMoney(units int64) Money {
	return Money{units: units}
}

func (m Money) Units() int64 { return m.units }

func (m Money) Add(other Money) Money {
	return Money{units: m.units + other.units}
}
