package pricing

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CoachCharge is a resolved coach add-on fed into a quote.
type CoachCharge struct {
	ID         uuid.UUID
	Name       string
	HourlyRate float64
}

// EquipmentCharge is one resolved equipment line. A line whose item id did
// not resolve against the catalog keeps Found=false and contributes zero,
// so silently dropped add-ons stay visible on the receipt.
type EquipmentCharge struct {
	ItemID    uuid.UUID `json:"item_id"`
	Name      string    `json:"name,omitempty"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Found     bool      `json:"found"`
}

func (c EquipmentCharge) Cost() float64 {
	if !c.Found {
		return 0
	}
	return c.UnitPrice * float64(c.Quantity)
}

// Quote is the itemized result of a price calculation. Fees are kept as
// decimals; only the final total is rounded, half-up, to whole currency
// units.
type Quote struct {
	CourtFee     float64           `json:"court_fee"`
	Modifiers    []AppliedRule     `json:"modifiers"`
	CoachFee     float64           `json:"coach_fee"`
	EquipmentFee float64           `json:"equipment_fee"`
	Lines        []EquipmentCharge `json:"equipment_lines,omitempty"`
	Total        int64             `json:"total"`
}

// ModifierLabels renders the applied modifiers as receipt strings.
func (q Quote) ModifierLabels() []string {
	labels := make([]string, len(q.Modifiers))
	for i, m := range q.Modifiers {
		labels[i] = m.Label()
	}
	return labels
}

// Calculator composes the court rate, the rule set, and the optional
// add-ons into a total. It is a pure function of its inputs: no lookups,
// no writes, safe to call repeatedly for live previews.
type Calculator struct {
	rules    RuleSet
	location *time.Location
}

func NewCalculator(rules RuleSet, location *time.Location) Calculator {
	if location == nil {
		location = time.UTC
	}
	return Calculator{rules: rules, location: location}
}

// Quote prices a window on a court. start/end must be a valid half-open
// window; hours may be fractional. Rule predicates evaluate against the
// window start in the calculator's business timezone. The coach fee is
// flat per hour and never passes through rule multipliers.
func (c Calculator) Quote(baseRate float64, start, end time.Time, coach *CoachCharge, lines []EquipmentCharge) Quote {
	hours := end.Sub(start).Hours()
	localStart := start.In(c.location)

	rate, applied := c.rules.Apply(baseRate, localStart)

	q := Quote{
		CourtFee:  rate * hours,
		Modifiers: applied,
		Lines:     lines,
	}

	if coach != nil {
		q.CoachFee = coach.HourlyRate * hours
	}
	for _, line := range lines {
		q.EquipmentFee += line.Cost()
	}

	q.Total = RoundHalfUp(q.CourtFee + q.CoachFee + q.EquipmentFee)
	return q
}

// RoundHalfUp rounds to the nearest whole currency unit; exact halves
// round up (0.5 -> 1).
func RoundHalfUp(amount float64) int64 {
	return int64(math.Floor(amount + 0.5))
}
