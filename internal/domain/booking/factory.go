package booking

import (
	"time"

	"courtbook/internal/domain/coach"
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/equipment"
	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
)

// ResolvedLine pairs a requested equipment line with its catalog item.
// Item stays nil when the id did not resolve; the line is still priced
// (at zero) so the miss remains visible on the receipt.
type ResolvedLine struct {
	Line equipment.Line
	Item *equipment.Item
}

// Factory assembles a confirmed booking from catalog state. It owns the
// business-timezone location used for rule predicates.
type Factory struct {
	location *time.Location
}

func NewFactory(location *time.Location) *Factory {
	if location == nil {
		location = time.UTC
	}
	return &Factory{location: location}
}

// CreateBooking validates the court, prices the window against the rule
// snapshot, and returns a confirmed booking entity ready to persist. The
// caller has already resolved coach and equipment against the catalog.
func (f *Factory) CreateBooking(
	courtEntity *court.Court,
	userID uuid.UUID,
	window TimeWindow,
	rules pricing.RuleSet,
	coachEntity *coach.Coach,
	resolved []ResolvedLine,
) (*Booking, error) {
	if err := courtEntity.EnsureBookable(); err != nil {
		return nil, err
	}

	quote := f.QuoteBooking(courtEntity, window, rules, coachEntity, resolved)

	var coachID *uuid.UUID
	if coachEntity != nil {
		id := coachEntity.ID()
		coachID = &id
	}

	lines := make([]equipment.Line, 0, len(resolved))
	for _, r := range resolved {
		if r.Item != nil {
			lines = append(lines, r.Line)
		}
	}

	return NewConfirmedBooking(courtEntity.ID(), userID, coachID, window, quote, lines)
}

// QuoteBooking prices a window without creating anything. Used directly
// for live price previews.
func (f *Factory) QuoteBooking(
	courtEntity *court.Court,
	window TimeWindow,
	rules pricing.RuleSet,
	coachEntity *coach.Coach,
	resolved []ResolvedLine,
) pricing.Quote {
	var coachCharge *pricing.CoachCharge
	if coachEntity != nil {
		coachCharge = &pricing.CoachCharge{
			ID:         coachEntity.ID(),
			Name:       coachEntity.Name(),
			HourlyRate: coachEntity.HourlyRate(),
		}
	}

	charges := make([]pricing.EquipmentCharge, 0, len(resolved))
	for _, r := range resolved {
		charge := pricing.EquipmentCharge{
			ItemID:   r.Line.ItemID,
			Quantity: r.Line.Quantity,
		}
		if r.Item != nil {
			charge.Name = r.Item.Name()
			charge.UnitPrice = r.Item.UnitPrice()
			charge.Found = true
		}
		charges = append(charges, charge)
	}

	calc := pricing.NewCalculator(rules, f.location)
	return calc.Quote(courtEntity.BaseRate(), window.Start(), window.End(), coachCharge, charges)
}
