package commands

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// EquipmentLineRecord is one persisted booking line with the unit price
// snapshotted at confirmation time.
type EquipmentLineRecord struct {
	EquipmentID uuid.UUID
	Quantity    int
	UnitPrice   float64
}

type BookingRepository interface {
	// HasConflict runs the half-open overlap test against confirmed
	// bookings only.
	HasConflict(ctx context.Context, tx db.DBTX, courtID uuid.UUID, start, end time.Time) (bool, error)
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	AddLines(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, lines []EquipmentLineRecord) error
}

type CourtRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.CourtSnapshot, error)
}

type CoachRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.CoachSnapshot, error)
}

type EquipmentRepository interface {
	// FindByIDs returns only the rows that exist; missing ids are simply
	// absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*shared.EquipmentSnapshot, error)
}

type PricingRuleRepository interface {
	// ListOrdered returns the full rule catalog ordered by persisted
	// priority, then id.
	ListOrdered(ctx context.Context) ([]*shared.RuleSnapshot, error)
}
