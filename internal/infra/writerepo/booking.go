package writerepo

import (
	"context"
	"encoding/json"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// HasConflict runs inside the caller's transaction so the check and the
// subsequent insert observe a consistent snapshot. The exclusion
// constraint on bookings remains the authoritative guard.
func (r *BookingRepository) HasConflict(ctx context.Context, tx db.DBTX, courtID uuid.UUID, start, end time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM bookings
			WHERE court_id = $1
			  AND status = 'confirmed'
			  AND start_time < $3
			  AND end_time > $2
		)`

	var exists bool
	if err := tx.QueryRow(ctx, query, courtID, start, end).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking conflict", err)
	}
	return exists, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	breakdown, err := json.Marshal(b.Breakdown())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode booking breakdown", err)
	}

	const query = `
		INSERT INTO bookings (
			id, court_id, user_id, coach_id,
			start_time, end_time, status, total_price, breakdown
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = tx.Exec(ctx, query,
		b.ID(), b.CourtID(), b.UserID(), pgconv.UUIDPtrToPgtype(b.CoachID()),
		b.Window().Start(), b.Window().End(), string(b.Status()), b.Total().Units(), breakdown,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return b.ID(), nil
}

func (r *BookingRepository) AddLines(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, lines []commands.EquipmentLineRecord) error {
	const query = `
		INSERT INTO booking_equipment (booking_id, equipment_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)`

	for _, line := range lines {
		_, err := tx.Exec(ctx, query, bookingID, line.EquipmentID, line.Quantity, line.UnitPrice)
		if err != nil {
			return infra.WrapRepoErr("failed to add booking equipment line", err)
		}
	}
	return nil
}
