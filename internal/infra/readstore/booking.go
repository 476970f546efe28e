package readstore

import (
	"context"
	"encoding/json"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.court_id, c.name AS court_name, b.user_id,
		       b.coach_id, co.name AS coach_name,
		       b.start_time, b.end_time, b.status, b.total_price, b.breakdown,
		       b.created_at, b.updated_at
		FROM bookings b
		JOIN courts c ON c.id = b.court_id
		LEFT JOIN coaches co ON co.id = b.coach_id
		WHERE b.id = $1`

	var (
		view      queries.BookingView
		coachID   pgtype.UUID
		coachName pgtype.Text
		breakdown []byte
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.CourtID, &view.CourtName, &view.UserID,
		&coachID, &coachName,
		&view.StartTime, &view.EndTime, &view.Status, &view.TotalPrice, &breakdown,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.CoachID = pgconv.UUIDPtrFromPgtype(coachID)
	view.CoachName = pgconv.StringPtrFromPgtype(coachName)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	if err := json.Unmarshal(breakdown, &view.Breakdown); err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking breakdown", err)
	}

	lines, err := r.findLines(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Equipment = lines

	return &view, nil
}

func (r *BookingReadStore) findLines(ctx context.Context, bookingID uuid.UUID) ([]queries.BookingLineView, error) {
	const query = `
		SELECT be.equipment_id, e.name, be.quantity, be.unit_price
		FROM booking_equipment be
		JOIN equipment e ON e.id = be.equipment_id
		WHERE be.booking_id = $1
		ORDER BY e.name`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking equipment lines", err)
	}
	defer rows.Close()

	lines := []queries.BookingLineView{}
	for rows.Next() {
		var line queries.BookingLineView
		if err := rows.Scan(&line.EquipmentID, &line.Name, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking equipment row", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking equipment rows", err)
	}
	return lines, nil
}

// HasOverlap applies the half-open interval test: an existing confirmed
// booking conflicts iff existing.start < end AND existing.end > start.
func (r *BookingReadStore) HasOverlap(ctx context.Context, courtID uuid.UUID, start, end time.Time) (bool, error) {
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
	if err := r.db.QueryRow(ctx, query, courtID, start, end).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *BookingReadStore) ListByRange(ctx context.Context, from, to time.Time) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.court_id, c.name AS court_name,
		       b.start_time, b.end_time, b.status
		FROM bookings b
		JOIN courts c ON c.id = b.court_id
		WHERE b.status = 'confirmed'
		  AND b.start_time >= $1
		  AND b.start_time < $2
		ORDER BY b.start_time, b.id`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by range", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(&item.ID, &item.CourtID, &item.CourtName, &item.StartTime, &item.EndTime, &item.Status)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}
