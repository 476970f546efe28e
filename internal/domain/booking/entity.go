package booking

import (
	"errors"
	"time"

	"courtbook/internal/domain/equipment"
	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Booking is a confirmed court reservation with its price snapshotted at
// creation time. The total and breakdown are immutable once persisted;
// later catalog edits never reprice an existing booking.
type Booking struct {
	id        uuid.UUID
	courtID   uuid.UUID
	userID    uuid.UUID
	coachID   *uuid.UUID
	window    TimeWindow
	status    Status
	total     Money
	breakdown pricing.Quote
	lines     []equipment.Line
	createdAt time.Time
	updatedAt time.Time
}

func NewConfirmedBooking(
	courtID, userID uuid.UUID,
	coachID *uuid.UUID,
	window TimeWindow,
	quote pricing.Quote,
	lines []equipment.Line,
) (*Booking, error) {
	if quote.Total < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:        uuid.New(),
		courtID:   courtID,
		userID:    userID,
		coachID:   coachID,
		window:    window,
		status:    StatusConfirmed,
		total:     NewMoney(quote.Total),
		breakdown: quote,
		lines:     lines,
	}, nil
}

func Reconstruct(
	id, courtID, userID uuid.UUID,
	coachID *uuid.UUID,
	window TimeWindow,
	status Status,
	total Money,
	breakdown pricing.Quote,
	lines []equipment.Line,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:        id,
		courtID:   courtID,
		userID:    userID,
		coachID:   coachID,
		window:    window,
		status:    status,
		total:     total,
		breakdown: breakdown,
		lines:     lines,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (b *Booking) BlocksSlot() bool {
	return b.status.Blocks()
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) CourtID() uuid.UUID       { return b.courtID }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) CoachID() *uuid.UUID      { return b.coachID }
func (b *Booking) Window() TimeWindow       { return b.window }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Total() Money             { return b.total }
func (b *Booking) Breakdown() pricing.Quote { return b.breakdown }
func (b *Booking) Lines() []equipment.Line  { return b.lines }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
