package queries

import (
	"context"
	"time"

	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID         uuid.UUID         `json:"id"`
	CourtID    uuid.UUID         `json:"court_id"`
	CourtName  string            `json:"court_name"`
	UserID     uuid.UUID         `json:"user_id"`
	CoachID    *uuid.UUID        `json:"coach_id,omitempty"`
	CoachName  *string           `json:"coach_name,omitempty"`
	StartTime  time.Time         `json:"start_time"`
	EndTime    time.Time         `json:"end_time"`
	Status     string            `json:"status"`
	TotalPrice int64             `json:"total_price"`
	Breakdown  pricing.Quote     `json:"breakdown"`
	Equipment  []BookingLineView `json:"equipment"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type BookingLineView struct {
	EquipmentID uuid.UUID `json:"equipment_id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
}

type BookingListItem struct {
	ID        uuid.UUID `json:"id"`
	CourtID   uuid.UUID `json:"court_id"`
	CourtName string    `json:"court_name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

type CourtView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CourtType string    `json:"court_type"`
	BaseRate  float64   `json:"base_rate"`
	IsActive  bool      `json:"is_active"`
}

type CoachView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	HourlyRate     float64   `json:"hourly_rate"`
	IsActive       bool      `json:"is_active"`
}

type EquipmentView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	EquipmentType string    `json:"equipment_type"`
	TotalStock    int       `json:"total_stock"`
	UnitPrice     float64   `json:"unit_price"`
}

type EquipmentLineParam struct {
	EquipmentID uuid.UUID
	Quantity    int
}

type PreviewPriceParams struct {
	CourtID uuid.UUID
	Start   time.Time
	End     time.Time
	CoachID *uuid.UUID
	Lines   []EquipmentLineParam
}

type BookingQueries interface {
	// CheckAvailability is true iff no confirmed booking on the court
	// overlaps [start, end).
	CheckAvailability(ctx context.Context, courtID uuid.UUID, start, end time.Time) (bool, error)
	// PreviewPrice computes an itemized quote without writing anything.
	PreviewPrice(ctx context.Context, params PreviewPriceParams) (*pricing.Quote, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListByDay returns confirmed bookings whose window starts on the
	// given calendar day of the business timezone.
	ListByDay(ctx context.Context, day time.Time) ([]*BookingListItem, error)
}

type CatalogQueries interface {
	ListCourts(ctx context.Context) ([]*CourtView, error)
	ListCoaches(ctx context.Context) ([]*CoachView, error)
	ListEquipment(ctx context.Context) ([]*EquipmentView, error)
}
