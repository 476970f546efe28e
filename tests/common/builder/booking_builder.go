//go:build unit || e2e

package builder

import (
	"time"

	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	CourtID   uuid.UUID
	CourtName string
	UserID    uuid.UUID
	CoachID   *uuid.UUID
	CoachName *string
	StartTime time.Time
	EndTime   time.Time
	Status    string
	Total     int64
	Equipment []reqdto.EquipmentLineRequest
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	ist := time.FixedZone("IST", 5*3600+1800)
	start := time.Date(2026, 3, 9, 18, 0, 0, 0, ist)
	now := time.Now()
	return &BookingBuilder{
		ID:        uuid.New(),
		CourtID:   uuid.New(),
		CourtName: "Center Court",
		UserID:    uuid.New(),
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    "confirmed",
		Total:     300,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CourtID:   b.CourtID,
		StartTime: b.StartTime.Format(time.RFC3339),
		EndTime:   b.EndTime.Format(time.RFC3339),
		CoachID:   b.CoachID,
		Equipment: b.Equipment,
	}
}

func (b *BookingBuilder) BuildCheckRequestDTO() reqdto.CheckAvailabilityRequest {
	return reqdto.CheckAvailabilityRequest{
		CourtID:   b.CourtID,
		StartTime: b.StartTime.Format(time.RFC3339),
		EndTime:   b.EndTime.Format(time.RFC3339),
	}
}

func (b *BookingBuilder) BuildQuoteRequestDTO() reqdto.PreviewPriceRequest {
	return reqdto.PreviewPriceRequest{
		CourtID:   b.CourtID,
		StartTime: b.StartTime.Format(time.RFC3339),
		EndTime:   b.EndTime.Format(time.RFC3339),
		CoachID:   b.CoachID,
		Equipment: b.Equipment,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		CourtID:    b.CourtID,
		CourtName:  b.CourtName,
		UserID:     b.UserID,
		CoachID:    b.CoachID,
		CoachName:  b.CoachName,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Status:     b.Status,
		TotalPrice: b.Total,
		Equipment:  []queries.BookingLineView{},
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:        b.ID,
		CourtID:   b.CourtID,
		CourtName: b.CourtName,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status,
	}
}
