package response

import (
	"time"

	"courtbook/internal/domain/pricing"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID             `json:"id"`
	CourtID    uuid.UUID             `json:"court_id"`
	CourtName  string                `json:"court_name"`
	UserID     uuid.UUID             `json:"user_id"`
	CoachID    *uuid.UUID            `json:"coach_id,omitempty"`
	CoachName  *string               `json:"coach_name,omitempty"`
	StartTime  time.Time             `json:"start_time"`
	EndTime    time.Time             `json:"end_time"`
	Status     string                `json:"status"`
	TotalPrice int64                 `json:"total_price"`
	Breakdown  QuoteResponse         `json:"breakdown"`
	Equipment  []BookingLineResponse `json:"equipment"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

type BookingLineResponse struct {
	EquipmentID uuid.UUID `json:"equipment_id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
}

type BookingListResponse struct {
	ID        uuid.UUID `json:"id"`
	CourtID   uuid.UUID `json:"court_id"`
	CourtName string    `json:"court_name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

// QuoteResponse itemizes a price: the modifier labels come pre-rendered
// ("Peak Hours (x1.5 +0)") so clients can print the receipt verbatim.
type QuoteResponse struct {
	CourtFee     float64             `json:"court_fee"`
	Modifiers    []string            `json:"modifiers"`
	CoachFee     float64             `json:"coach_fee"`
	EquipmentFee float64             `json:"equipment_fee"`
	Equipment    []QuoteLineResponse `json:"equipment_lines,omitempty"`
	Total        int64               `json:"total"`
}

type QuoteLineResponse struct {
	EquipmentID uuid.UUID `json:"equipment_id"`
	Name        string    `json:"name,omitempty"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Found       bool      `json:"found"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

func FromQuote(q pricing.Quote) QuoteResponse {
	lines := make([]QuoteLineResponse, len(q.Lines))
	for i, line := range q.Lines {
		lines[i] = QuoteLineResponse{
			EquipmentID: line.ItemID,
			Name:        line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Found:       line.Found,
		}
	}
	return QuoteResponse{
		CourtFee:     q.CourtFee,
		Modifiers:    q.ModifierLabels(),
		CoachFee:     q.CoachFee,
		EquipmentFee: q.EquipmentFee,
		Equipment:    lines,
		Total:        q.Total,
	}
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	equipment := make([]BookingLineResponse, len(rm.Equipment))
	for i, line := range rm.Equipment {
		equipment[i] = BookingLineResponse{
			EquipmentID: line.EquipmentID,
			Name:        line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		}
	}
	return &BookingResponse{
		ID:         rm.ID,
		CourtID:    rm.CourtID,
		CourtName:  rm.CourtName,
		UserID:     rm.UserID,
		CoachID:    rm.CoachID,
		CoachName:  rm.CoachName,
		StartTime:  rm.StartTime,
		EndTime:    rm.EndTime,
		Status:     rm.Status,
		TotalPrice: rm.TotalPrice,
		Breakdown:  FromQuote(rm.Breakdown),
		Equipment:  equipment,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:        rm.ID,
		CourtID:   rm.CourtID,
		CourtName: rm.CourtName,
		StartTime: rm.StartTime,
		EndTime:   rm.EndTime,
		Status:    rm.Status,
	}
}
