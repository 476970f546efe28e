package request

import (
	"time"

	"courtbook/internal/pkg/localtime"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

// Booking timestamps arrive as strings so that naive values ("2026-03-07
// 18:00") can be anchored to the facility timezone instead of whatever
// zone the JSON decoder would assume.
type CreateBookingRequest struct {
	CourtID   uuid.UUID              `json:"court_id" binding:"required"`
	StartTime string                 `json:"start_time" binding:"required"`
	EndTime   string                 `json:"end_time" binding:"required"`
	CoachID   *uuid.UUID             `json:"coach_id,omitempty"`
	Equipment []EquipmentLineRequest `json:"equipment,omitempty"`
}

type EquipmentLineRequest struct {
	EquipmentID uuid.UUID `json:"equipment_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1"`
}

func (r CreateBookingRequest) ToParams(loc *time.Location) (commands.CreateBookingParams, error) {
	start, err := localtime.Parse(r.StartTime, loc)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	end, err := localtime.Parse(r.EndTime, loc)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}

	lines := make([]queries.EquipmentLineParam, len(r.Equipment))
	for i, line := range r.Equipment {
		lines[i] = queries.EquipmentLineParam{
			EquipmentID: line.EquipmentID,
			Quantity:    line.Quantity,
		}
	}

	return commands.CreateBookingParams{
		CourtID: r.CourtID,
		Start:   start,
		End:     end,
		CoachID: r.CoachID,
		Lines:   lines,
	}, nil
}

type CheckAvailabilityRequest struct {
	CourtID   uuid.UUID `json:"court_id" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
	EndTime   string    `json:"end_time" binding:"required"`
}

func (r CheckAvailabilityRequest) Window(loc *time.Location) (time.Time, time.Time, error) {
	start, err := localtime.Parse(r.StartTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := localtime.Parse(r.EndTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

type PreviewPriceRequest struct {
	CourtID   uuid.UUID              `json:"court_id" binding:"required"`
	StartTime string                 `json:"start_time" binding:"required"`
	EndTime   string                 `json:"end_time" binding:"required"`
	CoachID   *uuid.UUID             `json:"coach_id,omitempty"`
	Equipment []EquipmentLineRequest `json:"equipment,omitempty"`
}

func (r PreviewPriceRequest) ToParams(loc *time.Location) (queries.PreviewPriceParams, error) {
	start, err := localtime.Parse(r.StartTime, loc)
	if err != nil {
		return queries.PreviewPriceParams{}, err
	}
	end, err := localtime.Parse(r.EndTime, loc)
	if err != nil {
		return queries.PreviewPriceParams{}, err
	}

	lines := make([]queries.EquipmentLineParam, len(r.Equipment))
	for i, line := range r.Equipment {
		lines[i] = queries.EquipmentLineParam{
			EquipmentID: line.EquipmentID,
			Quantity:    line.Quantity,
		}
	}

	return queries.PreviewPriceParams{
		CourtID: r.CourtID,
		Start:   start,
		End:     end,
		CoachID: r.CoachID,
		Lines:   lines,
	}, nil
}
