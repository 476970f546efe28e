package coach

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyCoachName = errors.New("coach name cannot be empty")
	ErrNegativeRate   = errors.New("coach hourly rate cannot be negative")
	ErrCoachInactive  = errors.New("coach is not active")
)

// Coach is an optional booking add-on. The coach fee is charged flat per
// hour and is never affected by pricing rule multipliers.
type Coach struct {
	id             uuid.UUID
	name           string
	specialization string
	hourlyRate     float64
	isActive       bool
}

func NewCoach(id uuid.UUID, name, specialization string, hourlyRate float64, isActive bool) (*Coach, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCoachName
	}
	if hourlyRate < 0 {
		return nil, ErrNegativeRate
	}

	return &Coach{
		id:             id,
		name:           name,
		specialization: specialization,
		hourlyRate:     hourlyRate,
		isActive:       isActive,
	}, nil
}

func (c *Coach) ID() uuid.UUID          { return c.id }
func (c *Coach) Name() string           { return c.name }
func (c *Coach) Specialization() string { return c.specialization }
func (c *Coach) HourlyRate() float64    { return c.hourlyRate }
func (c *Coach) IsActive() bool         { return c.isActive }
