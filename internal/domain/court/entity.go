package court

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyCourtName   = errors.New("court name cannot be empty")
	ErrCourtNameTooLong = errors.New("court name is too long (max 255 characters)")
	ErrInvalidCourtType = errors.New("invalid court type")
	ErrNonPositiveRate  = errors.New("base rate must be positive")
	ErrCourtNotBookable = errors.New("court is not active")
)

const MaxCourtNameLength = 255

type Type string

const (
	TypeIndoor  Type = "indoor"
	TypeOutdoor Type = "outdoor"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeIndoor, TypeOutdoor:
		return true
	default:
		return false
	}
}

// Court is a bookable physical asset with an hourly base rate. The rate is
// snapshotted into each confirmed booking, so later edits never reprice
// existing reservations.
type Court struct {
	id        uuid.UUID
	name      string
	courtType Type
	baseRate  float64
	isActive  bool
}

func NewCourt(id uuid.UUID, name string, courtType Type, baseRate float64, isActive bool) (*Court, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCourtName
	}
	if len(name) > MaxCourtNameLength {
		return nil, ErrCourtNameTooLong
	}
	if !courtType.IsValid() {
		return nil, ErrInvalidCourtType
	}
	if baseRate <= 0 {
		return nil, ErrNonPositiveRate
	}

	return &Court{
		id:        id,
		name:      name,
		courtType: courtType,
		baseRate:  baseRate,
		isActive:  isActive,
	}, nil
}

func (c *Court) EnsureBookable() error {
	if !c.isActive {
		return ErrCourtNotBookable
	}
	return nil
}

func (c *Court) ID() uuid.UUID     { return c.id }
func (c *Court) Name() string      { return c.name }
func (c *Court) CourtType() Type   { return c.courtType }
func (c *Court) BaseRate() float64 { return c.baseRate }
func (c *Court) IsActive() bool    { return c.isActive }
