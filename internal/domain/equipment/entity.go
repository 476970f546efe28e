package equipment

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyItemName   = errors.New("equipment name cannot be empty")
	ErrInvalidItemType = errors.New("invalid equipment type")
	ErrNegativePrice   = errors.New("equipment unit price cannot be negative")
	ErrInvalidQuantity = errors.New("equipment quantity must be positive")
)

type Type string

const (
	TypeRacket      Type = "racket"
	TypeShoes       Type = "shoes"
	TypeShuttlecock Type = "shuttlecock"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeRacket, TypeShoes, TypeShuttlecock:
		return true
	default:
		return false
	}
}

// Item is rentable equipment charged per unit. TotalStock is advisory
// only; the booking engine does not enforce stock limits.
type Item struct {
	id         uuid.UUID
	name       string
	itemType   Type
	totalStock int
	unitPrice  float64
}

func NewItem(id uuid.UUID, name string, itemType Type, totalStock int, unitPrice float64) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyItemName
	}
	if !itemType.IsValid() {
		return nil, ErrInvalidItemType
	}
	if unitPrice < 0 {
		return nil, ErrNegativePrice
	}

	return &Item{
		id:         id,
		name:       name,
		itemType:   itemType,
		totalStock: totalStock,
		unitPrice:  unitPrice,
	}, nil
}

func (i *Item) ID() uuid.UUID      { return i.id }
func (i *Item) Name() string       { return i.name }
func (i *Item) ItemType() Type     { return i.itemType }
func (i *Item) TotalStock() int    { return i.totalStock }
func (i *Item) UnitPrice() float64 { return i.unitPrice }

// Line is a requested (item, quantity) pair on a booking.
type Line struct {
	ItemID   uuid.UUID
	Quantity int
}

func NewLine(itemID uuid.UUID, quantity int) (Line, error) {
	if quantity <= 0 {
		return Line{}, ErrInvalidQuantity
	}
	return Line{ItemID: itemID, Quantity: quantity}, nil
}
