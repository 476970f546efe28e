package shared

import (
	"time"

	"courtbook/internal/domain/coach"
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/equipment"
	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
)

// Catalog snapshots decouple use cases from storage row types. Each one
// converts into its domain entity through the entity constructor so
// invariants are re-checked on the way in.
type CourtSnapshot struct {
	ID        uuid.UUID
	Name      string
	CourtType string
	BaseRate  float64
	IsActive  bool
}

func (s *CourtSnapshot) ToDomain() (*court.Court, error) {
	return court.NewCourt(s.ID, s.Name, court.Type(s.CourtType), s.BaseRate, s.IsActive)
}

type CoachSnapshot struct {
	ID             uuid.UUID
	Name           string
	Specialization string
	HourlyRate     float64
	IsActive       bool
}

func (s *CoachSnapshot) ToDomain() (*coach.Coach, error) {
	return coach.NewCoach(s.ID, s.Name, s.Specialization, s.HourlyRate, s.IsActive)
}

type EquipmentSnapshot struct {
	ID            uuid.UUID
	Name          string
	EquipmentType string
	TotalStock    int
	UnitPrice     float64
}

func (s *EquipmentSnapshot) ToDomain() (*equipment.Item, error) {
	return equipment.NewItem(s.ID, s.Name, equipment.Type(s.EquipmentType), s.TotalStock, s.UnitPrice)
}

type RuleSnapshot struct {
	ID         uuid.UUID
	Name       string
	Kind       string
	Multiplier float64
	Addition   float64
	StartHour  int
	EndHour    int
	Days       []int
	Priority   int
}

func (s *RuleSnapshot) ToDomain() (pricing.Rule, error) {
	days := make([]time.Weekday, len(s.Days))
	for i, d := range s.Days {
		days[i] = time.Weekday(d)
	}
	return pricing.NewRule(pricing.RuleSpec{
		ID:         s.ID,
		Name:       s.Name,
		Kind:       pricing.Kind(s.Kind),
		Multiplier: s.Multiplier,
		Addition:   s.Addition,
		StartHour:  s.StartHour,
		EndHour:    s.EndHour,
		Days:       days,
		Priority:   s.Priority,
	})
}

// BuildRuleSet converts and orders a rule catalog snapshot. Rows that fail
// domain validation are dropped by the caller's policy, so conversion
// errors bubble up instead.
func BuildRuleSet(snapshots []*RuleSnapshot) (pricing.RuleSet, error) {
	rules := make([]pricing.Rule, 0, len(snapshots))
	for _, s := range snapshots {
		rule, err := s.ToDomain()
		if err != nil {
			return pricing.RuleSet{}, err
		}
		rules = append(rules, rule)
	}
	return pricing.NewRuleSet(rules), nil
}
