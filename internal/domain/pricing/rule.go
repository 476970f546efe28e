package pricing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRuleName      = errors.New("pricing rule name cannot be empty")
	ErrInvalidRuleKind    = errors.New("invalid pricing rule kind")
	ErrNegativeMultiplier = errors.New("pricing rule multiplier cannot be negative")
	ErrNegativeAddition   = errors.New("pricing rule addition cannot be negative")
	ErrMissingHourRange   = errors.New("peak hour rule requires an hour range")
	ErrInvalidHourRange   = errors.New("peak hour range must satisfy 0 <= start < end <= 24")
	ErrMissingDays        = errors.New("weekend/holiday rule requires applicable days")
)

type Kind string

const (
	KindPeakHour Kind = "peak_hour"
	KindWeekend  Kind = "weekend"
	KindHoliday  Kind = "holiday"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindPeakHour, KindWeekend, KindHoliday:
		return true
	default:
		return false
	}
}

// Rule is a conditional rate transformation. A matching rule rewrites the
// running hourly rate as rate*Multiplier + Addition, so rules with both a
// multiplier and an addition do not commute; Priority pins the evaluation
// order independently of catalog row order.
type Rule struct {
	id         uuid.UUID
	name       string
	kind       Kind
	multiplier float64
	addition   float64
	startHour  int // peak_hour only, local hour of day
	endHour    int // peak_hour only, exclusive
	days       map[time.Weekday]bool
	priority   int
}

type RuleSpec struct {
	ID         uuid.UUID
	Name       string
	Kind       Kind
	Multiplier float64
	Addition   float64
	StartHour  int
	EndHour    int
	Days       []time.Weekday
	Priority   int
}

func NewRule(spec RuleSpec) (Rule, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return Rule{}, ErrEmptyRuleName
	}
	if !spec.Kind.IsValid() {
		return Rule{}, ErrInvalidRuleKind
	}
	if spec.Multiplier < 0 {
		return Rule{}, ErrNegativeMultiplier
	}
	if spec.Addition < 0 {
		return Rule{}, ErrNegativeAddition
	}

	r := Rule{
		id:         spec.ID,
		name:       name,
		kind:       spec.Kind,
		multiplier: spec.Multiplier,
		addition:   spec.Addition,
		priority:   spec.Priority,
	}

	switch spec.Kind {
	case KindPeakHour:
		if spec.StartHour == 0 && spec.EndHour == 0 {
			return Rule{}, ErrMissingHourRange
		}
		if spec.StartHour < 0 || spec.EndHour > 24 || spec.StartHour >= spec.EndHour {
			return Rule{}, ErrInvalidHourRange
		}
		r.startHour = spec.StartHour
		r.endHour = spec.EndHour
	case KindWeekend, KindHoliday:
		if len(spec.Days) == 0 {
			return Rule{}, ErrMissingDays
		}
		r.days = make(map[time.Weekday]bool, len(spec.Days))
		for _, d := range spec.Days {
			r.days[d] = true
		}
	}

	return r, nil
}

// Matches reports whether the rule applies to a reservation starting at
// start. The caller is responsible for passing start already converted to
// the business timezone; matching is integer hour-of-day (not minute
// precise) and weekday based.
func (r Rule) Matches(start time.Time) bool {
	switch r.kind {
	case KindPeakHour:
		h := start.Hour()
		return h >= r.startHour && h < r.endHour
	case KindWeekend, KindHoliday:
		return r.days[start.Weekday()]
	default:
		return false
	}
}

func (r Rule) ID() uuid.UUID       { return r.id }
func (r Rule) Name() string        { return r.name }
func (r Rule) Kind() Kind          { return r.kind }
func (r Rule) Multiplier() float64 { return r.multiplier }
func (r Rule) Addition() float64   { return r.addition }
func (r Rule) Priority() int       { return r.priority }
