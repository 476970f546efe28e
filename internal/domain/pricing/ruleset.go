package pricing

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// RuleSet is an immutable, ordered snapshot of the pricing rule catalog.
// It is rebuilt from storage per calculation; nothing mutates it once
// constructed, so it is safe to share across goroutines.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet orders rules by persisted priority, then id, so the sequential
// re-application below stays deterministic regardless of how the catalog
// returned its rows.
func NewRuleSet(rules []Rule) RuleSet {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].priority != ordered[j].priority {
			return ordered[i].priority < ordered[j].priority
		}
		return ordered[i].id.String() < ordered[j].id.String()
	})
	return RuleSet{rules: ordered}
}

func (rs RuleSet) Len() int { return len(rs.rules) }

// AppliedRule records one matched modifier for the itemized breakdown.
type AppliedRule struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	Addition   float64 `json:"addition"`
}

// Label renders the modifier the way receipts show it, e.g. "Peak Hours (x1.5 +0)".
func (a AppliedRule) Label() string {
	mult := strconvTrim(a.Multiplier)
	add := strconvTrim(a.Addition)
	return fmt.Sprintf("%s (x%s +%s)", a.Name, mult, add)
}

// Apply runs every matching rule against the base hourly rate in stable
// order: rate = rate*multiplier + addition. Rules of different kinds may
// all match the same window; the compounding is intentional. An empty set
// returns the base rate unchanged.
func (rs RuleSet) Apply(baseRate float64, start time.Time) (float64, []AppliedRule) {
	rate := baseRate
	var applied []AppliedRule

	for _, rule := range rs.rules {
		if !rule.Matches(start) {
			continue
		}
		rate = rate*rule.multiplier + rule.addition
		applied = append(applied, AppliedRule{
			Name:       rule.name,
			Multiplier: rule.multiplier,
			Addition:   rule.addition,
		})
	}

	return rate, applied
}

func strconvTrim(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
