package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalType categorizes a savings goal. The set is closed; each type carries a
// default annual return rate in the Assumptions table.
type GoalType string

const (
	GoalTypeHouse      GoalType = "house"
	GoalTypeRetirement GoalType = "retirement"
	GoalTypeInvestment GoalType = "investment"
	GoalTypeEmergency  GoalType = "emergency"
	GoalTypeVacation   GoalType = "vacation"
	GoalTypeHobby      GoalType = "hobby"
	GoalTypeCar        GoalType = "car"
	GoalTypeEducation  GoalType = "education"
	GoalTypeDebt       GoalType = "debt"
	GoalTypeOther      GoalType = "other"
)

// AllGoalTypes lists every valid goal type, for validation and display
var AllGoalTypes = []GoalType{
	GoalTypeHouse,
	GoalTypeRetirement,
	GoalTypeInvestment,
	GoalTypeEmergency,
	GoalTypeVacation,
	GoalTypeHobby,
	GoalTypeCar,
	GoalTypeEducation,
	GoalTypeDebt,
	GoalTypeOther,
}

// IsValid reports whether t is a known goal type
func (t GoalType) IsValid() bool {
	for _, known := range AllGoalTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Goal represents a single savings target
type Goal struct {
	ID            string          `yaml:"id" json:"id"`
	Name          string          `yaml:"name" json:"name"`
	Type          GoalType        `yaml:"type" json:"type"`
	TargetAmount  decimal.Decimal `yaml:"target_amount" json:"target_amount"`
	CurrentAmount decimal.Decimal `yaml:"current_amount" json:"current_amount"`

	// CustomReturnRate overrides the type's default annual rate when set
	CustomReturnRate *decimal.Decimal `yaml:"custom_return_rate,omitempty" json:"custom_return_rate,omitempty"`

	// DesiredDate is the user's target completion date. Status labeling only;
	// the projection math does not consume it.
	DesiredDate *time.Time `yaml:"desired_date,omitempty" json:"desired_date,omitempty"`

	Priority int  `yaml:"priority" json:"priority"`
	IsActive bool `yaml:"is_active" json:"is_active"`
}

// EffectiveReturnRate returns the custom rate override when present,
// otherwise the type's default annual rate from the assumptions table.
func (g *Goal) EffectiveReturnRate(assumptions Assumptions) decimal.Decimal {
	if g.CustomReturnRate != nil {
		return *g.CustomReturnRate
	}
	return assumptions.DefaultReturnRate(g.Type)
}

// RemainingAmount returns the amount still needed, floored at zero
func (g *Goal) RemainingAmount() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// IsComplete reports whether the goal has already reached its target.
// Non-positive targets count as complete.
func (g *Goal) IsComplete() bool {
	return g.RemainingAmount().IsZero()
}
