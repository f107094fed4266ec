package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EngineInput bundles everything one projection run needs. Transient; built
// per call and never persisted.
type EngineInput struct {
	Profile     FinancialProfile
	Goals       []Goal
	Allocations *Allocation
}

// Clone returns a copy whose allocation map is independent of the original.
// Profile and goals are copied by value; the engine never mutates goals.
func (in *EngineInput) Clone() EngineInput {
	goals := make([]Goal, len(in.Goals))
	copy(goals, in.Goals)
	allocations := NewAllocation()
	if in.Allocations != nil {
		allocations = in.Allocations.Clone()
	}
	return EngineInput{
		Profile:     in.Profile,
		Goals:       goals,
		Allocations: allocations,
	}
}

// GoalProjection is the engine's forecast for a single goal.
// MonthsToComplete and CompletionDate are nil exactly when IsReachable is
// false.
type GoalProjection struct {
	GoalID              string          `json:"goal_id"`
	GoalName            string          `json:"goal_name"`
	MonthsToComplete    *int            `json:"months_to_complete,omitempty"`
	CompletionDate      *time.Time      `json:"completion_date,omitempty"`
	ProjectedFinalValue decimal.Decimal `json:"projected_final_value"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	IsReachable         bool            `json:"is_reachable"`
}

// WarningKind identifies a distinct allocation-plan health condition
type WarningKind string

const (
	WarningOverAllocated      WarningKind = "over_allocated"
	WarningNegativeDisposable WarningKind = "negative_disposable"
	WarningNoContribution     WarningKind = "no_contribution_for_goal"
	WarningGoalUnreachable    WarningKind = "goal_unreachable"
)

// Warning flags a problematic condition found during a calculation. GoalID
// and GoalName are set only for the per-goal kinds.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	GoalID   string      `json:"goal_id,omitempty"`
	GoalName string      `json:"goal_name,omitempty"`
}

// String renders a terse diagnostic form; user-facing copy is the caller's job
func (w Warning) String() string {
	switch w.Kind {
	case WarningOverAllocated:
		return "allocations exceed disposable income"
	case WarningNegativeDisposable:
		return "monthly expenses exceed monthly income"
	case WarningNoContribution:
		return fmt.Sprintf("no contribution for goal %q", w.GoalName)
	case WarningGoalUnreachable:
		return fmt.Sprintf("goal %q is not reachable within 50 years", w.GoalName)
	default:
		return string(w.Kind)
	}
}

// EngineOutput is the complete result of one projection run
type EngineOutput struct {
	Projections         map[string]GoalProjection `json:"projections"`
	Warnings            []Warning                 `json:"warnings"`
	TotalAllocated      decimal.Decimal           `json:"total_allocated"`
	RemainingDisposable decimal.Decimal           `json:"remaining_disposable"`
}

// HasWarning reports whether any warning of the given kind was emitted
func (out *EngineOutput) HasWarning(kind WarningKind) bool {
	for _, w := range out.Warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

// WarningsForGoal returns the warnings attached to a specific goal
func (out *EngineOutput) WarningsForGoal(goalID string) []Warning {
	var warnings []Warning
	for _, w := range out.Warnings {
		if w.GoalID == goalID {
			warnings = append(warnings, w)
		}
	}
	return warnings
}

// ReachableGoalCount returns how many projected goals are reachable
func (out *EngineOutput) ReachableGoalCount() int {
	count := 0
	for _, p := range out.Projections {
		if p.IsReachable {
			count++
		}
	}
	return count
}
