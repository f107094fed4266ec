package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEngineInputClone(t *testing.T) {
	allocations := NewAllocation()
	allocations.Set("house", decimal.NewFromInt(1000))
	input := EngineInput{
		Profile: FinancialProfile{
			MonthlyIncome:   decimal.NewFromInt(10000),
			MonthlyExpenses: decimal.NewFromInt(6000),
		},
		Goals: []Goal{
			{ID: "house", Name: "House", Type: GoalTypeHouse, TargetAmount: decimal.NewFromInt(50000), IsActive: true},
		},
		Allocations: allocations,
	}

	clone := input.Clone()
	clone.Allocations.Set("house", decimal.NewFromInt(9999))
	clone.Goals[0].Name = "Changed"

	if !input.Allocations.AmountFor("house").Equal(decimal.NewFromInt(1000)) {
		t.Error("cloned allocation mutation leaked into the original")
	}
	if input.Goals[0].Name != "House" {
		t.Error("cloned goal mutation leaked into the original")
	}
}

func TestEngineInputClone_NilAllocations(t *testing.T) {
	input := EngineInput{}
	clone := input.Clone()
	if clone.Allocations == nil {
		t.Fatal("clone should supply an empty allocation")
	}
	if !clone.Allocations.TotalAllocated().IsZero() {
		t.Errorf("empty clone total = %s, want 0", clone.Allocations.TotalAllocated())
	}
}

func TestEngineOutputHelpers(t *testing.T) {
	months := 12
	out := EngineOutput{
		Projections: map[string]GoalProjection{
			"house":    {GoalID: "house", IsReachable: true, MonthsToComplete: &months},
			"vacation": {GoalID: "vacation", IsReachable: false},
		},
		Warnings: []Warning{
			{Kind: WarningOverAllocated},
			{Kind: WarningNoContribution, GoalID: "vacation", GoalName: "Italy Trip"},
			{Kind: WarningGoalUnreachable, GoalID: "vacation", GoalName: "Italy Trip"},
		},
	}

	if !out.HasWarning(WarningOverAllocated) {
		t.Error("HasWarning(over_allocated) = false, want true")
	}
	if out.HasWarning(WarningNegativeDisposable) {
		t.Error("HasWarning(negative_disposable) = true, want false")
	}
	if got := len(out.WarningsForGoal("vacation")); got != 2 {
		t.Errorf("WarningsForGoal(vacation) = %d warnings, want 2", got)
	}
	if got := out.ReachableGoalCount(); got != 1 {
		t.Errorf("ReachableGoalCount() = %d, want 1", got)
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Kind: WarningGoalUnreachable, GoalID: "house", GoalName: "House"}
	got := w.String()
	if got == "" || got == string(WarningGoalUnreachable) {
		t.Errorf("unreachable warning should render a readable message, got %q", got)
	}
}

func TestScenarioStatusIsValid(t *testing.T) {
	valid := []ScenarioStatus{
		ScenarioStatusDraft, ScenarioStatusUnderReview, ScenarioStatusDecided, ScenarioStatusArchived,
	}
	for _, status := range valid {
		if !status.IsValid() {
			t.Errorf("%s should be valid", status)
		}
	}
	if ScenarioStatus("wishful").IsValid() {
		t.Error("unknown status should be invalid")
	}
}

func TestScenarioAllocation(t *testing.T) {
	scenario := Scenario{
		Name: "Base",
		Allocations: map[string]decimal.Decimal{
			"house":    decimal.NewFromInt(1000),
			"vacation": decimal.NewFromInt(-50), // clamped on the way in
		},
	}

	allocation := scenario.Allocation()
	if !allocation.AmountFor("house").Equal(decimal.NewFromInt(1000)) {
		t.Errorf("house allocation = %s, want 1000", allocation.AmountFor("house"))
	}
	if !allocation.AmountFor("vacation").IsZero() {
		t.Errorf("negative allocation should clamp to zero, got %s", allocation.AmountFor("vacation"))
	}
}
