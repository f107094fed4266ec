package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/goalplan/savings-planner/internal/domain"
)

func TestSimulateAllocationChange(t *testing.T) {
	engine := testEngine()

	allocations := domain.NewAllocation()
	allocations.Set("house", decimal.NewFromInt(1000))
	input := domain.EngineInput{
		Profile:     testProfile(10000, 6000),
		Goals:       []domain.Goal{houseGoal()},
		Allocations: allocations,
	}

	baseline := engine.Calculate(input)
	simulated := engine.SimulateAllocationChange("house", decimal.NewFromInt(2000), input)

	assert.True(t, allocations.AmountFor("house").Equal(decimal.NewFromInt(1000)),
		"Caller's allocation must not change")
	assert.True(t, simulated.TotalAllocated.Equal(decimal.NewFromInt(2000)))
	assert.Less(t, *simulated.Projections["house"].MonthsToComplete,
		*baseline.Projections["house"].MonthsToComplete,
		"Doubling the contribution should finish sooner")
}

func TestSimulateAllocationChange_NewGoalID(t *testing.T) {
	engine := testEngine()

	second := domain.Goal{
		ID:            "vacation",
		Name:          "Italy Trip",
		Type:          domain.GoalTypeVacation,
		TargetAmount:  decimal.NewFromInt(6000),
		CurrentAmount: decimal.Zero,
		IsActive:      true,
	}
	allocations := domain.NewAllocation()
	allocations.Set("house", decimal.NewFromInt(1000))
	input := domain.EngineInput{
		Profile:     testProfile(10000, 6000),
		Goals:       []domain.Goal{houseGoal(), second},
		Allocations: allocations,
	}

	simulated := engine.SimulateAllocationChange("vacation", decimal.NewFromInt(500), input)

	assert.True(t, simulated.TotalAllocated.Equal(decimal.NewFromInt(1500)))
	assert.True(t, simulated.Projections["vacation"].IsReachable)
	assert.True(t, allocations.AmountFor("vacation").IsZero(),
		"Simulating a previously unfunded goal must not touch the original")
}

// The A/B example: same couple, same goal, scenario B allocates twice as much.
func TestCompareScenarios(t *testing.T) {
	engine := testEngine()

	profile := testProfile(10000, 6000)
	goals := []domain.Goal{houseGoal()}

	conservative := domain.Scenario{
		Name:        "Conservative",
		Status:      domain.ScenarioStatusDraft,
		IsActive:    true,
		Allocations: map[string]decimal.Decimal{"house": decimal.NewFromInt(1000)},
	}
	aggressive := domain.Scenario{
		Name:        "Aggressive",
		Status:      domain.ScenarioStatusDraft,
		IsActive:    false,
		Allocations: map[string]decimal.Decimal{"house": decimal.NewFromInt(2000)},
	}

	outputA, outputB := engine.CompareScenarios(conservative, aggressive, profile, goals)

	monthsA := *outputA.Projections["house"].MonthsToComplete
	monthsB := *outputB.Projections["house"].MonthsToComplete
	assert.Less(t, monthsB, monthsA, "The heavier allocation should finish strictly sooner")
	assert.True(t, outputA.RemainingDisposable.Equal(decimal.NewFromInt(3000)))
	assert.True(t, outputB.RemainingDisposable.Equal(decimal.NewFromInt(2000)))
}
