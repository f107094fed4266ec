package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalplan/savings-planner/internal/domain"
)

func loadTestPlan(t *testing.T) *Plan {
	t.Helper()
	parser := NewInputParser()
	plan, err := parser.LoadFromFile("testdata/plan.yaml")
	require.NoError(t, err)
	return plan
}

func TestLoadFromFile(t *testing.T) {
	plan := loadTestPlan(t)

	assert.True(t, plan.Profile.MonthlyIncome.Equal(decimal.NewFromInt(10000)))
	assert.True(t, plan.Profile.MonthlyExpenses.Equal(decimal.NewFromInt(6000)))
	require.Len(t, plan.Goals, 3)
	require.Len(t, plan.Scenarios, 2)

	house := plan.FindGoal("house")
	require.NotNil(t, house)
	assert.Equal(t, domain.GoalTypeHouse, house.Type)
	assert.True(t, house.TargetAmount.Equal(decimal.NewFromInt(50000)))
	assert.True(t, house.IsActive)

	vacation := plan.FindGoal("vacation")
	require.NotNil(t, vacation)
	require.NotNil(t, vacation.DesiredDate)
	assert.Equal(t, 2027, vacation.DesiredDate.Year())

	boat := plan.FindGoal("boat")
	require.NotNil(t, boat)
	assert.False(t, boat.IsActive)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestBuildAssumptions_Overrides(t *testing.T) {
	plan := loadTestPlan(t)

	assumptions := plan.BuildAssumptions()

	assert.True(t, assumptions.InflationRate.Equal(decimal.NewFromFloat(0.025)),
		"Overridden inflation rate should win")
	assert.True(t, assumptions.DefaultReturnRate(domain.GoalTypeHouse).Equal(decimal.NewFromFloat(0.05)),
		"Overridden house rate should win")
	assert.True(t, assumptions.StockMarketReturn.Equal(decimal.NewFromFloat(0.07)),
		"Untouched fields keep their defaults")
	assert.True(t, assumptions.DefaultReturnRate(domain.GoalTypeVacation).Equal(decimal.NewFromFloat(0.04)),
		"Untouched type rates keep their defaults")
}

func TestDefaultScenario(t *testing.T) {
	plan := loadTestPlan(t)

	scenario := plan.DefaultScenario()
	require.NotNil(t, scenario)
	assert.Equal(t, "Conservative", scenario.Name, "First active scenario wins")

	for i := range plan.Scenarios {
		plan.Scenarios[i].IsActive = false
	}
	scenario = plan.DefaultScenario()
	require.NotNil(t, scenario)
	assert.Equal(t, "Conservative", scenario.Name, "Falls back to the first scenario")
}

func TestFindScenario(t *testing.T) {
	plan := loadTestPlan(t)

	assert.NotNil(t, plan.FindScenario("Aggressive"))
	assert.Nil(t, plan.FindScenario("Nonexistent"))
}

func TestEngineInputForScenario(t *testing.T) {
	plan := loadTestPlan(t)

	input, err := plan.EngineInputForScenario("Aggressive")
	require.NoError(t, err)
	assert.True(t, input.Allocations.AmountFor("house").Equal(decimal.NewFromInt(2000)))
	assert.Len(t, input.Goals, 3)

	_, err = plan.EngineInputForScenario("Nonexistent")
	assert.Error(t, err)
}

func TestValidatePlan_Errors(t *testing.T) {
	validGoal := domain.Goal{
		ID:           "house",
		Name:         "House",
		Type:         domain.GoalTypeHouse,
		TargetAmount: decimal.NewFromInt(50000),
		IsActive:     true,
	}

	tests := []struct {
		name    string
		mutate  func(*Plan)
		wantErr string
	}{
		{
			"negative income",
			func(p *Plan) { p.Profile.MonthlyIncome = decimal.NewFromInt(-1) },
			"monthly income",
		},
		{
			"no goals",
			func(p *Plan) { p.Goals = nil },
			"no goals",
		},
		{
			"missing goal id",
			func(p *Plan) { p.Goals[0].ID = "" },
			"id is required",
		},
		{
			"unknown goal type",
			func(p *Plan) { p.Goals[0].Type = "yacht" },
			"unknown goal type",
		},
		{
			"duplicate goal id",
			func(p *Plan) { p.Goals = append(p.Goals, validGoal) },
			"duplicate goal id",
		},
		{
			"custom rate out of range",
			func(p *Plan) {
				rate := decimal.NewFromFloat(0.75)
				p.Goals[0].CustomReturnRate = &rate
			},
			"custom return rate",
		},
		{
			"scenario references unknown goal",
			func(p *Plan) {
				p.Scenarios[0].Allocations["mystery"] = decimal.NewFromInt(100)
			},
			"unknown goal",
		},
		{
			"unknown scenario status",
			func(p *Plan) { p.Scenarios[0].Status = "wishful" },
			"unknown scenario status",
		},
		{
			"assumption rate out of range",
			func(p *Plan) {
				rate := decimal.NewFromFloat(0.9)
				p.Assumptions = &AssumptionOverrides{InflationRate: &rate}
			},
			"inflation rate",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		plan := &Plan{
			Profile: domain.FinancialProfile{
				MonthlyIncome:   decimal.NewFromInt(10000),
				MonthlyExpenses: decimal.NewFromInt(6000),
			},
			Goals: []domain.Goal{validGoal},
			Scenarios: []domain.Scenario{
				{
					Name:        "Base",
					Status:      domain.ScenarioStatusDraft,
					Allocations: map[string]decimal.Decimal{"house": decimal.NewFromInt(1000)},
				},
			},
		}
		tt.mutate(plan)

		err := parser.ValidatePlan(plan)
		if err == nil {
			t.Errorf("%s: expected a validation error", tt.name)
			continue
		}
		assert.Contains(t, err.Error(), tt.wantErr, tt.name)
	}
}

func TestValidatePlan_Valid(t *testing.T) {
	plan := loadTestPlan(t)
	parser := NewInputParser()
	assert.NoError(t, parser.ValidatePlan(plan))
}
