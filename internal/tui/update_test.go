package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalplan/savings-planner/internal/config"
	"github.com/goalplan/savings-planner/internal/domain"
)

func testPlan(scenarios []domain.Scenario) *config.Plan {
	return &config.Plan{
		Profile: domain.FinancialProfile{
			MonthlyIncome:   decimal.NewFromInt(10000),
			MonthlyExpenses: decimal.NewFromInt(6000),
			CurrentSavings:  decimal.NewFromInt(25000),
		},
		Goals: []domain.Goal{
			{
				ID:           "house",
				Name:         "House Down Payment",
				Type:         domain.GoalTypeHouse,
				TargetAmount: decimal.NewFromInt(50000),
				IsActive:     true,
			},
		},
		Scenarios: scenarios,
	}
}

func loadedModel(t *testing.T, plan *config.Plan) Model {
	t.Helper()
	updated, _ := NewModel("plan.yaml").Update(PlanLoadedMsg{Plan: plan})
	model, ok := updated.(Model)
	require.True(t, ok)
	require.False(t, model.loading)
	return model
}

func TestUpdate_NextScenarioWithNoScenarios(t *testing.T) {
	model := loadedModel(t, testPlan(nil))

	// A plan with goals but no saved scenarios is valid; cycling must not
	// attempt a modulo over an empty list.
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model, ok := updated.(Model)
	require.True(t, ok)

	assert.Equal(t, 0, model.scenarioIndex)
	assert.Nil(t, model.currentScenario())
	require.NotNil(t, model.working, "Working allocation stays editable without scenarios")
	assert.True(t, model.working.TotalAllocated().IsZero())
}

func TestUpdate_NextScenarioCycles(t *testing.T) {
	scenarios := []domain.Scenario{
		{
			Name:        "Conservative",
			IsActive:    true,
			Allocations: map[string]decimal.Decimal{"house": decimal.NewFromInt(1000)},
		},
		{
			Name:        "Aggressive",
			Allocations: map[string]decimal.Decimal{"house": decimal.NewFromInt(2000)},
		},
	}
	model := loadedModel(t, testPlan(scenarios))
	require.Equal(t, 0, model.scenarioIndex)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = updated.(Model)
	assert.Equal(t, 1, model.scenarioIndex)
	assert.True(t, model.working.AmountFor("house").Equal(decimal.NewFromInt(2000)))

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = updated.(Model)
	assert.Equal(t, 0, model.scenarioIndex, "Cycling wraps back to the first scenario")
	assert.True(t, model.working.AmountFor("house").Equal(decimal.NewFromInt(1000)))
}

func TestUpdate_AdjustAllocation(t *testing.T) {
	scenarios := []domain.Scenario{
		{
			Name:        "Conservative",
			IsActive:    true,
			Allocations: map[string]decimal.Decimal{"house": decimal.NewFromInt(1000)},
		},
	}
	model := loadedModel(t, testPlan(scenarios))

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRight})
	model = updated.(Model)
	assert.True(t, model.working.AmountFor("house").Equal(decimal.NewFromInt(1050)))

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	model = updated.(Model)
	assert.True(t, model.working.AmountFor("house").IsZero())

	// Decrement below zero clamps rather than going negative.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	model = updated.(Model)
	assert.True(t, model.working.AmountFor("house").IsZero())
}
