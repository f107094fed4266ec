package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/goalplan/savings-planner/internal/domain"
)

// SimulateAllocationChange recalculates with a single goal's allocation
// replaced by newAmount, leaving every other allocation untouched. The
// caller's input is cloned first and never mutated; this backs the live
// "what if I contribute $X" editor.
func (e *ProjectionEngine) SimulateAllocationChange(goalID string, newAmount decimal.Decimal, input domain.EngineInput) domain.EngineOutput {
	modified := input.Clone()
	modified.Allocations.Set(goalID, newAmount)
	return e.Calculate(modified)
}

// CompareScenarios runs Calculate independently for two scenarios' allocations
// against the same profile and goal set. A convenience pairing; there is no
// shared state or cross-scenario logic.
func (e *ProjectionEngine) CompareScenarios(a, b domain.Scenario, profile domain.FinancialProfile, goals []domain.Goal) (domain.EngineOutput, domain.EngineOutput) {
	outputA := e.Calculate(domain.EngineInput{
		Profile:     profile,
		Goals:       goals,
		Allocations: a.Allocation(),
	})
	outputB := e.Calculate(domain.EngineInput{
		Profile:     profile,
		Goals:       goals,
		Allocations: b.Allocation(),
	})
	return outputA, outputB
}
