package compare

import (
	"context"
	"fmt"

	"github.com/goalplan/savings-planner/internal/calculation"
	"github.com/goalplan/savings-planner/internal/domain"
)

// CompareEngine orchestrates multi-scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.ProjectionEngine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.ProjectionEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareScenarios runs the base scenario and each named alternative against
// the same profile and goal set, computing deltas against the base.
func (ce *CompareEngine) CompareScenarios(
	ctx context.Context,
	profile domain.FinancialProfile,
	goals []domain.Goal,
	scenarios []domain.Scenario,
	baseScenarioName string,
	alternativeScenarioNames []string,
) (*ComparisonSet, error) {

	baseScenario := findScenario(scenarios, baseScenarioName)
	if baseScenario == nil {
		return nil, fmt.Errorf("base scenario %s not found", baseScenarioName)
	}

	baseOutput := ce.CalcEngine.Calculate(domain.EngineInput{
		Profile:     profile,
		Goals:       goals,
		Allocations: baseScenario.Allocation(),
	})
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseScenario, &baseOutput)

	alternatives := []ComparisonResult{}
	for _, altName := range alternativeScenarioNames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		altScenario := findScenario(scenarios, altName)
		if altScenario == nil {
			return nil, fmt.Errorf("alternative scenario %s not found", altName)
		}

		altOutput := ce.CalcEngine.Calculate(domain.EngineInput{
			Profile:     profile,
			Goals:       goals,
			Allocations: altScenario.Allocation(),
		})

		altResult := ce.MetricsCalculator.CalculateMetrics(altScenario, &altOutput)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func findScenario(scenarios []domain.Scenario, name string) *domain.Scenario {
	for i := range scenarios {
		if scenarios[i].Name == name {
			return &scenarios[i]
		}
	}
	return nil
}
