package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/goalplan/savings-planner/internal/domain"
)

// ComparisonResult represents a single scenario's projection with the metrics
// used for side-by-side comparison
type ComparisonResult struct {
	ScenarioName string                `json:"scenarioName"`
	Status       domain.ScenarioStatus `json:"status"`
	Output       *domain.EngineOutput  `json:"output"`

	// Key metrics
	TotalAllocated      decimal.Decimal `json:"totalAllocated"`
	RemainingDisposable decimal.Decimal `json:"remainingDisposable"`
	FundedGoals         int             `json:"fundedGoals"`
	ReachableGoals      int             `json:"reachableGoals"`
	ProjectedGoals      int             `json:"projectedGoals"`
	WarningCount        int             `json:"warningCount"`

	// LastCompletionMonths is the horizon: months until the slowest reachable
	// goal completes. -1 when any projected goal is unreachable.
	LastCompletionMonths int `json:"lastCompletionMonths"`

	// Comparison to base
	AllocatedDiffFromBase decimal.Decimal `json:"allocatedDiffFromBase"`
	LeftoverDiffFromBase  decimal.Decimal `json:"leftoverDiffFromBase"`
	ReachableDiffFromBase int             `json:"reachableDiffFromBase"`
	HorizonDiffFromBase   int             `json:"horizonDiffFromBase"`
}

// ComparisonSet represents a collection of scenario comparisons against a base
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	PlanPath           string             `json:"planPath"`
}

// MetricsCalculator extracts comparison metrics from engine outputs
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for one scenario's output
func (mc *MetricsCalculator) CalculateMetrics(scenario *domain.Scenario, output *domain.EngineOutput) ComparisonResult {
	result := ComparisonResult{
		ScenarioName:        scenario.Name,
		Status:              scenario.Status,
		Output:              output,
		TotalAllocated:      output.TotalAllocated,
		RemainingDisposable: output.RemainingDisposable,
		FundedGoals:         scenario.Allocation().FundedGoalCount(),
		ReachableGoals:      output.ReachableGoalCount(),
		ProjectedGoals:      len(output.Projections),
		WarningCount:        len(output.Warnings),
	}

	for _, projection := range output.Projections {
		if !projection.IsReachable {
			result.LastCompletionMonths = -1
			break
		}
		if *projection.MonthsToComplete > result.LastCompletionMonths {
			result.LastCompletionMonths = *projection.MonthsToComplete
		}
	}

	return result
}

// CalculateComparison computes delta metrics between a scenario and the base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.AllocatedDiffFromBase = scenario.TotalAllocated.Sub(base.TotalAllocated)
	scenario.LeftoverDiffFromBase = scenario.RemainingDisposable.Sub(base.RemainingDisposable)
	scenario.ReachableDiffFromBase = scenario.ReachableGoals - base.ReachableGoals
	if scenario.LastCompletionMonths >= 0 && base.LastCompletionMonths >= 0 {
		scenario.HorizonDiffFromBase = scenario.LastCompletionMonths - base.LastCompletionMonths
	}
	return scenario
}

// GenerateRecommendations creates short recommendation strings from a
// comparison set
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Most reachable goals
	bestReach := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.ReachableGoals > bestReach.ReachableGoals {
			bestReach = alt
		}
	}
	if bestReach != compSet.BaseResult {
		recommendations = append(recommendations,
			fmt.Sprintf("Most goals reached: %s makes %d goals reachable vs %d in the base plan",
				bestReach.ScenarioName, bestReach.ReachableGoals, compSet.BaseResult.ReachableGoals))
	}

	// Fastest full completion among fully reachable scenarios
	bestHorizon := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.LastCompletionMonths < 0 {
			continue
		}
		if bestHorizon.LastCompletionMonths < 0 || alt.LastCompletionMonths < bestHorizon.LastCompletionMonths {
			bestHorizon = alt
		}
	}
	if bestHorizon != compSet.BaseResult && bestHorizon.LastCompletionMonths >= 0 && compSet.BaseResult.LastCompletionMonths >= 0 {
		monthsSaved := compSet.BaseResult.LastCompletionMonths - bestHorizon.LastCompletionMonths
		if monthsSaved > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Fastest finish: %s completes every goal %d months sooner", bestHorizon.ScenarioName, monthsSaved))
		}
	}

	// Flag over-allocated alternatives
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.Output != nil && alt.Output.HasWarning(domain.WarningOverAllocated) {
			recommendations = append(recommendations,
				fmt.Sprintf("Caution: %s allocates more than the monthly disposable income", alt.ScenarioName))
		}
	}

	return recommendations
}
