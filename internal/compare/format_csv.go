package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Status",
		"Total Allocated",
		"Remaining Disposable",
		"Funded Goals",
		"Reachable Goals",
		"Projected Goals",
		"Completion Horizon (Months)",
		"Warnings",
		"Allocated Diff from Base",
		"Reachable Diff from Base",
		"Horizon Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		string(result.Status),
		result.TotalAllocated.StringFixed(2),
		result.RemainingDisposable.StringFixed(2),
		formatInt(result.FundedGoals),
		formatInt(result.ReachableGoals),
		formatInt(result.ProjectedGoals),
		formatInt(result.LastCompletionMonths),
		formatInt(result.WarningCount),
		result.AllocatedDiffFromBase.StringFixed(2),
		formatInt(result.ReachableDiffFromBase),
		formatInt(result.HorizonDiffFromBase),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
