package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("SAVINGS SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.PlanPath != "" {
		sb.WriteString(fmt.Sprintf("Plan: %s\n", compSet.PlanPath))
	}
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 13

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Allocated/mo",
		numWidth, "Leftover/mo",
		numWidth, "Reachable",
		numWidth, "All Done In"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for i := range compSet.AlternativeResults {
			alt := &compSet.AlternativeResults[i]
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))

			allocSymbol := tf.deltaSymbol(alt.AllocatedDiffFromBase)
			sb.WriteString(fmt.Sprintf("  Monthly Allocation: %s$%s\n",
				allocSymbol, alt.AllocatedDiffFromBase.Abs().StringFixed(2)))

			if alt.ReachableDiffFromBase != 0 {
				sb.WriteString(fmt.Sprintf("  Reachable Goals:    %+d\n", alt.ReachableDiffFromBase))
			}

			if alt.HorizonDiffFromBase != 0 {
				sb.WriteString(fmt.Sprintf("  Completion Horizon: %+d months\n", alt.HorizonDiffFromBase))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	reachableStr := fmt.Sprintf("%d of %d", result.ReachableGoals, result.ProjectedGoals)
	horizonStr := formatHorizon(result.LastCompletionMonths)

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, "$"+result.TotalAllocated.StringFixed(2),
		numWidth, "$"+result.RemainingDisposable.StringFixed(2),
		numWidth, reachableStr,
		numWidth, horizonStr)
}

// deltaSymbol returns + for positive and - for negative deltas
func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return "+"
}

// truncate shortens a string to fit a column
func (tf *TableFormatter) truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

// formatHorizon renders a completion horizon in months as a short label
func formatHorizon(months int) string {
	if months < 0 {
		return "50+ years"
	}
	if months == 0 {
		return "done"
	}
	years := months / 12
	rem := months % 12
	if years == 0 {
		return fmt.Sprintf("%d mo", rem)
	}
	if rem == 0 {
		return fmt.Sprintf("%d yr", years)
	}
	return fmt.Sprintf("%dy %dm", years, rem)
}
