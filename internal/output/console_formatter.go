package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goalplan/savings-planner/internal/domain"
)

// ConsoleFormatter renders a report as a plain-text console summary
type ConsoleFormatter struct{}

// Name returns the format name
func (cf *ConsoleFormatter) Name() string { return "console" }

// Format renders the report
func (cf *ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("SAVINGS GOAL PROJECTION\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	if report.ScenarioName != "" {
		sb.WriteString(fmt.Sprintf("Scenario: %s\n", report.ScenarioName))
	}
	sb.WriteString("\n")

	profile := report.Profile
	sb.WriteString("MONTHLY BUDGET\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Income:      %s\n", FormatCurrency(profile.MonthlyIncome)))
	sb.WriteString(fmt.Sprintf("Expenses:    %s\n", FormatCurrency(profile.TotalMonthlyExpenses())))
	sb.WriteString(fmt.Sprintf("Disposable:  %s\n", FormatCurrency(profile.MonthlyDisposable())))
	sb.WriteString(fmt.Sprintf("Allocated:   %s\n", FormatCurrency(report.Output.TotalAllocated)))
	sb.WriteString(fmt.Sprintf("Leftover:    %s\n", FormatCurrency(report.Output.RemainingDisposable)))
	sb.WriteString("\n")

	sb.WriteString("GOALS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for _, goal := range sortedGoals(report.Goals) {
		projection, ok := report.Output.Projections[goal.ID]
		if !ok {
			sb.WriteString(fmt.Sprintf("%-28s (inactive)\n", goal.Name))
			continue
		}

		status := "50+ years"
		if projection.IsReachable {
			status = FormatMonths(*projection.MonthsToComplete)
			if *projection.MonthsToComplete > 0 {
				status += " (" + projection.CompletionDate.Format("Jan 2006") + ")"
			}
		}

		sb.WriteString(fmt.Sprintf("%-28s %12s/mo  %s of %s  ->  %s\n",
			goal.Name,
			FormatCurrency(projection.MonthlyContribution),
			FormatCurrency(goal.CurrentAmount),
			FormatCurrency(goal.TargetAmount),
			status))
	}
	sb.WriteString("\n")

	if len(report.Output.Warnings) > 0 {
		sb.WriteString("WARNINGS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, warning := range report.Output.Warnings {
			sb.WriteString(fmt.Sprintf("! %s\n", warning))
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

// sortedGoals orders goals by priority, then by name for stable output
func sortedGoals(goals []domain.Goal) []domain.Goal {
	sorted := make([]domain.Goal, len(goals))
	copy(sorted, goals)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
