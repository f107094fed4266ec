package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter renders the per-goal projections as CSV rows
type CSVFormatter struct{}

// Name returns the format name
func (cf *CSVFormatter) Name() string { return "csv" }

// Format renders the report
func (cf *CSVFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"Goal ID",
		"Goal Name",
		"Type",
		"Target Amount",
		"Current Amount",
		"Monthly Contribution",
		"Reachable",
		"Months To Complete",
		"Completion Date",
		"Projected Final Value",
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, goal := range sortedGoals(report.Goals) {
		projection, ok := report.Output.Projections[goal.ID]
		if !ok {
			continue
		}

		months := ""
		completion := ""
		if projection.IsReachable {
			months = strconv.Itoa(*projection.MonthsToComplete)
			completion = projection.CompletionDate.Format("2006-01-02")
		}

		row := []string{
			goal.ID,
			goal.Name,
			string(goal.Type),
			goal.TargetAmount.StringFixed(2),
			goal.CurrentAmount.StringFixed(2),
			projection.MonthlyContribution.StringFixed(2),
			strconv.FormatBool(projection.IsReachable),
			months,
			completion,
			projection.ProjectedFinalValue.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
