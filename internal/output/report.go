package output

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goalplan/savings-planner/internal/domain"
)

// Report bundles one engine run with the context needed to render it
type Report struct {
	PlanPath     string                  `json:"plan_path,omitempty"`
	ScenarioName string                  `json:"scenario_name"`
	GeneratedAt  time.Time               `json:"generated_at"`
	Profile      domain.FinancialProfile `json:"profile"`
	Goals        []domain.Goal           `json:"goals"`
	Output       *domain.EngineOutput    `json:"output"`
}

// Formatter renders a report in a specific output format
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name, nil if unknown
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return &ConsoleFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	case "csv":
		return &CSVFormatter{}
	default:
		return nil
	}
}

// FormatCurrency renders a decimal as a dollar figure with two decimals
func FormatCurrency(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// FormatMonths renders a month count as a compact duration label
func FormatMonths(months int) string {
	if months == 0 {
		return "complete"
	}
	years := months / 12
	rem := months % 12
	switch {
	case years == 0:
		return fmt.Sprintf("%d months", rem)
	case rem == 0:
		return fmt.Sprintf("%d years", years)
	default:
		return fmt.Sprintf("%d years %d months", years, rem)
	}
}
