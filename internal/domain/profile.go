package domain

import (
	"github.com/shopspring/decimal"
)

// FinancialProfile represents a couple's monthly economic baseline
type FinancialProfile struct {
	MonthlyIncome   decimal.Decimal `yaml:"monthly_income" json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`
	CurrentSavings  decimal.Decimal `yaml:"current_savings" json:"current_savings"`

	// Optional needs/wants split. When either is set the pair supersedes
	// MonthlyExpenses as the expense total.
	MonthlyNeeds *decimal.Decimal `yaml:"monthly_needs,omitempty" json:"monthly_needs,omitempty"`
	MonthlyWants *decimal.Decimal `yaml:"monthly_wants,omitempty" json:"monthly_wants,omitempty"`
}

// TotalMonthlyExpenses returns the expense figure used for disposable income,
// preferring the needs/wants split when present.
func (p *FinancialProfile) TotalMonthlyExpenses() decimal.Decimal {
	if p.MonthlyNeeds != nil || p.MonthlyWants != nil {
		total := decimal.Zero
		if p.MonthlyNeeds != nil {
			total = total.Add(*p.MonthlyNeeds)
		}
		if p.MonthlyWants != nil {
			total = total.Add(*p.MonthlyWants)
		}
		return total
	}
	return p.MonthlyExpenses
}

// RawMonthlyDisposable returns income minus expenses without clamping.
// May be negative; warning logic relies on the unclamped figure.
func (p *FinancialProfile) RawMonthlyDisposable() decimal.Decimal {
	return p.MonthlyIncome.Sub(p.TotalMonthlyExpenses())
}

// MonthlyDisposable returns the allocation ceiling: income minus expenses,
// floored at zero.
func (p *FinancialProfile) MonthlyDisposable() decimal.Decimal {
	disposable := p.RawMonthlyDisposable()
	if disposable.IsNegative() {
		return decimal.Zero
	}
	return disposable
}

// HasDisposableIncome reports whether there is anything left to allocate
func (p *FinancialProfile) HasDisposableIncome() bool {
	return p.RawMonthlyDisposable().IsPositive()
}
