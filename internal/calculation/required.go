package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goalplan/savings-planner/internal/domain"
)

// RequiredMonthlyContribution solves the inverse problem: the constant monthly
// contribution that reaches the goal's target by targetDate under the goal's
// effective return rate. Returns nil when targetDate is not strictly in the
// future. A goal that is already complete requires nothing, reported as a
// defined zero rather than nil.
//
// Uses the same MonthlyRate convention as Calculate, so feeding the result
// back in as an allocation completes within a month of targetDate.
func (e *ProjectionEngine) RequiredMonthlyContribution(goal domain.Goal, targetDate time.Time) *decimal.Decimal {
	now := e.Now()
	if !targetDate.After(now) {
		return nil
	}

	if goal.IsComplete() {
		zero := decimal.Zero
		return &zero
	}

	months := monthsUntil(now, targetDate)
	n := decimal.NewFromInt(int64(months))
	rate := MonthlyRate(goal.EffectiveReturnRate(e.Assumptions))

	if rate.IsZero() {
		required := goal.RemainingAmount().Div(n)
		return &required
	}

	// Future value of a growing annuity, solved for the payment:
	//   c = (target - current*(1+r)^n) * r / ((1+r)^n - 1)
	growthFactor := decimal.NewFromInt(1).Add(rate).Pow(n)
	grownCurrent := goal.CurrentAmount.Mul(growthFactor)
	shortfall := goal.TargetAmount.Sub(grownCurrent)
	if !shortfall.IsPositive() {
		// Growth alone covers the target by the date.
		zero := decimal.Zero
		return &zero
	}

	required := shortfall.Mul(rate).Div(growthFactor.Sub(decimal.NewFromInt(1)))
	return &required
}

// monthsUntil counts whole months from now to the target date, rounding up so
// a partial final month still gets funded. Always at least 1 for future dates.
func monthsUntil(now, target time.Time) int {
	months := (target.Year()-now.Year())*12 + int(target.Month()) - int(now.Month())
	if target.Day() > now.Day() {
		months++
	}
	if months < 1 {
		months = 1
	}
	return months
}
