package domain

import (
	"github.com/shopspring/decimal"
)

// Assumptions is the immutable configuration table of market assumptions the
// engine is constructed with. It is configuration, not mutable state: callers
// may build their own table (e.g. from a plan file) or use DefaultAssumptions.
type Assumptions struct {
	InflationRate          decimal.Decimal              `yaml:"inflation_rate" json:"inflation_rate"`
	StockMarketReturn      decimal.Decimal              `yaml:"stock_market_return" json:"stock_market_return"`
	HighYieldSavingsReturn decimal.Decimal              `yaml:"high_yield_savings_return" json:"high_yield_savings_return"`
	DefaultReturnRates     map[GoalType]decimal.Decimal `yaml:"default_return_rates" json:"default_return_rates"`
}

// DefaultReturnRate returns the default annual return rate for a goal type.
// Unknown types fall back to the "other" rate.
func (a Assumptions) DefaultReturnRate(t GoalType) decimal.Decimal {
	if rate, ok := a.DefaultReturnRates[t]; ok {
		return rate
	}
	if rate, ok := a.DefaultReturnRates[GoalTypeOther]; ok {
		return rate
	}
	return decimal.Zero
}

// DefaultAssumptions returns the built-in assumption table: 7% long-run stock
// return, 3.5% high-yield savings, 3% inflation, and per-type default rates.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		InflationRate:          decimal.NewFromFloat(0.03),
		StockMarketReturn:      decimal.NewFromFloat(0.07),
		HighYieldSavingsReturn: decimal.NewFromFloat(0.035),
		DefaultReturnRates: map[GoalType]decimal.Decimal{
			GoalTypeHouse:      decimal.NewFromFloat(0.045),
			GoalTypeRetirement: decimal.NewFromFloat(0.07),
			GoalTypeInvestment: decimal.NewFromFloat(0.07),
			GoalTypeEmergency:  decimal.NewFromFloat(0.045),
			GoalTypeVacation:   decimal.NewFromFloat(0.04),
			GoalTypeHobby:      decimal.NewFromFloat(0.04),
			GoalTypeCar:        decimal.NewFromFloat(0.045),
			GoalTypeEducation:  decimal.NewFromFloat(0.045),
			GoalTypeDebt:       decimal.Zero,
			GoalTypeOther:      decimal.NewFromFloat(0.04),
		},
	}
}
