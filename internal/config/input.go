package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/goalplan/savings-planner/internal/domain"
)

// Plan is the complete input configuration: the couple's profile, their goals,
// and the saved allocation scenarios to evaluate.
type Plan struct {
	Profile     domain.FinancialProfile `yaml:"profile" json:"profile"`
	Assumptions *AssumptionOverrides    `yaml:"assumptions,omitempty" json:"assumptions,omitempty"`
	Goals       []domain.Goal           `yaml:"goals" json:"goals"`
	Scenarios   []domain.Scenario       `yaml:"scenarios" json:"scenarios"`
}

// AssumptionOverrides selectively replaces entries of the built-in assumption
// table. Absent fields keep their defaults.
type AssumptionOverrides struct {
	InflationRate          *decimal.Decimal                    `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"`
	StockMarketReturn      *decimal.Decimal                    `yaml:"stock_market_return,omitempty" json:"stock_market_return,omitempty"`
	HighYieldSavingsReturn *decimal.Decimal                    `yaml:"high_yield_savings_return,omitempty" json:"high_yield_savings_return,omitempty"`
	DefaultReturnRates     map[domain.GoalType]decimal.Decimal `yaml:"default_return_rates,omitempty" json:"default_return_rates,omitempty"`
}

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates the loaded plan
func (ip *InputParser) ValidatePlan(plan *Plan) error {
	if err := ip.validateProfile(&plan.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	if len(plan.Goals) == 0 {
		return fmt.Errorf("no goals provided")
	}

	seenIDs := make(map[string]bool)
	for i := range plan.Goals {
		goal := &plan.Goals[i]
		if err := ip.validateGoal(goal); err != nil {
			return fmt.Errorf("goal %d (%s) validation failed: %w", i, goal.ID, err)
		}
		if seenIDs[goal.ID] {
			return fmt.Errorf("duplicate goal id: %s", goal.ID)
		}
		seenIDs[goal.ID] = true
	}

	for i := range plan.Scenarios {
		scenario := &plan.Scenarios[i]
		if err := ip.validateScenario(scenario, seenIDs); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
	}

	if plan.Assumptions != nil {
		if err := ip.validateAssumptionOverrides(plan.Assumptions); err != nil {
			return fmt.Errorf("assumptions validation failed: %w", err)
		}
	}

	return nil
}

// validateProfile validates the financial profile
func (ip *InputParser) validateProfile(profile *domain.FinancialProfile) error {
	if profile.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income cannot be negative")
	}
	if profile.MonthlyExpenses.IsNegative() {
		return fmt.Errorf("monthly expenses cannot be negative")
	}
	if profile.CurrentSavings.IsNegative() {
		return fmt.Errorf("current savings cannot be negative")
	}
	if profile.MonthlyNeeds != nil && profile.MonthlyNeeds.IsNegative() {
		return fmt.Errorf("monthly needs cannot be negative")
	}
	if profile.MonthlyWants != nil && profile.MonthlyWants.IsNegative() {
		return fmt.Errorf("monthly wants cannot be negative")
	}
	return nil
}

// validateGoal validates a single goal
func (ip *InputParser) validateGoal(goal *domain.Goal) error {
	if goal.ID == "" {
		return fmt.Errorf("id is required")
	}
	if goal.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !goal.Type.IsValid() {
		return fmt.Errorf("unknown goal type: %s", goal.Type)
	}
	if goal.CurrentAmount.IsNegative() {
		return fmt.Errorf("current amount cannot be negative")
	}
	if goal.CustomReturnRate != nil {
		rate := *goal.CustomReturnRate
		if rate.LessThan(decimal.Zero) || rate.GreaterThan(decimal.NewFromFloat(0.5)) {
			return fmt.Errorf("custom return rate must be between 0 and 50%%")
		}
	}
	return nil
}

// validateScenario validates a scenario against the known goal IDs
func (ip *InputParser) validateScenario(scenario *domain.Scenario, goalIDs map[string]bool) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.Status != "" && !scenario.Status.IsValid() {
		return fmt.Errorf("unknown scenario status: %s", scenario.Status)
	}
	for goalID := range scenario.Allocations {
		if !goalIDs[goalID] {
			return fmt.Errorf("allocation references unknown goal: %s", goalID)
		}
	}
	return nil
}

// validateAssumptionOverrides validates assumption overrides
func (ip *InputParser) validateAssumptionOverrides(overrides *AssumptionOverrides) error {
	checkRate := func(name string, rate decimal.Decimal) error {
		if rate.LessThan(decimal.Zero) || rate.GreaterThan(decimal.NewFromFloat(0.5)) {
			return fmt.Errorf("%s must be between 0 and 50%%", name)
		}
		return nil
	}

	if overrides.InflationRate != nil {
		if err := checkRate("inflation rate", *overrides.InflationRate); err != nil {
			return err
		}
	}
	if overrides.StockMarketReturn != nil {
		if err := checkRate("stock market return", *overrides.StockMarketReturn); err != nil {
			return err
		}
	}
	if overrides.HighYieldSavingsReturn != nil {
		if err := checkRate("high yield savings return", *overrides.HighYieldSavingsReturn); err != nil {
			return err
		}
	}
	for goalType, rate := range overrides.DefaultReturnRates {
		if !goalType.IsValid() {
			return fmt.Errorf("default return rate for unknown goal type: %s", goalType)
		}
		if err := checkRate(fmt.Sprintf("default return rate for %s", goalType), rate); err != nil {
			return err
		}
	}
	return nil
}

// BuildAssumptions merges the plan's overrides over the built-in table
func (plan *Plan) BuildAssumptions() domain.Assumptions {
	assumptions := domain.DefaultAssumptions()
	if plan.Assumptions == nil {
		return assumptions
	}

	if plan.Assumptions.InflationRate != nil {
		assumptions.InflationRate = *plan.Assumptions.InflationRate
	}
	if plan.Assumptions.StockMarketReturn != nil {
		assumptions.StockMarketReturn = *plan.Assumptions.StockMarketReturn
	}
	if plan.Assumptions.HighYieldSavingsReturn != nil {
		assumptions.HighYieldSavingsReturn = *plan.Assumptions.HighYieldSavingsReturn
	}
	for goalType, rate := range plan.Assumptions.DefaultReturnRates {
		assumptions.DefaultReturnRates[goalType] = rate
	}
	return assumptions
}

// FindScenario returns the named scenario, or nil when absent
func (plan *Plan) FindScenario(name string) *domain.Scenario {
	for i := range plan.Scenarios {
		if plan.Scenarios[i].Name == name {
			return &plan.Scenarios[i]
		}
	}
	return nil
}

// DefaultScenario returns the scenario to use when none is named: the first
// active one, falling back to the first in the file.
func (plan *Plan) DefaultScenario() *domain.Scenario {
	for i := range plan.Scenarios {
		if plan.Scenarios[i].IsActive {
			return &plan.Scenarios[i]
		}
	}
	if len(plan.Scenarios) > 0 {
		return &plan.Scenarios[0]
	}
	return nil
}

// FindGoal returns the goal with the given ID, or nil when absent
func (plan *Plan) FindGoal(goalID string) *domain.Goal {
	for i := range plan.Goals {
		if plan.Goals[i].ID == goalID {
			return &plan.Goals[i]
		}
	}
	return nil
}

// EngineInputForScenario assembles the engine input for a named scenario
func (plan *Plan) EngineInputForScenario(name string) (domain.EngineInput, error) {
	scenario := plan.FindScenario(name)
	if scenario == nil {
		return domain.EngineInput{}, fmt.Errorf("scenario %s not found", name)
	}
	return domain.EngineInput{
		Profile:     plan.Profile,
		Goals:       plan.Goals,
		Allocations: scenario.Allocation(),
	}, nil
}
