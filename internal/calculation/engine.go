package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goalplan/savings-planner/internal/domain"
)

// MaxProjectionMonths caps the month search at 50 years. Goals that cannot be
// reached inside the bound are reported unreachable, matching the "50+ years"
// label the UI shows for them.
const MaxProjectionMonths = 600

// MonthlyRate converts an annual return rate to the engine's monthly rate.
// The engine uses the linear convention annual/12 rather than geometric
// compounding: decimal arithmetic has no exact fractional exponent, and the
// divergence is negligible at savings-account rates. Every operation in this
// package converts rates through this one function so the forward projection
// and the inverse contribution solve stay consistent.
func MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(decimal.NewFromInt(12))
}

// ProjectionEngine computes goal completion projections. It is pure: it holds
// no state between calls, never mutates its inputs, and identical inputs
// always produce identical outputs. Safe for concurrent use.
type ProjectionEngine struct {
	Assumptions domain.Assumptions
	Logger      Logger

	// Now supplies "today" for completion dates. Overridable in tests.
	Now func() time.Time
}

// NewProjectionEngine creates an engine with the built-in assumption table
func NewProjectionEngine() *ProjectionEngine {
	return NewProjectionEngineWithAssumptions(domain.DefaultAssumptions())
}

// NewProjectionEngineWithAssumptions creates an engine with a caller-supplied
// assumption table, e.g. one loaded from a plan file.
func NewProjectionEngineWithAssumptions(assumptions domain.Assumptions) *ProjectionEngine {
	return &ProjectionEngine{
		Assumptions: assumptions,
		Logger:      NopLogger{},
		Now:         time.Now,
	}
}

// SetLogger installs a logger; nil restores the no-op default
func (e *ProjectionEngine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}

// Calculate projects every active goal under the input's allocation plan and
// surfaces allocation-health warnings. Inactive goals are excluded entirely:
// they get no projection and their allocations do not count toward the total.
func (e *ProjectionEngine) Calculate(input domain.EngineInput) domain.EngineOutput {
	allocations := input.Allocations
	if allocations == nil {
		allocations = domain.NewAllocation()
	}

	today := e.Now()
	output := domain.EngineOutput{
		Projections:    make(map[string]domain.GoalProjection),
		TotalAllocated: decimal.Zero,
	}

	for i := range input.Goals {
		goal := &input.Goals[i]
		if !goal.IsActive {
			continue
		}

		contribution := allocations.AmountFor(goal.ID)
		output.TotalAllocated = output.TotalAllocated.Add(contribution)

		projection := e.projectGoal(goal, contribution, today)
		output.Projections[goal.ID] = projection

		if !goal.IsComplete() && contribution.IsZero() {
			output.Warnings = append(output.Warnings, domain.Warning{
				Kind:     domain.WarningNoContribution,
				GoalID:   goal.ID,
				GoalName: goal.Name,
			})
		}
		if !projection.IsReachable {
			output.Warnings = append(output.Warnings, domain.Warning{
				Kind:     domain.WarningGoalUnreachable,
				GoalID:   goal.ID,
				GoalName: goal.Name,
			})
		}
	}

	disposable := input.Profile.MonthlyDisposable()
	output.RemainingDisposable = disposable.Sub(output.TotalAllocated)

	if output.TotalAllocated.GreaterThan(disposable) {
		output.Warnings = append(output.Warnings, domain.Warning{Kind: domain.WarningOverAllocated})
	}
	if input.Profile.RawMonthlyDisposable().IsNegative() {
		output.Warnings = append(output.Warnings, domain.Warning{Kind: domain.WarningNegativeDisposable})
	}

	e.Logger.Debugf("calculated %d projections, %d warnings, total allocated %s",
		len(output.Projections), len(output.Warnings), output.TotalAllocated.StringFixed(2))

	return output
}

// projectGoal solves for the smallest month count at which the goal's balance,
// compounded monthly with a fixed contribution, reaches the target.
func (e *ProjectionEngine) projectGoal(goal *domain.Goal, contribution decimal.Decimal, today time.Time) domain.GoalProjection {
	projection := domain.GoalProjection{
		GoalID:              goal.ID,
		GoalName:            goal.Name,
		MonthlyContribution: contribution,
	}

	// Already met or overshot, including non-positive targets. Terminal state.
	if goal.IsComplete() {
		months := 0
		completion := today
		projection.MonthsToComplete = &months
		projection.CompletionDate = &completion
		projection.ProjectedFinalValue = goal.CurrentAmount
		projection.IsReachable = true
		return projection
	}

	rate := MonthlyRate(goal.EffectiveReturnRate(e.Assumptions))

	// Nothing going in and nothing growing: never reaches the target.
	if rate.IsZero() && contribution.IsZero() {
		projection.ProjectedFinalValue = goal.CurrentAmount
		projection.IsReachable = false
		return projection
	}

	growth := decimal.NewFromInt(1).Add(rate)
	balance := goal.CurrentAmount
	for month := 1; month <= MaxProjectionMonths; month++ {
		balance = balance.Mul(growth).Add(contribution)
		if balance.GreaterThanOrEqual(goal.TargetAmount) {
			months := month
			completion := today.AddDate(0, month, 0)
			projection.MonthsToComplete = &months
			projection.CompletionDate = &completion
			// Actual balance at completion, overshoot included; not clamped
			// down to the target.
			projection.ProjectedFinalValue = balance
			projection.IsReachable = true
			return projection
		}
	}

	projection.ProjectedFinalValue = balance
	projection.IsReachable = false
	return projection
}
