package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Allocation maps goal IDs to proposed monthly contribution amounts. Every
// stored amount is non-negative; setting a negative amount clamps to zero.
// Goals absent from the map read as zero.
type Allocation struct {
	amounts map[string]decimal.Decimal
}

// NewAllocation creates an empty allocation
func NewAllocation() *Allocation {
	return &Allocation{amounts: make(map[string]decimal.Decimal)}
}

// NewAllocationFromMap creates an allocation from a goalID -> amount map,
// clamping negative amounts to zero.
func NewAllocationFromMap(amounts map[string]decimal.Decimal) *Allocation {
	a := NewAllocation()
	for goalID, amount := range amounts {
		a.Set(goalID, amount)
	}
	return a
}

// Set stores the monthly amount for a goal, clamping negatives to zero
func (a *Allocation) Set(goalID string, amount decimal.Decimal) {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	a.amounts[goalID] = amount
}

// AmountFor returns the monthly amount for a goal, zero when absent
func (a *Allocation) AmountFor(goalID string) decimal.Decimal {
	if amount, ok := a.amounts[goalID]; ok {
		return amount
	}
	return decimal.Zero
}

// TotalAllocated returns the sum across all goals in the map, regardless of
// whether the goals are active. The engine reports its own total over active
// goals only; the two can legitimately differ.
func (a *Allocation) TotalAllocated() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range a.amounts {
		total = total.Add(amount)
	}
	return total
}

// FundedGoalCount returns the number of goals with a positive allocation
func (a *Allocation) FundedGoalCount() int {
	count := 0
	for _, amount := range a.amounts {
		if amount.IsPositive() {
			count++
		}
	}
	return count
}

// WouldExceed reports whether adding a further amount would push the total
// allocated past the given disposable-income ceiling.
func (a *Allocation) WouldExceed(additional, ceiling decimal.Decimal) bool {
	return a.TotalAllocated().Add(additional).GreaterThan(ceiling)
}

// GoalIDs returns the goal IDs present in the map, sorted for stable output
func (a *Allocation) GoalIDs() []string {
	ids := make([]string, 0, len(a.amounts))
	for goalID := range a.amounts {
		ids = append(ids, goalID)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns an independent copy; mutating the copy never affects the
// original. Simulation relies on this.
func (a *Allocation) Clone() *Allocation {
	clone := NewAllocation()
	for goalID, amount := range a.amounts {
		clone.amounts[goalID] = amount
	}
	return clone
}
