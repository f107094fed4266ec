package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioStatus tracks a scenario through the couple's decision workflow
type ScenarioStatus string

const (
	ScenarioStatusDraft       ScenarioStatus = "draft"
	ScenarioStatusUnderReview ScenarioStatus = "under_review"
	ScenarioStatusDecided     ScenarioStatus = "decided"
	ScenarioStatusArchived    ScenarioStatus = "archived"
)

// IsValid reports whether s is a known scenario status
func (s ScenarioStatus) IsValid() bool {
	switch s {
	case ScenarioStatusDraft, ScenarioStatusUnderReview, ScenarioStatusDecided, ScenarioStatusArchived:
		return true
	}
	return false
}

// Scenario is a named, saved allocation plan with workflow metadata. The
// engine never consumes a Scenario directly; callers extract its Allocation
// and feed the engine repeatedly.
type Scenario struct {
	Name        string                     `yaml:"name" json:"name"`
	Status      ScenarioStatus             `yaml:"status" json:"status"`
	IsActive    bool                       `yaml:"is_active" json:"is_active"`
	Allocations map[string]decimal.Decimal `yaml:"allocations" json:"allocations"`
}

// Allocation builds the scenario's Allocation value, clamping any negative
// amounts on the way in.
func (s *Scenario) Allocation() *Allocation {
	return NewAllocationFromMap(s.Allocations)
}
