package tui

import (
	"github.com/goalplan/savings-planner/internal/config"
)

// PlanLoadedMsg is sent when the plan file has been parsed
type PlanLoadedMsg struct {
	Plan *config.Plan
}

// ErrorMsg carries an error into the update loop
type ErrorMsg struct {
	Err error
}
