package tui

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goalplan/savings-planner/internal/calculation"
	"github.com/goalplan/savings-planner/internal/config"
	"github.com/goalplan/savings-planner/internal/domain"
)

// Model is the what-if simulator state: one scenario's allocations, editable
// live, with the projection recomputed on every change.
type Model struct {
	planPath string
	plan     *config.Plan
	engine   *calculation.ProjectionEngine

	scenarioIndex int
	working       *domain.Allocation
	output        domain.EngineOutput

	// goalIDs holds the active goals in display order (priority, then name)
	goalIDs []string
	cursor  int

	width  int
	height int

	keys KeyMap
	err  error

	loading bool
}

// NewModel creates the simulator model for a plan file
func NewModel(planPath string) Model {
	return Model{
		planPath: planPath,
		keys:     DefaultKeyMap(),
		width:    80,
		height:   24,
		loading:  true,
	}
}

// Init loads the plan file (required by tea.Model)
func (m Model) Init() tea.Cmd {
	return loadPlanCmd(m.planPath)
}

// loadPlanCmd returns a command that loads and validates the plan file
func loadPlanCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return PlanLoadedMsg{Plan: plan}
	}
}

// currentScenario returns the scenario being edited, nil before load
func (m *Model) currentScenario() *domain.Scenario {
	if m.plan == nil || len(m.plan.Scenarios) == 0 {
		return nil
	}
	return &m.plan.Scenarios[m.scenarioIndex]
}

// recalculate reruns the engine over the working allocation
func (m *Model) recalculate() {
	if m.plan == nil || m.engine == nil {
		return
	}
	m.output = m.engine.Calculate(domain.EngineInput{
		Profile:     m.plan.Profile,
		Goals:       m.plan.Goals,
		Allocations: m.working,
	})
}

// resetWorking replaces the working allocation with the scenario's saved one
func (m *Model) resetWorking() {
	scenario := m.currentScenario()
	if scenario == nil {
		m.working = domain.NewAllocation()
	} else {
		m.working = scenario.Allocation()
	}
	m.recalculate()
}

// activeGoalIDs computes the display order for active goals
func activeGoalIDs(goals []domain.Goal) []string {
	active := make([]domain.Goal, 0, len(goals))
	for _, goal := range goals {
		if goal.IsActive {
			active = append(active, goal)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Priority != active[j].Priority {
			return active[i].Priority < active[j].Priority
		}
		return active[i].Name < active[j].Name
	})

	ids := make([]string, len(active))
	for i, goal := range active {
		ids[i] = goal.ID
	}
	return ids
}
