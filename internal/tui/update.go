package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/goalplan/savings-planner/internal/calculation"
	"github.com/goalplan/savings-planner/internal/config"
)

// allocationStep is the amount one keypress moves an allocation by
var allocationStep = decimal.NewFromInt(50)

// bigAllocationStep is the coarse adjustment step
var bigAllocationStep = decimal.NewFromInt(250)

// KeyMap defines the simulator key bindings
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Increase     key.Binding
	Decrease     key.Binding
	IncreaseBig  key.Binding
	DecreaseBig  key.Binding
	Zero         key.Binding
	Reset        key.Binding
	NextScenario key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous goal")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next goal")),
		Increase:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "+$50")),
		Decrease:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "-$50")),
		IncreaseBig:  key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("shift+→", "+$250")),
		DecreaseBig:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←", "-$250")),
		Zero:         key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "clear allocation")),
		Reset:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset to saved")),
		NextScenario: key.NewBinding(key.WithKeys("tab", "s"), key.WithHelp("tab", "next scenario")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case PlanLoadedMsg:
		m.plan = msg.Plan
		m.engine = calculation.NewProjectionEngineWithAssumptions(msg.Plan.BuildAssumptions())
		m.goalIDs = activeGoalIDs(msg.Plan.Goals)
		m.scenarioIndex = defaultScenarioIndex(msg.Plan)
		m.cursor = 0
		m.loading = false
		m.resetWorking()
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.plan == nil || len(m.goalIDs) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.goalIDs)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Increase):
		m.adjustSelected(allocationStep)

	case key.Matches(msg, m.keys.Decrease):
		m.adjustSelected(allocationStep.Neg())

	case key.Matches(msg, m.keys.IncreaseBig):
		m.adjustSelected(bigAllocationStep)

	case key.Matches(msg, m.keys.DecreaseBig):
		m.adjustSelected(bigAllocationStep.Neg())

	case key.Matches(msg, m.keys.Zero):
		m.working.Set(m.goalIDs[m.cursor], decimal.Zero)
		m.recalculate()

	case key.Matches(msg, m.keys.Reset):
		m.resetWorking()

	case key.Matches(msg, m.keys.NextScenario):
		if len(m.plan.Scenarios) == 0 {
			return m, nil
		}
		m.scenarioIndex = (m.scenarioIndex + 1) % len(m.plan.Scenarios)
		m.resetWorking()
	}

	return m, nil
}

// adjustSelected moves the selected goal's allocation by delta, clamped at
// zero by the allocation itself.
func (m *Model) adjustSelected(delta decimal.Decimal) {
	goalID := m.goalIDs[m.cursor]
	m.working.Set(goalID, m.working.AmountFor(goalID).Add(delta))
	m.recalculate()
}

// defaultScenarioIndex picks the first active scenario, falling back to 0
func defaultScenarioIndex(plan *config.Plan) int {
	for i := range plan.Scenarios {
		if plan.Scenarios[i].IsActive {
			return i
		}
	}
	return 0
}
