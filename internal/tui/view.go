package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/goalplan/savings-planner/internal/domain"
	"github.com/goalplan/savings-planner/internal/output"
	"github.com/goalplan/savings-planner/internal/tui/components"
	"github.com/goalplan/savings-planner/internal/tui/tuistyles"
)

// View renders the simulator (required by tea.Model)
func (m Model) View() string {
	if m.loading {
		return "\n  Loading plan...\n"
	}
	if m.err != nil {
		return "\n  " + tuistyles.ErrorStyle.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.plan == nil || len(m.goalIDs) == 0 {
		return "\n  No active goals in plan.\n"
	}

	var sb strings.Builder

	scenarioName := ""
	if scenario := m.currentScenario(); scenario != nil {
		scenarioName = scenario.Name
	}
	title := tuistyles.TitleStyle.Render("goalplan - what-if simulator")
	subtitle := tuistyles.SubtitleStyle.Render(fmt.Sprintf("scenario: %s", scenarioName))
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, title, subtitle))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderBudgetLine())
	sb.WriteString("\n\n")

	disposable := m.plan.Profile.MonthlyDisposable()
	for i, goalID := range m.goalIDs {
		goal := m.plan.FindGoal(goalID)
		if goal == nil {
			continue
		}
		sb.WriteString(m.renderGoalRow(goal, disposable, i == m.cursor))
		sb.WriteString("\n")
	}

	if len(m.output.Warnings) > 0 {
		sb.WriteString("\n")
		for _, warning := range m.output.Warnings {
			sb.WriteString(tuistyles.WarningStyle.Render("! " + warning.String()))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

// renderBudgetLine shows the monthly totals, flagging over-allocation
func (m Model) renderBudgetLine() string {
	leftover := m.output.RemainingDisposable
	leftoverText := output.FormatCurrency(leftover)
	if leftover.IsNegative() {
		leftoverText = tuistyles.UnreachableStyle.Render(leftoverText)
	} else {
		leftoverText = tuistyles.ReachableStyle.Render(leftoverText)
	}

	return fmt.Sprintf("  disposable %s/mo   allocated %s/mo   leftover %s/mo",
		output.FormatCurrency(m.plan.Profile.MonthlyDisposable()),
		output.FormatCurrency(m.output.TotalAllocated),
		leftoverText)
}

// renderGoalRow renders one goal: name, slider, amount, projection
func (m Model) renderGoalRow(goal *domain.Goal, disposable decimal.Decimal, focused bool) string {
	amount := m.working.AmountFor(goal.ID)

	slider := components.NewAllocationSlider(goal.Name, amount, disposable)
	slider.IsFocused = focused

	marker := "  "
	nameStyle := tuistyles.GoalLabelStyle
	if focused {
		marker = tuistyles.StatusKeyStyle.Render("> ")
		nameStyle = nameStyle.Foreground(tuistyles.ColorPrimary)
	}

	projection, ok := m.output.Projections[goal.ID]
	status := renderGoalStatus(projection, ok)

	return fmt.Sprintf("%s%s %s %s  %s",
		marker,
		nameStyle.Width(22).Render(goal.Name),
		slider.Render(),
		tuistyles.GoalValueStyle.Width(12).Align(lipgloss.Right).Render(output.FormatCurrency(amount)+"/mo"),
		status)
}

// renderStatusBar renders the key help footer
func (m Model) renderStatusBar() string {
	bindings := []string{
		formatShortcut("↑/↓", "goal"),
		formatShortcut("←/→", "±$50"),
		formatShortcut("shift+←/→", "±$250"),
		formatShortcut("0", "clear"),
		formatShortcut("r", "reset"),
		formatShortcut("tab", "scenario"),
		formatShortcut("q", "quit"),
	}
	return tuistyles.StatusBarStyle.Width(m.width).Render("  " + strings.Join(bindings, "  "))
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return tuistyles.StatusKeyStyle.Render(key) + " " + desc
}

// renderGoalStatus renders the projection outcome label for a goal
func renderGoalStatus(projection domain.GoalProjection, ok bool) string {
	if !ok {
		return ""
	}
	if !projection.IsReachable {
		return tuistyles.UnreachableStyle.Render("50+ years")
	}
	if *projection.MonthsToComplete == 0 {
		return tuistyles.ReachableStyle.Render("complete")
	}
	label := fmt.Sprintf("%s (%s)",
		output.FormatMonths(*projection.MonthsToComplete),
		projection.CompletionDate.Format("Jan 2006"))
	return tuistyles.ReachableStyle.Render(label)
}
