package components

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goalplan/savings-planner/internal/tui/tuistyles"
)

// AllocationSlider displays a goal's monthly allocation as a visual bar.
// Purely presentational; the update loop owns the amounts.
type AllocationSlider struct {
	Label     string
	Amount    decimal.Decimal
	Max       decimal.Decimal // usually the monthly disposable income
	Width     int
	IsFocused bool
}

// NewAllocationSlider creates a slider with the default width
func NewAllocationSlider(label string, amount, max decimal.Decimal) *AllocationSlider {
	return &AllocationSlider{
		Label:  label,
		Amount: amount,
		Max:    max,
		Width:  24,
	}
}

// Ratio returns the amount as a fraction of Max, clamped to [0, 1]
func (s *AllocationSlider) Ratio() float64 {
	if !s.Max.IsPositive() {
		return 0
	}
	ratio, _ := s.Amount.Div(s.Max).Float64()
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// Render returns the single-line slider bar
func (s *AllocationSlider) Render() string {
	filled := int(float64(s.Width) * s.Ratio())
	if filled > s.Width {
		filled = s.Width
	}

	thumbStyle := tuistyles.SliderThumbStyle
	if s.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}
	trackStyle := tuistyles.SliderTrackStyle

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < s.Width; i++ {
		switch {
		case i == filled:
			bar.WriteString(thumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(thumbStyle.Render("━"))
		default:
			bar.WriteString(trackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}
