package compare

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComparisonSet(t *testing.T) *ComparisonSet {
	t.Helper()
	profile, goals, scenarios := testFixture()
	engine := NewCompareEngine(testCalcEngine())

	compSet, err := engine.CompareScenarios(context.Background(), profile, goals, scenarios,
		"Conservative", []string{"Aggressive", "Overcommitted"})
	require.NoError(t, err)
	return compSet
}

func TestTableFormatter(t *testing.T) {
	compSet := testComparisonSet(t)
	compSet.PlanPath = "testdata/plan.yaml"

	tf := &TableFormatter{}
	out := tf.Format(compSet)

	assert.Contains(t, out, "SAVINGS SCENARIO COMPARISON")
	assert.Contains(t, out, "Base Scenario: Conservative")
	assert.Contains(t, out, "Conservative (base)")
	assert.Contains(t, out, "Aggressive")
	assert.Contains(t, out, "Overcommitted")
	assert.Contains(t, out, "COMPARISON TO BASE")
	assert.Contains(t, out, "RECOMMENDATIONS")
	assert.Contains(t, out, "testdata/plan.yaml")
	assert.Contains(t, out, "50+ years", "Base with an unfunded goal shows the unreachable horizon")
}

func TestJSONFormatter(t *testing.T) {
	compSet := testComparisonSet(t)

	jf := &JSONFormatter{Pretty: true}
	out, err := jf.Format(compSet)
	require.NoError(t, err)

	var decoded ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Conservative", decoded.BaseScenarioName)
	assert.Len(t, decoded.AlternativeResults, 2)
	assert.Equal(t, compSet.Recommendations, decoded.Recommendations)
}

func TestCSVFormatter(t *testing.T) {
	compSet := testComparisonSet(t)

	cf := &CSVFormatter{}
	out, err := cf.Format(compSet)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 4, "header plus one row per scenario")
	assert.Contains(t, lines[0], "Scenario")
	assert.Contains(t, out, "Conservative")
	assert.Contains(t, out, "Aggressive")
	assert.Contains(t, out, "Overcommitted")
}

func TestFormatHorizon(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{-1, "50+ years"},
		{0, "done"},
		{7, "7 mo"},
		{12, "1 yr"},
		{30, "2y 6m"},
	}

	for _, tt := range tests {
		if got := formatHorizon(tt.months); got != tt.want {
			t.Errorf("formatHorizon(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}
