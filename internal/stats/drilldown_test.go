package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrill(t *testing.T) {
	p := DrillDownPath{}

	p, ok := p.Drill("Basket")
	assert.True(t, ok)
	assert.Equal(t, DrillDownPath{"Basket"}, p)

	p, ok = p.Drill("Baseline")
	assert.True(t, ok)
	assert.Equal(t, DrillDownPath{"Basket", "Baseline"}, p)

	// leaf level: no further navigation
	same, ok := p.Drill("Static")
	assert.False(t, ok)
	assert.Equal(t, p, same)
}

func TestDrill_UnknownAreaIgnored(t *testing.T) {
	p := DrillDownPath{"Basket"}

	// Points is a real area but Basket training has no Points exercises.
	same, ok := p.Drill("Points")
	assert.False(t, ok)
	assert.Equal(t, p, same)

	_, ok = p.Drill("Midcourt")
	assert.False(t, ok)

	// a path whose type selector is garbage cannot drill further
	_, ok = DrillDownPath{"Bogus"}.Drill("Baseline")
	assert.False(t, ok)
}

func TestTruncate(t *testing.T) {
	p := DrillDownPath{"Basket", "Baseline"}
	assert.Equal(t, DrillDownPath{"Basket"}, p.Truncate(1))
	assert.Empty(t, p.Truncate(0))
	assert.Equal(t, p, p.Truncate(5))
	assert.Empty(t, p.Truncate(-1))
}

func TestLevelPerDepth(t *testing.T) {
	assert.Equal(t, LevelType, DrillDownPath{}.Level())
	assert.Equal(t, LevelArea, DrillDownPath{"Basket"}.Level())
	assert.Equal(t, LevelExercise, DrillDownPath{"Basket", "Net"}.Level())
}

func TestChartTitles(t *testing.T) {
	assert.Equal(t, "Distribution by Type (minutes)", DrillDownPath{}.BreakdownTitle())
	assert.Equal(t, "Basket: By Area (minutes)", DrillDownPath{"Basket"}.BreakdownTitle())
	assert.Equal(t, "Basket - Net: By Exercise (minutes)", DrillDownPath{"Basket", "Net"}.BreakdownTitle())
	assert.Equal(t, "Intensity (Basket - Net)", DrillDownPath{"Basket", "Net"}.IntensityTitle())
}
