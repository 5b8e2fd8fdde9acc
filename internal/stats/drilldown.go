package stats

import (
	"fmt"

	"courtside/coaching-app/internal/domain"
)

// Level says which grouping a chart entry belongs to.
type Level string

const (
	LevelType     Level = "type"
	LevelArea     Level = "area"
	LevelExercise Level = "exercise"
)

// DrillDownPath is the navigation state of the category charts: empty means
// group by type, one selector narrows to that type and groups by area, two
// selectors narrow to type+area and group by exercise name. It is transient
// UI state and never persisted.
type DrillDownPath []string

// Level returns the grouping level the path currently displays.
func (p DrillDownPath) Level() Level {
	switch len(p) {
	case 0:
		return LevelType
	case 1:
		return LevelArea
	default:
		return LevelExercise
	}
}

// Drill returns the path after clicking the named category. Clicks past the
// exercise level, and type+area combinations missing from the exercise
// catalog, are silently ignored and return the path unchanged.
func (p DrillDownPath) Drill(name string) (DrillDownPath, bool) {
	switch len(p) {
	case 0:
		return DrillDownPath{name}, true
	case 1:
		t, err := domain.ParseTrainingType(p[0])
		if err != nil {
			return p, false
		}
		a, err := domain.ParseTrainingArea(name)
		if err != nil || !domain.ValidAreaForType(t, a) {
			return p, false
		}
		return DrillDownPath{p[0], name}, true
	}
	return p, false
}

// Truncate cuts the path back to the given depth, as when a breadcrumb is
// clicked.
func (p DrillDownPath) Truncate(depth int) DrillDownPath {
	if depth < 0 {
		depth = 0
	}
	if depth > len(p) {
		depth = len(p)
	}
	return p[:depth]
}

// includes reports whether the exercise falls inside the path's scope.
func (p DrillDownPath) includes(ex domain.LoggedExercise) bool {
	if len(p) >= 1 && string(ex.Type) != p[0] {
		return false
	}
	if len(p) >= 2 && string(ex.Area) != p[1] {
		return false
	}
	return true
}

// groupKey returns the category name the exercise contributes to at the
// path's grouping level.
func (p DrillDownPath) groupKey(ex domain.LoggedExercise) string {
	switch len(p) {
	case 0:
		return string(ex.Type)
	case 1:
		return string(ex.Area)
	default:
		return ex.Exercise
	}
}

// BreakdownTitle is the pie chart heading for the current drill-down depth.
func (p DrillDownPath) BreakdownTitle() string {
	switch len(p) {
	case 0:
		return "Distribution by Type (minutes)"
	case 1:
		return fmt.Sprintf("%s: By Area (minutes)", p[0])
	default:
		return fmt.Sprintf("%s - %s: By Exercise (minutes)", p[0], p[1])
	}
}

// IntensityTitle is the line chart heading for the current drill-down depth.
func (p DrillDownPath) IntensityTitle() string {
	switch len(p) {
	case 0:
		return "Intensity Progression (Overall)"
	case 1:
		return fmt.Sprintf("Intensity (%s)", p[0])
	default:
		return fmt.Sprintf("Intensity (%s - %s)", p[0], p[1])
	}
}
