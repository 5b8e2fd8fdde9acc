package domain

import "fmt"

// TrainingType classifies how an exercise is fed: from a basket of balls
// or in live play.
type TrainingType string

const (
	TypeBasket   TrainingType = "Basket"
	TypeLiveBall TrainingType = "Live Ball"
)

// TrainingArea is the part of the court an exercise works on.
type TrainingArea string

const (
	AreaBaseline   TrainingArea = "Baseline"
	AreaNet        TrainingArea = "Net"
	AreaFirstBalls TrainingArea = "First Balls"
	AreaPoints     TrainingArea = "Points"
)

// ParseTrainingType converts a free-form UI selection into a TrainingType.
// Unrecognized values are rejected here rather than propagated as untyped
// strings.
func ParseTrainingType(s string) (TrainingType, error) {
	switch s {
	case string(TypeBasket):
		return TypeBasket, nil
	case string(TypeLiveBall):
		return TypeLiveBall, nil
	}
	return "", fmt.Errorf("unknown training type %q", s)
}

// ParseTrainingArea converts a free-form UI selection into a TrainingArea.
func ParseTrainingArea(s string) (TrainingArea, error) {
	switch s {
	case string(AreaBaseline):
		return AreaBaseline, nil
	case string(AreaNet):
		return AreaNet, nil
	case string(AreaFirstBalls):
		return AreaFirstBalls, nil
	case string(AreaPoints):
		return AreaPoints, nil
	}
	return "", fmt.Errorf("unknown training area %q", s)
}

// ExerciseHierarchy is the catalog of exercises per type and area. It drives
// the session form vocabulary and drill-down navigation on the stats charts.
// Note that Basket training has no Points area.
var ExerciseHierarchy = map[TrainingType]map[TrainingArea][]string{
	TypeBasket: {
		AreaBaseline:   {"Static", "Dynamic"},
		AreaNet:        {"Volley", "Smash", "Approach"},
		AreaFirstBalls: {"Serve", "Return", "Serve + 1", "Return + 1"},
	},
	TypeLiveBall: {
		AreaBaseline:   {"Control", "Mobility", "Patterns"},
		AreaNet:        {"Volley", "Smash", "Approach"},
		AreaFirstBalls: {"Serve", "Return", "Serve + 1", "Return + 1"},
		AreaPoints:     {"Free", "Guided"},
	},
}

// ValidAreaForType reports whether the given type/area combination exists in
// the exercise catalog.
func ValidAreaForType(t TrainingType, a TrainingArea) bool {
	areas, ok := ExerciseHierarchy[t]
	if !ok {
		return false
	}
	_, ok = areas[a]
	return ok
}

// MinIntensity and MaxIntensity bound the 1..10 intensity scale coaches
// score exercises with.
const (
	MinIntensity = 1
	MaxIntensity = 10
)
