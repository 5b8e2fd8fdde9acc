package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/coaching-app/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 15, 30, 0, 0, time.UTC)
}

func session(date time.Time, exercises ...domain.LoggedExercise) domain.TrainingSession {
	return domain.TrainingSession{Date: date, Exercises: exercises}
}

func exercise(t domain.TrainingType, a domain.TrainingArea, name, duration string, intensity int) domain.LoggedExercise {
	return domain.LoggedExercise{Type: t, Area: a, Exercise: name, Duration: duration, Intensity: intensity}
}

func TestFilterByDateRange_InclusiveBounds(t *testing.T) {
	s := session(day(10), exercise(domain.TypeBasket, domain.AreaBaseline, "Static", "20m", 7))
	bound := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	// start == end == session day keeps the session even though its
	// timestamp is mid-afternoon.
	got := FilterByDateRange([]domain.TrainingSession{s}, &bound, &bound)
	assert.Len(t, got, 1)

	after := bound.AddDate(0, 0, 1)
	assert.Empty(t, FilterByDateRange([]domain.TrainingSession{s}, &after, nil))
	before := bound.AddDate(0, 0, -1)
	assert.Empty(t, FilterByDateRange([]domain.TrainingSession{s}, nil, &before))
}

func TestFilterByDateRange_OpenEndedAndDescending(t *testing.T) {
	sessions := []domain.TrainingSession{session(day(1)), session(day(20)), session(day(5))}
	got := FilterByDateRange(sessions, nil, nil)
	require.Len(t, got, 3)
	assert.Equal(t, day(20), got[0].Date)
	assert.Equal(t, day(5), got[1].Date)
	assert.Equal(t, day(1), got[2].Date)

	from := time.Date(2025, time.March, 4, 12, 0, 0, 0, time.UTC)
	got = FilterByDateRange(sessions, &from, nil)
	require.Len(t, got, 2)
	assert.Equal(t, day(20), got[0].Date)
}

func TestCategoryBreakdown_TopLevelMergesTypes(t *testing.T) {
	sessions := []domain.TrainingSession{
		session(day(1), exercise(domain.TypeBasket, domain.AreaBaseline, "Static", "20m", 7)),
		session(day(2), exercise(domain.TypeBasket, domain.AreaNet, "Volley", "0.5h", 5)),
	}
	got := CategoryBreakdown(sessions, nil)
	require.Len(t, got, 1)
	assert.Equal(t, ChartDataPoint{Name: "Basket", Value: 50, Level: LevelType}, got[0])
}

func TestCategoryBreakdown_DrilledToAreas(t *testing.T) {
	sessions := []domain.TrainingSession{
		session(day(1), exercise(domain.TypeBasket, domain.AreaBaseline, "Static", "20m", 7)),
		session(day(2), exercise(domain.TypeBasket, domain.AreaNet, "Volley", "0.5h", 5)),
		session(day(3), exercise(domain.TypeLiveBall, domain.AreaPoints, "Free", "45m", 8)),
	}
	got := CategoryBreakdown(sessions, DrillDownPath{"Basket"})
	require.Len(t, got, 2)
	assert.Equal(t, ChartDataPoint{Name: "Baseline", Value: 20, Level: LevelArea}, got[0])
	assert.Equal(t, ChartDataPoint{Name: "Net", Value: 30, Level: LevelArea}, got[1])
}

func TestCategoryBreakdown_ExcludesZeroEntries(t *testing.T) {
	sessions := []domain.TrainingSession{
		session(day(1),
			exercise(domain.TypeBasket, domain.AreaBaseline, "Static", "nonsense", 7),
			exercise(domain.TypeLiveBall, domain.AreaPoints, "Free", "30m", 6),
		),
	}
	got := CategoryBreakdown(sessions, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Live Ball", got[0].Name)
	for _, p := range got {
		assert.NotZero(t, p.Value)
	}
}

func TestCategoryBreakdown_ConservesTotalMinutes(t *testing.T) {
	sessions := []domain.TrainingSession{
		session(day(1),
			exercise(domain.TypeBasket, domain.AreaBaseline, "Static", "20m", 7),
			exercise(domain.TypeBasket, domain.AreaBaseline, "Dynamic", "25m", 8),
			exercise(domain.TypeLiveBall, domain.AreaNet, "Volley", "1h", 6),
		),
		session(day(2),
			exercise(domain.TypeLiveBall, domain.AreaFirstBalls, "Serve", "1:15", 9),
			exercise(domain.TypeBasket, domain.AreaNet, "Smash", "10m", 4),
		),
	}

	var want float64
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			want += ParseDurationToMinutes(ex.Duration)
		}
	}
	var got int
	for _, p := range CategoryBreakdown(sessions, nil) {
		got += p.Value
	}
	assert.Equal(t, int(math.Round(want)), got)
}

func TestCategoryBreakdown_DrillDownIsRefinement(t *testing.T) {
	sessions := []domain.TrainingSession{
		session(day(1),
			exercise(domain.TypeBasket, domain.AreaBaseline, "Static", "20m", 7),
			exercise(domain.TypeBasket, domain.AreaNet, "Volley", "40m", 5),
			exercise(domain.TypeLiveBall, domain.AreaPoints, "Free", "30m", 8),
		),
	}
	var basketTotal int
	for _, p := range CategoryBreakdown(sessions, nil) {
		if p.Name == "Basket" {
			basketTotal = p.Value
		}
	}
	var areaTotal int
	for _, p := range CategoryBreakdown(sessions, DrillDownPath{"Basket"}) {
		areaTotal += p.Value
	}
	assert.Equal(t, basketTotal, areaTotal, "area slices must add back up to the type slice")
}

func TestCategoryBreakdown_StableFirstSeenOrder(t *testing.T) {
	sessions := []domain.TrainingSession{
		session(day(1),
			exercise(domain.TypeLiveBall, domain.AreaPoints, "Free", "10m", 5),
			exercise(domain.TypeBasket, domain.AreaBaseline, "Static", "10m", 5),
			exercise(domain.TypeLiveBall, domain.AreaBaseline, "Control", "10m", 5),
		),
	}
	got := CategoryBreakdown(sessions, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "Live Ball", got[0].Name)
	assert.Equal(t, "Basket", got[1].Name)
}

func TestIntensitySeries_AscendingByDate(t *testing.T) {
	sessions := []domain.TrainingSession{
		session(day(20), exercise(domain.TypeBasket, domain.AreaNet, "Volley", "30m", 5)),
		session(day(3), exercise(domain.TypeBasket, domain.AreaBaseline, "Static", "20m", 7)),
		session(day(11), exercise(domain.TypeLiveBall, domain.AreaPoints, "Free", "15m", 9)),
	}
	got := IntensitySeries(sessions, nil)
	require.Len(t, got, 3)
	assert.Equal(t, "03 Mar", got[0].Date)
	assert.Equal(t, 7.0, got[0].AverageIntensity)
	assert.Equal(t, "11 Mar", got[1].Date)
	assert.Equal(t, "20 Mar", got[2].Date)
}

func TestIntensitySeries_ScopedAndRounded(t *testing.T) {
	sessions := []domain.TrainingSession{
		session(day(1),
			exercise(domain.TypeBasket, domain.AreaBaseline, "Static", "20m", 7),
			exercise(domain.TypeBasket, domain.AreaBaseline, "Dynamic", "20m", 8),
			exercise(domain.TypeLiveBall, domain.AreaNet, "Volley", "20m", 2),
		),
		// nothing in scope: contributes no point, not a zero
		session(day(2), exercise(domain.TypeLiveBall, domain.AreaPoints, "Free", "20m", 4)),
	}
	got := IntensitySeries(sessions, DrillDownPath{"Basket"})
	require.Len(t, got, 1)
	assert.Equal(t, 7.5, got[0].AverageIntensity)

	sessions[0].Exercises[1].Intensity = 7
	sessions[0].Exercises = append(sessions[0].Exercises,
		exercise(domain.TypeBasket, domain.AreaNet, "Smash", "10m", 6))
	got = IntensitySeries(sessions, DrillDownPath{"Basket"})
	require.Len(t, got, 1)
	assert.Equal(t, 6.7, got[0].AverageIntensity, "mean of 7,7,6 rounds to one decimal")
}

func TestIntensitySeries_EmptyInput(t *testing.T) {
	assert.Empty(t, IntensitySeries(nil, nil))
	assert.Empty(t, CategoryBreakdown(nil, nil))
}

func TestEndToEndBreakdownAndIntensity(t *testing.T) {
	a := session(day(1), exercise(domain.TypeBasket, domain.AreaBaseline, "Static", "20m", 7))
	b := session(day(2), exercise(domain.TypeBasket, domain.AreaNet, "Volley", "0.5h", 5))
	sessions := []domain.TrainingSession{a, b}

	top := CategoryBreakdown(sessions, nil)
	require.Len(t, top, 1)
	assert.Equal(t, "Basket", top[0].Name)
	assert.Equal(t, 50, top[0].Value)

	byArea := CategoryBreakdown(sessions, DrillDownPath{"Basket"})
	require.Len(t, byArea, 2)
	assert.Equal(t, ChartDataPoint{Name: "Baseline", Value: 20, Level: LevelArea}, byArea[0])
	assert.Equal(t, ChartDataPoint{Name: "Net", Value: 30, Level: LevelArea}, byArea[1])

	series := IntensitySeries(sessions, nil)
	require.Len(t, series, 2)
	assert.Equal(t, 7.0, series[0].AverageIntensity)
	assert.Equal(t, 5.0, series[1].AverageIntensity)
}
