package stats

import (
	"math"
	"sort"
	"time"

	"courtside/coaching-app/internal/domain"
)

// ChartDataPoint is one pie chart slice: total minutes recorded for a
// category at the current drill-down level.
type ChartDataPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"` // minutes, rounded
	Level Level  `json:"level"`
}

// IntensityPoint is one line chart point: a session's average intensity
// within the current drill-down scope.
type IntensityPoint struct {
	Date             string  `json:"date"` // "02 Jan"
	AverageIntensity float64 `json:"averageIntensity"`
}

// intensityDateFormat renders session dates for the line chart axis.
const intensityDateFormat = "02 Jan"

// FilterByDateRange keeps sessions whose date falls inside the inclusive
// [start 00:00:00, end 23:59:59.999…] window; either bound may be nil for an
// open end. The result is ordered most recent first for session-list
// display; aggregation itself does not depend on this order.
func FilterByDateRange(sessions []domain.TrainingSession, start, end *time.Time) []domain.TrainingSession {
	out := make([]domain.TrainingSession, 0, len(sessions))
	for _, s := range sessions {
		if start != nil {
			dayStart := startOfDay(*start)
			if s.Date.Before(dayStart) {
				continue
			}
		}
		if end != nil {
			dayEnd := endOfDay(*end)
			if s.Date.After(dayEnd) {
				continue
			}
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// CategoryBreakdown sums recorded minutes per category at the path's
// grouping level. Categories appear in first-seen order; categories whose
// rounded total is zero are dropped so the chart never renders a zero-size
// slice.
func CategoryBreakdown(sessions []domain.TrainingSession, path DrillDownPath) []ChartDataPoint {
	var order []string
	sums := make(map[string]float64)
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			if !path.includes(ex) {
				continue
			}
			key := path.groupKey(ex)
			if _, seen := sums[key]; !seen {
				order = append(order, key)
			}
			sums[key] += ParseDurationToMinutes(ex.Duration)
		}
	}

	level := path.Level()
	points := make([]ChartDataPoint, 0, len(order))
	for _, name := range order {
		value := int(math.Round(sums[name]))
		if value == 0 {
			continue
		}
		points = append(points, ChartDataPoint{Name: name, Value: value, Level: level})
	}
	return points
}

// IntensitySeries computes each session's mean intensity over the exercises
// inside the path's scope, rounded to one decimal. Sessions with no
// exercises in scope contribute no point. The series is ordered ascending
// by session date regardless of input order.
func IntensitySeries(sessions []domain.TrainingSession, path DrillDownPath) []IntensityPoint {
	ordered := make([]domain.TrainingSession, len(sessions))
	copy(ordered, sessions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	points := make([]IntensityPoint, 0, len(ordered))
	for _, s := range ordered {
		var sum float64
		var count int
		for _, ex := range s.Exercises {
			if !path.includes(ex) {
				continue
			}
			sum += float64(ex.Intensity)
			count++
		}
		if count == 0 {
			continue
		}
		avg := sum / float64(count)
		if avg == 0 {
			continue
		}
		points = append(points, IntensityPoint{
			Date:             s.Date.Format(intensityDateFormat),
			AverageIntensity: math.Round(avg*10) / 10,
		})
	}
	return points
}
