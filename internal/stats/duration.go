// Package stats computes chart-ready aggregations over training sessions:
// minutes-per-category breakdowns for the pie chart and per-session average
// intensity for the line chart.
package stats

import (
	"regexp"
	"strconv"
	"strings"
)

// Coaches type durations free-form, so we accept a handful of spellings in
// English and Spanish ("30m", "1h", "1 hora 30 minutos", "1:30"). The hours
// pattern must consume the whole string so that "1h 30m" falls through to
// the mixed form, and the mixed form requires a separator between the two
// numbers so a lone number is never split into hours and minutes.
var (
	minutePattern = regexp.MustCompile(`^(\d+\.?\d*)\s*(?:m|min|mins|minuto|minutos)`)
	hourPattern   = regexp.MustCompile(`^(\d+\.?\d*)\s*(?:h|hr|hrs|hora|horas)\s*$`)
	mixedPattern  = regexp.MustCompile(`^(\d+)\s*(?:(?:h|hr|hrs|hora|horas)\s*:?\s*|:\s*|\s+)(\d+)\s*(?:m|min|mins|minuto|minutos)?`)
)

// ParseDurationToMinutes converts a free-text duration into minutes. A bare
// number is taken as minutes. Unparseable input counts as zero minutes;
// flagging bad input to the coach is the form's job, not ours. The function
// is total and never fails.
func ParseDurationToMinutes(text string) float64 {
	clean := strings.ToLower(strings.TrimSpace(text))
	if clean == "" {
		return 0
	}

	// A plain number only counts if formatting it back reproduces the
	// input exactly; "30 reps" or "030" must fall through to the
	// pattern matchers instead.
	if n, err := strconv.ParseFloat(clean, 64); err == nil {
		if strconv.FormatFloat(n, 'f', -1, 64) == clean {
			return n
		}
	}

	if m := minutePattern.FindStringSubmatch(clean); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return n
	}
	if m := hourPattern.FindStringSubmatch(clean); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return n * 60
	}
	if m := mixedPattern.FindStringSubmatch(clean); m != nil {
		hours, _ := strconv.ParseFloat(m[1], 64)
		minutes, _ := strconv.ParseFloat(m[2], 64)
		return hours*60 + minutes
	}
	return 0
}
