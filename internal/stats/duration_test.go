package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"30", 30},
		{"30m", 30},
		{"30 m", 30},
		{"30min", 30},
		{"30 mins", 30},
		{"45 minutos", 45},
		{"1h", 60},
		{"2 hrs", 120},
		{"1.5h", 90},
		{"2 horas", 120},
		{"1h 30m", 90},
		{"1:30", 90},
		{"1 30m", 90},
		{"1h30", 90},
		{"0.5", 0.5},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"many minutes", 0},
		{"30 reps", 0}, // rep counts carry no time information
		{"  30M ", 30},
		{"1 HORA 15", 75},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseDurationToMinutes(tc.input), "input=%q", tc.input)
	}
}

func TestParseDurationToMinutes_PlainNumberRoundTrip(t *testing.T) {
	// "030" does not round-trip as a plain number, and no pattern matcher
	// accepts it either, so it counts as zero minutes.
	assert.Equal(t, 0.0, ParseDurationToMinutes("030"))
}

func TestParseDurationToMinutes_NeverPanics(t *testing.T) {
	inputs := []string{"-5", "1e99", "::", "h", "m", "1h2h3h", "999999999999m", "\x00\xff", "minuto"}
	for _, in := range inputs {
		assert.NotPanics(t, func() { ParseDurationToMinutes(in) }, "input=%q", in)
	}
}
