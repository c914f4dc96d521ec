package datemath_test

import (
	"testing"

	"quick-event/pkg/datemath"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		def    int
		want   int
	}{
		{name: "Empty Uses Default", phrase: "", def: 60, want: 60},
		{name: "Bare Digits Are Minutes", phrase: "90", def: 60, want: 90},
		{name: "Bare Zero Clamps To One", phrase: "0", def: 60, want: 1},
		{name: "Hours", phrase: "2h", def: 60, want: 120},
		{name: "Hour Word", phrase: "1 hour", def: 60, want: 60},
		{name: "Hours Word", phrase: "2 hours", def: 60, want: 120},
		{name: "Minutes", phrase: "45m", def: 60, want: 45},
		{name: "Minute Words", phrase: "45 mins", def: 60, want: 45},
		{name: "Mixed Units Sum", phrase: "1h 30m", def: 60, want: 90},
		{name: "Mixed Compact", phrase: "1h30m", def: 60, want: 90},
		{name: "Hr Abbrev", phrase: "3hrs", def: 60, want: 180},
		{name: "No Units Uses Default", phrase: "a while", def: 45, want: 45},
		{name: "Uppercase", phrase: "2H", def: 60, want: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.ParseDuration(tt.phrase, tt.def); got != tt.want {
				t.Errorf("ParseDuration(%q, %d) = %d, want %d", tt.phrase, tt.def, got, tt.want)
			}
		})
	}
}
