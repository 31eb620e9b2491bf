package billing

import (
	"testing"
	"time"
)

func TestNextNumber(t *testing.T) {
	in2024 := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last string
		now  time.Time
		want string
	}{
		{"no prior invoice", "", in2024, "2024-001"},
		{"increments within year", "2024-007", in2024, "2024-008"},
		{"zero-pads to three digits", "2024-001", in2024, "2024-002"},
		{"grows past three digits", "2024-999", in2024, "2024-1000"},
		{"year rollover resets", "2023-015", in2024, "2024-001"},
		{"malformed number falls back", "weird", in2024, "2024-001"},
		{"too many separators falls back", "2024-01-5", in2024, "2024-001"},
		{"non-numeric sequence falls back", "2024-abc", in2024, "2024-001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextNumber(tt.last, tt.now); got != tt.want {
				t.Errorf("NextNumber(%q) = %q, want %q", tt.last, got, tt.want)
			}
		})
	}
}
