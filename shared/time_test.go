package shared

import (
	"testing"
	"time"
)

func TestTimestampToISOString(t *testing.T) {
	tests := []struct {
		name      string
		timestamp int64
		want      string
	}{
		{
			name:      "seconds scale",
			timestamp: 1700000000,
			want:      "2023-11-14T22:13:20.000Z",
		},
		{
			name:      "milliseconds scale",
			timestamp: 1700000000000,
			want:      "2023-11-14T22:13:20.000Z",
		},
		{
			name:      "zero",
			timestamp: 0,
			want:      "",
		},
		{
			name: "just above the scale cutoff is already milliseconds",
			// 1e10 + 1 ms is shortly after the epoch in 1970, not year 2286.
			timestamp: 10000000001,
			want:      "1970-04-26T17:46:40.001Z",
		},
		{
			name:      "beyond the representable range",
			timestamp: 9_000_000_000_000_000,
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimestampToISOString(tt.timestamp); got != tt.want {
				t.Errorf("TimestampToISOString(%d) = %q, want %q", tt.timestamp, got, tt.want)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name       string
		timestamp  int64
		defaultVal string
		want       string
	}{
		{"valid timestamp", 1700000000, "fallback", "2023-11-14T22:13:20.000Z"},
		{"zero uses default", 0, "fallback", "fallback"},
		{"out of range uses default", 9_000_000_000_000_000, "n/a", "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.timestamp, tt.defaultVal); got != tt.want {
				t.Errorf("FormatTimestamp(%d, %q) = %q, want %q", tt.timestamp, tt.defaultVal, got, tt.want)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	local := time.Date(2024, 1, 15, 17, 30, 0, 0, loc)

	if got := FormatTime(local); got != "2024-01-15T10:30:00.000Z" {
		t.Errorf("FormatTime() = %q, want normalized UTC", got)
	}

	if got := FormatTime(time.Time{}); got != "" {
		t.Errorf("FormatTime(zero) = %q, want empty", got)
	}
}

func TestFormatTimeMatchesTimestampPath(t *testing.T) {
	// Both serialization paths must render identically for the same instant.
	instant := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	fromTime := FormatTime(instant)
	fromTimestamp := TimestampToISOString(instant.Unix())

	if fromTime != fromTimestamp {
		t.Errorf("FormatTime = %q, TimestampToISOString = %q", fromTime, fromTimestamp)
	}
}
