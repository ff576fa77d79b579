package shared

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// maxEpochMillis is the largest magnitude a millisecond timestamp may have
// and still represent a real date (±100,000,000 days around the epoch).
const maxEpochMillis = 8.64e15

// timestampToMilliseconds normalizes an ambiguous numeric timestamp.
// Values greater than 10 billion are already milliseconds; smaller values
// are assumed to be seconds.
func timestampToMilliseconds(timestamp int64) int64 {
	if timestamp > 1e10 {
		return timestamp
	}
	return timestamp * 1000
}

// TimestampToISOString converts a seconds- or milliseconds-scale timestamp
// to an ISO-8601 string in UTC. Returns "" for zero or out-of-range input.
func TimestampToISOString(timestamp int64) string {
	if timestamp == 0 {
		return ""
	}

	ms := timestampToMilliseconds(timestamp)
	if ms > maxEpochMillis || ms < -maxEpochMillis {
		log.WithField("timestamp", timestamp).Error("Invalid timestamp")
		return ""
	}

	return time.UnixMilli(ms).UTC().Format(ISOTimeFormat)
}

// FormatTimestamp is TimestampToISOString with a caller-supplied fallback
// for zero or unparseable input.
func FormatTimestamp(timestamp int64, defaultValue string) string {
	if iso := TimestampToISOString(timestamp); iso != "" {
		return iso
	}
	return defaultValue
}

// FormatTime renders a time.Time through the same path numeric timestamps
// take, so dashboard rows are uniform regardless of source. The zero time
// renders as "".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return FormatTimestamp(t.UnixMilli(), "")
}

// ISOTimeFormat matches the millisecond-precision ISO-8601 form the
// dashboards display.
const ISOTimeFormat = "2006-01-02T15:04:05.000Z"
