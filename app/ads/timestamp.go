package ads

import (
	"strconv"
	"strings"
	"time"
)

// msThreshold separates second-epoch from millisecond-epoch inputs: any
// numeric value below it is read as seconds, which covers dates up to
// roughly year 5138.
const msThreshold = int64(100_000_000_000)

// timestampLayouts are tried in order; the first successful parse wins.
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestampMS converts heterogeneous timestamp representations to epoch
// milliseconds. Timestamps without zone information are read as UTC.
// Unparseable input yields nil, never an error.
func ParseTimestampMS(value any) *int64 {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		return msFromNumeric(int64(v))
	case int:
		return msFromNumeric(int64(v))
	case int64:
		return msFromNumeric(v)
	case string:
		return parseTimestampString(v)
	default:
		return nil
	}
}

func parseTimestampString(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if isDigits(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil
		}
		return msFromNumeric(n)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			ms := t.UnixMilli()
			return &ms
		}
	}

	return nil
}

func msFromNumeric(v int64) *int64 {
	if v < msThreshold {
		v *= 1000
	}
	return &v
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
