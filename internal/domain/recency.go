package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// neutralIntensity is returned for missing or unparsable timestamps.
// It is intentionally not clamped into the [0.3, 1.0] band below: a
// record with no usable time renders at a fixed middle intensity rather
// than being treated as maximally old or new.
const neutralIntensity = 0.5

const (
	minIntensity = 0.3
	maxIntensity = 1.0

	// recencyWindowDays is the age at which intensity bottoms out.
	recencyWindowDays = 180
)

// Intensity converts a record timestamp into a bounded recency score
// relative to the given reference instant. Recent records score near
// 1.0, records older than half a year floor at 0.3. The reference is a
// configured constant, never the wall clock, so output is reproducible.
func Intensity(timestamp any, reference time.Time) float64 {
	t, ok := ParseTimestamp(timestamp)
	if !ok {
		return neutralIntensity
	}

	ageDays := reference.Sub(t).Seconds() / 86400
	intensity := 1 - ageDays/recencyWindowDays
	if intensity < minIntensity {
		return minIntensity
	}
	if intensity > maxIntensity {
		return maxIntensity
	}
	return intensity
}

// ParseTimestamp accepts the timestamp shapes Movebank emits: an
// ISO-8601 string, or epoch milliseconds as a JSON number or numeric
// string. Returns false for anything else.
func ParseTimestamp(timestamp any) (time.Time, bool) {
	switch v := timestamp.(type) {
	case string:
		return parseTimestampString(v)
	case float64:
		return epochMillis(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return epochMillis(f), true
	case int64:
		return epochMillis(float64(v)), true
	default:
		return time.Time{}, false
	}
}

func parseTimestampString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "T") {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
		return time.Time{}, false
	}

	// No 'T' means the value is epoch milliseconds in string form.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, false
	}
	return epochMillis(f), true
}

func epochMillis(ms float64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}
