package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testReference = time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)

func TestIntensity(t *testing.T) {
	t.Run("fresh record scores full intensity", func(t *testing.T) {
		assert.Equal(t, 1.0, Intensity("2024-07-31T00:00:00Z", testReference))
	})

	t.Run("one day old", func(t *testing.T) {
		got := Intensity("2024-07-30T00:00:00Z", testReference)
		assert.InDelta(t, 1-1.0/180, got, 1e-9)
	})

	t.Run("ninety days old", func(t *testing.T) {
		got := Intensity("2024-05-02T00:00:00Z", testReference)
		assert.InDelta(t, 0.5, got, 1e-9)
	})

	t.Run("older than the window floors at 0.3", func(t *testing.T) {
		assert.Equal(t, 0.3, Intensity("2023-01-01T00:00:00Z", testReference))
	})

	t.Run("future timestamp clamps at 1.0", func(t *testing.T) {
		assert.Equal(t, 1.0, Intensity("2024-09-15T00:00:00Z", testReference))
	})

	t.Run("epoch milliseconds", func(t *testing.T) {
		// 2024-07-30T00:00:00Z
		ms := float64(time.Date(2024, 7, 30, 0, 0, 0, 0, time.UTC).UnixMilli())
		assert.InDelta(t, 1-1.0/180, Intensity(ms, testReference), 1e-9)
	})

	t.Run("epoch milliseconds as string", func(t *testing.T) {
		got := Intensity("1722297600000", testReference) // 2024-07-30T00:00:00Z
		assert.InDelta(t, 1-1.0/180, got, 1e-9)
	})

	t.Run("missing timestamp defaults to 0.5", func(t *testing.T) {
		assert.Equal(t, 0.5, Intensity(nil, testReference))
		assert.Equal(t, 0.5, Intensity("", testReference))
	})

	t.Run("unparsable timestamp defaults to 0.5", func(t *testing.T) {
		assert.Equal(t, 0.5, Intensity("yesterday-ish", testReference))
		assert.Equal(t, 0.5, Intensity("2024-13-99Tnot-a-time", testReference))
		assert.Equal(t, 0.5, Intensity(map[string]any{}, testReference))
	})

	t.Run("monotonically non-increasing in age", func(t *testing.T) {
		prev := 2.0
		for days := 0; days <= 365; days += 5 {
			ts := testReference.AddDate(0, 0, -days).Format(time.RFC3339)
			got := Intensity(ts, testReference)
			assert.LessOrEqual(t, got, prev, "age %d days", days)
			assert.GreaterOrEqual(t, got, 0.3)
			assert.LessOrEqual(t, got, 1.0)
			prev = got
		}
	})
}

func TestParseTimestamp(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		got, ok := ParseTimestamp("2024-01-15T10:00:00Z")
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), got)
	})

	t.Run("ISO without zone is taken as UTC", func(t *testing.T) {
		got, ok := ParseTimestamp("2024-01-15T10:00:00")
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), got)
	})

	t.Run("string without T is epoch millis", func(t *testing.T) {
		got, ok := ParseTimestamp("1705312800000")
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), got)
	})

	t.Run("rejects non-numeric string without T", func(t *testing.T) {
		_, ok := ParseTimestamp("2024-01-15 10:00:00")
		assert.False(t, ok)
	})

	t.Run("rejects nil", func(t *testing.T) {
		_, ok := ParseTimestamp(nil)
		assert.False(t, ok)
	})
}
