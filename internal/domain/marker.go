package domain

import (
	"fmt"
	"strconv"
	"time"
)

// BuildMarkers projects classified records into rendering-ready markers,
// computing recency intensity and the whitened marker color against the
// given reference instant. Records without an individual identifier get
// a synthetic per-position one so they never group with each other.
func BuildMarkers(records []EventRecord, reference time.Time) []Marker {
	markers := make([]Marker, 0, len(records))
	for _, rec := range records {
		intensity := Intensity(rec.Timestamp, reference)
		baseColor := BaseColor(rec.Taxon)

		individualID := rec.IndividualID
		if individualID == "" {
			individualID = fmt.Sprintf("animal_%d", len(markers))
		}

		markers = append(markers, Marker{
			Lat:          rec.Lat,
			Lng:          rec.Lon,
			Color:        MixColor(baseColor, intensity),
			BaseColor:    baseColor,
			Intensity:    intensity,
			Taxon:        rec.Taxon,
			Species:      rec.Species,
			Timestamp:    displayTimestamp(rec.Timestamp),
			IndividualID: individualID,
		})
	}
	return markers
}

// displayTimestamp renders the raw timestamp for popups, truncated to
// second precision ("2024-01-15T10:00:00").
func displayTimestamp(timestamp any) string {
	var s string
	switch v := timestamp.(type) {
	case nil:
		return "Unknown"
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		s = fmt.Sprint(v)
	}
	if s == "" {
		return "Unknown"
	}
	if len(s) > 19 {
		s = s[:19]
	}
	return s
}

// CountIndividuals counts distinct individual identifiers per taxon.
// The legend shows animals, not point records, so each individual is
// counted once no matter how many markers it contributed.
func CountIndividuals(markers []Marker) map[string]int {
	counts := make(map[string]int)
	seen := make(map[string]struct{})
	for _, m := range markers {
		if _, ok := seen[m.IndividualID]; ok {
			continue
		}
		seen[m.IndividualID] = struct{}{}
		counts[m.Taxon]++
	}
	return counts
}
