package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Study is the Movebank study metadata used to classify its records.
// A study is fetched once per run and discarded after classification.
type Study struct {
	ID                        int64  `json:"id"`
	Name                      string `json:"name"`
	PrincipalInvestigatorName string `json:"principal_investigator_name"`
	IsTest                    bool   `json:"is_test"`
	HasQuota                  bool   `json:"has_quota"`
}

// RawEvent is one unprocessed event row from the Movebank JSON endpoint.
// Coordinates and timestamps arrive as either JSON numbers or strings
// depending on the study, so they are kept loose and coerced later.
type RawEvent struct {
	LocationLat               any    `json:"location_lat"`
	LocationLong              any    `json:"location_long"`
	Timestamp                 any    `json:"timestamp"`
	IndividualLocalIdentifier string `json:"individual_local_identifier"`
}

// EventRecord is a validated, classified tracking record.
type EventRecord struct {
	Lat          float64
	Lon          float64
	Timestamp    any
	IndividualID string
	Taxon        string
	Species      string
	StudyName    string
}

// Marker is the rendering-ready projection of an EventRecord. Its JSON
// field set is the contract the embedded map script consumes; renaming a
// field breaks every generated report.
type Marker struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Color        string  `json:"color"`
	BaseColor    string  `json:"baseColor"`
	Intensity    float64 `json:"intensity"`
	Taxon        string  `json:"animal"`
	Species      string  `json:"species"`
	Timestamp    string  `json:"timestamp"`
	IndividualID string  `json:"individual_id"`
}

// Path is one individual's markers in chronological order. Paths with
// fewer than two markers are drawn as lone points, not lines.
type Path struct {
	IndividualID string
	Taxon        string
	Species      string
	BaseColor    string
	Markers      []Marker
}

// Taxon labels assigned by the classifier.
const (
	TaxonBird      = "bird"
	TaxonMammal    = "mammal"
	TaxonReptile   = "reptile"
	TaxonFish      = "fish"
	TaxonAmphibian = "amphibian"
	TaxonInsect    = "insect"
	TaxonUnknown   = "unknown"
)

// LegendTaxa is the fixed legend order. "unknown" is deliberately absent.
var LegendTaxa = []string{
	TaxonBird, TaxonMammal, TaxonReptile, TaxonFish, TaxonAmphibian, TaxonInsect,
}

// TaxonColors maps each taxon label to its base marker color. Immutable
// for the run.
var TaxonColors = map[string]string{
	TaxonBird:      "#FF6B6B",
	TaxonMammal:    "#4ECDC4",
	TaxonReptile:   "#45B7D1",
	TaxonFish:      "#96CEB4",
	TaxonAmphibian: "#FFEAA7",
	TaxonInsect:    "#DDA0DD",
	TaxonUnknown:   "#74B9FF",
}

// BaseColor returns the base color for a taxon, falling back to the
// unknown color for unrecognized labels.
func BaseColor(taxon string) string {
	if c, ok := TaxonColors[taxon]; ok {
		return c
	}
	return TaxonColors[TaxonUnknown]
}

// ValidCoordinates reports whether a latitude/longitude pair is inside
// the WGS-84 envelope: lat in [-90,90], lon in [-180,180].
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Coordinate coerces a loosely-typed coordinate value to float64.
// Movebank emits coordinates as JSON numbers or strings depending on
// the study; anything else (null, objects, unparsable text) is rejected.
func Coordinate(v any) (float64, bool) {
	switch c := v.(type) {
	case float64:
		return c, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case json.Number:
		f, err := c.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
