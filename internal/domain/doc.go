// Package domain models public animal-movement tracking data.
//
// # Data Source
//
// Records come from the Movebank public JSON service
// (https://www.movebank.org/movebank/service/public/json). A study holds
// metadata (name, principal investigator, quota/test flags); an event
// holds one observed position (location_lat, location_long, timestamp,
// individual_local_identifier). Field types are loose: coordinates and
// timestamps may arrive as JSON numbers or strings depending on the study.
//
// # Taxon Classification
//
// Movebank has no taxon field, so each study is classified by substring
// keyword matching against its name and investigator. Precedence:
//
//	bird > mammal > marine+reptile (reptile) > marine (fish) > reptile > unknown
//
// "turtle" appears in both the marine and reptile sets, which is why the
// marine branch re-checks reptile keywords: "Sea Turtle Project" is a
// reptile, "Bluefin Tuna Study" is a fish. The precedence order is part
// of the observable behavior; reordering the checks changes outcomes.
// This is a known heuristic limitation, not a defect.
//
// # Recency Scoring
//
// Each record's timestamp maps to an intensity in [0.3, 1.0]:
//
//	intensity = clamp(1 - ageDays/180, 0.3, 1.0)
//
// where age is measured against a configured reference instant, not the
// wall clock, so reports are reproducible. Missing or unparsable
// timestamps get a fixed 0.5, deliberately outside the clamp logic.
//
// Intensity drives both marker size and color: the base taxon color is
// blended toward white by (1 - intensity), so recent points stay
// saturated and old points fade.
//
// # Timestamp Formats
//
//	ISO-8601 string:    "2024-01-15T10:00:00Z" (offset optional)
//	Epoch milliseconds: 1705312800000, as a number or numeric string
//
// A string without a 'T' is treated as epoch milliseconds.
package domain
