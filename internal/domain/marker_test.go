package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMarkers(t *testing.T) {
	t.Run("projects a classified record", func(t *testing.T) {
		records := []EventRecord{{
			Lat:          55.0,
			Lon:          -25.0,
			Timestamp:    "2024-07-31T00:00:00Z",
			IndividualID: "tern_001",
			Taxon:        TaxonBird,
			Species:      "Arctic Tern",
		}}

		markers := BuildMarkers(records, testReference)
		require.Len(t, markers, 1)

		m := markers[0]
		assert.Equal(t, 55.0, m.Lat)
		assert.Equal(t, -25.0, m.Lng)
		assert.Equal(t, TaxonBird, m.Taxon)
		assert.Equal(t, "Arctic Tern", m.Species)
		assert.Equal(t, "tern_001", m.IndividualID)
		assert.Equal(t, 1.0, m.Intensity)
		assert.Equal(t, "#FF6B6B", m.BaseColor)
		// Full intensity: the marker color equals the base color.
		assert.Equal(t, "#ff6b6b", m.Color)
		assert.Equal(t, "2024-07-31T00:00:00", m.Timestamp)
	})

	t.Run("synthetic per-position identifiers never collide", func(t *testing.T) {
		records := []EventRecord{
			{Lat: 1, Lon: 1, Taxon: TaxonBird},
			{Lat: 2, Lon: 2, Taxon: TaxonBird},
			{Lat: 3, Lon: 3, Taxon: TaxonMammal, IndividualID: "whale_001"},
			{Lat: 4, Lon: 4, Taxon: TaxonBird},
		}

		markers := BuildMarkers(records, testReference)
		require.Len(t, markers, 4)
		assert.Equal(t, "animal_0", markers[0].IndividualID)
		assert.Equal(t, "animal_1", markers[1].IndividualID)
		assert.Equal(t, "whale_001", markers[2].IndividualID)
		assert.Equal(t, "animal_3", markers[3].IndividualID)
	})

	t.Run("missing timestamp renders Unknown at neutral intensity", func(t *testing.T) {
		markers := BuildMarkers([]EventRecord{{Lat: 1, Lon: 1, Taxon: TaxonFish}}, testReference)
		require.Len(t, markers, 1)
		assert.Equal(t, "Unknown", markers[0].Timestamp)
		assert.Equal(t, 0.5, markers[0].Intensity)
	})

	t.Run("unrecognized taxon falls back to the unknown color", func(t *testing.T) {
		markers := BuildMarkers([]EventRecord{{Lat: 1, Lon: 1, Taxon: "cryptid"}}, testReference)
		require.Len(t, markers, 1)
		assert.Equal(t, TaxonColors[TaxonUnknown], markers[0].BaseColor)
	})

	t.Run("long timestamps are truncated to second precision", func(t *testing.T) {
		markers := BuildMarkers([]EventRecord{{
			Lat: 1, Lon: 1, Taxon: TaxonBird, Timestamp: "2024-01-15T10:00:00.000+00:00",
		}}, testReference)
		assert.Equal(t, "2024-01-15T10:00:00", markers[0].Timestamp)
	})
}

func TestCountIndividuals(t *testing.T) {
	markers := []Marker{
		{IndividualID: "tern_001", Taxon: TaxonBird},
		{IndividualID: "tern_001", Taxon: TaxonBird},
		{IndividualID: "tern_002", Taxon: TaxonBird},
		{IndividualID: "whale_001", Taxon: TaxonMammal},
		{IndividualID: "whale_001", Taxon: TaxonMammal},
	}

	counts := CountIndividuals(markers)

	// Individuals, not point records.
	assert.Equal(t, 2, counts[TaxonBird])
	assert.Equal(t, 1, counts[TaxonMammal])
	assert.Zero(t, counts[TaxonReptile])
}
