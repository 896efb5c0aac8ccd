package report

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/animal-tracking-map/internal/config"
	"github.com/couchcryptid/animal-tracking-map/internal/domain"
	"github.com/couchcryptid/animal-tracking-map/internal/observability"
)

var testReference = time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)

func testRenderer(t *testing.T, outputFile string) *Renderer {
	t.Helper()
	cfg := &config.Config{
		OutputFile:    outputFile,
		ReferenceTime: testReference,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r, err := NewRenderer(cfg, logger, observability.NewMetricsForTesting())
	require.NoError(t, err)
	return r
}

func TestRenderer_Write(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2024, 8, 1, 9, 30, 0, 0, time.UTC)))
	defer SetClock(nil)

	out := filepath.Join(t.TempDir(), "map.html")
	r := testRenderer(t, out)

	markers := domain.BuildMarkers(domain.DemoRecords(), testReference)

	path, err := r.Write(markers)
	require.NoError(t, err)
	assert.Equal(t, out, path)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(content)

	// Self-contained document with the external map assets referenced.
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "unpkg.com/leaflet@1.7.1")
	assert.Contains(t, html, "tile.openstreetmap.org")

	// The serialized marker contract.
	assert.Contains(t, html, `"lat":71`)
	assert.Contains(t, html, `"individual_id":"tern_001"`)
	assert.Contains(t, html, `"baseColor":"#FF6B6B"`)
	assert.Contains(t, html, `"animal":"bird"`)
	assert.Contains(t, html, `"species":"Monarch Butterfly"`)

	// Legend rows for all six taxa, each with one demo individual.
	for _, taxon := range domain.LegendTaxa {
		assert.Contains(t, html, `id="`+taxon+`Count">1<`)
	}
	assert.Contains(t, html, "<strong>Total Animals:</strong> 6")
	assert.Contains(t, html, "<strong>Total Points:</strong> 30")

	// Reference instant and frozen generated-at stamp.
	assert.Contains(t, html, "2024-07-31T00:00:00Z")
	assert.Contains(t, html, "Generated 2024-08-01T09:30:00Z")
}

func TestRenderer_LegendCountsIndividualsNotPoints(t *testing.T) {
	out := filepath.Join(t.TempDir(), "map.html")
	r := testRenderer(t, out)

	// Two birds with several points each, one mammal.
	records := []domain.EventRecord{
		{Lat: 1, Lon: 1, Taxon: domain.TaxonBird, IndividualID: "tern_001", Timestamp: "2024-07-01T00:00:00Z"},
		{Lat: 2, Lon: 2, Taxon: domain.TaxonBird, IndividualID: "tern_001", Timestamp: "2024-07-02T00:00:00Z"},
		{Lat: 3, Lon: 3, Taxon: domain.TaxonBird, IndividualID: "tern_002", Timestamp: "2024-07-03T00:00:00Z"},
		{Lat: 4, Lon: 4, Taxon: domain.TaxonMammal, IndividualID: "whale_001", Timestamp: "2024-07-04T00:00:00Z"},
	}

	_, err := r.Write(domain.BuildMarkers(records, testReference))
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, `id="birdCount">2<`)
	assert.Contains(t, html, `id="mammalCount">1<`)
	assert.Contains(t, html, `id="reptileCount">0<`)
	assert.Contains(t, html, "<strong>Total Animals:</strong> 3")
	assert.Contains(t, html, "<strong>Total Points:</strong> 4")
}

func TestRenderer_WriteFailureIsFatal(t *testing.T) {
	r := testRenderer(t, filepath.Join(t.TempDir(), "no", "such", "dir", "map.html"))

	_, err := r.Write(domain.BuildMarkers(domain.DemoRecords(), testReference))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output file")
}

func TestRenderer_EmptyMarkers(t *testing.T) {
	// The pipeline guarantees non-empty input, but the renderer should
	// still produce a valid document if handed nothing.
	out := filepath.Join(t.TempDir(), "map.html")
	r := testRenderer(t, out)

	_, err := r.Write(nil)
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<strong>Total Points:</strong> 0")
}
