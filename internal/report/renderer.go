package report

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/animal-tracking-map/internal/config"
	"github.com/couchcryptid/animal-tracking-map/internal/domain"
	"github.com/couchcryptid/animal-tracking-map/internal/observability"
)

//go:embed map.html
var mapTemplate string

// LegendEntry is one row of the taxon legend. Count is distinct
// individuals, not point records.
type LegendEntry struct {
	Taxon string
	Label string
	Color string
	Count int
}

// mapData is everything the embedded template consumes. The Markers
// array serialized into the page is the renderer's external contract:
// the client-side script regroups and redraws from exactly this field set.
type mapData struct {
	Markers      template.JS
	TaxonColors  template.JS
	Legend       []LegendEntry
	TotalAnimals int
	TotalPoints  int
	Reference    string
	GeneratedAt  string
}

// Renderer serializes markers into a self-contained interactive map
// document. The only external references in the output are the Leaflet
// assets and the tile server, fetched by the browser at view time.
type Renderer struct {
	outputFile string
	reference  time.Time
	tmpl       *template.Template
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewRenderer parses the embedded template and binds the reference instant.
func NewRenderer(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) (*Renderer, error) {
	tmpl, err := template.New("map.html").Funcs(template.FuncMap{
		"toJSON": toJSON,
	}).Parse(mapTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse map template: %w", err)
	}

	return &Renderer{
		outputFile: cfg.OutputFile,
		reference:  cfg.ReferenceTime,
		tmpl:       tmpl,
		logger:     logger,
		metrics:    metrics,
	}, nil
}

// Write renders the map document for the given markers and writes it to
// the configured output file. Returns the path written. A write failure
// is the one error in this program that is fatal to the run.
func (r *Renderer) Write(markers []domain.Marker) (string, error) {
	data, err := r.buildData(markers)
	if err != nil {
		return "", err
	}

	f, err := os.Create(r.outputFile)
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}

	if err := r.tmpl.Execute(f, data); err != nil {
		f.Close()
		return "", fmt.Errorf("render report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close output file: %w", err)
	}

	r.logger.Info("report written", "path", r.outputFile,
		"markers", len(markers), "animals", data.TotalAnimals)
	return r.outputFile, nil
}

func (r *Renderer) buildData(markers []domain.Marker) (mapData, error) {
	counts := domain.CountIndividuals(markers)

	legend := make([]LegendEntry, 0, len(domain.LegendTaxa))
	for _, taxon := range domain.LegendTaxa {
		legend = append(legend, LegendEntry{
			Taxon: taxon,
			Label: titleCase(taxon),
			Color: domain.TaxonColors[taxon],
			Count: counts[taxon],
		})
	}

	totalAnimals := 0
	for _, n := range counts {
		totalAnimals += n
	}
	for _, m := range markers {
		r.metrics.MarkersBuilt.WithLabelValues(m.Taxon).Inc()
	}

	markersJSON, err := toJSON(markers)
	if err != nil {
		return mapData{}, err
	}
	colorsJSON, err := toJSON(domain.TaxonColors)
	if err != nil {
		return mapData{}, err
	}

	return mapData{
		Markers:      markersJSON,
		TaxonColors:  colorsJSON,
		Legend:       legend,
		TotalAnimals: totalAnimals,
		TotalPoints:  len(markers),
		Reference:    r.reference.UTC().Format(time.RFC3339),
		GeneratedAt:  clock.Now().UTC().Format(time.RFC3339),
	}, nil
}

// toJSON serializes a value for direct embedding in the page's script block.
func toJSON(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("serialize map data: %w", err)
	}
	return template.JS(b), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
