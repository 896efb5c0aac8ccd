package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/animal-tracking-map/internal/config"
	"github.com/couchcryptid/animal-tracking-map/internal/domain"
	"github.com/couchcryptid/animal-tracking-map/internal/observability"
)

// Source is the slice of the Movebank adapter the collector depends on.
type Source interface {
	ListStudies(ctx context.Context) ([]domain.Study, error)
	LookupStudy(ctx context.Context, studyID int64) (domain.Study, error)
	FetchEvents(ctx context.Context, studyID int64) ([]domain.RawEvent, error)
}

// StudyResult is the outcome of one study attempt. Failures are carried
// as values so the orchestrator can log and skip instead of aborting;
// no source error is ever fatal to the run.
type StudyResult struct {
	StudyID   int64
	StudyName string
	Taxon     string
	Records   int
	Err       error
}

// fallbackStudyIDs are known public studies queried directly when the
// study listing comes back empty or fails.
var fallbackStudyIDs = []int64{2911040, 173641633, 76367850}

// Collector drives the fetch-classify-validate loop against a Source.
type Collector struct {
	source  Source
	logger  *slog.Logger
	metrics *observability.Metrics

	maxAttempts  int
	maxSuccesses int
	maxRecords   int
}

// NewCollector creates a Collector with the caps from config.
func NewCollector(source Source, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Collector {
	return &Collector{
		source:  source,
		logger:  logger,
		metrics: metrics,

		maxAttempts:  cfg.MaxStudyAttempts,
		maxSuccesses: cfg.MaxSuccessfulStudies,
		maxRecords:   cfg.MaxRecords,
	}
}

// Collect fetches and classifies records from up to maxAttempts studies,
// stopping early once maxSuccesses studies have yielded data. When every
// attempt comes back empty the built-in demonstration dataset is
// substituted, so the returned records are never empty.
func (c *Collector) Collect(ctx context.Context) ([]domain.EventRecord, []StudyResult) {
	studies := c.listStudies(ctx)

	var (
		records   []domain.EventRecord
		results   []StudyResult
		successes int
	)

	for i, study := range studies {
		if i >= c.maxAttempts || successes >= c.maxSuccesses {
			break
		}

		c.metrics.StudiesAttempted.Inc()
		result := c.collectStudy(ctx, study, &records)
		results = append(results, result)

		if result.Err != nil {
			c.logger.Warn("study skipped",
				"study_id", result.StudyID, "error", result.Err)
			continue
		}
		if result.Records > 0 {
			successes++
			c.metrics.StudiesSucceeded.Inc()
			c.logger.Info("study processed",
				"study_id", result.StudyID,
				"taxon", result.Taxon,
				"records", result.Records,
			)
		}
	}

	if len(records) > c.maxRecords {
		records = records[:c.maxRecords]
	}

	if len(records) == 0 {
		c.logger.Warn("no records from any study, using demonstration dataset")
		c.metrics.DemoFallback.Set(1)
		records = domain.DemoRecords()
	}

	return records, results
}

// listStudies fetches the study listing, falling back to the known
// study IDs when the listing fails or is empty.
func (c *Collector) listStudies(ctx context.Context) []domain.Study {
	studies, err := c.source.ListStudies(ctx)
	if err != nil {
		c.logger.Warn("study listing failed", "error", err)
	}
	c.metrics.StudiesConsidered.Add(float64(len(studies)))

	if len(studies) == 0 {
		c.logger.Info("study listing empty, trying known study IDs")
		for _, id := range fallbackStudyIDs {
			studies = append(studies, domain.Study{ID: id})
		}
	}
	return studies
}

// collectStudy fetches one study's events, validates coordinates, and
// appends classified records. Records past the total cap are discarded.
func (c *Collector) collectStudy(ctx context.Context, study domain.Study, records *[]domain.EventRecord) StudyResult {
	// The bulk listing omits names for some studies; a per-study lookup
	// recovers the metadata the classifier needs. A failed lookup is not
	// fatal, the study just classifies as unknown.
	if study.Name == "" {
		if full, err := c.source.LookupStudy(ctx, study.ID); err == nil {
			full.ID = study.ID
			study = full
		} else {
			c.logger.Debug("study lookup failed", "study_id", study.ID, "error", err)
		}
	}

	taxon := domain.Classify(study.Name, study.PrincipalInvestigatorName)
	species := domain.ExtractSpecies(study.Name)
	studyName := study.Name
	if studyName == "" {
		studyName = fmt.Sprintf("Study %d", study.ID)
	}

	result := StudyResult{StudyID: study.ID, StudyName: studyName, Taxon: taxon}

	events, err := c.source.FetchEvents(ctx, study.ID)
	if err != nil {
		result.Err = err
		return result
	}

	for _, ev := range events {
		lat, okLat := domain.Coordinate(ev.LocationLat)
		lon, okLon := domain.Coordinate(ev.LocationLong)
		if !okLat || !okLon || !domain.ValidCoordinates(lat, lon) {
			c.metrics.RecordsDropped.Inc()
			continue
		}
		if len(*records) >= c.maxRecords {
			break
		}

		*records = append(*records, domain.EventRecord{
			Lat:          lat,
			Lon:          lon,
			Timestamp:    ev.Timestamp,
			IndividualID: ev.IndividualLocalIdentifier,
			Taxon:        taxon,
			Species:      species,
			StudyName:    studyName,
		})
		c.metrics.RecordsRetained.Inc()
		result.Records++
	}

	return result
}
