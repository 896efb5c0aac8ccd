package movebank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/animal-tracking-map/internal/config"
	"github.com/couchcryptid/animal-tracking-map/internal/domain"
	"github.com/couchcryptid/animal-tracking-map/internal/observability"
)

// Client fetches study metadata and event records from the Movebank
// public JSON service. Every method returns an error value; the pipeline
// decides whether a failure is worth more than a log line.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics

	listTimeout   time.Duration
	lookupTimeout time.Duration
	fetchTimeout  time.Duration

	maxStudies             int
	maxEventsPerIndividual int
	eventLimit             int
}

// NewClient creates a Movebank client from config.
func NewClient(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:    cfg.MovebankBaseURL,
		httpClient: &http.Client{},
		logger:     logger,
		metrics:    metrics,

		listTimeout:   cfg.StudyListTimeout,
		lookupTimeout: cfg.StudyLookupTimeout,
		fetchTimeout:  cfg.EventFetchTimeout,

		maxStudies:             cfg.MaxStudies,
		maxEventsPerIndividual: cfg.MaxEventsPerIndividual,
		eventLimit:             cfg.EventLimit,
	}
}

// ListStudies returns public studies, filtering out test studies and
// studies behind a download quota, capped at the configured maximum.
func (c *Client) ListStudies(ctx context.Context) ([]domain.Study, error) {
	params := url.Values{"entity_type": {"study"}}

	body, err := c.get(ctx, params, c.listTimeout)
	if err != nil {
		return nil, err
	}

	var all []domain.Study
	if err := json.Unmarshal(body, &all); err != nil {
		return nil, fmt.Errorf("decode study list: %w", err)
	}

	studies := make([]domain.Study, 0, len(all))
	for _, s := range all {
		if s.IsTest || s.HasQuota {
			continue
		}
		studies = append(studies, s)
		if len(studies) >= c.maxStudies {
			break
		}
	}
	return studies, nil
}

// LookupStudy fetches metadata for a single study. The service answers
// with either a one-element array or a bare object depending on the
// study, so both shapes are accepted.
func (c *Client) LookupStudy(ctx context.Context, studyID int64) (domain.Study, error) {
	params := url.Values{
		"entity_type": {"study"},
		"study_id":    {strconv.FormatInt(studyID, 10)},
	}

	body, err := c.get(ctx, params, c.lookupTimeout)
	if err != nil {
		return domain.Study{}, err
	}

	var list []domain.Study
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) == 0 {
			return domain.Study{}, fmt.Errorf("study %d not found", studyID)
		}
		return list[0], nil
	}

	var single domain.Study
	if err := json.Unmarshal(body, &single); err != nil {
		return domain.Study{}, fmt.Errorf("decode study %d: %w", studyID, err)
	}
	return single, nil
}

// FetchEvents returns raw event records for a study, bounded by the
// configured per-individual and total limits.
func (c *Client) FetchEvents(ctx context.Context, studyID int64) ([]domain.RawEvent, error) {
	params := url.Values{
		"entity_type":               {"event"},
		"study_id":                  {strconv.FormatInt(studyID, 10)},
		"max_events_per_individual": {strconv.Itoa(c.maxEventsPerIndividual)},
		"limit":                     {strconv.Itoa(c.eventLimit)},
	}

	body, err := c.get(ctx, params, c.fetchTimeout)
	if err != nil {
		return nil, err
	}

	var events []domain.RawEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("decode events for study %d: %w", studyID, err)
	}
	return events, nil
}

func (c *Client) get(ctx context.Context, params url.Values, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.SourceErrors.Inc()
		return nil, fmt.Errorf("movebank request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.SourceErrors.Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("movebank API error: status %d: %s", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.SourceErrors.Inc()
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
