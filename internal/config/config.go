package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultReferenceTime anchors recency scoring when REFERENCE_TIME is
// unset. A fixed instant keeps report output reproducible across runs.
const DefaultReferenceTime = "2024-07-31T00:00:00Z"

// Config holds all generator settings, populated from environment variables.
type Config struct {
	MovebankBaseURL string
	OutputFile      string
	LogLevel        string
	LogFormat       string

	// ReferenceTime is the instant recency intensity is measured against.
	ReferenceTime time.Time

	// Per-request timeouts against the Movebank service.
	StudyListTimeout   time.Duration
	StudyLookupTimeout time.Duration
	EventFetchTimeout  time.Duration

	// Caps bounding runtime and output size against an uncontrolled
	// external service.
	MaxStudies             int // studies considered from the listing
	MaxStudyAttempts       int // studies actually queried for events
	MaxSuccessfulStudies   int // stop once this many yielded records
	MaxRecords             int // total valid records retained
	MaxEventsPerIndividual int // passed through to the event query
	EventLimit             int // per-study event query limit
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	referenceTime, err := time.Parse(time.RFC3339, envOrDefault("REFERENCE_TIME", DefaultReferenceTime))
	if err != nil {
		return nil, fmt.Errorf("invalid REFERENCE_TIME: %w", err)
	}

	listTimeout, err := parseDurationEnv("STUDY_LIST_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	lookupTimeout, err := parseDurationEnv("STUDY_LOOKUP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	fetchTimeout, err := parseDurationEnv("EVENT_FETCH_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		MovebankBaseURL: envOrDefault("MOVEBANK_BASE_URL", "https://www.movebank.org/movebank/service/public/json"),
		OutputFile:      envOrDefault("OUTPUT_FILE", "animal_map.html"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),

		ReferenceTime: referenceTime.UTC(),

		StudyListTimeout:   listTimeout,
		StudyLookupTimeout: lookupTimeout,
		EventFetchTimeout:  fetchTimeout,

		MaxStudies:             parseIntEnv("MAX_STUDIES", 20),
		MaxStudyAttempts:       parseIntEnv("MAX_STUDY_ATTEMPTS", 10),
		MaxSuccessfulStudies:   parseIntEnv("MAX_SUCCESSFUL_STUDIES", 5),
		MaxRecords:             parseIntEnv("MAX_RECORDS", 300),
		MaxEventsPerIndividual: parseIntEnv("MAX_EVENTS_PER_INDIVIDUAL", 20),
		EventLimit:             parseIntEnv("EVENT_LIMIT", 100),
	}

	if cfg.MovebankBaseURL == "" {
		return nil, fmt.Errorf("MOVEBANK_BASE_URL is required")
	}
	if cfg.OutputFile == "" {
		return nil, fmt.Errorf("OUTPUT_FILE is required")
	}

	return cfg, nil
}

// envOrDefault returns the environment variable value, or def when unset or empty.
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

// parseIntEnv falls back to the default on unset, unparsable, or
// non-positive values; a bad cap should not abort a best-effort run.
func parseIntEnv(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}
