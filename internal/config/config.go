package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "NOTEGEST"

const (
	defaultMaxInputBytes    = 5 << 20
	defaultMaxUploadBytes   = 50 << 20
	defaultSummaryLength    = 300
	defaultBatchConcurrency = 8
	defaultStatsWindow      = time.Hour
)

type Config struct {
	Port string `envconfig:"PORT" default:"8090"`

	// Auth
	APIKey string `envconfig:"API_KEY"`

	// Request limits
	MaxInputBytes  int64 `envconfig:"MAX_INPUT_BYTES" default:"5242880"`
	MaxUploadBytes int64 `envconfig:"MAX_UPLOAD_BYTES" default:"52428800"`

	// Conversion defaults
	SummaryLength int    `envconfig:"SUMMARY_LENGTH" default:"300"`
	OrderedLists  bool   `envconfig:"ORDERED_LISTS" default:"false"`
	SanitizeLinks bool   `envconfig:"SANITIZE_LINKS" default:"false"`
	FooterLabel   string `envconfig:"FOOTER_LABEL" default:"notegest"`

	// Batch conversion
	BatchConcurrency int `envconfig:"BATCH_CONCURRENCY" default:"8"`

	// Stats
	StatsWindow time.Duration `envconfig:"STATS_WINDOW" default:"1h"`

	// PDF
	PDFFallbackPdftotext bool `envconfig:"PDF_FALLBACK_PDFTOTEXT" default:"true"`
}

// Load reads NOTEGEST_* variables and resets non-positive limits to their
// defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if cfg.MaxInputBytes <= 0 {
		cfg.MaxInputBytes = defaultMaxInputBytes
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}
	if cfg.SummaryLength <= 0 {
		cfg.SummaryLength = defaultSummaryLength
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = defaultBatchConcurrency
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = defaultStatsWindow
	}

	return cfg, nil
}

// Validate checks the settings the HTTP server cannot run without.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%s_API_KEY is required", Prefix)
	}
	if c.Port == "" {
		return fmt.Errorf("%s_PORT is required", Prefix)
	}
	return nil
}
