package cmd

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/people-moves/internal/aggregator"
	"github.com/jonesrussell/people-moves/internal/config"
	"github.com/jonesrussell/people-moves/internal/feeds"
	"github.com/jonesrussell/people-moves/internal/logger"
	"github.com/jonesrussell/people-moves/internal/parser"
	"github.com/jonesrussell/people-moves/internal/processor"
	"github.com/jonesrussell/people-moves/internal/store"
	"github.com/jonesrussell/people-moves/internal/vocab"
)

// version is stamped by the build.
var version = "1.0.0"

// loadConfig reads configuration and builds the logger. The --debug flag
// overrides the configured log level.
func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logCfg := logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	}
	if debug {
		logCfg.Level = "debug"
		logCfg.Development = true
	}

	log, err := logger.New(logCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return cfg, log, nil
}

// openStore connects to the database and ensures the schema exists.
func openStore(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := store.Open(cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// loadVocabulary returns the built-in tables, overlaid from the configured
// YAML file when one is set.
func loadVocabulary(cfg *config.Config) (*vocab.Vocabulary, error) {
	if cfg.Service.VocabPath == "" {
		return vocab.Default(), nil
	}
	v, err := vocab.Load(cfg.Service.VocabPath)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	return v, nil
}

// buildScanner assembles the full aggregation pipeline.
func buildScanner(cfg *config.Config, db *sqlx.DB, log logger.Logger) (*processor.Scanner, error) {
	v, err := loadVocabulary(cfg)
	if err != nil {
		return nil, err
	}

	announcements := store.NewAnnouncementRepository(db)

	p := parser.New(v, parser.Config{MaxAgeDays: cfg.Fetch.MaxAgeDays}, log)
	fetcher := feeds.New(feeds.Config{
		RequestTimeout: cfg.Fetch.RequestTimeout,
		MaxPerSource:   cfg.Fetch.MaxPerSource,
		HostRatePerSec: cfg.Fetch.HostRatePerSec,
		HostRateBurst:  cfg.Fetch.HostRateBurst,
		NewsAPIKey:     cfg.Fetch.NewsAPIKey,
		SearchDays:     cfg.Fetch.Days,
	}, log)
	agg := aggregator.New(fetcher, p, announcements, cfg.Fetch, log)

	return processor.NewScanner(agg, store.NewCompanyRepository(db), announcements, log), nil
}
