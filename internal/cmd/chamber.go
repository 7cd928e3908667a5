package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/Iron-Ham/parliament/internal/config"
	"github.com/Iron-Ham/parliament/internal/debate"
	"github.com/Iron-Ham/parliament/internal/logging"
	"github.com/Iron-Ham/parliament/internal/parliament"
	"github.com/Iron-Ham/parliament/internal/seed"
)

// appFs is the filesystem seed files are read from. Tests replace it.
var appFs = afero.NewOsFs()

// loadConfig reads and validates the active configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger returns the file logger configured for cfg, or a discarding
// logger when logging is disabled.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(cfg.LogDir(), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	return logger, nil
}

// openChamber seeds a chamber from the configured seed path.
func openChamber(cfg *config.Config, rng debate.Rand, logger *logging.Logger) (*parliament.Parliament, error) {
	data, err := seed.LoadPath(appFs, cfg.Seed.Path, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}

	chamber, err := parliament.New(data, parliament.Options{
		VoteThreshold:       cfg.Chamber.VoteThreshold,
		RecentSpeakerWindow: cfg.Debate.RecentSpeakerWindow,
		Rand:                rng,
		Logger:              logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open chamber: %w", err)
	}
	return chamber, nil
}

// openReadOnly opens a chamber for the listing commands, which never log.
func openReadOnly() (*parliament.Parliament, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return openChamber(cfg, parliament.NewRand(cfg.Random.Seed), logging.NopLogger())
}
