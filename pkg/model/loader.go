package model

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"

	"github.com/letterdesk/letterdesk/pkg/config"
	"github.com/letterdesk/letterdesk/pkg/registry/csv"
	"github.com/letterdesk/letterdesk/pkg/registry/fs"
)

// NewFromConfigFile assembles the full application model: configuration,
// the registry store with its file watcher, the exporter and the UI models.
// A non-empty dataFile overrides the configured registry snapshot path.
func NewFromConfigFile(path, dataFile string, log zerolog.Logger) (*Model, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	var configuration config.Config
	f, err := os.Open(expandedPath)
	if err != nil && f == nil {
		// if the file is missing, ignore and use the default config
		configuration = config.Default
	} else {
		cfg, err := config.NewFromReader(f)
		if err != nil {
			return nil, fmt.Errorf("unable to load configuration: %w", err)
		}
		configuration = *cfg
	}
	if dataFile != "" {
		configuration.DataFile = dataFile
	}

	store, err := fs.New(configuration.DataFile, log)
	if err != nil {
		return nil, fmt.Errorf("error initializing storage provider: %w", err)
	}
	log.Info().Str("path", store.Path()).Int("letters", store.Count()).Msg("registry loaded")

	common := commonModel{
		cfg:      configuration,
		store:    store,
		exporter: csv.New("", log),
		log:      log,
	}

	m := Model{
		common: &common,
		state:  stateShowBrowse,
		browse: newBrowseModel(&common),
		detail: newDetailModel(&common),
	}

	return &m, nil
}
