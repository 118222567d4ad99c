package cmd

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/careerconnect/internal/analyzer"
	"github.com/spigell/careerconnect/internal/jobs"
	"github.com/spigell/careerconnect/internal/search"
	"github.com/spigell/careerconnect/internal/secrets"
	"github.com/spigell/careerconnect/internal/skills"
)

// newAnalyzer wires the vocabulary and every job provider into an analyzer.
func newAnalyzer(config *Config, logger *zap.Logger) (*analyzer.Analyzer, *search.Aggregator, error) {
	vocabulary, err := newVocabulary(config)
	if err != nil {
		return nil, nil, err
	}

	providers, err := newProviders(config, logger)
	if err != nil {
		return nil, nil, err
	}

	aggregator := search.New(providers,
		search.WithWorkers(config.Workers),
		search.WithLogger(logger),
	)

	return analyzer.New(vocabulary, aggregator, logger), aggregator, nil
}

func newVocabulary(config *Config) (*skills.Vocabulary, error) {
	if len(config.Skills.Vocabulary) == 0 {
		return skills.Default(), nil
	}

	vocabulary, err := skills.NewVocabulary(config.Skills.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("skills.vocabulary: %w", err)
	}
	return vocabulary, nil
}

// newProviders builds Adzuna, Remotive and Jooble in that order. Providers
// without credentials stay in the list and report no jobs.
func newProviders(config *Config, logger *zap.Logger) ([]jobs.Provider, error) {
	client := jobs.NewClient(logger, config.Timeout)
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	adzuna, err := newAdzuna(client, config.Providers.Adzuna)
	if err != nil {
		return nil, err
	}

	remotive := jobs.NewRemotive(client)
	if url := strings.TrimSpace(config.Providers.Remotive.URL); url != "" {
		remotive.APIURL = url
	}

	jooble, err := newJooble(client, config.Providers.Jooble)
	if err != nil {
		return nil, err
	}

	if adzuna.AppID == "" || adzuna.AppKey == "" {
		logger.Warn("provider credentials are not configured",
			zap.String("provider", jobs.AdzunaName),
			zap.String("hint", "set ADZUNA_APP_ID and ADZUNA_APP_KEY or providers.adzuna in the config file"),
		)
	}
	if jooble.APIKey == "" {
		logger.Warn("provider credentials are not configured",
			zap.String("provider", jobs.JoobleName),
			zap.String("hint", "set JOOBLE_API_KEY or providers.jooble.api-key in the config file"),
		)
	}

	return []jobs.Provider{adzuna, remotive, jooble}, nil
}

func newAdzuna(client *jobs.Client, cfg *AdzunaConfig) (*jobs.Adzuna, error) {
	appID, err := secrets.LoadOptional(secrets.Source{Name: "adzuna app id", Value: cfg.AppID, File: cfg.AppIDFile})
	if err != nil {
		return nil, err
	}

	appKey, err := secrets.LoadOptional(secrets.Source{Name: "adzuna app key", Value: cfg.AppKey, File: cfg.AppKeyFile})
	if err != nil {
		return nil, err
	}

	adzuna := jobs.NewAdzuna(client, appID, appKey)
	if cfg.Country != "" {
		adzuna.Country = cfg.Country
	}
	if cfg.ResultsPerPage > 0 {
		adzuna.ResultsPerPage = cfg.ResultsPerPage
	}
	if cfg.URL != "" {
		adzuna.APIURL = cfg.URL
	}

	return adzuna, nil
}

func newJooble(client *jobs.Client, cfg *JoobleConfig) (*jobs.Jooble, error) {
	apiKey, err := secrets.LoadOptional(secrets.Source{Name: "jooble api key", Value: cfg.APIKey, File: cfg.APIKeyFile})
	if err != nil {
		return nil, err
	}

	jooble := jobs.NewJooble(client, apiKey)
	if cfg.Location != "" {
		jooble.Location = cfg.Location
	}
	if cfg.URL != "" {
		jooble.APIURL = cfg.URL
	}

	return jooble, nil
}

var errNoResume = errors.New("resume file is required (use --resume)")
