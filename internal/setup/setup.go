// Package setup processes the environment and optional TOML config file
// into a run environment. Precedence: struct defaults, then environment
// variables, then the config file; command line flags override all of these
// because config values are used as flag defaults.
package setup

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"sift/internal/geom"
	"sift/internal/logging"
	"sift/internal/predict"
	"sift/internal/runenv"
	"sift/internal/search"
)

type ConfigFileProvider interface {
	ConfigFilePath() string
}

type PredictConfigProvider interface {
	PredictConfig() *predict.Config
}

type SearchConfigProvider interface {
	SearchConfig() *search.Config
}

func Setup(ctx context.Context, config interface{}) (*runenv.Env, error) {
	logger := logging.FromContext(ctx)

	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	if provider, ok := config.(ConfigFileProvider); ok {
		if path := provider.ConfigFilePath(); path != "" {
			logger.Debugw("loading config file", "path", path)
			if _, err := toml.DecodeFile(path, config); err != nil {
				return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
			}
		}
	}

	// configured algorithm names are validated eagerly so a bad
	// environment fails before any data is read
	if provider, ok := config.(PredictConfigProvider); ok {
		if _, err := DistanceFor(provider.PredictConfig().Algo); err != nil {
			return nil, fmt.Errorf("predict config: %w", err)
		}
	}
	if provider, ok := config.(SearchConfigProvider); ok {
		if _, err := DistanceFor(provider.SearchConfig().Algo); err != nil {
			return nil, fmt.Errorf("search config: %w", err)
		}
	}

	return runenv.New(
		runenv.WithDistance(DistanceFor),
		runenv.WithSearchEngine(ProvideSearchEngine),
	), nil
}

// DistanceFor maps a command line algorithm name to a distance function.
func DistanceFor(algo string) (geom.DistanceFn, error) {
	return geom.DistanceFuncFor(geom.DistanceFuncType(strings.ToUpper(algo)))
}

func ProvideSearchEngine(distFn geom.DistanceFn, opts ...search.Option) (*search.Engine, error) {
	engine, err := search.New(distFn, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create search engine: %w", err)
	}
	return engine, nil
}
