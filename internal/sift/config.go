package sift

import (
	"sift/internal/predict"
	"sift/internal/search"
	"sift/internal/setup"
)

var (
	_ setup.ConfigFileProvider    = (*Config)(nil)
	_ setup.PredictConfigProvider = (*Config)(nil)
	_ setup.SearchConfigProvider  = (*Config)(nil)
)

type Config struct {
	ConfigFile string `envconfig:"SIFT_CONFIG_FILE"`
	Verbose    bool   `envconfig:"SIFT_VERBOSE" toml:"verbose"`

	Predict predict.Config `toml:"predict"`
	Search  search.Config  `toml:"search"`
}

func (c *Config) ConfigFilePath() string {
	return c.ConfigFile
}

func (c *Config) PredictConfig() *predict.Config {
	return &c.Predict
}

func (c *Config) SearchConfig() *search.Config {
	return &c.Search
}
