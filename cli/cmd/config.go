package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const configFile = ".fragment.yaml"

type Config struct {
	Format string `yaml:"format"`
}

// LoadConfig reads .fragment.yaml from the working directory. A missing
// file is fine; a broken one is logged and ignored so the CLI keeps
// working with defaults.
func LoadConfig() Config {
	var cfg Config
	buf, err := os.ReadFile(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg
	}
	if err != nil {
		logrus.WithError(err).Warnf("could not read %s", configFile)
		return cfg
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		logrus.WithError(err).Warnf("could not parse %s", configFile)
		return Config{}
	}
	return cfg
}

func outputFormat() string {
	if format != "" {
		return format
	}
	if cfg := LoadConfig(); cfg.Format != "" {
		return cfg.Format
	}
	return "text"
}
