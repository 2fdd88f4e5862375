package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"zappem.net/pub/math/symint/internal/log"
	"zappem.net/pub/math/symint/parse"
)

// Config is read from the file named by --config or $SYMINT_CONFIG.
type Config struct {
	LogLevel string `yaml:"log_level,omitempty"`
	// Values are identifier assignments used by eval and repl.
	Values map[string]int64 `yaml:"values,omitempty"`
}

// loadConfig reads a config file. An empty path gives the zero
// config.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	for name := range cfg.Values {
		if !parse.ValidSymbol(name) {
			return nil, errors.Errorf("config %s: invalid identifier %q", path, name)
		}
	}
	return cfg, nil
}

func (o *options) load() error {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	level := o.logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if level != "" {
		if err := log.SetLevel(level); err != nil {
			return errors.Wrapf(err, "invalid log level %q", level)
		}
	}
	o.cfg = cfg
	log.Section("cli").Debug("config", "path", o.configPath, "values", len(cfg.Values))
	return nil
}
