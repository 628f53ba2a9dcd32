package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"CommodityPulse/internal/model"
)

// RangePresets are the date windows the dashboard can cycle through.
var RangePresets = []string{"1y", "5y", "10y", "max"}

// Config holds all application configuration.
type Config struct {
	Source struct {
		File           string `yaml:"file"`
		URL            string `yaml:"url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"source"`
	Dashboard struct {
		Range  string   `yaml:"range"`
		Series []string `yaml:"series"`
		Watch  bool     `yaml:"watch"`
	} `yaml:"dashboard"`
	Monitor struct {
		Cron string `yaml:"cron"`
	} `yaml:"monitor"`
	Log struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults
// apply. A .env file, if present, is folded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PULSE_DATA_FILE"); v != "" {
		cfg.Source.File = v
	}
	if v := os.Getenv("PULSE_DATA_URL"); v != "" {
		cfg.Source.URL = v
	}
	if v := os.Getenv("PULSE_PROXY"); v != "" {
		cfg.Proxy = v
	} else if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("PULSE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("PULSE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PULSE_MONITOR_CRON"); v != "" {
		cfg.Monitor.Cron = v
	}
	if v := os.Getenv("PULSE_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Source.TimeoutSeconds = n
		}
	}

	// Defaults
	if cfg.Source.File == "" {
		cfg.Source.File = "data/bcpi_weekly.json"
	}
	if cfg.Source.TimeoutSeconds == 0 {
		cfg.Source.TimeoutSeconds = 30
	}
	if cfg.Dashboard.Range == "" {
		cfg.Dashboard.Range = "max"
	}
	if cfg.Monitor.Cron == "" {
		// Weekly sources publish on Tuesdays.
		cfg.Monitor.Cron = "0 0 8 * * 2"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Source.File == "" && c.Source.URL == "" {
		return fmt.Errorf("source.file or source.url is required")
	}
	if c.Source.TimeoutSeconds <= 0 {
		return fmt.Errorf("source.timeout_seconds must be positive")
	}
	if !validPreset(c.Dashboard.Range) {
		return fmt.Errorf("dashboard.range must be one of %v", RangePresets)
	}
	for _, code := range c.Dashboard.Series {
		if _, ok := model.SeriesByCode(code); !ok {
			return fmt.Errorf("dashboard.series: unknown series code %q", code)
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	if c.Monitor.Cron == "" {
		return fmt.Errorf("monitor.cron is required")
	}
	return nil
}

// VisibleSeries resolves the configured series codes, all series when
// none are configured. Call after Validate.
func (c *Config) VisibleSeries() []model.Series {
	if len(c.Dashboard.Series) == 0 {
		return model.AllSeries()
	}
	visible := make([]model.Series, 0, len(c.Dashboard.Series))
	for _, code := range c.Dashboard.Series {
		if s, ok := model.SeriesByCode(code); ok {
			visible = append(visible, s)
		}
	}
	return visible
}

func validPreset(p string) bool {
	for _, preset := range RangePresets {
		if p == preset {
			return true
		}
	}
	return false
}
