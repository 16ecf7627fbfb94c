// Package config loads analyzer configuration from file, environment, and
// defaults via Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete analyzer configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Paths   PathsConfig   `mapstructure:"paths"`
	Audit   AuditConfig   `mapstructure:"audit"`
	Report  ReportConfig  `mapstructure:"report"`
}

// LoggingConfig controls log verbosity and format.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// PathsConfig holds filesystem locations used by a run.
type PathsConfig struct {
	DumpDir   string `mapstructure:"dump_dir"`
	OutputDir string `mapstructure:"output_dir"`
	OverlayDB string `mapstructure:"overlay_db"`
}

// AuditConfig controls the run audit trail.
type AuditConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DBPath  string `mapstructure:"db_path"`
}

// ReportConfig controls report generation.
type ReportConfig struct {
	IncludeContributions bool `mapstructure:"include_contributions"`
}

// Load reads configuration from config.yaml (working directory or ./config),
// GA-prefixed environment variables, and defaults, in that precedence order.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("GA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; defaults and environment variables apply.
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("paths.dump_dir", "crash_dumps")
	v.SetDefault("paths.output_dir", "results")
	v.SetDefault("paths.overlay_db", "")

	v.SetDefault("audit.enabled", true)
	v.SetDefault("audit.db_path", "results/audit.db")

	v.SetDefault("report.include_contributions", true)
}
