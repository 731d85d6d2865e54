// Package config provides configuration structures and loading for pojocheck.
package config

import "github.com/dbsmedya/pojocheck/report"

// Config represents the complete check-run configuration.
type Config struct {
	Checks      ChecksConfig  `yaml:"checks" mapstructure:"checks"`
	Exclude     ExcludeConfig `yaml:"exclude" mapstructure:"exclude"`
	Packages    []string      `yaml:"packages" mapstructure:"packages"`
	Parallelism int           `yaml:"parallelism" mapstructure:"parallelism"`
	Report      ReportConfig  `yaml:"report" mapstructure:"report"`
	Logging     LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// ChecksConfig toggles the individual contract checkers.
type ChecksConfig struct {
	Constructor       bool `yaml:"constructor" mapstructure:"constructor"`
	SetterGetter      bool `yaml:"setter_getter" mapstructure:"setter_getter"`
	EqualsAndHashCode bool `yaml:"equals_and_hashcode" mapstructure:"equals_and_hashcode"`
	ToString          bool `yaml:"to_string" mapstructure:"to_string"`
	Random            bool `yaml:"random" mapstructure:"random"`
}

// ExcludeConfig lists exclusion patterns applied during member discovery.
type ExcludeConfig struct {
	// Methods are literal substrings matched against member signatures.
	Methods []string `yaml:"methods" mapstructure:"methods"`
	// Classes are fully qualified type names skipped entirely.
	Classes []string `yaml:"classes" mapstructure:"classes"`
}

// ReportConfig controls where rendered reports go.
type ReportConfig struct {
	// Output is a file path, or empty for stdout only.
	Output string `yaml:"output" mapstructure:"output"`
	// Format is "text" or "yaml".
	Format string `yaml:"format" mapstructure:"format"`
	// Database, when enabled, persists entries to MySQL.
	Database DatabaseReportConfig `yaml:"database" mapstructure:"database"`
}

// DatabaseReportConfig is the optional MySQL report sink.
type DatabaseReportConfig struct {
	Enabled           bool `yaml:"enabled" mapstructure:"enabled"`
	report.SinkConfig `yaml:",inline" mapstructure:",squash"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values: every check
// enabled, text report to stdout, info-level text logging.
func DefaultConfig() *Config {
	return &Config{
		Checks: ChecksConfig{
			Constructor:       true,
			SetterGetter:      true,
			EqualsAndHashCode: true,
			ToString:          true,
			Random:            true,
		},
		Parallelism: 1,
		Report: ReportConfig{
			Format: "text",
			Database: DatabaseReportConfig{
				SinkConfig: report.SinkConfig{
					Port:  3306,
					Table: "pojocheck_report",
				},
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// ApplyOverrides applies CLI flag values over the loaded configuration.
// Zero values leave the configured value in place.
func (c *Config) ApplyOverrides(logLevel, logFormat, reportOutput, reportFormat string, parallelism int) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if reportOutput != "" {
		c.Report.Output = reportOutput
	}
	if reportFormat != "" {
		c.Report.Format = reportFormat
	}
	if parallelism > 0 {
		c.Parallelism = parallelism
	}
}
