package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if !c.Checks.Constructor && !c.Checks.SetterGetter && !c.Checks.EqualsAndHashCode &&
		!c.Checks.ToString && !c.Checks.Random {
		errs = append(errs, ValidationError{
			Field:   "checks",
			Message: "at least one check must be enabled",
		})
	}

	if c.Parallelism < 1 {
		errs = append(errs, ValidationError{
			Field:   "parallelism",
			Message: "must be at least 1",
		})
	}

	switch c.Report.Format {
	case "text", "yaml":
	default:
		errs = append(errs, ValidationError{
			Field:   "report.format",
			Message: fmt.Sprintf("unknown format %q (expected text or yaml)", c.Report.Format),
		})
	}

	if c.Report.Database.Enabled {
		db := &c.Report.Database
		if db.Host == "" {
			errs = append(errs, ValidationError{Field: "report.database.host", Message: "is required"})
		}
		if db.User == "" {
			errs = append(errs, ValidationError{Field: "report.database.user", Message: "is required"})
		}
		if db.Database == "" {
			errs = append(errs, ValidationError{Field: "report.database.database", Message: "is required"})
		}
		if db.Port <= 0 || db.Port > 65535 {
			errs = append(errs, ValidationError{
				Field:   "report.database.port",
				Message: fmt.Sprintf("invalid port %d", db.Port),
			})
		}
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q", c.Logging.Level),
		})
	}

	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown format %q", c.Logging.Format),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
