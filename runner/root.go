// Package runner provides the cobra command tree for running configured
// check suites. The binary built from cmd/pojocheck is a thin shell around
// Execute; real projects link Execute into their own main after registering
// their types with the scan registry.
package runner

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile      string
	logLevel     string
	logFormat    string
	reportOutput string
	reportFormat string
	parallelism  int
)

var rootCmd = &cobra.Command{
	Use:   "pojocheck",
	Short: "Structural contract checker for plain data types",
	Long: `pojocheck exercises registered Go types with pseudo-random data and
verifies their structural contracts:

  - Constructors complete without panicking
  - Setter/getter pairs round-trip values unchanged
  - Equals obeys the nil, foreign-type, distinctness and self laws
  - HashCode differs across distinct random instances
  - String is deterministic on an unchanged instance
  - Every public method survives one round of random arguments`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (optional)")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	rootCmd.PersistentFlags().StringVar(&reportOutput, "report", "",
		"Write the rendered report to this file")
	rootCmd.PersistentFlags().StringVar(&reportFormat, "format", "",
		"Report format (text, yaml)")
	rootCmd.PersistentFlags().IntVar(&parallelism, "parallel", 0,
		"Number of classes checked concurrently")
}
