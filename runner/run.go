package runner

import (
	"context"
	"fmt"
	"reflect"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dbsmedya/pojocheck"
	"github.com/dbsmedya/pojocheck/internal/config"
	"github.com/dbsmedya/pojocheck/internal/logger"
	"github.com/dbsmedya/pojocheck/report"
	"github.com/dbsmedya/pojocheck/scan"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the configured checks over all registered packages",
	Long: `Run executes the enabled contract checks against every type registered
with the scan registry (or only the packages named in the configuration).

Example:
  pojocheck run --config pojocheck.yaml --parallel 4`,
	RunE: runChecks,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		cfg := config.DefaultConfig()
		cfg.ApplyOverrides(logLevel, logFormat, reportOutput, reportFormat, parallelism)
		return cfg, nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyOverrides(logLevel, logFormat, reportOutput, reportFormat, parallelism)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runChecks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(&cfg.Logging)

	packages := cfg.Packages
	if len(packages) == 0 {
		packages = scan.Packages()
	}
	if len(packages) == 0 {
		return fmt.Errorf("no packages registered with the scan registry")
	}

	var classes []scan.Registered
	for _, pkg := range packages {
		regs, err := scan.FindAll(pkg)
		if err != nil {
			return err
		}
		classes = append(classes, regs...)
	}
	log.Infof("Checking %d classes across %d packages", len(classes), len(packages))

	store := report.NewStore()
	bar := progressbar.Default(int64(len(classes)), "checking")

	g := new(errgroup.Group)
	g.SetLimit(cfg.Parallelism)
	for _, class := range classes {
		g.Go(func() error {
			defer bar.Add(1)
			return checkClass(cfg, store, class.Type)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return emit(cmd, cfg, store)
}

// checkClass runs the enabled checkers for a single class against the shared
// store. Each class gets its own suite so suites stay single-threaded while
// the store takes concurrent writers.
func checkClass(cfg *config.Config, store *report.Store, t reflect.Type) error {
	suite := pojocheck.ForTypes(t).
		WithStore(store).
		ExcludeMethodsContaining(cfg.Exclude.Methods...)
	if len(cfg.Exclude.Classes) > 0 {
		excluded := map[string]struct{}{}
		for _, name := range cfg.Exclude.Classes {
			excluded[name] = struct{}{}
		}
		suite.FilterTypes(func(t reflect.Type) bool {
			_, drop := excluded[t.String()]
			return !drop
		})
	}

	if cfg.Checks.Random {
		if err := suite.CheckRandom(); err != nil {
			return err
		}
	}
	if cfg.Checks.SetterGetter {
		if err := suite.CheckSettersGetters(); err != nil {
			return err
		}
	}
	if cfg.Checks.EqualsAndHashCode {
		if err := suite.CheckEqualsAndHashCode(); err != nil {
			return err
		}
	}
	if cfg.Checks.ToString {
		if err := suite.CheckToString(); err != nil {
			return err
		}
	}
	if cfg.Checks.Constructor {
		if err := suite.CheckConstructors(); err != nil {
			return err
		}
	}
	return nil
}

// emit renders the accumulated report per configuration: stdout summary,
// optional file output, optional database sink.
func emit(cmd *cobra.Command, cfg *config.Config, store *report.Store) error {
	switch cfg.Report.Format {
	case "yaml":
		out, err := store.RenderYAML()
		if err != nil {
			return err
		}
		cmd.Print(out)
	default:
		cmd.Print(store.Summary())
	}

	if cfg.Report.Output != "" {
		if err := store.WriteFile(cfg.Report.Output); err != nil {
			return err
		}
		cmd.Printf("Report written to %s\n", cfg.Report.Output)
	}

	if cfg.Report.Database.Enabled {
		ctx := context.Background()
		sink, err := report.OpenSink(ctx, &cfg.Report.Database.SinkConfig)
		if err != nil {
			return err
		}
		defer sink.Close()
		if err := sink.EnsureSchema(ctx); err != nil {
			return err
		}
		if err := sink.Persist(ctx, store); err != nil {
			return err
		}
		cmd.Printf("Report persisted to table %s\n", cfg.Report.Database.Table)
	}
	return nil
}
