package runner

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/pojocheck/report"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a previously persisted report",
	Long: `Render loads the report entries a "run" with an enabled database sink
persisted, and prints them in the configured format.`,
	RunE: renderReport,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func renderReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Report.Database.Enabled {
		return fmt.Errorf("report database sink is not enabled in the configuration")
	}

	ctx := context.Background()
	sink, err := report.OpenSink(ctx, &cfg.Report.Database.SinkConfig)
	if err != nil {
		return err
	}
	defer sink.Close()

	store, err := sink.Load(ctx)
	if err != nil {
		return err
	}

	switch cfg.Report.Format {
	case "yaml":
		out, err := store.RenderYAML()
		if err != nil {
			return err
		}
		cmd.Print(out)
	default:
		cmd.Print(store.Render())
	}
	return nil
}
