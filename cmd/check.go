package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/fpdocs/internal/linkcheck"
	"github.com/ziadkadry99/fpdocs/internal/pages"
	"github.com/ziadkadry99/fpdocs/internal/progress"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Render every page and report internal links with no registered route",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		registry, err := pages.NewRegistry(cfg.HighlightStyle)
		if err != nil {
			return fmt.Errorf("building pages: %w", err)
		}

		patterns, _ := cmd.Flags().GetStringSlice("match")
		report, err := linkcheck.Check(registry, pages.Sections(), patterns, progress.NewReporter(os.Stderr))
		if err != nil {
			return fmt.Errorf("checking links: %w", err)
		}

		fmt.Printf("Checked %d pages, %d internal links\n", report.Pages, report.Links)
		for _, b := range report.Broken {
			fmt.Printf("  %s: %s (%q)\n", b.Page, b.Href, b.Text)
		}
		if !report.OK() {
			return fmt.Errorf("%d broken links", len(report.Broken))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringSlice("match", nil, "only check routes matching these glob patterns")
	rootCmd.AddCommand(checkCmd)
}
