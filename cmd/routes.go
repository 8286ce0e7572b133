package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/fpdocs/internal/pages"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the registered documentation routes",
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
		routes := registry.Match(patterns)

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ROUTE\tPAGE\tLOCALE")
		for _, r := range routes {
			c := registry.Resolve(r)
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r, c.ID(), c.Locale())
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if verbose {
			fmt.Printf("\n%d of %d routes\n", len(routes), registry.Len())
		}
		return nil
	},
}

func init() {
	routesCmd.Flags().StringSlice("match", nil, "only list routes matching these glob patterns (e.g. '/ko/**')")
	rootCmd.AddCommand(routesCmd)
}
