package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/fpdocs/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize fpdocs configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the documentation server and writes a .fpdocs.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s (site %q on port %d)\n", cfgFile, cfg.SiteName, cfg.Port)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
