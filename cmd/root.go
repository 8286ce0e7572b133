package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/fpdocs/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fpdocs",
	Short: "Bilingual documentation site for the fp functional utility library",
	Long: `fpdocs serves the English and Korean documentation for the fp library.
Every browser tab gets a live navigation session: sidebar clicks, locale
switches and back/forward buttons are resolved on the server and pushed
back over a websocket.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
