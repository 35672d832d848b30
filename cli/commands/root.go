// Package commands implements the mapdat CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/manicmap/mapdat-go/cli/internal/config"
	"github.com/manicmap/mapdat-go/cli/internal/ui"
	"github.com/manicmap/mapdat-go/internal/debug"
)

var (
	cfg         *config.Config
	debugOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "mapdat",
	Short: "Parse, validate, and inspect map files",
	Long: `mapdat is a toolchain for game map files: the grid sections, object
lists, and the script trigger language they embed.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug.Init(debugOutput)
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}
		if cfg.NoColor {
			ui.SetColorEnabled(false)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugOutput, "debug", false, "Enable debug logging")
}

// Execute is the main entry point for the CLI.
func Execute() error {
	return rootCmd.Execute()
}
