package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manicmap/mapdat-go/cli/internal/update"
	"github.com/manicmap/mapdat-go/cli/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

var versionFull bool

func init() {
	versionCmd.Flags().BoolVar(&versionFull, "full", false, "Print build details")

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	if versionFull {
		fmt.Println(version.Full())
	} else {
		fmt.Println(version.Short())
	}

	return update.CheckForUpdates(version.Version)
}
