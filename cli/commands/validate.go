package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/manicmap/mapdat-go/cli/internal/ui"
	"github.com/manicmap/mapdat-go/mapdat"
)

var validateCmd = &cobra.Command{
	Use:   "validate [map-path]",
	Short: "Validate a map file",
	Long: `Validate a map file for syntax and semantic errors.

This command will:
- Split and parse every section
- Parse the embedded script
- Run the semantic validations
- Display diagnostics with source positions`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var (
	validateMapPath string
	validateStrict  bool
	validateQuiet   bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateMapPath, "map", "m", "", "Path to map file")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as a failing result")
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "Only print diagnostics, no summary")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	mapPath := getMapPath(validateMapPath, args)

	if !validateQuiet {
		ui.PrintHeader("mapdat", "Validate Map")
	}

	content, err := os.ReadFile(mapPath)
	if err != nil {
		return fmt.Errorf("failed to read map file: %w", err)
	}

	file := mapdat.NewSourceFile(mapPath, string(content))
	doc, diags := mapdat.ValidateMap(file)

	strict := validateStrict || cfg.Strict

	if diags.HasErrors() {
		ui.PrintError("Map validation failed:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(mapPath, string(content)))
		return fmt.Errorf("map has errors")
	}

	if len(diags.Warnings()) > 0 {
		ui.PrintWarning("Map validated with warnings:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.WarningsToPrettyString(mapPath, string(content)))
		if strict {
			return fmt.Errorf("map has warnings (strict mode)")
		}
	}

	if len(diags.Infos()) > 0 && !validateQuiet {
		fmt.Printf("\n%s\n", diags.InfosToPrettyString(mapPath, string(content)))
	}

	absPath, _ := filepath.Abs(mapPath)
	ui.PrintSuccess("Map is valid: %s", absPath)

	if validateQuiet {
		return nil
	}

	fmt.Println()
	ui.PrintSection("Map Summary")
	summary := []string{
		fmt.Sprintf("%d section(s)", len(doc.Sections())),
	}
	if tiles := doc.Tiles(); tiles != nil {
		summary = append(summary, fmt.Sprintf("%dx%d tiles", tiles.RowCount(), tiles.ColCount()))
	}
	if script := doc.Script(); script != nil {
		summary = append(summary,
			fmt.Sprintf("%d variable(s)", len(script.Variables)),
			fmt.Sprintf("%d trigger(s)", len(script.Triggers)),
			fmt.Sprintf("%d event chain(s)", len(script.Chains)),
		)
	}
	ui.PrintList(summary)

	return nil
}
