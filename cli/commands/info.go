package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manicmap/mapdat-go/cli/internal/ui"
	"github.com/manicmap/mapdat-go/mapdat"
)

var infoCmd = &cobra.Command{
	Use:   "info [map-path]",
	Short: "Show a map file's metadata and contents",
	Long: `Show a summary of a map file: declared metadata, grid dimensions,
object counts, objectives, and the briefing text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

var (
	infoMapPath  string
	infoBriefing bool
)

func init() {
	infoCmd.Flags().StringVarP(&infoMapPath, "map", "m", "", "Path to map file")
	infoCmd.Flags().BoolVar(&infoBriefing, "briefing", false, "Render the briefing text")

	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	mapPath := getMapPath(infoMapPath, args)

	content, err := os.ReadFile(mapPath)
	if err != nil {
		return fmt.Errorf("failed to read map file: %w", err)
	}

	doc, diags := mapdat.ParseMap(mapdat.NewSourceFile(mapPath, string(content)))
	if diags.HasErrors() {
		ui.PrintWarning("Map has parse errors; showing what was recovered.")
	}

	info := doc.Info()
	ui.PrintHeader("mapdat", mapPath)

	ui.PrintSection("Metadata")
	rows := [][]string{}
	if info.LevelName != "" {
		rows = append(rows, []string{"Name", info.LevelName})
	}
	if info.Creator != "" {
		rows = append(rows, []string{"Creator", info.Creator})
	}
	if info.Biome != "" {
		rows = append(rows, []string{"Biome", info.Biome})
	}
	if info.RowCount > 0 || info.ColCount > 0 {
		rows = append(rows, []string{"Size", fmt.Sprintf("%dx%d", info.RowCount, info.ColCount)})
	}
	if info.Version != "" {
		rows = append(rows, []string{"Version", info.Version})
	}
	if len(rows) > 0 {
		ui.PrintTable([]string{"Field", "Value"}, rows)
	} else {
		ui.PrintInfo("No info section found.")
	}

	fmt.Println()
	ui.PrintSection("Contents")
	contents := []string{}
	for _, sectionName := range []string{"miners", "vehicles", "buildings", "creatures"} {
		if records := doc.Objects(sectionName); len(records) > 0 {
			contents = append(contents, fmt.Sprintf("%d %s", len(records), sectionName))
		}
	}
	if res := doc.Resources(); res != nil {
		if res.Crystals != nil {
			contents = append(contents, "crystal layer: "+strconv.Itoa(res.Crystals.RowCount())+" rows")
		}
		if res.Ore != nil {
			contents = append(contents, "ore layer: "+strconv.Itoa(res.Ore.RowCount())+" rows")
		}
	}
	if script := doc.Script(); script != nil {
		contents = append(contents, fmt.Sprintf("script: %d triggers, %d chains", len(script.Triggers), len(script.Chains)))
	}
	if len(contents) > 0 {
		ui.PrintList(contents)
	} else {
		ui.PrintInfo("No object or script sections found.")
	}

	if len(doc.Objectives()) > 0 {
		fmt.Println()
		ui.PrintSection("Objectives")
		items := make([]string, 0, len(doc.Objectives()))
		for _, obj := range doc.Objectives() {
			line := obj.Kind
			if len(obj.Params) > 0 {
				line += ": " + strings.Join(obj.Params, ", ")
			}
			items = append(items, line)
		}
		ui.PrintList(items)
	}

	if infoBriefing {
		if briefing, ok := doc.Text("briefing"); ok {
			fmt.Println()
			ui.PrintSection("Briefing")
			if err := ui.PrintMarkdown(briefing); err != nil {
				fmt.Println(briefing)
			}
		}
	}

	return nil
}
