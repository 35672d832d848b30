package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/manicmap/mapdat-go/cli/internal/ui"
	"github.com/manicmap/mapdat-go/mapdat/parsing/grid"
)

var initCmd = &cobra.Command{
	Use:   "init [map-path]",
	Short: "Create a new map file",
	Long: `Create a new map file interactively: name, dimensions, and biome are
prompted for, and a minimal valid map is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// initAnswers holds the survey results for a new map.
type initAnswers struct {
	Name     string
	Creator  string
	RowCount int
	ColCount int
	Biome    string
}

func runInit(cmd *cobra.Command, args []string) error {
	ui.PrintHeader("mapdat", "New Map")

	outPath := "level.dat"
	if len(args) > 0 {
		outPath = args[0]
	}

	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("%s already exists", outPath)
	}

	questions := []*survey.Question{
		{
			Name:     "name",
			Prompt:   &survey.Input{Message: "Level name:", Default: "Untitled"},
			Validate: survey.Required,
		},
		{
			Name:   "creator",
			Prompt: &survey.Input{Message: "Creator:", Default: os.Getenv("USER")},
		},
		{
			Name:   "rowcount",
			Prompt: &survey.Input{Message: "Rows:", Default: "16"},
		},
		{
			Name:   "colcount",
			Prompt: &survey.Input{Message: "Columns:", Default: "16"},
		},
		{
			Name: "biome",
			Prompt: &survey.Select{
				Message: "Biome:",
				Options: []string{"rock", "ice", "lava"},
				Default: "rock",
			},
		},
	}

	answers := initAnswers{}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}
	if answers.RowCount < 4 {
		answers.RowCount = 4
	}
	if answers.ColCount < 4 {
		answers.ColCount = 4
	}

	ui.PrintStep(1, 2, "Generating map sections")
	content := scaffoldMap(answers)

	ui.PrintStep(2, 2, "Writing "+outPath)
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write map file: %w", err)
	}

	ui.PrintSuccess("Created %s (%dx%d, %s)", outPath, answers.RowCount, answers.ColCount, answers.Biome)
	ui.PrintInfo("Validate it with: mapdat validate %s", outPath)
	return nil
}

// Tile ids used by the scaffold: solid rock walls around open ground.
const (
	tileGround    = 1
	tileSolidRock = 38
)

// scaffoldMap builds a minimal valid map: a walled room, flat height, empty
// resource layers, and a briefing stub.
func scaffoldMap(a initAnswers) string {
	tiles := grid.NewGrid(a.RowCount, a.ColCount)
	for r := 0; r < a.RowCount; r++ {
		for c := 0; c < a.ColCount; c++ {
			if r == 0 || c == 0 || r == a.RowCount-1 || c == a.ColCount-1 {
				tiles.Rows[r][c] = tileSolidRock
			} else {
				tiles.Rows[r][c] = tileGround
			}
		}
	}
	height := grid.NewGrid(a.RowCount, a.ColCount)
	blank := grid.NewGrid(a.RowCount, a.ColCount)

	var b strings.Builder
	b.WriteString("info{\n")
	fmt.Fprintf(&b, "levelname:%s\n", a.Name)
	if a.Creator != "" {
		fmt.Fprintf(&b, "creator:%s\n", a.Creator)
	}
	fmt.Fprintf(&b, "biome:%s\n", a.Biome)
	fmt.Fprintf(&b, "rowcount:%d\n", a.RowCount)
	fmt.Fprintf(&b, "colcount:%d\n", a.ColCount)
	b.WriteString("}\n")

	b.WriteString("tiles{\n")
	b.WriteString(grid.SerializeGrid(tiles))
	b.WriteString("}\n")

	b.WriteString("height{\n")
	b.WriteString(grid.SerializeGrid(height))
	b.WriteString("}\n")

	b.WriteString("resources{\n")
	b.WriteString("crystals:\n")
	b.WriteString(grid.SerializeGrid(blank))
	b.WriteString("ore:\n")
	b.WriteString(grid.SerializeGrid(blank))
	b.WriteString("}\n")

	b.WriteString("objectives{\n")
	b.WriteString("resources:5,0,0\n")
	b.WriteString("}\n")

	fmt.Fprintf(&b, "briefing{\nWelcome to %s.\n}\n", a.Name)

	b.WriteString("script{\n")
	b.WriteString("string WelcomeMsg=\"Good luck out there!\"\n\n")
	b.WriteString("Start::\n")
	b.WriteString("msg:WelcomeMsg;\n\n")
	b.WriteString("if(time:2)[Start];\n")
	b.WriteString("}\n")

	return b.String()
}
