// Package grid parses the comma-separated numeric sections of a map file:
// tiles, height, blocks, and the named sub-grids of resources.
package grid

import (
	"strconv"
	"strings"

	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/parsing/section"
)

// Grid is a rectangular 2-D array of integer tile values.
type Grid struct {
	Rows [][]int
}

// NewGrid creates a zero-filled grid of the given dimensions.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{Rows: make([][]int, rows)}
	for i := range g.Rows {
		g.Rows[i] = make([]int, cols)
	}
	return g
}

// RowCount returns the number of rows.
func (g *Grid) RowCount() int {
	return len(g.Rows)
}

// ColCount returns the number of columns, 0 for an empty grid.
func (g *Grid) ColCount() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// At returns the value at (row, col). The bool is false out of bounds.
func (g *Grid) At(row, col int) (int, bool) {
	if row < 0 || row >= len(g.Rows) {
		return 0, false
	}
	if col < 0 || col >= len(g.Rows[row]) {
		return 0, false
	}
	return g.Rows[row][col], true
}

// Equal reports whether two grids hold the same values.
func (g *Grid) Equal(other *Grid) bool {
	if g.RowCount() != other.RowCount() {
		return false
	}
	for i, row := range g.Rows {
		if len(row) != len(other.Rows[i]) {
			return false
		}
		for j, v := range row {
			if v != other.Rows[i][j] {
				return false
			}
		}
	}
	return true
}

// ResourceSet holds the named sub-grids of a resources section.
type ResourceSet struct {
	Crystals *Grid
	Ore      *Grid
}

// ParseGrid parses a grid section body. Ragged rows and non-numeric cells
// are reported with exact spans; the grid still comes back with every row
// that parsed, so dimension validation downstream has something to chew on.
func ParseGrid(sec section.Section, diags *diagnostics.Diagnostics) *Grid {
	return parseRows(sec.Body, sec.BodySpan.Start, sec.Name, diags)
}

// ParseResources parses a resources section with crystals: and ore: headers,
// each introducing a grid.
func ParseResources(sec section.Section, diags *diagnostics.Diagnostics) *ResourceSet {
	set := &ResourceSet{}
	offset := sec.BodySpan.Start

	var name string
	var bodyStart int
	var body strings.Builder
	flush := func(end int) {
		if name == "" {
			return
		}
		g := parseRows(body.String(), bodyStart, sec.Name, diags)
		switch name {
		case "crystals":
			set.Crystals = g
		case "ore":
			set.Ore = g
		default:
			diags.PushWarning(diagnostics.NewMapWarning(
				"\""+name+"\" is not a known resource layer; expected \"crystals\" or \"ore\".",
				sec.Name,
				diagnostics.NewSpan(end-len(name)-1, end-1),
			))
		}
		body.Reset()
	}

	pos := 0
	for pos <= len(sec.Body) {
		nl := strings.IndexByte(sec.Body[pos:], '\n')
		var line string
		if nl < 0 {
			line = sec.Body[pos:]
		} else {
			line = sec.Body[pos : pos+nl]
		}
		trimmed := strings.TrimSpace(line)
		if header, ok := strings.CutSuffix(trimmed, ":"); ok && !strings.ContainsAny(header, "0123456789,") {
			flush(offset + pos)
			name = header
			bodyStart = offset + pos + len(line) + 1
		} else {
			body.WriteString(line)
			body.WriteByte('\n')
		}
		if nl < 0 {
			break
		}
		pos += nl + 1
	}
	flush(offset + len(sec.Body))

	return set
}

func parseRows(body string, baseOffset int, sectionName string, diags *diagnostics.Diagnostics) *Grid {
	g := &Grid{Rows: make([][]int, 0, 16)}

	pos := 0
	for pos <= len(body) {
		nl := strings.IndexByte(body[pos:], '\n')
		var line string
		if nl < 0 {
			line = body[pos:]
		} else {
			line = body[pos : pos+nl]
		}

		if strings.TrimSpace(line) != "" {
			row := parseRow(line, baseOffset+pos, sectionName, diags)
			if len(row) > 0 {
				g.Rows = append(g.Rows, row)
			}
		}

		if nl < 0 {
			break
		}
		pos += nl + 1
	}

	// Ragged rows are an error with the row index; the grid keeps its
	// parsed shape so later dimension checks still run.
	want := g.ColCount()
	for i, row := range g.Rows {
		if len(row) != want {
			diags.PushError(diagnostics.NewRaggedRowError(
				sectionName, i, len(row), want,
				diagnostics.NewSpan(baseOffset, baseOffset),
			))
		}
	}

	return g
}

// parseRow parses one comma-separated line, trimming the customary trailing
// comma.
func parseRow(line string, lineOffset int, sectionName string, diags *diagnostics.Diagnostics) []int {
	row := make([]int, 0, 32)

	cellStart := 0
	cells := strings.Split(line, ",")
	for i, cell := range cells {
		trimmed := strings.TrimSpace(cell)
		// The last cell after a trailing comma is empty; that is the
		// format's normal row shape, not an error.
		if trimmed == "" && i == len(cells)-1 {
			break
		}
		v, err := strconv.Atoi(trimmed)
		if err != nil {
			start := lineOffset + cellStart + leadingSpace(cell)
			diags.PushError(diagnostics.NewLiteralError(
				"tile id", trimmed, sectionName,
				diagnostics.NewSpan(start, start+len(trimmed)),
			))
		} else {
			row = append(row, v)
		}
		cellStart += len(cell) + 1
	}

	return row
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}

// SerializeGrid writes a grid back into the on-disk row format, one row per
// line with a trailing comma after every cell. ParseGrid of the result
// yields an equal grid.
func SerializeGrid(g *Grid) string {
	var sb strings.Builder
	for _, row := range g.Rows {
		for _, v := range row {
			sb.WriteString(strconv.Itoa(v))
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
