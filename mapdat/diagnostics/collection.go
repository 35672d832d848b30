package diagnostics

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Severity classifies a flattened diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Diagnostic is the flat, position-resolved form handed to editor surfaces.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Section  string   `json:"section"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Length   int      `json:"length"`
}

// Diagnostics represents a list of parse and validation findings.
// It is used to accumulate multiple findings during a run instead of
// erroring out early, so a document always produces some model.
type Diagnostics struct {
	errors   []MapError
	warnings []MapWarning
	infos    []MapInfo
}

// NewDiagnostics creates a new empty Diagnostics collection.
func NewDiagnostics() Diagnostics {
	return Diagnostics{
		errors:   make([]MapError, 0),
		warnings: make([]MapWarning, 0),
		infos:    make([]MapInfo, 0),
	}
}

// Errors returns all errors in the collection.
func (d *Diagnostics) Errors() []MapError {
	return d.errors
}

// Warnings returns all warnings in the collection.
func (d *Diagnostics) Warnings() []MapWarning {
	return d.warnings
}

// Infos returns all informational findings in the collection.
func (d *Diagnostics) Infos() []MapInfo {
	return d.infos
}

// PushError adds an error to the collection.
func (d *Diagnostics) PushError(err MapError) {
	d.errors = append(d.errors, err)
}

// PushWarning adds a warning to the collection.
func (d *Diagnostics) PushWarning(warning MapWarning) {
	d.warnings = append(d.warnings, warning)
}

// PushInfo adds an informational finding to the collection.
func (d *Diagnostics) PushInfo(info MapInfo) {
	d.infos = append(d.infos, info)
}

// HasErrors returns true if there is at least one error in this collection.
func (d *Diagnostics) HasErrors() bool {
	return len(d.errors) > 0
}

// Len returns the total number of findings across all severities.
func (d *Diagnostics) Len() int {
	return len(d.errors) + len(d.warnings) + len(d.infos)
}

// ToResult returns an error if there are errors, otherwise returns nil.
func (d *Diagnostics) ToResult() error {
	if d.HasErrors() {
		return fmt.Errorf("validation failed with %d errors", len(d.errors))
	}
	return nil
}

// Flatten resolves every finding against the source text and returns the
// editor-facing form, ordered by position then severity. The ordering is a
// pure function of the findings, so reparsing unchanged text yields an
// identical list.
func (d *Diagnostics) Flatten(text string) []Diagnostic {
	out := make([]Diagnostic, 0, d.Len())
	for _, e := range d.errors {
		out = append(out, flatten(text, SeverityError, e.Message(), e.Section(), e.Span()))
	}
	for _, w := range d.warnings {
		out = append(out, flatten(text, SeverityWarning, w.Message(), w.Section(), w.Span()))
	}
	for _, i := range d.infos {
		out = append(out, flatten(text, SeverityInfo, i.Message(), i.Section(), i.Span()))
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Line != out[b].Line {
			return out[a].Line < out[b].Line
		}
		if out[a].Column != out[b].Column {
			return out[a].Column < out[b].Column
		}
		return out[a].Severity < out[b].Severity
	})
	return out
}

func flatten(text string, sev Severity, message, section string, span Span) Diagnostic {
	line, col := resolvePosition(text, span.Start)
	return Diagnostic{
		Severity: sev,
		Message:  message,
		Section:  section,
		Line:     line,
		Column:   col,
		Length:   span.Len(),
	}
}

// resolvePosition converts a byte offset into a 0-based line and column.
func resolvePosition(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	line = strings.Count(text[:offset], "\n")
	lastNL := strings.LastIndexByte(text[:offset], '\n')
	col = offset - lastNL - 1
	return line, col
}

// ToPrettyString formats all errors as a pretty-printed string.
func (d *Diagnostics) ToPrettyString(fileName, mapText string) string {
	var buf bytes.Buffer
	for _, err := range d.errors {
		writePretty(&buf, fileName, mapText, err.Message(), err.Span(), errorColors())
	}
	return buf.String()
}

// WarningsToPrettyString formats all warnings as a pretty-printed string.
func (d *Diagnostics) WarningsToPrettyString(fileName, mapText string) string {
	var buf bytes.Buffer
	for _, warn := range d.warnings {
		writePretty(&buf, fileName, mapText, warn.Message(), warn.Span(), warningColors())
	}
	return buf.String()
}

// InfosToPrettyString formats all informational findings as a pretty-printed string.
func (d *Diagnostics) InfosToPrettyString(fileName, mapText string) string {
	var buf bytes.Buffer
	for _, info := range d.infos {
		writePretty(&buf, fileName, mapText, info.Message(), info.Span(), infoColors())
	}
	return buf.String()
}

type prettyColors struct {
	title     string
	titleCol  *color.Color
	offending *color.Color
}

func errorColors() prettyColors {
	return prettyColors{
		title:     "error",
		titleCol:  color.New(color.FgRed, color.Bold),
		offending: color.New(color.FgRed, color.Bold),
	}
}

func warningColors() prettyColors {
	return prettyColors{
		title:     "warning",
		titleCol:  color.New(color.FgYellow, color.Bold),
		offending: color.New(color.FgYellow, color.Bold),
	}
}

func infoColors() prettyColors {
	return prettyColors{
		title:     "info",
		titleCol:  color.New(color.FgBlue, color.Bold),
		offending: color.New(color.FgBlue, color.Bold),
	}
}

// writePretty writes one finding with its source excerpt and caret line.
func writePretty(buf *bytes.Buffer, fileName, text, message string, span Span, colors prettyColors) {
	descColor := color.New(color.Bold)
	arrowColor := color.New(color.FgCyan, color.Bold)
	filePathColor := color.New(color.Underline)
	lineNumColor := color.New(color.FgCyan, color.Bold)

	startLine, startInLine := resolvePosition(text, span.Start)
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	var line string
	if startLine < len(lines) {
		line = lines[startLine]
	}
	endInLine := startInLine + span.Len()
	if endInLine > len(line) {
		endInLine = len(line)
	}
	if startInLine > len(line) {
		startInLine = len(line)
	}

	prefix := line[:startInLine]
	offending := line[startInLine:endInLine]
	suffix := line[endInLine:]

	colors.titleCol.Fprintf(buf, "%s", colors.title)
	fmt.Fprintf(buf, ": ")
	descColor.Fprintf(buf, "%s\n", message)

	arrowColor.Fprintf(buf, "  --> ")
	filePathColor.Fprintf(buf, "%s:%d\n", fileName, startLine+1)

	lineNumColor.Fprintf(buf, "   | \n")

	if startLine < len(lines) {
		lineNumColor.Fprintf(buf, "%2d | ", startLine+1)
		fmt.Fprintf(buf, "%s", prefix)
		colors.offending.Fprintf(buf, "%s", offending)
		fmt.Fprintf(buf, "%s\n", suffix)
	}

	if len(offending) == 0 {
		lineNumColor.Fprintf(buf, "   | ")
		fmt.Fprintf(buf, "%s", strings.Repeat(" ", startInLine))
		colors.offending.Fprintf(buf, "^\n")
	} else {
		lineNumColor.Fprintf(buf, "   | ")
		fmt.Fprintf(buf, "%s", strings.Repeat(" ", startInLine))
		colors.offending.Fprintf(buf, "%s\n", strings.Repeat("^", len(offending)))
	}

	lineNumColor.Fprintf(buf, "   | \n")
}

// FromError creates a Diagnostics from a single error.
func FromError(err MapError) Diagnostics {
	d := NewDiagnostics()
	d.PushError(err)
	return d
}

// FromWarning creates a Diagnostics from a single warning.
func FromWarning(warning MapWarning) Diagnostics {
	d := NewDiagnostics()
	d.PushWarning(warning)
	return d
}
