package section

import (
	"strings"

	"github.com/manicmap/mapdat-go/internal/debug"
	"github.com/manicmap/mapdat-go/mapdat/core"
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
)

// Split divides a map file into top-level sections. It scans for balanced
// braces rather than splitting on a regex: quoted strings inside briefings
// may contain braces that must not close a section. An unterminated section
// is reported once and closed at end of file so the rest of the pipeline can
// still run.
func Split(file core.SourceFile, diags *diagnostics.Diagnostics) []Section {
	s := splitter{input: file.Data, diags: diags}
	return s.run()
}

type splitter struct {
	input string
	pos   int
	diags *diagnostics.Diagnostics
}

func (s *splitter) run() []Section {
	sections := make([]Section, 0, 8)
	seen := make(map[string]bool)

	for s.pos < len(s.input) {
		s.skipBlank()
		if s.pos >= len(s.input) {
			break
		}

		nameStart := s.pos
		name := s.scanName()
		if name == "" {
			// No section name here; consume the rest of the line and
			// keep scanning. Stray text between sections is tolerated.
			s.skipLine()
			continue
		}

		s.skipSpaces()
		if s.pos >= len(s.input) || s.input[s.pos] != '{' {
			s.diags.PushError(diagnostics.NewMapError(
				"Expected \"{\" after section name \""+name+"\".",
				name,
				diagnostics.NewSpan(nameStart, nameStart+len(name)),
			))
			s.skipLine()
			continue
		}
		s.pos++ // consume '{'

		bodyStart := s.pos
		bodyEnd, terminated := s.scanBody(name)

		sec := Section{
			Name:      name,
			Kind:      KindOf(name),
			NameSpan:  diagnostics.NewSpan(nameStart, nameStart+len(name)),
			BodySpan:  diagnostics.NewSpan(bodyStart, bodyEnd),
			StartLine: s.lineAt(nameStart),
			EndLine:   s.lineAt(bodyEnd),
			BodyLine:  s.lineAt(bodyStart),
			Body:      s.input[bodyStart:bodyEnd],
		}

		if !terminated {
			s.diags.PushError(diagnostics.NewUnterminatedSectionError(name, sec.NameSpan))
		}
		if seen[name] {
			s.diags.PushError(diagnostics.NewDuplicateSectionError(name, sec.NameSpan))
		}
		seen[name] = true

		debug.Debug("split section", "name", name, "kind", sec.Kind.String(), "lines", sec.EndLine-sec.StartLine)
		sections = append(sections, sec)
	}

	return sections
}

// scanBody consumes the section body up to the matching closing brace.
// Returns the body end offset and whether a closing brace was found.
// Double-quoted strings are opaque; inside script sections, so is the rest
// of a # comment line.
func (s *splitter) scanBody(name string) (int, bool) {
	depth := 1
	isScript := name == "script"

	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case '"':
			s.skipString()
			continue
		case '#':
			if isScript {
				s.skipLine()
				continue
			}
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end := s.pos
				s.pos++
				return end, true
			}
		}
		s.pos++
	}
	return s.pos, false
}

func (s *splitter) skipString() {
	s.pos++ // opening quote
	for s.pos < len(s.input) && s.input[s.pos] != '"' && s.input[s.pos] != '\n' {
		if s.input[s.pos] == '\\' {
			s.pos++
		}
		s.pos++
	}
	if s.pos < len(s.input) && s.input[s.pos] == '"' {
		s.pos++
	}
}

func (s *splitter) scanName() string {
	start := s.pos
	for s.pos < len(s.input) && isNameChar(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

func (s *splitter) skipBlank() {
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

func (s *splitter) skipSpaces() {
	for s.pos < len(s.input) && (s.input[s.pos] == ' ' || s.input[s.pos] == '\t') {
		s.pos++
	}
}

func (s *splitter) skipLine() {
	if nl := strings.IndexByte(s.input[s.pos:], '\n'); nl >= 0 {
		s.pos += nl + 1
	} else {
		s.pos = len(s.input)
	}
}

func (s *splitter) lineAt(offset int) int {
	if offset > len(s.input) {
		offset = len(s.input)
	}
	return strings.Count(s.input[:offset], "\n")
}

func isNameChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '_'
}
