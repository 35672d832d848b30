// Package objects parses the entity-list sections of a map file: buildings,
// vehicles, creatures, and miners.
package objects

import (
	"strconv"
	"strings"

	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/parsing/section"
)

// ObjectRecord is one declared entity. Buildings are keyed by their
// (Row, Col) foot point; vehicles, creatures and miners by ID.
type ObjectRecord struct {
	// Kind is the section name: buildings, vehicles, creatures, miners.
	Kind string
	// Type is the canonical type id after alias resolution; unknown
	// spellings are kept verbatim.
	Type string
	ID   int
	Row  int
	Col  int
	// HasID / HasCoord record which key form the declaration used.
	HasID    bool
	HasCoord bool
	// Properties holds every remaining key (orientation, level, essential,
	// health...) as written.
	Properties map[string]string
	Span       diagnostics.Span
}

// Key returns the record's identity string: "row,col" for foot-point keyed
// records, the decimal id otherwise.
func (r ObjectRecord) Key() string {
	if r.Kind == "buildings" {
		return strconv.Itoa(r.Row) + "," + strconv.Itoa(r.Col)
	}
	return strconv.Itoa(r.ID)
}

// ParseObjects parses an entity-list section. Two physical forms are
// accepted and may be mixed: single-line CSV declarations
// ("Type,row,col,orientation,level") and multi-line "key: value" blocks
// separated by blank lines.
func ParseObjects(sec section.Section, diags *diagnostics.Diagnostics) []ObjectRecord {
	records := make([]ObjectRecord, 0, 8)

	var block []rawLine
	flush := func() {
		if len(block) == 0 {
			return
		}
		if rec, ok := parseBlock(sec, block, diags); ok {
			records = append(records, rec)
		}
		block = block[:0]
	}

	pos := 0
	for pos <= len(sec.Body) {
		nl := strings.IndexByte(sec.Body[pos:], '\n')
		var raw string
		if nl < 0 {
			raw = sec.Body[pos:]
		} else {
			raw = sec.Body[pos : pos+nl]
		}

		trimmed := strings.TrimSpace(raw)
		switch {
		case trimmed == "":
			// Blank line: ends the current multi-line block.
			flush()
		case strings.Contains(trimmed, ",") && !strings.Contains(trimmed, ":"):
			flush()
			if rec, ok := parseCSV(sec, trimmed, sec.BodySpan.Start+pos+leadingSpace(raw), diags); ok {
				records = append(records, rec)
			}
		default:
			block = append(block, rawLine{text: trimmed, offset: sec.BodySpan.Start + pos + leadingSpace(raw)})
		}

		if nl < 0 {
			break
		}
		pos += nl + 1
	}
	flush()

	// Id-keyed records that never declared one get positional ids, the
	// same numbering the engine assigns on load.
	for i := range records {
		if records[i].Kind != "buildings" && !records[i].HasID {
			records[i].ID = i
		}
	}

	return records
}

type rawLine struct {
	text   string
	offset int
}

// parseCSV parses the single-line form: Type,row,col[,orientation[,level]].
func parseCSV(sec section.Section, line string, offset int, diags *diagnostics.Diagnostics) (ObjectRecord, bool) {
	span := diagnostics.NewSpan(offset, offset+len(line))
	parts := strings.Split(line, ",")
	if len(parts) < 3 {
		diags.PushError(diagnostics.NewMapError(
			"Expected \"Type,row,col\" with optional orientation and level.",
			sec.Name, span,
		))
		return ObjectRecord{}, false
	}

	rec := ObjectRecord{
		Kind:       sec.Name,
		Properties: make(map[string]string),
		Span:       span,
		HasCoord:   true,
	}

	rawType := strings.TrimSpace(parts[0])
	rec.Type = resolveType(sec.Name, rawType, span, diags)

	var ok1, ok2 bool
	rec.Row, ok1 = atoiField(parts[1], "row", sec.Name, span, diags)
	rec.Col, ok2 = atoiField(parts[2], "col", sec.Name, span, diags)
	if !ok1 || !ok2 {
		return ObjectRecord{}, false
	}

	if len(parts) > 3 {
		rec.Properties["orientation"] = strings.TrimSpace(parts[3])
	}
	if len(parts) > 4 {
		rec.Properties["level"] = strings.TrimSpace(parts[4])
	}

	// Non-building kinds in CSV form get a positional id, assigned by the
	// caller ordering; the coordinate doubles as a spawn point.
	return rec, true
}

// parseBlock parses the multi-line form: a run of "key: value" lines.
func parseBlock(sec section.Section, lines []rawLine, diags *diagnostics.Diagnostics) (ObjectRecord, bool) {
	first := lines[0]
	span := diagnostics.NewSpan(first.offset, lines[len(lines)-1].offset+len(lines[len(lines)-1].text))

	rec := ObjectRecord{
		Kind:       sec.Name,
		Properties: make(map[string]string),
		Span:       span,
	}

	for _, ln := range lines {
		key, value, found := strings.Cut(ln.text, ":")
		if !found {
			// A bare identifier line opens a block with the type name,
			// the other accepted spelling of the multi-line form.
			if rec.Type == "" {
				rec.Type = resolveType(sec.Name, ln.text, diagnostics.NewSpan(ln.offset, ln.offset+len(ln.text)), diags)
				continue
			}
			diags.PushError(diagnostics.NewMapError(
				"Expected \"key: value\".",
				sec.Name,
				diagnostics.NewSpan(ln.offset, ln.offset+len(ln.text)),
			))
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		lineSpan := diagnostics.NewSpan(ln.offset, ln.offset+len(ln.text))

		switch key {
		case "type":
			rec.Type = resolveType(sec.Name, value, lineSpan, diags)
		case "id":
			if id, ok := atoiField(value, "id", sec.Name, lineSpan, diags); ok {
				rec.ID = id
				rec.HasID = true
			}
		case "row":
			if v, ok := atoiField(value, "row", sec.Name, lineSpan, diags); ok {
				rec.Row = v
				rec.HasCoord = true
			}
		case "col":
			if v, ok := atoiField(value, "col", sec.Name, lineSpan, diags); ok {
				rec.Col = v
				rec.HasCoord = true
			}
		default:
			rec.Properties[key] = value
		}
	}

	if rec.Type == "" {
		diags.PushError(diagnostics.NewMapError(
			"Entity declaration is missing a type.",
			sec.Name, span,
		))
		return ObjectRecord{}, false
	}

	return rec, true
}

func resolveType(sectionName, rawType string, span diagnostics.Span, diags *diagnostics.Diagnostics) string {
	canonical, known := Canonicalize(sectionName, rawType)
	if !known {
		diags.PushWarning(diagnostics.NewUnknownObjectTypeWarning(sectionName, rawType, span))
		return rawType
	}
	return canonical
}

func atoiField(raw, field, sectionName string, span diagnostics.Span, diags *diagnostics.Diagnostics) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		diags.PushError(diagnostics.NewLiteralError(field, strings.TrimSpace(raw), sectionName, span))
		return 0, false
	}
	return v, true
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}
