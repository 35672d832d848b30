// Package keyvalue parses the "key: value" line sections of a map file:
// info, objectives, and the landslide/lava hazard schedules.
package keyvalue

import (
	"strings"

	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/parsing/section"
)

// Pair is one "key: value" line with its position.
type Pair struct {
	Key       string
	Value     string
	KeySpan   diagnostics.Span
	ValueSpan diagnostics.Span
	Line      int
}

// Parse splits a section body into ordered key/value pairs. Lines without a
// colon are reported and skipped; everything else is kept verbatim so typed
// decoders can do their own checking.
func Parse(sec section.Section, diags *diagnostics.Diagnostics) []Pair {
	pairs := make([]Pair, 0, 16)

	pos := 0
	line := sec.BodyLine
	body := sec.Body
	for pos <= len(body) {
		nl := strings.IndexByte(body[pos:], '\n')
		var raw string
		if nl < 0 {
			raw = body[pos:]
		} else {
			raw = body[pos : pos+nl]
		}

		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			colon := strings.IndexByte(raw, ':')
			if colon < 0 {
				start := sec.BodySpan.Start + pos + leadingSpace(raw)
				diags.PushError(diagnostics.NewMapError(
					"Expected \"key: value\".",
					sec.Name,
					diagnostics.NewSpan(start, start+len(trimmed)),
				))
			} else {
				key := strings.TrimSpace(raw[:colon])
				value := strings.TrimSpace(raw[colon+1:])
				keyStart := sec.BodySpan.Start + pos + leadingSpace(raw)
				valStart := sec.BodySpan.Start + pos + colon + 1 + leadingSpace(raw[colon+1:])
				pairs = append(pairs, Pair{
					Key:       key,
					Value:     value,
					KeySpan:   diagnostics.NewSpan(keyStart, keyStart+len(key)),
					ValueSpan: diagnostics.NewSpan(valStart, valStart+len(value)),
					Line:      line,
				})
			}
		}

		if nl < 0 {
			break
		}
		pos += nl + 1
		line++
	}

	return pairs
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}
