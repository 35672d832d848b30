// Package section splits a map file into its top-level brace-delimited sections.
package section

import (
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
)

// Kind classifies how a section body is parsed.
type Kind int

const (
	KindUnknown Kind = iota
	// KindKeyValue holds "key: value" lines (info).
	KindKeyValue
	// KindGrid holds comma-separated integer rows (tiles, height, blocks).
	KindGrid
	// KindResource holds named sub-grids (resources: crystals and ore).
	KindResource
	// KindObjectList holds entity declarations (buildings, vehicles,
	// creatures, miners).
	KindObjectList
	// KindScript holds the trigger scripting DSL.
	KindScript
	// KindText holds freeform prose (briefing, comments).
	KindText
	// KindTimed holds "interval: coord/coord/" hazard schedules
	// (landslidefrequency, lavaspread).
	KindTimed
	// KindObjectives holds objective declarations.
	KindObjectives
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindKeyValue:
		return "keyvalue"
	case KindGrid:
		return "grid"
	case KindResource:
		return "resource"
	case KindObjectList:
		return "objectlist"
	case KindScript:
		return "script"
	case KindText:
		return "text"
	case KindTimed:
		return "timed"
	case KindObjectives:
		return "objectives"
	default:
		return "unknown"
	}
}

// sectionKinds maps every recognized section name to its body kind.
var sectionKinds = map[string]Kind{
	"info":               KindKeyValue,
	"tiles":              KindGrid,
	"height":             KindGrid,
	"blocks":             KindGrid,
	"resources":          KindResource,
	"buildings":          KindObjectList,
	"vehicles":           KindObjectList,
	"creatures":          KindObjectList,
	"miners":             KindObjectList,
	"script":             KindScript,
	"briefing":           KindText,
	"briefingsuccess":    KindText,
	"briefingfailure":    KindText,
	"comments":           KindText,
	"landslidefrequency": KindTimed,
	"lavaspread":         KindTimed,
	"objectives":         KindObjectives,
}

// KindOf returns the body kind for a section name, or KindUnknown.
func KindOf(name string) Kind {
	if k, ok := sectionKinds[name]; ok {
		return k
	}
	return KindUnknown
}

// Section is one top-level "name{...}" block of a map file.
type Section struct {
	Name string
	Kind Kind

	// NameSpan covers the section name, BodySpan the text between the
	// braces (exclusive).
	NameSpan diagnostics.Span
	BodySpan diagnostics.Span

	// StartLine and EndLine are 0-based physical line numbers of the
	// opening name and the closing brace.
	StartLine int
	EndLine   int

	// BodyLine is the 0-based line the body starts on, for lexers that
	// need file-absolute token positions.
	BodyLine int

	// Body is the raw text between the braces.
	Body string
}
