package diagnostics

import (
	"fmt"
)

// MapInfo represents an informational lint finding. Infos never indicate
// that a map is wrong, only that it is doing something worth a second look.
type MapInfo struct {
	message string
	section string
	span    Span
}

// NewMapInfo creates a new MapInfo with the given message and span.
func NewMapInfo(message string, section string, span Span) MapInfo {
	return MapInfo{
		message: message,
		section: section,
		span:    span,
	}
}

// Message returns the info message.
func (i MapInfo) Message() string {
	return i.message
}

// Section returns the name of the section the finding was made in.
func (i MapInfo) Section() string {
	return i.section
}

// Span returns the span of the finding.
func (i MapInfo) Span() Span {
	return i.span
}

// NewEarlyExitLint creates a lint for a ~ guard that is not the last statement of its chain.
func NewEarlyExitLint(chain string, span Span) MapInfo {
	message := fmt.Sprintf("The ~ guard exits chain \"%s\" when the preceding action succeeds; statements after it may never run.", chain)
	return NewMapInfo(message, "script", span)
}

// NewUnusedChainLint creates a lint for an event chain nothing invokes.
func NewUnusedChainLint(chain string, span Span) MapInfo {
	message := fmt.Sprintf("Event chain \"%s\" is never invoked by a trigger or another chain.", chain)
	return NewMapInfo(message, "script", span)
}
