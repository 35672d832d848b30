package diagnostics

import (
	"fmt"
)

// MapWarning represents a non-fatal warning emitted by the map parser or validator.
type MapWarning struct {
	message string
	section string
	span    Span
}

// NewMapWarning creates a new MapWarning with the given message and span.
func NewMapWarning(message string, section string, span Span) MapWarning {
	return MapWarning{
		message: message,
		section: section,
		span:    span,
	}
}

// Message returns the warning message.
func (w MapWarning) Message() string {
	return w.message
}

// Section returns the name of the section the warning was found in.
func (w MapWarning) Section() string {
	return w.section
}

// Span returns the span of the warning.
func (w MapWarning) Span() Span {
	return w.span
}

// NewDimensionMismatchWarning creates a warning for a grid not matching declared dimensions.
func NewDimensionMismatchWarning(section string, gotRows, gotCols, wantRows, wantCols int, span Span) MapWarning {
	message := fmt.Sprintf("Section \"%s\" is %dx%d but info declares rowcount %d and colcount %d.", section, gotRows, gotCols, wantRows, wantCols)
	return NewMapWarning(message, section, span)
}

// NewDuplicateTriggerWarning creates a warning for two triggers with an identical head.
// Firing order between identical triggers is undefined by the engine.
func NewDuplicateTriggerWarning(head string, span Span) MapWarning {
	message := fmt.Sprintf("Trigger \"%s\" is declared more than once; firing behavior for duplicate triggers is undefined.", head)
	return NewMapWarning(message, "script", span)
}

// NewBatchLimitWarning creates a warning for a trigger body exceeding the tile-mutation ceiling.
func NewBatchLimitWarning(trigger string, count, limit int, span Span) MapWarning {
	message := fmt.Sprintf("Trigger body \"%s\" performs %d tile writes in one activation; more than %d may be dropped by the engine.", trigger, count, limit)
	return NewMapWarning(message, "script", span)
}

// NewFluidMixWarning creates a warning for mixing fluid and non-fluid tile writes in one trigger body.
func NewFluidMixWarning(trigger string, span Span) MapWarning {
	message := fmt.Sprintf("Trigger body \"%s\" mixes water/lava tile writes with solid tile writes; the engine applies these in a nondeterministic order.", trigger)
	return NewMapWarning(message, "script", span)
}

// NewUnknownObjectTypeWarning creates a warning for an unrecognized entity type name.
func NewUnknownObjectTypeWarning(section, typeName string, span Span) MapWarning {
	message := fmt.Sprintf("\"%s\" is not a known %s type.", typeName, section)
	return NewMapWarning(message, section, span)
}

// NewUnknownMacroParamWarning creates a warning for a command parameter that cannot be resolved.
func NewUnknownMacroParamWarning(command, param string, span Span) MapWarning {
	message := fmt.Sprintf("Command \"%s\" received \"%s\", which is neither a literal nor a declared name.", command, param)
	return NewMapWarning(message, "script", span)
}
