package diagnostics

import (
	"fmt"
)

// MapError represents a parse or validation error in a map file.
type MapError struct {
	span    Span
	section string
	message string
}

// NewMapError creates a new MapError with the given message and span.
func NewMapError(message string, section string, span Span) MapError {
	return MapError{
		message: message,
		section: section,
		span:    span,
	}
}

// Message returns the error message.
func (e MapError) Message() string {
	return e.message
}

// Section returns the name of the section the error was found in.
func (e MapError) Section() string {
	return e.section
}

// Span returns the error span.
func (e MapError) Span() Span {
	return e.span
}

// Error implements the error interface.
func (e MapError) Error() string {
	return e.message
}

// NewUnterminatedSectionError creates an error for a section missing its closing brace.
func NewUnterminatedSectionError(sectionName string, span Span) MapError {
	return NewMapError(fmt.Sprintf("Section \"%s\" is missing a closing \"}\"; treating end of file as the close.", sectionName), sectionName, span)
}

// NewDuplicateSectionError creates an error for a section declared more than once.
func NewDuplicateSectionError(sectionName string, span Span) MapError {
	return NewMapError(fmt.Sprintf("Section \"%s\" is already defined.", sectionName), sectionName, span)
}

// NewRaggedRowError creates an error for a grid row with the wrong column count.
func NewRaggedRowError(section string, rowIndex, got, want int, span Span) MapError {
	return NewMapError(fmt.Sprintf("Row %d has %d columns, expected %d.", rowIndex, got, want), section, span)
}

// NewLiteralError creates an error for an invalid literal value.
func NewLiteralError(literalType, rawValue, section string, span Span) MapError {
	return NewMapError(fmt.Sprintf("\"%s\" is not a valid %s.", rawValue, literalType), section, span)
}

// NewSingleParenConditionError creates an error for a condition written with single parentheses.
func NewSingleParenConditionError(span Span) MapError {
	return NewMapError("Conditions must be wrapped in double parentheses: ((...)).", "script", span)
}

// NewChainedArithmeticError creates an error for more than one operator in an assignment.
func NewChainedArithmeticError(varName string, span Span) MapError {
	return NewMapError(fmt.Sprintf("Assignment to \"%s\" may contain at most one arithmetic operation.", varName), "script", span)
}

// NewReservedWordError creates an error for a name colliding with a reserved word.
func NewReservedWordError(name, kind string, span Span) MapError {
	return NewMapError(fmt.Sprintf("\"%s\" is a reserved %s name and cannot be redeclared.", name, kind), "script", span)
}

// NewDuplicateNameError creates an error for a duplicate variable or chain name.
func NewDuplicateNameError(name string, span Span) MapError {
	return NewMapError(fmt.Sprintf("\"%s\" is already declared.", name), "script", span)
}

// NewDuplicateBindingError creates an error for two variables bound to the same entity.
func NewDuplicateBindingError(varName, otherVar, entity string, span Span) MapError {
	return NewMapError(fmt.Sprintf("Variable \"%s\" binds entity %s, which is already bound by \"%s\". An entity may be bound by at most one variable.", varName, entity, otherVar), "script", span)
}

// NewReadOnlyMacroError creates an error for an assignment to a read-only macro.
func NewReadOnlyMacroError(macro string, span Span) MapError {
	return NewMapError(fmt.Sprintf("Macro \"%s\" is read-only and cannot be assigned.", macro), "script", span)
}

// NewCaptureTypeError creates an error for a cross-type lastX/save capture.
func NewCaptureTypeError(command, varName, wantType, gotType string, span Span) MapError {
	return NewMapError(fmt.Sprintf("\"%s\" captures a %s, but \"%s\" is declared as %s.", command, wantType, varName, gotType), "script", span)
}

// NewCaptureTargetError creates an error for a capture of an undeclared variable.
func NewCaptureTargetError(command, varName string, span Span) MapError {
	return NewMapError(fmt.Sprintf("\"%s\" targets \"%s\", which is not a declared object variable.", command, varName), "script", span)
}

// NewReservedChainTriggerError creates an error for a trigger targeting init or tick.
func NewReservedChainTriggerError(chain string, span Span) MapError {
	return NewMapError(fmt.Sprintf("Event chain \"%s\" runs automatically and cannot be the target of an if/when trigger.", chain), "script", span)
}

// NewUndeclaredEventError creates an error for a trigger referencing an unknown chain.
func NewUndeclaredEventError(name string, span Span) MapError {
	return NewMapError(fmt.Sprintf("\"%s\" is not a declared event chain or command.", name), "script", span)
}

// NewUndeclaredVariableError creates an error for a condition referencing an unknown name.
func NewUndeclaredVariableError(name string, span Span) MapError {
	return NewMapError(fmt.Sprintf("\"%s\" is not a declared variable or macro.", name), "script", span)
}
