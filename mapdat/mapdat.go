// Package mapdat provides the main API for parsing and validating map
// files.
package mapdat

import (
	"context"

	"github.com/manicmap/mapdat-go/mapdat/core"
	"github.com/manicmap/mapdat-go/mapdat/database"
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/validation"
)

// Re-export key types for convenience
type (
	SourceFile  = core.SourceFile
	Diagnostics = diagnostics.Diagnostics
	Diagnostic  = diagnostics.Diagnostic
	Span        = diagnostics.Span
	Document    = database.MapDatabase
)

// NewSourceFile creates a new source file.
func NewSourceFile(path, data string) core.SourceFile {
	return core.NewSourceFile(path, data)
}

// ParseMap parses a map file into a document without running the semantic
// validations. Parse problems land in the returned diagnostics; the
// document holds whatever was recovered.
func ParseMap(file core.SourceFile) (*Document, *Diagnostics) {
	diags := diagnostics.NewDiagnostics()
	db := database.NewMapDatabase(file, &diags)
	return db, &diags
}

// ValidateMap parses a map file and runs every semantic validation.
func ValidateMap(file core.SourceFile) (*Document, *Diagnostics) {
	return ValidateMapContext(context.Background(), file)
}

// ValidateMapContext is ValidateMap with cancellation between the parse and
// validation phases; a cancelled context returns the parse-only result.
func ValidateMapContext(ctx context.Context, file core.SourceFile) (*Document, *Diagnostics) {
	db, diags := ParseMap(file)
	if ctx.Err() != nil {
		return db, diags
	}
	validation.Validate(db, diags)
	return db, diags
}

// ValidateSource is a convenience over ValidateMap for raw text.
func ValidateSource(path, data string) (*Document, *Diagnostics) {
	return ValidateMap(core.NewSourceFile(path, data))
}
