// Package validation enforces the semantic invariants of a parsed map:
// reserved words, binding uniqueness, trigger hygiene, macro legality, and
// tile-mutation batch limits.
package validation

import (
	"github.com/manicmap/mapdat-go/mapdat/database"
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
)

// ValidationContext provides context for validation passes.
type ValidationContext struct {
	Db          *database.MapDatabase
	Diagnostics *diagnostics.Diagnostics
}

// PushError adds an error to the diagnostics.
func (ctx *ValidationContext) PushError(err diagnostics.MapError) {
	ctx.Diagnostics.PushError(err)
}

// PushWarning adds a warning to the diagnostics.
func (ctx *ValidationContext) PushWarning(warn diagnostics.MapWarning) {
	ctx.Diagnostics.PushWarning(warn)
}

// PushInfo adds a lint note to the diagnostics.
func (ctx *ValidationContext) PushInfo(info diagnostics.MapInfo) {
	ctx.Diagnostics.PushInfo(info)
}

// Validate runs every semantic check against the database. Parse errors do
// not stop it: each pass works on whatever model was recovered.
func Validate(db *database.MapDatabase, diags *diagnostics.Diagnostics) {
	ctx := &ValidationContext{
		Db:          db,
		Diagnostics: diags,
	}
	runValidations(ctx)
}

func runValidations(ctx *ValidationContext) {
	validateDimensions(ctx)
	validateObjectives(ctx)

	if ctx.Db.Script() == nil {
		return
	}

	validateReservedWords(ctx)
	validateBindings(ctx)
	validateTriggers(ctx)
	validateChains(ctx)
	validateBatchLimits(ctx)
}
