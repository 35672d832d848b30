package validation

import (
	"github.com/manicmap/mapdat-go/mapdat/database"
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/parsing/script"
)

// validateTriggers checks trigger heads and their event references.
func validateTriggers(ctx *ValidationContext) {
	model := ctx.Db.Script()

	// Two triggers on the same head race nondeterministically, except for
	// time triggers where repeated schedules are a normal pattern. Every
	// member of a duplicated group gets the warning, so the author sees
	// each racing site.
	headCount := make(map[string]int)
	for _, t := range model.Triggers {
		if t.Kind != "time" {
			headCount[t.HeadKey()]++
		}
	}

	for _, t := range model.Triggers {
		if t.Kind != "time" && headCount[t.HeadKey()] > 1 {
			ctx.PushWarning(diagnostics.NewDuplicateTriggerWarning(t.HeadKey(), t.HeadSpan))
		}

		validateHead(ctx, t)
		validateEventRef(ctx, t.TrueEvent)
		if t.FalseEvent != nil {
			validateEventRef(ctx, *t.FalseEvent)
		}
		validateCondition(ctx, t.Condition)
	}
}

// validateHead resolves the names of a comparison-form head. Kind-form
// heads name engine events, not script symbols, and are not resolved here.
func validateHead(ctx *ValidationContext, t *script.Trigger) {
	if t.CompOp == "" {
		return
	}
	names := []string{t.Kind}
	if t.CompRHS != nil && t.CompRHS.Kind == script.LitIdent {
		names = append(names, t.CompRHS.Raw)
	}
	for _, name := range names {
		if database.IsMacro(name) {
			continue
		}
		if _, ok := ctx.Db.Names().Variable(ctx.Db.Interner(), name); ok {
			continue
		}
		ctx.PushError(diagnostics.NewUndeclaredVariableError(name, t.HeadSpan))
	}
}

// validateEventRef resolves one bracketed event reference. Bare names must
// be declared chains; parameterized references must be known commands.
func validateEventRef(ctx *ValidationContext, ref script.EventRef) {
	if ref.Name == "" {
		return
	}
	if script.IsReservedChain(ref.Name) {
		ctx.PushError(diagnostics.NewReservedChainTriggerError(ref.Name, ref.Span))
		return
	}
	if ref.IsBareName() {
		if _, ok := ctx.Db.Names().Chain(ctx.Db.Interner(), ref.Name); !ok {
			ctx.PushError(diagnostics.NewUndeclaredEventError(ref.Name, ref.Span))
		}
		return
	}
	if !database.IsCommandName(ref.Name) {
		ctx.PushError(diagnostics.NewUndeclaredEventError(ref.Name, ref.Span))
	}
}

// validateCondition resolves every identifier in a condition guard against
// the declared variables and the macro table.
func validateCondition(ctx *ValidationContext, cond *script.Condition) {
	if cond == nil {
		return
	}
	for _, ident := range cond.Idents() {
		if database.IsMacro(ident) {
			continue
		}
		if _, ok := ctx.Db.Names().Variable(ctx.Db.Interner(), ident); ok {
			continue
		}
		ctx.PushError(diagnostics.NewUndeclaredVariableError(ident, cond.Span))
	}
}
