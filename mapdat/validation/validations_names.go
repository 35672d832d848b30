package validation

import (
	"sort"

	"github.com/manicmap/mapdat-go/mapdat/database"
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/parsing/script"
)

// validateReservedWords rejects variable and chain names that shadow a
// macro, trigger kind, command, type keyword, or structural keyword. Names
// are case-sensitive, so "Time" is fine while "time" is not.
func validateReservedWords(ctx *ValidationContext) {
	model := ctx.Db.Script()

	for _, v := range model.Variables {
		if kind := database.ReservedKindOf(v.Name); kind != "" {
			ctx.PushError(diagnostics.NewReservedWordError(v.Name, kind, v.NameSpan))
		}
	}
	for _, c := range model.Chains {
		if script.IsReservedChain(c.Name) {
			// init and tick are the two names a chain is allowed to
			// shadow; the engine calls them itself.
			continue
		}
		if kind := database.ReservedKindOf(c.Name); kind != "" {
			ctx.PushError(diagnostics.NewReservedWordError(c.Name, kind, c.NameSpan))
		}
	}
}

// validateBindings rejects two object variables bound to the same entity.
// A binding attaches to the entity instance, so a second variable on the
// same entity would silently alias the first. One diagnostic per duplicate,
// on the later declaration.
func validateBindings(ctx *ValidationContext) {
	model := ctx.Db.Script()

	seen := make(map[string]string)

	vars := make([]*script.Variable, len(model.Variables))
	copy(vars, model.Variables)
	sort.SliceStable(vars, func(i, j int) bool {
		return vars[i].Span.Start < vars[j].Span.Start
	})

	for _, v := range vars {
		if !v.Type.IsObjectType() || !v.HasInit {
			continue
		}
		key := string(v.Type) + "/" + v.BindingKey()
		if prev, ok := seen[key]; ok {
			ctx.PushError(diagnostics.NewDuplicateBindingError(
				v.Name, prev, v.BindingKey(), v.NameSpan,
			))
			continue
		}
		seen[key] = v.Name
	}
}
