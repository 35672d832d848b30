package keyvalue

import (
	"strings"

	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
)

// Objective is one win condition declaration.
type Objective struct {
	// Kind is the objective key: resources, building, discovertile,
	// variable, findminer, findbuilding.
	Kind string
	// Params are the raw comma- or /-separated parameters after the colon.
	Params []string
	// Description is the optional prose after a / for discovertile.
	Description string
	Span        diagnostics.Span
}

// objectiveKinds lists the objective keys the engine understands.
var objectiveKinds = map[string]bool{
	"resources":    true,
	"building":     true,
	"discovertile": true,
	"variable":     true,
	"findminer":    true,
	"findbuilding": true,
}

// DecodeObjectives decodes objectives pairs. Unknown objective kinds are a
// warning, not an error; the engine ignores them rather than failing.
func DecodeObjectives(pairs []Pair, diags *diagnostics.Diagnostics) []Objective {
	objectives := make([]Objective, 0, len(pairs))

	for _, p := range pairs {
		if !objectiveKinds[p.Key] {
			diags.PushWarning(diagnostics.NewMapWarning(
				"\""+p.Key+"\" is not a known objective.",
				"objectives",
				p.KeySpan,
			))
		}

		obj := Objective{Kind: p.Key, Span: p.ValueSpan}
		value := p.Value
		if p.Key == "discovertile" {
			if coords, desc, ok := strings.Cut(value, "/"); ok {
				value = coords
				obj.Description = strings.TrimSpace(desc)
			}
		}
		for _, param := range strings.Split(value, ",") {
			if param = strings.TrimSpace(param); param != "" {
				obj.Params = append(obj.Params, param)
			}
		}
		objectives = append(objectives, obj)
	}

	return objectives
}
