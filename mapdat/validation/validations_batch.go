package validation

import (
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/parsing/script"
)

// tileBatchLimit is the number of place/drill mutations one trigger firing
// can issue before the engine starts dropping or reordering them.
const tileBatchLimit = 630

// fluidTiles are the tile ids whose placement routes through the fluid
// simulation instead of the solid tile path.
var fluidTiles = map[int64]bool{
	6:   true, // lava
	11:  true, // water
	106: true, // lava, undiscovered
	111: true, // water, undiscovered
}

// batchStats accumulates the tile mutations reachable from one trigger.
type batchStats struct {
	mutations int
	fluid     bool
	solid     bool
}

// validateBatchLimits statically sums the place/drill commands reachable
// from each trigger body and warns past the engine ceiling. The analysis
// cannot see wait boundaries, so authors deliberately batching across waits
// get the warning too; that approximation is the reason these are warnings
// and not errors.
func validateBatchLimits(ctx *ValidationContext) {
	model := ctx.Db.Script()

	chains := make(map[string]*script.EventChain, len(model.Chains))
	for _, c := range model.Chains {
		chains[c.Name] = c
	}

	for _, t := range model.Triggers {
		var stats batchStats
		active := make(map[string]bool)
		collectEventStats(&stats, t.TrueEvent, chains, active)
		if t.FalseEvent != nil {
			collectEventStats(&stats, *t.FalseEvent, chains, active)
		}

		if stats.mutations > tileBatchLimit {
			ctx.PushWarning(diagnostics.NewBatchLimitWarning(
				t.HeadKey(), stats.mutations, tileBatchLimit, t.HeadSpan,
			))
		}
		if stats.fluid && stats.solid {
			ctx.PushWarning(diagnostics.NewFluidMixWarning(t.HeadKey(), t.HeadSpan))
		}
	}
}

func collectEventStats(stats *batchStats, ref script.EventRef, chains map[string]*script.EventChain, active map[string]bool) {
	if ref.IsBareName() {
		if chain, ok := chains[ref.Name]; ok {
			collectChainStats(stats, chain, chains, active)
		}
		return
	}
	countMutation(stats, ref.Name, ref.Params)
}

// collectChainStats counts the mutations of chain's body, following calls
// into other chains. active holds the call stack: a chain already on it is
// a cycle and contributes its body only once.
func collectChainStats(stats *batchStats, chain *script.EventChain, chains map[string]*script.EventChain, active map[string]bool) {
	if active[chain.Name] {
		return
	}
	active[chain.Name] = true
	defer delete(active, chain.Name)

	for _, cmd := range chain.Commands {
		if next, ok := chains[cmd.Name]; ok && len(cmd.Params) == 0 && cmd.Math == nil {
			collectChainStats(stats, next, chains, active)
			continue
		}
		countMutation(stats, cmd.Name, cmd.Params)
	}
}

func countMutation(stats *batchStats, name string, params []script.Literal) {
	switch name {
	case "place":
		stats.mutations++
		// place:row,col,tile
		if len(params) >= 3 && params[2].Kind == script.LitInt {
			if fluidTiles[params[2].Int] {
				stats.fluid = true
			} else {
				stats.solid = true
			}
		}
	case "drill":
		stats.mutations++
		stats.solid = true
	}
}
