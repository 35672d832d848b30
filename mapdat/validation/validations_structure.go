package validation

import (
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/parsing/grid"
	"github.com/manicmap/mapdat-go/mapdat/parsing/objects"
)

// validateDimensions compares every grid section against the rowcount and
// colcount declared in info. Mismatches are warnings so the rest of the
// document still validates.
func validateDimensions(ctx *ValidationContext) {
	info := ctx.Db.Info()
	if info.RowCount == 0 && info.ColCount == 0 {
		return
	}

	checkGridDimensions(ctx, "tiles", ctx.Db.Tiles())
	checkGridDimensions(ctx, "height", ctx.Db.Height())
	checkGridDimensions(ctx, "blocks", ctx.Db.Blocks())
	if res := ctx.Db.Resources(); res != nil {
		checkGridDimensions(ctx, "resources", res.Crystals)
		checkGridDimensions(ctx, "resources", res.Ore)
	}
}

func checkGridDimensions(ctx *ValidationContext, sectionName string, g *grid.Grid) {
	if g == nil || g.RowCount() == 0 {
		return
	}
	info := ctx.Db.Info()
	if g.RowCount() == info.RowCount && g.ColCount() == info.ColCount {
		return
	}
	span := diagnostics.EmptySpan()
	if sec := ctx.Db.Section(sectionName); sec != nil {
		span = sec.NameSpan
	}
	ctx.PushWarning(diagnostics.NewDimensionMismatchWarning(
		sectionName, g.RowCount(), g.ColCount(), info.RowCount, info.ColCount, span,
	))
}

// validateObjectives warns about objectives naming building types that no
// object list would ever contain.
func validateObjectives(ctx *ValidationContext) {
	for _, obj := range ctx.Db.Objectives() {
		// findbuilding takes coordinates; only "building" names a type.
		if obj.Kind != "building" {
			continue
		}
		if len(obj.Params) == 0 {
			continue
		}
		typeName := obj.Params[0]
		if _, ok := objects.Canonicalize("buildings", typeName); !ok {
			ctx.PushWarning(diagnostics.NewUnknownObjectTypeWarning("objectives", typeName, obj.Span))
		}
	}
}
