package validation

import (
	"github.com/manicmap/mapdat-go/mapdat/database"
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/parsing/script"
)

// captureTargets maps each capture command to the object type it rebinds.
var captureTargets = map[string]script.VarType{
	"save":         script.TypeMiner,
	"lastminer":    script.TypeMiner,
	"lastvehicle":  script.TypeVehicle,
	"lastbuilding": script.TypeBuilding,
	"lastcreature": script.TypeCreature,
}

// validateChains walks every event chain statement: command legality, macro
// write rules, capture targets, and the early-exit ordering lint.
func validateChains(ctx *ValidationContext) {
	model := ctx.Db.Script()

	used := make(map[string]bool)
	for _, t := range model.Triggers {
		markEventUse(used, t.TrueEvent)
		if t.FalseEvent != nil {
			markEventUse(used, *t.FalseEvent)
		}
	}

	for _, chain := range model.Chains {
		validateChainBody(ctx, chain, used)
	}

	for _, chain := range model.Chains {
		if script.IsReservedChain(chain.Name) || used[chain.Name] {
			continue
		}
		ctx.PushInfo(diagnostics.NewUnusedChainLint(chain.Name, chain.NameSpan))
	}
}

func markEventUse(used map[string]bool, ref script.EventRef) {
	if ref.IsBareName() {
		used[ref.Name] = true
	}
}

func validateChainBody(ctx *ValidationContext, chain *script.EventChain, used map[string]bool) {
	earlyExitFlagged := false

	for i, cmd := range chain.Commands {
		validateCommand(ctx, cmd, used)

		// A ~ guard exits the chain when the preceding action succeeded.
		// One sitting above further unconditional statements usually means
		// the author expected it to guard only the next line.
		if cmd.Modifier == script.ModifierFailure && !earlyExitFlagged {
			for _, rest := range chain.Commands[i+1:] {
				if rest.Modifier == script.ModifierNone {
					ctx.PushInfo(diagnostics.NewEarlyExitLint(chain.Name, cmd.Span))
					earlyExitFlagged = true
					break
				}
			}
		}
	}
}

// validateCommand resolves one statement name. A statement head may be an
// engine command, a read-write macro's event form, a variable assignment, or
// a call to another chain.
func validateCommand(ctx *ValidationContext, cmd *script.Command, used map[string]bool) {
	name := cmd.Name
	hasArgs := len(cmd.Params) > 0 || cmd.Math != nil

	if access, isMacro := database.MacroAccessOf(name); isMacro {
		// Statement position with arguments is a write. Reads of the same
		// name live in conditions and are always legal.
		if hasArgs && access == database.MacroReadOnly {
			ctx.PushError(diagnostics.NewReadOnlyMacroError(name, cmd.NameSpan))
		}
		validateMathOperands(ctx, cmd)
		return
	}

	if wantType, isCapture := captureTargets[name]; isCapture {
		validateCaptureTarget(ctx, cmd, wantType)
		return
	}

	if database.IsCommandName(name) {
		validateMathOperands(ctx, cmd)
		return
	}

	if _, ok := ctx.Db.Names().Variable(ctx.Db.Interner(), name); ok {
		validateMathOperands(ctx, cmd)
		return
	}

	if _, ok := ctx.Db.Names().Chain(ctx.Db.Interner(), name); ok {
		used[name] = true
		return
	}
	if script.IsReservedChain(name) {
		return
	}

	ctx.PushError(diagnostics.NewUndeclaredVariableError(name, cmd.NameSpan))
}

// validateCaptureTarget checks that a lastX/save statement names a declared
// object variable of the matching type.
func validateCaptureTarget(ctx *ValidationContext, cmd *script.Command, wantType script.VarType) {
	if len(cmd.Params) != 1 || cmd.Params[0].Kind != script.LitIdent {
		ctx.PushError(diagnostics.NewCaptureTargetError(cmd.Name, rawParams(cmd), cmd.Span))
		return
	}
	target := cmd.Params[0]
	v, ok := ctx.Db.Names().Variable(ctx.Db.Interner(), target.Raw)
	if !ok {
		ctx.PushError(diagnostics.NewCaptureTargetError(cmd.Name, target.Raw, target.Span))
		return
	}
	if v.Type != wantType {
		ctx.PushError(diagnostics.NewCaptureTypeError(
			cmd.Name, v.Name, string(wantType), string(v.Type), target.Span,
		))
	}
}

// validateMathOperands resolves the identifiers of a single-operation
// assignment.
func validateMathOperands(ctx *ValidationContext, cmd *script.Command) {
	if cmd.Math == nil {
		return
	}
	for _, operand := range []script.Literal{cmd.Math.Left, cmd.Math.Right} {
		if operand.Kind != script.LitIdent {
			continue
		}
		if database.IsMacro(operand.Raw) {
			continue
		}
		if _, ok := ctx.Db.Names().Variable(ctx.Db.Interner(), operand.Raw); ok {
			continue
		}
		ctx.PushError(diagnostics.NewUndeclaredVariableError(operand.Raw, operand.Span))
	}
}

func rawParams(cmd *script.Command) string {
	if len(cmd.Params) == 0 {
		return ""
	}
	return cmd.Params[0].Raw
}
