package database

// MacroAccess distinguishes macros the script may mutate from those it may
// only read.
type MacroAccess int

const (
	// MacroReadOnly macros expose engine state the script cannot change.
	MacroReadOnly MacroAccess = iota
	// MacroReadWrite macros accept mutation, but only through their own
	// command syntax ("crystals:5;"), never general assignment.
	MacroReadWrite
)

// macros is the process-wide macro table. It is immutable: scripts declare
// variables, never macros.
var macros = map[string]MacroAccess{
	// Engine clock and grid shape.
	"time":     MacroReadOnly,
	"rowcount": MacroReadOnly,
	"colcount": MacroReadOnly,

	// Collection counts: aggregates over all live entities of a type,
	// distinct from any single bound instance.
	"miners":    MacroReadOnly,
	"vehicles":  MacroReadOnly,
	"buildings": MacroReadOnly,
	"creatures": MacroReadOnly,
	"monsters":  MacroReadOnly,

	// Stockpiles and world knobs.
	"crystals":     MacroReadWrite,
	"ore":          MacroReadWrite,
	"studs":        MacroReadWrite,
	"air":          MacroReadWrite,
	"erosionscale": MacroReadWrite,
}

// IsMacro reports whether the name is a built-in macro.
func IsMacro(name string) bool {
	_, ok := macros[name]
	return ok
}

// MacroAccessOf returns the macro's access class. The bool is false for
// non-macro names.
func MacroAccessOf(name string) (MacroAccess, bool) {
	a, ok := macros[name]
	return a, ok
}

// Macros returns the full macro table for completion surfaces.
func Macros() map[string]MacroAccess {
	out := make(map[string]MacroAccess, len(macros))
	for k, v := range macros {
		out[k] = v
	}
	return out
}
