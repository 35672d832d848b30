// Package script parses the trigger scripting DSL of a map file's script
// section.
package script

import (
	"strings"

	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
)

// VarType is a declared variable's type.
type VarType string

const (
	TypeInt      VarType = "int"
	TypeFloat    VarType = "float"
	TypeBool     VarType = "bool"
	TypeString   VarType = "string"
	TypeArrow    VarType = "arrow"
	TypeTimer    VarType = "timer"
	TypeMiner    VarType = "miner"
	TypeVehicle  VarType = "vehicle"
	TypeBuilding VarType = "building"
	TypeCreature VarType = "creature"
	TypeIntArray VarType = "intarray"
)

// varTypes maps every accepted type keyword.
var varTypes = map[string]VarType{
	"int":      TypeInt,
	"float":    TypeFloat,
	"bool":     TypeBool,
	"string":   TypeString,
	"arrow":    TypeArrow,
	"timer":    TypeTimer,
	"miner":    TypeMiner,
	"vehicle":  TypeVehicle,
	"building": TypeBuilding,
	"creature": TypeCreature,
	"intarray": TypeIntArray,
}

// IsObjectType reports whether the type binds a specific entity instance.
// Object bindings attach to the entity itself, not its id: they go stale
// when the entity dies and can only be rebound through lastX/save.
func (t VarType) IsObjectType() bool {
	switch t {
	case TypeMiner, TypeVehicle, TypeBuilding, TypeCreature:
		return true
	}
	return false
}

// LiteralKind tags a Literal.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitFloat
	LitBool
	LitString
	LitIdent
)

// Literal is a lazily-typed command parameter or initializer. The script
// grammar cannot tell an identifier from an enum-ish bare word at parse
// time, so parameters stay tagged here and the validator resolves them
// against each command's schema.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Float float64
	Bool  bool
	Str   string
	// Raw is the literal exactly as written.
	Raw  string
	Span diagnostics.Span
}

// ScriptModel is the parsed script section.
type ScriptModel struct {
	Variables []*Variable
	Triggers  []*Trigger
	Chains    []*EventChain
}

// Variable is one declared script variable.
type Variable struct {
	Name     string
	Type     VarType
	NameSpan diagnostics.Span
	Span     diagnostics.Span
	// Init holds the initializer literals; object types bind an entity by
	// id ("miner Chief=1") or foot point ("building Base=4,5"), so more
	// than one literal can appear.
	Init []Literal
	// HasInit distinguishes "int x" from "int x=0".
	HasInit bool
}

// BindingKey returns the entity identity an object-typed variable binds, in
// the same "id" / "row,col" form ObjectRecord.Key uses.
func (v *Variable) BindingKey() string {
	if !v.Type.IsObjectType() || !v.HasInit {
		return ""
	}
	parts := make([]string, len(v.Init))
	for i, l := range v.Init {
		parts[i] = l.Raw
	}
	return strings.Join(parts, ",")
}

// Occurrence distinguishes one-shot from standing triggers.
type Occurrence string

const (
	// OccurrenceIf triggers fire once and remove themselves.
	OccurrenceIf Occurrence = "if"
	// OccurrenceWhen triggers persist and fire every time.
	OccurrenceWhen Occurrence = "when"
)

// Trigger is one if/when statement.
type Trigger struct {
	Occurrence Occurrence
	// Kind is the trigger event (enter, drill, time, change, click, built,
	// laserhit, reinforce, hover, walk, drive, fly, new, dead...) or, for a
	// comparison head like "when(crystals>50)", the name being compared.
	Kind string
	Args []Literal
	// CompOp and CompRHS hold the comparison form of a head. CompOp is
	// empty for the kind:args form.
	CompOp  string
	CompRHS *Literal
	// Condition is the optional double-paren guard.
	Condition *Condition
	TrueEvent  EventRef
	FalseEvent *EventRef
	HeadSpan   diagnostics.Span
	Span       diagnostics.Span
}

// HeadKey returns the occurrence-independent identity of the trigger head,
// rendered the way it is written, used for duplicate-trigger detection.
func (t *Trigger) HeadKey() string {
	if t.CompOp != "" {
		return t.Kind + t.CompOp + t.CompRHS.Raw
	}
	if len(t.Args) == 0 {
		return t.Kind
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.Raw
	}
	return t.Kind + ":" + strings.Join(parts, ",")
}

// EventRef is a bracketed event reference: either a chain name or an inline
// command ("[msg:Welcome]").
type EventRef struct {
	Name   string
	Params []Literal
	Span   diagnostics.Span
}

// IsBareName reports whether the reference carries no inline parameters.
func (e EventRef) IsBareName() bool {
	return len(e.Params) == 0
}

// Modifier is an optional statement-start marker.
type Modifier int

const (
	ModifierNone Modifier = iota
	// ModifierFailure (~) exits the remainder of the enclosing chain if
	// the preceding action succeeded.
	ModifierFailure
	// ModifierOptional (?) marks a command the engine may skip.
	ModifierOptional
)

// MathExpr is a single arithmetic operation. The grammar allows exactly one
// operation per assignment; chains like "a:b+c-d" are rejected at parse
// time.
type MathExpr struct {
	Left  Literal
	Op    string
	Right Literal
}

// Command is one statement inside an event chain.
type Command struct {
	Name     string
	Modifier Modifier
	Params   []Literal
	// Math is set instead of Params for single-operation assignments.
	Math     *MathExpr
	NameSpan diagnostics.Span
	Span     diagnostics.Span
}

// EventChain is a named command list ("Name::" through the next blank line
// or chain declaration).
type EventChain struct {
	Name     string
	NameSpan diagnostics.Span
	Commands []*Command
	Span     diagnostics.Span
}

// reservedChains run automatically and must not be trigger targets.
var reservedChains = map[string]bool{
	"init": true,
	"tick": true,
}

// IsReservedChain reports whether the chain name is engine-invoked.
func IsReservedChain(name string) bool {
	return reservedChains[name]
}
