package database

import (
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/parsing/script"
)

// Names holds resolved script names for use during validation. The script
// namespace is flat: variables and event chains share it.
type Names struct {
	Variables map[StringId]*script.Variable
	Chains    map[StringId]*script.EventChain
	// Bindings maps object-typed variables to the entity each one binds.
	Bindings map[StringId]Handle
}

// NewNames creates an empty Names structure.
func NewNames() Names {
	return Names{
		Variables: make(map[StringId]*script.Variable),
		Chains:    make(map[StringId]*script.EventChain),
		Bindings:  make(map[StringId]Handle),
	}
}

// ResolveNames populates Names and reports duplicate declarations. Names
// are case-sensitive and globally unique across variables and chains.
// Reserved-word collisions are a separate validation pass; only identity is
// resolved here.
func ResolveNames(model *script.ScriptModel, interner *StringInterner, diags *diagnostics.Diagnostics) Names {
	names := NewNames()
	if model == nil {
		return names
	}

	for _, v := range model.Variables {
		id := interner.Intern(v.Name)
		if _, exists := names.Variables[id]; exists {
			diags.PushError(diagnostics.NewDuplicateNameError(v.Name, v.NameSpan))
			continue
		}
		names.Variables[id] = v
	}

	for _, c := range model.Chains {
		id := interner.Intern(c.Name)
		if _, exists := names.Chains[id]; exists {
			diags.PushError(diagnostics.NewDuplicateNameError(c.Name, c.NameSpan))
			continue
		}
		if _, exists := names.Variables[id]; exists {
			diags.PushError(diagnostics.NewDuplicateNameError(c.Name, c.NameSpan))
			continue
		}
		names.Chains[id] = c
	}

	return names
}

// Variable looks a variable up by source name.
func (n *Names) Variable(interner *StringInterner, name string) (*script.Variable, bool) {
	id, ok := interner.Lookup(name)
	if !ok {
		return nil, false
	}
	v, ok := n.Variables[id]
	return v, ok
}

// Chain looks an event chain up by source name.
func (n *Names) Chain(interner *StringInterner, name string) (*script.EventChain, bool) {
	id, ok := interner.Lookup(name)
	if !ok {
		return nil, false
	}
	c, ok := n.Chains[id]
	return c, ok
}

// objectKindOf maps an object variable type to its section name in the
// arena.
func objectKindOf(t script.VarType) string {
	switch t {
	case script.TypeMiner:
		return "miners"
	case script.TypeVehicle:
		return "vehicles"
	case script.TypeBuilding:
		return "buildings"
	case script.TypeCreature:
		return "creatures"
	}
	return ""
}
