package database

// Reserved-word checking for script identifiers. A variable or chain name
// that shadows any of these changes what existing statements mean, so the
// collision is an error even when the engine happens to accept the file.

// triggerKinds lists every event a trigger head can name.
var triggerKinds = map[string]bool{
	"enter":     true,
	"drill":     true,
	"change":    true,
	"reinforce": true,
	"time":      true,
	"hover":     true,
	"click":     true,
	"walk":      true,
	"drive":     true,
	"fly":       true,
	"laserhit":  true,
	"built":     true,
	"new":       true,
	"dead":      true,
}

// commandNames lists every event command a chain statement can invoke.
var commandNames = map[string]bool{
	"msg":          true,
	"wait":         true,
	"truewait":     true,
	"place":        true,
	"drill":        true,
	"emerge":       true,
	"win":          true,
	"lose":         true,
	"sound":        true,
	"pan":          true,
	"shake":        true,
	"speed":        true,
	"resume":       true,
	"pause":        true,
	"reset":        true,
	"heal":         true,
	"teleport":     true,
	"enable":       true,
	"disable":      true,
	"hidearrow":    true,
	"showarrow":    true,
	"highlight":    true,
	"save":         true,
	"lastminer":    true,
	"lastvehicle":  true,
	"lastbuilding": true,
	"lastcreature": true,
	// Read-write macros double as mutation commands.
	"crystals":     true,
	"ore":          true,
	"studs":        true,
	"air":          true,
	"erosionscale": true,
}

// typeKeywords lists the variable type names.
var typeKeywords = map[string]bool{
	"int":      true,
	"float":    true,
	"bool":     true,
	"string":   true,
	"arrow":    true,
	"timer":    true,
	"miner":    true,
	"vehicle":  true,
	"building": true,
	"creature": true,
	"intarray": true,
}

// structuralKeywords are grammar words with no other home.
var structuralKeywords = map[string]bool{
	"if":    true,
	"when":  true,
	"and":   true,
	"or":    true,
	"not":   true,
	"true":  true,
	"false": true,
	"init":  true,
	"tick":  true,
}

// IsTriggerKind reports whether the name is a trigger event.
func IsTriggerKind(name string) bool {
	return triggerKinds[name]
}

// IsCommandName reports whether the name is a built-in command.
func IsCommandName(name string) bool {
	return commandNames[name]
}

// IsCaptureCommand reports whether the command rebinds an object variable.
func IsCaptureCommand(name string) bool {
	switch name {
	case "save", "lastminer", "lastvehicle", "lastbuilding", "lastcreature":
		return true
	}
	return false
}

// ReservedKindOf returns what kind of reserved word the name is, or "" when
// the name is free. The check is case-sensitive: "Time" is a legal variable
// name, "time" is not.
func ReservedKindOf(name string) string {
	switch {
	case IsMacro(name):
		return "macro"
	case triggerKinds[name]:
		return "trigger"
	case commandNames[name]:
		return "command"
	case typeKeywords[name]:
		return "type"
	case structuralKeywords[name]:
		return "keyword"
	}
	return ""
}
