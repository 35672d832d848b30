package database

import (
	"github.com/manicmap/mapdat-go/mapdat/core"
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/parsing/grid"
	"github.com/manicmap/mapdat-go/mapdat/parsing/keyvalue"
	"github.com/manicmap/mapdat-go/mapdat/parsing/lexer"
	"github.com/manicmap/mapdat-go/mapdat/parsing/objects"
	"github.com/manicmap/mapdat-go/mapdat/parsing/script"
	"github.com/manicmap/mapdat-go/mapdat/parsing/section"
)

// MapDatabase is the parsed document: every section decoded into its model,
// plus the name tables and entity arena the validations run against. It is
// immutable once built.
type MapDatabase struct {
	file     core.SourceFile
	sections []section.Section

	info      keyvalue.Info
	tiles     *grid.Grid
	height    *grid.Grid
	blocks    *grid.Grid
	resources *grid.ResourceSet

	objects    map[string][]objects.ObjectRecord
	objectives []keyvalue.Objective
	hazards    map[string][]keyvalue.TimedEvent
	text       map[string]string

	scriptModel   *script.ScriptModel
	scriptSection *section.Section

	names    Names
	arena    *EntityArena
	interner *StringInterner
}

// NewMapDatabase parses every section of file and assembles the document.
// It never fails: problems go into diags and the returned database holds
// whatever could be recovered.
func NewMapDatabase(file core.SourceFile, diags *diagnostics.Diagnostics) *MapDatabase {
	db := &MapDatabase{
		file:     file,
		objects:  make(map[string][]objects.ObjectRecord),
		hazards:  make(map[string][]keyvalue.TimedEvent),
		text:     make(map[string]string),
		arena:    NewEntityArena(),
		interner: NewStringInterner(),
	}

	db.sections = section.Split(file, diags)

	// Decode info before everything else so dimension checks have the
	// declared rowcount/colcount no matter where the section appears.
	for i := range db.sections {
		sec := &db.sections[i]
		if sec.Kind == section.KindKeyValue && sec.Name == "info" {
			pairs := keyvalue.Parse(*sec, diags)
			db.info = keyvalue.DecodeInfo(pairs, diags)
			break
		}
	}

	for i := range db.sections {
		sec := &db.sections[i]
		switch sec.Kind {
		case section.KindGrid:
			g := grid.ParseGrid(*sec, diags)
			switch sec.Name {
			case "tiles":
				db.tiles = g
			case "height":
				db.height = g
			case "blocks":
				db.blocks = g
			}
		case section.KindResource:
			db.resources = grid.ParseResources(*sec, diags)
		case section.KindObjectList:
			records := objects.ParseObjects(*sec, diags)
			db.objects[sec.Name] = records
			for _, rec := range records {
				db.arena.Add(sec.Name, rec.Key())
			}
		case section.KindTimed:
			pairs := keyvalue.Parse(*sec, diags)
			db.hazards[sec.Name] = keyvalue.DecodeTimed(sec.Name, pairs, diags)
		case section.KindObjectives:
			pairs := keyvalue.Parse(*sec, diags)
			db.objectives = keyvalue.DecodeObjectives(pairs, diags)
		case section.KindText:
			db.text[sec.Name] = sec.Body
		case section.KindScript:
			db.scriptSection = sec
			tokens := lexer.Tokenize(sec.Body, lexer.ModeScript, sec.BodySpan.Start, sec.BodyLine)
			db.scriptModel = script.ParseScript(tokens, file.Data, diags)
		}
	}

	db.names = ResolveNames(db.scriptModel, db.interner, diags)
	db.resolveBindings()

	return db
}

// resolveBindings attaches object-typed variables to the arena entities
// their initializers name. Binding uniqueness is checked by validation, not
// here.
func (db *MapDatabase) resolveBindings() {
	for id, v := range db.names.Variables {
		if !v.Type.IsObjectType() || !v.HasInit {
			continue
		}
		kind := objectKindOf(v.Type)
		if kind == "" {
			continue
		}
		if h, ok := db.arena.ByKey(kind, v.BindingKey()); ok {
			db.names.Bindings[id] = h
		}
	}
}

// File returns the source file the database was built from.
func (db *MapDatabase) File() core.SourceFile { return db.file }

// Sections returns the raw section list in source order.
func (db *MapDatabase) Sections() []section.Section { return db.sections }

// Section returns the first section with the given name, or nil.
func (db *MapDatabase) Section(name string) *section.Section {
	for i := range db.sections {
		if db.sections[i].Name == name {
			return &db.sections[i]
		}
	}
	return nil
}

// Info returns the decoded info section.
func (db *MapDatabase) Info() keyvalue.Info { return db.info }

// Tiles returns the tile grid, or nil when the section is absent.
func (db *MapDatabase) Tiles() *grid.Grid { return db.tiles }

// Height returns the height grid, or nil when the section is absent.
func (db *MapDatabase) Height() *grid.Grid { return db.height }

// Blocks returns the blocks grid, or nil when the section is absent.
func (db *MapDatabase) Blocks() *grid.Grid { return db.blocks }

// Resources returns the crystal and ore grids, or nil.
func (db *MapDatabase) Resources() *grid.ResourceSet { return db.resources }

// Objects returns the records of one object-list section.
func (db *MapDatabase) Objects(sectionName string) []objects.ObjectRecord {
	return db.objects[sectionName]
}

// ObjectSections returns the names of the object-list sections present.
func (db *MapDatabase) ObjectSections() []string {
	out := make([]string, 0, len(db.objects))
	for name := range db.objects {
		out = append(out, name)
	}
	return out
}

// Objectives returns the decoded objectives, if any.
func (db *MapDatabase) Objectives() []keyvalue.Objective { return db.objectives }

// Hazards returns the timed events of one hazard section.
func (db *MapDatabase) Hazards(sectionName string) []keyvalue.TimedEvent {
	return db.hazards[sectionName]
}

// Text returns the body of a free-text section.
func (db *MapDatabase) Text(sectionName string) (string, bool) {
	body, ok := db.text[sectionName]
	return body, ok
}

// Script returns the parsed script model, or nil when there is no script
// section.
func (db *MapDatabase) Script() *script.ScriptModel { return db.scriptModel }

// ScriptSection returns the raw script section, or nil.
func (db *MapDatabase) ScriptSection() *section.Section { return db.scriptSection }

// Names returns the resolved script name tables.
func (db *MapDatabase) Names() *Names { return &db.names }

// Arena returns the entity arena populated from the object lists.
func (db *MapDatabase) Arena() *EntityArena { return db.arena }

// Interner returns the string interner backing the name tables.
func (db *MapDatabase) Interner() *StringInterner { return db.interner }
