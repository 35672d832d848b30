package database

// Entity storage for object bindings. A script variable of an object type
// binds a specific entity instance, not its id: once the entity dies, the
// binding is stale. Each entity gets a stable slot plus a generation
// counter; a Handle stores both, and a lookup whose generation no longer
// matches reports staleness instead of dangling.

// Handle identifies one entity generation in the arena.
type Handle struct {
	Slot int
	Gen  uint32
}

// IsZero reports whether the handle was never bound.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

type arenaSlot struct {
	gen  uint32
	kind string
	key  string
	live bool
}

// EntityArena owns every entity declared in the map's object-list sections.
type EntityArena struct {
	slots []arenaSlot
	byKey map[string]int
}

// NewEntityArena creates an empty arena.
func NewEntityArena() *EntityArena {
	return &EntityArena{
		slots: make([]arenaSlot, 1), // slot 0 stays dead so Handle{} is never valid
		byKey: make(map[string]int),
	}
}

// Add registers an entity and returns its handle. kind is the section name
// (miners, vehicles, buildings, creatures); key is the record's identity
// ("id" or "row,col").
func (a *EntityArena) Add(kind, key string) Handle {
	slot := len(a.slots)
	a.slots = append(a.slots, arenaSlot{gen: 1, kind: kind, key: key, live: true})
	a.byKey[kind+"/"+key] = slot
	return Handle{Slot: slot, Gen: 1}
}

// ByKey finds the live entity with the given kind and key.
func (a *EntityArena) ByKey(kind, key string) (Handle, bool) {
	slot, ok := a.byKey[kind+"/"+key]
	if !ok || !a.slots[slot].live {
		return Handle{}, false
	}
	return Handle{Slot: slot, Gen: a.slots[slot].gen}, true
}

// Lookup resolves a handle. ok is false when the handle is stale: the slot
// was reused or the entity was destroyed after binding.
func (a *EntityArena) Lookup(h Handle) (kind, key string, ok bool) {
	if h.Slot <= 0 || h.Slot >= len(a.slots) {
		return "", "", false
	}
	s := a.slots[h.Slot]
	if !s.live || s.gen != h.Gen {
		return "", "", false
	}
	return s.kind, s.key, true
}

// Kill marks the entity destroyed and bumps the slot generation, so every
// outstanding handle to it reads as stale.
func (a *EntityArena) Kill(h Handle) {
	if h.Slot <= 0 || h.Slot >= len(a.slots) {
		return
	}
	s := &a.slots[h.Slot]
	if s.gen != h.Gen {
		return
	}
	s.live = false
	s.gen++
	delete(a.byKey, s.kind+"/"+s.key)
}

// Len returns the number of entities ever registered.
func (a *EntityArena) Len() int {
	return len(a.slots) - 1
}
