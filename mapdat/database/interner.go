// Package database holds the resolved form of a parsed map: the symbol
// table, entity arena, and name lookups the validator works against.
//
// The StringIds returned by Intern are only valid for the interner instance
// they were interned with.
package database

import (
	"sync"
)

// StringId represents an interned string identifier.
type StringId uint32

// StringInterner deduplicates the names a script mentions, keeping the name
// maps small for scripts that repeat the same identifiers hundreds of times.
type StringInterner struct {
	mu      sync.RWMutex
	strings []string
	index   map[string]StringId
}

// NewStringInterner creates a new StringInterner.
func NewStringInterner() *StringInterner {
	return &StringInterner{
		strings: make([]string, 0, 64),
		index:   make(map[string]StringId, 64),
	}
}

// Get returns the string for the given StringId, or empty string if not found.
func (si *StringInterner) Get(id StringId) string {
	si.mu.RLock()
	defer si.mu.RUnlock()

	if int(id) < len(si.strings) {
		return si.strings[id]
	}
	return ""
}

// Lookup returns the StringId for an already-interned string, or false.
func (si *StringInterner) Lookup(s string) (StringId, bool) {
	si.mu.RLock()
	defer si.mu.RUnlock()

	id, ok := si.index[s]
	return id, ok
}

// Intern interns a string and returns its StringId. Interning the same
// string twice returns the same id.
func (si *StringInterner) Intern(s string) StringId {
	si.mu.Lock()
	defer si.mu.Unlock()

	if id, ok := si.index[s]; ok {
		return id
	}

	id := StringId(len(si.strings))
	si.strings = append(si.strings, s)
	si.index[s] = id
	return id
}
