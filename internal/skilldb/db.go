// Package skilldb loads the embedded skill dictionary: the canonical
// name, type, and cluster id for every known skill. The dictionary is
// loaded once at startup and read-only afterwards, so it is safe for
// unsynchronized concurrent reads across requests.
package skilldb

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed data/skill_db.json
var rawDB []byte

// Entry is one skill dictionary record.
type Entry struct {
	ID      string `json:"-"`
	Name    string `json:"skill_name"`
	Type    string `json:"skill_type"`
	Cluster int    `json:"skill_cluster"`
}

// DB is the loaded skill dictionary.
type DB struct {
	entries  []Entry
	byName   map[string]int
	byID     map[string]int
	maxWords int
}

// Load parses the embedded dictionary. Entries are ordered by id so that
// iteration order is stable across runs.
func Load() (*DB, error) {
	var raw map[string]Entry
	if err := json.Unmarshal(rawDB, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse skill dictionary: %w", err)
	}

	db := &DB{
		entries: make([]Entry, 0, len(raw)),
		byName:  make(map[string]int, len(raw)),
		byID:    make(map[string]int, len(raw)),
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		e := raw[id]
		e.ID = id
		e.Name = strings.ToLower(strings.TrimSpace(e.Name))
		if e.Name == "" {
			continue
		}
		idx := len(db.entries)
		db.entries = append(db.entries, e)
		if _, dup := db.byName[e.Name]; !dup {
			db.byName[e.Name] = idx
		}
		db.byID[id] = idx
		if n := len(strings.Fields(e.Name)); n > db.maxWords {
			db.maxWords = n
		}
	}

	if len(db.entries) == 0 {
		return nil, fmt.Errorf("skill dictionary is empty")
	}
	return db, nil
}

// Len returns the number of dictionary entries.
func (d *DB) Len() int { return len(d.entries) }

// Entries returns all entries in dictionary order. Callers must not mutate
// the returned slice.
func (d *DB) Entries() []Entry { return d.entries }

// Names returns all canonical skill names in dictionary order.
func (d *DB) Names() []string {
	names := make([]string, len(d.entries))
	for i, e := range d.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup finds an entry by its canonical name. The name is lowercased and
// trimmed before lookup.
func (d *DB) Lookup(name string) (Entry, bool) {
	idx, ok := d.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Entry{}, false
	}
	return d.entries[idx], true
}

// LookupID finds an entry by dictionary id.
func (d *DB) LookupID(id string) (Entry, bool) {
	idx, ok := d.byID[id]
	if !ok {
		return Entry{}, false
	}
	return d.entries[idx], true
}

// At returns the entry at a dictionary-order index. Used by the vector
// index, whose rows are laid out in the same order.
func (d *DB) At(i int) Entry { return d.entries[i] }

// MaxWords returns the word count of the longest dictionary name. The
// n-gram matcher uses it to bound its window.
func (d *DB) MaxWords() int { return d.maxWords }
