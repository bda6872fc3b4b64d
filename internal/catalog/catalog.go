// Package catalog holds the per-session reference data: playable
// characters and the equippable items (costumes, capsules, AI presets)
// they can carry. The catalog is loaded once at startup and is
// read-only afterwards.
package catalog

import "strings"

// Entry is one catalog row. ID is the engine's stable key, Name the
// display label shown to the user. ExclusiveTo, when set on a costume,
// names the only character the costume is offered for; this is an
// advisory filter for presentation, not an enforced constraint.
type Entry struct {
	ID          string
	Name        string
	ExclusiveTo string
}

// Catalog groups entries by kind. Any of the lists may be empty: when
// catalog sources fail to load, the session continues with an empty
// catalog and resolution simply misses.
type Catalog struct {
	Characters []Entry
	Costumes   []Entry
	Capsules   []Entry
	AIProfiles []Entry
}

// Resolve maps a value that may be either a stable id or a display
// name to the canonical id within entries. Id identity is checked
// first so an adversarial name that collides with another entry's id
// cannot shadow it. Name matching is case-insensitive and ignores
// leading/trailing whitespace. A miss returns "".
func Resolve(value string, entries []Entry) string {
	if value == "" {
		return ""
	}
	for _, e := range entries {
		if e.ID == value {
			return e.ID
		}
	}
	want := strings.ToLower(strings.TrimSpace(value))
	if want == "" {
		return ""
	}
	for _, e := range entries {
		if strings.ToLower(strings.TrimSpace(e.Name)) == want {
			return e.ID
		}
	}
	return ""
}

// Find returns the entry with the given id. Duplicated ids resolve to
// the first occurrence.
func Find(entries []Entry, id string) (Entry, bool) {
	if id == "" {
		return Entry{}, false
	}
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// NameOf returns the display name for id, falling back to the raw id
// when the catalog has no entry for it.
func NameOf(entries []Entry, id string) string {
	if e, ok := Find(entries, id); ok {
		return e.Name
	}
	return id
}

// CharacterName resolves a character id to its display name, or ""
// when unknown.
func (c *Catalog) CharacterName(id string) string {
	if e, ok := Find(c.Characters, id); ok {
		return e.Name
	}
	return ""
}

// CostumesFor lists the costumes offered for the named character.
func (c *Catalog) CostumesFor(characterName string) []Entry {
	var out []Entry
	for _, e := range c.Costumes {
		if e.ExclusiveTo == characterName {
			out = append(out, e)
		}
	}
	return out
}
