package roster

import (
	"fmt"

	"github.com/Ge0m/matchbuilder/internal/catalog"
)

// Field identifies one directly editable slot field.
type Field int

const (
	FieldName Field = iota
	FieldID
	FieldCostume
	FieldAI
)

// SetField writes one field of one existing slot. Setting FieldID to
// an id the catalog knows also refreshes the display name and clears
// the costume, since the old costume belonged to the old character; an
// unknown id is stored as-is with the rest of the slot untouched.
func (m *Match) SetField(team, index int, field Field, value string, cat *catalog.Catalog) error {
	t := m.Team(team)
	if t == nil {
		return fmt.Errorf("no such team %d", team)
	}
	if index < 0 || index >= len(*t) {
		return fmt.Errorf("no slot %d", index)
	}
	sl := &(*t)[index]

	switch field {
	case FieldName:
		sl.Name = value
	case FieldID:
		sl.ID = value
		if cat != nil {
			if e, ok := catalog.Find(cat.Characters, value); ok {
				sl.Name = e.Name
				sl.Costume = ""
			}
		}
	case FieldCostume:
		sl.Costume = value
	case FieldAI:
		sl.AI = value
	default:
		return fmt.Errorf("no such field %d", field)
	}
	return nil
}

// SetCapsule writes one capsule position of one existing slot. The
// capsule list is forced to full width first, so a slot that arrived
// short is repaired rather than indexed out of range.
func (m *Match) SetCapsule(team, index, capsule int, value string) error {
	t := m.Team(team)
	if t == nil {
		return fmt.Errorf("no such team %d", team)
	}
	if index < 0 || index >= len(*t) {
		return fmt.Errorf("no slot %d", index)
	}
	if capsule < 0 || capsule >= CapsuleCount {
		return fmt.Errorf("no capsule slot %d", capsule)
	}
	sl := &(*t)[index]
	sl.Capsules = NormalizeCapsules(sl.Capsules)
	sl.Capsules[capsule] = value
	return nil
}
