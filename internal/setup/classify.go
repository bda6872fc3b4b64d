package setup

import "strings"

// ItemKind buckets an equip-list entry on import. The item setup
// stores a character's costume, capsules and AI preset as one flat
// list, so the split back out relies on the id prefix conventions the
// catalog sources follow.
type ItemKind int

const (
	KindCapsule ItemKind = iota
	KindCostume
	KindAI
)

// Prefix conventions, kept as data so a catalog change does not touch
// the reconciliation flow.
var (
	costumeIDPrefixes = []string{"Costume_"}
	aiIDPrefixes      = []string{"AI_"}
)

// ClassifyEquipID buckets a single equip id. Anything matching neither
// convention is treated as a capsule, including ids the catalog does
// not know.
func ClassifyEquipID(id string) ItemKind {
	for _, p := range costumeIDPrefixes {
		if strings.HasPrefix(id, p) {
			return KindCostume
		}
	}
	for _, p := range aiIDPrefixes {
		if strings.HasPrefix(id, p) {
			return KindAI
		}
	}
	return KindCapsule
}
