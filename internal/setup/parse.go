package setup

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/Ge0m/matchbuilder/internal/catalog"
	"github.com/Ge0m/matchbuilder/internal/roster"

	json "github.com/goccy/go-json"
)

// ErrPairIncomplete reports that the import did not receive one match
// setup and one item setup.
var ErrPairIncomplete = errors.New("both files are required: match setup and item setup")

// File is one import file with the name used in error messages.
type File struct {
	Name string
	Data []byte
}

// probeEntry mirrors just enough of either document to tell the two
// shapes apart: an item setup is the file whose match entries carry a
// customize map. The document format has no explicit type tag, so this
// probe is part of the external contract.
type probeEntry struct {
	Customize map[string]json.RawMessage `json:"customize"`
}

type probeDoc struct {
	MatchCount map[string]probeEntry `json:"matchCount"`
}

func isItemSetup(doc probeDoc) bool {
	for _, e := range doc.MatchCount {
		// Key presence, not non-emptiness: a match with no characters
		// exports an empty customize map and must still discriminate.
		if e.Customize != nil {
			return true
		}
	}
	return false
}

// ParsePair decodes two import files in either order into the typed
// document pair. A JSON parse failure aborts the whole import naming
// the offending file; receiving two match setups or two item setups is
// the same error as receiving only one of the pair.
func ParsePair(a, b File) (MatchSetup, ItemSetup, error) {
	probes := [2]probeDoc{}
	for i, f := range [2]File{a, b} {
		if err := json.Unmarshal(f.Data, &probes[i]); err != nil {
			return MatchSetup{}, ItemSetup{}, fmt.Errorf("parse %s: %w", f.Name, err)
		}
	}

	matchFile, itemFile := a, b
	switch {
	case isItemSetup(probes[0]) && !isItemSetup(probes[1]):
		matchFile, itemFile = b, a
	case !isItemSetup(probes[0]) && isItemSetup(probes[1]):
		// already ordered
	default:
		return MatchSetup{}, ItemSetup{}, ErrPairIncomplete
	}

	var ms MatchSetup
	if err := json.Unmarshal(matchFile.Data, &ms); err != nil {
		return MatchSetup{}, ItemSetup{}, fmt.Errorf("parse %s: %w", matchFile.Name, err)
	}
	var is ItemSetup
	if err := json.Unmarshal(itemFile.Data, &is); err != nil {
		return MatchSetup{}, ItemSetup{}, fmt.Errorf("parse %s: %w", itemFile.Name, err)
	}
	if len(ms.MatchCount) == 0 {
		return MatchSetup{}, ItemSetup{}, ErrPairIncomplete
	}
	return ms, is, nil
}

// Reconcile folds a parsed document pair back into roster matches.
// Matches get sequential 1-based ids and default names; the documents
// do not carry names, so they cannot round-trip. Team entries that are
// the sentinel or that resolve to no known character are dropped, so
// teams may come back shorter than five. Resolution misses inside
// customize records are skipped silently.
func Reconcile(ms MatchSetup, is ItemSetup, cat *catalog.Catalog) []*roster.Match {
	keys := sortedMatchKeys(ms.MatchCount)

	matches := make([]*roster.Match, 0, len(keys))
	for i, key := range keys {
		entry := ms.MatchCount[key]
		m := &roster.Match{
			ID:        i + 1,
			Name:      fmt.Sprintf("Match %d", i+1),
			Team1Name: "Team 1",
			Team2Name: "Team 2",
			Team1:     reconcileTeam(entry.TargetTeaming.Com1, cat),
			Team2:     reconcileTeam(entry.TargetTeaming.Com2, cat),
		}
		applyCustomize(m, is.MatchCount[key].Customize, cat)
		matches = append(matches, m)
	}
	return matches
}

// sortedMatchKeys orders the 1-based position keys numerically;
// non-numeric keys are ignored.
func sortedMatchKeys(entries map[string]MatchEntry) []string {
	nums := make([]int, 0, len(entries))
	for k := range entries {
		n, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	sort.Ints(nums)
	keys := make([]string, len(nums))
	for i, n := range nums {
		keys[i] = strconv.Itoa(n)
	}
	return keys
}

// reconcileTeam reads the fixed five-wide member array back into bare
// slots carrying only identity. Extra members beyond five are ignored.
func reconcileTeam(ts TeamSetting, cat *catalog.Catalog) []roster.Slot {
	var team []roster.Slot
	for i, member := range ts.TeamMembers {
		if i >= roster.TeamCap {
			break
		}
		if member.Key == "" || member.Key == Sentinel {
			continue
		}
		id := catalog.Resolve(member.Key, cat.Characters)
		if id == "" {
			continue
		}
		sl := roster.NewSlot()
		sl.ID = id
		sl.Name = cat.CharacterName(id)
		team = append(team, sl)
	}
	return team
}

// applyCustomize splits each character's combined equip list back into
// costume, capsules and AI preset, and writes the result onto every
// slot holding that character on either team. Characters the catalog
// cannot resolve, or that are not on either team, are skipped.
func applyCustomize(m *roster.Match, customize map[string]Customize, cat *catalog.Catalog) {
	for key, c := range customize {
		rawID, ok := ParseCharacterKey(key)
		if !ok {
			continue
		}
		id := catalog.Resolve(rawID, cat.Characters)
		if id == "" {
			continue
		}

		costume, capsules, ai := splitEquip(combinedEquip(c))
		for _, team := range [2][]roster.Slot{m.Team1, m.Team2} {
			for i := range team {
				if team[i].ID != id {
					continue
				}
				team[i].Costume = costume
				// Fresh copy per slot so two teams never share a
				// backing array.
				team[i].Capsules = roster.NormalizeCapsules(capsules)
				team[i].AI = ai
			}
		}
	}
}

// combinedEquip concatenates the two computer-side target slots,
// dropping sentinels. A character fielded by both teams yields its
// list twice; splitEquip tolerates the duplication.
func combinedEquip(c Customize) []string {
	var items []string
	for _, idx := range [2]int{2, 3} {
		if idx >= len(c.TargetSettings) {
			continue
		}
		for _, ref := range c.TargetSettings[idx].EquipItems {
			if ref.Key == "" || ref.Key == Sentinel {
				continue
			}
			items = append(items, ref.Key)
		}
	}
	return items
}

func splitEquip(items []string) (costume string, capsules []string, ai string) {
	for _, id := range items {
		switch ClassifyEquipID(id) {
		case KindCostume:
			costume = id
		case KindAI:
			ai = id
		default:
			capsules = append(capsules, id)
		}
	}
	return costume, roster.NormalizeCapsules(capsules), ai
}
