package setup

import (
	"strconv"

	"github.com/Ge0m/matchbuilder/internal/roster"
)

// BuildMatchSetup emits the match-setup document for the whole working
// set. Every sub-team carries exactly five members regardless of the
// actual team size; missing slots and slots without a character export
// as the sentinel.
func BuildMatchSetup(matches []*roster.Match) MatchSetup {
	out := MatchSetup{MatchCount: make(map[string]MatchEntry, len(matches))}
	for p, m := range matches {
		out.MatchCount[strconv.Itoa(p+1)] = MatchEntry{
			TargetTeaming: Teaming{
				Com1:    comTeam(m.Team1),
				Com2:    comTeam(m.Team2),
				Player:  emptyTeam(),
				Player2: emptyTeam(),
			},
		}
	}
	return out
}

func comTeam(team []roster.Slot) TeamSetting {
	members := make([]KeyRef, roster.TeamCap)
	for i := range members {
		members[i] = KeyRef{Key: Sentinel}
		if i < len(team) && team[i].ID != "" {
			members[i] = KeyRef{Key: team[i].ID}
		}
	}
	return TeamSetting{TeamMembers: members, ComLevel: comLevelHigh}
}

func emptyTeam() TeamSetting {
	members := make([]KeyRef, roster.TeamCap)
	for i := range members {
		members[i] = KeyRef{Key: Sentinel}
	}
	return TeamSetting{TeamMembers: members, ComLevel: comLevelMiddle}
}

// BuildItemSetup emits the item-setup document. Each distinct
// character id in a match gets one customize record; a character
// appearing on both teams has its full equip list duplicated into both
// computer-side target slots.
func BuildItemSetup(matches []*roster.Match) ItemSetup {
	out := ItemSetup{MatchCount: make(map[string]ItemMatchEntry, len(matches))}
	for p, m := range matches {
		entry := ItemMatchEntry{Customize: map[string]Customize{}}

		for _, sl := range distinctSlots(m) {
			items := equipList(sl)
			inTeam1 := teamHasID(m.Team1, sl.ID)
			inTeam2 := teamHasID(m.Team2, sl.ID)

			entry.Customize[CharacterKey(sl.ID)] = Customize{
				TargetSettings: []TargetSetting{
					sentinelTarget(),
					sentinelTarget(),
					equipTarget(items, inTeam1),
					equipTarget(items, inTeam2),
				},
			}
		}
		out.MatchCount[strconv.Itoa(p+1)] = entry
	}
	return out
}

// distinctSlots walks team1 then team2 and keeps the first slot seen
// for each non-empty character id; later duplicates are ignored.
func distinctSlots(m *roster.Match) []roster.Slot {
	var out []roster.Slot
	seen := map[string]bool{}
	for _, team := range [][]roster.Slot{m.Team1, m.Team2} {
		for _, sl := range team {
			if sl.ID == "" || seen[sl.ID] {
				continue
			}
			seen[sl.ID] = true
			out = append(out, sl)
		}
	}
	return out
}

// equipList flattens a slot's configuration: costume first, then each
// non-empty capsule in slot order, AI preset last. Nothing set exports
// as the single sentinel entry.
func equipList(sl roster.Slot) []KeyRef {
	var items []KeyRef
	if sl.Costume != "" {
		items = append(items, KeyRef{Key: sl.Costume})
	}
	for _, c := range sl.Capsules {
		if c != "" {
			items = append(items, KeyRef{Key: c})
		}
	}
	if sl.AI != "" {
		items = append(items, KeyRef{Key: sl.AI})
	}
	if len(items) == 0 {
		items = []KeyRef{{Key: Sentinel}}
	}
	return items
}

func sentinelTarget() TargetSetting {
	return TargetSetting{
		EquipItems:         []KeyRef{{Key: Sentinel}},
		SameCharacterEquip: []KeyRef{},
	}
}

func equipTarget(items []KeyRef, member bool) TargetSetting {
	if !member {
		return sentinelTarget()
	}
	return TargetSetting{
		EquipItems:         append([]KeyRef(nil), items...),
		SameCharacterEquip: []KeyRef{},
	}
}

func teamHasID(team []roster.Slot, id string) bool {
	for _, sl := range team {
		if sl.ID == id {
			return true
		}
	}
	return false
}
