package interchange

import (
	"fmt"

	"github.com/Ge0m/matchbuilder/internal/catalog"
	"github.com/Ge0m/matchbuilder/internal/roster"

	"gopkg.in/yaml.v3"
)

// ImportMatch replaces both teams of the target match from a match
// document. Both teams are reset to five blank slots before the
// document is parsed; a parse failure leaves that reset in place, by
// contract with the original tool. An unresolved character name is
// kept as a label with an empty id, while unresolved costume, capsule
// and AI values are dropped to empty.
func ImportMatch(m *roster.Match, data []byte, fileName string, cat *catalog.Catalog) error {
	m.ResetTeams()

	var doc MatchDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", fileName, err)
	}
	if doc.Team1 == nil && doc.Team2 == nil {
		return fmt.Errorf("%s: missing team1/team2 member lists", fileName)
	}

	if doc.MatchName != "" {
		m.Name = doc.MatchName
	}
	if doc.Team1Name != "" {
		m.Team1Name = doc.Team1Name
	}
	if doc.Team2Name != "" {
		m.Team2Name = doc.Team2Name
	}
	m.Team1 = membersToTeam(doc.Team1, cat)
	m.Team2 = membersToTeam(doc.Team2, cat)
	return nil
}

// ImportTeam replaces one team of the target match from a team
// document, under the same reset-before-parse contract as ImportMatch.
func ImportTeam(m *roster.Match, team int, data []byte, fileName string, cat *catalog.Catalog) error {
	t := m.Team(team)
	if t == nil {
		return fmt.Errorf("no such team %d", team)
	}
	m.ResetTeam(team)

	var doc TeamDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", fileName, err)
	}
	if doc.Members == nil {
		return fmt.Errorf("%s: missing members list", fileName)
	}

	if doc.TeamName != "" {
		switch team {
		case 1:
			m.Team1Name = doc.TeamName
		case 2:
			m.Team2Name = doc.TeamName
		}
	}
	*t = membersToTeam(doc.Members, cat)
	return nil
}

// ImportCharacter replaces exactly one slot from a character build
// document. The slot is swapped in whole via roster.ReplaceSlot so an
// interrupted resolution can never leave a half-updated slot.
func ImportCharacter(m *roster.Match, team, slot int, data []byte, fileName string, cat *catalog.Catalog) error {
	t := m.Team(team)
	if t == nil {
		return fmt.Errorf("no such team %d", team)
	}

	var doc CharacterDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", fileName, err)
	}

	member := Member{
		Character: doc.Character,
		Costume:   doc.Costume,
		Capsules:  doc.Capsules,
		AI:        doc.AI,
	}
	*t = roster.ReplaceSlot(*t, slot, memberToSlot(member, cat))
	return nil
}

func membersToTeam(members []Member, cat *catalog.Catalog) []roster.Slot {
	team := make([]roster.Slot, 0, len(members))
	for _, mb := range members {
		team = append(team, memberToSlot(mb, cat))
	}
	return team
}

// memberToSlot resolves a display-name record into a normalized slot.
// The character keeps its literal name on a miss; every other field is
// coerced to empty on a miss.
func memberToSlot(mb Member, cat *catalog.Catalog) roster.Slot {
	sl := roster.NewSlot()

	if id := catalog.Resolve(mb.Character, cat.Characters); id != "" {
		sl.ID = id
		sl.Name = cat.CharacterName(id)
	} else {
		sl.Name = mb.Character
	}

	sl.Costume = catalog.Resolve(mb.Costume, cat.Costumes)
	for i, c := range mb.Capsules {
		if i >= roster.CapsuleCount {
			break
		}
		sl.Capsules[i] = catalog.Resolve(c, cat.Capsules)
	}
	sl.AI = catalog.Resolve(mb.AI, cat.AIProfiles)
	return sl
}
