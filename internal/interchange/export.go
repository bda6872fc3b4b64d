package interchange

import (
	"fmt"
	"strings"

	"github.com/Ge0m/matchbuilder/internal/catalog"
	"github.com/Ge0m/matchbuilder/internal/roster"

	"gopkg.in/yaml.v3"
)

// fallbackCharacterFile names a character-build download whose
// character field is blank.
const fallbackCharacterFile = "character_build"

// BuildMatchDocument renders a whole match into the display-name
// interchange shape.
func BuildMatchDocument(m *roster.Match, cat *catalog.Catalog) MatchDocument {
	return MatchDocument{
		MatchName: m.Name,
		Team1Name: m.Team1Name,
		Team2Name: m.Team2Name,
		Team1:     teamToMembers(m.Team1, cat),
		Team2:     teamToMembers(m.Team2, cat),
	}
}

// BuildTeamDocument renders one team of a match.
func BuildTeamDocument(m *roster.Match, team int, cat *catalog.Catalog) (TeamDocument, error) {
	t := m.Team(team)
	if t == nil {
		return TeamDocument{}, fmt.Errorf("no such team %d", team)
	}
	name := m.Team1Name
	if team == 2 {
		name = m.Team2Name
	}
	return TeamDocument{
		MatchName: m.Name,
		TeamName:  name,
		Members:   teamToMembers(*t, cat),
	}, nil
}

// BuildCharacterDocument renders a single slot, with the match, team
// and 1-based slot labels carried as context for file naming.
func BuildCharacterDocument(m *roster.Match, team, slot int, cat *catalog.Catalog) (CharacterDocument, error) {
	t := m.Team(team)
	if t == nil {
		return CharacterDocument{}, fmt.Errorf("no such team %d", team)
	}
	if slot < 0 || slot >= len(*t) {
		return CharacterDocument{}, fmt.Errorf("team %d has no slot %d", team, slot)
	}
	teamName := m.Team1Name
	if team == 2 {
		teamName = m.Team2Name
	}
	mb := slotToMember((*t)[slot], cat)
	return CharacterDocument{
		MatchName: m.Name,
		TeamName:  teamName,
		Slot:      slot + 1,
		Character: mb.Character,
		Costume:   mb.Costume,
		Capsules:  mb.Capsules,
		AI:        mb.AI,
	}, nil
}

// Marshal renders any interchange document as YAML.
func Marshal(doc any) ([]byte, error) {
	b, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal interchange document: %w", err)
	}
	return b, nil
}

func teamToMembers(team []roster.Slot, cat *catalog.Catalog) []Member {
	members := make([]Member, 0, len(team))
	for _, sl := range team {
		members = append(members, slotToMember(sl, cat))
	}
	return members
}

// slotToMember maps canonical ids back to display names. The capsule
// list stays at its full width so positions survive the round trip;
// unset fields export as empty strings.
func slotToMember(sl roster.Slot, cat *catalog.Catalog) Member {
	name := sl.Name
	if name == "" && sl.ID != "" {
		name = catalog.NameOf(cat.Characters, sl.ID)
	}
	mb := Member{
		Character: name,
		Capsules:  make([]string, len(sl.Capsules)),
	}
	if sl.Costume != "" {
		mb.Costume = catalog.NameOf(cat.Costumes, sl.Costume)
	}
	for i, c := range sl.Capsules {
		if c != "" {
			mb.Capsules[i] = catalog.NameOf(cat.Capsules, c)
		}
	}
	if sl.AI != "" {
		mb.AI = catalog.NameOf(cat.AIProfiles, sl.AI)
	}
	return mb
}

// FileName derives a download file name from a name field: whitespace
// runs collapse to single underscores. An empty result falls back to
// the provided default.
func FileName(name, fallback string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	out := strings.Join(fields, "_")
	if out == "" {
		out = fallback
	}
	return out + ".yaml"
}

// MatchFileName names a match-document download.
func MatchFileName(doc MatchDocument) string {
	return FileName(doc.MatchName, "match")
}

// TeamFileName names a team-document download.
func TeamFileName(doc TeamDocument) string {
	return FileName(doc.TeamName, "team")
}

// CharacterFileName names a character-build download, falling back to
// a fixed placeholder when the character field is blank.
func CharacterFileName(doc CharacterDocument) string {
	return FileName(doc.Character, fallbackCharacterFile)
}
