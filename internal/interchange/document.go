// Package interchange handles the human-editable YAML documents used
// to share a match, a single team, or one character's build. These
// documents carry display names rather than engine ids, so importing
// them always resolves against the catalog.
package interchange

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Member is one character entry inside a match or team document.
type Member struct {
	Character string   `yaml:"character"`
	Costume   string   `yaml:"costume"`
	Capsules  []string `yaml:"capsules"`
	AI        string   `yaml:"ai"`
}

// MatchDocument shares one whole match.
type MatchDocument struct {
	MatchName string   `yaml:"matchName"`
	Team1Name string   `yaml:"team1Name"`
	Team2Name string   `yaml:"team2Name"`
	Team1     []Member `yaml:"team1"`
	Team2     []Member `yaml:"team2"`
}

// TeamDocument shares one team of one match.
type TeamDocument struct {
	MatchName string   `yaml:"matchName"`
	TeamName  string   `yaml:"teamName"`
	Members   []Member `yaml:"members"`
}

// CharacterDocument shares a single character build. MatchName,
// TeamName and Slot are context labels used for export file naming
// only; import ignores them.
type CharacterDocument struct {
	MatchName string   `yaml:"matchName,omitempty"`
	TeamName  string   `yaml:"teamName,omitempty"`
	Slot      int      `yaml:"slot,omitempty"`
	Character string   `yaml:"character"`
	Costume   string   `yaml:"costume"`
	Capsules  []string `yaml:"capsules"`
	AI        string   `yaml:"ai"`
}

// Kind discriminates the three interchange shapes.
type Kind int

const (
	KindUnknown Kind = iota
	KindMatch
	KindTeam
	KindCharacter
)

// ErrUnrecognized reports a YAML document matching none of the three
// interchange shapes.
var ErrUnrecognized = errors.New("unrecognized interchange document")

// Detect sniffs which interchange shape a YAML document is: team
// lists mark a match document, a members list a team document, and a
// character field a character build.
func Detect(data []byte) (Kind, error) {
	var probe struct {
		Team1     []yaml.Node `yaml:"team1"`
		Team2     []yaml.Node `yaml:"team2"`
		Members   []yaml.Node `yaml:"members"`
		Character *string     `yaml:"character"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return KindUnknown, fmt.Errorf("parse yaml: %w", err)
	}
	switch {
	case probe.Team1 != nil || probe.Team2 != nil:
		return KindMatch, nil
	case probe.Members != nil:
		return KindTeam, nil
	case probe.Character != nil:
		return KindCharacter, nil
	}
	return KindUnknown, ErrUnrecognized
}
