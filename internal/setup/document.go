// Package setup produces and reconciles the two correlated JSON
// documents the game engine consumes: the match setup (who fights) and
// the item setup (what each character has equipped). The document
// shapes are an external fixed contract; the literal "None" sentinel
// and the wrapped character key exist only at this boundary.
package setup

import (
	"fmt"
	"regexp"
)

// Sentinel marks "no selection" in both documents.
const Sentinel = "None"

// Com difficulty labels are constant policy: both computer-controlled
// sub-teams run high, the two human sub-teams middle.
const (
	comLevelHigh   = "High"
	comLevelMiddle = "Middle"
)

// KeyRef is the single-field object both documents use for member and
// item references.
type KeyRef struct {
	Key string `json:"key"`
}

// TeamSetting is one sub-team in the match setup: always exactly five
// members, padded with the sentinel.
type TeamSetting struct {
	TeamMembers []KeyRef `json:"teamMembers"`
	ComLevel    string   `json:"comLevel"`
}

// Teaming carries the four sub-teams of one match. Player and Player2
// are reserved for human-controlled slots and always export empty.
type Teaming struct {
	Com1    TeamSetting `json:"com1"`
	Com2    TeamSetting `json:"com2"`
	Player  TeamSetting `json:"player"`
	Player2 TeamSetting `json:"player2"`
}

// MatchEntry is one match in the match-setup document.
type MatchEntry struct {
	TargetTeaming Teaming `json:"targetTeaming"`
}

// MatchSetup is the full match-setup document, keyed by 1-based match
// position rendered as a decimal string.
type MatchSetup struct {
	MatchCount map[string]MatchEntry `json:"matchCount"`
}

// TargetSetting is one of the four positional equip targets in a
// customize record: indices 0-1 are the reserved human slots, 2 the
// com1 side, 3 the com2 side.
type TargetSetting struct {
	EquipItems         []KeyRef `json:"equipItems"`
	SameCharacterEquip []KeyRef `json:"sameCharacterEquip"`
}

// Customize is one character's equip record.
type Customize struct {
	TargetSettings []TargetSetting `json:"targetSettings"`
}

// ItemMatchEntry is one match in the item-setup document, keyed by the
// wrapped character key.
type ItemMatchEntry struct {
	Customize map[string]Customize `json:"customize"`
}

// ItemSetup is the full item-setup document.
type ItemSetup struct {
	MatchCount map[string]ItemMatchEntry `json:"matchCount"`
}

var characterKeyRe = regexp.MustCompile(`^\(Key="(.*)"\)$`)

// CharacterKey wraps a character id in the quoted token the item-setup
// document keys customize records by.
func CharacterKey(id string) string {
	return fmt.Sprintf(`(Key="%s")`, id)
}

// ParseCharacterKey extracts the character id back out of a wrapped
// key. Returns false when the token does not match the wrapper shape.
func ParseCharacterKey(key string) (string, bool) {
	m := characterKeyRe.FindStringSubmatch(key)
	if m == nil {
		return "", false
	}
	return m[1], true
}
