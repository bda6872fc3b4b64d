package roster

import "fmt"

// NormalizeCapsules forces a capsule list to the fixed width,
// truncating extras and padding short input with empty strings. The
// input slice is never aliased.
func NormalizeCapsules(in []string) []string {
	out := make([]string, CapsuleCount)
	copy(out, in)
	return out
}

// NormalizeSlot fills a candidate slot out to the full shape: missing
// capsule entries default to empty and the list is forced to exactly
// CapsuleCount entries.
func NormalizeSlot(s Slot) Slot {
	s.Capsules = NormalizeCapsules(s.Capsules)
	return s
}

// ReplaceSlot assigns a normalized candidate into team[index] as a
// single whole-slot write, so no intermediate mis-shaped state is ever
// observable. An index past the current length extends the team with
// blank slots first; a negative index leaves the team untouched.
func ReplaceSlot(team []Slot, index int, candidate Slot) []Slot {
	if index < 0 {
		return team
	}
	for len(team) <= index {
		team = append(team, NewSlot())
	}
	team[index] = NormalizeSlot(candidate)
	return team
}

// BlankTeam returns TeamCap blank slots. Interchange imports reset the
// target team(s) to this state before parsing.
func BlankTeam() []Slot {
	team := make([]Slot, TeamCap)
	for i := range team {
		team[i] = NewSlot()
	}
	return team
}

// AddSlot appends a blank slot, rejecting the add once the team is at
// the interactive cap.
func (m *Match) AddSlot(team int) error {
	t := m.Team(team)
	if t == nil {
		return fmt.Errorf("no such team %d", team)
	}
	if len(*t) >= TeamCap {
		return ErrTeamFull
	}
	*t = append(*t, NewSlot())
	return nil
}

// RemoveSlot deletes team[index], shifting later slots left. An
// out-of-range index is a no-op.
func (m *Match) RemoveSlot(team, index int) {
	t := m.Team(team)
	if t == nil || index < 0 || index >= len(*t) {
		return
	}
	*t = append((*t)[:index], (*t)[index+1:]...)
}

// ResetTeam replaces one team with TeamCap blank slots.
func (m *Match) ResetTeam(team int) {
	if t := m.Team(team); t != nil {
		*t = BlankTeam()
	}
}

// ResetTeams blanks both teams; the match-level interchange import
// does this before it parses the incoming document.
func (m *Match) ResetTeams() {
	m.Team1 = BlankTeam()
	m.Team2 = BlankTeam()
}
