// Package roster is the normalized in-memory model the builder edits:
// a session of matches, each pairing two teams of up to five character
// slots. All import/export paths read and write this model; nothing
// here knows about document formats.
package roster

import (
	"errors"
	"fmt"
)

// CapsuleCount is the fixed width of a slot's capsule list. Every
// construction and mutation path pads or truncates to this width.
const CapsuleCount = 7

// TeamCap is the soft cap enforced on interactive adds. Import paths
// may produce teams of other sizes.
const TeamCap = 5

// ErrTeamFull rejects an interactive add beyond TeamCap.
var ErrTeamFull = errors.New("maximum 5 characters per team")

// Slot is one character's full configuration within a team. Empty
// string means "unset" for every field. ID is the canonical catalog
// key; Name is the display label and may be set without an ID when an
// import could not resolve the character.
type Slot struct {
	Name     string
	ID       string
	Costume  string
	Capsules []string
	AI       string
}

// NewSlot returns a blank slot with the fixed capsule width.
func NewSlot() Slot {
	return Slot{Capsules: make([]string, CapsuleCount)}
}

// Match pairs two named teams. ID is the session-unique identity;
// Name is a free-form label with no uniqueness constraint.
type Match struct {
	ID        int
	Name      string
	Team1Name string
	Team2Name string
	Team1     []Slot
	Team2     []Slot
}

// Team returns a pointer to team 1 or 2, or nil for any other number.
func (m *Match) Team(n int) *[]Slot {
	switch n {
	case 1:
		return &m.Team1
	case 2:
		return &m.Team2
	}
	return nil
}

// Session owns the working set of matches and the id counter. Match
// ids are strictly increasing and never reused within a session; the
// counter only goes back to its initial value on ClearAll.
type Session struct {
	Matches []*Match
	nextID  int
}

func NewSession() *Session {
	return &Session{nextID: 1}
}

// NextID exposes the counter value for inspection; the next created
// match receives exactly this id.
func (s *Session) NextID() int {
	return s.nextID
}

// AddMatch appends a new empty match with default names.
func (s *Session) AddMatch() *Match {
	m := &Match{
		ID:        s.nextID,
		Name:      fmt.Sprintf("Match %d", s.nextID),
		Team1Name: "Team 1",
		Team2Name: "Team 2",
	}
	s.nextID++
	s.Matches = append(s.Matches, m)
	return m
}

// DuplicateMatch deep-copies the match with the given id under a fresh
// id. The copy shares no slot or capsule storage with the original.
func (s *Session) DuplicateMatch(id int) (*Match, error) {
	orig := s.Find(id)
	if orig == nil {
		return nil, fmt.Errorf("match %d not found", id)
	}
	dup := &Match{
		ID:        s.nextID,
		Name:      orig.Name + " (Copy)",
		Team1Name: orig.Team1Name,
		Team2Name: orig.Team2Name,
		Team1:     copyTeam(orig.Team1),
		Team2:     copyTeam(orig.Team2),
	}
	s.nextID++
	s.Matches = append(s.Matches, dup)
	return dup, nil
}

// RemoveMatch deletes the match with the given id; the counter is not
// rewound.
func (s *Session) RemoveMatch(id int) {
	out := s.Matches[:0]
	for _, m := range s.Matches {
		if m.ID != id {
			out = append(out, m)
		}
	}
	s.Matches = out
}

// ClearAll drops every match and resets the id counter to its initial
// value, so the next match gets id 1 again.
func (s *Session) ClearAll() {
	s.Matches = nil
	s.nextID = 1
}

// Find returns the match with the given id, or nil.
func (s *Session) Find(id int) *Match {
	for _, m := range s.Matches {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// ReplaceAll swaps in a whole new working set, typically produced by
// the two-document import. The counter moves past every id in use.
func (s *Session) ReplaceAll(matches []*Match) {
	s.Matches = matches
	next := 1
	for _, m := range matches {
		if m.ID >= next {
			next = m.ID + 1
		}
	}
	s.nextID = next
}

func copyTeam(team []Slot) []Slot {
	out := make([]Slot, len(team))
	for i, sl := range team {
		out[i] = sl
		out[i].Capsules = append([]string(nil), sl.Capsules...)
	}
	return out
}
