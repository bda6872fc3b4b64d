package interchange_test

import (
	"testing"

	"github.com/Ge0m/matchbuilder/internal/interchange"
	"github.com/Ge0m/matchbuilder/internal/roster"
)

func builtMatch() *roster.Match {
	sl := roster.NewSlot()
	sl.ID = "0000_00"
	sl.Name = "Goku"
	sl.Costume = "Costume_GokuBD"
	sl.Capsules[2] = "Capsule_Senzu"
	sl.AI = "AI_Aggressive"
	return &roster.Match{
		ID:        1,
		Name:      "Grand Finals",
		Team1Name: "Earth Defenders",
		Team2Name: "Saiyans",
		Team1:     []roster.Slot{sl},
	}
}

func TestBuildMatchDocument_UsesDisplayNames(t *testing.T) {
	doc := interchange.BuildMatchDocument(builtMatch(), testCatalog())

	if doc.MatchName != "Grand Finals" || doc.Team1Name != "Earth Defenders" {
		t.Fatalf("names = %q/%q", doc.MatchName, doc.Team1Name)
	}
	if len(doc.Team1) != 1 {
		t.Fatalf("team1 members = %d", len(doc.Team1))
	}
	mb := doc.Team1[0]
	if mb.Character != "Goku" || mb.Costume != "Battle Damaged" || mb.AI != "Aggressive" {
		t.Fatalf("member = %+v, want display names", mb)
	}
	if len(mb.Capsules) != roster.CapsuleCount || mb.Capsules[2] != "Senzu Bean" {
		t.Fatalf("capsules = %v, want positional display names", mb.Capsules)
	}
}

func TestBuildMatchDocument_UnknownIDFallsBackToRawID(t *testing.T) {
	m := builtMatch()
	m.Team1[0].Costume = "Costume_NotInCatalog"
	doc := interchange.BuildMatchDocument(m, testCatalog())
	if doc.Team1[0].Costume != "Costume_NotInCatalog" {
		t.Fatalf("costume = %q, want raw id fallback", doc.Team1[0].Costume)
	}
}

func TestRoundTrip_MatchDocument(t *testing.T) {
	src := builtMatch()
	out, err := interchange.Marshal(interchange.BuildMatchDocument(src, testCatalog()))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	s := roster.NewSession()
	dst := s.AddMatch()
	if err := interchange.ImportMatch(dst, out, "match.yaml", testCatalog()); err != nil {
		t.Fatalf("ImportMatch: %v", err)
	}

	if dst.Name != src.Name || dst.Team1Name != src.Team1Name || dst.Team2Name != src.Team2Name {
		t.Fatalf("names did not round-trip: %q/%q/%q", dst.Name, dst.Team1Name, dst.Team2Name)
	}
	if len(dst.Team1) != 1 {
		t.Fatalf("team1 = %+v", dst.Team1)
	}
	got, want := dst.Team1[0], src.Team1[0]
	if got.ID != want.ID || got.Costume != want.Costume || got.AI != want.AI {
		t.Fatalf("slot = %+v, want %+v", got, want)
	}
	if got.Capsules[2] != want.Capsules[2] {
		t.Fatalf("capsule position lost: %v", got.Capsules)
	}
}

func TestBuildTeamDocument(t *testing.T) {
	doc, err := interchange.BuildTeamDocument(builtMatch(), 1, testCatalog())
	if err != nil {
		t.Fatalf("BuildTeamDocument: %v", err)
	}
	if doc.TeamName != "Earth Defenders" || len(doc.Members) != 1 {
		t.Fatalf("doc = %+v", doc)
	}
	if _, err := interchange.BuildTeamDocument(builtMatch(), 3, testCatalog()); err == nil {
		t.Fatalf("expected error for team 3")
	}
}

func TestBuildCharacterDocument(t *testing.T) {
	doc, err := interchange.BuildCharacterDocument(builtMatch(), 1, 0, testCatalog())
	if err != nil {
		t.Fatalf("BuildCharacterDocument: %v", err)
	}
	if doc.Character != "Goku" || doc.Slot != 1 || doc.TeamName != "Earth Defenders" {
		t.Fatalf("doc = %+v", doc)
	}
	if _, err := interchange.BuildCharacterDocument(builtMatch(), 1, 5, testCatalog()); err == nil {
		t.Fatalf("expected error for out-of-range slot")
	}
}

func TestFileNames(t *testing.T) {
	if got := interchange.MatchFileName(interchange.MatchDocument{MatchName: "Grand  Finals \t Rematch"}); got != "Grand_Finals_Rematch.yaml" {
		t.Fatalf("match file name = %q", got)
	}
	if got := interchange.TeamFileName(interchange.TeamDocument{TeamName: ""}); got != "team.yaml" {
		t.Fatalf("team fallback = %q", got)
	}
	if got := interchange.CharacterFileName(interchange.CharacterDocument{Character: ""}); got != "character_build.yaml" {
		t.Fatalf("character fallback = %q", got)
	}
	if got := interchange.CharacterFileName(interchange.CharacterDocument{Character: "Goku"}); got != "Goku.yaml" {
		t.Fatalf("character file name = %q", got)
	}
}
