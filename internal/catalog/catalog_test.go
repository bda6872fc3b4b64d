package catalog_test

import (
	"testing"

	"github.com/Ge0m/matchbuilder/internal/catalog"
)

func testEntries() []catalog.Entry {
	return []catalog.Entry{
		{ID: "0000_00", Name: "Goku"},
		{ID: "0015_00", Name: "Vegeta"},
		{ID: "Goku", Name: "Decoy"},
	}
}

func TestResolve_IDIdentityWinsOverName(t *testing.T) {
	// "Goku" is both a display name and (adversarially) another
	// entry's id; the id match must win.
	got := catalog.Resolve("Goku", testEntries())
	if got != "Goku" {
		t.Fatalf("Resolve(%q) = %q, want id-identity match %q", "Goku", got, "Goku")
	}
}

func TestResolve_NameCaseAndWhitespaceInsensitive(t *testing.T) {
	got := catalog.Resolve("  vegeta ", testEntries())
	if got != "0015_00" {
		t.Fatalf("Resolve(%q) = %q, want %q", "  vegeta ", got, "0015_00")
	}
}

func TestResolve_MissReturnsEmpty(t *testing.T) {
	if got := catalog.Resolve("Broly", testEntries()); got != "" {
		t.Fatalf("Resolve miss = %q, want empty", got)
	}
	if got := catalog.Resolve("", testEntries()); got != "" {
		t.Fatalf("Resolve empty value = %q, want empty", got)
	}
	if got := catalog.Resolve("Goku", nil); got != "" {
		t.Fatalf("Resolve against empty catalog = %q, want empty", got)
	}
}

func TestFind_FirstMatchWinsOnDuplicateIDs(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "dup", Name: "First"},
		{ID: "dup", Name: "Second"},
	}
	e, ok := catalog.Find(entries, "dup")
	if !ok || e.Name != "First" {
		t.Fatalf("Find(dup) = %+v ok=%v, want first entry", e, ok)
	}
}

func TestNameOf_FallsBackToRawID(t *testing.T) {
	if got := catalog.NameOf(testEntries(), "unknown_id"); got != "unknown_id" {
		t.Fatalf("NameOf(unknown) = %q, want raw id", got)
	}
	if got := catalog.NameOf(testEntries(), "0000_00"); got != "Goku" {
		t.Fatalf("NameOf(0000_00) = %q, want Goku", got)
	}
}

func TestCostumesFor_AdvisoryFilter(t *testing.T) {
	cat := &catalog.Catalog{
		Costumes: []catalog.Entry{
			{ID: "cos1", Name: "Battle Damaged", ExclusiveTo: "Goku"},
			{ID: "cos2", Name: "Saiyan Armor", ExclusiveTo: "Vegeta"},
		},
	}
	got := cat.CostumesFor("Goku")
	if len(got) != 1 || got[0].ID != "cos1" {
		t.Fatalf("CostumesFor(Goku) = %+v, want [cos1]", got)
	}
	if got := cat.CostumesFor("Broly"); len(got) != 0 {
		t.Fatalf("CostumesFor(Broly) = %+v, want empty", got)
	}
}
