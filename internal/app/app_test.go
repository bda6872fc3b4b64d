package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/Ge0m/matchbuilder/internal/app"
	"github.com/Ge0m/matchbuilder/internal/setup"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func newRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "builder_config.yaml"), "")
	writeFile(t, filepath.Join(root, "data", "characters.csv"), strings.Join([]string{
		"Name,ID",
		"Goku,0000_00",
		"Vegeta,0100_00",
	}, "\n"))
	writeFile(t, filepath.Join(root, "data", "capsules.csv"), strings.Join([]string{
		"Name,ID,Kind,ExclusiveTo",
		"Turtle School Gi,Costume_Goku_01,Costume,Goku",
		"Senzu Bean,Cap_Senzu,Capsule",
		"Rushdown,AI_Rushdown,AI",
	}, "\n"))
	return root
}

const matchDoc = `matchName: Finals
team1Name: Z Fighters
team2Name: Rivals
team1:
  - character: Goku
    costume: Turtle School Gi
    capsules:
      - Senzu Bean
    ai: Rushdown
team2:
  - character: Vegeta
`

func readMatchSetup(t *testing.T, root string) setup.MatchSetup {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(root, "output", "MatchSetup.json"))
	if err != nil {
		t.Fatalf("read MatchSetup.json: %v", err)
	}
	var ms setup.MatchSetup
	if err := json.Unmarshal(b, &ms); err != nil {
		t.Fatalf("unmarshal MatchSetup.json: %v", err)
	}
	return ms
}

func TestExecuteImportsMatchAndExports(t *testing.T) {
	root := newRoot(t)
	doc := writeFile(t, filepath.Join(root, "in", "finals.yaml"), matchDoc)

	if err := app.Execute(root, []string{doc}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	ms := readMatchSetup(t, root)
	entry, ok := ms.MatchCount["1"]
	if !ok {
		t.Fatalf("MatchCount keys = %v, want 1", ms.MatchCount)
	}
	if got := entry.TargetTeaming.Com1.TeamMembers[0].Key; got != "0000_00" {
		t.Fatalf("team1 member = %q, want resolved id 0000_00", got)
	}
	if got := entry.TargetTeaming.Com2.TeamMembers[0].Key; got != "0100_00" {
		t.Fatalf("team2 member = %q, want resolved id 0100_00", got)
	}

	if _, err := os.Stat(filepath.Join(root, "output", "ItemSetup.json")); err != nil {
		t.Fatalf("ItemSetup.json not written: %v", err)
	}
}

func TestExecuteWritesXLSXWhenRequested(t *testing.T) {
	root := newRoot(t)
	doc := writeFile(t, filepath.Join(root, "in", "finals.yaml"), matchDoc)

	if err := app.Execute(root, []string{"-xlsx", doc}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	entries, err := filepath.Glob(filepath.Join(root, "output", "*_roster_overview_roster.xlsx"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("xlsx overview not written (entries=%v, err=%v)", entries, err)
	}
}

func TestExecuteBadDocumentAbortsBatch(t *testing.T) {
	root := newRoot(t)
	bad := writeFile(t, filepath.Join(root, "in", "broken.yaml"), "members: 12\n")
	good := writeFile(t, filepath.Join(root, "in", "finals.yaml"), matchDoc)

	err := app.Execute(root, []string{bad, good})
	if err == nil {
		t.Fatal("expected error for malformed document")
	}
	if !strings.Contains(err.Error(), "broken.yaml") {
		t.Fatalf("error should name the failing file, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(root, "output", "MatchSetup.json")); !os.IsNotExist(statErr) {
		t.Fatal("exports should not run after a failed import")
	}
}

func TestExecuteSingleJSONIsIncompletePair(t *testing.T) {
	root := newRoot(t)
	lone := writeFile(t, filepath.Join(root, "in", "MatchSetup.json"), `{"matchCount":{}}`)

	err := app.Execute(root, []string{lone})
	if !errors.Is(err, setup.ErrPairIncomplete) {
		t.Fatalf("err = %v, want ErrPairIncomplete", err)
	}
}

func TestExecuteSetupPairRoundTrip(t *testing.T) {
	root := newRoot(t)
	doc := writeFile(t, filepath.Join(root, "in", "finals.yaml"), matchDoc)
	if err := app.Execute(root, []string{doc}); err != nil {
		t.Fatalf("seed Execute: %v", err)
	}

	root2 := newRoot(t)
	if err := app.Execute(root2, []string{
		filepath.Join(root, "output", "MatchSetup.json"),
		filepath.Join(root, "output", "ItemSetup.json"),
	}); err != nil {
		t.Fatalf("pair Execute: %v", err)
	}

	ms := readMatchSetup(t, root2)
	if got := ms.MatchCount["1"].TargetTeaming.Com1.TeamMembers[0].Key; got != "0000_00" {
		t.Fatalf("round-tripped member = %q, want 0000_00", got)
	}
}

func TestExecuteUsageErrorCarriesExitCode(t *testing.T) {
	root := newRoot(t)

	err := app.Execute(root, []string{"-no-such-flag"})
	var ee app.ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("err = %v, want ExitError", err)
	}
	if ee.Code != 2 {
		t.Fatalf("exit code = %d, want 2 for a usage error", ee.Code)
	}
}

func TestExecuteUnsupportedExtension(t *testing.T) {
	root := newRoot(t)
	odd := writeFile(t, filepath.Join(root, "in", "notes.txt"), "hello")

	if err := app.Execute(root, []string{odd}); err == nil {
		t.Fatal("expected error for unsupported file type")
	}
}

func TestExecuteRunsWithoutCatalog(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "builder_config.yaml"), "")

	if err := app.Execute(root, nil); err != nil {
		t.Fatalf("Execute without catalog: %v", err)
	}
	ms := readMatchSetup(t, root)
	if len(ms.MatchCount) != 0 {
		t.Fatalf("MatchCount = %v, want empty", ms.MatchCount)
	}
}

func TestExecuteMatchTargetMissing(t *testing.T) {
	root := newRoot(t)
	team := writeFile(t, filepath.Join(root, "in", "team.yaml"), "members:\n  - character: Goku\n")

	err := app.Execute(root, []string{"-match", "7", team})
	if err == nil || !strings.Contains(err.Error(), "no match with id 7") {
		t.Fatalf("err = %v, want missing-match error", err)
	}
}
