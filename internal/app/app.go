// Package app wires the configuration, catalog, roster session and
// import/export flows into the command-line run loop.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ge0m/matchbuilder/internal/catalog"
	"github.com/Ge0m/matchbuilder/internal/config"
	"github.com/Ge0m/matchbuilder/internal/interchange"
	"github.com/Ge0m/matchbuilder/internal/output"
	"github.com/Ge0m/matchbuilder/internal/roster"
	"github.com/Ge0m/matchbuilder/internal/setup"
)

// Run executes the match builder flow and returns the desired process exit code.
func Run() int {
	return RunWithOptions(Options{Args: os.Args[1:]})
}

type Options struct {
	Args []string
}

// RunWithOptions executes the match builder flow and returns the desired process exit code.
func RunWithOptions(opts Options) int {
	appRoot, err := FindRoot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := Execute(appRoot, opts.Args); err != nil {
		if ee, ok := asExitError(err); ok {
			if ee.Err != nil && ee.Code != 0 {
				fmt.Fprintln(os.Stderr, ee.Err)
			}
			return ee.Code
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// Execute runs one full pass: load config and catalog, apply the
// import files in order, then write the requested exports.
func Execute(appRoot string, args []string) error {
	cfg, err := config.Load(appRoot, args)
	if err != nil {
		// Usage errors get a distinct exit code.
		return ExitWithError(2, err)
	}

	cat, err := catalog.Load(cfg.CharactersCSV, cfg.ItemsCSV)
	if err != nil {
		// Degraded mode: resolution misses everything, imports still run.
		fmt.Fprintf(os.Stderr, "warning: catalog unavailable, identifiers will not resolve: %v\n", err)
		cat = &catalog.Catalog{}
	}

	session := roster.NewSession()

	setupFiles, docFiles, err := partitionImports(cfg.ImportFiles)
	if err != nil {
		return err
	}

	// The setup pair replaces the whole session, so it applies before
	// any document-level imports regardless of argument order.
	if len(setupFiles) > 0 {
		if len(setupFiles) != 2 {
			return setup.ErrPairIncomplete
		}
		if err := importSetupPair(session, setupFiles, cat); err != nil {
			return err
		}
		fmt.Printf("Imported setup pair: %d match(es)\n", len(session.Matches))
	}

	for _, path := range docFiles {
		if err := importDocument(session, path, cfg, cat); err != nil {
			return err
		}
		fmt.Printf("Imported %s\n", filepath.Base(path))
	}

	if cfg.ExportSetup {
		paths, err := output.WriteSetupPair(cfg.OutputDir, setup.BuildMatchSetup(session.Matches), setup.BuildItemSetup(session.Matches))
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("Wrote %s\n", p)
		}
	}

	if cfg.ExportXLSX {
		path, err := output.ExportRosterXLSX(cfg.OutputDir, cfg.RosterName, session.Matches, cat)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
	}

	return nil
}

func partitionImports(files []string) (setupFiles, docFiles []string, err error) {
	for _, f := range files {
		switch strings.ToLower(filepath.Ext(f)) {
		case ".json":
			setupFiles = append(setupFiles, f)
		case ".yaml", ".yml":
			docFiles = append(docFiles, f)
		default:
			return nil, nil, fmt.Errorf("unsupported import file %s (expected .json, .yaml or .yml)", f)
		}
	}
	return setupFiles, docFiles, nil
}

func importSetupPair(session *roster.Session, paths []string, cat *catalog.Catalog) error {
	files := make([]setup.File, 0, 2)
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		files = append(files, setup.File{Name: filepath.Base(p), Data: b})
	}
	ms, is, err := setup.ParsePair(files[0], files[1])
	if err != nil {
		return err
	}
	session.ReplaceAll(setup.Reconcile(ms, is, cat))
	return nil
}

func importDocument(session *roster.Session, path string, cfg config.Config, cat *catalog.Catalog) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	name := filepath.Base(path)
	kind, err := interchange.Detect(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	switch kind {
	case interchange.KindMatch:
		m, err := targetMatch(session, cfg.Match, true)
		if err != nil {
			return err
		}
		return interchange.ImportMatch(m, data, name, cat)
	case interchange.KindTeam:
		m, err := targetMatch(session, cfg.Match, false)
		if err != nil {
			return err
		}
		return interchange.ImportTeam(m, cfg.Team, data, name, cat)
	case interchange.KindCharacter:
		m, err := targetMatch(session, cfg.Match, false)
		if err != nil {
			return err
		}
		return interchange.ImportCharacter(m, cfg.Team, cfg.Slot, data, name, cat)
	default:
		return fmt.Errorf("%s: unrecognized document shape", name)
	}
}

// targetMatch resolves which match an import lands on. A zero id means
// "no explicit target": match-level documents append a new match, and
// team/character documents fall back to the most recent match (created
// on demand when the session is empty).
func targetMatch(session *roster.Session, id int, appendNew bool) (*roster.Match, error) {
	if id > 0 {
		m := session.Find(id)
		if m == nil {
			return nil, fmt.Errorf("no match with id %d", id)
		}
		return m, nil
	}
	if appendNew || len(session.Matches) == 0 {
		return session.AddMatch(), nil
	}
	return session.Matches[len(session.Matches)-1], nil
}
