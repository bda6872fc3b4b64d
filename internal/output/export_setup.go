// Package output writes the generated artifacts: the game-facing setup
// JSON pair and the roster overview workbook.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/Ge0m/matchbuilder/internal/setup"
)

const (
	MatchSetupFile = "MatchSetup.json"
	ItemSetupFile  = "ItemSetup.json"
)

// WriteSetupPair writes both setup documents into outDir and returns
// the written paths (match setup first).
func WriteSetupPair(outDir string, ms setup.MatchSetup, is setup.ItemSetup) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", outDir, err)
	}

	matchPath := filepath.Join(outDir, MatchSetupFile)
	if err := writeJSON(matchPath, ms); err != nil {
		return nil, err
	}
	itemPath := filepath.Join(outDir, ItemSetupFile)
	if err := writeJSON(itemPath, is); err != nil {
		return nil, err
	}
	return []string{matchPath, itemPath}, nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
