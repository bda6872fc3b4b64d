package catalog

import (
	"fmt"
	"os"
	"strings"
)

// Item kind tags as they appear in the third column of the item table.
const (
	kindCostume = "Costume"
	kindCapsule = "Capsule"
	kindAI      = "AI"
)

// Load reads both catalog sources. charactersPath rows are
// (displayName, id); itemsPath rows are (displayName, id, kind,
// [exclusiveCharacterName]). The first row of each file is a header
// and is skipped.
func Load(charactersPath, itemsPath string) (*Catalog, error) {
	cat := &Catalog{}
	if err := loadCharacters(cat, charactersPath); err != nil {
		return nil, err
	}
	if err := loadItems(cat, itemsPath); err != nil {
		return nil, err
	}
	return cat, nil
}

func loadCharacters(cat *Catalog, path string) error {
	rows, err := readRows(path)
	if err != nil {
		return fmt.Errorf("read characters csv (%s): %w", path, err)
	}
	for _, cols := range rows {
		if len(cols) < 2 {
			continue
		}
		name, id := cols[0], cols[1]
		if name == "" || id == "" {
			continue
		}
		cat.Characters = append(cat.Characters, Entry{ID: id, Name: name})
	}
	return nil
}

func loadItems(cat *Catalog, path string) error {
	rows, err := readRows(path)
	if err != nil {
		return fmt.Errorf("read items csv (%s): %w", path, err)
	}
	for _, cols := range rows {
		if len(cols) < 3 {
			continue
		}
		e := Entry{Name: cols[0], ID: cols[1]}
		if len(cols) >= 4 {
			e.ExclusiveTo = cols[3]
		}
		switch cols[2] {
		case kindCostume:
			cat.Costumes = append(cat.Costumes, e)
		case kindCapsule:
			cat.Capsules = append(cat.Capsules, e)
		case kindAI:
			cat.AIProfiles = append(cat.AIProfiles, e)
		}
	}
	return nil
}

// readRows splits a delimited text table into trimmed columns. The
// header row and blank lines are dropped, and surrounding quote
// characters are stripped from each column. The sources are simple
// two-to-four column tables, so a plain comma split is the contract
// here rather than full CSV quoting.
func readRows(path string) ([][]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(b), "\n")
	var rows [][]string
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if i == 0 || line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		cols := make([]string, len(parts))
		for j, p := range parts {
			cols[j] = strings.TrimSpace(strings.ReplaceAll(p, `"`, ""))
		}
		rows = append(rows, cols)
	}
	return rows, nil
}
