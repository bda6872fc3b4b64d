package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Ge0m/matchbuilder/internal/catalog"
	"github.com/Ge0m/matchbuilder/internal/roster"
)

func colName(n int) string {
	// 1-indexed: 1 -> A, 26 -> Z, 27 -> AA
	if n <= 0 {
		return ""
	}
	out := ""
	for n > 0 {
		n--
		out = string(rune('A'+(n%26))) + out
		n /= 26
	}
	return out
}

// ExportRosterXLSX writes a one-sheet overview of every filled slot in
// the session: one row per slot with display names resolved against the
// catalog. Returns the written file path.
func ExportRosterXLSX(outDir string, rosterName string, matches []*roster.Match, cat *catalog.Catalog) (string, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"Match", "Team", "Slot", "Character", "Costume"}
	for i := 1; i <= roster.CapsuleCount; i++ {
		headers = append(headers, fmt.Sprintf("Capsule %d", i))
	}
	headers = append(headers, "AI")
	for i, h := range headers {
		f.SetCellValue(sheet, fmt.Sprintf("%s1", colName(i+1)), h)
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Font:      &excelize.Font{Bold: true},
	})
	if err != nil {
		return "", err
	}
	if err := f.SetCellStyle(sheet, "A1", fmt.Sprintf("%s1", colName(len(headers))), headerStyleID); err != nil {
		return "", err
	}

	row := 2
	for _, m := range matches {
		for teamNo := 1; teamNo <= 2; teamNo++ {
			team := *m.Team(teamNo)
			teamName := m.Team1Name
			if teamNo == 2 {
				teamName = m.Team2Name
			}
			for slotIdx, s := range team {
				if s.ID == "" && s.Name == "" {
					continue
				}
				name := cat.CharacterName(s.ID)
				if name == "" {
					name = s.Name
				}
				if name == "" {
					name = s.ID
				}
				f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Name)
				f.SetCellValue(sheet, fmt.Sprintf("B%d", row), teamName)
				f.SetCellValue(sheet, fmt.Sprintf("C%d", row), slotIdx+1)
				f.SetCellValue(sheet, fmt.Sprintf("D%d", row), name)
				if s.Costume != "" {
					f.SetCellValue(sheet, fmt.Sprintf("E%d", row), catalog.NameOf(cat.Costumes, s.Costume))
				}
				for i, capID := range roster.NormalizeCapsules(s.Capsules) {
					if capID == "" {
						continue
					}
					col := colName(6 + i)
					f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), catalog.NameOf(cat.Capsules, capID))
				}
				if s.AI != "" {
					aiCol := colName(6 + roster.CapsuleCount)
					f.SetCellValue(sheet, fmt.Sprintf("%s%d", aiCol, row), catalog.NameOf(cat.AIProfiles, s.AI))
				}
				row++
			}
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	// yearmonthday
	timestamp := time.Now().Format("20060102")
	filename := filepath.Join(outDir, fmt.Sprintf("%s_roster_overview_%s.xlsx", timestamp, rosterName))
	if err := f.SaveAs(filename); err != nil {
		return "", err
	}
	return filename, nil
}
