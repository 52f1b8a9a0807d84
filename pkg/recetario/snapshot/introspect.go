// Package snapshot captures the structure of a provider template workbook
// into a JSON artifact, so the pipeline can consult sheet headers and
// reference rows without reopening the binary template.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/recetario/recetario/pkg/recetario/lookup"
	"github.com/recetario/recetario/pkg/recetario/models"
)

// Capture reads a template workbook and records the header row of every
// sheet. The five reference list sheets additionally get their data rows
// recorded as header-to-value maps; all other sheet content is ignored.
func Capture(templatePath string) (*models.Snapshot, error) {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()

	listSheets := make(map[string]struct{})
	for _, name := range lookup.ListSheets() {
		listSheets[name] = struct{}{}
	}

	snap := &models.Snapshot{
		Template: filepath.Base(templatePath),
		Sheets:   make(map[string]models.SheetSnapshot),
	}

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", name, err)
		}

		sheet := models.SheetSnapshot{}
		if len(rows) > 0 {
			sheet.Headers = rows[0]
		}
		if _, ok := listSheets[name]; ok && len(rows) > 1 {
			sheet.Rows = dataRows(sheet.Headers, rows[1:])
		}
		snap.Sheets[name] = sheet
	}

	return snap, nil
}

// dataRows maps each data row onto the header row. Cells in columns without
// a header are dropped, as are empty cells and rows that end up with no
// mapped values at all.
func dataRows(headers []string, rows [][]string) []map[string]string {
	var out []map[string]string
	for _, row := range rows {
		entry := make(map[string]string)
		for i, value := range row {
			if value == "" || i >= len(headers) || headers[i] == "" {
				continue
			}
			entry[headers[i]] = value
		}
		if len(entry) > 0 {
			out = append(out, entry)
		}
	}
	return out
}

// Write persists a snapshot as indented UTF-8 JSON. Non-ASCII sheet and
// header names are written verbatim, not escaped.
func Write(snap *models.Snapshot, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
