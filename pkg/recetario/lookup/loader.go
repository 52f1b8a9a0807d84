// Package lookup extracts the reference value lists that drive
// normalization out of a template snapshot.
package lookup

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/recetario/recetario/pkg/recetario/models"
)

// Sheet and column names of the five reference lists in the provider
// template. The column headers embed a line break between the Chinese and
// English halves; both halves are part of the exact match.
const (
	SheetUnits  = "食材单位列表Unit For Ingredients"
	ColumnUnits = "*单位名称\nUnit Name"

	SheetAccessories  = "配件列表Accessories List"
	ColumnAccessories = "*配件名称\nAccessory Name"

	SheetWorkingModes  = "自动程序Working Mode List"
	ColumnWorkingModes = "模式名称\nName of Working mode"

	SheetCategories  = "分类列表Category List"
	ColumnCategories = "*分类名称\nCategory Name"

	SheetLabels  = "标签列表Label List"
	ColumnLabels = "*标签名称\nLabel Name"
)

// ListSheets returns the names of the sheets that hold reference lists.
func ListSheets() []string {
	return []string{
		SheetUnits,
		SheetAccessories,
		SheetWorkingModes,
		SheetCategories,
		SheetLabels,
	}
}

// Load extracts the five lookup tables from a snapshot. A sheet or column
// missing from the snapshot yields an empty list for that category, never
// an error: normalization treats an empty category as "reject everything",
// which is the wanted fail-closed behavior for reference data that must
// originate from the authoritative template.
func Load(snap *models.Snapshot) models.LookupTables {
	if snap == nil {
		return models.LookupTables{}
	}
	return models.LookupTables{
		Units:        column(snap, SheetUnits, ColumnUnits),
		Accessories:  column(snap, SheetAccessories, ColumnAccessories),
		WorkingModes: column(snap, SheetWorkingModes, ColumnWorkingModes),
		Categories:   column(snap, SheetCategories, ColumnCategories),
		Labels:       column(snap, SheetLabels, ColumnLabels),
	}
}

// LoadFile reads a snapshot JSON artifact from disk and extracts the lookup
// tables from it.
func LoadFile(path string) (models.LookupTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.LookupTables{}, fmt.Errorf("read snapshot: %w", err)
	}
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.LookupTables{}, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return Load(&snap), nil
}

// column collects the values of one column of one sheet: trimmed, empties
// dropped, deduplicated, sorted lexicographically.
func column(snap *models.Snapshot, sheet, header string) []string {
	sh, ok := snap.Sheets[sheet]
	if !ok {
		return nil
	}

	seen := make(map[string]struct{})
	var values []string
	for _, row := range sh.Rows {
		v := strings.TrimSpace(row[header])
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	sort.Strings(values)
	return values
}
