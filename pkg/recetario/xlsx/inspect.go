package xlsx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// ModeUsage tallies how the cooking-steps sheet of a filled workbook uses
// each working mode. Useful for eyeballing a submission before sending it
// to the provider.
type ModeUsage struct {
	Counts          map[string]int `json:"counts"`
	WithDescription map[string]int `json:"with_description"`
	WithControls    map[string]int `json:"with_controls"`
}

// InspectWorkingModes reads the cooking-steps sheet of a workbook and counts
// rows per mode, rows carrying a description, and rows with any machine
// control set.
func InspectWorkingModes(path string) (*ModeUsage, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(SheetSteps)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", SheetSteps, err)
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrMissingSheet, SheetSteps)
	}

	rows, err := f.GetRows(SheetSteps)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", SheetSteps, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", SheetSteps)
	}

	headerCol := make(map[string]int)
	for i, h := range rows[0] {
		if h != "" {
			headerCol[h] = i
		}
	}
	if _, ok := headerCol[headerStepMode]; !ok {
		return nil, fmt.Errorf("sheet %s missing column %q", SheetSteps, headerStepMode)
	}

	cell := func(row []string, header string) string {
		col, ok := headerCol[header]
		if !ok || col >= len(row) {
			return ""
		}
		return row[col]
	}

	controls := []string{
		headerStepTemperature,
		headerStepDirection,
		headerStepSpeed,
		headerStepMinutes,
		headerStepSeconds,
	}

	usage := &ModeUsage{
		Counts:          make(map[string]int),
		WithDescription: make(map[string]int),
		WithControls:    make(map[string]int),
	}
	for _, row := range rows[1:] {
		mode := cell(row, headerStepMode)
		if mode == "" {
			continue
		}
		usage.Counts[mode]++
		if cell(row, headerStepDescription) != "" {
			usage.WithDescription[mode]++
		}
		for _, header := range controls {
			if cell(row, header) != "" {
				usage.WithControls[mode]++
				break
			}
		}
	}

	return usage, nil
}

// WriteUsage persists a mode usage summary as indented UTF-8 JSON.
func WriteUsage(usage *ModeUsage, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(usage); err != nil {
		return fmt.Errorf("encode mode usage: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write mode usage: %w", err)
	}
	return nil
}
