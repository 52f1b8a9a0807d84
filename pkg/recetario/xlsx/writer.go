// Package xlsx fills the provider Excel template with validated recipes and
// inspects filled workbooks. Only the three data sheets are touched; every
// other part of the template survives the round trip unchanged.
package xlsx

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/recetario/recetario/pkg/recetario/config"
	"github.com/recetario/recetario/pkg/recetario/models"
)

// ErrMissingSheet marks a template that lacks one of the three data sheets.
var ErrMissingSheet = errors.New("missing sheet in template")

// Writer copies the provider template and fills its data sheets, one row
// per recipe, ingredient and step. The export settings supply the catalog
// columns (category, difficulty, accessory, times) that recipes do not
// carry themselves.
type Writer struct {
	export config.ExportConfig
}

// NewWriter returns a Writer stamping the given export settings onto every
// recipe row.
func NewWriter(export config.ExportConfig) *Writer {
	return &Writer{export: export}
}

// WriteRecipes writes the batch into a copy of the template at outputPath.
// Values land under their column header; headers the template lacks are
// skipped. On a failed save any partial output file is removed.
func (w *Writer) WriteRecipes(recipes []models.Recipe, templatePath, outputPath string) error {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return fmt.Errorf("open template: %w", err)
	}
	defer f.Close()

	sheets := []struct {
		name string
		rows []map[string]interface{}
	}{
		{SheetRecipeList, w.recipeRows(recipes)},
		{SheetIngredients, ingredientRows(recipes)},
		{SheetSteps, stepRows(recipes)},
	}
	for _, sheet := range sheets {
		if err := fillSheet(f, sheet.name, sheet.rows); err != nil {
			return err
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// fillSheet replaces the data rows of one sheet, keeping row 1 (the header
// row) in place.
func fillSheet(f *excelize.File, name string, rows []map[string]interface{}) error {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return fmt.Errorf("sheet %s: %w", name, err)
	}
	if idx == -1 {
		return fmt.Errorf("%w: %s", ErrMissingSheet, name)
	}

	existing, err := f.GetRows(name)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", name, err)
	}

	headerCol := make(map[string]int)
	if len(existing) > 0 {
		for i, h := range existing[0] {
			if h != "" {
				headerCol[h] = i + 1
			}
		}
	}

	// Remove bottom-up so the remaining row numbers stay valid.
	for row := len(existing); row >= 2; row-- {
		if err := f.RemoveRow(name, row); err != nil {
			return fmt.Errorf("clear sheet %s: %w", name, err)
		}
	}

	for i, values := range rows {
		rowNum := i + 2
		for header, value := range values {
			col, ok := headerCol[header]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col, rowNum)
			if err != nil {
				return fmt.Errorf("cell coordinates: %w", err)
			}
			if err := f.SetCellValue(name, cell, value); err != nil {
				return fmt.Errorf("write %s!%s: %w", name, cell, err)
			}
		}
	}
	return nil
}

func (w *Writer) recipeRows(recipes []models.Recipe) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, map[string]interface{}{
			headerRecipeNo:      r.Meta.RecipeNo,
			headerLanguage:      r.Meta.Language,
			headerRecipeType:    r.Meta.RecipeType,
			headerRecipeName:    r.Meta.Name,
			headerCategory:      w.export.Category,
			headerServings:      r.Meta.Servings,
			headerPrepHours:     w.export.PrepHours,
			headerPrepMinutes:   w.export.PrepMinutes,
			headerCookHours:     w.export.CookHours,
			headerCookMinutes:   w.export.CookMinutes,
			headerRestHours:     w.export.RestHours,
			headerRestMinutes:   w.export.RestMinutes,
			headerDifficulty:    w.export.Difficulty,
			headerAccessoryNo:   w.export.AccessoryNo,
			headerAccessoryName: w.export.AccessoryName,
			headerOverview:      buildOverview(r.Steps, w.export.AccessoryName),
		})
	}
	return rows
}

func ingredientRows(recipes []models.Recipe) []map[string]interface{} {
	var rows []map[string]interface{}
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			rows = append(rows, map[string]interface{}{
				headerRecipeNo:       r.Meta.RecipeNo,
				headerLanguage:       r.Meta.Language,
				headerRecipeType:     r.Meta.RecipeType,
				headerRecipeName:     r.Meta.Name,
				headerIngredientNo:   ing.No,
				headerIngredientQty:  ing.Qty,
				headerIngredientUnit: ing.Unit,
				headerIngredientName: ing.Name,
			})
		}
	}
	return rows
}

func stepRows(recipes []models.Recipe) []map[string]interface{} {
	var rows []map[string]interface{}
	for _, r := range recipes {
		for _, step := range r.Steps {
			row := map[string]interface{}{
				headerRecipeNo:   r.Meta.RecipeNo,
				headerLanguage:   r.Meta.Language,
				headerRecipeType: r.Meta.RecipeType,
				headerRecipeName: r.Meta.Name,
				headerStepNo:     step.No,
				headerStepMode:   string(step.Mode),
			}
			// Optional fields stay absent rather than writing zero values.
			if step.Description != nil {
				row[headerStepDescription] = *step.Description
			}
			if step.Temperature != nil {
				row[headerStepTemperature] = *step.Temperature
			}
			if step.Direction != nil {
				row[headerStepDirection] = *step.Direction
			}
			if step.Speed != nil {
				row[headerStepSpeed] = *step.Speed
			}
			if step.Minutes != nil {
				row[headerStepMinutes] = *step.Minutes
			}
			if step.Seconds != nil {
				row[headerStepSeconds] = *step.Seconds
			}
			rows = append(rows, row)
		}
	}
	return rows
}
