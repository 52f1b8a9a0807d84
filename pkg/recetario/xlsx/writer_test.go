package xlsx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/recetario/recetario/pkg/recetario/config"
	"github.com/recetario/recetario/pkg/recetario/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

var (
	recipeListHeaders = []string{
		headerRecipeNo, headerLanguage, headerRecipeType, headerRecipeName,
		headerCategory, headerServings, headerPrepHours, headerPrepMinutes,
		headerCookHours, headerCookMinutes, headerRestHours, headerRestMinutes,
		headerDifficulty, headerAccessoryNo, headerAccessoryName, headerOverview,
	}
	ingredientHeaders = []string{
		headerRecipeNo, headerLanguage, headerRecipeType, headerRecipeName,
		headerIngredientNo, headerIngredientQty, headerIngredientUnit, headerIngredientName,
	}
	stepHeaders = []string{
		headerRecipeNo, headerLanguage, headerRecipeType, headerRecipeName,
		headerStepNo, headerStepMode, headerStepDescription, headerStepTemperature,
		headerStepDirection, headerStepSpeed, headerStepMinutes, headerStepSeconds,
	}
)

// newTemplate builds a minimal provider template: the three data sheets with
// their real headers, a stale data row in each, and one reference sheet that
// the writer must leave untouched.
func newTemplate(t *testing.T, sheets map[string][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for name, headers := range sheets {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("create sheet %s: %v", name, err)
		}
		for i, h := range headers {
			cell, err := excelize.CoordinatesToCellName(i+1, 1)
			if err != nil {
				t.Fatalf("cell coordinates: %v", err)
			}
			f.SetCellValue(name, cell, h)
		}
		f.SetCellValue(name, "A2", 99)
	}

	if _, err := f.NewSheet("食材单位列表Unit For Ingredients"); err != nil {
		t.Fatalf("create unit sheet: %v", err)
	}
	f.SetCellValue("食材单位列表Unit For Ingredients", "A1", "*单位名称\nUnit Name")
	f.SetCellValue("食材单位列表Unit For Ingredients", "A2", "g")

	path := filepath.Join(t.TempDir(), "template.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save template: %v", err)
	}
	return path
}

func fullTemplate(t *testing.T) string {
	t.Helper()
	return newTemplate(t, map[string][]string{
		SheetRecipeList:  recipeListHeaders,
		SheetIngredients: ingredientHeaders,
		SheetSteps:       stepHeaders,
	})
}

func testRecipes() []models.Recipe {
	return []models.Recipe{{
		Meta: models.RecipeMeta{
			RecipeNo:   1,
			Language:   models.LanguageES,
			RecipeType: models.RecipeTypeRobotCooker,
			Name:       "Receta de prueba",
			Servings:   2,
		},
		Ingredients: []models.Ingredient{
			{No: 1, Qty: 200, Unit: "g", Name: "cebolla"},
			{No: 2, Qty: 0.5, Unit: "Cucharada", Name: "sal"},
		},
		Steps: []models.Step{
			{No: 1, Mode: models.ModeDescription, Description: strPtr("Pique la cebolla.")},
			{
				No:          2,
				Mode:        models.ModeAdaptedCooking,
				Temperature: intPtr(120),
				Speed:       intPtr(2),
				Minutes:     intPtr(5),
				Seconds:     intPtr(0),
			},
		},
	}}
}

// rowMap pairs a sheet's header row with one data row.
func rowMap(headers, row []string) map[string]string {
	m := make(map[string]string, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		if i < len(row) {
			m[h] = row[i]
		} else {
			m[h] = ""
		}
	}
	return m
}

func TestWriteRecipes(t *testing.T) {
	template := fullTemplate(t)
	output := filepath.Join(t.TempDir(), "recipes.xlsx")

	w := NewWriter(config.Default().Export)
	if err := w.WriteRecipes(testRecipes(), template, output); err != nil {
		t.Fatalf("WriteRecipes() error = %v", err)
	}

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	// Recipe list sheet: the stale row is gone, one row per recipe remains.
	rows, err := f.GetRows(SheetRecipeList)
	if err != nil {
		t.Fatalf("read recipe list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("recipe list rows = %d, want 2 (header + 1 recipe)", len(rows))
	}
	recipe := rowMap(rows[0], rows[1])
	wantRecipe := map[string]string{
		headerRecipeNo:      "1",
		headerLanguage:      "ES",
		headerRecipeType:    "汤机(Robot Cooker)",
		headerRecipeName:    "Receta de prueba",
		headerCategory:      "Platillos Mexicanos",
		headerServings:      "2",
		headerDifficulty:    "fácil",
		headerAccessoryNo:   "5",
		headerAccessoryName: "Cuchilla",
		headerOverview:      `Ponemos en el vaso el accesorio "Cuchilla". Pique la cebolla. Cocinamos 5 minutos, 120°C, velocidad 2.`,
	}
	for header, want := range wantRecipe {
		if recipe[header] != want {
			t.Errorf("recipe list %q = %q, want %q", header, recipe[header], want)
		}
	}
	for _, header := range []string{headerPrepHours, headerCookMinutes, headerRestHours} {
		if recipe[header] != "0" {
			t.Errorf("recipe list %q = %q, want %q", header, recipe[header], "0")
		}
	}

	// Ingredients sheet: one row per ingredient, quantities as numbers.
	rows, err = f.GetRows(SheetIngredients)
	if err != nil {
		t.Fatalf("read ingredients: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("ingredient rows = %d, want 3", len(rows))
	}
	first := rowMap(rows[0], rows[1])
	second := rowMap(rows[0], rows[2])
	if first[headerIngredientQty] != "200" || first[headerIngredientUnit] != "g" {
		t.Errorf("ingredient 1 = %q %q, want 200 g", first[headerIngredientQty], first[headerIngredientUnit])
	}
	if second[headerIngredientQty] != "0.5" || second[headerIngredientName] != "sal" {
		t.Errorf("ingredient 2 = %q %q, want 0.5 sal", second[headerIngredientQty], second[headerIngredientName])
	}

	// Steps sheet: optional fields present only where the step carries them.
	rows, err = f.GetRows(SheetSteps)
	if err != nil {
		t.Fatalf("read steps: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("step rows = %d, want 3", len(rows))
	}
	manual := rowMap(rows[0], rows[1])
	machine := rowMap(rows[0], rows[2])
	if manual[headerStepMode] != "描述(Description)" || manual[headerStepDescription] != "Pique la cebolla." {
		t.Errorf("manual step = %+v", manual)
	}
	if manual[headerStepTemperature] != "" || manual[headerStepSpeed] != "" {
		t.Errorf("manual step carries controls: %+v", manual)
	}
	if machine[headerStepTemperature] != "120" || machine[headerStepSpeed] != "2" ||
		machine[headerStepMinutes] != "5" || machine[headerStepSeconds] != "0" {
		t.Errorf("machine step = %+v", machine)
	}
	if machine[headerStepDescription] != "" {
		t.Errorf("machine step carries description: %q", machine[headerStepDescription])
	}

	// Reference sheet untouched.
	unit, err := f.GetCellValue("食材单位列表Unit For Ingredients", "A2")
	if err != nil {
		t.Fatalf("read unit sheet: %v", err)
	}
	if unit != "g" {
		t.Errorf("unit sheet A2 = %q, want %q", unit, "g")
	}
}

func TestWriteRecipesMissingSheet(t *testing.T) {
	template := newTemplate(t, map[string][]string{
		SheetRecipeList:  recipeListHeaders,
		SheetIngredients: ingredientHeaders,
	})
	output := filepath.Join(t.TempDir(), "recipes.xlsx")

	w := NewWriter(config.Default().Export)
	err := w.WriteRecipes(testRecipes(), template, output)
	if !errors.Is(err, ErrMissingSheet) {
		t.Fatalf("WriteRecipes() error = %v, want ErrMissingSheet", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Errorf("output file exists after failed write")
	}
}

func TestWriteRecipesUnknownTemplateHeaders(t *testing.T) {
	// Headers the writer does not produce stay empty; headers it produces
	// but the template lacks are skipped without error.
	sheets := map[string][]string{
		SheetRecipeList:  {headerRecipeNo, "内部备注\nInternal Notes", headerRecipeName},
		SheetIngredients: ingredientHeaders,
		SheetSteps:       stepHeaders,
	}
	template := newTemplate(t, sheets)
	output := filepath.Join(t.TempDir(), "recipes.xlsx")

	w := NewWriter(config.Default().Export)
	if err := w.WriteRecipes(testRecipes(), template, output); err != nil {
		t.Fatalf("WriteRecipes() error = %v", err)
	}

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetRecipeList)
	if err != nil {
		t.Fatalf("read recipe list: %v", err)
	}
	got := rowMap(rows[0], rows[1])
	if got[headerRecipeNo] != "1" || got[headerRecipeName] != "Receta de prueba" {
		t.Errorf("mapped headers not written: %+v", got)
	}
	if got["内部备注\nInternal Notes"] != "" {
		t.Errorf("unknown template column written: %q", got["内部备注\nInternal Notes"])
	}
}
