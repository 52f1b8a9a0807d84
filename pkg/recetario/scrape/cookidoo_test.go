package scrape

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/recetario/recetario/pkg/recetario/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

const pageTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<script type="application/ld+json">{broken json</script>
<script type="application/ld+json">{"@type": "BreadcrumbList", "itemListElement": []}</script>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "Recipe",
  "name": " Bisteces a la mexicana ",
  "recipeYield": "4 porciones",
  "recipeIngredient": [
    "500 g carne de res",
    "½ cdita sal",
    "2 nopales medianos"
  ],
  "recipeInstructions": [
    {"@type": "HowToStep", "text": "Pique la cebolla."},
    {"@type": "HowToStep", "text": "Cocine <nobr>5 min 120 °C vel 2</nobr> y reserve."},
    {"@type": "HowToStep", "text": "Remueva <nobr>2 min [spoon]</nobr> con cuidado."}
  ]
}
</script>
</head>
<body></body>
</html>`

var samplePage = strings.ReplaceAll(pageTemplate, "[spoon]", "")

func TestFromHTML(t *testing.T) {
	opts := Options{RecipeNo: 7, Units: []string{"Cucharada", "g", "ml"}}
	r, err := FromHTML(strings.NewReader(samplePage), opts)
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}

	wantMeta := models.RecipeMeta{
		RecipeNo:   7,
		Language:   models.LanguageES,
		RecipeType: models.RecipeTypeRobotCooker,
		Name:       "Bisteces a la mexicana",
		Servings:   4,
	}
	if r.Meta != wantMeta {
		t.Errorf("Meta = %+v, want %+v", r.Meta, wantMeta)
	}

	wantIngredients := []models.Ingredient{
		{No: 1, Qty: 500, Unit: "g", Name: "carne de res"},
		{No: 2, Qty: 0.5, Unit: "Cucharada", Name: "sal"},
		{No: 3, Qty: 2, Unit: "pcs", Name: "nopales medianos"},
	}
	if !reflect.DeepEqual(r.Ingredients, wantIngredients) {
		t.Errorf("Ingredients = %+v, want %+v", r.Ingredients, wantIngredients)
	}

	wantSteps := []models.Step{
		{No: 1, Mode: models.ModeDescription, Description: strPtr("Pique la cebolla.")},
		{No: 2, Mode: models.ModeDescription, Description: strPtr("Cocine 5 min 120 °C vel 2 y reserve.")},
		{No: 3, Mode: models.ModeAdaptedCooking, Temperature: intPtr(120), Speed: intPtr(2), Minutes: intPtr(5)},
		{No: 4, Mode: models.ModeDescription, Description: strPtr("Remueva 2 min  con cuidado.")},
		{No: 5, Mode: models.ModeAdaptedCooking, Speed: intPtr(1), Minutes: intPtr(2)},
	}
	if !reflect.DeepEqual(r.Steps, wantSteps) {
		t.Errorf("Steps = %+v, want %+v", r.Steps, wantSteps)
	}
}

func TestFromHTMLDefaultRecipeNo(t *testing.T) {
	r, err := FromHTML(strings.NewReader(samplePage), Options{Units: []string{"g"}})
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}
	if r.Meta.RecipeNo != 1 {
		t.Errorf("RecipeNo = %d, want 1", r.Meta.RecipeNo)
	}
}

func TestFromHTMLNoRecipe(t *testing.T) {
	page := `<html><head><script type="application/ld+json">{"@type": "WebSite"}</script></head></html>`
	if _, err := FromHTML(strings.NewReader(page), Options{}); !errors.Is(err, ErrNoRecipe) {
		t.Fatalf("FromHTML() error = %v, want ErrNoRecipe", err)
	}
}

func TestFromHTMLBadServings(t *testing.T) {
	page := `<html><head><script type="application/ld+json">{"@type": "Recipe", "name": "X", "recipeYield": "para toda la familia"}</script></head></html>`
	_, err := FromHTML(strings.NewReader(page), Options{})
	if err == nil || !strings.Contains(err.Error(), "servings") {
		t.Fatalf("FromHTML() error = %v, want servings parse error", err)
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"500", 500},
		{"2.5", 2.5},
		{"½", 0.5},
		{"3/4", 0.75},
	}
	for _, tt := range tests {
		got, err := parseQuantity(tt.input)
		if err != nil {
			t.Errorf("parseQuantity(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseQuantity(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := parseQuantity("1/0"); err == nil {
		t.Error("parseQuantity(1/0) expected error")
	}
}

func TestParseIngredientUnparsable(t *testing.T) {
	units := map[string]struct{}{"g": {}}
	if _, err := parseIngredient("sal al gusto", units); err == nil {
		t.Error("parseIngredient() expected error for line without quantity")
	}
}

func TestParseControlsGroups(t *testing.T) {
	text := `Mezcle <nobr>30 seg vel 5</nobr> y luego <nobr>10 min 100 °C</nobr>.`
	got := parseControls(text)
	if len(got) != 2 {
		t.Fatalf("parseControls() groups = %d, want 2", len(got))
	}
	if got[0].seconds == nil || *got[0].seconds != 30 || got[0].speed == nil || *got[0].speed != 5 {
		t.Errorf("first group = %+v", got[0])
	}
	if got[0].minutes != nil || got[0].temperature != nil {
		t.Errorf("first group has stray fields: %+v", got[0])
	}
	if got[1].minutes == nil || *got[1].minutes != 10 || got[1].temperature == nil || *got[1].temperature != 100 {
		t.Errorf("second group = %+v", got[1])
	}
}
