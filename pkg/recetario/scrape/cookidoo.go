// Package scrape converts a saved Cookidoo recipe page into the internal
// recipe model. Everything it needs lives in the page's JSON-LD block; the
// instruction texts are HTML fragments whose <nobr> groups carry the machine
// control settings.
package scrape

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"regexp"
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/recetario/recetario/pkg/recetario/models"
)

// ErrNoRecipe marks a page without a Recipe JSON-LD block.
var ErrNoRecipe = errors.New("no recipe JSON-LD found")

// Options steer the conversion.
type Options struct {
	// RecipeNo is stamped into the recipe meta block. Zero means 1.
	RecipeNo int
	// Units are the template's known ingredient units. Ingredient lines
	// whose unit token resolves to none of them degrade to unit "pcs" with
	// the token folded into the ingredient name.
	Units []string
}

// unitAliases maps Cookidoo unit spellings onto template units.
var unitAliases = map[string]string{
	"cdita":      "Cucharada",
	"cucharada":  "Cucharada",
	"cucharadas": "Cucharada",
}

// spoonGlyph is Cookidoo's private-use icon for gentle stirring. It stands
// for speed 1.
const spoonGlyph = ""

var (
	servingsRe   = regexp.MustCompile(`\d+`)
	ingredientRe = regexp.MustCompile(`^([\d½/.]+)\s+(\S+)?\s*(.+)$`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	nobrRe       = regexp.MustCompile(`<nobr>(.*?)</nobr>`)
	minutesRe    = regexp.MustCompile(`(\d+)\s*min`)
	secondsRe    = regexp.MustCompile(`(\d+)\s*seg`)
	tempRe       = regexp.MustCompile(`(\d+)\s*°C`)
	speedRe      = regexp.MustCompile(`vel\s*(\d+)`)
)

type ldRecipe struct {
	Type               string          `json:"@type"`
	Name               string          `json:"name"`
	RecipeYield        string          `json:"recipeYield"`
	RecipeIngredient   []string        `json:"recipeIngredient"`
	RecipeInstructions []ldInstruction `json:"recipeInstructions"`
}

type ldInstruction struct {
	Text string `json:"text"`
}

// FromHTML reads a Cookidoo page and builds the recipe it describes. The
// result still has to pass the validation stages; the scraper only converts
// shape, it does not judge correctness.
func FromHTML(r io.Reader, opts Options) (*models.Recipe, error) {
	data, err := extractJSONLD(r)
	if err != nil {
		return nil, err
	}

	servings, err := parseServings(data.RecipeYield)
	if err != nil {
		return nil, err
	}

	units := make(map[string]struct{}, len(opts.Units))
	for _, u := range opts.Units {
		units[u] = struct{}{}
	}

	ingredients := make([]models.Ingredient, 0, len(data.RecipeIngredient))
	for i, raw := range data.RecipeIngredient {
		ing, err := parseIngredient(raw, units)
		if err != nil {
			return nil, err
		}
		ing.No = i + 1
		ingredients = append(ingredients, ing)
	}

	recipeNo := opts.RecipeNo
	if recipeNo == 0 {
		recipeNo = 1
	}

	return &models.Recipe{
		Meta: models.RecipeMeta{
			RecipeNo:   recipeNo,
			Language:   models.LanguageES,
			RecipeType: models.RecipeTypeRobotCooker,
			Name:       strings.TrimSpace(data.Name),
			Servings:   servings,
		},
		Ingredients: ingredients,
		Steps:       buildSteps(data.RecipeInstructions),
	}, nil
}

// extractJSONLD scans the page's script elements for the first JSON-LD
// block typed "Recipe". Blocks that fail to decode are skipped.
func extractJSONLD(r io.Reader) (*ldRecipe, error) {
	z := xhtml.NewTokenizer(r)
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return nil, ErrNoRecipe
			}
			return nil, fmt.Errorf("parse html: %w", z.Err())
		case xhtml.StartTagToken:
			tok := z.Token()
			if tok.Data != "script" || !isJSONLD(tok.Attr) {
				continue
			}
			if z.Next() != xhtml.TextToken {
				continue
			}
			raw := html.UnescapeString(strings.TrimSpace(string(z.Text())))
			var rec ldRecipe
			if err := json.Unmarshal([]byte(raw), &rec); err != nil {
				continue
			}
			if rec.Type == "Recipe" {
				return &rec, nil
			}
		}
	}
}

func isJSONLD(attrs []xhtml.Attribute) bool {
	for _, a := range attrs {
		if a.Key == "type" && strings.EqualFold(strings.TrimSpace(a.Val), "application/ld+json") {
			return true
		}
	}
	return false
}

func parseServings(yield string) (int, error) {
	m := servingsRe.FindString(yield)
	if m == "" {
		return 0, fmt.Errorf("unable to parse servings from %q", yield)
	}
	return strconv.Atoi(m)
}

// parseQuantity understands plain numbers, the ½ glyph and a/b fractions.
func parseQuantity(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), "½", "1/2")
	if num, den, ok := strings.Cut(cleaned, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("parse quantity %q: %w", raw, err)
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, fmt.Errorf("parse quantity %q: %w", raw, err)
		}
		if d == 0 {
			return 0, fmt.Errorf("parse quantity %q: zero denominator", raw)
		}
		return n / d, nil
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse quantity %q: %w", raw, err)
	}
	return n, nil
}

func parseIngredient(raw string, units map[string]struct{}) (models.Ingredient, error) {
	cleaned := strings.TrimSpace(html.UnescapeString(raw))
	m := ingredientRe.FindStringSubmatch(cleaned)
	if m == nil {
		return models.Ingredient{}, fmt.Errorf("unable to parse ingredient %q", raw)
	}

	qty, err := parseQuantity(m[1])
	if err != nil {
		return models.Ingredient{}, err
	}

	unit := strings.TrimSpace(m[2])
	name := m[3]
	candidate := unit
	if alias, ok := unitAliases[strings.ToLower(unit)]; ok {
		candidate = alias
	}
	if _, ok := units[candidate]; ok && candidate != "" {
		return models.Ingredient{Qty: qty, Unit: candidate, Name: name}, nil
	}
	// The quantity counts pieces when the unit token is unknown; the token
	// itself is part of the name then.
	return models.Ingredient{
		Qty:  qty,
		Unit: "pcs",
		Name: strings.TrimSpace(unit + " " + name),
	}, nil
}

// controls is one <nobr> group's machine settings.
type controls struct {
	minutes     *int
	seconds     *int
	temperature *int
	speed       *int
}

func parseControls(instruction string) []controls {
	var out []controls
	for _, m := range nobrRe.FindAllStringSubmatch(instruction, -1) {
		seg := html.UnescapeString(m[1])
		c := controls{
			minutes:     firstInt(minutesRe, seg),
			seconds:     firstInt(secondsRe, seg),
			temperature: firstInt(tempRe, seg),
			speed:       firstInt(speedRe, seg),
		}
		if strings.Contains(seg, spoonGlyph) {
			one := 1
			c.speed = &one
		}
		out = append(out, c)
	}
	return out
}

func firstInt(re *regexp.Regexp, s string) *int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

func stripTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}

// buildSteps renders each instruction as one written step followed by one
// machine step per control group, numbered sequentially across the whole
// recipe.
func buildSteps(instructions []ldInstruction) []models.Step {
	var steps []models.Step
	no := 1
	for _, instruction := range instructions {
		desc := strings.TrimSpace(stripTags(instruction.Text))
		steps = append(steps, models.Step{No: no, Mode: models.ModeDescription, Description: &desc})
		no++

		for _, c := range parseControls(instruction.Text) {
			steps = append(steps, models.Step{
				No:          no,
				Mode:        models.ModeAdaptedCooking,
				Temperature: c.temperature,
				Speed:       c.speed,
				Minutes:     c.minutes,
				Seconds:     c.seconds,
			})
			no++
		}
	}
	return steps
}
