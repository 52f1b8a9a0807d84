// Package normalize checks recipe field values for membership in the
// reference lists extracted from the provider template. Membership is exact
// string equality: the catalog data is authoritative, so there is no
// case-folding and no fuzzy matching.
package normalize

import (
	"fmt"

	"github.com/recetario/recetario/pkg/recetario/models"
)

// Ingredients reports every ingredient whose unit is not a known unit.
func Ingredients(ingredients []models.Ingredient, lookups models.LookupTables) []string {
	allowed := toSet(lookups.Units)
	var errs []string
	for _, ing := range ingredients {
		if _, ok := allowed[ing.Unit]; !ok {
			errs = append(errs, missing("unit", ing.Unit))
		}
	}
	return errs
}

// Steps reports every step whose mode is not usable. A mode is usable only
// when the template lists it AND the pipeline supports it; the intersection
// guards against templates that list modes this pipeline does not implement
// yet.
func Steps(steps []models.Step, lookups models.LookupTables) []string {
	allowed := make(map[string]struct{})
	for _, m := range lookups.WorkingModes {
		if models.Mode(m).Known() {
			allowed[m] = struct{}{}
		}
	}

	var errs []string
	for _, step := range steps {
		if _, ok := allowed[string(step.Mode)]; !ok {
			errs = append(errs, missing("working_mode", string(step.Mode)))
		}
	}
	return errs
}

// Accessories reports every accessory name that the template does not list.
func Accessories(accessories []string, lookups models.LookupTables) []string {
	allowed := toSet(lookups.Accessories)
	var errs []string
	for _, accessory := range accessories {
		if _, ok := allowed[accessory]; !ok {
			errs = append(errs, missing("accessory", accessory))
		}
	}
	return errs
}

// Recipe runs all membership checks for one recipe and its caller-supplied
// accessory names. Checks accumulate; none short-circuits.
func Recipe(r models.Recipe, lookups models.LookupTables, accessories []string) []string {
	var errs []string
	errs = append(errs, Ingredients(r.Ingredients, lookups)...)
	errs = append(errs, Steps(r.Steps, lookups)...)
	errs = append(errs, Accessories(accessories, lookups)...)
	return errs
}

func missing(field, value string) string {
	return fmt.Sprintf("%s value '%s' is not in lookup list", field, value)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
