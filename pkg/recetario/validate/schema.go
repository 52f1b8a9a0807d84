// Package validate holds the checks a recipe must pass before it is
// normalized and written out. The schema checks here are lookup-independent
// so they can run before any template snapshot is available; the step rule
// checks live in rules.go.
package validate

import (
	"fmt"
	"strings"

	"github.com/recetario/recetario/pkg/recetario/models"
)

// Recipe checks the structural requirements of a single recipe and returns
// one message per violation. Every check runs; nothing short-circuits. An
// empty slice means the recipe is structurally sound.
func Recipe(r models.Recipe) []string {
	var errs []string

	if r.Meta.Language != models.LanguageES {
		errs = append(errs, fmt.Sprintf("language must be %s", models.LanguageES))
	}
	if r.Meta.RecipeType != models.RecipeTypeRobotCooker {
		errs = append(errs, fmt.Sprintf("recipe_type must be %s", models.RecipeTypeRobotCooker))
	}
	if r.Meta.RecipeNo <= 0 {
		errs = append(errs, "recipe_no must be positive")
	}
	if r.Meta.Servings <= 0 {
		errs = append(errs, "servings must be positive")
	}
	if strings.TrimSpace(r.Meta.Name) == "" {
		errs = append(errs, "name must be non-empty")
	}

	if len(r.Ingredients) == 0 {
		errs = append(errs, "ingredients cannot be empty")
	}
	if len(r.Steps) == 0 {
		errs = append(errs, "steps cannot be empty")
	}

	return errs
}
