// Package pipeline gates recipe batches through the validation stages and
// hands fully valid batches to the persistence collaborator. The contract
// is all-or-nothing: one failing recipe aborts the whole run before any
// output exists.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/recetario/recetario/pkg/recetario/lookup"
	"github.com/recetario/recetario/pkg/recetario/models"
	"github.com/recetario/recetario/pkg/recetario/normalize"
	"github.com/recetario/recetario/pkg/recetario/validate"
)

// Writer persists a validated batch into a copy of the provider template.
type Writer interface {
	WriteRecipes(recipes []models.Recipe, templatePath, outputPath string) error
}

// Runner executes the batch pipeline.
type Runner struct {
	writer      Writer
	log         *zap.SugaredLogger
	accessories map[int][]string
}

// Option adjusts a Runner.
type Option func(*Runner)

// WithAccessories supplies accessory names per recipe number, checked
// against the accessory lookup list during normalization. The CLI supplies
// none today; the hook exists for hand-authored batches that name their
// accessories.
func WithAccessories(byRecipe map[int][]string) Option {
	return func(r *Runner) { r.accessories = byRecipe }
}

// New builds a Runner that persists through w. A nil log defaults to a nop
// logger.
func New(w Writer, log *zap.SugaredLogger, opts ...Option) *Runner {
	r := &Runner{writer: w, log: log}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = zap.NewNop().Sugar()
	}
	return r
}

// Run validates every recipe, stage by stage over the whole batch, and
// writes the workbook only when every recipe cleared every stage. The first
// recipe with issues aborts the run; its full message list comes back as a
// *StageError and no output file is produced.
func (r *Runner) Run(recipes []models.Recipe, snapshotPath, templatePath, outputPath string) error {
	lookups, err := lookup.LoadFile(snapshotPath)
	if err != nil {
		return fmt.Errorf("load lookups: %w", err)
	}
	r.log.Debugw("lookups loaded",
		"units", len(lookups.Units),
		"working_modes", len(lookups.WorkingModes),
		"accessories", len(lookups.Accessories),
	)

	if err := Validate(recipes, lookups, r.accessories); err != nil {
		return err
	}
	r.log.Infow("batch valid", "recipes", len(recipes))

	if err := r.writer.WriteRecipes(recipes, templatePath, outputPath); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	r.log.Infow("workbook written", "output", outputPath)
	return nil
}

// Validate runs the three stages over the whole batch without writing
// anything. Each stage sweeps every recipe before the next stage starts, so
// a schema problem anywhere in the batch is reported before any
// normalization problem. accessories may be nil.
func Validate(recipes []models.Recipe, lookups models.LookupTables, accessories map[int][]string) error {
	for _, recipe := range recipes {
		if issues := validate.Recipe(recipe); len(issues) > 0 {
			return NewStageError(StageSchema, recipe.Meta.RecipeNo, issues)
		}
	}
	for _, recipe := range recipes {
		if issues := normalize.Recipe(recipe, lookups, accessories[recipe.Meta.RecipeNo]); len(issues) > 0 {
			return NewStageError(StageNormalize, recipe.Meta.RecipeNo, issues)
		}
	}
	for _, recipe := range recipes {
		if issues := validate.Steps(recipe.Steps); len(issues) > 0 {
			return NewStageError(StageRules, recipe.Meta.RecipeNo, issues)
		}
	}
	return nil
}
