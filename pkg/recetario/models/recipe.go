// Package models defines the value types that flow through the recipe
// pipeline. The types carry no validation of their own: construction never
// fails, and all semantic checking lives in the validate and normalize
// packages so the same shapes serve scraped, imported, and hand-built data.
package models

// Catalog constants the provider template accepts. Exactly one language and
// one appliance type are supported; anything else fails schema validation.
const (
	// LanguageES is the single supported recipe language code.
	LanguageES = "ES"
	// RecipeTypeRobotCooker is the single supported appliance-type label.
	RecipeTypeRobotCooker = "汤机(Robot Cooker)"
)

// Mode identifies the working mode of a cooking step. The provider template
// uses bilingual labels; the full label is the wire value, both in the batch
// JSON and in the workbook.
type Mode string

const (
	// ModeDescription is a free-text instruction step.
	ModeDescription Mode = "描述(Description)"
	// ModeWeigh is a weighing instruction step.
	ModeWeigh Mode = "称重(Weigh)"
	// ModeAdaptedCooking is an automated temperature/speed/time cooking step.
	ModeAdaptedCooking Mode = "自适应烹饪(Adapted Cooking)"
)

// SupportedModes returns the closed set of working modes the pipeline can
// export. Templates may list more modes; those are rejected by normalization
// until a behavior class exists for them.
func SupportedModes() []Mode {
	return []Mode{ModeDescription, ModeWeigh, ModeAdaptedCooking}
}

// Known reports whether m is one of the supported working modes.
func (m Mode) Known() bool {
	switch m {
	case ModeDescription, ModeWeigh, ModeAdaptedCooking:
		return true
	}
	return false
}

// RecipeMeta identifies a recipe within a batch.
type RecipeMeta struct {
	// RecipeNo is the provider-facing recipe number. It is expected to be
	// unique within a batch, though nothing enforces that today.
	RecipeNo int `json:"recipe_no"`
	// Language is the recipe language code.
	Language string `json:"language"`
	// RecipeType is the appliance-type label.
	RecipeType string `json:"recipe_type"`
	// Name is the recipe display name.
	Name string `json:"name"`
	// Servings is the number of servings the recipe yields.
	Servings int `json:"servings"`
}

// Ingredient is one ingredient line of a recipe.
type Ingredient struct {
	// No is the 1-based position within the recipe.
	No int `json:"no"`
	// Qty is the amount expressed in Unit.
	Qty float64 `json:"qty"`
	// Unit is the unit label; it must match the unit lookup table.
	Unit string `json:"unit"`
	// Name is the ingredient name.
	Name string `json:"name"`
}

// Step is one cooking step. Which optional fields may be set is constrained
// by Mode (see validate.Steps); nil means the field is absent, which is
// distinct from a zero value.
type Step struct {
	// No is the 1-based position within the recipe.
	No int `json:"no"`
	// Mode selects the step behavior class.
	Mode Mode `json:"mode"`
	// Description is the free-text instruction.
	Description *string `json:"description,omitempty"`
	// Temperature is the heating temperature in °C.
	Temperature *int `json:"temperature,omitempty"`
	// Speed is the rotation speed (0-12).
	Speed *int `json:"speed,omitempty"`
	// Direction is the rotation direction (R or L).
	Direction *string `json:"direction,omitempty"`
	// Minutes is the minutes part of the working time.
	Minutes *int `json:"minutes,omitempty"`
	// Seconds is the seconds part of the working time.
	Seconds *int `json:"seconds,omitempty"`
}

// Recipe aggregates one recipe's metadata, ingredients, and steps. A Recipe
// is built once and flows read-only through the pipeline: the validation
// stages inspect and report, they never rewrite fields.
type Recipe struct {
	// Meta is the recipe metadata.
	Meta RecipeMeta `json:"meta"`
	// Ingredients is the ordered ingredient list.
	Ingredients []Ingredient `json:"ingredients"`
	// Steps is the ordered step list.
	Steps []Step `json:"steps"`
}
