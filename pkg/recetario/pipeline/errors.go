package pipeline

import (
	"fmt"
	"strings"
)

// Stage names one validation stage of a run.
type Stage string

const (
	// StageSchema is the lookup-independent structural stage.
	StageSchema Stage = "schema"
	// StageNormalize checks membership in the template lookup lists.
	StageNormalize Stage = "normalization"
	// StageRules checks per-step working mode field combinations.
	StageRules Stage = "rules"
)

// StageError reports the recipe that stopped a run, the stage that flagged
// it, and every message that stage produced for it. A run that returns a
// StageError has written nothing.
type StageError struct {
	Stage    Stage
	RecipeNo int
	Issues   []string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("recipe %d: %s stage failed: %s", e.RecipeNo, e.Stage, strings.Join(e.Issues, "; "))
}

// NewStageError creates a StageError for one recipe's accumulated issues.
func NewStageError(stage Stage, recipeNo int, issues []string) *StageError {
	return &StageError{
		Stage:    stage,
		RecipeNo: recipeNo,
		Issues:   issues,
	}
}
