package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/recetario/recetario/pkg/recetario/models"
)

// batchDocument mirrors the external recipe batch input.
type batchDocument struct {
	Recipes []models.Recipe `json:"recipes"`
}

// LoadRecipes reads a batch document. A document without a recipes key is
// an empty batch, not an error.
func LoadRecipes(path string) ([]models.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipes: %w", err)
	}
	var doc batchDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode recipes %s: %w", path, err)
	}
	return doc.Recipes, nil
}

// WriteBatch persists recipes as a batch document, the same shape
// LoadRecipes reads. Recipe text stays literal UTF-8 in the file. Used by
// the scrape command to hand converted recipes to a later export run.
func WriteBatch(recipes []models.Recipe, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(batchDocument{Recipes: recipes}); err != nil {
		return fmt.Errorf("encode recipes: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write recipes: %w", err)
	}
	return nil
}
