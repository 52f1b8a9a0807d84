package xlsx

import (
	"fmt"
	"strings"

	"github.com/recetario/recetario/pkg/recetario/models"
)

// buildOverview renders the Spanish overview paragraph the provider shows on
// the recipe page: the accessory sentence first, then every written step
// description, then one "Cocinamos ..." sentence per machine step.
func buildOverview(steps []models.Step, accessoryName string) string {
	sentences := []string{fmt.Sprintf("Ponemos en el vaso el accesorio \"%s\".", accessoryName)}

	for _, step := range steps {
		if step.Description != nil && strings.TrimSpace(*step.Description) != "" {
			sentences = append(sentences, strings.TrimSpace(*step.Description))
			continue
		}
		if step.Temperature == nil && step.Speed == nil && step.Minutes == nil && step.Seconds == nil {
			continue
		}

		var timeParts []string
		if step.Minutes != nil {
			timeParts = append(timeParts, fmt.Sprintf("%d minutos", *step.Minutes))
		}
		// A zero seconds value reads as noise next to the minutes.
		if step.Seconds != nil && *step.Seconds != 0 {
			timeParts = append(timeParts, fmt.Sprintf("%d segundos", *step.Seconds))
		}

		var details []string
		if timeText := strings.Join(timeParts, " "); timeText != "" {
			details = append(details, timeText)
		}
		if step.Temperature != nil {
			details = append(details, fmt.Sprintf("%d°C", *step.Temperature))
		}
		if step.Speed != nil {
			details = append(details, fmt.Sprintf("velocidad %d", *step.Speed))
		}
		if len(details) > 0 {
			sentences = append(sentences, fmt.Sprintf("Cocinamos %s.", strings.Join(details, ", ")))
		}
	}

	return strings.Join(sentences, " ")
}
