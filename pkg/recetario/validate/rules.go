package validate

import (
	"fmt"
	"strings"

	"github.com/recetario/recetario/pkg/recetario/models"
)

// Steps checks the field combination of every step against its working
// mode. Steps are independent of one another; there is no cross-step
// sequencing constraint. Messages accumulate in step order.
func Steps(steps []models.Step) []string {
	var errs []string

	for _, step := range steps {
		switch step.Mode {
		case models.ModeDescription, models.ModeWeigh:
			// Manual steps carry only text. Any machine control set on
			// them yields a single combined error, not one per field.
			if blankDescription(step) {
				errs = append(errs, fmt.Sprintf("step %d: description required for %s", step.No, step.Mode))
			}
			if hasControls(step) {
				errs = append(errs, fmt.Sprintf("step %d: controls must be empty for %s", step.No, step.Mode))
			}
		case models.ModeAdaptedCooking:
			// Machine steps need a duration and a speed. Temperature and
			// direction are unconstrained in this mode.
			if !blankDescription(step) {
				errs = append(errs, fmt.Sprintf("step %d: description should be empty for %s", step.No, step.Mode))
			}
			if step.Minutes == nil && step.Seconds == nil {
				errs = append(errs, fmt.Sprintf("step %d: time required for %s", step.No, step.Mode))
			}
			if step.Speed == nil {
				errs = append(errs, fmt.Sprintf("step %d: speed required for %s", step.No, step.Mode))
			}
		default:
			errs = append(errs, fmt.Sprintf("step %d: unsupported working mode %s", step.No, step.Mode))
		}
	}

	return errs
}

func blankDescription(s models.Step) bool {
	return s.Description == nil || strings.TrimSpace(*s.Description) == ""
}

func hasControls(s models.Step) bool {
	return s.Temperature != nil ||
		s.Speed != nil ||
		s.Direction != nil ||
		s.Minutes != nil ||
		s.Seconds != nil
}
