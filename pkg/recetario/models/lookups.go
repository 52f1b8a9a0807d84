package models

// LookupTables holds the reference value sets extracted from a template
// snapshot: one deduplicated, lexicographically sorted list per category.
// Tables are built once per run and treated as read-only afterwards.
//
// An empty category is valid and means "nothing is allowed": normalization
// checks membership, so missing reference data fails closed, not open.
type LookupTables struct {
	// Units is the allowed ingredient unit labels.
	Units []string `json:"units"`
	// Accessories is the allowed accessory names.
	Accessories []string `json:"accessories"`
	// WorkingModes is the working-mode labels the template lists.
	WorkingModes []string `json:"working_modes"`
	// Categories is the allowed recipe category names.
	Categories []string `json:"categories"`
	// Labels is the allowed recipe label names.
	Labels []string `json:"labels"`
}
