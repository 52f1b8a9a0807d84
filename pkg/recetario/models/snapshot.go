package models

// Snapshot is the captured description of a provider template workbook:
// every sheet's header row, plus the data rows of the reference-list sheets.
// It is produced by the snapshot package and consumed by the lookup package,
// so validation runs never have to reopen the binary template.
type Snapshot struct {
	// Template is the file name of the workbook the snapshot was taken from.
	Template string `json:"template"`
	// Sheets maps sheet name to its captured contents.
	Sheets map[string]SheetSnapshot `json:"sheets"`
}

// SheetSnapshot is the captured contents of a single sheet.
type SheetSnapshot struct {
	// Headers is the first row of the sheet in column order.
	Headers []string `json:"headers"`
	// Rows holds the data rows of reference-list sheets as header→value
	// maps. Empty for sheets that are not reference lists.
	Rows []map[string]string `json:"rows,omitempty"`
}
