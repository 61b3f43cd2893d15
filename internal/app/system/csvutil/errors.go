// internal/app/system/csvutil/errors.go
package csvutil

import "errors"

var (
	// ErrInputTooLarge is returned when the export exceeds Options.MaxBytes.
	ErrInputTooLarge = errors.New("csv input exceeds size limit")

	// ErrTooManyRows is returned when the export has more data rows than
	// Options.MaxRows.
	ErrTooManyRows = errors.New("csv input exceeds row limit")
)

// RowSkip records a data row that was left out of the output and why.
// Skips are informational; they never fail a run.
type RowSkip struct {
	Line   int    // 1-based line where the row starts
	Title  string // resource name, if the row had one
	Reason string
}
