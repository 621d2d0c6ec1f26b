// Package xat converts a worksheet of a spreadsheet workbook into delimited
// text.
package xat

import "github.com/niumlaque/xat/pkg/xat/models"

// Options configures a conversion.
type Options struct {
	// SheetName selects the sheet to convert by exact, case-sensitive name.
	// If empty, the first sheet of the workbook is used.
	SheetName string
	// Password decrypts password protected workbooks.
	Password string
	// Output controls the text rendering.
	Output models.OutputConfig
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Output: models.DefaultOutputConfig(),
	}
}
