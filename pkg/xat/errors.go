package xat

import (
	"errors"
	"fmt"
	"strings"
)

// ErrWorkbookOpen indicates the input file could not be read as a workbook.
var ErrWorkbookOpen = errors.New("cannot open workbook")

// ErrSheetNotFound indicates the requested sheet name does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrSheetDecode indicates the worksheet data is structurally invalid.
var ErrSheetDecode = errors.New("cannot decode sheet")

// ErrOutputWrite indicates the converted text could not be written.
var ErrOutputWrite = errors.New("cannot write output")

// ErrNoSheets indicates a workbook without any worksheet.
var ErrNoSheets = errors.New("workbook contains no sheets")

// ConvertError represents a failed conversion.
type ConvertError struct {
	Kind      error // one of the Err* sentinels above
	Path      string
	SheetName string
	Err       error
}

func (e *ConvertError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.Error())
	if e.SheetName != "" {
		fmt.Fprintf(&b, " %q", e.SheetName)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the error kind and its cause to errors.Is and errors.As.
func (e *ConvertError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewConvertError creates a new ConvertError.
func NewConvertError(kind error, path, sheetName string, err error) *ConvertError {
	return &ConvertError{
		Kind:      kind,
		Path:      path,
		SheetName: sheetName,
		Err:       err,
	}
}
