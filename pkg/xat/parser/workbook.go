// Package parser decodes Excel workbooks into typed sheets.
package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/niumlaque/xat/pkg/xat/models"
)

// StdinPath is the path that makes Open read the workbook from standard input.
const StdinPath = "-"

// Workbook is an opened spreadsheet file.
type Workbook struct {
	file     *excelize.File
	date1904 bool
}

// Open opens the workbook at path. An empty password opens unencrypted files.
func Open(path, password string) (*Workbook, error) {
	if path == StdinPath {
		return OpenReader(os.Stdin, password)
	}

	f, err := excelize.OpenFile(path, excelize.Options{Password: password})
	if err != nil {
		return nil, err
	}
	return newWorkbook(f)
}

// OpenReader reads a workbook from r.
func OpenReader(r io.Reader, password string) (*Workbook, error) {
	f, err := excelize.OpenReader(r, excelize.Options{Password: password})
	if err != nil {
		return nil, err
	}
	return newWorkbook(f)
}

func newWorkbook(f *excelize.File) (*Workbook, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read workbook properties: %w", err)
	}

	wb := &Workbook{file: f}
	if props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb, nil
}

// SheetNames returns the worksheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// DecodeSheet reads the whole worksheet into memory.
func (w *Workbook) DecodeSheet(name string) (*models.Sheet, error) {
	rows, err := ExtractCells(w.file, name, w.date1904)
	if err != nil {
		return nil, err
	}
	return TrimToUsedRange(name, rows), nil
}

// Close releases the resources held by the workbook.
func (w *Workbook) Close() error {
	return w.file.Close()
}
