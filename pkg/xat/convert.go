package xat

import (
	"bufio"
	"errors"
	"io"
	"slices"

	"github.com/niumlaque/xat/pkg/xat/models"
	"github.com/niumlaque/xat/pkg/xat/output"
	"github.com/niumlaque/xat/pkg/xat/parser"
)

// Workbook is the decoding capability the converter depends on.
type Workbook interface {
	// SheetNames returns the sheet names in workbook order.
	SheetNames() []string
	// DecodeSheet materializes the named sheet.
	DecodeSheet(name string) (*models.Sheet, error)
}

var _ Workbook = (*parser.Workbook)(nil)

// SelectSheet opens the workbook at path and decodes the sheet named by
// opts.SheetName, or the first sheet when no name is given.
func SelectSheet(path string, opts Options) (*models.Sheet, error) {
	wb, err := openWorkbook(path, opts)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheet, err := SheetFrom(wb, opts.SheetName)
	if err != nil {
		var ce *ConvertError
		if errors.As(err, &ce) {
			ce.Path = path
		}
		return nil, err
	}
	return sheet, nil
}

// SheetFrom resolves name against the sheets of wb and decodes it. Names
// match exactly; an empty name selects the first sheet.
func SheetFrom(wb Workbook, name string) (*models.Sheet, error) {
	names := wb.SheetNames()
	if len(names) == 0 {
		return nil, NewConvertError(ErrWorkbookOpen, "", "", ErrNoSheets)
	}

	target := name
	if target == "" {
		target = names[0]
	} else if !slices.Contains(names, target) {
		return nil, NewConvertError(ErrSheetNotFound, "", target, nil)
	}

	sheet, err := wb.DecodeSheet(target)
	if err != nil {
		return nil, NewConvertError(ErrSheetDecode, "", target, err)
	}
	return sheet, nil
}

// ListSheets returns the sheet names of the workbook at path.
func ListSheets(path string, opts Options) ([]string, error) {
	wb, err := openWorkbook(path, opts)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return wb.SheetNames(), nil
}

// Convert writes the selected sheet of the workbook at path to w as
// delimited text. Nothing is written unless the sheet was decoded.
func Convert(w io.Writer, path string, opts Options) error {
	sheet, err := SelectSheet(path, opts)
	if err != nil {
		return err
	}
	return WriteSheet(w, sheet, opts.Output)
}

// WriteSheet renders sheet to w with cfg, transcoding to cfg.Encoding.
func WriteSheet(w io.Writer, sheet *models.Sheet, cfg models.OutputConfig) error {
	ew, err := output.NewEncodingWriter(w, cfg.Encoding)
	if err != nil {
		return NewConvertError(ErrOutputWrite, "", "", err)
	}

	bw := bufio.NewWriter(ew)
	if err := output.WriteSheet(bw, sheet, cfg); err != nil {
		// bw keeps the sink error; flushing would report it again.
		return NewConvertError(ErrOutputWrite, "", "", err)
	}
	if err := errors.Join(bw.Flush(), ew.Close()); err != nil {
		return NewConvertError(ErrOutputWrite, "", "", err)
	}
	return nil
}

func openWorkbook(path string, opts Options) (*parser.Workbook, error) {
	wb, err := parser.Open(path, opts.Password)
	if err != nil {
		return nil, NewConvertError(ErrWorkbookOpen, path, "", err)
	}
	return wb, nil
}
