package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/niumlaque/xat/pkg/xat/models"
)

// ExtractCells decodes every cell of a sheet into typed values.
// Rows and cells follow the worksheet layout starting at A1; trailing empty
// cells may be omitted.
func ExtractCells(f *excelize.File, sheetName string, date1904 bool) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	styles := newStyleCache(f)
	result := make([]models.Row, len(rows))
	for rowIdx, row := range rows {
		cells := make(models.Row, len(row))
		for colIdx, raw := range row {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}

			typ, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}

			isDate := false
			if isNumericType(typ) && raw != "" {
				if isDate, err = styles.isDateCell(sheetName, cellName); err != nil {
					return nil, err
				}
			}

			cells[colIdx] = parseValue(typ, raw, isDate, date1904)
		}
		result[rowIdx] = cells
	}

	return result, nil
}

func isNumericType(typ excelize.CellType) bool {
	return typ == excelize.CellTypeUnset || typ == excelize.CellTypeNumber
}

// parseValue converts a raw cell value to a typed cell.
func parseValue(typ excelize.CellType, raw string, isDate, date1904 bool) models.Cell {
	switch typ {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return models.Bool(b)
		}
		return models.Text(raw)
	case excelize.CellTypeError:
		return models.Error(raw)
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.Text(raw)
	case excelize.CellTypeDate:
		return parseISODate(raw)
	}

	if raw == "" {
		return models.Empty{}
	}
	if isDate {
		return serialToDateTime(raw, date1904)
	}
	return parseNumber(raw)
}

// parseNumber returns Int for integral values written without a fraction or
// exponent, Float for other numbers and Text for anything else.
func parseNumber(s string) models.Cell {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return models.Int(i)
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Float(f)
	}
	return models.Text(s)
}

// serialToDateTime resolves an Excel serial date. Values excelize rejects
// keep their raw form.
func serialToDateTime(raw string, date1904 bool) models.Cell {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.UnresolvedDateTime(raw)
	}

	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return models.UnresolvedDateTime(raw)
	}
	return models.NewDateTime(raw, t)
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
	"15:04:05.999999999",
}

// parseISODate resolves the ISO 8601 value of a t="d" cell.
func parseISODate(raw string) models.Cell {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return models.NewDateTime(raw, t)
		}
	}
	return models.UnresolvedDateTime(raw)
}
