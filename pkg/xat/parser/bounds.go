package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/niumlaque/xat/pkg/xat/models"
)

// TrimToUsedRange builds a Sheet from rows anchored at A1, keeping only the
// bounding box of non-empty cells. Leading empty rows and columns are dropped
// and every row is padded to the width of the box.
func TrimToUsedRange(sheetName string, rows []models.Row) *models.Sheet {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.NewSheet(sheetName, 1, 1, 0, nil)
	}

	used := make([]models.Row, 0, maxRow-minRow+1)
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		if minCol >= len(row) {
			used = append(used, nil)
			continue
		}
		end := min(maxCol+1, len(row))
		used = append(used, row[minCol:end])
	}

	return models.NewSheet(sheetName, minRow+1, minCol+1, maxCol-minCol+1, used)
}

// UsedRange returns the used range of sheet in A1 notation, or "" for a
// sheet without cells.
func UsedRange(sheet *models.Sheet) string {
	if sheet.Width == 0 || len(sheet.Rows) == 0 {
		return ""
	}
	startCell, _ := excelize.CoordinatesToCellName(sheet.FirstCol, sheet.FirstRow)
	endCell, _ := excelize.CoordinatesToCellName(sheet.FirstCol+sheet.Width-1, sheet.RowNumber(len(sheet.Rows)-1))
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows []models.Row) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == nil || models.IsEmpty(cell) {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
