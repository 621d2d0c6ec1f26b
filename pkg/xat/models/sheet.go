package models

// Row is one row of a sheet, in column order.
type Row []Cell

// IsEmpty reports whether every cell of the row is Empty. Text cells are
// never empty, even when they hold only whitespace.
func (r Row) IsEmpty() bool {
	for _, c := range r {
		if !IsEmpty(c) {
			return false
		}
	}
	return true
}

// Sheet represents the decoded cell grid of a single worksheet.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// FirstRow is the worksheet row number (1-based) of Rows[0].
	FirstRow int
	// FirstCol is the worksheet column number (1-based) of the first cell of each row.
	FirstCol int
	// Width is the number of cells in every row.
	Width int
	// Rows contains the rows of the used range, top to bottom.
	Rows []Row
}

// NewSheet builds a Sheet whose rows are padded with Empty cells, or
// truncated, to width. Nil cells are replaced by Empty.
func NewSheet(name string, firstRow, firstCol, width int, rows []Row) *Sheet {
	if width < 0 {
		width = 0
	}

	normalized := make([]Row, len(rows))
	for i, row := range rows {
		out := make(Row, width)
		for j := range out {
			if j < len(row) && row[j] != nil {
				out[j] = row[j]
			} else {
				out[j] = Empty{}
			}
		}
		normalized[i] = out
	}

	return &Sheet{
		Name:     name,
		FirstRow: firstRow,
		FirstCol: firstCol,
		Width:    width,
		Rows:     normalized,
	}
}

// RowNumber returns the worksheet row number (1-based) of Rows[i].
func (s *Sheet) RowNumber(i int) int {
	return s.FirstRow + i
}
