// Package output renders decoded sheets as delimited text.
package output

import (
	"io"
	"strconv"

	"github.com/niumlaque/xat/pkg/xat/models"
)

// WriteSheet writes every row of sheet to w, one line per row.
//
// Rows whose cells are all Empty are skipped unless cfg.KeepEmptyRows is set.
// Each line is written with a single Write call; the only errors returned are
// the ones reported by w.
func WriteSheet(w io.Writer, sheet *models.Sheet, cfg models.OutputConfig) error {
	var line []byte
	for i, row := range sheet.Rows {
		if !cfg.KeepEmptyRows && row.IsEmpty() {
			continue
		}

		line = line[:0]
		if cfg.PrintRowNumber {
			line = strconv.AppendInt(line, int64(sheet.RowNumber(i)), 10)
			line = append(line, cfg.Separator...)
		}
		line = AppendRow(line, row, cfg.Separator)
		line = append(line, cfg.EOL...)

		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// AppendRow appends the rendered cells of row, joined by sep, to dst.
func AppendRow(dst []byte, row models.Row, sep string) []byte {
	for i, c := range row {
		if i > 0 {
			dst = append(dst, sep...)
		}
		dst = append(dst, c.String()...)
	}
	return dst
}
