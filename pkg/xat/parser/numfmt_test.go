package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/niumlaque/xat/pkg/xat/models"
)

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		custom   string
		expected bool
	}{
		{"general", 0, "", false},
		{"integer", 1, "", false},
		{"percent", 10, "", false},
		{"built-in date", 14, "", true},
		{"built-in datetime", 22, "", true},
		{"built-in time", 46, "", true},
		{"cjk date", 57, "", true},
		{"text", 49, "", false},
		{"custom iso", 164, "yyyy-mm-dd", true},
		{"custom time", 165, "hh:mm:ss", true},
		{"elapsed hours", 166, "[h]:mm", true},
		{"locale prefix", 167, "[$-409]mmm d, yyyy", true},
		{"color only", 168, "[Red]0.00", false},
		{"quoted literal", 169, `0 "days"`, false},
		{"escaped letter", 170, `0\d`, false},
		{"scientific", 171, "0.00E+00", false},
		{"custom general", 172, "General", false},
		{"second section ignored", 173, "0;d", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDateFormat(tt.id, tt.custom))
		})
	}
}

func TestExtractCellsCustomDateStyle(t *testing.T) {
	f := excelize.NewFile()
	sheetName := "Sheet1"

	custom := "yyyy/mm/dd"
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &custom})
	require.NoError(t, err)
	numberStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	require.NoError(t, err)

	f.SetCellValue(sheetName, "A1", 43889)
	f.SetCellValue(sheetName, "B1", 43889)
	f.SetCellValue(sheetName, "C1", 43889.25)
	require.NoError(t, f.SetCellStyle(sheetName, "A1", "A1", dateStyle))
	require.NoError(t, f.SetCellStyle(sheetName, "B1", "B1", numberStyle))
	require.NoError(t, f.SetCellStyle(sheetName, "C1", "C1", dateStyle))

	path := saveWorkbook(t, f)
	wb, err := Open(path, "")
	require.NoError(t, err)
	defer wb.Close()

	sheet, err := wb.DecodeSheet(sheetName)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)

	row := sheet.Rows[0]
	assert.Equal(t, "2020-02-28 00:00:00", row[0].String())
	assert.Equal(t, models.Int(43889), row[1])
	assert.Equal(t, "2020-02-28 06:00:00", row[2].String())
}
