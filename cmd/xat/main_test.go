package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/niumlaque/xat/pkg/xat"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", 1)
	f.SetCellValue("Sheet1", "B1", "a")
	f.SetCellValue("Sheet1", "A3", "b")
	f.SetCellValue("Sheet1", "B3", 2.25)

	_, err := f.NewSheet("Other")
	require.NoError(t, err)
	f.SetCellValue("Other", "A1", "other")

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRootCmd(t *testing.T) {
	path := writeWorkbook(t)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"defaults", []string{path, "--eol", `\n`}, "1\ta\nb\t2.25\n"},
		{"separator", []string{path, "-s", ",", "--eol", "\n"}, "1,a\nb,2.25\n"},
		{"escaped separator", []string{path, "-s", `\x1f`, "--eol", `\n`}, "1\x1fa\nb\x1f2.25\n"},
		{"empty rows", []string{path, "-s", ",", "--eol", `\r\n`, "--print-empty-row"}, "1,a\r\n,\r\nb,2.25\r\n"},
		{"row numbers", []string{path, "-s", ",", "--eol", `\n`, "--print-row-num"}, "1,1,a\n3,b,2.25\n"},
		{"named sheet", []string{path, "Other", "--eol", `\n`}, "other\n"},
		{"list sheets", []string{path, "--list-sheets"}, "Sheet1\nOther\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRootCmdSheetNotFound(t *testing.T) {
	path := writeWorkbook(t)

	out, err := execute(t, path, "other")
	assert.ErrorIs(t, err, xat.ErrSheetNotFound)
	assert.Empty(t, out)
}

func TestRootCmdOutputFile(t *testing.T) {
	path := writeWorkbook(t)
	dest := filepath.Join(t.TempDir(), "out.tsv")

	out, err := execute(t, path, "-o", dest, "--eol", `\n`)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "1\ta\nb\t2.25\n", string(data))
}

func TestRootCmdOutputFileNotCreatedOnFailure(t *testing.T) {
	path := writeWorkbook(t)
	dest := filepath.Join(t.TempDir(), "out.tsv")

	_, err := execute(t, path, "Missing", "-o", dest)
	require.Error(t, err)
	assert.NoFileExists(t, dest)
}

func TestRootCmdRowNumbersAreWorksheetRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "B3", "first")
	f.SetCellValue("Sheet1", "B5", "second")
	path := filepath.Join(t.TempDir(), "offset.xlsx")
	require.NoError(t, f.SaveAs(path))

	out, err := execute(t, path, "-s", ",", "--eol", `\n`, "--print-row-num")
	require.NoError(t, err)
	assert.Equal(t, "3,first\n5,second\n", out)

	flag := newRootCmd().Flags().Lookup("print-row-num")
	require.NotNil(t, flag)
	assert.Contains(t, flag.Usage, "1-based")
}

func TestRootCmdBadEncoding(t *testing.T) {
	path := writeWorkbook(t)

	_, err := execute(t, path, "--encoding", "nope")
	assert.Error(t, err)
}

func TestRootCmdArgs(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)

	_, err = execute(t, "a.xlsx", "Sheet1", "extra")
	assert.Error(t, err)
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`\t`, "\t"},
		{`\r\n`, "\r\n"},
		{"\n", "\n"},
		{"\t", "\t"},
		{",", ","},
		{`"`, `"`},
		{`\`, `\`},
		{"", ""},
		{`aé`, "aé"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, unescape(tt.input), "unescape(%q)", tt.input)
	}
}
