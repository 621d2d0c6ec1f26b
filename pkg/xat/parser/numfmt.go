package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// styleCache remembers which cell style indexes carry a date number format.
type styleCache struct {
	f     *excelize.File
	dates map[int]bool
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, dates: make(map[int]bool)}
}

func (c *styleCache) isDateCell(sheetName, cellName string) (bool, error) {
	idx, err := c.f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return false, err
	}
	if isDate, ok := c.dates[idx]; ok {
		return isDate, nil
	}

	style, err := c.f.GetStyle(idx)
	if err != nil {
		return false, err
	}

	custom := ""
	if style.CustomNumFmt != nil {
		custom = *style.CustomNumFmt
	}
	isDate := IsDateFormat(style.NumFmt, custom)
	c.dates[idx] = isDate
	return isDate, nil
}

// IsDateFormat reports whether a number format renders serial numbers as
// dates or times. id is the built-in format id; custom is the format code of
// a user-defined format.
func IsDateFormat(id int, custom string) bool {
	if custom != "" {
		return isDateFormatCode(custom)
	}
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	case id >= 71 && id <= 81:
		return true
	}
	return false
}

// isDateFormatCode scans the first section of a format code for date or time
// tokens, ignoring quoted literals, escaped characters and bracketed
// modifiers other than elapsed time ([h], [mm], [ss]).
func isDateFormatCode(code string) bool {
	if section, _, found := strings.Cut(code, ";"); found {
		code = section
	}
	if strings.EqualFold(strings.TrimSpace(code), "general") {
		return false
	}

	for i := 0; i < len(code); i++ {
		switch ch := code[i]; ch {
		case '"':
			end := strings.IndexByte(code[i+1:], '"')
			if end < 0 {
				return false
			}
			i += end + 1
		case '\\', '_', '*':
			i++
		case '[':
			end := strings.IndexByte(code[i+1:], ']')
			if end < 0 {
				return false
			}
			inner := strings.ToLower(code[i+1 : i+1+end])
			if inner != "" && strings.Trim(inner, "hms") == "" {
				return true
			}
			i += end + 1
		case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
			return true
		}
	}
	return false
}
