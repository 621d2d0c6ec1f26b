package models

import "runtime"

// OutputConfig controls how a sheet is rendered as delimited text.
type OutputConfig struct {
	// Separator is written between the fields of a line.
	Separator string
	// EOL terminates every line.
	EOL string
	// KeepEmptyRows emits rows whose cells are all Empty as blank lines.
	KeepEmptyRows bool
	// PrintRowNumber prefixes each line with its worksheet row number.
	PrintRowNumber bool
	// Encoding is the WHATWG name of the output encoding ("" means UTF-8).
	Encoding string
}

// DefaultSeparator is the field separator used when none is given.
const DefaultSeparator = "\t"

// DefaultEOL returns the line terminator of the running platform.
func DefaultEOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// DefaultOutputConfig returns the default output configuration.
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Separator: DefaultSeparator,
		EOL:       DefaultEOL(),
	}
}
