// Package models defines the sheet data structures shared by the decoder and
// the serializer.
package models

import (
	"strconv"
	"time"
)

// DateTimeLayout is the canonical text form of a resolved DateTime cell.
const DateTimeLayout = "2006-01-02 15:04:05"

// Cell is a single typed value of a sheet.
//
// The set of implementations is closed: Int, Float, Text, Bool, DateTime,
// Error and Empty. String returns the canonical rendering of the value and
// never fails.
type Cell interface {
	String() string
	cell()
}

// Int is an integral numeric cell.
type Int int64

// Float is a non-integral numeric cell.
type Float float64

// Text is a string cell. It is rendered verbatim.
type Text string

// Bool is a boolean cell.
type Bool bool

// DateTime is a date or time cell.
type DateTime struct {
	// Raw is the value as stored by the workbook (serial number or ISO string).
	Raw string
	// Time is the resolved calendar timestamp, valid when Resolved is true.
	Time     time.Time
	Resolved bool
}

// Error is a formula error cell such as #DIV/0! or #N/A.
type Error string

// Empty is a cell with no value.
type Empty struct{}

func (Int) cell() {}
func (Float) cell() {}
func (Text) cell() {}
func (Bool) cell() {}
func (DateTime) cell() {}
func (Error) cell() {}
func (Empty) cell() {}

func (c Int) String() string { return strconv.FormatInt(int64(c), 10) }

func (c Float) String() string { return strconv.FormatFloat(float64(c), 'f', -1, 64) }

func (c Text) String() string { return string(c) }

func (c Bool) String() string { return strconv.FormatBool(bool(c)) }

// String renders the resolved timestamp, or the raw value when the decoder
// could not resolve it.
func (c DateTime) String() string {
	if !c.Resolved {
		return c.Raw
	}
	return c.Time.Format(DateTimeLayout)
}

func (c Error) String() string { return string(c) }

func (Empty) String() string { return "" }

// NewDateTime returns a resolved DateTime cell.
func NewDateTime(raw string, t time.Time) DateTime {
	return DateTime{Raw: raw, Time: t.Round(time.Second), Resolved: true}
}

// UnresolvedDateTime returns a DateTime cell that renders its raw value.
func UnresolvedDateTime(raw string) DateTime {
	return DateTime{Raw: raw}
}

// IsEmpty reports whether c is the Empty variant.
func IsEmpty(c Cell) bool {
	_, ok := c.(Empty)
	return ok
}
