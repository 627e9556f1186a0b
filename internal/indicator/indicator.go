// Package indicator defines the in-memory model shared by the reproduction
// pipelines: indicator series transcribed from a table, long-format records
// (one value per indicator and year) and the column sets used when those
// records are written out.
package indicator

import (
	"sort"
	"strconv"
)

// Country is the only country handled by the pipelines.
const Country = "Ghana"

// Number is a numeric cell value. Int records whether the value was
// transcribed as an integer literal; integers serialize without a fractional
// part while every other value keeps at least one fractional digit.
type Number struct {
	Value float64
	Int   bool
}

// Float returns a Number for a non-integer literal.
func Float(v float64) Number { return Number{Value: v} }

// Int returns a Number for an integer literal.
func Int(v int64) Number { return Number{Value: float64(v), Int: true} }

// String renders n in shortest round-trip decimal notation, e.g. 27.0, 3.8,
// -0.3, 4216. No exponent, no thousands separators, even for |v| >= 1e16.
func (n Number) String() string {
	if n.Int {
		return strconv.FormatFloat(n.Value, 'f', 0, 64)
	}
	s := strconv.FormatFloat(n.Value, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}

// Series is one row of a transcribed indicator table. Years missing from
// Values have no data and are never emitted.
type Series struct {
	Name   string
	Unit   string
	Values map[int]Number
}

// Years returns the years with a defined value, ascending.
func (s Series) Years() []int {
	years := make([]int, 0, len(s.Values))
	for y := range s.Values {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Record is a single long-format observation. Unit and SeriesCode are
// mutually optional depending on the pipeline that produced the record;
// PeriodType is only set for records flattened from the paper table.
type Record struct {
	Country    string
	Year       int
	PeriodType string
	Indicator  string
	Unit       string
	SeriesCode string
	Value      Number
	Source     string
}
