// Package pivot reshapes long-format indicator records into a wide table with
// one row per year and one column per indicator.
package pivot

import (
	"sort"
	"strconv"

	"ghanarepro/internal/indicator"
)

// KeyColumns lead every wide table.
var KeyColumns = []string{"country", "year"}

// Options tunes the row set of the wide table.
type Options struct {
	// Country fills the country column. Defaults to indicator.Country.
	Country string

	// Years, when non-empty, is added to the row set so that every listed
	// year appears even without data. By default only years present in the
	// records produce rows.
	Years []int
}

// Row is one wide row. Values holds only the indicators with data.
type Row struct {
	Country string
	Year    int
	Values  map[string]indicator.Number
}

// Table is the pivoted result.
type Table struct {
	Columns    []string // indicator columns, in output order
	Rows       []Row    // ascending by year
	Unassigned int      // records whose indicator is not in Columns
}

// Wide groups recs by year and scatters each value into its indicator
// column. A later record for the same (year, indicator) replaces an earlier
// one. Records for indicators not in columns are counted and ignored.
func Wide(recs []indicator.Record, columns []string, opts Options) Table {
	country := opts.Country
	if country == "" {
		country = indicator.Country
	}

	known := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		known[c] = struct{}{}
	}

	t := Table{Columns: append([]string(nil), columns...)}
	byYear := make(map[int]map[string]indicator.Number)
	for _, y := range opts.Years {
		if _, ok := byYear[y]; !ok {
			byYear[y] = map[string]indicator.Number{}
		}
	}

	for _, r := range recs {
		if _, ok := known[r.Indicator]; !ok {
			t.Unassigned++
			continue
		}
		cells, ok := byYear[r.Year]
		if !ok {
			cells = map[string]indicator.Number{}
			byYear[r.Year] = cells
		}
		cells[r.Indicator] = r.Value
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	t.Rows = make([]Row, 0, len(years))
	for _, y := range years {
		t.Rows = append(t.Rows, Row{Country: country, Year: y, Values: byYear[y]})
	}
	return t
}

// Header returns the full wide header: country, year, then the indicator
// columns.
func (t Table) Header() []string {
	h := make([]string, 0, len(KeyColumns)+len(t.Columns))
	h = append(h, KeyColumns...)
	return append(h, t.Columns...)
}

// Records renders every row as CSV fields aligned with Header. Cells without
// data are empty strings.
func (t Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rec := make([]string, 0, len(KeyColumns)+len(t.Columns))
		rec = append(rec, r.Country, strconv.Itoa(r.Year))
		for _, c := range t.Columns {
			if v, ok := r.Values[c]; ok {
				rec = append(rec, v.String())
			} else {
				rec = append(rec, "")
			}
		}
		out = append(out, rec)
	}
	return out
}
