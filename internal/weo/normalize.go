// Package weo selects Ghana series from the multi-country WEO CSV export and
// normalizes them into long-format indicator records.
package weo

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"ghanarepro/internal/indicator"
	"ghanarepro/internal/parser/csv"
)

// Column names in the WEO export.
const (
	ColCountry    = "COUNTRY"
	ColSeriesCode = "SERIES_CODE"
)

// Source labels every record produced from the WEO export.
const Source = "IMF WEO 9.0.0 (via repository WEO.csv)"

// Selection describes which rows and year columns are taken from the export.
type Selection struct {
	Country   string
	Whitelist Whitelist
	FirstYear int
	LastYear  int
	Source    string
}

// DefaultSelection returns Ghana, the default whitelist and 2015-2030.
func DefaultSelection() Selection {
	return Selection{
		Country:   indicator.Country,
		Whitelist: DefaultWhitelist(),
		FirstYear: 2015,
		LastYear:  2030,
		Source:    Source,
	}
}

// Years returns the inclusive year range of the selection.
func (s Selection) Years() []int {
	if s.LastYear < s.FirstYear {
		return nil
	}
	out := make([]int, 0, s.LastYear-s.FirstYear+1)
	for y := s.FirstYear; y <= s.LastYear; y++ {
		out = append(out, y)
	}
	return out
}

// Stats summarizes a Normalize pass.
type Stats struct {
	Scanned  int // source rows examined
	Selected int // rows matching country and whitelist
	Values   int // cells that produced a record
	Blank    int // empty or whitespace-only cells
	Invalid  int // non-empty cells that failed numeric parsing
}

// Normalize emits one record per selected row and year with a numeric cell.
// Rows for other countries or series are dropped silently. Output order
// follows the input; call SortLong for the canonical ordering.
func Normalize(rows []csv.Row, sel Selection) ([]indicator.Record, Stats) {
	var (
		stats Stats
		out   []indicator.Record
		names = sel.Whitelist.index()
		years = sel.Years()
	)

	for _, row := range rows {
		stats.Scanned++
		if row.Get(ColCountry) != sel.Country {
			continue
		}
		code := row.Get(ColSeriesCode)
		name, ok := names[code]
		if !ok {
			continue
		}
		stats.Selected++

		for _, year := range years {
			cell := row.Get(strconv.Itoa(year))
			v, ok := ParseValue(cell)
			if !ok {
				if strings.TrimSpace(cell) == "" {
					stats.Blank++
				} else {
					stats.Invalid++
				}
				continue
			}
			stats.Values++
			out = append(out, indicator.Record{
				Country:    sel.Country,
				Year:       year,
				SeriesCode: code,
				Indicator:  name,
				Value:      v,
				Source:     sel.Source,
			})
		}
	}
	return out, stats
}

// ParseValue converts a cell to a number rounded to three decimals. Empty,
// whitespace-only, unparseable and non-finite cells report ok=false.
func ParseValue(cell string) (indicator.Number, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return indicator.Number{}, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return indicator.Number{}, false
	}
	return indicator.Float(Round3(f)), true
}

// Round3 rounds f to three decimal places. Rounding works on the exact
// decimal expansion of f, so 1.0005 (stored as 1.000499...) becomes 1.0.
func Round3(f float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 3, 64), 64)
	if err != nil {
		return f
	}
	return r
}

// SortLong orders records by (year, indicator) ascending. The sort is stable
// so records sharing both keys keep their input order.
func SortLong(recs []indicator.Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Year != recs[j].Year {
			return recs[i].Year < recs[j].Year
		}
		return recs[i].Indicator < recs[j].Indicator
	})
}
