// Package paper reproduces the Ghana indicator table transcribed from the IMF
// paper as a flat, long-format record set.
package paper

import "ghanarepro/internal/indicator"

// Period types assigned to flattened records.
const (
	PeriodActual     = "Actual"
	PeriodProjection = "Projection"
)

// FlattenOptions controls the constant fields stamped on every record.
// The zero value uses the paper's country, baseline year and source label.
type FlattenOptions struct {
	Country      string
	BaselineYear int
	Source       string
}

func (o FlattenOptions) withDefaults() FlattenOptions {
	if o.Country == "" {
		o.Country = indicator.Country
	}
	if o.BaselineYear == 0 {
		o.BaselineYear = BaselineYear
	}
	if o.Source == "" {
		o.Source = Source
	}
	return o
}

// Flatten turns table into one record per (series, year) with a defined
// value. Records keep the table's series order; within a series years are
// ascending. The baseline year is tagged "Actual", every other year
// "Projection".
func Flatten(table []indicator.Series, opts FlattenOptions) []indicator.Record {
	opts = opts.withDefaults()

	n := 0
	for _, s := range table {
		n += len(s.Values)
	}
	out := make([]indicator.Record, 0, n)

	for _, s := range table {
		for _, year := range s.Years() {
			period := PeriodProjection
			if year == opts.BaselineYear {
				period = PeriodActual
			}
			out = append(out, indicator.Record{
				Country:    opts.Country,
				Year:       year,
				PeriodType: period,
				Indicator:  s.Name,
				Unit:       s.Unit,
				Value:      s.Values[year],
				Source:     opts.Source,
			})
		}
	}
	return out
}
