package indicator

import (
	"strconv"

	"ghanarepro/internal/ddl"
)

// PaperColumns is the header of the flattened paper table output.
var PaperColumns = []string{"country", "year", "period_type", "indicator", "unit", "value", "source"}

// LongColumns is the header of the long WEO output.
var LongColumns = []string{"country", "year", "series_code", "indicator", "value", "source_dataset"}

// PaperKinds and LongKinds give the storage type of each column.
var (
	PaperKinds = []string{ddl.KindText, ddl.KindInt, ddl.KindText, ddl.KindText, ddl.KindText, ddl.KindFloat, ddl.KindText}
	LongKinds  = []string{ddl.KindText, ddl.KindInt, ddl.KindText, ddl.KindText, ddl.KindFloat, ddl.KindText}
)

// PaperRow renders r in PaperColumns order.
func PaperRow(r Record) []string {
	return []string{
		r.Country,
		strconv.Itoa(r.Year),
		r.PeriodType,
		r.Indicator,
		r.Unit,
		r.Value.String(),
		r.Source,
	}
}

// LongRow renders r in LongColumns order.
func LongRow(r Record) []string {
	return []string{
		r.Country,
		strconv.Itoa(r.Year),
		r.SeriesCode,
		r.Indicator,
		r.Value.String(),
		r.Source,
	}
}

// PaperValues returns r as typed values aligned to PaperColumns, suitable
// for a database bulk load.
func PaperValues(r Record) []any {
	return []any{r.Country, int64(r.Year), r.PeriodType, r.Indicator, r.Unit, r.Value.Value, r.Source}
}

// LongValues returns r as typed values aligned to LongColumns.
func LongValues(r Record) []any {
	return []any{r.Country, int64(r.Year), r.SeriesCode, r.Indicator, r.Value.Value, r.Source}
}

// Rows renders every record with the given row function.
func Rows(recs []Record, render func(Record) []string) [][]string {
	out := make([][]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, render(r))
	}
	return out
}

// ValueRows renders every record with the given typed-row function.
func ValueRows(recs []Record, render func(Record) []any) [][]any {
	out := make([][]any, 0, len(recs))
	for _, r := range recs {
		out = append(out, render(r))
	}
	return out
}
