package indicator

import (
	"math"
	"reflect"
	"testing"
)

func TestNumberString(t *testing.T) {
	cases := []struct {
		name string
		in   Number
		want string
	}{
		{"float whole", Float(27.0), "27.0"},
		{"float fraction", Float(3.8), "3.8"},
		{"negative", Float(-0.3), "-0.3"},
		{"zero float", Float(0), "0.0"},
		{"negative zero", Float(math.Copysign(0, -1)), "-0.0"},
		{"three decimals", Float(12.346), "12.346"},
		{"large float", Float(1746882.5), "1746882.5"},
		{"no exponent", Float(1e16), "10000000000000000.0"},
		{"int", Int(4216), "4216"},
		{"int zero", Int(0), "0"},
		{"int large", Int(1746882), "1746882"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSeriesYearsSorted(t *testing.T) {
	s := Series{Values: map[int]Number{2024: Float(1), 2022: Float(2), 2023: Float(3)}}
	if got, want := s.Years(), []int{2022, 2023, 2024}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Years() = %v, want %v", got, want)
	}
	if got := (Series{}).Years(); len(got) != 0 {
		t.Fatalf("empty series Years() = %v", got)
	}
}

func TestRowRendering(t *testing.T) {
	r := Record{
		Country:    Country,
		Year:       2015,
		PeriodType: "Actual",
		Indicator:  "Real GDP growth (%)",
		Unit:       "percent",
		SeriesCode: "GHA.NGDP_RPCH.A",
		Value:      Float(3.8),
		Source:     "src",
	}
	if got, want := PaperRow(r), []string{"Ghana", "2015", "Actual", "Real GDP growth (%)", "percent", "3.8", "src"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("PaperRow = %v, want %v", got, want)
	}
	if got, want := LongRow(r), []string{"Ghana", "2015", "GHA.NGDP_RPCH.A", "Real GDP growth (%)", "3.8", "src"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("LongRow = %v, want %v", got, want)
	}
	if n := len(PaperValues(r)); n != len(PaperColumns) {
		t.Fatalf("PaperValues width %d != %d", n, len(PaperColumns))
	}
	if n := len(LongValues(r)); n != len(LongColumns) {
		t.Fatalf("LongValues width %d != %d", n, len(LongColumns))
	}
	if got := Rows([]Record{r, r}, LongRow); len(got) != 2 {
		t.Fatalf("Rows len = %d, want 2", len(got))
	}
	if got := ValueRows([]Record{r}, LongValues); got[0][1] != int64(2015) || got[0][4] != 3.8 {
		t.Fatalf("ValueRows = %v", got)
	}
	if len(PaperKinds) != len(PaperColumns) || len(LongKinds) != len(LongColumns) {
		t.Fatal("column kinds not aligned with columns")
	}
}
