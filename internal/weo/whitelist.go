package weo

// Series pairs a WEO series code with the indicator name used in outputs.
type Series struct {
	Code string
	Name string
}

// Whitelist is an ordered set of series. Order defines the wide output's
// column order.
type Whitelist []Series

// DefaultWhitelist returns the Ghana series selected to line up with the
// IMF country report's macro, fiscal and external tables.
func DefaultWhitelist() Whitelist {
	return Whitelist{
		{"GHA.NGDP_RPCH.A", "Real GDP growth (%)"},
		{"GHA.PCPIPCH.A", "Inflation, average CPI (%)"},
		{"GHA.PCPIEPCH.A", "Inflation, end-of-period CPI (%)"},
		{"GHA.GGXCNL_NGDP.A", "Overall fiscal balance (% of GDP)"},
		{"GHA.GGXONLB_NGDP.A", "Primary fiscal balance (% of GDP)"},
		{"GHA.GGR_NGDP.A", "General government revenue (% of GDP)"},
		{"GHA.GGX_NGDP.A", "General government expenditure (% of GDP)"},
		{"GHA.GGXWDG_NGDP.A", "General government gross debt (% of GDP)"},
		{"GHA.BCA_NGDPD.A", "Current account balance (% of GDP)"},
		{"GHA.NID_NGDP.A", "Gross capital formation (% of GDP)"},
		{"GHA.NGSD_NGDP.A", "Gross national savings (% of GDP)"},
		{"GHA.TX_RPCH.A", "Exports of goods and services volume growth (%)"},
		{"GHA.TM_RPCH.A", "Imports of goods and services volume growth (%)"},
		{"GHA.NGDPD.A", "Nominal GDP (US$ billions)"},
	}
}

// Lookup returns the indicator name for code.
func (w Whitelist) Lookup(code string) (string, bool) {
	for _, s := range w {
		if s.Code == code {
			return s.Name, true
		}
	}
	return "", false
}

// Names returns the indicator names in declaration order.
func (w Whitelist) Names() []string {
	out := make([]string, len(w))
	for i, s := range w {
		out[i] = s.Name
	}
	return out
}

// index builds a code → name map for the hot path.
func (w Whitelist) index() map[string]string {
	m := make(map[string]string, len(w))
	for _, s := range w {
		// First declaration wins, like Lookup.
		if _, ok := m[s.Code]; !ok {
			m[s.Code] = s.Name
		}
	}
	return m
}
