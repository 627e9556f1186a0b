package paper

import "ghanarepro/internal/indicator"

// BaselineYear is the last year of actual data in the paper table; later
// years are staff projections.
const BaselineYear = 2022

// Source labels every record flattened from the paper table.
const Source = "IMF paper.pdf - Ghana: Selected Economic and Financial Indicators, 2022-28"

func dec(v float64) indicator.Number { return indicator.Float(v) }
func whole(v int64) indicator.Number { return indicator.Int(v) }

// Table returns the "Selected Economic and Financial Indicators, 2022-28"
// table as transcribed from the paper. A fresh copy is built on every call.
func Table() []indicator.Series {
	return []indicator.Series{
		{Name: "GDP at constant prices", Unit: "annual percentage change", Values: map[int]indicator.Number{2022: dec(3.1), 2023: dec(2.3), 2024: dec(2.8), 2025: dec(4.4), 2026: dec(4.9), 2027: dec(5.0), 2028: dec(5.0)}},
		{Name: "Non-extractive GDP", Unit: "annual percentage change", Values: map[int]indicator.Number{2022: dec(2.4), 2023: dec(2.5), 2024: dec(2.3), 2025: dec(4.4), 2026: dec(4.8), 2027: dec(5.0), 2028: dec(5.0)}},
		{Name: "Extractive GDP", Unit: "annual percentage change", Values: map[int]indicator.Number{2022: dec(8.1), 2023: dec(0.4), 2024: dec(6.2), 2025: dec(4.2), 2026: dec(5.9), 2027: dec(5.0), 2028: dec(5.0)}},
		{Name: "Real GDP per capita", Unit: "annual percentage change", Values: map[int]indicator.Number{2022: dec(0.9), 2023: dec(-0.3), 2024: dec(0.2), 2025: dec(1.8), 2026: dec(2.3), 2027: dec(2.4), 2028: dec(2.4)}},
		{Name: "GDP deflator", Unit: "annual percentage change", Values: map[int]indicator.Number{2022: dec(28.2), 2023: dec(36.3), 2024: dec(20.2), 2025: dec(10.9), 2026: dec(7.5), 2027: dec(7.5), 2028: dec(7.5)}},
		{Name: "Consumer price index (end of period)", Unit: "annual percentage change", Values: map[int]indicator.Number{2022: dec(54.1), 2023: dec(27.6), 2024: dec(15.0), 2025: dec(8.0), 2026: dec(8.0), 2027: dec(8.0), 2028: dec(8.0)}},
		{Name: "Consumer price index (annual average)", Unit: "annual percentage change", Values: map[int]indicator.Number{2022: dec(31.9), 2023: dec(40.2), 2024: dec(22.3), 2025: dec(11.5), 2026: dec(8.0), 2027: dec(8.0), 2028: dec(8.0)}},
		{Name: "Revenue", Unit: "percent of GDP", Values: map[int]indicator.Number{2022: dec(15.8), 2023: dec(15.7), 2024: dec(16.7), 2025: dec(17.3), 2026: dec(18.2), 2027: dec(18.1), 2028: dec(18.0)}},
		{Name: "Expenditure (commitment basis)", Unit: "percent of GDP", Values: map[int]indicator.Number{2022: dec(27.7), 2023: dec(20.4), 2024: dec(21.7), 2025: dec(21.6), 2026: dec(21.8), 2027: dec(21.2), 2028: dec(21.1)}},
		{Name: "Overall balance (commitment basis)", Unit: "percent of GDP", Values: map[int]indicator.Number{2022: dec(-11.8), 2023: dec(-4.6), 2024: dec(-5.0), 2025: dec(-4.3), 2026: dec(-3.6), 2027: dec(-3.1), 2028: dec(-3.0)}},
		{Name: "Primary balance (commitment basis)", Unit: "percent of GDP", Values: map[int]indicator.Number{2022: dec(-4.4), 2023: dec(-0.5), 2024: dec(0.5), 2025: dec(1.5), 2026: dec(1.5), 2027: dec(1.5), 2028: dec(1.5)}},
		{Name: "Non-oil primary balance (commitment basis)", Unit: "percent of GDP", Values: map[int]indicator.Number{2022: dec(-6.3), 2023: dec(-1.8), 2024: dec(-0.8), 2025: dec(0.0), 2026: dec(0.0), 2027: dec(0.1), 2028: dec(0.0)}},
		{Name: "Public debt (gross)", Unit: "percent of GDP", Values: map[int]indicator.Number{2022: dec(93.3), 2023: dec(86.1), 2024: dec(83.6), 2025: dec(80.9), 2026: dec(77.9), 2027: dec(74.9), 2028: dec(72.0)}},
		{Name: "Domestic debt", Unit: "percent of GDP", Values: map[int]indicator.Number{2022: dec(50.0), 2023: dec(37.0), 2024: dec(33.7), 2025: dec(31.8), 2026: dec(29.4), 2027: dec(27.8), 2028: dec(26.4)}},
		{Name: "External debt", Unit: "percent of GDP", Values: map[int]indicator.Number{2022: dec(43.3), 2023: dec(49.1), 2024: dec(49.9), 2025: dec(49.1), 2026: dec(48.6), 2027: dec(47.1), 2028: dec(45.6)}},
		{Name: "Credit to the private sector", Unit: "annual percentage change", Values: map[int]indicator.Number{2022: dec(31.8), 2023: dec(12.6), 2024: dec(22.0), 2025: dec(13.0), 2026: dec(15.0), 2027: dec(15.0), 2028: dec(15.0)}},
		{Name: "Broad money (M2+)", Unit: "annual percentage change", Values: map[int]indicator.Number{2022: dec(32.9), 2023: dec(22.8), 2024: dec(17.4), 2025: dec(16.9), 2026: dec(16.0), 2027: dec(16.0), 2028: dec(16.0)}},
		{Name: "Velocity (GDP/M2+, end of period)", Unit: "ratio", Values: map[int]indicator.Number{2022: dec(3.4), 2023: dec(3.8), 2024: dec(4.0), 2025: dec(4.0), 2026: dec(3.9), 2027: dec(3.8), 2028: dec(3.7)}},
		{Name: "Base money", Unit: "annual percentage change", Values: map[int]indicator.Number{2022: dec(57.3), 2023: dec(6.0), 2024: dec(17.4), 2025: dec(12.1), 2026: dec(13.6), 2027: dec(11.5), 2028: dec(13.8)}},
		{Name: "Policy rate (end of period)", Unit: "percent", Values: map[int]indicator.Number{2022: dec(27.0)}},
		{Name: "Current account balance", Unit: "percent of GDP", Values: map[int]indicator.Number{2022: dec(-2.1), 2023: dec(-1.7), 2024: dec(-1.9), 2025: dec(-2.2), 2026: dec(-2.4), 2027: dec(-2.4), 2028: dec(-2.4)}},
		{Name: "BOP financing gap", Unit: "US$ million", Values: map[int]indicator.Number{2023: whole(4216), 2024: whole(3312), 2025: whole(3910), 2026: whole(3321), 2027: whole(1410), 2028: whole(937)}},
		{Name: "IMF", Unit: "US$ million", Values: map[int]indicator.Number{2023: whole(1200), 2024: whole(720), 2025: whole(720), 2026: whole(360), 2027: whole(0), 2028: whole(0)}},
		{Name: "World Bank", Unit: "US$ million", Values: map[int]indicator.Number{2023: whole(330), 2024: whole(620), 2025: whole(350), 2026: whole(250), 2027: whole(0), 2028: whole(0)}},
		{Name: "AfDB", Unit: "US$ million", Values: map[int]indicator.Number{2023: whole(59), 2024: whole(44), 2025: whole(0), 2026: whole(0), 2027: whole(0), 2028: whole(0)}},
		{Name: "Residual gap", Unit: "US$ million", Values: map[int]indicator.Number{2023: whole(2627), 2024: whole(1928), 2025: whole(2840), 2026: whole(2711), 2027: whole(1410), 2028: whole(937)}},
		{Name: "Gross international reserves (program)", Unit: "US$ million", Values: map[int]indicator.Number{2022: whole(1441), 2023: whole(2388), 2024: whole(3852), 2025: whole(5501), 2026: whole(7677), 2027: whole(9250), 2028: whole(10874)}},
		{Name: "Gross international reserves in months of prospective imports", Unit: "months", Values: map[int]indicator.Number{2022: dec(0.7), 2023: dec(1.1), 2024: dec(1.7), 2025: dec(2.3), 2026: dec(3.0), 2027: dec(3.5), 2028: dec(3.9)}},
		{Name: "Gross international reserves", Unit: "US$ million", Values: map[int]indicator.Number{2022: whole(6238)}},
		{Name: "Nominal GDP", Unit: "million GHc", Values: map[int]indicator.Number{2022: whole(610222), 2023: whole(850656), 2024: whole(1050978), 2025: whole(1216854), 2026: whole(1372186), 2027: whole(1548313), 2028: whole(1746882)}},
	}
}
