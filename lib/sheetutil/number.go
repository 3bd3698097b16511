package sheetutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var moneyRunes = strings.NewReplacer(",", "", "€", "", "$", "")
var yearRegex = regexp.MustCompile(`^\d{4}$`)
var decimalRegex = regexp.MustCompile(`^\d+(\.\d+)?$`)

// ParseNumber converts a sheet cell to a float. Currency symbols and
// thousands separators are stripped. Unparsable or empty cells are 0,
// never NaN: the source data is hand-maintained and a blank means "no
// value", not "error".
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(moneyRunes.Replace(Clean(raw)))
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseSalary is ParseNumber with the "m" (millions) suffix stripped,
// for cells like "$12m". The unit stays whatever the column declares.
func ParseSalary(raw string) float64 {
	s := moneyRunes.Replace(Clean(raw))
	s = strings.TrimSpace(strings.NewReplacer("m", "", "M", "").Replace(s))
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

// IsYear reports whether a cell is a bare 4-digit year label.
func IsYear(raw string) bool {
	return yearRegex.MatchString(Clean(raw))
}

// AsYear normalizes a cell to a "YYYY" string, tolerating the trailing
// ".0" that numeric coercion sometimes produces ("2021.0" -> "2021").
// Returns "" when the cell is not year-like.
func AsYear(raw string) string {
	s := Clean(raw)
	if IsYear(s) {
		return s
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ""
	}
	if n >= 1900 && n <= 2100 && n == float64(int(n)) {
		return strconv.Itoa(int(n))
	}
	return ""
}

// FormatTenthsPercent renders the sheet's tenths-of-a-percent integers
// with a decimal comma: 119 -> "11,9%", 1000 -> "100,0%". Non-numeric
// input is passed through untouched so stray text survives display.
func FormatTenthsPercent(raw string) string {
	t := Clean(raw)
	if t == "" {
		return ""
	}
	cleaned := strings.ReplaceAll(t, ",", ".")
	if !decimalRegex.MatchString(cleaned) {
		return raw
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return raw
	}
	return strings.Replace(fmt.Sprintf("%.1f%%", n/10), ".", ",", 1)
}
