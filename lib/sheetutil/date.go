package sheetutil

import (
	"regexp"
	"strconv"
)

var ddmmyyyyRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// DateKey converts a dd/mm/yyyy ledger date into a sortable integer
// (yyyy*10000 + mm*100 + dd). Malformed dates sort as 0, i.e. oldest.
func DateKey(raw string) int {
	m := ddmmyyyyRegex.FindStringSubmatch(Clean(raw))
	if m == nil {
		return 0
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return year*10000 + month*100 + day
}
