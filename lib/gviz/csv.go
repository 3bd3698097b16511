package gviz

// ParseCSV splits exported CSV text into rows of cells, honoring
// quoted fields and doubled-quote escapes. The export endpoint never
// emits \r\n inside fields we care about, so a bare \n is the row
// separator.
func ParseCSV(text string) [][]string {
	var rows [][]string
	var current []string
	var value []byte
	inQuotes := false

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				value = append(value, '"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			current = append(current, string(value))
			value = value[:0]
		case ch == '\n' && !inQuotes:
			current = append(current, string(value))
			rows = append(rows, current)
			current = nil
			value = value[:0]
		default:
			value = append(value, ch)
		}
	}

	if len(value) > 0 || len(current) > 0 {
		current = append(current, string(value))
		rows = append(rows, current)
	}

	return rows
}
