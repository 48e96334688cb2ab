package layout

// RowLabel converts a zero-based row index to its display letters.
// Rows 0..25 map to A..Z; beyond that the sequence continues in
// spreadsheet style: AA, AB, ..., AZ, BA, ... so row counts past 26
// stay well defined instead of walking off the end of the alphabet.
func RowLabel(row int) string {
	if row < 0 {
		return ""
	}
	label := ""
	n := row
	for {
		label = string(rune('A'+n%26)) + label
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return label
}
