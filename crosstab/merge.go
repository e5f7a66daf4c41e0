/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package crosstab

// mergedRecord is one player's two physical rows combined into a single
// logical record. Row one carries identity and per-round results; row two
// carries the state code, the federation id with ratings, and per-round
// colors. All fields are already whitespace-trimmed.
type mergedRecord struct {
	line int // line number of the identity row, for diagnostics

	// identity/result row
	pairNum string
	name    string
	total   string
	rounds  []string

	// secondary row
	state      string
	ratingInfo string
	tag        string // the N: column under total points; not consumed
	colors     []string
}

// mergeRows pairs consecutive content rows (2k, 2k+1) into merged records.
// Pairing is strictly positional, so an odd row count is a fatal
// UnpairedRowError.
func mergeRows(rows []rawRow) ([]mergedRecord, error) {
	if len(rows)%2 != 0 {
		return nil, &UnpairedRowError{Rows: len(rows)}
	}

	recs := make([]mergedRecord, 0, len(rows)/2)
	for i := 0; i < len(rows); i += 2 {
		first := rows[i]
		second := rows[i+1]

		recs = append(recs, mergedRecord{
			line:       first.line,
			pairNum:    first.fields[0],
			name:       first.fields[1],
			total:      first.fields[2],
			rounds:     first.fields[fixedCols:],
			state:      second.fields[0],
			ratingInfo: second.fields[1],
			tag:        second.fields[2],
			colors:     second.fields[fixedCols:],
		})
	}

	return recs, nil
}
