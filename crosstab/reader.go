/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package crosstab

import (
	"strings"

	"github.com/mikeb26/crosstab/internal"
)

// fixedCols is the number of non-round columns in the report: pair
// number/state, name/rating info, and total points/tag.
const fixedCols = 3

// rawRow is one content line of the report split into trimmed fields.
type rawRow struct {
	line   int // 1-based physical line number, for error reporting
	fields []string
}

// readRows splits the report into its banner (free-form lines preceding
// the column header), its content rows, and the column count taken from
// the first header line. Separator lines and repeated headers are
// discarded. A content line with the wrong field count is a fatal
// MalformedReportError.
func readRows(text string) (banner []string, rows []rawRow, numCols int, err error) {
	for i, line := range strings.Split(text, "\n") {
		lineNum := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		if isSeparatorLine(line) {
			continue
		}

		if numCols == 0 && !strings.Contains(line, "|") {
			banner = append(banner, strings.TrimSpace(line))
			continue
		}

		fields := splitFields(line)
		if isPrimaryHeader(fields) {
			if numCols == 0 {
				numCols = len(fields)
			} else if len(fields) != numCols {
				// a repeated header with a different column count
				// signals structural drift mid-report
				return nil, nil, 0, &MalformedReportError{
					Line: lineNum, Got: len(fields), Want: numCols}
			}
			continue
		}
		if isSecondaryHeader(fields) {
			continue
		}

		if numCols == 0 {
			return nil, nil, 0, &MalformedReportError{Line: lineNum,
				Got: len(fields), Want: 0}
		}
		if len(fields) != numCols {
			return nil, nil, 0, &MalformedReportError{Line: lineNum,
				Got: len(fields), Want: numCols}
		}

		rows = append(rows, rawRow{line: lineNum, fields: fields})
	}

	return banner, rows, numCols, nil
}

// splitFields splits a report line on the | column delimiter and trims
// every field. A trailing delimiter does not produce an extra empty field.
func splitFields(line string) []string {
	s := strings.TrimRight(line, " \t\r")
	s = strings.TrimSuffix(s, "|")
	fields := strings.Split(s, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields
}

// isSeparatorLine reports whether line is a pure dash separator row.
func isSeparatorLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, "-") {
		return false
	}
	return strings.Trim(trimmed, "-") == ""
}

// isPrimaryHeader matches the first column-header line
// (" Pair | Player Name |Total|Round|...").
func isPrimaryHeader(fields []string) bool {
	return len(fields) >= fixedCols && fields[0] == "Pair" &&
		strings.HasPrefix(fields[1], "Player Name")
}

// isSecondaryHeader matches the second column-header line
// (" Num  | USCF ID / Rtg (Pre->Post) | Pts |  1  |...").
func isSecondaryHeader(fields []string) bool {
	return len(fields) >= fixedCols && fields[0] == "Num" &&
		strings.HasPrefix(fields[1], "USCF ID")
}

// parseBanner derives event metadata from the free-form lines preceding
// the column header. The first non-empty line is the event name; the first
// line (or leading half of a "start - end" range) that parses as a date is
// the event date.
func parseBanner(banner []string) Event {
	var ev Event
	for _, line := range banner {
		if ev.Name == "" {
			ev.Name = line
			continue
		}
		if !ev.Date.IsZero() {
			continue
		}

		candidate := line
		if idx := strings.Index(candidate, " - "); idx >= 0 {
			candidate = strings.TrimSpace(candidate[:idx])
		}
		if t, err := internal.ParseDateOrZero(candidate); err == nil && !t.IsZero() {
			ev.Date = t
		}
	}

	return ev
}
