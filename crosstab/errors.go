/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package crosstab

import (
	"fmt"
)

// MalformedReportError indicates a structural problem with the report: a
// content line that does not split into the expected number of columns, or
// content appearing before any column header. It is fatal; no tables are
// emitted.
type MalformedReportError struct {
	Line int
	Got  int
	Want int
}

func (e *MalformedReportError) Error() string {
	if e.Want == 0 {
		return fmt.Sprintf("report line %d: content before column header",
			e.Line)
	}
	return fmt.Sprintf("report line %d: split into %d fields, expected %d",
		e.Line, e.Got, e.Want)
}

// UnpairedRowError indicates an odd number of content rows after delimiter
// stripping. Every player occupies exactly two physical rows, so an odd
// count means the report was truncated or misparsed. It is fatal.
type UnpairedRowError struct {
	Rows int
}

func (e *UnpairedRowError) Error() string {
	return fmt.Sprintf("report has %d content rows; players span row pairs so an even count is required",
		e.Rows)
}
