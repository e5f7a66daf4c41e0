/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package crosstab converts fixed-layout textual crosstable reports into
// two normalized in-memory relations: a player roster and a long-format
// per-round result log, with each player's average opponent pre-rating
// derived from the two.
//
// The pipeline is strictly linear and deterministic: delimiter stripping,
// row-pair merging, compound-field extraction, wide-to-long reshaping, and
// opponent-rating aggregation, in that order. Structural problems in the
// report abort the run with no partial output; per-field problems degrade
// to null values and accumulate as diagnostics on the returned Tables.
package crosstab

// Parse runs the full pipeline over one report and returns the normalized
// tables. The returned error is a *MalformedReportError or
// *UnpairedRowError; recoverable conditions never produce an error and are
// reported via Tables.Diags instead.
func Parse(text string) (*Tables, error) {
	banner, rows, numCols, err := readRows(text)
	if err != nil {
		return nil, err
	}
	if numCols <= fixedCols {
		// header never seen, or seen with no round columns
		return nil, &MalformedReportError{Line: 1, Got: numCols,
			Want: fixedCols + 1}
	}

	recs, err := mergeRows(rows)
	if err != nil {
		return nil, err
	}

	t := buildTables(recs, numCols-fixedCols, parseBanner(banner))
	attachAverageOpponentRatings(t)

	return t, nil
}
