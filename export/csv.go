/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikeb26/crosstab/crosstab"
)

// writeCSV renders the two tables as players.csv and rounds.csv. Null
// fields are written as empty strings.
func writeCSV(t *crosstab.Tables, dir string) error {
	playerRows := make([][]string, 0, len(t.Players))
	for _, p := range t.Players {
		playerRows = append(playerRows, playerFields(p))
	}
	if err := writeCSVFile(filepath.Join(dir, "players.csv"),
		playersHeader, playerRows); err != nil {
		return err
	}

	roundRows := make([][]string, 0, len(t.Rounds))
	for _, r := range t.Rounds {
		roundRows = append(roundRows, roundFields(r))
	}
	return writeCSVFile(filepath.Join(dir, "rounds.csv"), roundsHeader,
		roundRows)
}

func writeCSVFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %v: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("unable to write %v: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("unable to write %v: %w", path, err)
	}
	w.Flush()

	return w.Error()
}
