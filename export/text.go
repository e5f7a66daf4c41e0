/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikeb26/crosstab/crosstab"
)

// writeText renders both tables as aligned text files (players.txt and
// rounds.txt) plus diagnostics.txt when the run produced warnings.
func writeText(t *crosstab.Tables, dir string) error {
	playersPath := filepath.Join(dir, "players.txt")
	if err := os.WriteFile(playersPath,
		[]byte(crosstab.BuildPlayersOutput(t)), 0644); err != nil {
		return fmt.Errorf("unable to write %v: %w", playersPath, err)
	}

	roundsPath := filepath.Join(dir, "rounds.txt")
	if err := os.WriteFile(roundsPath,
		[]byte(crosstab.BuildRoundsOutput(t)), 0644); err != nil {
		return fmt.Errorf("unable to write %v: %w", roundsPath, err)
	}

	if !t.Diags.Empty() {
		diagPath := filepath.Join(dir, "diagnostics.txt")
		if err := os.WriteFile(diagPath, []byte(t.Diags.Summary()),
			0644); err != nil {
			return fmt.Errorf("unable to write %v: %w", diagPath, err)
		}
	}

	return nil
}
