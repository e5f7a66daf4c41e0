/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package export

import (
	"fmt"
	"path/filepath"

	"github.com/mikeb26/crosstab/crosstab"
	"github.com/xuri/excelize/v2"
)

// writeXLSX renders both tables into one workbook (crosstable.xlsx) with a
// Players sheet and a Rounds sheet. Numeric columns keep their native
// types; null fields become empty cells.
func writeXLSX(t *crosstab.Tables, dir string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Players"); err != nil {
		return fmt.Errorf("unable to name Players sheet: %w", err)
	}
	if _, err := f.NewSheet("Rounds"); err != nil {
		return fmt.Errorf("unable to create Rounds sheet: %w", err)
	}

	if err := writeSheetRow(f, "Players", 1,
		toCellValues(playersHeader)); err != nil {
		return err
	}
	for i, p := range t.Players {
		cells := []any{p.PairNum, p.State, p.Name, p.UscfID,
			intCell(p.PreRating), intCell(p.PostRating), p.TotalPoints,
			intCell(p.RatingChange), floatCell(p.AvgOpponentRating)}
		if err := writeSheetRow(f, "Players", i+2, cells); err != nil {
			return err
		}
	}

	if err := writeSheetRow(f, "Rounds", 1,
		toCellValues(roundsHeader)); err != nil {
		return err
	}
	for i, r := range t.Rounds {
		cells := []any{r.ID, r.PlayerNum, r.Round, r.Color.String(),
			r.Result.String(), intCell(r.Opponent)}
		if err := writeSheetRow(f, "Rounds", i+2, cells); err != nil {
			return err
		}
	}

	path := filepath.Join(dir, "crosstable.xlsx")
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("unable to save %v: %w", path, err)
	}

	return nil
}

func writeSheetRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("unable to write %v row %d: %w", sheet, row, err)
	}

	return nil
}

func toCellValues(header []string) []any {
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	return cells
}

func intCell(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatCell(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
