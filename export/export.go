/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package export writes the normalized players and rounds tables to disk
// as aligned text, CSV, or XLSX files.
package export

import (
	"fmt"
	"strconv"

	"github.com/mikeb26/crosstab/crosstab"
	"golang.org/x/sync/errgroup"
)

// Format identifies an output rendition.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatCSV, FormatXLSX:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown export format %q (want text, csv, or xlsx)", s)
}

// WriteAll writes both tables to dir in every requested format. Formats
// write to distinct files, so multiple renditions run concurrently.
func WriteAll(t *crosstab.Tables, dir string, formats []Format) error {
	var g errgroup.Group
	for _, format := range formats {
		format := format
		g.Go(func() error {
			return writeOne(t, dir, format)
		})
	}

	return g.Wait()
}

func writeOne(t *crosstab.Tables, dir string, format Format) error {
	switch format {
	case FormatText:
		return writeText(t, dir)
	case FormatCSV:
		return writeCSV(t, dir)
	case FormatXLSX:
		return writeXLSX(t, dir)
	}

	return fmt.Errorf("unknown export format %q", format)
}

// playersHeader and roundsHeader are the column names of the two output
// relations, shared by the CSV and XLSX renditions.
var (
	playersHeader = []string{"pair_num", "state", "name", "uscf_id",
		"pre_rating", "post_rating", "total_points", "rating_change",
		"avg_opponent_rating"}
	roundsHeader = []string{"id", "player_num", "round", "color", "result",
		"opponent"}
)

func playerFields(p crosstab.PlayerRecord) []string {
	return []string{
		strconv.Itoa(p.PairNum),
		p.State,
		p.Name,
		p.UscfID,
		intField(p.PreRating),
		intField(p.PostRating),
		strconv.FormatFloat(p.TotalPoints, 'f', 1, 64),
		intField(p.RatingChange),
		floatField(p.AvgOpponentRating),
	}
}

func roundFields(r crosstab.RoundRow) []string {
	return []string{
		strconv.Itoa(r.ID),
		strconv.Itoa(r.PlayerNum),
		strconv.Itoa(r.Round),
		r.Color.String(),
		r.Result.String(),
		intField(r.Opponent),
	}
}

func intField(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatField(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
