/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package crosstab

import (
	"fmt"
	"strings"

	"github.com/mikeb26/crosstab/internal"
)

// BuildPlayersOutput formats the players relation into an aligned text
// table for terminal display, one row per roster entry.
func BuildPlayersOutput(t *Tables) string {
	headers := []string{"No", "St", "Name", "USCF ID", "Rating", "Pts",
		"+/-", "AvgOpp"}

	var rows [][]string
	for _, p := range t.Players {
		rows = append(rows, []string{
			fmt.Sprintf("%d.", p.PairNum),
			p.State,
			p.Name,
			p.UscfID,
			fmt.Sprintf("%v->%v", ratingString(p.PreRating),
				ratingString(p.PostRating)),
			internal.ScoreToString(p.TotalPoints),
			changeString(p.RatingChange),
			avgString(p.AvgOpponentRating),
		})
	}

	var sb strings.Builder
	writeEventHeader(&sb, t)
	writeAligned(&sb, headers, rows)

	return sb.String()
}

// BuildRoundsOutput formats the rounds relation into an aligned text
// table, one row per player-round in surrogate id order.
func BuildRoundsOutput(t *Tables) string {
	headers := []string{"Id", "Player", "Rd", "Color", "Result", "Opp"}

	var rows [][]string
	for _, r := range t.Rounds {
		opp := ""
		if r.Opponent != nil {
			opp = fmt.Sprintf("%d", *r.Opponent)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.PlayerNum),
			fmt.Sprintf("%d", r.Round),
			r.Color.String(),
			r.Result.String(),
			opp,
		})
	}

	var sb strings.Builder
	writeEventHeader(&sb, t)
	writeAligned(&sb, headers, rows)

	return sb.String()
}

func writeEventHeader(sb *strings.Builder, t *Tables) {
	if t.Event.Name == "" {
		return
	}
	if t.Event.Date.IsZero() {
		sb.WriteString(fmt.Sprintf("%v\n\n", t.Event.Name))
		return
	}
	sb.WriteString(fmt.Sprintf("%v - %v\n\n",
		t.Event.Date.Format("2006-01-02"), t.Event.Name))
}

// writeAligned renders headers and rows with per-column widths computed
// from the widest cell.
func writeAligned(sb *strings.Builder, headers []string, rows [][]string) {
	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	var fmtStrBuilder strings.Builder
	for _, w := range colWidths {
		fmtStrBuilder.WriteString(fmt.Sprintf("%%-%ds  ", w))
	}
	fmtStr := strings.TrimRight(fmtStrBuilder.String(), " ") + "\n"

	sb.WriteString(fmt.Sprintf(fmtStr, toAnySlice(headers)...))
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf(fmtStr, toAnySlice(row)...))
	}
}

func ratingString(r *int) string {
	if r == nil {
		return "unrated"
	}
	return fmt.Sprintf("%d", *r)
}

func changeString(c *int) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%+d", *c)
}

func avgString(a *float64) string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *a)
}
