/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package crosstab

import (
	"strconv"

	"github.com/mikeb26/crosstab/internal"
)

// buildTables projects merged records into the players and rounds
// relations. The wide per-round columns reshape into exactly numRounds
// long-format rows per player, with round numbers taken from column order;
// idle rounds stay present as Unplayed/Unassigned rows.
func buildTables(recs []mergedRecord, numRounds int, ev Event) *Tables {
	t := &Tables{
		Event:     ev,
		NumRounds: numRounds,
		Players:   make([]PlayerRecord, 0, len(recs)),
	}

	for _, rec := range recs {
		pairNum, err := strconv.Atoi(rec.pairNum)
		if err != nil {
			// without a pair number the record cannot be joined to
			// anything; skip it rather than invent a key
			t.Diags.warnField(0, "pairNumber", rec.pairNum,
				"not an integer; record skipped")
			continue
		}

		player := PlayerRecord{
			PairNum: pairNum,
			State:   rec.state,
			Name:    internal.NormalizeName(rec.name),
		}

		player.UscfID, player.PreRating, player.PostRating =
			extractRatingInfo(rec.ratingInfo)
		if player.UscfID != "" {
			if player.PreRating == nil {
				t.Diags.warnField(pairNum, "preRating", rec.ratingInfo,
					"no rating found after R: token")
			}
			if player.PostRating == nil {
				t.Diags.warnField(pairNum, "postRating", rec.ratingInfo,
					"no rating found after -> token")
			}
		}
		if player.PreRating != nil && player.PostRating != nil {
			change := *player.PostRating - *player.PreRating
			player.RatingChange = &change
		}

		if total, err := strconv.ParseFloat(rec.total, 64); err == nil {
			player.TotalPoints = total
		} else {
			t.Diags.warnField(pairNum, "totalPoints", rec.total,
				"not a decimal score")
		}

		t.Players = append(t.Players, player)

		for i := 0; i < numRounds; i++ {
			res, opponent, ok := extractRound(rec.rounds[i])
			if !ok {
				t.Diags.warnField(pairNum, "round", rec.rounds[i],
					"unrecognized result token")
			}
			if !res.isGame() {
				// byes, forfeits, and unplayed rounds have no opponent
				// even when the source lists a number
				opponent = nil
			}

			t.Rounds = append(t.Rounds, RoundRow{
				ID:        len(t.Rounds) + 1,
				PlayerNum: pairNum,
				Round:     i + 1,
				Color:     extractColor(rec.colors[i]),
				Result:    res,
				Opponent:  opponent,
			})
		}
	}

	return t
}
