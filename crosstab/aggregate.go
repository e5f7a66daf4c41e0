/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package crosstab

// attachAverageOpponentRatings resolves every opponent reference against
// the roster and attaches the mean pre-tournament rating of each player's
// resolvable opponents. The source relation is not guaranteed symmetric
// (one side may record a round the other omits), so each row is resolved
// independently: a reference to a pair number absent from the roster is
// nulled with a warning, and rounds with no resolvable opponent or with an
// unrated opponent are excluded from the mean rather than counted as zero.
// A player with no resolvable opponents keeps a nil average.
func attachAverageOpponentRatings(t *Tables) {
	byPair := make(map[int]int, len(t.Players))
	for i, p := range t.Players {
		byPair[p.PairNum] = i
	}

	sums := make([]int, len(t.Players))
	counts := make([]int, len(t.Players))

	for i := range t.Rounds {
		r := &t.Rounds[i]
		if r.Opponent == nil {
			continue
		}

		oppIdx, ok := byPair[*r.Opponent]
		if !ok {
			t.Diags.warnOpponent(r.PlayerNum, r.Round, *r.Opponent)
			r.Opponent = nil
			continue
		}

		playerIdx, ok := byPair[r.PlayerNum]
		if !ok {
			continue
		}
		if pre := t.Players[oppIdx].PreRating; pre != nil {
			sums[playerIdx] += *pre
			counts[playerIdx]++
		}
	}

	for i := range t.Players {
		if counts[i] == 0 {
			continue
		}
		avg := float64(sums[i]) / float64(counts[i])
		t.Players[i].AvgOpponentRating = &avg
	}
}
