/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package crosstab

import (
	"errors"
	"reflect"
	"testing"
)

// sampleReport is a self-consistent 4-player, 3-round event exercising
// wins, losses, a full bye, an unplayed round, and the event banner.
const sampleReport = ` 2016 Springfield Open
 04/01/2016 - 04/03/2016

 Pair | Player Name                     |Total|Round|Round|Round|
 Num  | USCF ID / Rtg (Pre->Post)       | Pts |  1  |  2  |  3  |
-----------------------------------------------------------------
    1 | GARY HUA                        |3.0  |W   4|W   3|W   2|
   ON | 15445895 / R: 1794 ->1817       |N:2  |W    |B    |W    |
-----------------------------------------------------------------
    2 | DAKSHESH DARURI                 |2.0  |W   3|W   4|L   1|
   MI | 14598900 / R: 1553 ->1663       |N:2  |B    |W    |B    |
-----------------------------------------------------------------
    3 | ADITYA BAJAJ                    |1.0  |L   2|L   1|B    |
   MI | 14959604 / R: 1384 ->1640       |N:2  |W    |W    |     |
-----------------------------------------------------------------
    4 | PATRICK H SCHILLING             |0.0  |L   1|L   2|U    |
   MI | 12616049 / R: 1716 ->1744       |N:2  |B    |B    |     |
-----------------------------------------------------------------
`

func TestParseSampleReport(t *testing.T) {
	tables, err := Parse(sampleReport)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if tables.NumRounds != 3 {
		t.Fatalf("expected 3 rounds, got %d", tables.NumRounds)
	}
	if len(tables.Players) != 4 {
		t.Fatalf("expected 4 players, got %d", len(tables.Players))
	}
	if len(tables.Rounds) != len(tables.Players)*tables.NumRounds {
		t.Fatalf("expected %d round rows, got %d",
			len(tables.Players)*tables.NumRounds, len(tables.Rounds))
	}
	if !tables.Diags.Empty() {
		t.Errorf("expected no warnings, got: %v", tables.Diags.Summary())
	}

	if tables.Event.Name != "2016 Springfield Open" {
		t.Errorf("expected event name from banner, got %q", tables.Event.Name)
	}
	if tables.Event.Date.IsZero() {
		t.Errorf("expected event date parsed from banner")
	} else if y, m, d := tables.Event.Date.Date(); y != 2016 || int(m) != 4 || d != 1 {
		t.Errorf("expected event date 2016-04-01, got %v", tables.Event.Date)
	}

	gary := tables.Players[0]
	if gary.PairNum != 1 {
		t.Errorf("expected pair number 1, got %d", gary.PairNum)
	}
	if gary.Name != "Gary Hua" {
		t.Errorf("expected title-cased name Gary Hua, got %q", gary.Name)
	}
	if gary.State != "ON" {
		t.Errorf("expected state ON, got %q", gary.State)
	}
	if gary.UscfID != "15445895" {
		t.Errorf("expected USCF id 15445895, got %q", gary.UscfID)
	}
	if gary.PreRating == nil || *gary.PreRating != 1794 {
		t.Errorf("expected pre-rating 1794, got %v", gary.PreRating)
	}
	if gary.PostRating == nil || *gary.PostRating != 1817 {
		t.Errorf("expected post-rating 1817, got %v", gary.PostRating)
	}
	if gary.RatingChange == nil || *gary.RatingChange != 23 {
		t.Errorf("expected rating change 23, got %v", gary.RatingChange)
	}
	if gary.TotalPoints != 3.0 {
		t.Errorf("expected 3.0 total points, got %f", gary.TotalPoints)
	}
	// opponents 4, 3, 2 with pre-ratings 1716, 1384, 1553
	wantAvg := float64(1716+1384+1553) / 3.0
	if gary.AvgOpponentRating == nil || *gary.AvgOpponentRating != wantAvg {
		t.Errorf("expected avg opponent rating %.1f, got %v", wantAvg,
			gary.AvgOpponentRating)
	}
}

func TestParseRoundRows(t *testing.T) {
	tables, err := Parse(sampleReport)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	// surrogate ids are assigned in stable sequential order
	for i, r := range tables.Rounds {
		if r.ID != i+1 {
			t.Fatalf("round row %d: expected surrogate id %d, got %d",
				i, i+1, r.ID)
		}
	}

	// player 1: three wins with white, black, white
	r := tables.Rounds[0]
	if r.PlayerNum != 1 || r.Round != 1 || r.Result != ResultWin ||
		r.Color != ColorWhite || r.Opponent == nil || *r.Opponent != 4 {
		t.Errorf("round 1: expected win over 4 with white, got %+v", r)
	}
	r = tables.Rounds[1]
	if r.Result != ResultWin || r.Color != ColorBlack || *r.Opponent != 3 {
		t.Errorf("round 2: expected win over 3 with black, got %+v", r)
	}

	// player 3 round 3: full bye, no opponent, no color
	r = tables.Rounds[8]
	if r.PlayerNum != 3 || r.Round != 3 {
		t.Fatalf("expected player 3 round 3 at index 8, got %+v", r)
	}
	if r.Result != ResultFullBye || r.Opponent != nil ||
		r.Color != ColorUnassigned {
		t.Errorf("expected bye with null opponent, got %+v", r)
	}

	// player 4 round 3: unplayed round kept, not omitted
	r = tables.Rounds[11]
	if r.PlayerNum != 4 || r.Round != 3 || r.Result != ResultUnplayed ||
		r.Opponent != nil {
		t.Errorf("expected unplayed round row, got %+v", r)
	}
}

func TestParseIdempotent(t *testing.T) {
	first, err := Parse(sampleReport)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	second, err := Parse(sampleReport)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("parsing identical input twice produced different tables")
	}
}

func TestParseUnresolvedOpponent(t *testing.T) {
	report := ` Pair | Player Name |Total|Round|
 Num  | USCF ID / Rtg (Pre->Post) | Pts |  1  |
------------------------------------------------
    1 | GARY HUA    |1.0  |W   9|
   ON | 15445895 / R: 1794 ->1817|N:2 |W    |
`
	tables, err := Parse(report)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if len(tables.Diags.OpponentWarnings) != 1 {
		t.Fatalf("expected 1 opponent warning, got %d",
			len(tables.Diags.OpponentWarnings))
	}
	w := tables.Diags.OpponentWarnings[0]
	if w.PlayerNum != 1 || w.Round != 1 || w.Opponent != 9 {
		t.Errorf("unexpected warning contents: %+v", w)
	}
	if tables.Rounds[0].Opponent != nil {
		t.Errorf("dangling opponent reference should be nulled")
	}
	// the unresolved opponent is excluded, leaving no resolvable ones
	if tables.Players[0].AvgOpponentRating != nil {
		t.Errorf("expected nil avg opponent rating, got %v",
			*tables.Players[0].AvgOpponentRating)
	}
}

func TestParseNoResolvableOpponents(t *testing.T) {
	report := ` Pair | Player Name |Total|Round|Round|
 Num  | USCF ID / Rtg (Pre->Post) | Pts |  1  |  2  |
------------------------------------------------------
    1 | NORAH SUN   |1.5  |B    |H    |
   MA | 12345678 / R: 1200 ->1200|N:2 |     |     |
`
	tables, err := Parse(report)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if tables.Players[0].AvgOpponentRating != nil {
		t.Errorf("player with only byes must have nil average, got %v",
			*tables.Players[0].AvgOpponentRating)
	}
	if tables.Rounds[0].Result != ResultFullBye ||
		tables.Rounds[1].Result != ResultHalfBye {
		t.Errorf("unexpected bye results: %+v", tables.Rounds)
	}
}

func TestParseUnratedPlayer(t *testing.T) {
	report := ` Pair | Player Name |Total|Round|
 Num  | USCF ID / Rtg (Pre->Post) | Pts |  1  |
------------------------------------------------
    1 | GARY HUA    |1.0  |W   2|
   ON | 15445895 / R: 1794 ->1817|N:2 |W    |
    2 | NEW PLAYER  |0.0  |L   1|
   ON |             |N:1 |B    |
`
	tables, err := Parse(report)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	newPlayer := tables.Players[1]
	if newPlayer.UscfID != "" || newPlayer.PreRating != nil ||
		newPlayer.PostRating != nil || newPlayer.RatingChange != nil {
		t.Errorf("unrated player should have null id and ratings, got %+v",
			newPlayer)
	}
	// no extraction warnings: missing id skips rating extraction entirely
	if len(tables.Diags.FieldWarnings) != 0 {
		t.Errorf("expected no field warnings, got %v",
			tables.Diags.FieldWarnings)
	}
	// the unrated opponent contributes nothing to player 1's average
	if tables.Players[0].AvgOpponentRating != nil {
		t.Errorf("expected nil average with only an unrated opponent, got %v",
			*tables.Players[0].AvgOpponentRating)
	}
}

func TestParseMalformedLine(t *testing.T) {
	report := ` Pair | Player Name |Total|Round|
 Num  | USCF ID / Rtg (Pre->Post) | Pts |  1  |
------------------------------------------------
    1 | GARY HUA    |1.0  |
   ON | 15445895 / R: 1794 ->1817|N:2 |W    |
`
	_, err := Parse(report)
	var malformed *MalformedReportError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedReportError, got %v", err)
	}
	if malformed.Line != 4 || malformed.Got != 3 || malformed.Want != 4 {
		t.Errorf("unexpected error details: %+v", malformed)
	}
}

func TestParseOddRowCount(t *testing.T) {
	report := ` Pair | Player Name |Total|Round|
 Num  | USCF ID / Rtg (Pre->Post) | Pts |  1  |
------------------------------------------------
    1 | GARY HUA    |1.0  |W   2|
`
	_, err := Parse(report)
	var unpaired *UnpairedRowError
	if !errors.As(err, &unpaired) {
		t.Fatalf("expected UnpairedRowError, got %v", err)
	}
	if unpaired.Rows != 1 {
		t.Errorf("expected 1 unpaired row, got %d", unpaired.Rows)
	}
}

func TestParseNoHeader(t *testing.T) {
	if _, err := Parse("just some text\nwith no header\n"); err == nil {
		t.Errorf("expected error for report without column header")
	}
}
