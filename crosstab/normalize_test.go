/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package crosstab

import (
	"testing"
)

func garyRecord() mergedRecord {
	return mergedRecord{
		line:       4,
		pairNum:    "1",
		name:       "GARY HUA",
		total:      "6.0",
		rounds:     []string{"W  39", "W  21", "W  18", "W  14", "W   7"},
		state:      "ON",
		ratingInfo: "15445895 / R: 1794 ->1817",
		tag:        "N:2",
		colors:     []string{"W", "W", "W", "W", "W"},
	}
}

func TestBuildTablesGary(t *testing.T) {
	tables := buildTables([]mergedRecord{garyRecord()}, 5, Event{})

	if len(tables.Players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(tables.Players))
	}
	p := tables.Players[0]
	if p.Name != "Gary Hua" || p.PairNum != 1 || p.TotalPoints != 6.0 {
		t.Errorf("unexpected player record: %+v", p)
	}
	if p.RatingChange == nil || *p.RatingChange != 23 {
		t.Errorf("expected rating change 23, got %v", p.RatingChange)
	}

	if len(tables.Rounds) != 5 {
		t.Fatalf("expected 5 round rows, got %d", len(tables.Rounds))
	}
	wantOpponents := []int{39, 21, 18, 14, 7}
	for i, r := range tables.Rounds {
		if r.Result != ResultWin {
			t.Errorf("round %d: expected win, got %v", i+1, r.Result)
		}
		if r.Color != ColorWhite {
			t.Errorf("round %d: expected white, got %v", i+1, r.Color)
		}
		if r.Opponent == nil || *r.Opponent != wantOpponents[i] {
			t.Errorf("round %d: expected opponent %d, got %v", i+1,
				wantOpponents[i], r.Opponent)
		}
		if r.Round != i+1 {
			t.Errorf("expected round number %d from column order, got %d",
				i+1, r.Round)
		}
	}
}

func TestBuildTablesForfeitOpponentNulled(t *testing.T) {
	rec := garyRecord()
	rec.rounds = []string{"F  39", "X  21", "B", "U", "W   7"}
	rec.colors = []string{"", "", "", "", "W"}

	tables := buildTables([]mergedRecord{rec}, 5, Event{})

	// byes and forfeits carry no opponent even when the source lists one
	for i, r := range tables.Rounds[:4] {
		if r.Opponent != nil {
			t.Errorf("round %d: expected nil opponent for %v, got %d",
				i+1, r.Result, *r.Opponent)
		}
	}
	last := tables.Rounds[4]
	if last.Opponent == nil || *last.Opponent != 7 {
		t.Errorf("played round should keep its opponent, got %+v", last)
	}
}

func TestBuildTablesBadPairNum(t *testing.T) {
	rec := garyRecord()
	rec.pairNum = "one"

	tables := buildTables([]mergedRecord{rec}, 5, Event{})

	if len(tables.Players) != 0 || len(tables.Rounds) != 0 {
		t.Errorf("record without a usable pair number should be skipped")
	}
	if len(tables.Diags.FieldWarnings) != 1 {
		t.Errorf("expected 1 warning, got %v", tables.Diags.FieldWarnings)
	}
}

func TestBuildTablesBadRoundToken(t *testing.T) {
	rec := garyRecord()
	rec.pairNum = "2"
	rec.rounds[2] = "W18X"

	tables := buildTables([]mergedRecord{garyRecord(), rec}, 5, Event{})

	// the malformed round degrades to unknown without discarding the record
	if len(tables.Players) != 2 {
		t.Fatalf("expected both players kept, got %d", len(tables.Players))
	}
	if len(tables.Rounds) != 10 {
		t.Fatalf("expected 10 round rows, got %d", len(tables.Rounds))
	}
	bad := tables.Rounds[7]
	if bad.Result != ResultUnknown || bad.Opponent != nil {
		t.Errorf("expected unknown result with nil opponent, got %+v", bad)
	}
	if len(tables.Diags.FieldWarnings) != 1 {
		t.Errorf("expected 1 field warning, got %v",
			tables.Diags.FieldWarnings)
	}
}

func TestBuildTablesBadTotal(t *testing.T) {
	rec := garyRecord()
	rec.total = "six"

	tables := buildTables([]mergedRecord{rec}, 5, Event{})

	if len(tables.Players) != 1 {
		t.Fatalf("expected player kept despite bad total")
	}
	if tables.Players[0].TotalPoints != 0 {
		t.Errorf("expected zero total points, got %f",
			tables.Players[0].TotalPoints)
	}
	if len(tables.Diags.FieldWarnings) != 1 {
		t.Errorf("expected 1 field warning, got %v",
			tables.Diags.FieldWarnings)
	}
}
