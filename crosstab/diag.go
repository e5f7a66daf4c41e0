/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package crosstab

import (
	"fmt"
	"log"
	"strings"
)

// FieldWarning records one compound field that failed extraction and was
// degraded to its null value instead of aborting the record.
type FieldWarning struct {
	PairNum int
	Field   string
	Value   string
	Reason  string
}

func (w FieldWarning) String() string {
	return fmt.Sprintf("player %d: field %s %q: %s", w.PairNum, w.Field,
		w.Value, w.Reason)
}

// OpponentWarning records a round whose opponent pair number does not
// resolve to any roster entry. The opponent is left null and the round is
// excluded from opponent-rating averaging.
type OpponentWarning struct {
	PlayerNum int
	Round     int
	Opponent  int
}

func (w OpponentWarning) String() string {
	return fmt.Sprintf("player %d round %d: opponent %d not in roster",
		w.PlayerNum, w.Round, w.Opponent)
}

// Diagnostics accumulates the recoverable conditions encountered during a
// run. Fatal errors abort the pipeline instead and never appear here.
type Diagnostics struct {
	FieldWarnings    []FieldWarning
	OpponentWarnings []OpponentWarning
}

func (d *Diagnostics) warnField(pairNum int, field, value, reason string) {
	w := FieldWarning{PairNum: pairNum, Field: field, Value: value,
		Reason: reason}
	log.Printf("warning: %v", w)
	d.FieldWarnings = append(d.FieldWarnings, w)
}

func (d *Diagnostics) warnOpponent(playerNum, round, opponent int) {
	w := OpponentWarning{PlayerNum: playerNum, Round: round,
		Opponent: opponent}
	log.Printf("warning: %v", w)
	d.OpponentWarnings = append(d.OpponentWarnings, w)
}

// Empty reports whether the run completed without any recoverable warnings.
func (d *Diagnostics) Empty() bool {
	return len(d.FieldWarnings) == 0 && len(d.OpponentWarnings) == 0
}

// Summary formats all accumulated warnings as a post-run report, one per
// line. Returns "" when there were none.
func (d *Diagnostics) Summary() string {
	if d.Empty() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d warning(s):\n",
		len(d.FieldWarnings)+len(d.OpponentWarnings)))
	for _, w := range d.FieldWarnings {
		sb.WriteString(fmt.Sprintf("  %v\n", w))
	}
	for _, w := range d.OpponentWarnings {
		sb.WriteString(fmt.Sprintf("  %v\n", w))
	}

	return sb.String()
}
