/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package crosstab

import (
	"time"
)

// Result represents the outcome of a round.
type Result int

const (
	ResultWin Result = iota
	ResultLoss
	ResultDraw
	ResultFullBye
	ResultHalfBye
	ResultWinByForfeit
	ResultLossByForfeit
	ResultUnplayed
	ResultUnknown
)

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "Win"
	case ResultLoss:
		return "Loss"
	case ResultDraw:
		return "Draw"
	case ResultFullBye:
		return "FullBye"
	case ResultHalfBye:
		return "HalfBye"
	case ResultWinByForfeit:
		return "WinByForfeit"
	case ResultLossByForfeit:
		return "LossByForfeit"
	case ResultUnplayed:
		return "Unplayed"
	default:
		return "Unknown"
	}
}

// Code returns the single-letter report encoding of r, or "?" for results
// that have no defined code.
func (r Result) Code() string {
	switch r {
	case ResultWin:
		return "W"
	case ResultLoss:
		return "L"
	case ResultDraw:
		return "D"
	case ResultFullBye:
		return "B"
	case ResultHalfBye:
		return "H"
	case ResultWinByForfeit:
		return "F"
	case ResultLossByForfeit:
		return "X"
	case ResultUnplayed:
		return "U"
	default:
		return "?"
	}
}

// isGame reports whether r is a result decided over the board against an
// opponent. Byes, forfeits, and unplayed rounds carry no opponent.
func (r Result) isGame() bool {
	switch r {
	case ResultWin, ResultLoss, ResultDraw:
		return true
	}
	return false
}

// Color represents which side a player had in a round. Byes, forfeits, and
// unplayed rounds are ColorUnassigned.
type Color int

const (
	ColorUnassigned Color = iota
	ColorWhite
	ColorBlack
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	default:
		return ""
	}
}

// PlayerRecord is one row of the players relation, keyed by PairNum.
//
// PreRating, PostRating, RatingChange, and AvgOpponentRating are nil when
// unknown (unrated or partially rated players). UscfID is empty for
// unrated/guest entries; it is kept as a string to preserve leading zeros
// in the 8-digit federation id.
type PlayerRecord struct {
	PairNum           int
	State             string
	Name              string
	UscfID            string
	PreRating         *int
	PostRating        *int
	TotalPoints       float64
	RatingChange      *int
	AvgOpponentRating *float64
}

// RoundRow is one row of the long-format rounds relation. ID is a surrogate
// key assigned in stable sequential order so that identical input always
// yields identical tables.
type RoundRow struct {
	ID        int
	PlayerNum int
	Round     int
	Color     Color
	Result    Result
	Opponent  *int
}

// Event holds the optional banner metadata preceding the column header.
type Event struct {
	Name string
	Date time.Time
}

// Tables is the full output of one pipeline run: the two normalized
// relations plus the diagnostics accumulated while building them.
type Tables struct {
	Event     Event
	NumRounds int
	Players   []PlayerRecord
	Rounds    []RoundRow
	Diags     Diagnostics
}
