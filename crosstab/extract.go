/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package crosstab

import (
	"regexp"
	"strconv"
	"strings"
)

// Each compound field gets its own small pattern matcher returning an
// optional typed value, so that one malformed field degrades to null
// without discarding the rest of the record.
var (
	// single result letter, optionally followed by an opponent pair
	// number; byes and forfeits carry no number
	roundTokenRegex = regexp.MustCompile(`^([A-Za-z])(?:\s+(\d+))?$`)

	// the three independent extractions from the rating info field,
	// e.g. "15445895 / R: 1794 ->1817". Provisional suffixes such as
	// "955P13" are tolerated: the digit runs stop before the P.
	uscfIDRegex     = regexp.MustCompile(`\b\d{8}\b`)
	preRatingRegex  = regexp.MustCompile(`R:\s*(\d+)`)
	postRatingRegex = regexp.MustCompile(`->\s*(\d{3,4})`)
)

// extractRound parses one result+opponent token such as "W  39" or "B".
// A blank token is an idle round and parses as ResultUnplayed. ok is false
// only when the token matches no recognizable shape at all.
func extractRound(tok string) (res Result, opponent *int, ok bool) {
	if tok == "" {
		return ResultUnplayed, nil, true
	}

	m := roundTokenRegex.FindStringSubmatch(tok)
	if m == nil {
		return ResultUnknown, nil, false
	}

	res = resultFromCode(m[1])
	if m[2] != "" {
		n, err := strconv.Atoi(m[2])
		if err == nil {
			opponent = &n
		}
	}

	return res, opponent, true
}

// resultFromCode maps a report result letter to its Result. Unmapped codes
// become ResultUnknown rather than guessing a scoring rule.
func resultFromCode(code string) Result {
	switch strings.ToUpper(code) {
	case "W":
		return ResultWin
	case "L":
		return ResultLoss
	case "D":
		return ResultDraw
	case "B":
		return ResultFullBye
	case "H":
		return ResultHalfBye
	case "F":
		return ResultWinByForfeit
	case "X":
		return ResultLossByForfeit
	case "U":
		return ResultUnplayed
	default:
		return ResultUnknown
	}
}

// extractRatingInfo pulls the federation id and pre/post ratings out of a
// "<8-digit-id> / R: <pre> -><post>" field. A field with no 8-digit id is
// an unrated or guest entry: id and both ratings come back null without
// any attempt at rating extraction.
func extractRatingInfo(s string) (id string, pre, post *int) {
	id = uscfIDRegex.FindString(s)
	if id == "" {
		return "", nil, nil
	}

	// the id itself is an 8-digit run, so match ratings only in the
	// portion after it
	rest := s[strings.Index(s, id)+len(id):]

	if m := preRatingRegex.FindStringSubmatch(rest); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			pre = &n
		}
	}
	if m := postRatingRegex.FindStringSubmatch(rest); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			post = &n
		}
	}

	return id, pre, post
}

// extractColor maps a per-round color letter onto the Color enum. Blank or
// unrecognized letters (byes, forfeits) are ColorUnassigned.
func extractColor(s string) Color {
	switch strings.ToUpper(s) {
	case "W":
		return ColorWhite
	case "B":
		return ColorBlack
	default:
		return ColorUnassigned
	}
}
