/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// NormalizeName converts an all-caps roster name to title case, e.g.
// "GARY HUA" -> "Gary Hua". Segments after hyphens, apostrophes, and
// periods are capitalized individually ("O'BRIEN-SMITH" -> "O'Brien-Smith").
func NormalizeName(name string) string {
	var sb strings.Builder
	startOfWord := true
	for _, r := range name {
		switch {
		case unicode.IsSpace(r) || r == '-' || r == '\'' || r == '.':
			startOfWord = true
			sb.WriteRune(r)
		case startOfWord:
			startOfWord = false
			sb.WriteRune(unicode.ToUpper(r))
		default:
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	return sb.String()
}

// ScoreToString formats a tournament score, dropping the decimal for whole
// point totals: 6.0 -> "6", 4.5 -> "4.5".
func ScoreToString(score float64) string {
	if math.Mod(score, 1.0) == 0 {
		return fmt.Sprintf("%d", int(score))
	}
	return fmt.Sprintf("%.1f", score)
}
