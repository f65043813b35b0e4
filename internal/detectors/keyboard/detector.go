// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package keyboard

import (
	"strings"

	"passgate/internal/detector"
)

// walkWindowCap bounds the substring search window. Walks longer than this
// are reported as walkWindowCap rather than their exact length, which is
// plenty for both the hard gate (5) and the score penalty (4).
const walkWindowCap = 12

// DefaultRows is the standard ANSI layout used when no custom rows are
// configured: the number row plus the three letter rows.
func DefaultRows() []string {
	return []string{
		"`1234567890-=",
		"qwertyuiop",
		"asdfghjkl",
		"zxcvbnm",
	}
}

// Analyzer detects contiguous walks along physical keyboard rows, forward or
// reversed, such as "qwerty" or "lkjhg".
type Analyzer struct {
	rows []string
}

// NewAnalyzer creates a keyboard-walk analyzer over the given rows. Rows must
// be lowercase; candidates are lowercased before matching.
func NewAnalyzer(rows []string) *Analyzer {
	if len(rows) == 0 {
		rows = DefaultRows()
	}
	return &Analyzer{rows: rows}
}

func (a *Analyzer) Name() string {
	return "KEYBOARD_WALK"
}

// Analyze implements the detector.Analyzer interface.
func (a *Analyzer) Analyze(candidate string, out *detector.Signals) {
	out.KeyboardWalk = LongestWalk(candidate, a.rows)
}

// LongestWalk returns the length of the longest contiguous substring of the
// lowercased candidate that also occurs contiguously in one of the rows or
// its character-reversed form. The result is at least 1 and capped at
// walkWindowCap.
func LongestWalk(candidate string, rows []string) int {
	text := []rune(strings.ToLower(candidate))
	best := 1
	for _, row := range rows {
		if n := longestSubstringOnLine(text, row); n > best {
			best = n
		}
		if n := longestSubstringOnLine(text, reverse(row)); n > best {
			best = n
		}
	}
	return best
}

// longestSubstringOnLine finds the longest window of text (up to
// walkWindowCap) that appears as a contiguous slice of line.
func longestSubstringOnLine(text []rune, line string) int {
	best := 1
	n := len(text)
	for i := 0; i < n; i++ {
		hi := i + walkWindowCap
		if hi > n {
			hi = n
		}
		for j := i + best + 1; j <= hi; j++ {
			if strings.Contains(line, string(text[i:j])) {
				best = j - i
			}
		}
	}
	return best
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
