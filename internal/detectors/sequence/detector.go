// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sequence

import (
	"unicode"

	"passgate/internal/detector"
)

// Analyzer detects straight ascending or descending character runs such as
// "abcd", "4321" or "WXYZ".
type Analyzer struct{}

// NewAnalyzer creates a new linear-sequence analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Name() string {
	return "LINEAR_SEQUENCE"
}

// Analyze implements the detector.Analyzer interface.
func (a *Analyzer) Analyze(candidate string, out *detector.Signals) {
	out.LinearSequence = LongestRun(candidate)
}

// LongestRun returns the length of the longest run whose adjacent characters
// step by a constant +1 or -1 code point. Letters are compared
// case-insensitively so "aBcD" counts as a sequence; every other character is
// compared by its raw code point. A change of step direction resets the run.
// Returns 0 for the empty string and at least 1 otherwise.
func LongestRun(candidate string) int {
	runes := []rune(candidate)
	if len(runes) == 0 {
		return 0
	}
	for i, r := range runes {
		if unicode.IsLetter(r) {
			runes[i] = unicode.ToLower(r)
		}
	}

	best := 1
	cur := 1
	lastStep := 0 // 0 means no live run
	for i := 1; i < len(runes); i++ {
		step := int(runes[i]) - int(runes[i-1])
		if step == 1 || step == -1 {
			if step == lastStep {
				cur++
			} else {
				cur = 2
			}
			lastStep = step
			if cur > best {
				best = cur
			}
		} else {
			cur = 1
			lastStep = 0
		}
	}
	return best
}
