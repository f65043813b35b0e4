// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ambiguity

import (
	"strings"
	"unicode/utf8"

	"passgate/internal/detector"
)

// DefaultSet is the standard look-alike character set: glyphs commonly
// confused with one another (0/O/o, 1/l/I/|, 5/S, 2/Z, 8/B, 6/G, 9/g/Q/q).
const DefaultSet = "0Oo1lI|5S2Z8B6G9gQq"

// Analyzer measures how much of a candidate is made of visually confusable
// characters. A high density makes a password hard to read back or type from
// memory, which defeats the human-friendly goal.
type Analyzer struct {
	set string
}

// NewAnalyzer creates an ambiguity analyzer over the given look-alike set.
func NewAnalyzer(set string) *Analyzer {
	if set == "" {
		set = DefaultSet
	}
	return &Analyzer{set: set}
}

func (a *Analyzer) Name() string {
	return "AMBIGUITY"
}

// Analyze implements the detector.Analyzer interface.
func (a *Analyzer) Analyze(candidate string, out *detector.Signals) {
	out.AmbiguousRatio = Ratio(candidate, a.set)
}

// Ratio returns the fraction of candidate characters that belong to the
// look-alike set. The empty string has ratio 0.
func Ratio(candidate, set string) float64 {
	length := utf8.RuneCountInString(candidate)
	if length == 0 {
		return 0
	}
	count := 0
	for _, r := range candidate {
		if strings.ContainsRune(set, r) {
			count++
		}
	}
	return float64(count) / float64(length)
}
