// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package smash

import (
	"regexp"
	"strings"

	"passgate/internal/detector"
)

// minRunLength is the shortest alphabetic run worth testing for mashing.
const minRunLength = 7

// maxVowelRatio is the exclusive upper bound on vowel density for a run to
// count as key mashing.
const maxVowelRatio = 0.2

var (
	alphaRunPattern = regexp.MustCompile(`[A-Za-z]{7,}`)
	vowels          = "aeiouAEIOU"
)

// Analyzer flags candidates that look like random key mashing: long
// alphabetic runs with almost no vowels ("xkjdfqwp").
type Analyzer struct{}

// NewAnalyzer creates a new consonant-smash analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Name() string {
	return "CONSONANT_SMASH"
}

// Analyze implements the detector.Analyzer interface.
func (a *Analyzer) Analyze(candidate string, out *detector.Signals) {
	out.ConsonantSmash = IsConsonantSmash(candidate)
}

// IsConsonantSmash reports whether any maximal alphabetic run of at least 7
// characters has a vowel ratio strictly below 0.2. Real words keep their
// vowels; mashed keys rarely do.
func IsConsonantSmash(candidate string) bool {
	for _, token := range alphaRunPattern.FindAllString(candidate, -1) {
		count := 0
		for _, r := range token {
			if strings.ContainsRune(vowels, r) {
				count++
			}
		}
		if float64(count)/float64(len(token)) < maxVowelRatio {
			return true
		}
	}
	return false
}
