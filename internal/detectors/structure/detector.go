// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package structure

import (
	"regexp"
	"strings"

	"passgate/internal/detector"
	"passgate/internal/detectors/sequence"
)

// minTokenLength is the shortest alphabetic token that counts as a word.
const minTokenLength = 3

// minPassphraseTokens is how many word tokens make a passphrase.
const minPassphraseTokens = 2

// minCamelSegments is how many CamelCase segments set the CamelCase flag.
const minCamelSegments = 2

// maxDateSequence keeps trivial digit runs from passing as dates: the
// word-plus-date signal requires the longest linear sequence to stay below it.
const maxDateSequence = 4

var (
	wordTokenPattern = regexp.MustCompile(`[A-Za-z]{3,}`)
	camelPattern     = regexp.MustCompile(`[A-Z][a-z]{2,}`)

	// Years 1900-2099 with word boundaries, matched against the lowercased
	// candidate. The boundaries mean "Summer2019" does not count as a year
	// while "Trip_2019" does; that asymmetry is intentional.
	yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// Analyzer detects deliberate human structure: passphrases, CamelCase words,
// word-plus-date combinations and meaningful separators. These are the intent
// signals the decision gate requires at least one of.
type Analyzer struct {
	// English month abbreviations, matched case-insensitively as substrings.
	months []string

	// Separator characters that suggest deliberate composition.
	separators string
}

// NewAnalyzer creates a new structure analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		months: []string{
			"jan", "feb", "mar", "apr", "may", "jun",
			"jul", "aug", "sep", "oct", "nov", "dec",
		},
		separators: "-_ .",
	}
}

func (a *Analyzer) Name() string {
	return "STRUCTURE"
}

// Analyze implements the detector.Analyzer interface.
func (a *Analyzer) Analyze(candidate string, out *detector.Signals) {
	out.PassphraseLike = PassphraseLike(candidate)
	out.CamelSegments = CamelSegments(candidate)
	out.CamelCase = out.CamelSegments >= minCamelSegments
	out.WordPlusDate = a.WordPlusDateish(candidate)
	out.MeaningfulSeparators = a.HasMeaningfulSeparators(candidate)
	out.IntentSignal = out.PassphraseLike || out.CamelCase || out.WordPlusDate
}

// WordTokens returns the maximal ASCII-alphabetic runs of length >= 3, in
// order of appearance.
func WordTokens(candidate string) []string {
	return wordTokenPattern.FindAllString(candidate, -1)
}

// PassphraseLike reports whether the candidate splits into at least two word
// tokens separated by non-alphabetic characters ("happy-biryani", "red sky").
func PassphraseLike(candidate string) bool {
	return len(WordTokens(candidate)) >= minPassphraseTokens
}

// CamelSegments counts substrings of one uppercase letter followed by two or
// more lowercase letters ("BlueParrotRodeo" -> 3).
func CamelSegments(candidate string) int {
	return len(camelPattern.FindAllString(candidate, -1))
}

// WordPlusDateish reports whether the candidate pairs at least one word token
// with a 1900-2099 year or an English month abbreviation, while staying clear
// of long linear sequences that would make the digits trivial.
func (a *Analyzer) WordPlusDateish(candidate string) bool {
	if len(WordTokens(candidate)) < 1 {
		return false
	}

	low := strings.ToLower(candidate)
	hasYear := yearPattern.MatchString(low)
	hasMonth := false
	for _, m := range a.months {
		if strings.Contains(low, m) {
			hasMonth = true
			break
		}
	}
	if !hasYear && !hasMonth {
		return false
	}

	return sequence.LongestRun(candidate) < maxDateSequence
}

// HasMeaningfulSeparators reports whether the candidate contains any of the
// separator characters ("-", "_", ".", space).
func (a *Analyzer) HasMeaningfulSeparators(candidate string) bool {
	return strings.ContainsAny(candidate, a.separators)
}
