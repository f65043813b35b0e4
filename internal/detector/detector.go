// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// Classification records the basic character-class makeup of a candidate.
// It is derived once per evaluation and never mutated afterwards.
type Classification struct {
	Length    int  `json:"length" yaml:"length"`
	HasLower  bool `json:"has_lower" yaml:"has_lower"`
	HasUpper  bool `json:"has_upper" yaml:"has_upper"`
	HasDigit  bool `json:"has_digit" yaml:"has_digit"`
	HasSymbol bool `json:"has_symbol" yaml:"has_symbol"`
}

// Signals holds the outputs of every pattern analyzer for one candidate.
// Each analyzer fills in its own fields; all of them are pure functions of
// the candidate string.
type Signals struct {
	AmbiguousRatio float64 `json:"ambiguous_ratio" yaml:"ambiguous_ratio"`

	LinearSequence int `json:"longest_linear_sequence" yaml:"longest_linear_sequence"`
	KeyboardWalk   int `json:"longest_keyboard_walk" yaml:"longest_keyboard_walk"`

	SameCharRun    int  `json:"max_same_char_run" yaml:"max_same_char_run"`
	RepeatedChunk  bool `json:"repeated_short_chunk" yaml:"repeated_short_chunk"`
	ConsonantSmash bool `json:"consonant_smash" yaml:"consonant_smash"`

	PassphraseLike       bool `json:"passphrase_like" yaml:"passphrase_like"`
	CamelSegments        int  `json:"camel_case_segments" yaml:"camel_case_segments"`
	CamelCase            bool `json:"camel_case" yaml:"camel_case"`
	WordPlusDate         bool `json:"word_plus_dateish" yaml:"word_plus_dateish"`
	MeaningfulSeparators bool `json:"meaningful_separators" yaml:"meaningful_separators"`

	// IntentSignal is true when at least one of the structural signals
	// (passphrase-like, CamelCase, word-plus-dateish) fired.
	IntentSignal bool `json:"has_intent_signal" yaml:"has_intent_signal"`
}

// ScoreBreakdown is the additive score with its components kept separate so
// callers can explain a decision. Penalty holds the summed penalties as a
// non-positive number.
type ScoreBreakdown struct {
	Length  int `json:"length_points" yaml:"length_points"`
	Variety int `json:"variety_points" yaml:"variety_points"`
	Intent  int `json:"intent_points" yaml:"intent_points"`
	Penalty int `json:"penalty_points" yaml:"penalty_points"`
	Total   int `json:"total" yaml:"total"`
}

// Report is the full diagnostic record for one evaluated candidate.
// For hard-rejected candidates the Score breakdown is left zero-valued:
// scoring never runs once a hard-reject condition matches.
type Report struct {
	// Candidate is the trimmed input. It is excluded from serialized output;
	// formatters decide whether to show or mask it.
	Candidate string `json:"-" yaml:"-"`

	Classification Classification `json:"classification" yaml:"classification"`
	Signals        Signals        `json:"signals" yaml:"signals"`
	Score          ScoreBreakdown `json:"score" yaml:"score"`
	Reason         ReasonCode     `json:"reason" yaml:"reason"`
	Accepted       bool           `json:"accepted" yaml:"accepted"`
}

// Analyzer is a single pattern analysis over a candidate string. Analyzers
// write their results into the shared Signals record and must not keep any
// per-call state, so one analyzer instance is safe for concurrent use.
type Analyzer interface {
	// Name returns the check name used by check filtering and the help
	// system (e.g. "KEYBOARD_WALK").
	Name() string

	// Analyze inspects the candidate and fills in the analyzer's fields of
	// the Signals record. It must be total over any string, including empty.
	Analyze(candidate string, out *Signals)
}
