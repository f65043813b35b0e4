// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package policy

import "passgate/internal/detectors/ambiguity"

// Ruleset holds every tunable surface of the policy: the banned-term set,
// the look-alike character set, the keyboard layout, and all thresholds and
// score weights. Values are treated as immutable once the evaluator is
// built; tuning happens by constructing a new Ruleset, never by mutating a
// shared one.
type Ruleset struct {
	// MinLength is the hard floor; shorter candidates reject with too_short.
	MinLength int `yaml:"min_length"`

	// BannedTerms reject outright when contained case-insensitively.
	BannedTerms []string `yaml:"banned_terms"`

	// AmbiguousChars is the look-alike set fed to the ambiguity analyzer.
	AmbiguousChars string `yaml:"ambiguous_chars"`

	// AmbiguousRejectRatio hard-rejects at or above this look-alike density.
	AmbiguousRejectRatio float64 `yaml:"ambiguous_reject_ratio"`

	// AmbiguousPenaltyRatio is the lower bound of the penalty band
	// [AmbiguousPenaltyRatio, AmbiguousRejectRatio).
	AmbiguousPenaltyRatio float64 `yaml:"ambiguous_penalty_ratio"`

	// KeyboardRows is the physical layout for walk detection, lowercase.
	KeyboardRows []string `yaml:"keyboard_rows"`

	// HardSequenceLength hard-rejects when the longest linear sequence or
	// keyboard walk reaches it.
	HardSequenceLength int `yaml:"hard_sequence_length"`

	// ScoreThreshold is the minimum total score the decision gate accepts.
	ScoreThreshold int `yaml:"score_threshold"`

	Weights Weights `yaml:"weights"`
}

// Weights are the additive scoring rules. Penalty fields hold positive
// magnitudes; the scoring engine subtracts them.
type Weights struct {
	// LengthTiers award points for the first tier whose MinLength the
	// candidate meets; keep the slice sorted by MinLength descending.
	LengthTiers []LengthTier `yaml:"length_tiers"`

	// VarietyCap limits the character-class variety points
	// (classes present - 1, floored at 0).
	VarietyCap int `yaml:"variety_cap"`

	Passphrase   int `yaml:"passphrase"`
	CamelCase    int `yaml:"camel_case"`
	WordPlusDate int `yaml:"word_plus_date"`
	Separators   int `yaml:"separators"`

	SequencePenalty   int `yaml:"sequence_penalty"`
	SequencePenaltyAt int `yaml:"sequence_penalty_at"`
	KeyboardPenalty   int `yaml:"keyboard_penalty"`
	KeyboardPenaltyAt int `yaml:"keyboard_penalty_at"`

	RepeatedChunkPenalty  int `yaml:"repeated_chunk_penalty"`
	SameCharRunPenalty    int `yaml:"same_char_run_penalty"`
	SameCharRunPenaltyAt  int `yaml:"same_char_run_penalty_at"`
	ConsonantSmashPenalty int `yaml:"consonant_smash_penalty"`
	AmbiguityPenalty      int `yaml:"ambiguity_penalty"`
}

// LengthTier awards Points when the candidate length is at least MinLength.
type LengthTier struct {
	MinLength int `yaml:"min_length"`
	Points    int `yaml:"points"`
}

// DefaultRuleset returns the standard policy: length floor of 8, the
// notorious-password ban list, a 0.60 look-alike ceiling, sequence gate at 5
// and an acceptance score of 3.
func DefaultRuleset() Ruleset {
	return Ruleset{
		MinLength: 8,
		BannedTerms: []string{
			"password", "qwerty", "letmein", "welcome", "iloveyou",
			"dragon", "monkey", "admin", "login", "abc123",
		},
		AmbiguousChars:        ambiguity.DefaultSet,
		AmbiguousRejectRatio:  0.60,
		AmbiguousPenaltyRatio: 0.30,
		KeyboardRows: []string{
			"`1234567890-=",
			"qwertyuiop",
			"asdfghjkl",
			"zxcvbnm",
		},
		HardSequenceLength: 5,
		ScoreThreshold:     3,
		Weights: Weights{
			LengthTiers: []LengthTier{
				{MinLength: 16, Points: 4},
				{MinLength: 12, Points: 3},
				{MinLength: 10, Points: 2},
				{MinLength: 8, Points: 1},
			},
			VarietyCap:   3,
			Passphrase:   2,
			CamelCase:    2,
			WordPlusDate: 1,
			Separators:   1,

			SequencePenalty:   3,
			SequencePenaltyAt: 4,
			KeyboardPenalty:   3,
			KeyboardPenaltyAt: 4,

			RepeatedChunkPenalty:  2,
			SameCharRunPenalty:    2,
			SameCharRunPenaltyAt:  4,
			ConsonantSmashPenalty: 2,
			AmbiguityPenalty:      1,
		},
	}
}
