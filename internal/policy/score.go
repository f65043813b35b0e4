// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package policy

import "passgate/internal/detector"

// scoreCandidate combines the classification and the analyzer signals into
// the additive score. All rules are independent; nothing here branches on
// earlier components.
func scoreCandidate(rules Ruleset, cls detector.Classification, sig detector.Signals) detector.ScoreBreakdown {
	var b detector.ScoreBreakdown
	w := rules.Weights

	for _, tier := range w.LengthTiers {
		if cls.Length >= tier.MinLength {
			b.Length = tier.Points
			break
		}
	}

	variety := 0
	for _, present := range []bool{cls.HasLower, cls.HasUpper, cls.HasDigit, cls.HasSymbol} {
		if present {
			variety++
		}
	}
	variety--
	if variety < 0 {
		variety = 0
	}
	if variety > w.VarietyCap {
		variety = w.VarietyCap
	}
	b.Variety = variety

	if sig.PassphraseLike {
		b.Intent += w.Passphrase
	}
	if sig.CamelCase {
		b.Intent += w.CamelCase
	}
	if sig.WordPlusDate {
		b.Intent += w.WordPlusDate
	}
	if sig.MeaningfulSeparators && (sig.PassphraseLike || sig.CamelCase) {
		b.Intent += w.Separators
	}

	if sig.LinearSequence >= w.SequencePenaltyAt {
		b.Penalty -= w.SequencePenalty
	}
	if sig.KeyboardWalk >= w.KeyboardPenaltyAt {
		b.Penalty -= w.KeyboardPenalty
	}
	if sig.RepeatedChunk {
		b.Penalty -= w.RepeatedChunkPenalty
	}
	if sig.SameCharRun >= w.SameCharRunPenaltyAt {
		b.Penalty -= w.SameCharRunPenalty
	}
	if sig.ConsonantSmash {
		b.Penalty -= w.ConsonantSmashPenalty
	}
	if sig.AmbiguousRatio >= rules.AmbiguousPenaltyRatio && sig.AmbiguousRatio < rules.AmbiguousRejectRatio {
		b.Penalty -= w.AmbiguityPenalty
	}

	b.Total = b.Length + b.Variety + b.Intent + b.Penalty
	return b
}
