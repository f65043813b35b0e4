// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package repetition

import "passgate/internal/help"

// GetCheckInfo returns standardized information about the repetition check
func (a *Analyzer) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             a.Name(),
		ShortDescription: "Detects same-character runs and short repeated chunks",
		DetailedDescription: `The repetition check produces two signals: the longest run of one character repeated in adjacent positions, and a flag for candidates built by repeating a short 1-3 character chunk three or more times.

Some repetition is allowed on purpose - typing a word twice can be a deliberate human pattern - so repetition only costs score points and is never a hard reject.

The repeated-chunk flag combines an exact tiling test with a looser occurrence count of the leading chunk. The loose count is a heuristic and can fire on coincidental repeats of the first character.`,
		Signals: []string{
			"max_same_char_run - longest adjacent run of one character",
			"repeated_short_chunk - chunk-spam flag",
		},
		ScoreImpact: []help.ScoreFactor{
			{Name: "Repeated chunk penalty", Description: "1-3 char chunk repeated 3+ times", Points: -2},
			{Name: "Same-char run penalty", Description: "Run of 4 or more identical characters", Points: -2},
		},
		Examples: []string{
			`"abcabcabc" -> exact tiling, -2 penalty`,
			`"aaaa-Winter" -> run of 4, -2 penalty`,
		},
	}
}
