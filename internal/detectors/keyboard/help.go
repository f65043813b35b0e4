// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package keyboard

import "passgate/internal/help"

// GetCheckInfo returns standardized information about the keyboard-walk check
func (a *Analyzer) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             a.Name(),
		ShortDescription: "Detects runs of physically adjacent keys on a standard layout",
		DetailedDescription: `The keyboard-walk check matches contiguous stretches of the candidate against the four rows of a standard ANSI layout (number row plus qwertyuiop, asdfghjkl, zxcvbnm), in both directions. Matching is case-insensitive.

Walks of 5 or more keys are a hard reject (reason "too_sequential"); a walk of 4 costs score points. Walks longer than 12 keys are reported as 12.

The row layout can be replaced through the "policy.keyboard_rows" configuration key for non-ANSI keyboards.`,
		Signals: []string{
			"longest_keyboard_walk - length of the longest row walk, forward or reversed",
		},
		ScoreImpact: []help.ScoreFactor{
			{Name: "Keyboard walk penalty", Description: "Longest walk of 4 or more", Points: -3},
		},
		Examples: []string{
			`"ASDFGHJKL" -> walk of 9, hard reject`,
			`"poiu-Market7" -> reversed walk of 4, -3 penalty`,
		},
	}
}
