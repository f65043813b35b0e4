// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sequence

import "passgate/internal/help"

// GetCheckInfo returns standardized information about the linear-sequence check
func (a *Analyzer) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             a.Name(),
		ShortDescription: "Detects straight ascending or descending character runs",
		DetailedDescription: `The linear-sequence check scans adjacent character pairs for constant +1 or -1 code-point steps, catching classics like "abcd", "4321" and "WXYZ". Letters are compared case-insensitively, so mixed-case tricks like "aBcDe" are still caught.

A run of 5 or more characters is a hard reject (reason "too_sequential"); a run of 4 costs score points but does not disqualify on its own.`,
		Signals: []string{
			"longest_linear_sequence - length of the longest constant-step run",
		},
		ScoreImpact: []help.ScoreFactor{
			{Name: "Sequence penalty", Description: "Longest run of 4 or more", Points: -3},
		},
		Examples: []string{
			`"Abcdefg123!" -> run of 7, hard reject`,
			`"hold9876tight" -> run of 4, -3 penalty`,
		},
	}
}
