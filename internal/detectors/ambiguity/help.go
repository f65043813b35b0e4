// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ambiguity

import "passgate/internal/help"

// GetCheckInfo returns standardized information about the ambiguity check
func (a *Analyzer) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             a.Name(),
		ShortDescription: "Measures the density of visually confusable characters",
		DetailedDescription: `The ambiguity check counts characters from a look-alike set (0/O/o, 1/l/I/|, 5/S, 2/Z, 8/B, 6/G, 9/g/Q/q) and divides by the candidate length.

A ratio of 0.60 or higher is a hard reject (reason "too_ambiguous"): a password made mostly of look-alikes cannot be reliably read back or retyped. A noticeable but not extreme ratio (0.30 to just under 0.60) costs one score point.

The look-alike set can be replaced through the "policy.ambiguous_chars" configuration key.`,
		Signals: []string{
			"ambiguous_ratio - look-alike characters / length",
		},
		ScoreImpact: []help.ScoreFactor{
			{Name: "Ambiguity penalty", Description: "Ratio in [0.30, 0.60)", Points: -1},
		},
		Examples: []string{
			`"O0Il1|S5Z2B8" -> ratio 1.0, hard reject`,
			`"BlueParrot!42" -> ratio 4/13, -1 penalty`,
		},
	}
}
