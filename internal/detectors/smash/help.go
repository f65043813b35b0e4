// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package smash

import "passgate/internal/help"

// GetCheckInfo returns standardized information about the consonant-smash check
func (a *Analyzer) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             a.Name(),
		ShortDescription: "Flags long low-vowel letter runs that look like key mashing",
		DetailedDescription: `The consonant-smash check looks for maximal alphabetic runs of 7 or more letters where fewer than 20% are vowels. English words sit well above that ratio, so a run below it almost always means someone dragged a hand across the keyboard.

The policy wants intentional passwords, not random ones, so mashing costs score points even though it is technically hard to guess.`,
		Signals: []string{
			"consonant_smash - key-mashing flag",
		},
		ScoreImpact: []help.ScoreFactor{
			{Name: "Consonant-smash penalty", Description: "Alphabetic run of 7+ letters with vowel ratio below 0.2", Points: -2},
		},
		Examples: []string{
			`"xkjdfqwpz" -> zero vowels in 9 letters, -2 penalty`,
			`"Morning" -> 2 vowels in 7 letters, no penalty`,
		},
	}
}
