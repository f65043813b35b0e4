// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package structure

import "passgate/internal/help"

// GetCheckInfo returns standardized information about the structure check
func (a *Analyzer) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             a.Name(),
		ShortDescription: "Detects deliberate structure: passphrases, CamelCase, word+date",
		DetailedDescription: `The structure check produces the intent signals the decision gate requires. A candidate with none of them is rejected with reason "no_intent_signal" no matter how high it scores.

PASSPHRASE-LIKE: two or more alphabetic tokens of 3+ letters separated by non-letter characters ("happy-biryani-2025!").

CAMELCASE: two or more segments of one uppercase letter followed by 2+ lowercase letters ("BlueParrot").

WORD-PLUS-DATE: at least one word token combined with a 1900-2099 year or an English month abbreviation ("Ravi@Vizag_27Aug"). Trivial digit sequences do not count as dates.

MEANINGFUL SEPARATORS: dash, underscore, dot or space. Separators earn a bonus point only alongside a passphrase or CamelCase signal.`,
		Signals: []string{
			"passphrase_like - 2+ word tokens",
			"camel_case_segments / camel_case - CamelCase segment count and flag",
			"word_plus_dateish - word combined with year or month",
			"meaningful_separators - contains - _ . or space",
			"has_intent_signal - any of the three intent signals",
		},
		ScoreImpact: []help.ScoreFactor{
			{Name: "Passphrase bonus", Description: "Passphrase-like structure", Points: 2},
			{Name: "CamelCase bonus", Description: "2+ CamelCase segments", Points: 2},
			{Name: "Word+date bonus", Description: "Word with year or month", Points: 1},
			{Name: "Separator bonus", Description: "Separators plus passphrase or CamelCase", Points: 1},
		},
		Examples: []string{
			`"GreenTea--Morning@16" -> passphrase + CamelCase + separators`,
			`"xjkdf&$2L" -> no intent signal, rejected outright`,
		},
	}
}
