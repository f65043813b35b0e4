// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"passgate/internal/detector"
)

// asciiPunctuation mirrors the usual punctuation set; any of these, or any
// Unicode whitespace, counts toward the symbol class.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Classify derives the length and character-class presence flags for a
// trimmed candidate. Total over any string, including empty.
func Classify(candidate string) detector.Classification {
	cls := detector.Classification{
		Length: utf8.RuneCountInString(candidate),
	}
	for _, r := range candidate {
		switch {
		case unicode.IsLower(r):
			cls.HasLower = true
		case unicode.IsUpper(r):
			cls.HasUpper = true
		case unicode.IsDigit(r):
			cls.HasDigit = true
		case strings.ContainsRune(asciiPunctuation, r) || unicode.IsSpace(r):
			cls.HasSymbol = true
		}
	}
	return cls
}
