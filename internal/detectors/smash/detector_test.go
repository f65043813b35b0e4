// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package smash

import "testing"

func TestIsConsonantSmash(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"empty string", "", false},
		{"short mash is ignored", "xjkdf", false},
		{"no vowels in long run", "xkjdfqwpz", true},
		{"vowel-free word", "rhythms", true},
		{"one vowel in seven", "bcdafgh", true},
		{"real word stays clear", "Morning", false},
		{"ratio exactly 0.2 is not a smash", "bcdfghjkae", false},
		{"mash split by digits", "xk2jd3fq", false},
		{"mash embedded in candidate", "Go!qwrtzpsdf42", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsConsonantSmash(tc.candidate); got != tc.want {
				t.Errorf("IsConsonantSmash(%q) = %t, want %t", tc.candidate, got, tc.want)
			}
		})
	}
}
