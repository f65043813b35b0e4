// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ambiguity

import (
	"math"
	"testing"
)

func TestRatio(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
		want      float64
	}{
		{"empty string", "", 0},
		{"no look-alikes", "xyz!@#", 0},
		{"all look-alikes", "O0Il1|S5Z2B8", 1.0},
		{"mixed", "BlueParrot!42", 4.0 / 13.0},
		{"digits only", "1977", 2.0 / 4.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Ratio(tc.candidate, DefaultSet)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Ratio(%q) = %f, want %f", tc.candidate, got, tc.want)
			}
		})
	}
}

func TestCustomSet(t *testing.T) {
	if got := Ratio("aaaa", "a"); got != 1.0 {
		t.Errorf("expected 1.0 with custom set, got %f", got)
	}
	if got := Ratio("aaaa", "b"); got != 0 {
		t.Errorf("expected 0 with non-matching set, got %f", got)
	}
}
