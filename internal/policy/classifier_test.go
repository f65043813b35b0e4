// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"testing"

	"passgate/internal/detector"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
		want      detector.Classification
	}{
		{
			"empty string",
			"",
			detector.Classification{},
		},
		{
			"lowercase only",
			"abc",
			detector.Classification{Length: 3, HasLower: true},
		},
		{
			"all four classes",
			"Ab1!",
			detector.Classification{Length: 4, HasLower: true, HasUpper: true, HasDigit: true, HasSymbol: true},
		},
		{
			"space counts as symbol",
			"red sky",
			detector.Classification{Length: 7, HasLower: true, HasSymbol: true},
		},
		{
			"underscore counts as symbol",
			"a_b",
			detector.Classification{Length: 3, HasLower: true, HasSymbol: true},
		},
		{
			"digits only",
			"12345678",
			detector.Classification{Length: 8, HasDigit: true},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.candidate); got != tc.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tc.candidate, got, tc.want)
			}
		})
	}
}
