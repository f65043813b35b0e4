// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"passgate/internal/detector"
	"passgate/internal/detectors/ambiguity"
	"passgate/internal/detectors/keyboard"
	"passgate/internal/detectors/repetition"
	"passgate/internal/detectors/sequence"
	"passgate/internal/detectors/smash"
	"passgate/internal/detectors/structure"
	"passgate/internal/help"
)

// buildAnalyzers constructs the full analyzer set for a ruleset. Order is
// fixed: the hard gate reads the ambiguity and sequence signals, and the
// later analyzers only read the candidate itself.
func buildAnalyzers(rules Ruleset) []detector.Analyzer {
	return []detector.Analyzer{
		ambiguity.NewAnalyzer(rules.AmbiguousChars),
		sequence.NewAnalyzer(),
		keyboard.NewAnalyzer(rules.KeyboardRows),
		repetition.NewAnalyzer(),
		smash.NewAnalyzer(),
		structure.NewAnalyzer(),
	}
}

// RegisterHelpProviders adds every analyzer's help content to the system so
// --list-checks and --explain cover the full detector set.
func RegisterHelpProviders(h *help.System, rules Ruleset) {
	for _, a := range buildAnalyzers(rules) {
		if provider, ok := a.(help.Provider); ok {
			h.RegisterProvider(provider)
		}
	}
}
