// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package policy implements the password acceptance pipeline: classify the
// candidate, apply the hard-reject gate, run the pattern analyzers, total up
// the score and make the final decision. Every stage is a pure function of
// the candidate string, so an Evaluator is safe for concurrent use.
package policy

import (
	"fmt"
	"strings"

	"passgate/internal/detector"
	"passgate/internal/observability"
)

// Evaluator applies a Ruleset to candidate passwords. Build one with
// NewEvaluator and reuse it; it carries no per-call state.
type Evaluator struct {
	rules     Ruleset
	analyzers []detector.Analyzer
	observer  *observability.StandardObserver
}

// NewEvaluator creates an evaluator for the given ruleset. Use
// DefaultRuleset() for the standard policy.
func NewEvaluator(rules Ruleset) *Evaluator {
	return &Evaluator{
		rules:     rules,
		analyzers: buildAnalyzers(rules),
	}
}

// SetObserver sets the observability component
func (e *Evaluator) SetObserver(observer *observability.StandardObserver) {
	e.observer = observer
}

// IsValid reports whether the candidate satisfies the policy.
func (e *Evaluator) IsValid(candidate string) bool {
	return e.Evaluate(candidate).Accepted
}

// Evaluate runs the full pipeline and returns the diagnostic report. The
// function is total: every input produces a report, never an error. Stage
// order is fixed; a matching hard-reject condition short-circuits before
// scoring, so hard-rejected reports carry a zero score breakdown.
func (e *Evaluator) Evaluate(candidate string) detector.Report {
	finishTiming := e.observer.StartTiming("policy", "evaluate")

	candidate = strings.TrimSpace(candidate)
	report := detector.Report{
		Candidate:      candidate,
		Classification: Classify(candidate),
	}

	for _, a := range e.analyzers {
		a.Analyze(candidate, &report.Signals)
		if e.observer != nil && e.observer.DebugObserver != nil {
			e.observer.DebugObserver.LogDetail("policy", fmt.Sprintf("analyzer %s done", a.Name()))
		}
	}

	if reason, ok := e.hardReject(candidate, report.Classification, report.Signals); ok {
		report.Reason = reason
		if e.observer != nil && e.observer.DebugObserver != nil {
			e.observer.DebugObserver.LogDetail("policy", fmt.Sprintf("hard reject: %s", reason))
		}
		finishTiming(true, map[string]interface{}{"reason": string(reason), "hard_reject": true})
		return report
	}

	report.Score = scoreCandidate(e.rules, report.Classification, report.Signals)

	switch {
	case !report.Signals.IntentSignal:
		report.Reason = detector.ReasonNoIntentSignal
	case report.Score.Total >= e.rules.ScoreThreshold:
		report.Reason = detector.ReasonAccepted
		report.Accepted = true
	default:
		report.Reason = detector.ReasonLowScore
	}

	finishTiming(true, map[string]interface{}{
		"reason": string(report.Reason),
		"score":  report.Score.Total,
	})
	return report
}

// hardReject evaluates the disqualifying conditions in fixed order. The
// order is part of the external contract: a candidate matching several
// conditions must always report the earliest one.
func (e *Evaluator) hardReject(candidate string, cls detector.Classification, sig detector.Signals) (detector.ReasonCode, bool) {
	if cls.Length < e.rules.MinLength {
		return detector.ReasonTooShort, true
	}

	low := strings.ToLower(candidate)
	for _, term := range e.rules.BannedTerms {
		if strings.Contains(low, strings.ToLower(term)) {
			return detector.ReasonBannedTerm, true
		}
	}

	if sig.AmbiguousRatio >= e.rules.AmbiguousRejectRatio {
		return detector.ReasonTooAmbiguous, true
	}

	longest := sig.LinearSequence
	if sig.KeyboardWalk > longest {
		longest = sig.KeyboardWalk
	}
	if longest >= e.rules.HardSequenceLength {
		return detector.ReasonTooSequential, true
	}

	return "", false
}
