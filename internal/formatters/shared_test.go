// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"testing"

	"passgate/internal/detector"
)

func sampleReports() []detector.Report {
	return []detector.Report{
		{
			Candidate:      "BlueParrot!42",
			Classification: detector.Classification{Length: 13, HasLower: true, HasUpper: true, HasDigit: true, HasSymbol: true},
			Signals:        detector.Signals{CamelCase: true, CamelSegments: 2, IntentSignal: true},
			Score:          detector.ScoreBreakdown{Length: 3, Variety: 3, Intent: 2, Penalty: -1, Total: 7},
			Reason:         detector.ReasonAccepted,
			Accepted:       true,
		},
		{
			Candidate:      "short1",
			Classification: detector.Classification{Length: 6, HasLower: true, HasDigit: true},
			Reason:         detector.ReasonTooShort,
		},
		{
			Candidate:      "xjkdf&$2L",
			Classification: detector.Classification{Length: 9, HasLower: true, HasUpper: true, HasDigit: true, HasSymbol: true},
			Reason:         detector.ReasonNoIntentSignal,
		},
	}
}

func TestBuildResponseMasksPasswords(t *testing.T) {
	response := BuildResponse(sampleReports(), FormatterOptions{})

	if len(response.Results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(response.Results))
	}
	for i, result := range response.Results {
		if result.Password != MaskedPassword {
			t.Errorf("Result %d: expected masked password, got %q", i, result.Password)
		}
		if result.Details != nil {
			t.Errorf("Result %d: expected no details without the option", i)
		}
	}
}

func TestBuildResponseShowPassword(t *testing.T) {
	response := BuildResponse(sampleReports(), FormatterOptions{ShowPassword: true})

	if response.Results[0].Password != "BlueParrot!42" {
		t.Errorf("Expected candidate to be shown, got %q", response.Results[0].Password)
	}
}

func TestBuildResponseDetails(t *testing.T) {
	response := BuildResponse(sampleReports(), FormatterOptions{Details: true})

	details := response.Results[0].Details
	if details == nil {
		t.Fatal("Expected details to be attached")
	}
	if details.Score.Total != 7 {
		t.Errorf("Expected score total 7 in details, got %d", details.Score.Total)
	}
	if !details.Signals.CamelCase {
		t.Error("Expected camel case signal in details")
	}
}

func TestBuildResponseSummary(t *testing.T) {
	response := BuildResponse(sampleReports(), FormatterOptions{})
	summary := response.Summary

	if summary.Total != 3 {
		t.Errorf("Expected total 3, got %d", summary.Total)
	}
	if summary.Accepted != 1 {
		t.Errorf("Expected 1 accepted, got %d", summary.Accepted)
	}
	if summary.Rejected != 2 {
		t.Errorf("Expected 2 rejected, got %d", summary.Rejected)
	}
	if summary.ByReason["too_short"] != 1 {
		t.Errorf("Expected one too_short, got %d", summary.ByReason["too_short"])
	}
	if summary.ByReason["no_intent_signal"] != 1 {
		t.Errorf("Expected one no_intent_signal, got %d", summary.ByReason["no_intent_signal"])
	}
	if summary.ByReason["accepted"] != 1 {
		t.Errorf("Expected one accepted, got %d", summary.ByReason["accepted"])
	}
}

func TestBuildResponseMessages(t *testing.T) {
	response := BuildResponse(sampleReports(), FormatterOptions{})

	for i, result := range response.Results {
		if result.Message == "" {
			t.Errorf("Result %d: expected a reason message", i)
		}
		if result.Message != result.Reason.Message() {
			t.Errorf("Result %d: message does not match reason %q", i, result.Reason)
		}
	}
}

func TestRegistryUnknownFormat(t *testing.T) {
	if _, err := Export("csv", sampleReports(), FormatterOptions{}); err == nil {
		t.Error("Expected error for unregistered format")
	}
}
