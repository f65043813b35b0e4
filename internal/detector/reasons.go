// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// ReasonCode identifies why a candidate was accepted or rejected. The string
// values are stable identifiers and appear verbatim in serialized reports;
// they must not change between releases.
type ReasonCode string

const (
	// Hard-reject conditions, in gate order. The first matching condition
	// wins, so a candidate matching several always reports the earliest.
	ReasonTooShort      ReasonCode = "too_short"
	ReasonBannedTerm    ReasonCode = "banned_term"
	ReasonTooAmbiguous  ReasonCode = "too_ambiguous"
	ReasonTooSequential ReasonCode = "too_sequential"

	// Decision-gate outcomes.
	ReasonNoIntentSignal ReasonCode = "no_intent_signal"
	ReasonLowScore       ReasonCode = "low_score"
	ReasonAccepted       ReasonCode = "accepted"
)

// HardReject reports whether the code is one of the short-circuit conditions
// evaluated before scoring.
func (r ReasonCode) HardReject() bool {
	switch r {
	case ReasonTooShort, ReasonBannedTerm, ReasonTooAmbiguous, ReasonTooSequential:
		return true
	}
	return false
}

// Message returns a short human-readable explanation suitable for user-facing
// feedback. The core pipeline itself only deals in codes.
func (r ReasonCode) Message() string {
	switch r {
	case ReasonTooShort:
		return "password is too short"
	case ReasonBannedTerm:
		return "password contains a commonly used term"
	case ReasonTooAmbiguous:
		return "password relies too heavily on visually confusable characters"
	case ReasonTooSequential:
		return "password contains a long sequence or keyboard walk"
	case ReasonNoIntentSignal:
		return "password shows no deliberate structure"
	case ReasonLowScore:
		return "password does not meet the minimum strength score"
	case ReasonAccepted:
		return "password accepted"
	}
	return string(r)
}
