// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import "passgate/internal/detector"

// MaskedPassword is shown in place of the candidate unless ShowPassword is set
const MaskedPassword = "[HIDDEN]"

// Result is the serializable form of one evaluation, shared by the JSON and
// YAML formatters so both emit the same shape.
type Result struct {
	Password string              `json:"password" yaml:"password"`
	Accepted bool                `json:"accepted" yaml:"accepted"`
	Reason   detector.ReasonCode `json:"reason" yaml:"reason"`
	Message  string              `json:"message" yaml:"message"`
	Details  *detector.Report    `json:"details,omitempty" yaml:"details,omitempty"`
}

// Summary aggregates a batch of results
type Summary struct {
	Total    int            `json:"total" yaml:"total"`
	Accepted int            `json:"accepted" yaml:"accepted"`
	Rejected int            `json:"rejected" yaml:"rejected"`
	ByReason map[string]int `json:"by_reason" yaml:"by_reason"`
}

// Response is the top-level structure for serialized output
type Response struct {
	Results []Result `json:"results" yaml:"results"`
	Summary Summary  `json:"summary" yaml:"summary"`
}

// BuildResponse converts reports into the shared output structure, applying
// password masking and the details option.
func BuildResponse(reports []detector.Report, options FormatterOptions) Response {
	response := Response{
		Results: make([]Result, 0, len(reports)),
		Summary: Summary{ByReason: make(map[string]int)},
	}

	for i := range reports {
		report := reports[i]
		result := Result{
			Password: MaskedPassword,
			Accepted: report.Accepted,
			Reason:   report.Reason,
			Message:  report.Reason.Message(),
		}
		if options.ShowPassword {
			result.Password = report.Candidate
		}
		if options.Details {
			result.Details = &report
		}

		response.Results = append(response.Results, result)
		response.Summary.Total++
		if report.Accepted {
			response.Summary.Accepted++
		} else {
			response.Summary.Rejected++
		}
		response.Summary.ByReason[string(report.Reason)]++
	}

	return response
}
