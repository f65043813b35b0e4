// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"passgate/internal/detector"
	"passgate/internal/formatters"

	yamlv3 "gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML output for human-readable structured data"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

func (f *Formatter) Format(reports []detector.Report, options formatters.FormatterOptions) (string, error) {
	response := formatters.BuildResponse(reports, options)

	data, err := yamlv3.Marshal(response)
	if err != nil {
		return "", fmt.Errorf("error formatting YAML output: %w", err)
	}
	return string(data), nil
}

func init() {
	formatters.Register(NewFormatter())
}
