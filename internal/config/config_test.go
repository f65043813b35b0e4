// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"passgate/internal/policy"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") returned error: %v", err)
	}

	if config.Defaults.Format != "text" {
		t.Errorf("Expected default format 'text', got %q", config.Defaults.Format)
	}
	if config.Defaults.Details || config.Defaults.Quiet || config.Defaults.Debug {
		t.Error("Expected details, quiet and debug to default to false")
	}

	strict, ok := config.Profiles["strict"]
	if !ok {
		t.Fatal("Expected built-in 'strict' profile to exist")
	}
	if strict.Policy.MinLength != 10 {
		t.Errorf("Expected strict profile min_length 10, got %d", strict.Policy.MinLength)
	}
	if strict.Policy.ScoreThreshold != 5 {
		t.Errorf("Expected strict profile score_threshold 5, got %d", strict.Policy.ScoreThreshold)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
defaults:
  format: json
  details: true
policy:
  min_length: 12
  banned_terms:
    - hunter2
profiles:
  kiosk:
    description: Shared terminal signups
    format: text
    policy:
      score_threshold: 6
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if config.Defaults.Format != "json" {
		t.Errorf("Expected format 'json', got %q", config.Defaults.Format)
	}
	if !config.Defaults.Details {
		t.Error("Expected details to be enabled")
	}
	if config.Policy.MinLength != 12 {
		t.Errorf("Expected min_length 12, got %d", config.Policy.MinLength)
	}
	if len(config.Policy.BannedTerms) != 1 || config.Policy.BannedTerms[0] != "hunter2" {
		t.Errorf("Unexpected banned_terms: %v", config.Policy.BannedTerms)
	}

	kiosk, ok := config.Profiles["kiosk"]
	if !ok {
		t.Fatal("Expected 'kiosk' profile from file")
	}
	if kiosk.Policy.ScoreThreshold != 6 {
		t.Errorf("Expected kiosk score_threshold 6, got %d", kiosk.Policy.ScoreThreshold)
	}

	// File-defined profiles sit alongside the built-in one
	if _, ok := config.Profiles["strict"]; !ok {
		t.Error("Expected built-in 'strict' profile to survive file load")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "error reading config file") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "defaults: [not: a: mapping")
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("Expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "error parsing config file") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "unsupported format",
			contents: "defaults:\n  format: xml\n",
			wantErr:  "unsupported output format",
		},
		{
			name:     "reject ratio above one",
			contents: "policy:\n  ambiguous_reject_ratio: 1.5\n",
			wantErr:  "ambiguous_reject_ratio",
		},
		{
			name:     "negative min length",
			contents: "policy:\n  min_length: -3\n",
			wantErr:  "min_length",
		},
		{
			name:     "empty keyboard row",
			contents: "policy:\n  keyboard_rows:\n    - qwertyuiop\n    - \"\"\n",
			wantErr:  "keyboard_rows",
		},
		{
			name:     "bad profile format",
			contents: "profiles:\n  web:\n    format: csv\n",
			wantErr:  "profile \"web\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.contents)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestBuildRulesetOverlays(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	config.Policy.MinLength = 12
	config.Policy.BannedTerms = []string{"acme"}

	rules := BuildRuleset(config, nil)
	defaults := policy.DefaultRuleset()

	if rules.MinLength != 12 {
		t.Errorf("Expected min length 12, got %d", rules.MinLength)
	}
	if len(rules.BannedTerms) != 1 || rules.BannedTerms[0] != "acme" {
		t.Errorf("Unexpected banned terms: %v", rules.BannedTerms)
	}

	// Untouched settings keep the shipped defaults
	if rules.ScoreThreshold != defaults.ScoreThreshold {
		t.Errorf("Expected default score threshold %d, got %d", defaults.ScoreThreshold, rules.ScoreThreshold)
	}
	if rules.AmbiguousRejectRatio != defaults.AmbiguousRejectRatio {
		t.Errorf("Expected default reject ratio %v, got %v", defaults.AmbiguousRejectRatio, rules.AmbiguousRejectRatio)
	}
}

func TestBuildRulesetWeightOverrides(t *testing.T) {
	path := writeConfigFile(t, `
policy:
  weights:
    camel_case: 9
    sequence_penalty: 5
    passphrase: 0
    length_tiers:
      - min_length: 20
        points: 5
      - min_length: 8
        points: 1
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	rules := BuildRuleset(config, nil)
	defaults := policy.DefaultRuleset()

	if rules.Weights.CamelCase != 9 {
		t.Errorf("Expected camel_case weight 9, got %d", rules.Weights.CamelCase)
	}
	if rules.Weights.SequencePenalty != 5 {
		t.Errorf("Expected sequence_penalty 5, got %d", rules.Weights.SequencePenalty)
	}

	// An explicit zero disables the bonus; it is not treated as "unset"
	if rules.Weights.Passphrase != 0 {
		t.Errorf("Expected passphrase weight 0, got %d", rules.Weights.Passphrase)
	}

	if len(rules.Weights.LengthTiers) != 2 || rules.Weights.LengthTiers[0].MinLength != 20 {
		t.Errorf("Unexpected length tiers: %v", rules.Weights.LengthTiers)
	}

	// Weights not named in the file keep the shipped defaults
	if rules.Weights.WordPlusDate != defaults.Weights.WordPlusDate {
		t.Errorf("Expected default word_plus_date weight %d, got %d",
			defaults.Weights.WordPlusDate, rules.Weights.WordPlusDate)
	}
	if rules.Weights.AmbiguityPenalty != defaults.Weights.AmbiguityPenalty {
		t.Errorf("Expected default ambiguity_penalty %d, got %d",
			defaults.Weights.AmbiguityPenalty, rules.Weights.AmbiguityPenalty)
	}
}

func TestValidateConfigRejectsBadWeights(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name: "unsorted length tiers",
			contents: `
policy:
  weights:
    length_tiers:
      - min_length: 8
        points: 1
      - min_length: 16
        points: 4
`,
			wantErr: "sorted by min_length descending",
		},
		{
			name: "non-positive tier floor",
			contents: `
policy:
  weights:
    length_tiers:
      - min_length: 0
        points: 2
`,
			wantErr: "min_length must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.contents)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestBuildRulesetProfileWins(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	config.Policy.MinLength = 9

	strict := config.Profiles["strict"]
	rules := BuildRuleset(config, &strict)

	// Profile overlay applies after the config-level overlay
	if rules.MinLength != 10 {
		t.Errorf("Expected strict profile min length 10, got %d", rules.MinLength)
	}
	if rules.ScoreThreshold != 5 {
		t.Errorf("Expected strict profile score threshold 5, got %d", rules.ScoreThreshold)
	}
}

func TestApplyPolicyIgnoresZeroValues(t *testing.T) {
	rules := policy.DefaultRuleset()
	before := rules

	ApplyPolicy(&rules, PolicySettings{})

	if rules.MinLength != before.MinLength {
		t.Error("Zero-value settings must not change the min length")
	}
	if rules.AmbiguousChars != before.AmbiguousChars {
		t.Error("Zero-value settings must not change the ambiguous set")
	}
	if len(rules.KeyboardRows) != len(before.KeyboardRows) {
		t.Error("Zero-value settings must not change keyboard rows")
	}
}

func TestFindConfigFilePrefersLocal(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	}()

	if got := FindConfigFile(); got != "" {
		t.Errorf("Expected no config file in empty directory, got %q", got)
	}

	if err := os.WriteFile("passgate.yaml", []byte("defaults:\n  format: text\n"), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	if got := FindConfigFile(); got != "passgate.yaml" {
		t.Errorf("Expected passgate.yaml, got %q", got)
	}

	// config.yaml outranks the tool-named file
	if err := os.WriteFile("config.yaml", []byte("defaults:\n  format: text\n"), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	if got := FindConfigFile(); got != "config.yaml" {
		t.Errorf("Expected config.yaml, got %q", got)
	}
}
