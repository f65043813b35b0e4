// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"passgate/internal/policy"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format       string `yaml:"format"`
		Details      bool   `yaml:"details"`
		Quiet        bool   `yaml:"quiet"`
		Debug        bool   `yaml:"debug"`
		NoColor      bool   `yaml:"no_color"`
		ShowPassword bool   `yaml:"show_password"`
	} `yaml:"defaults"`

	// Policy overrides applied on top of the default ruleset. Zero values
	// mean "keep the default"; see ApplyPolicy.
	Policy PolicySettings `yaml:"policy"`

	// Profiles for different deployment scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// PolicySettings mirrors the tunable surfaces of policy.Ruleset. Fields left
// at their zero value keep the shipped default, so a config file only needs
// to name what it changes.
type PolicySettings struct {
	MinLength             int             `yaml:"min_length"`
	BannedTerms           []string        `yaml:"banned_terms"`
	AmbiguousChars        string          `yaml:"ambiguous_chars"`
	AmbiguousRejectRatio  float64         `yaml:"ambiguous_reject_ratio"`
	AmbiguousPenaltyRatio float64         `yaml:"ambiguous_penalty_ratio"`
	KeyboardRows          []string        `yaml:"keyboard_rows"`
	HardSequenceLength    int             `yaml:"hard_sequence_length"`
	ScoreThreshold        int             `yaml:"score_threshold"`
	Weights               *WeightSettings `yaml:"weights"`
}

// WeightSettings overlays individual score weights. Fields are pointers so a
// config file can set a weight to zero (disabling a bonus or penalty) while
// absent fields keep the shipped default.
type WeightSettings struct {
	LengthTiers []policy.LengthTier `yaml:"length_tiers"`
	VarietyCap  *int                `yaml:"variety_cap"`

	Passphrase   *int `yaml:"passphrase"`
	CamelCase    *int `yaml:"camel_case"`
	WordPlusDate *int `yaml:"word_plus_date"`
	Separators   *int `yaml:"separators"`

	SequencePenalty   *int `yaml:"sequence_penalty"`
	SequencePenaltyAt *int `yaml:"sequence_penalty_at"`
	KeyboardPenalty   *int `yaml:"keyboard_penalty"`
	KeyboardPenaltyAt *int `yaml:"keyboard_penalty_at"`

	RepeatedChunkPenalty  *int `yaml:"repeated_chunk_penalty"`
	SameCharRunPenalty    *int `yaml:"same_char_run_penalty"`
	SameCharRunPenaltyAt  *int `yaml:"same_char_run_penalty_at"`
	ConsonantSmashPenalty *int `yaml:"consonant_smash_penalty"`
	AmbiguityPenalty      *int `yaml:"ambiguity_penalty"`
}

// Profile represents a named policy variant with specific settings
type Profile struct {
	Description string         `yaml:"description"`
	Format      string         `yaml:"format"`
	Details     bool           `yaml:"details"`
	Quiet       bool           `yaml:"quiet"`
	NoColor     bool           `yaml:"no_color"`
	Policy      PolicySettings `yaml:"policy"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{
		Profiles: make(map[string]Profile),
	}
	config.Defaults.Format = "text"

	// Built-in strict profile for signup flows that want a higher bar
	config.Profiles["strict"] = Profile{
		Description: "Higher bar: 10-character floor and score threshold of 5",
		Format:      "text",
		Policy: PolicySettings{
			MinLength:      10,
			ScoreThreshold: 5,
		},
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	candidates := []string{
		"config.yaml",
		"passgate.yaml",
		"passgate.yml",
		".passgate.yaml",
		".passgate.yml",
	}
	for _, c := range candidates {
		if fileExists(c) {
			return c
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "passgate", "config.yaml")
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// ValidateConfig checks a loaded configuration for values the application
// cannot work with.
func ValidateConfig(config *Config) error {
	if err := validateFormat(config.Defaults.Format); err != nil {
		return err
	}
	if err := validatePolicy(config.Policy); err != nil {
		return err
	}
	for name, profile := range config.Profiles {
		if profile.Format != "" {
			if err := validateFormat(profile.Format); err != nil {
				return fmt.Errorf("profile %q: %w", name, err)
			}
		}
		if err := validatePolicy(profile.Policy); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case "", "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unsupported output format: %s", format)
}

func validatePolicy(p PolicySettings) error {
	if p.MinLength < 0 {
		return fmt.Errorf("min_length must not be negative")
	}
	if p.AmbiguousRejectRatio < 0 || p.AmbiguousRejectRatio > 1 {
		return fmt.Errorf("ambiguous_reject_ratio must be within [0, 1]")
	}
	if p.AmbiguousPenaltyRatio < 0 || p.AmbiguousPenaltyRatio > 1 {
		return fmt.Errorf("ambiguous_penalty_ratio must be within [0, 1]")
	}
	if p.HardSequenceLength < 0 {
		return fmt.Errorf("hard_sequence_length must not be negative")
	}
	for _, row := range p.KeyboardRows {
		if row == "" {
			return fmt.Errorf("keyboard_rows must not contain empty rows")
		}
	}
	if p.Weights != nil {
		// The scoring engine awards the first tier whose floor the candidate
		// meets, so tiers must come sorted by min_length descending.
		for i, tier := range p.Weights.LengthTiers {
			if tier.MinLength <= 0 {
				return fmt.Errorf("length_tiers min_length must be positive")
			}
			if i > 0 && tier.MinLength >= p.Weights.LengthTiers[i-1].MinLength {
				return fmt.Errorf("length_tiers must be sorted by min_length descending")
			}
		}
	}
	return nil
}

// BuildRuleset produces the effective ruleset: the shipped defaults with the
// config-level policy settings applied, then the profile-level settings on
// top when a profile is given.
func BuildRuleset(config *Config, profile *Profile) policy.Ruleset {
	rules := policy.DefaultRuleset()
	ApplyPolicy(&rules, config.Policy)
	if profile != nil {
		ApplyPolicy(&rules, profile.Policy)
	}
	return rules
}

// ApplyPolicy overlays non-zero settings onto a ruleset, then any weight
// overrides on top.
func ApplyPolicy(rules *policy.Ruleset, p PolicySettings) {
	if p.MinLength > 0 {
		rules.MinLength = p.MinLength
	}
	if len(p.BannedTerms) > 0 {
		rules.BannedTerms = p.BannedTerms
	}
	if p.AmbiguousChars != "" {
		rules.AmbiguousChars = p.AmbiguousChars
	}
	if p.AmbiguousRejectRatio > 0 {
		rules.AmbiguousRejectRatio = p.AmbiguousRejectRatio
	}
	if p.AmbiguousPenaltyRatio > 0 {
		rules.AmbiguousPenaltyRatio = p.AmbiguousPenaltyRatio
	}
	if len(p.KeyboardRows) > 0 {
		rules.KeyboardRows = p.KeyboardRows
	}
	if p.HardSequenceLength > 0 {
		rules.HardSequenceLength = p.HardSequenceLength
	}
	if p.ScoreThreshold > 0 {
		rules.ScoreThreshold = p.ScoreThreshold
	}
	if p.Weights != nil {
		applyWeights(&rules.Weights, *p.Weights)
	}
}

func applyWeights(w *policy.Weights, s WeightSettings) {
	if len(s.LengthTiers) > 0 {
		w.LengthTiers = s.LengthTiers
	}

	overlays := []struct {
		src *int
		dst *int
	}{
		{s.VarietyCap, &w.VarietyCap},
		{s.Passphrase, &w.Passphrase},
		{s.CamelCase, &w.CamelCase},
		{s.WordPlusDate, &w.WordPlusDate},
		{s.Separators, &w.Separators},
		{s.SequencePenalty, &w.SequencePenalty},
		{s.SequencePenaltyAt, &w.SequencePenaltyAt},
		{s.KeyboardPenalty, &w.KeyboardPenalty},
		{s.KeyboardPenaltyAt, &w.KeyboardPenaltyAt},
		{s.RepeatedChunkPenalty, &w.RepeatedChunkPenalty},
		{s.SameCharRunPenalty, &w.SameCharRunPenalty},
		{s.SameCharRunPenaltyAt, &w.SameCharRunPenaltyAt},
		{s.ConsonantSmashPenalty, &w.ConsonantSmashPenalty},
		{s.AmbiguityPenalty, &w.AmbiguityPenalty},
	}
	for _, o := range overlays {
		if o.src != nil {
			*o.dst = *o.src
		}
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
