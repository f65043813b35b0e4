// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CheckInfo contains standardized information about a check
type CheckInfo struct {
	Name                string        // Name of the check (e.g., "KEYBOARD_WALK")
	ShortDescription    string        // Short description for the checks list
	DetailedDescription string        // Detailed description of what the check does
	Signals             []string      // Signals the check contributes to a report
	ScoreImpact         []ScoreFactor // How the check moves the score
	Examples            []string      // Illustrative candidates
}

// ScoreFactor describes one scoring rule a check feeds
type ScoreFactor struct {
	Name        string // Name of the rule
	Description string // When the rule applies
	Points      int    // Points added (negative for penalties)
}

// Provider defines the interface for help content providers
type Provider interface {
	GetCheckInfo() CheckInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"subtitle": color.New(color.FgCyan, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"positive": color.New(color.FgGreen),
			"negative": color.New(color.FgRed),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetCheckInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowChecksList displays the one-line summary of every registered check
func (h *System) ShowChecksList() {
	h.colors["title"].Println("Available checks")
	fmt.Println("================")
	fmt.Println()

	names := make([]string, 0, len(h.providers))
	for name := range h.providers {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		info := h.providers[name].GetCheckInfo()
		fmt.Fprintf(w, "  %s\t%s\n", info.Name, info.ShortDescription)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("Use --explain <check> for details on a specific check.")
}

// ShowCheckHelp displays detailed help for a single check. Returns an error
// when the check name is unknown.
func (h *System) ShowCheckHelp(name string) error {
	provider, ok := h.providers[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown check: %s", name)
	}
	info := provider.GetCheckInfo()

	h.colors["title"].Println(info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)))
	fmt.Println()
	fmt.Println(info.DetailedDescription)
	fmt.Println()

	if len(info.Signals) > 0 {
		h.colors["header"].Println("SIGNALS:")
		for _, s := range info.Signals {
			h.colors["item"].Printf("  • %s\n", s)
		}
		fmt.Println()
	}

	if len(info.ScoreImpact) > 0 {
		h.colors["header"].Println("SCORE IMPACT:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, f := range info.ScoreImpact {
			sign := h.colors["positive"]
			if f.Points < 0 {
				sign = h.colors["negative"]
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Name, f.Description, sign.Sprintf("%+d", f.Points))
		}
		w.Flush()
		fmt.Println()
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Println("EXAMPLES:")
		for _, e := range info.Examples {
			h.colors["example"].Printf("  %s\n", e)
		}
		fmt.Println()
	}
	return nil
}
