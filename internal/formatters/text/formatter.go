// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"passgate/internal/detector"
	"passgate/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(reports []detector.Report, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var sb strings.Builder
	for i := range reports {
		f.writeReport(&sb, &reports[i], options)
	}
	if len(reports) > 1 {
		f.writeSummary(&sb, reports)
	}
	return sb.String(), nil
}

func (f *Formatter) writeReport(sb *strings.Builder, report *detector.Report, options formatters.FormatterOptions) {
	shown := formatters.MaskedPassword
	if options.ShowPassword {
		shown = report.Candidate
	}

	if report.Accepted {
		fmt.Fprintf(sb, "%s %s\n", f.colors["green"].Sprint("✅ ACCEPTED"), shown)
	} else {
		fmt.Fprintf(sb, "%s %s\n", f.colors["red"].Sprint("❌ REJECTED"), shown)
		fmt.Fprintf(sb, "   %s: %s\n", f.colors["yellow"].Sprint(string(report.Reason)), report.Reason.Message())
	}

	if options.Details {
		f.writeDetails(sb, report)
	}
}

func (f *Formatter) writeDetails(sb *strings.Builder, report *detector.Report) {
	cls := report.Classification
	sig := report.Signals

	f.colors["cyan"].Fprintln(sb, "   Classification:")
	w := tabwriter.NewWriter(sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "     length\t%d\n", cls.Length)
	fmt.Fprintf(w, "     classes\tlower=%t upper=%t digit=%t symbol=%t\n",
		cls.HasLower, cls.HasUpper, cls.HasDigit, cls.HasSymbol)
	w.Flush()

	f.colors["cyan"].Fprintln(sb, "   Signals:")
	w = tabwriter.NewWriter(sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "     ambiguous_ratio\t%.3f\n", sig.AmbiguousRatio)
	fmt.Fprintf(w, "     longest_linear_sequence\t%d\n", sig.LinearSequence)
	fmt.Fprintf(w, "     longest_keyboard_walk\t%d\n", sig.KeyboardWalk)
	fmt.Fprintf(w, "     max_same_char_run\t%d\n", sig.SameCharRun)
	fmt.Fprintf(w, "     repeated_short_chunk\t%t\n", sig.RepeatedChunk)
	fmt.Fprintf(w, "     consonant_smash\t%t\n", sig.ConsonantSmash)
	fmt.Fprintf(w, "     passphrase_like\t%t\n", sig.PassphraseLike)
	fmt.Fprintf(w, "     camel_case\t%t (%d segments)\n", sig.CamelCase, sig.CamelSegments)
	fmt.Fprintf(w, "     word_plus_dateish\t%t\n", sig.WordPlusDate)
	fmt.Fprintf(w, "     meaningful_separators\t%t\n", sig.MeaningfulSeparators)
	fmt.Fprintf(w, "     has_intent_signal\t%t\n", sig.IntentSignal)
	w.Flush()

	// Hard rejects never reach the scoring engine
	if !report.Reason.HardReject() {
		f.colors["cyan"].Fprintln(sb, "   Score:")
		w = tabwriter.NewWriter(sb, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "     length\t%+d\n", report.Score.Length)
		fmt.Fprintf(w, "     variety\t%+d\n", report.Score.Variety)
		fmt.Fprintf(w, "     intent\t%+d\n", report.Score.Intent)
		fmt.Fprintf(w, "     penalties\t%+d\n", report.Score.Penalty)
		fmt.Fprintf(w, "     total\t%d\n", report.Score.Total)
		w.Flush()
	}
}

func (f *Formatter) writeSummary(sb *strings.Builder, reports []detector.Report) {
	accepted := 0
	byReason := make(map[detector.ReasonCode]int)
	for i := range reports {
		if reports[i].Accepted {
			accepted++
		}
		byReason[reports[i].Reason]++
	}

	fmt.Fprintln(sb)
	f.colors["white"].Fprintln(sb, "Summary")
	fmt.Fprintf(sb, "  evaluated: %d\n", len(reports))
	fmt.Fprintf(sb, "  accepted:  %s\n", f.colors["green"].Sprintf("%d", accepted))
	fmt.Fprintf(sb, "  rejected:  %s\n", f.colors["red"].Sprintf("%d", len(reports)-accepted))
	for _, reason := range []detector.ReasonCode{
		detector.ReasonTooShort, detector.ReasonBannedTerm, detector.ReasonTooAmbiguous,
		detector.ReasonTooSequential, detector.ReasonNoIntentSignal, detector.ReasonLowScore,
	} {
		if count := byReason[reason]; count > 0 {
			fmt.Fprintf(sb, "    %s: %d\n", reason, count)
		}
	}
}

func init() {
	formatters.Register(NewFormatter())
}
