// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"passgate/internal/config"
	"passgate/internal/detector"
	"passgate/internal/help"
	"passgate/internal/observability"
	"passgate/internal/policy"
	"passgate/internal/version"

	"passgate/internal/formatters"
	_ "passgate/internal/formatters/json"
	_ "passgate/internal/formatters/text"
	_ "passgate/internal/formatters/yaml"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Exit codes: 0 all candidates accepted, 1 at least one rejected, 2 usage or
// configuration error.
const (
	exitAccepted = 0
	exitRejected = 1
	exitError    = 2
)

// configFlags holds command line flag values
type configFlags struct {
	password     string
	file         string
	stdin        bool
	format       string
	details      bool
	showPassword bool
	quiet        bool
	noColor      bool
	debug        bool
	configFile   string
	profileName  string
	listProfiles bool
	listChecks   bool
	explain      string
	output       string
	showVersion  bool
}

func main() {
	os.Exit(run())
}

func run() int {
	flags := parseFlags()

	if flags.showVersion {
		if flags.quiet {
			fmt.Println(version.Short())
		} else {
			fmt.Println(version.Info())
		}
		return exitAccepted
	}

	cfg := loadConfiguration(flags.configFile)

	var profile *config.Profile
	if flags.profileName != "" {
		p, ok := cfg.Profiles[flags.profileName]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown profile: %s\n", flags.profileName)
			return exitError
		}
		profile = &p
	}

	final := resolveConfiguration(flags, cfg, profile)
	if final.noColor {
		color.NoColor = true
	}

	rules := config.BuildRuleset(cfg, profile)

	if flags.listProfiles {
		listProfiles(cfg)
		return exitAccepted
	}
	if flags.listChecks || flags.explain != "" {
		helpSystem := help.NewSystem(final.noColor)
		policy.RegisterHelpProviders(helpSystem, rules)
		if flags.explain != "" {
			if err := helpSystem.ShowCheckHelp(flags.explain); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return exitError
			}
		} else {
			helpSystem.ShowChecksList()
		}
		return exitAccepted
	}

	candidates, err := collectCandidates(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	if len(candidates) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no candidates to evaluate")
		return exitError
	}

	evaluator := policy.NewEvaluator(rules)
	if final.debug {
		debugObs := observability.NewDebugObserver(os.Stderr)
		evaluator.SetObserver(debugObs.StandardObserver)
	}

	reports := make([]detector.Report, 0, len(candidates))
	rejected := false
	for _, candidate := range candidates {
		report := evaluator.Evaluate(candidate)
		if !report.Accepted {
			rejected = true
		}
		reports = append(reports, report)
	}

	if !final.quiet {
		output, err := formatters.Export(final.format, reports, formatters.FormatterOptions{
			Details:      final.details,
			NoColor:      final.noColor,
			ShowPassword: final.showPassword,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitError
		}
		if err := writeOutput(flags.output, output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitError
		}
	}

	if rejected {
		return exitRejected
	}
	return exitAccepted
}

func parseFlags() *configFlags {
	flags := &configFlags{}
	flag.StringVar(&flags.password, "password", "", "Candidate password to evaluate")
	flag.StringVar(&flags.file, "file", "", "Path to a file with one candidate per line (audit mode)")
	flag.BoolVar(&flags.stdin, "stdin", false, "Read candidates from standard input, one per line")
	flag.StringVar(&flags.format, "format", "", "Output format: text, json, yaml (default: text)")
	flag.BoolVar(&flags.details, "details", false, "Include the full signal and score breakdown")
	flag.BoolVar(&flags.showPassword, "show-password", false, "Display candidates in output (otherwise shows [HIDDEN])")
	flag.BoolVar(&flags.quiet, "quiet", false, "Suppress output; report the decision via the exit code only")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug logging of pipeline stages")
	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&flags.profileName, "profile", "", "Profile name to use from config file")
	flag.BoolVar(&flags.listProfiles, "list-profiles", false, "List available profiles in config file")
	flag.BoolVar(&flags.listChecks, "list-checks", false, "List the pattern checks the policy runs")
	flag.StringVar(&flags.explain, "explain", "", "Show detailed help for a specific check")
	flag.StringVar(&flags.output, "output", "", "Path to output file (if not specified, output to stdout)")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information")
	flag.Parse()
	return flags
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format       string
	details      bool
	showPassword bool
	quiet        bool
	noColor      bool
	debug        bool
}

// resolveConfiguration applies precedence: command line flags override
// profile settings, which override config defaults.
func resolveConfiguration(flags *configFlags, cfg *config.Config, profile *config.Profile) finalConfiguration {
	final := finalConfiguration{
		format:       cfg.Defaults.Format,
		details:      cfg.Defaults.Details,
		showPassword: cfg.Defaults.ShowPassword,
		quiet:        cfg.Defaults.Quiet,
		noColor:      cfg.Defaults.NoColor,
		debug:        cfg.Defaults.Debug,
	}
	if final.format == "" {
		final.format = "text"
	}

	if profile != nil {
		if profile.Format != "" {
			final.format = profile.Format
		}
		if profile.Details {
			final.details = true
		}
		if profile.Quiet {
			final.quiet = true
		}
		if profile.NoColor {
			final.noColor = true
		}
	}

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if explicit["format"] {
		final.format = flags.format
	}
	if explicit["details"] {
		final.details = flags.details
	}
	if explicit["show-password"] {
		final.showPassword = flags.showPassword
	}
	if explicit["quiet"] {
		final.quiet = flags.quiet
	}
	if explicit["no-color"] {
		final.noColor = flags.noColor
	}
	if explicit["debug"] {
		final.debug = flags.debug
	}
	return final
}

// collectCandidates gathers the candidate passwords from the selected source.
// With no source flags and a terminal on stdin, it falls back to a no-echo
// interactive prompt; with piped stdin it reads lines like --stdin.
func collectCandidates(flags *configFlags) ([]string, error) {
	sources := 0
	for _, set := range []bool{flags.password != "", flags.file != "", flags.stdin} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, fmt.Errorf("use only one of --password, --file, --stdin")
	}

	switch {
	case flags.password != "":
		return []string{flags.password}, nil
	case flags.file != "":
		f, err := os.Open(flags.file)
		if err != nil {
			return nil, fmt.Errorf("error opening candidate file: %w", err)
		}
		defer f.Close()
		return readCandidateLines(f)
	case flags.stdin || !term.IsTerminal(int(os.Stdin.Fd())):
		return readCandidateLines(os.Stdin)
	default:
		return promptForPassword()
	}
}

func readCandidateLines(f *os.File) ([]string, error) {
	var candidates []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		candidates = append(candidates, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading candidates: %w", err)
	}
	return candidates, nil
}

// promptForPassword reads one candidate from the terminal without echoing it.
func promptForPassword() ([]string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("error reading password: %w", err)
	}
	return []string{string(raw)}, nil
}

func listProfiles(cfg *config.Config) {
	if len(cfg.Profiles) == 0 {
		fmt.Println("No profiles configured.")
		return
	}
	fmt.Println("Available profiles:")
	for name, profile := range cfg.Profiles {
		if profile.Description != "" {
			fmt.Printf("  %s - %s\n", name, profile.Description)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
}

func writeOutput(path, output string) error {
	if path == "" {
		fmt.Println(output)
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0o600); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	return nil
}
