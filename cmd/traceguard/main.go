// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/traceguard/pkg/checker"
)

var rootCmd = &cobra.Command{
	Use:   "traceguard",
	Short: "Validate the traceability matrix against the suite registry and on-disk tests",
	Long: `traceguard cross-checks the repository's traceability matrix against
the suite classification registry and the test files present on disk,
then enforces the configured classified-trace coverage threshold.

It reads docs/traceability_matrix.json and tests/suite_classification.toml
(paths overridable via traceguard.yaml), prints a pass/fail report to
stdout, and exits non-zero when any structural, reconciliation, or policy
error is found. Warnings alone never fail the run.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(run())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the traceguard version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("traceguard " + checker.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// run resolves the configuration, executes the check, and returns the
// process exit status.
func run() int {
	cfg := checker.DefaultConfig()
	if _, err := os.Stat(checker.DefaultConfigFile); err == nil {
		loaded, err := checker.LoadConfig(checker.DefaultConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "traceguard: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	rep := checker.New(cfg).Run()
	rep.Print(os.Stdout)
	return rep.ExitCode()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
