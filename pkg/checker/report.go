// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"fmt"
	"io"
	"strings"
)

// Report is the accumulated outcome of one validation run. Errors fail
// the run; warnings are informational and never affect the exit status
// by themselves.
type Report struct {
	// Fatal, when non-empty, is a document-level failure (missing,
	// unreadable, or non-object matrix). No other field is meaningful.
	Fatal string

	Errors   []string
	Warnings []string

	RequirementCount int
	Categories       []string
	Stats            StaleStats
	MinCoveragePct   float64
}

// ExitCode returns the process exit status for this report: 0 when no
// errors were produced, 1 otherwise.
func (r *Report) ExitCode() int {
	if r.Fatal != "" || len(r.Errors) > 0 {
		return 1
	}
	return 0
}

// Print writes the report as line-oriented text: a failure banner with
// one line per error, or a pass banner with a summary, each optionally
// followed by a staleness-warnings section.
func (r *Report) Print(w io.Writer) {
	if r.Fatal != "" {
		fmt.Fprintf(w, "TRACEABILITY CHECK FAILED: %s\n", r.Fatal)
		return
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "TRACEABILITY CHECK FAILED")
		for _, e := range r.Errors {
			fmt.Fprintf(w, "- %s\n", e)
		}
		r.printWarnings(w)
		return
	}

	fmt.Fprintf(w, "TRACEABILITY CHECK PASSED: %s\n", r.summary())
	r.printWarnings(w)
}

// summary assembles the pass-banner text: requirement count, effective
// categories, and (when on-disk tests exist) staleness counts with the
// computed coverage against the configured minimum.
func (r *Report) summary() string {
	parts := []string{
		fmt.Sprintf("%d requirements validated", r.RequirementCount),
		"categories: " + strings.Join(r.Categories, ", "),
	}
	if r.Stats.OnDisk > 0 {
		parts = append(parts,
			fmt.Sprintf("staleness: %d on-disk, %d classified, %d traced",
				r.Stats.OnDisk, r.Stats.Classified, r.Stats.MatrixTraced),
			fmt.Sprintf("trace coverage: %.2f%% (min %.2f%%)",
				coveragePct(r.Stats), r.MinCoveragePct))
	}
	return strings.Join(parts, "; ")
}

func (r *Report) printWarnings(w io.Writer) {
	if len(r.Warnings) == 0 {
		return
	}
	fmt.Fprintf(w, "\nSTALENESS WARNINGS (%d):\n", len(r.Warnings))
	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "  - %s\n", warning)
	}
}
