// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"fmt"
	"strings"
)

// sampleLimit bounds the number of untraceable stems cited in a coverage
// shortfall error.
const sampleLimit = 10

// coveragePct computes the classified-trace coverage percentage. With
// zero classified stems coverage is reported as 0 and never evaluated
// against the threshold.
func coveragePct(stats StaleStats) float64 {
	if stats.Classified == 0 {
		return 0.0
	}
	return float64(stats.MatrixTraced) / float64(stats.Classified) * 100.0
}

// coverageShortfall compares the computed coverage percentage against the
// policy threshold. It returns at most one error string; coverage exactly
// at the threshold passes, and zero classified stems produce no error
// regardless of the threshold.
func (c *Checker) coverageShortfall(stats StaleStats, untraceable []string, minPct float64) (string, bool) {
	if stats.Classified == 0 {
		return "", false
	}
	pct := coveragePct(stats)
	if pct >= minPct {
		return "", false
	}

	sample := untraceable
	if len(sample) > sampleLimit {
		sample = sample[:sampleLimit]
	}
	paths := make([]string, len(sample))
	for i, stem := range sample {
		paths[i] = c.testPath(stem)
	}
	joined := strings.Join(paths, ", ")
	if joined == "" {
		joined = "(none)"
	}

	return fmt.Sprintf(
		"classified traceability coverage below policy threshold: %.2f%% < %.2f%% (classified=%d, traced=%d). Sample missing mappings: %s",
		pct, minPct, stats.Classified, stats.MatrixTraced, joined), true
}
