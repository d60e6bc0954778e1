// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package checker validates a repository's traceability matrix against
// two independent sources of truth: the suite classification registry
// and the test files actually present on disk. It is a read-and-report
// CI gate; it never writes or repairs anything.
package checker

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Checker runs the validation pipeline against one repository.
type Checker struct {
	cfg      Config
	resolver PathResolver
}

// New returns a Checker backed by the real filesystem.
func New(cfg Config) *Checker {
	cfg.applyDefaults()
	return &Checker{cfg: cfg, resolver: fsResolver{root: cfg.RepoRoot}}
}

// Run loads the matrix document and executes structural validation,
// stale-mapping reconciliation, and the coverage policy check in order,
// accumulating every finding into a single Report. Only the two fatal
// conditions short-circuit: an unreadable/non-object matrix document
// (nothing else runs) and a missing classification registry (fatal to
// reconciliation alone).
func (c *Checker) Run() Report {
	matrixPath := filepath.Join(c.cfg.RepoRoot, c.cfg.MatrixPath)
	logf("run: matrix=%s registry=%s tests=%s suffix=%s",
		matrixPath, c.cfg.SuiteClassificationPath, c.cfg.TestsDir, c.cfg.TestSuffix)

	data, err := os.ReadFile(matrixPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Report{Fatal: "missing " + matrixPath}
		}
		return Report{Fatal: "cannot read " + matrixPath + ": " + err.Error()}
	}

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return Report{Fatal: "invalid JSON in " + matrixPath + ": " + err.Error()}
	}
	matrix, ok := root.(map[string]any)
	if !ok {
		return Report{Fatal: "matrix root must be a JSON object"}
	}

	structural := c.validateStructure(matrix)

	rep := Report{
		Errors:           structural.errors,
		Categories:       structural.categories,
		RequirementCount: structural.requirementCount,
		MinCoveragePct:   structural.minCoveragePct,
	}

	stale := c.checkStaleMappings(c.matrixTracedStems(matrix))
	rep.Errors = append(rep.Errors, stale.errors...)
	rep.Warnings = append(rep.Warnings, stale.warnings...)
	rep.Stats = stale.stats

	if msg, failed := c.coverageShortfall(stale.stats, stale.untraceable, structural.minCoveragePct); failed {
		rep.Errors = append(rep.Errors, msg)
	}

	logf("run: %d error(s), %d warning(s)", len(rep.Errors), len(rep.Warnings))
	return rep
}
