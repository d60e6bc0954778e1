// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"fmt"
	"os"
	"path/filepath"
)

// StaleStats holds the counts produced by stale-mapping reconciliation.
type StaleStats struct {
	OnDisk       int
	Classified   int
	MatrixTraced int
	Unclassified int
	Phantom      int
	Untraceable  int
}

// staleResult carries the Reconciler's findings. Untraceable stems are
// kept separately (sorted) because the Coverage Policy Engine samples
// them when the aggregate threshold fails.
type staleResult struct {
	stats       StaleStats
	errors      []string
	warnings    []string
	untraceable []string
}

// checkStaleMappings cross-references the traceability matrix, the suite
// classification registry, and the on-disk test directory. A missing or
// unparsable registry is fatal to reconciliation alone: it yields one
// error and zero-filled stats so structural findings still print.
func (c *Checker) checkStaleMappings(matrixTraced stemSet) staleResult {
	var res staleResult

	suitesPath := filepath.Join(c.cfg.RepoRoot, c.cfg.SuiteClassificationPath)
	if _, err := os.Stat(suitesPath); err != nil {
		res.errors = append(res.errors, "suite classification missing: "+suitesPath)
		return res
	}

	suites, err := loadSuiteClassification(suitesPath)
	if err != nil {
		res.errors = append(res.errors, fmt.Sprintf("invalid suite classification in %s: %v", suitesPath, err))
		return res
	}

	classified := classifiedStems(suites)
	onDisk := c.onDiskStems()

	res.stats.OnDisk = len(onDisk)
	res.stats.Classified = len(classified)
	res.stats.MatrixTraced = len(matrixTraced)
	logf("checkStaleMappings: on_disk=%d classified=%d matrix_traced=%d",
		res.stats.OnDisk, res.stats.Classified, res.stats.MatrixTraced)

	registryName := filepath.Base(c.cfg.SuiteClassificationPath)

	// 1. Unclassified: on disk but not in the registry.
	unclassified := onDisk.minus(classified)
	res.stats.Unclassified = len(unclassified)
	for _, stem := range unclassified {
		res.errors = append(res.errors,
			fmt.Sprintf("%s is on disk but missing from %s", c.testPath(stem), registryName))
	}

	// 2. Phantom: in the registry but not on disk.
	phantom := classified.minus(onDisk)
	res.stats.Phantom = len(phantom)
	for _, stem := range phantom {
		res.errors = append(res.errors,
			fmt.Sprintf("%s lists '%s' but %s does not exist", registryName, stem, c.testPath(stem)))
	}

	// 3. Matrix references test files not in the registry.
	for _, stem := range matrixTraced.minus(classified) {
		res.errors = append(res.errors,
			fmt.Sprintf("traceability matrix references %s but it is not in %s", c.testPath(stem), registryName))
	}

	// 4. Classified test files not traced to any requirement. Warning,
	// not error: these only fail the run in aggregate, through the
	// coverage threshold.
	res.untraceable = classified.minus(matrixTraced)
	res.stats.Untraceable = len(res.untraceable)
	for _, stem := range res.untraceable {
		res.warnings = append(res.warnings,
			c.testPath(stem)+" is classified but not traced to any requirement")
	}

	return res
}
