// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// stemSet is a set of test stems (test file names without the tests
// directory prefix or the test-file suffix).
type stemSet map[string]bool

// minus returns the elements of s not present in other, sorted
// lexicographically for deterministic reporting.
func (s stemSet) minus(other stemSet) []string {
	var out []string
	for stem := range s {
		if !other[stem] {
			out = append(out, stem)
		}
	}
	sort.Strings(out)
	return out
}

// traceCategories are the matrix evidence categories whose paths count as
// test references for staleness reconciliation. Evidence logs are path
// artifacts, not test files, and are excluded.
var traceCategories = []string{"unit_tests", "e2e_scripts"}

// classifiedStems returns the union of all per-suite stem lists.
func classifiedStems(suites map[string][]string) stemSet {
	set := stemSet{}
	for _, stems := range suites {
		for _, stem := range stems {
			set[stem] = true
		}
	}
	return set
}

// matrixTracedStems collects test stems cited by matrix evidence entries.
// Only paths matching the tests-directory prefix and test-file suffix
// convention contribute; other paths are excluded here (their existence
// is still checked by the Structural Validator).
func (c *Checker) matrixTracedStems(matrix map[string]any) stemSet {
	set := stemSet{}
	requirements, _ := matrix["requirements"].([]any)
	for _, raw := range requirements {
		req, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		for _, category := range traceCategories {
			entries, _ := req[category].([]any)
			for _, rawEntry := range entries {
				entry, ok := rawEntry.(map[string]any)
				if !ok {
					continue
				}
				path, _ := entry["path"].(string)
				if strings.HasPrefix(path, c.cfg.TestsDir) && strings.HasSuffix(path, c.cfg.TestSuffix) {
					stem := strings.TrimSuffix(strings.TrimPrefix(path, c.cfg.TestsDir), c.cfg.TestSuffix)
					set[stem] = true
				}
			}
		}
	}
	return set
}

// onDiskStems enumerates test files directly inside the tests directory
// (non-recursive), filtered by the test-file suffix. A missing directory
// yields an empty set.
func (c *Checker) onDiskStems() stemSet {
	set := stemSet{}
	entries, err := os.ReadDir(filepath.Join(c.cfg.RepoRoot, c.cfg.TestsDir))
	if err != nil {
		logf("onDiskStems: %v", err)
		return set
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), c.cfg.TestSuffix) {
			continue
		}
		set[strings.TrimSuffix(e.Name(), c.cfg.TestSuffix)] = true
	}
	return set
}

// testPath renders a stem back into its repository-relative test path.
func (c *Checker) testPath(stem string) string {
	return c.cfg.TestsDir + stem + c.cfg.TestSuffix
}
