// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"fmt"
	"strings"
)

// matrixTopLevelKeys are the six keys every matrix document must carry.
var matrixTopLevelKeys = []string{
	"schema_version",
	"program_issue_id",
	"program_title",
	"updated_at",
	"ci_policy",
	"requirements",
}

// minRequiredCategories is the floor for ci_policy.required_categories.
// Configuring a smaller set is an error, not silently accepted.
var minRequiredCategories = []string{"unit_tests", "e2e_scripts", "evidence_logs"}

// structuralResult carries the Structural Validator's findings plus the
// validated policy values later stages run with. Malformed policy fields
// fall back to safe values so reconciliation and coverage checks still
// execute and surface their own findings.
type structuralResult struct {
	errors           []string
	categories       []string
	minCoveragePct   float64
	requirementCount int
}

// validateStructure checks the matrix document's shape: top-level keys,
// the ci_policy block, and every requirement's fields and evidence
// entries. It never fails on malformed input; malformed input is the
// error.
func (c *Checker) validateStructure(matrix map[string]any) structuralResult {
	var res structuralResult

	for _, key := range matrixTopLevelKeys {
		if _, ok := matrix[key]; !ok {
			res.errors = append(res.errors, "missing top-level key: "+key)
		}
	}

	policy, ok := matrix["ci_policy"].(map[string]any)
	if !ok {
		if _, present := matrix["ci_policy"]; present {
			res.errors = append(res.errors, "ci_policy must be an object")
		}
		policy = map[string]any{}
	}

	res.categories = c.validateRequiredCategories(policy, &res.errors)

	requirements, ok := matrix["requirements"].([]any)
	if !ok || len(requirements) == 0 {
		res.errors = append(res.errors, "requirements must be a non-empty array")
		requirements = nil
	}
	res.requirementCount = len(requirements)

	seen := map[string]bool{}
	for _, raw := range requirements {
		id := c.validateRequirement(raw, res.categories, &res.errors)
		if id == "" {
			continue
		}
		if seen[id] {
			res.errors = append(res.errors, "duplicate requirement id: "+id)
		}
		seen[id] = true
	}

	res.minCoveragePct = validateCoverageThreshold(policy, &res.errors)

	logf("validateStructure: %d requirement(s), %d error(s)", res.requirementCount, len(res.errors))
	return res
}

// validateRequiredCategories returns the effective required-category
// list. An absent or invalid field falls back to the fixed minimum set;
// every minimum category must appear regardless of configuration.
func (c *Checker) validateRequiredCategories(policy map[string]any, errors *[]string) []string {
	var categories []string

	raw, ok := policy["required_categories"].([]any)
	if !ok || len(raw) == 0 {
		*errors = append(*errors, "ci_policy.required_categories must be a non-empty array")
		categories = append(categories, minRequiredCategories...)
	} else {
		for _, entry := range raw {
			s, ok := entry.(string)
			if !ok || strings.TrimSpace(s) == "" {
				*errors = append(*errors, "ci_policy.required_categories entries must be non-empty strings")
				continue
			}
			categories = append(categories, s)
		}
	}

	for _, minimum := range minRequiredCategories {
		found := false
		for _, category := range categories {
			if category == minimum {
				found = true
				break
			}
		}
		if !found {
			*errors = append(*errors,
				fmt.Sprintf("ci_policy.required_categories must include '%s'", minimum))
		}
	}
	return categories
}

// validateRequirement checks one requirements[] element and returns its
// id, or "" when the element is too malformed to identify.
func (c *Checker) validateRequirement(raw any, categories []string, errors *[]string) string {
	req, ok := raw.(map[string]any)
	if !ok {
		*errors = append(*errors, "requirements[] entries must be objects")
		return ""
	}

	id, ok := req["id"].(string)
	if !ok || strings.TrimSpace(id) == "" {
		*errors = append(*errors, "requirements[].id must be a non-empty string")
		return ""
	}

	if title, ok := req["title"].(string); !ok || strings.TrimSpace(title) == "" {
		*errors = append(*errors, id+".title must be a non-empty string")
	}
	if ac, ok := req["acceptance_criteria"].(string); !ok || strings.TrimSpace(ac) == "" {
		*errors = append(*errors, id+".acceptance_criteria must be a non-empty string")
	}

	for _, category := range categories {
		items, ok := req[category].([]any)
		if !ok || len(items) == 0 {
			*errors = append(*errors,
				fmt.Sprintf("%s.%s must be a non-empty array (CI policy requirement)", id, category))
			continue
		}
		for index, entry := range items {
			c.validateEntry(id, category, index, entry, errors)
		}
	}
	return id
}

// validateEntry checks a single evidence entry. Unless the entry is
// marked generated_by_ci, its path must resolve on the filesystem
// (literal existence or non-empty glob expansion).
func (c *Checker) validateEntry(id, category string, index int, raw any, errors *[]string) {
	location := fmt.Sprintf("%s.%s[%d]", id, category, index)

	entry, ok := raw.(map[string]any)
	if !ok {
		*errors = append(*errors, location+" must be an object")
		return
	}

	path, ok := entry["path"].(string)
	if !ok || strings.TrimSpace(path) == "" {
		*errors = append(*errors, location+".path must be a non-empty string")
		return
	}

	generatedByCI, _ := entry["generated_by_ci"].(bool)
	if !generatedByCI && !c.resolver.Exists(path) {
		*errors = append(*errors, fmt.Sprintf(
			"%s.path points to missing file/glob: '%s' (set generated_by_ci=true for CI-produced artifacts)",
			location, path))
	}
}

// validateCoverageThreshold returns the configured coverage threshold in
// [0,100], or 0.0 (with an error recorded) when the field is absent,
// non-numeric, or out of range.
func validateCoverageThreshold(policy map[string]any, errors *[]string) float64 {
	raw, present := policy["min_classified_trace_coverage_pct"]
	if !present {
		*errors = append(*errors, "ci_policy.min_classified_trace_coverage_pct must be set")
		return 0.0
	}
	pct, ok := raw.(float64)
	if !ok {
		*errors = append(*errors, "ci_policy.min_classified_trace_coverage_pct must be numeric")
		return 0.0
	}
	if pct < 0.0 || pct > 100.0 {
		*errors = append(*errors, "ci_policy.min_classified_trace_coverage_pct must be within [0,100]")
		return 0.0
	}
	return pct
}
