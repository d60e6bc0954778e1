// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// --- loadSuiteClassification ---

func TestLoadSuiteClassification(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite_classification.toml")
	content := `[suite.unit]
files = ["alpha", "beta"]

[suite.e2e]
files = ["flow/deploy"]

[suite.manual]
files = []
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	suites, err := loadSuiteClassification(path)
	if err != nil {
		t.Fatalf("loadSuiteClassification: %v", err)
	}
	if len(suites) != 3 {
		t.Fatalf("got %d suites, want 3", len(suites))
	}

	var names []string
	for name := range suites {
		names = append(names, name)
	}
	sort.Strings(names)
	want := []string{"e2e", "manual", "unit"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("suite names = %v, want %v", names, want)
		}
	}

	if len(suites["unit"]) != 2 || suites["unit"][0] != "alpha" || suites["unit"][1] != "beta" {
		t.Errorf("unit files = %v", suites["unit"])
	}
	if len(suites["e2e"]) != 1 || suites["e2e"][0] != "flow/deploy" {
		t.Errorf("e2e files = %v", suites["e2e"])
	}
	if len(suites["manual"]) != 0 {
		t.Errorf("manual files = %v, want empty", suites["manual"])
	}
}

func TestLoadSuiteClassification_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite_classification.toml")
	if err := os.WriteFile(path, []byte("[suite.unit\nfiles = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadSuiteClassification(path); err == nil {
		t.Fatal("expected an error for malformed TOML")
	}
}

func TestLoadSuiteClassification_MissingFile(t *testing.T) {
	if _, err := loadSuiteClassification(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected an error for a missing registry")
	}
}
