// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// suiteClassificationFile is the TOML shape of the suite classification
// registry: a [suite.<name>] table per suite, each with a files list of
// test stems.
type suiteClassificationFile struct {
	Suite map[string]suiteTable `toml:"suite"`
}

type suiteTable struct {
	Files []string `toml:"files"`
}

// loadSuiteClassification parses the registry into suite name -> stems.
func loadSuiteClassification(path string) (map[string][]string, error) {
	var doc suiteClassificationFile
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("parsing suite classification: %w", err)
	}
	result := make(map[string][]string, len(doc.Suite))
	for name, table := range doc.Suite {
		result[name] = table.Files
	}
	logf("loadSuiteClassification: %d suite(s) from %s", len(result), path)
	return result, nil
}
