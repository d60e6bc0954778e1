// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the optional repository-level configuration file.
// When absent, DefaultConfig values apply.
const DefaultConfigFile = "traceguard.yaml"

// Config holds all checker settings. Consuming repos either construct a
// Config in Go code and pass it to New(), or place a traceguard.yaml at
// the repository root and call LoadConfig().
type Config struct {
	// RepoRoot is the directory all other paths resolve against
	// (default ".").
	RepoRoot string `yaml:"repo_root"`

	// MatrixPath is the traceability matrix document, relative to
	// RepoRoot (default "docs/traceability_matrix.json").
	MatrixPath string `yaml:"matrix_path"`

	// SuiteClassificationPath is the suite classification registry,
	// relative to RepoRoot (default "tests/suite_classification.toml").
	SuiteClassificationPath string `yaml:"suite_classification_path"`

	// TestsDir is the directory prefix that marks a matrix evidence path
	// as a test reference, and the directory enumerated for on-disk test
	// files (default "tests/"). A trailing slash is added if missing.
	TestsDir string `yaml:"tests_dir"`

	// TestSuffix is the file suffix stripped when deriving test stems
	// (default ".rs"). A leading dot is added if missing.
	TestSuffix string `yaml:"test_suffix"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.RepoRoot == "" {
		c.RepoRoot = "."
	}
	if c.MatrixPath == "" {
		c.MatrixPath = "docs/traceability_matrix.json"
	}
	if c.SuiteClassificationPath == "" {
		c.SuiteClassificationPath = "tests/suite_classification.toml"
	}
	if c.TestsDir == "" {
		c.TestsDir = "tests/"
	}
	if !strings.HasSuffix(c.TestsDir, "/") {
		c.TestsDir += "/"
	}
	if c.TestSuffix == "" {
		c.TestSuffix = ".rs"
	}
	if !strings.HasPrefix(c.TestSuffix, ".") {
		c.TestSuffix = "." + c.TestSuffix
	}
}

// LoadConfig reads a configuration YAML file and returns a Config with
// defaults applied to any unset field.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}
