// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PathResolver reports whether an evidence path resolves to at least one
// filesystem object. The production implementation queries the real
// filesystem; tests substitute a fake so the Structural Validator can run
// against synthetic documents.
type PathResolver interface {
	Exists(path string) bool
}

// fsResolver resolves paths relative to a repository root. Literal paths
// are checked with os.Stat; glob patterns are expanded (with ** support)
// and resolve when they match at least one entry.
type fsResolver struct {
	root string
}

func (r fsResolver) Exists(path string) bool {
	if isGlobPattern(path) {
		matches, err := doublestar.FilepathGlob(filepath.Join(r.root, path))
		return err == nil && len(matches) > 0
	}
	_, err := os.Stat(filepath.Join(r.root, path))
	return err == nil
}

// isGlobPattern reports whether path contains glob metacharacters.
func isGlobPattern(path string) bool {
	return strings.ContainsAny(path, "*?[")
}
