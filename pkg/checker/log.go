// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"fmt"
	"os"
)

// debugEnabled gates diagnostic logging. Report output goes to stdout
// and is part of the CLI contract; logf writes to stderr only.
var debugEnabled = os.Getenv("TRACEGUARD_DEBUG") != ""

// logf writes a diagnostic message to stderr when TRACEGUARD_DEBUG is set.
func logf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	fmt.Fprintf(os.Stderr, "traceguard: "+format+"\n", args...)
}
