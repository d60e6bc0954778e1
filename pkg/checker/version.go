// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

// Version is the traceguard release version.
const Version = "0.2.0"
