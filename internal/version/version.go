// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version carries the build identity stamped into the binary.
package version

import "fmt"

// Info holds the values main injects via -ldflags at build time. A
// binary built without them reports the zero value.
type Info struct {
	Version   string // git tag, e.g. "v1.2.3"
	GitCommit string // short commit hash
	BuildTime string // RFC3339 build timestamp
}

// String formats the build identity for the -version flag.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", i.Version, i.GitCommit, i.BuildTime)
}
