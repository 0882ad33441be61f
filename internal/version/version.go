// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version reports what witgen binary is running and which schema
// parsers it was linked against.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time with -ldflags "-X github.com/dacolabs/witgen/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Parsers are the modules that decide how input documents are read. Their
// versions are reported because they change which schemas load.
var Parsers = []string{
	"github.com/getkin/kin-openapi",
	"github.com/google/jsonschema-go",
}

// Build describes the running binary.
type Build struct {
	Version string
	Commit  string
	Date    string
	Go      string
	Modules []Module // parser modules found in the build info, in Parsers order
}

// Module is a linked dependency.
type Module struct {
	Path    string
	Version string
}

// Current returns the build of the running binary. Values set through
// ldflags win over the module build info.
func Current() Build {
	info, _ := debug.ReadBuildInfo()
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) Build {
	b := Build{Version: Version, Commit: Commit, Date: Date, Go: runtime.Version()}
	if info == nil {
		return b
	}

	// Set by "go install module@version".
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && b.Commit == "none" && len(s.Value) >= 7:
			b.Commit = s.Value[:7]
		case s.Key == "vcs.time" && b.Date == "unknown":
			b.Date = s.Value
		}
	}

	deps := make(map[string]string, len(info.Deps))
	for _, d := range info.Deps {
		if d.Replace != nil {
			d = d.Replace
		}
		deps[d.Path] = d.Version
	}
	for _, p := range Parsers {
		if v, ok := deps[p]; ok {
			b.Modules = append(b.Modules, Module{Path: p, Version: v})
		}
	}
	return b
}

// String returns the one-line summary printed by "witgen version".
func (b Build) String() string {
	return fmt.Sprintf("witgen version %s (commit: %s, built: %s, go: %s)",
		b.Version, b.Commit, b.Date, b.Go)
}

// Details returns the summary followed by one line per parser module.
func (b Build) Details() string {
	var sb strings.Builder
	sb.WriteString(b.String())
	for _, m := range b.Modules {
		fmt.Fprintf(&sb, "\n  %s %s", m.Path, m.Version)
	}
	return sb.String()
}

// Short returns just the version string.
func Short() string {
	return Current().Version
}
