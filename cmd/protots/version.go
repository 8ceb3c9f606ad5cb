package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

// The release number for source and development builds. Tagged module
// builds carry their own version through the build info instead.
//
//go:embed VERSION
var embeddedVersion string

// Version reports what `protots --version` prints. A module-installed
// binary reports its tagged module version; anything built from a
// checkout reports "devel-<release>", suffixed with the short VCS
// revision when the build info carries one.
func Version() string {
	release := strings.TrimSpace(embeddedVersion)

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return release
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	version := "devel-" + release
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			version += "+" + s.Value[:7]
			break
		}
	}
	return version
}
