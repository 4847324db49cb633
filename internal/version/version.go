// package version reports the version of the hext-go module a tool was
// built from.
package version

import (
	"fmt"
	"runtime/debug"
)

var readBuildInfo = debug.ReadBuildInfo

func ModuleVersion() string {
	info, ok := readBuildInfo()
	if !ok {
		return "unknown"
	}
	return describe(info)
}

// describe prefers the module version, as set by go install ...@vX.Y.Z,
// and falls back to the vcs settings recorded for builds in a checkout.
func describe(info *debug.BuildInfo) string {
	if info.Main.Version != "(devel)" && info.Main.Version != "" {
		return info.Main.Version
	}

	settings := make(map[string]string)
	for _, setting := range info.Settings {
		settings[setting.Key] = setting.Value
	}
	revision, ok := settings["vcs.revision"]
	if !ok {
		return "(devel)"
	}
	v := "git " + revision
	if t, ok := settings["vcs.time"]; ok {
		v += " " + t
	}
	// Untracked files count as modifications too.
	if settings["vcs.modified"] != "false" {
		v += " (with local changes)"
	}
	return v
}

func DisplayVersion(tool string) {
	fmt.Printf("%s (hext-go module) %s\n", tool, ModuleVersion())
}
