// Package version collects the build metadata reported by the version command.
package version

import (
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/dsbox/dsbox/constant"
	"github.com/samber/lo"
)

// Info describes the running binary.
type Info struct {
	App       string `json:"app"`
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	BuiltAt   string `json:"built_at"`
	BuiltBy   string `json:"built_by"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Current returns the metadata stamped at link time, falling back to the
// VCS settings recorded by the Go toolchain when the binary was not stamped.
func Current() Info {
	info := Info{
		App:       constant.App,
		Version:   constant.Version,
		Revision:  constant.Revision,
		BuiltAt:   strings.TrimSpace(constant.BuiltAt),
		BuiltBy:   constant.BuiltBy,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	build, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	settings := lo.SliceToMap(build.Settings, func(s debug.BuildSetting) (string, string) {
		return s.Key, s.Value
	})

	if revision, ok := settings["vcs.revision"]; ok && info.Revision == "unknown" {
		info.Revision = revision
	}

	if at, ok := settings["vcs.time"]; ok && info.BuiltAt == "unknown" {
		info.BuiltAt = at
	}

	return info
}
