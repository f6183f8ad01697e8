package version

import (
	"fmt"
	"runtime/debug"
)

const (
	modulePath     = "github.com/anoideaopen/fna"
	unknownVersion = "unknown"
)

// BuildInfo returns the build information
func BuildInfo() (*debug.BuildInfo, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, fmt.Errorf("fetching build info failed")
	}

	if bi == nil {
		return nil, fmt.Errorf("build information is empty")
	}

	return bi, nil
}

// Module returns the version of the fna module linked into the binary,
// "(devel)" when it is the main module and "unknown" without build info.
func Module() string {
	bi, err := BuildInfo()
	if err != nil {
		return unknownVersion
	}

	return moduleVersion(bi)
}

func moduleVersion(bi *debug.BuildInfo) string {
	if bi.Main.Path == modulePath && bi.Main.Version != "" {
		return bi.Main.Version
	}

	for _, dep := range bi.Deps {
		if dep.Path != modulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}

	return unknownVersion
}
