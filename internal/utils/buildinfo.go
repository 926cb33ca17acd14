// Package utils provides logger construction, version retrieval and shared constants.
package utils

import (
	"runtime/debug"
)

const (
	unknownVersion     = "unknown"
	developmentVersion = "(devel)"
)

// Version is set at link time with -ldflags "-X github.com/temirov/lsdir/internal/utils.Version=v1.2.3".
var Version = EmptyString

// GetApplicationVersion returns the link-time version when present, then the module version recorded in build info.
func GetApplicationVersion() string {
	if Version != EmptyString {
		return Version
	}
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != EmptyString && buildInfo.Main.Version != developmentVersion {
		return buildInfo.Main.Version
	}
	return unknownVersion
}
