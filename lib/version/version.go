// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
)

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version, set manually for releases.
	Version = "0.1.0-dev"
)

// LibraryName identifies this library in the client identifier.
const LibraryName = "retdec-go"

// Info returns a formatted version string suitable for --version output.
func Info() string {
	return fmt.Sprintf("%s (%s, %s)", Version, GitCommit, BuildTime)
}

// UserAgent returns the client identifier attached to API requests.
func UserAgent() string {
	return fmt.Sprintf("%s/%s (%s)", LibraryName, Version, Platform())
}

// Platform returns a human-readable name of the host operating system,
// or "Unknown" when it is not one of the recognized systems.
func Platform() string {
	return platformName(runtime.GOOS)
}

func platformName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	case "ios":
		return "iOS"
	case "android":
		return "Android"
	case "freebsd":
		return "FreeBSD"
	case "netbsd":
		return "NetBSD"
	case "openbsd":
		return "OpenBSD"
	default:
		return "Unknown"
	}
}
