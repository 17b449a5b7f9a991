package platform

import (
	"fmt"
	"runtime"
)

// Platform identifies a host by the tags used in published release asset
// names. Tags follow the release naming convention (win32/x64), not the Go
// runtime convention (windows/amd64).
type Platform struct {
	OS   string
	Arch string
}

// String returns the canonical "<os>-<arch>" tag pair, e.g. "darwin-x64".
func (p Platform) String() string {
	return p.OS + "-" + p.Arch
}

// ExeExt returns the executable file extension for the platform: ".exe" on
// Windows, empty elsewhere.
func (p Platform) ExeExt() string {
	if p.OS == "win32" {
		return ".exe"
	}
	return ""
}

// UnsupportedError indicates the host OS/arch pair has no published asset.
type UnsupportedError struct {
	OS   string
	Arch string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported platform: %s-%s (no prebuilt binary is published for this OS/architecture)", e.OS, e.Arch)
}

// supportedArchs lists the architectures with published assets per OS tag.
var supportedArchs = map[string][]string{
	"darwin": {"x64", "arm64"},
	"linux":  {"x64", "arm64"},
	"win32":  {"x64"},
}

// Host returns the current host's platform tags without validating them
// against the supported set. Use Detect when installing; Host is for callers
// that only need the naming convention, such as locating an already
// installed binary.
func Host() Platform {
	return Platform{OS: osTagFor(runtime.GOOS), Arch: archTagFor(runtime.GOARCH)}
}

// Detect resolves the current host to a supported Platform. It performs no
// I/O; the result is derived entirely from the runtime.
func Detect() (Platform, error) {
	return Resolve(runtime.GOOS, runtime.GOARCH)
}

// Resolve maps Go OS/arch identifiers to release tags and validates the pair
// against the supported set.
func Resolve(goos, goarch string) (Platform, error) {
	osTag := osTagFor(goos)
	archTag := archTagFor(goarch)

	// linux/arm64 is allowed explicitly. The generic table below covers it
	// too; the branch is kept deliberately to match the published support
	// matrix, and removing it would not change behavior.
	if osTag == "linux" && archTag == "arm64" {
		return Platform{OS: osTag, Arch: archTag}, nil
	}

	for _, arch := range supportedArchs[osTag] {
		if arch == archTag {
			return Platform{OS: osTag, Arch: archTag}, nil
		}
	}
	return Platform{}, &UnsupportedError{OS: osTag, Arch: archTag}
}

// osTagFor maps a Go OS identifier to the release naming convention.
func osTagFor(goos string) string {
	switch goos {
	case "windows":
		return "win32"
	default:
		return goos
	}
}

// archTagFor maps a Go architecture identifier to the release naming
// convention.
func archTagFor(goarch string) string {
	switch goarch {
	case "amd64":
		return "x64"
	case "386":
		return "ia32"
	default:
		return goarch
	}
}
