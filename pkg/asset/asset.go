package asset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/buildkite/interpolate"
	"github.com/lancedb-mcp/launcher/pkg/platform"
	"github.com/pkg/errors"
)

// assetTemplate is the naming convention assets are published under.
const assetTemplate = "${NAME}-${OS}-${ARCH}${EXT}"

// TempSuffix distinguishes the in-progress download from the installed
// binary. The temporary file lives in the same directory as the final path
// so the finishing rename never crosses a filesystem boundary.
const TempSuffix = ".tmp"

// Locator builds the asset filename, download URL, and local paths for one
// install attempt. Pure construction: no network or filesystem access.
type Locator struct {
	BaseName    string
	Repo        string
	ReleaseHost string
	// Version is the release version without the leading "v".
	Version  string
	Platform platform.Platform
}

// Ext returns the platform file extension: ".exe" on Windows, empty
// elsewhere.
func (l *Locator) Ext() string {
	return l.Platform.ExeExt()
}

// AssetFilename returns the published asset's filename for the locator's
// platform, e.g. "lancedb-mcp-server-darwin-x64".
func (l *Locator) AssetFilename() (string, error) {
	env := interpolate.NewMapEnv(map[string]string{
		"NAME":    l.BaseName,
		"OS":      l.Platform.OS,
		"ARCH":    l.Platform.Arch,
		"EXT":     l.Ext(),
		"VERSION": l.Version,
		"TAG":     l.Tag(),
	})
	filename, err := interpolate.Interpolate(env, assetTemplate)
	if err != nil {
		return "", errors.Wrap(err, "failed to interpolate asset template")
	}
	return filename, nil
}

// Tag returns the release tag for the locator's version, with the "v"
// prefix the release workflow applies.
func (l *Locator) Tag() string {
	if strings.HasPrefix(l.Version, "v") {
		return l.Version
	}
	return "v" + l.Version
}

// DownloadURL returns the asset's release download URL.
func (l *Locator) DownloadURL() (string, error) {
	filename, err := l.AssetFilename()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/releases/download/%s/%s", l.ReleaseHost, l.Repo, l.Tag(), filename), nil
}

// InstalledName returns the filename the binary is installed under.
func (l *Locator) InstalledName() string {
	return l.BaseName + l.Ext()
}

// FinalPath returns the path the installed binary lives at inside binDir.
func (l *Locator) FinalPath(binDir string) string {
	return filepath.Join(binDir, l.InstalledName())
}

// TempPath returns the same-directory temporary path the download is
// streamed to before being promoted to FinalPath.
func (l *Locator) TempPath(binDir string) string {
	return l.FinalPath(binDir) + TempSuffix
}
