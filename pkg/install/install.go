package install

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

// BinDirEnv overrides the installation directory when set.
const BinDirEnv = "LANCEDB_MCP_BIN"

// FinalizeError indicates the downloaded file could not be promoted to the
// installed path. The final path is never left partially populated: either
// the previous artifact is still in place, or the new one is complete.
type FinalizeError struct {
	Op  string
	Err error
}

func (e *FinalizeError) Error() string {
	return "failed to finalize install (" + e.Op + "): " + e.Err.Error()
}

func (e *FinalizeError) Unwrap() error {
	return e.Err
}

// Finalize promotes a fully written temporary file to the final path with an
// atomic rename, then sets the executable bits. The rename comes first so a
// reader of the final path never sees an incomplete file; the permission set
// therefore cannot race with an in-progress write. On rename failure the
// temporary file is removed.
func Finalize(tmpPath, finalPath string) error {
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return &FinalizeError{Op: "rename", Err: err}
	}
	if runtime.GOOS != "windows" {
		if err := os.Chmod(finalPath, 0o755); err != nil {
			return &FinalizeError{Op: "chmod", Err: err}
		}
	}
	return nil
}

// ResolveBinDir resolves the installation directory: an explicit value wins,
// then the LANCEDB_MCP_BIN environment variable, then the directory holding
// this front end's own executable (the layout the package manager installs).
func ResolveBinDir(binDir string) (string, error) {
	if binDir == "" {
		binDir = os.Getenv(BinDirEnv)
	}
	if binDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", errors.Wrap(err, "could not determine install directory")
		}
		binDir = filepath.Dir(exe)
	}

	absPath, err := filepath.Abs(binDir)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve install directory")
	}
	return absPath, nil
}
