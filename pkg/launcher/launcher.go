package launcher

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// ArtifactMissingError indicates the installed binary is not at its expected
// path.
type ArtifactMissingError struct {
	Path string
}

func (e *ArtifactMissingError) Error() string {
	return "installed binary not found at " + e.Path + `; run "lancedb-mcp install" to (re)install it`
}

// Run spawns the installed binary at path with the given arguments, passing
// the parent's stdin/stdout/stderr through unchanged, and blocks until it
// exits. It returns the child's exit code; a signal-terminated child yields
// the shell convention 128+signal. Arguments are forwarded verbatim and in
// order; nothing is interpreted here.
func Run(path string, args []string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return 0, &ArtifactMissingError{Path: path}
		}
		return 0, errors.Wrapf(err, "failed to stat %s", path)
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitStatus(exitErr.ProcessState), nil
	}
	return 0, errors.Wrapf(err, "failed to run %s", path)
}
