//go:build unix

package launcher

import (
	"os"
	"syscall"
)

// exitStatus maps a terminated child's state to a process exit code. A child
// killed by a signal has no exit code of its own; the shell convention
// 128+signal keeps the result non-zero and identifies the signal.
func exitStatus(state *os.ProcessState) int {
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
