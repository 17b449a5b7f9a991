//go:build windows

package launcher

import "os"

// exitStatus maps a terminated child's state to a process exit code. Windows
// has no signal termination; a negative code only appears for a process that
// never ran, which still must not report success.
func exitStatus(state *os.ProcessState) int {
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	return 1
}
