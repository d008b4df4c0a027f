// Package keepawake keeps the machine from auto-sleeping while an upload run
// is in flight. The hold is best effort: a platform without a known inhibitor
// simply gets no hold, never an error.
package keepawake

import (
	"os/exec"
	"runtime"
)

// Hold represents an active sleep-prevention lease. Release must be called on
// every exit path; releasing an inactive or already-released hold is a no-op.
type Hold struct {
	cmd *exec.Cmd
}

// Acquire starts a platform sleep inhibitor and returns the hold.
func Acquire() *Hold {
	var args []string
	switch runtime.GOOS {
	case "darwin":
		args = []string{"caffeinate", "-dims"}
	case "linux":
		args = []string{
			"systemd-inhibit",
			"--what=sleep:idle",
			"--who=enpass2onepassword",
			"--why=Migrating Enpass entries to 1Password",
			"sleep", "infinity",
		}
	default:
		return &Hold{}
	}

	if _, err := exec.LookPath(args[0]); err != nil {
		return &Hold{}
	}

	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return &Hold{}
	}

	return &Hold{cmd: cmd}
}

// Active reports whether a sleep inhibitor is actually running.
func (h *Hold) Active() bool {
	return h.cmd != nil
}

// Release ends the hold by stopping the inhibitor process.
func (h *Hold) Release() {
	if h.cmd == nil || h.cmd.Process == nil {
		return
	}

	_ = h.cmd.Process.Kill()
	_ = h.cmd.Wait()
	h.cmd = nil
}
