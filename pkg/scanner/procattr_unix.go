//go:build unix

package scanner

import (
	"os/exec"
	"syscall"
)

// detach puts the helper in its own process group. A Ctrl-C at the terminal
// then reaches only us, and a scan already running gets to finish.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
