//go:build unix

package converter

import (
	"os/exec"
	"syscall"
)

// killProcessGroupOnCancel starts the converter in its own process group so
// that cancellation also reaches any processes it spawned, and so a terminal
// interrupt aimed at us does not reach the converter mid-file.
func killProcessGroupOnCancel(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
