//go:build !unix

package converter

import "os/exec"

// killProcessGroupOnCancel keeps exec's default behavior of killing the
// direct child only.
func killProcessGroupOnCancel(cmd *exec.Cmd) {}
