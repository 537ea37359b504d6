//go:build !unix

package scanner

import "os/exec"

func detach(cmd *exec.Cmd) {}
