// Package spawn launches external programs detached from the window
// manager process.
package spawn

import (
	"errors"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
)

// IgnoreChildren disposes of exited children without wait, so launched
// programs never linger as zombies.
func IgnoreChildren() {
	signal.Ignore(syscall.SIGCHLD)
}

// Command runs a shell command line in its own session and returns the
// child's pid without waiting for it.
func Command(command string) (int, error) {
	if strings.TrimSpace(command) == "" {
		return 0, errors.New("empty command")
	}

	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	// The child is not waited on; SIGCHLD is ignored process-wide.
	_ = cmd.Process.Release()
	return pid, nil
}
