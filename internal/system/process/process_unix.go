// Released under an MIT license. See LICENSE.

//go:build unix

// Package process wraps the Unix process operations jsh performs.
package process

import (
	"golang.org/x/sys/unix"
)

// Wait blocks until the process pid terminates and returns its wait
// status. The wait is retried when interrupted by a signal.
func Wait(pid int) (unix.WaitStatus, error) {
	var status unix.WaitStatus

	for {
		_, err := unix.Wait4(pid, &status, 0, nil)
		if err != unix.EINTR {
			return status, err
		}
	}
}

// ExitStatus converts a wait status into a shell exit status: the exit
// status of a normal exit, or 128 plus the signal number for a process
// killed by a signal.
func ExitStatus(status unix.WaitStatus) int {
	code := int(status)

	if status.Exited() {
		code = status.ExitStatus()
	} else if status.Signaled() {
		code = 128 + int(status.Signal())
	}

	return code
}
