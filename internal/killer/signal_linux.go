//go:build linux

package killer

import (
	"errors"

	"golang.org/x/sys/unix"
)

// UnixSender delivers real signals via kill(2).
type UnixSender struct{}

func (UnixSender) Send(pid int, level Level) error {
	sig := unix.SIGTERM
	if level == Kill {
		sig = unix.SIGKILL
	}
	err := unix.Kill(pid, sig)
	if errors.Is(err, unix.ESRCH) || errors.Is(err, unix.EPERM) {
		// Already gone, or not ours to kill. Both are expected.
		return nil
	}
	return err
}
