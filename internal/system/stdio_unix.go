//go:build unix

package system

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// RedirectStdIO points fds 1 and 2 at path, appending, so panics and output
// from every goroutine land in the file while the console shows graphics.
// The returned func puts the original descriptors back.
func RedirectStdIO(path string) (func() error, error) {
	if path == "" {
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open stdio log: %w", err)
	}
	defer f.Close()

	targets := []int{int(os.Stdout.Fd()), int(os.Stderr.Fd())}
	var saved []int
	restore := func() error {
		var errs []error
		for i, fd := range saved {
			errs = append(errs, unix.Dup2(fd, targets[i]), unix.Close(fd))
		}
		saved = nil
		return errors.Join(errs...)
	}

	for _, fd := range targets {
		dup, err := unix.Dup(fd)
		if err != nil {
			_ = restore()
			return nil, fmt.Errorf("save fd %d: %w", fd, err)
		}
		saved = append(saved, dup)
		if err := unix.Dup2(int(f.Fd()), fd); err != nil {
			_ = restore()
			return nil, fmt.Errorf("redirect fd %d: %w", fd, err)
		}
	}
	return restore, nil
}
