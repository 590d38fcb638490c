//go:build !unix

package system

import (
	"fmt"
	"os"
)

// RedirectStdIO swaps os.Stdout and os.Stderr for the file. Runtime panics
// still reach the process stderr. The returned func swaps them back.
func RedirectStdIO(path string) (func() error, error) {
	if path == "" {
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open stdio log: %w", err)
	}
	stdout, stderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = f, f
	return func() error {
		os.Stdout, os.Stderr = stdout, stderr
		return f.Close()
	}, nil
}
