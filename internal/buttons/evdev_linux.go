//go:build linux

package buttons

import (
	"context"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type evdevDevice struct {
	path string
	fd   int
	pad  padState
}

// Evdev reads gamepads and keyboards from /dev/input/event* without blocking.
// Pending events are drained on every Poll, so no reader goroutine is needed.
// Devices plugged in later are picked up by a rescan at most every Rescan.
type Evdev struct {
	Glob   string
	Rescan time.Duration
	Logger logger

	devices  []*evdevDevice
	failed   map[string]bool
	lastScan time.Time
	buf      []byte
	tvSize   int
}

func NewEvdev(glob string) *Evdev {
	if glob == "" {
		glob = "/dev/input/event*"
	}
	return &Evdev{Glob: glob, Rescan: time.Second}
}

func (e *Evdev) Start(ctx context.Context) error {
	// input_event = timeval + u16 type + u16 code + s32 value
	e.tvSize = binary.Size(unix.Timeval{})
	if e.tvSize <= 0 {
		e.tvSize = 16
	}
	e.buf = make([]byte, 64*(e.tvSize+8))
	e.failed = make(map[string]bool)

	if _, err := filepath.Glob(e.Glob); err != nil {
		return fmt.Errorf("input glob %q: %w", e.Glob, err)
	}
	e.scan()
	if len(e.devices) == 0 {
		e.infof("no input devices match %s yet", e.Glob)
	}
	return nil
}

// scan opens every device matching Glob that is not open already.
// A path that fails to open is logged once and retried silently.
func (e *Evdev) scan() {
	e.lastScan = time.Now()
	if e.failed == nil {
		e.failed = make(map[string]bool)
	}
	paths, _ := filepath.Glob(e.Glob)
	for _, p := range paths {
		if e.isOpen(p) {
			continue
		}
		fd, err := unix.Open(p, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
		if err != nil {
			if !e.failed[p] {
				e.errorf("open %s: %v", p, err)
				e.failed[p] = true
			}
			continue
		}
		delete(e.failed, p)
		e.devices = append(e.devices, &evdevDevice{path: p, fd: fd})
		e.infof("input device %s open", p)
	}
}

func (e *Evdev) isOpen(path string) bool {
	for _, d := range e.devices {
		if d.path == path {
			return true
		}
	}
	return false
}

func (e *Evdev) Stop() error {
	for _, d := range e.devices {
		_ = unix.Close(d.fd)
	}
	e.devices = nil
	return nil
}

// Poll drains every device and returns the buttons held right now.
// It reports false while no device is open. A device that fails to read is
// closed and its held buttons are forgotten.
func (e *Evdev) Poll() (State, bool) {
	if time.Since(e.lastScan) >= e.Rescan {
		e.scan()
	}

	var st State
	kept := e.devices[:0]
	for _, d := range e.devices {
		if e.drain(d) {
			kept = append(kept, d)
			st |= d.pad.state()
			continue
		}
		_ = unix.Close(d.fd)
		e.infof("input device %s gone", d.path)
	}
	for i := len(kept); i < len(e.devices); i++ {
		e.devices[i] = nil
	}
	e.devices = kept
	if len(e.devices) == 0 {
		return 0, false
	}
	return st, true
}

// drain reads until the device would block and reports whether it is still usable.
func (e *Evdev) drain(d *evdevDevice) bool {
	for {
		n, err := unix.Read(d.fd, e.buf)
		switch {
		case err == unix.EAGAIN:
			return true
		case err == unix.EINTR:
			continue
		case err != nil:
			e.errorf("read %s: %v", d.path, err)
			return false
		case n <= 0:
			return true
		}
		decodeEvents(e.buf[:n], e.tvSize, d.pad.apply)
	}
}

func (e *Evdev) infof(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Infof("input", format, args...)
	}
}

func (e *Evdev) errorf(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Errorf("input", format, args...)
	}
}
