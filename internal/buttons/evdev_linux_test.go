//go:build linux

package buttons

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// writeDevice creates a fake event node holding the given records, encoded
// with the timeval size the reader uses.
func writeDevice(t *testing.T, e *Evdev, path string, events ...event) {
	t.Helper()
	var buf []byte
	for _, ev := range events {
		rec := make([]byte, e.tvSize+8)
		binary.LittleEndian.PutUint16(rec[e.tvSize:], ev.typ)
		binary.LittleEndian.PutUint16(rec[e.tvSize+2:], ev.code)
		binary.LittleEndian.PutUint32(rec[e.tvSize+4:], uint32(ev.value))
		buf = append(buf, rec...)
	}
	require.NoError(t, os.WriteFile(path, buf, 0o644))
}

func TestEvdev_DevicePluggedAfterStart(t *testing.T) {
	// Given: nothing plugged in at start
	dir := t.TempDir()
	e := NewEvdev(filepath.Join(dir, "event*"))
	e.Rescan = 0
	require.NoError(t, e.Start(context.Background()))
	defer e.Stop()

	_, ok := e.Poll()
	assert.False(t, ok)

	// When: a pad appears with A pressed
	writeDevice(t, e, filepath.Join(dir, "event0"), event{evKey, btnSouth, 1})

	// Then: the next poll sees it
	st, ok := e.Poll()
	assert.True(t, ok)
	assert.Equal(t, State(A), st)

	st, ok = e.Poll()
	assert.True(t, ok)
	assert.Equal(t, State(A), st)
}

func TestEvdev_RescanIsThrottled(t *testing.T) {
	dir := t.TempDir()
	e := NewEvdev(filepath.Join(dir, "event*"))
	require.NoError(t, e.Start(context.Background()))
	defer e.Stop()
	assert.Equal(t, time.Second, e.Rescan)

	writeDevice(t, e, filepath.Join(dir, "event0"), event{evKey, btnSouth, 1})

	_, ok := e.Poll()
	assert.False(t, ok)

	e.lastScan = time.Now().Add(-2 * time.Second)
	st, ok := e.Poll()
	assert.True(t, ok)
	assert.Equal(t, State(A), st)
}

func TestEvdev_UnpluggedDeviceReleasesItsButtons(t *testing.T) {
	// Given: a pad holding A and a keyboard holding Up
	dir := t.TempDir()
	e := NewEvdev(filepath.Join(dir, "event*"))
	e.tvSize = binary.Size(unix.Timeval{})
	writeDevice(t, e, filepath.Join(dir, "event0"), event{evKey, btnSouth, 1})
	writeDevice(t, e, filepath.Join(dir, "event1"), event{evKey, keyUp, 1})
	require.NoError(t, e.Start(context.Background()))
	defer e.Stop()
	e.Rescan = time.Hour

	st, ok := e.Poll()
	require.True(t, ok)
	require.Equal(t, State(0).With(Up).With(A), st)

	// When: the pad stops reading
	for _, d := range e.devices {
		if d.path == filepath.Join(dir, "event0") {
			_ = unix.Close(d.fd)
			d.fd = -1
		}
	}

	// Then: only the keyboard's button is still held
	st, ok = e.Poll()
	assert.True(t, ok)
	assert.Equal(t, State(Up), st)
	assert.Len(t, e.devices, 1)
}
