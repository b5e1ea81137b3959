package realsense

import (
	"runtime"
	"unsafe"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// StreamIndexAny lets the library pick among multiple streams of the same
// kind when enabling a stream.
const StreamIndexAny = -1

// Config collects stream and device requests to be resolved when a pipeline
// starts. A zero request field (width, height, framerate) defers that choice
// to the library.
type Config struct {
	cptr unsafe.Pointer
}

// NewConfig creates an empty configuration.
func NewConfig() (*Config, error) {
	h, err := bindings.CreateConfig()
	if err != nil {
		return nil, remapError(err)
	}
	c := &Config{cptr: h}
	runtime.SetFinalizer(c, func(c *Config) { _ = c.Close() })
	return c, nil
}

// Close releases the config. Idempotent. A pipeline started from the config
// keeps its resolved settings; the config itself is no longer needed then.
func (c *Config) Close() error {
	if c == nil || c.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(c, nil)
	bindings.DeleteConfig(c.cptr)
	c.cptr = nil
	return nil
}

func (c *Config) raw() (unsafe.Pointer, error) {
	if c == nil || c.cptr == nil {
		return nil, ErrClosed
	}
	return c.cptr, nil
}

// EnableStream requests a stream with explicit settings. Pass StreamIndexAny
// for index and zero for width, height, or framerate to let the library
// choose.
func (c *Config) EnableStream(stream StreamKind, index, width, height int, format Format, framerate int) error {
	h, err := c.raw()
	if err != nil {
		return err
	}
	err = bindings.ConfigEnableStream(h,
		int32(stream), int32(index), int32(width), int32(height), int32(format), int32(framerate))
	runtime.KeepAlive(c)
	return remapError(err)
}

// EnableAllStreams requests every stream the resolved device offers, at
// default settings.
func (c *Config) EnableAllStreams() error {
	h, err := c.raw()
	if err != nil {
		return err
	}
	err = bindings.ConfigEnableAllStreams(h)
	runtime.KeepAlive(c)
	return remapError(err)
}

// EnableDevice pins the config to the device with the given serial number.
func (c *Config) EnableDevice(serial string) error {
	h, err := c.raw()
	if err != nil {
		return err
	}
	err = bindings.ConfigEnableDevice(h, serial)
	runtime.KeepAlive(c)
	return remapError(err)
}

// EnableDeviceFromFile streams from a recorded .bag file instead of live
// hardware. With loop set, playback restarts when the recording ends.
func (c *Config) EnableDeviceFromFile(path string, loop bool) error {
	h, err := c.raw()
	if err != nil {
		return err
	}
	err = bindings.ConfigEnableDeviceFromFile(h, path, loop)
	runtime.KeepAlive(c)
	return remapError(err)
}

// EnableRecordToFile writes everything the pipeline streams to a .bag file.
func (c *Config) EnableRecordToFile(path string) error {
	h, err := c.raw()
	if err != nil {
		return err
	}
	err = bindings.ConfigEnableRecordToFile(h, path)
	runtime.KeepAlive(c)
	return remapError(err)
}

// DisableStream withdraws an earlier request for a stream kind.
func (c *Config) DisableStream(stream StreamKind) error {
	h, err := c.raw()
	if err != nil {
		return err
	}
	err = bindings.ConfigDisableStream(h, int32(stream))
	runtime.KeepAlive(c)
	return remapError(err)
}

// DisableIndexedStream withdraws the request for one indexed stream.
func (c *Config) DisableIndexedStream(stream StreamKind, index int) error {
	h, err := c.raw()
	if err != nil {
		return err
	}
	err = bindings.ConfigDisableIndexedStream(h, int32(stream), int32(index))
	runtime.KeepAlive(c)
	return remapError(err)
}

// DisableAllStreams clears every stream request.
func (c *Config) DisableAllStreams() error {
	h, err := c.raw()
	if err != nil {
		return err
	}
	err = bindings.ConfigDisableAllStreams(h)
	runtime.KeepAlive(c)
	return remapError(err)
}
