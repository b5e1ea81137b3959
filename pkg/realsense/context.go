package realsense

import (
	"runtime"
	"unsafe"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// Context owns a librealsense2 driver session. It is the root of the
// ownership graph: devices, device hubs, and pipelines are created from it
// and must be closed before it.
type Context struct {
	cptr unsafe.Pointer
}

// NewContext opens a driver session against the installed librealsense2.
// Returns ErrNotBuilt when the binary carries no native bindings.
func NewContext() (*Context, error) {
	h, err := bindings.CreateContext()
	if err != nil {
		return nil, remapError(err)
	}
	c := &Context{cptr: h}
	runtime.SetFinalizer(c, func(c *Context) { _ = c.Close() })
	return c, nil
}

// Close releases the native context. Idempotent. Handles derived from the
// context must already be closed.
func (c *Context) Close() error {
	if c == nil || c.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(c, nil)
	bindings.DeleteContext(c.cptr)
	c.cptr = nil
	return nil
}

func (c *Context) raw() (unsafe.Pointer, error) {
	if c == nil || c.cptr == nil {
		return nil, ErrClosed
	}
	return c.cptr, nil
}

// QueryDevices enumerates currently connected devices matching the product
// line mask. Each returned device is owned by the caller and must be closed.
func (c *Context) QueryDevices(mask ProductLine) ([]*Device, error) {
	h, err := c.raw()
	if err != nil {
		return nil, err
	}
	handles, err := bindings.QueryDevices(h, int32(mask))
	runtime.KeepAlive(c)
	if err != nil {
		return nil, remapError(err)
	}
	devices := make([]*Device, 0, len(handles))
	for _, dh := range handles {
		devices = append(devices, newDevice(dh))
	}
	return devices, nil
}

// AddDeviceFromFile makes a recorded .bag file show up as a playback device
// in subsequent enumerations.
func (c *Context) AddDeviceFromFile(path string) error {
	h, err := c.raw()
	if err != nil {
		return err
	}
	err = bindings.ContextAddDevice(h, path)
	runtime.KeepAlive(c)
	return remapError(err)
}

// RemoveDeviceFromFile detaches a playback device previously added with
// AddDeviceFromFile.
func (c *Context) RemoveDeviceFromFile(path string) error {
	h, err := c.raw()
	if err != nil {
		return err
	}
	err = bindings.ContextRemoveDevice(h, path)
	runtime.KeepAlive(c)
	return remapError(err)
}

// APIVersion reports the linked librealsense2 version, encoded per the
// library convention (major*10000 + minor*100 + patch).
func APIVersion() (int32, error) {
	v, err := bindings.APIVersion()
	return v, remapError(err)
}
