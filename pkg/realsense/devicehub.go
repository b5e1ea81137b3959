package realsense

import (
	"runtime"
	"unsafe"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// DeviceHub tracks device arrival on a context. Its main use is blocking
// until any camera is plugged in.
type DeviceHub struct {
	cptr unsafe.Pointer
	ctx  *Context
}

// NewDeviceHub creates a hub bound to ctx. The hub must be closed before the
// context.
func NewDeviceHub(ctx *Context) (*DeviceHub, error) {
	h, err := ctx.raw()
	if err != nil {
		return nil, err
	}
	hub, err := bindings.CreateDeviceHub(h)
	runtime.KeepAlive(ctx)
	if err != nil {
		return nil, remapError(err)
	}
	d := &DeviceHub{cptr: hub, ctx: ctx}
	runtime.SetFinalizer(d, func(d *DeviceHub) { _ = d.Close() })
	return d, nil
}

// Close releases the hub. Idempotent.
func (d *DeviceHub) Close() error {
	if d == nil || d.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(d, nil)
	bindings.DeleteDeviceHub(d.cptr)
	d.cptr = nil
	d.ctx = nil
	return nil
}

func (d *DeviceHub) raw() (unsafe.Pointer, error) {
	if d == nil || d.cptr == nil {
		return nil, ErrClosed
	}
	return d.cptr, nil
}

// WaitForDevice blocks until a device is connected and returns it. The call
// has no deadline; it parks the calling goroutine inside the native library
// until hardware shows up.
func (d *DeviceHub) WaitForDevice() (*Device, error) {
	h, err := d.raw()
	if err != nil {
		return nil, err
	}
	dev, err := bindings.DeviceHubWaitForDevice(h)
	runtime.KeepAlive(d)
	if err != nil {
		return nil, remapError(err)
	}
	return newDevice(dev), nil
}

// IsConnected reports whether dev is still attached.
func (d *DeviceHub) IsConnected(dev *Device) (bool, error) {
	h, err := d.raw()
	if err != nil {
		return false, err
	}
	dh, err := dev.raw()
	if err != nil {
		return false, err
	}
	ok, err := bindings.DeviceHubIsConnected(h, dh)
	runtime.KeepAlive(d)
	runtime.KeepAlive(dev)
	return ok, remapError(err)
}
