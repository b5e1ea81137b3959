package realsense

import (
	"runtime"
	"unsafe"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// Device is one physical (or playback) camera. Obtained from
// Context.QueryDevices, DeviceHub.WaitForDevice, or PipelineProfile.Device;
// all of those hand ownership to the caller, so every Device must be closed.
type Device struct {
	cptr unsafe.Pointer
}

func newDevice(h unsafe.Pointer) *Device {
	d := &Device{cptr: h}
	runtime.SetFinalizer(d, func(d *Device) { _ = d.Close() })
	return d
}

// Close releases the device handle. Idempotent. Sensors queried from the
// device must already be closed.
func (d *Device) Close() error {
	if d == nil || d.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(d, nil)
	bindings.DeleteDevice(d.cptr)
	d.cptr = nil
	return nil
}

func (d *Device) raw() (unsafe.Pointer, error) {
	if d == nil || d.cptr == nil {
		return nil, ErrClosed
	}
	return d.cptr, nil
}

// SupportsInfo reports whether the device exposes the given attribute.
func (d *Device) SupportsInfo(info CameraInfo) (bool, error) {
	h, err := d.raw()
	if err != nil {
		return false, err
	}
	ok, err := bindings.SupportsDeviceInfo(h, int32(info))
	runtime.KeepAlive(d)
	return ok, remapError(err)
}

// Info returns a device attribute. Unsupported attributes come back as an
// Error with ExceptionInvalidValue; probe with SupportsInfo to avoid that.
func (d *Device) Info(info CameraInfo) (string, error) {
	h, err := d.raw()
	if err != nil {
		return "", err
	}
	v, err := bindings.DeviceInfo(h, int32(info))
	runtime.KeepAlive(d)
	return v, remapError(err)
}

// Name is shorthand for Info(CameraInfoName), returning "" when the device
// does not report one.
func (d *Device) Name() string {
	ok, err := d.SupportsInfo(CameraInfoName)
	if err != nil || !ok {
		return ""
	}
	name, err := d.Info(CameraInfoName)
	if err != nil {
		return ""
	}
	return name
}

// SerialNumber is shorthand for Info(CameraInfoSerialNumber), returning ""
// when unavailable.
func (d *Device) SerialNumber() string {
	ok, err := d.SupportsInfo(CameraInfoSerialNumber)
	if err != nil || !ok {
		return ""
	}
	serial, err := d.Info(CameraInfoSerialNumber)
	if err != nil {
		return ""
	}
	return serial
}

// HardwareReset asks the device to reboot. The handle is unusable afterwards;
// re-enumerate to pick the device up again.
func (d *Device) HardwareReset() error {
	h, err := d.raw()
	if err != nil {
		return err
	}
	err = bindings.HardwareReset(h)
	runtime.KeepAlive(d)
	return remapError(err)
}

// QuerySensors lists the device's sensors. Each returned sensor is owned by
// the caller, must be closed, and must not outlive the device.
func (d *Device) QuerySensors() ([]*Sensor, error) {
	h, err := d.raw()
	if err != nil {
		return nil, err
	}
	handles, err := bindings.QuerySensors(h)
	runtime.KeepAlive(d)
	if err != nil {
		return nil, remapError(err)
	}
	sensors := make([]*Sensor, 0, len(handles))
	for _, sh := range handles {
		sensors = append(sensors, newSensor(sh))
	}
	return sensors, nil
}
