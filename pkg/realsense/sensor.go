package realsense

import (
	"runtime"
	"unsafe"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// Sensor is one streaming unit inside a device (stereo module, RGB camera,
// motion module). Obtained from Device.QuerySensors or Frame.Sensor; owned
// by the caller and must not outlive its device.
type Sensor struct {
	cptr unsafe.Pointer
}

func newSensor(h unsafe.Pointer) *Sensor {
	s := &Sensor{cptr: h}
	runtime.SetFinalizer(s, func(s *Sensor) { _ = s.Close() })
	return s
}

// Close releases the sensor handle. Idempotent. Stream profiles listed from
// the sensor become invalid once it is closed.
func (s *Sensor) Close() error {
	if s == nil || s.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(s, nil)
	bindings.DeleteSensor(s.cptr)
	s.cptr = nil
	return nil
}

func (s *Sensor) raw() (unsafe.Pointer, error) {
	if s == nil || s.cptr == nil {
		return nil, ErrClosed
	}
	return s.cptr, nil
}

// SupportsInfo reports whether the sensor exposes the given attribute.
func (s *Sensor) SupportsInfo(info CameraInfo) (bool, error) {
	h, err := s.raw()
	if err != nil {
		return false, err
	}
	ok, err := bindings.SupportsSensorInfo(h, int32(info))
	runtime.KeepAlive(s)
	return ok, remapError(err)
}

// Info returns a sensor attribute.
func (s *Sensor) Info(info CameraInfo) (string, error) {
	h, err := s.raw()
	if err != nil {
		return "", err
	}
	v, err := bindings.SensorInfo(h, int32(info))
	runtime.KeepAlive(s)
	return v, remapError(err)
}

// Is reports whether the sensor can be treated as the given extension, e.g.
// ExtensionDepthSensor or ExtensionColorSensor.
func (s *Sensor) Is(ext Extension) (bool, error) {
	h, err := s.raw()
	if err != nil {
		return false, err
	}
	ok, err := bindings.IsSensorExtendableTo(h, int32(ext))
	runtime.KeepAlive(s)
	return ok, remapError(err)
}

// Kind classifies the sensor by probing the known sensor extensions, most
// specific first. Returns ExtensionUnknown when nothing matches.
func (s *Sensor) Kind() (Extension, error) {
	for _, ext := range sensorExtensions {
		ok, err := s.Is(ext)
		if err != nil {
			return ExtensionUnknown, err
		}
		if ok {
			return ext, nil
		}
	}
	return ExtensionUnknown, nil
}

// SupportsOption reports whether the sensor accepts the given control.
func (s *Sensor) SupportsOption(opt Option) (bool, error) {
	h, err := s.raw()
	if err != nil {
		return false, err
	}
	ok, err := bindings.SensorSupportsOption(h, int32(opt))
	runtime.KeepAlive(s)
	return ok, remapError(err)
}

// Option reads the current value of a control.
func (s *Sensor) Option(opt Option) (float32, error) {
	h, err := s.raw()
	if err != nil {
		return 0, err
	}
	v, err := bindings.SensorOption(h, int32(opt))
	runtime.KeepAlive(s)
	return v, remapError(err)
}

// SetOption writes a control value. Out-of-range values are reported by the
// library as ExceptionInvalidValue.
func (s *Sensor) SetOption(opt Option, value float32) error {
	h, err := s.raw()
	if err != nil {
		return err
	}
	err = bindings.SetSensorOption(h, int32(opt), value)
	runtime.KeepAlive(s)
	return remapError(err)
}

// StreamProfiles lists every stream configuration the sensor can produce.
// The profiles borrow native storage from the sensor and must not be used
// after the sensor closes.
func (s *Sensor) StreamProfiles() ([]*StreamProfile, error) {
	h, err := s.raw()
	if err != nil {
		return nil, err
	}
	handles, err := bindings.SensorStreamProfiles(h)
	runtime.KeepAlive(s)
	if err != nil {
		return nil, remapError(err)
	}
	profiles := make([]*StreamProfile, 0, len(handles))
	for _, ph := range handles {
		p, err := newStreamProfile(ph)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
