package realsense

import (
	"encoding/binary"
	"math"
	"runtime"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// MotionFrame is one IMU sample: gyro angular velocity in rad/s or
// accelerometer acceleration in m/s^2, depending on the stream. The sample
// is copied out at extraction, so it survives Close.
type MotionFrame struct {
	frameHandle
	profile *StreamProfile
	sample  [3]float32
}

func newMotionFrame(base frameHandle) (*MotionFrame, error) {
	profile, err := base.Profile()
	if err != nil {
		return nil, err
	}
	data, err := bindings.FrameData(base.cptr)
	if err != nil {
		return nil, remapError(err)
	}
	sample, err := decodeMotionSample(data)
	if err != nil {
		return nil, err
	}

	m := &MotionFrame{frameHandle: base, profile: profile, sample: sample}
	runtime.SetFinalizer(m, func(m *MotionFrame) { _ = m.Close() })
	return m, nil
}

// decodeMotionSample reads an RS2_FORMAT_MOTION_XYZ32F payload: three
// little-endian float32 values.
func decodeMotionSample(data []byte) ([3]float32, error) {
	if len(data) < 12 {
		return [3]float32{}, &Error{
			Kind:    ExceptionInvalidValue,
			Message: "motion frame payload shorter than 3 float32 values",
		}
	}
	var out [3]float32
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out, nil
}

func (m *MotionFrame) Close() error {
	if m == nil || m.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(m, nil)
	return m.frameHandle.Close()
}

// Motion returns the sample as an (x, y, z) vector.
func (m *MotionFrame) Motion() [3]float32 { return m.sample }

// StreamProfile describes the stream the sample belongs to; its Stream
// distinguishes gyro from accelerometer.
func (m *MotionFrame) StreamProfile() *StreamProfile { return m.profile }
