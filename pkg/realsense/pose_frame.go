package realsense

import (
	"runtime"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// Pose is a tracking sample: position and orientation of the device plus
// their first and second derivatives. Translation-like vectors are meters
// (per second, per second squared); Rotation is a unit quaternion
// (x, y, z, w); angular terms are radians based.
type Pose struct {
	Translation         [3]float32
	Velocity            [3]float32
	Acceleration        [3]float32
	Rotation            [4]float32
	AngularVelocity     [3]float32
	AngularAcceleration [3]float32
	TrackerConfidence   PoseConfidence
	MapperConfidence    PoseConfidence
}

// PoseConfidence grades how much the tracker trusts a pose sample.
type PoseConfidence uint32

const (
	PoseConfidenceFailed PoseConfidence = iota
	PoseConfidenceLow
	PoseConfidenceMedium
	PoseConfidenceHigh
)

func (c PoseConfidence) String() string {
	switch c {
	case PoseConfidenceFailed:
		return "failed"
	case PoseConfidenceLow:
		return "low"
	case PoseConfidenceMedium:
		return "medium"
	case PoseConfidenceHigh:
		return "high"
	default:
		return "unknown"
	}
}

// PoseFrame is one sample from a tracking (T2xx) device. The pose is read
// lazily from the native frame.
type PoseFrame struct {
	frameHandle
}

func newPoseFrame(base frameHandle) *PoseFrame {
	p := &PoseFrame{frameHandle: base}
	runtime.SetFinalizer(p, func(p *PoseFrame) { _ = p.Close() })
	return p
}

func (p *PoseFrame) Close() error {
	if p == nil || p.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(p, nil)
	return p.frameHandle.Close()
}

// Pose returns the tracking sample.
func (p *PoseFrame) Pose() (Pose, error) {
	h, err := p.raw()
	if err != nil {
		return Pose{}, err
	}
	raw, err := bindings.PoseFrameData(h)
	runtime.KeepAlive(p)
	if err != nil {
		return Pose{}, remapError(err)
	}
	return Pose{
		Translation:         raw.Translation,
		Velocity:            raw.Velocity,
		Acceleration:        raw.Acceleration,
		Rotation:            raw.Rotation,
		AngularVelocity:     raw.AngularVelocity,
		AngularAcceleration: raw.AngularAcceleration,
		TrackerConfidence:   PoseConfidence(raw.TrackerConfidence),
		MapperConfidence:    PoseConfidence(raw.MapperConfidence),
	}, nil
}
