package realsense

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// StreamProfile describes one stream configuration: what kind of data it
// carries, how it is formatted, and at what rate. Profiles borrow native
// storage from the sensor, frame, or pipeline profile that produced them and
// must not be used after that parent closes; the identifying fields below
// are cached at construction and stay valid regardless.
type StreamProfile struct {
	cptr unsafe.Pointer

	stream    StreamKind
	format    Format
	index     int
	uniqueID  int
	framerate int
	isDefault bool
}

func newStreamProfile(h unsafe.Pointer) (*StreamProfile, error) {
	data, err := bindings.GetStreamProfileData(h)
	if err != nil {
		return nil, remapError(err)
	}
	return &StreamProfile{
		cptr:      h,
		stream:    StreamKind(data.Stream),
		format:    Format(data.Format),
		index:     int(data.Index),
		uniqueID:  int(data.UniqueID),
		framerate: int(data.Framerate),
		isDefault: data.IsDefault,
	}, nil
}

// Stream reports what the stream's frames represent.
func (p *StreamProfile) Stream() StreamKind { return p.stream }

// Format reports the pixel or sample layout of the stream's frames.
func (p *StreamProfile) Format() Format { return p.format }

// Index distinguishes multiple streams of the same kind, e.g. the left and
// right infrared imagers.
func (p *StreamProfile) Index() int { return p.index }

// UniqueID identifies the stream within its context.
func (p *StreamProfile) UniqueID() int { return p.uniqueID }

// Framerate is the nominal rate in frames (or samples) per second.
func (p *StreamProfile) Framerate() int { return p.framerate }

// IsDefault reports whether the library would pick this profile when the
// stream is enabled without an explicit configuration.
func (p *StreamProfile) IsDefault() bool { return p.isDefault }

func (p *StreamProfile) String() string {
	return fmt.Sprintf("%s[%d] %s @%dfps (uid %d)", p.stream, p.index, p.format, p.framerate, p.uniqueID)
}

func (p *StreamProfile) raw() (unsafe.Pointer, error) {
	if p == nil || p.cptr == nil {
		return nil, ErrClosed
	}
	return p.cptr, nil
}

// Intrinsics returns the projection parameters of a video stream. Fails with
// ExceptionInvalidValue on non-video profiles.
func (p *StreamProfile) Intrinsics() (Intrinsics, error) {
	h, err := p.raw()
	if err != nil {
		return Intrinsics{}, err
	}
	raw, err := bindings.VideoStreamIntrinsics(h)
	runtime.KeepAlive(p)
	if err != nil {
		return Intrinsics{}, remapError(err)
	}
	return intrinsicsFromBindings(raw), nil
}

// MotionIntrinsics returns the scale/bias/variance model of a motion stream.
// Fails with ExceptionInvalidValue on non-motion profiles.
func (p *StreamProfile) MotionIntrinsics() (MotionIntrinsics, error) {
	h, err := p.raw()
	if err != nil {
		return MotionIntrinsics{}, err
	}
	raw, err := bindings.MotionIntrinsics(h)
	runtime.KeepAlive(p)
	if err != nil {
		return MotionIntrinsics{}, remapError(err)
	}
	return MotionIntrinsics{
		Data:           raw.Data,
		NoiseVariances: raw.NoiseVariances,
		BiasVariances:  raw.BiasVariances,
	}, nil
}

// ExtrinsicsTo returns the rigid transform from this stream's coordinate
// space to another stream's.
func (p *StreamProfile) ExtrinsicsTo(to *StreamProfile) (Extrinsics, error) {
	from, err := p.raw()
	if err != nil {
		return Extrinsics{}, err
	}
	dst, err := to.raw()
	if err != nil {
		return Extrinsics{}, err
	}
	raw, err := bindings.GetExtrinsics(from, dst)
	runtime.KeepAlive(p)
	runtime.KeepAlive(to)
	if err != nil {
		return Extrinsics{}, remapError(err)
	}
	return Extrinsics{Rotation: raw.Rotation, Translation: raw.Translation}, nil
}

// RegisterExtrinsicsTo overrides the transform the library reports between
// two streams. Intended for custom calibration flows.
func (p *StreamProfile) RegisterExtrinsicsTo(to *StreamProfile, ex Extrinsics) error {
	from, err := p.raw()
	if err != nil {
		return err
	}
	dst, err := to.raw()
	if err != nil {
		return err
	}
	err = bindings.RegisterExtrinsics(from, dst, bindings.Extrinsics{
		Rotation:    ex.Rotation,
		Translation: ex.Translation,
	})
	runtime.KeepAlive(p)
	runtime.KeepAlive(to)
	return remapError(err)
}
