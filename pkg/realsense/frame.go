package realsense

import (
	"runtime"
	"unsafe"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// Frame is any frame delivered by the library. Concrete types are
// *VideoFrame, *DepthFrame, *DisparityFrame, *MotionFrame, *PoseFrame,
// *PointsFrame, and *CompositeFrame; type-switch to get at the specific
// payload accessors.
type Frame interface {
	// Close releases the native frame reference. Idempotent. The library
	// recycles frame buffers from a fixed pool, so holding frames open
	// stalls streaming.
	Close() error
	// Timestamp is the frame capture time in milliseconds on the clock
	// named by TimestampDomain.
	Timestamp() (float64, error)
	// TimestampDomain says which clock produced the timestamp.
	TimestampDomain() (TimestampDomain, error)
	// Profile describes the stream the frame belongs to. The profile
	// borrows from the frame and must not be used after Close.
	Profile() (*StreamProfile, error)
	// SupportsMetadata reports whether the frame carries an attribute.
	SupportsMetadata(kind FrameMetadataKind) (bool, error)
	// Metadata reads a per-frame attribute.
	Metadata(kind FrameMetadataKind) (int64, error)
}

// frameHandle is the shared native-reference plumbing under every frame
// type.
type frameHandle struct {
	cptr unsafe.Pointer
}

func (f *frameHandle) Close() error {
	if f == nil || f.cptr == nil {
		return nil
	}
	bindings.ReleaseFrame(f.cptr)
	f.cptr = nil
	return nil
}

func (f *frameHandle) raw() (unsafe.Pointer, error) {
	if f == nil || f.cptr == nil {
		return nil, ErrClosed
	}
	return f.cptr, nil
}

func (f *frameHandle) Timestamp() (float64, error) {
	h, err := f.raw()
	if err != nil {
		return 0, err
	}
	ts, err := bindings.FrameTimestamp(h)
	runtime.KeepAlive(f)
	return ts, remapError(err)
}

func (f *frameHandle) TimestampDomain() (TimestampDomain, error) {
	h, err := f.raw()
	if err != nil {
		return 0, err
	}
	d, err := bindings.FrameTimestampDomain(h)
	runtime.KeepAlive(f)
	return TimestampDomain(d), remapError(err)
}

func (f *frameHandle) Profile() (*StreamProfile, error) {
	h, err := f.raw()
	if err != nil {
		return nil, err
	}
	sp, err := bindings.FrameStreamProfile(h)
	runtime.KeepAlive(f)
	if err != nil {
		return nil, remapError(err)
	}
	return newStreamProfile(sp)
}

func (f *frameHandle) SupportsMetadata(kind FrameMetadataKind) (bool, error) {
	h, err := f.raw()
	if err != nil {
		return false, err
	}
	ok, err := bindings.SupportsFrameMetadata(h, int32(kind))
	runtime.KeepAlive(f)
	return ok, remapError(err)
}

func (f *frameHandle) Metadata(kind FrameMetadataKind) (int64, error) {
	h, err := f.raw()
	if err != nil {
		return 0, err
	}
	v, err := bindings.FrameMetadata(h, int32(kind))
	runtime.KeepAlive(f)
	return v, remapError(err)
}

// Sensor returns the sensor that produced the frame. The caller owns the
// returned handle and must close it.
func (f *frameHandle) Sensor() (*Sensor, error) {
	h, err := f.raw()
	if err != nil {
		return nil, err
	}
	s, err := bindings.FrameSensor(h)
	runtime.KeepAlive(f)
	if err != nil {
		return nil, remapError(err)
	}
	return newSensor(s), nil
}

func (f *frameHandle) is(ext Extension) (bool, error) {
	h, err := f.raw()
	if err != nil {
		return false, err
	}
	ok, err := bindings.IsFrameExtendableTo(h, int32(ext))
	runtime.KeepAlive(f)
	return ok, remapError(err)
}

// CompositeFrame is the frameset a pipeline delivers: one frame per enabled
// stream, bundled so they can be matched by arrival.
type CompositeFrame struct {
	frameHandle
}

func newCompositeFrame(h unsafe.Pointer) *CompositeFrame {
	c := &CompositeFrame{frameHandle{cptr: h}}
	runtime.SetFinalizer(c, func(c *CompositeFrame) { _ = c.Close() })
	return c
}

// Close releases the frameset and every embedded frame not extracted from
// it. Idempotent.
func (c *CompositeFrame) Close() error {
	if c == nil || c.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(c, nil)
	return c.frameHandle.Close()
}

// Count reports how many frames the set carries.
func (c *CompositeFrame) Count() (int, error) {
	h, err := c.raw()
	if err != nil {
		return 0, err
	}
	n, err := bindings.EmbeddedFramesCount(h)
	runtime.KeepAlive(c)
	return n, remapError(err)
}

// FrameAt extracts the i-th embedded frame, typed by probing the frame's
// extensions (most specific first). The extracted frame holds its own native
// reference: the caller closes it independently of the set.
func (c *CompositeFrame) FrameAt(i int) (Frame, error) {
	h, err := c.raw()
	if err != nil {
		return nil, err
	}
	f, err := bindings.ExtractFrame(h, i)
	runtime.KeepAlive(c)
	if err != nil {
		return nil, remapError(err)
	}
	return typeFrame(f)
}

// Frames extracts every embedded frame. Each one is owned by the caller.
func (c *CompositeFrame) Frames() ([]Frame, error) {
	n, err := c.Count()
	if err != nil {
		return nil, err
	}
	frames := make([]Frame, 0, n)
	for i := 0; i < n; i++ {
		f, err := c.FrameAt(i)
		if err != nil {
			for _, open := range frames {
				_ = open.Close()
			}
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// DepthFrame extracts the first depth frame in the set, or ErrNoFrame.
func (c *CompositeFrame) DepthFrame() (*DepthFrame, error) {
	f, err := c.firstOf(func(f Frame) bool {
		_, ok := f.(*DepthFrame)
		return ok
	})
	if err != nil {
		return nil, err
	}
	return f.(*DepthFrame), nil
}

// ColorFrame extracts the first color video frame in the set, or ErrNoFrame.
func (c *CompositeFrame) ColorFrame() (*VideoFrame, error) {
	f, err := c.firstOf(func(f Frame) bool {
		v, ok := f.(*VideoFrame)
		return ok && v.profile.Stream() == StreamColor
	})
	if err != nil {
		return nil, err
	}
	return f.(*VideoFrame), nil
}

// IsEmpty reports whether the set carries no frames.
func (c *CompositeFrame) IsEmpty() (bool, error) {
	n, err := c.Count()
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// DepthFrames extracts every depth frame in the set.
func (c *CompositeFrame) DepthFrames() ([]*DepthFrame, error) {
	return framesOf[*DepthFrame](c)
}

// DisparityFrames extracts every disparity-encoded depth frame in the set.
func (c *CompositeFrame) DisparityFrames() ([]*DisparityFrame, error) {
	return framesOf[*DisparityFrame](c)
}

// VideoFrames extracts every plain video frame (color, infrared, fisheye)
// in the set. Depth frames are excluded; use DepthFrames for those.
func (c *CompositeFrame) VideoFrames() ([]*VideoFrame, error) {
	return framesOf[*VideoFrame](c)
}

// MotionFrames extracts every IMU sample in the set.
func (c *CompositeFrame) MotionFrames() ([]*MotionFrame, error) {
	return framesOf[*MotionFrame](c)
}

// PoseFrames extracts every tracking sample in the set.
func (c *CompositeFrame) PoseFrames() ([]*PoseFrame, error) {
	return framesOf[*PoseFrame](c)
}

// PointsFrames extracts every point cloud in the set.
func (c *CompositeFrame) PointsFrames() ([]*PointsFrame, error) {
	return framesOf[*PointsFrame](c)
}

func framesOf[T Frame](c *CompositeFrame) ([]T, error) {
	n, err := c.Count()
	if err != nil {
		return nil, err
	}
	var out []T
	for i := 0; i < n; i++ {
		f, err := c.FrameAt(i)
		if err != nil {
			for _, open := range out {
				_ = open.Close()
			}
			return nil, err
		}
		if typed, ok := f.(T); ok {
			out = append(out, typed)
		} else {
			_ = f.Close()
		}
	}
	return out, nil
}

func (c *CompositeFrame) firstOf(match func(Frame) bool) (Frame, error) {
	n, err := c.Count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		f, err := c.FrameAt(i)
		if err != nil {
			return nil, err
		}
		if match(f) {
			return f, nil
		}
		_ = f.Close()
	}
	return nil, ErrNoFrame
}

// typeFrame classifies an owned frame handle into its concrete wrapper. On
// classification failure the handle is released before reporting the error.
func typeFrame(h unsafe.Pointer) (Frame, error) {
	base := frameHandle{cptr: h}

	probes := []struct {
		ext  Extension
		wrap func() (Frame, error)
	}{
		{ExtensionPoints, func() (Frame, error) { return newPointsFrame(base), nil }},
		{ExtensionDisparityFrame, func() (Frame, error) { return newDisparityFrame(base) }},
		{ExtensionDepthFrame, func() (Frame, error) { return newDepthFrame(base) }},
		{ExtensionPoseFrame, func() (Frame, error) { return newPoseFrame(base), nil }},
		{ExtensionMotionFrame, func() (Frame, error) { return newMotionFrame(base) }},
		{ExtensionVideoFrame, func() (Frame, error) { return newVideoFrame(base) }},
		{ExtensionCompositeFrame, func() (Frame, error) { return newCompositeFrame(h), nil }},
	}
	for _, probe := range probes {
		ok, err := base.is(probe.ext)
		if err != nil {
			bindings.ReleaseFrame(h)
			return nil, err
		}
		if !ok {
			continue
		}
		f, err := probe.wrap()
		if err != nil {
			bindings.ReleaseFrame(h)
			return nil, err
		}
		return f, nil
	}

	bindings.ReleaseFrame(h)
	return nil, &Error{
		Kind:    ExceptionNotImplemented,
		Message: "frame matches no known frame extension",
	}
}
