package realsense

import (
	"runtime"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// VideoFrame is a 2D image frame (color, infrared, fisheye, confidence).
// Geometry and the stream profile are cached at extraction; the pixel
// payload is copied out of native memory on first access.
type VideoFrame struct {
	frameHandle
	profile *StreamProfile
	geom    bindings.VideoFrameGeometry
	data    []byte
}

func makeVideoFrame(base frameHandle) (VideoFrame, error) {
	geom, err := bindings.FrameGeometry(base.cptr)
	if err != nil {
		return VideoFrame{}, remapError(err)
	}
	profile, err := base.Profile()
	if err != nil {
		return VideoFrame{}, err
	}
	return VideoFrame{frameHandle: base, profile: profile, geom: geom}, nil
}

func newVideoFrame(base frameHandle) (*VideoFrame, error) {
	inner, err := makeVideoFrame(base)
	if err != nil {
		return nil, err
	}
	v := &inner
	runtime.SetFinalizer(v, func(v *VideoFrame) { _ = v.Close() })
	return v, nil
}

// Close releases the native frame reference. Cached pixel data stays valid.
func (v *VideoFrame) Close() error {
	if v == nil || v.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(v, nil)
	return v.frameHandle.Close()
}

// Width is the image width in pixels.
func (v *VideoFrame) Width() int { return int(v.geom.Width) }

// Height is the image height in pixels.
func (v *VideoFrame) Height() int { return int(v.geom.Height) }

// StrideBytes is the length of one image row in bytes, padding included.
func (v *VideoFrame) StrideBytes() int { return int(v.geom.StrideBytes) }

// BitsPerPixel is the payload size of one pixel in bits.
func (v *VideoFrame) BitsPerPixel() int { return int(v.geom.BitsPerPixel) }

// DataSize is the payload size in bytes.
func (v *VideoFrame) DataSize() int { return int(v.geom.DataSize) }

// Format reports the pixel layout, from the frame's stream profile.
func (v *VideoFrame) Format() Format { return v.profile.Format() }

// StreamProfile describes the stream the frame belongs to.
func (v *VideoFrame) StreamProfile() *StreamProfile { return v.profile }

// Data returns the pixel payload. The first call copies it out of native
// memory; later calls (including after Close) return the same slice. Callers
// must not mutate it.
func (v *VideoFrame) Data() ([]byte, error) {
	if v.data != nil {
		return v.data, nil
	}
	h, err := v.raw()
	if err != nil {
		return nil, err
	}
	data, err := bindings.FrameData(h)
	runtime.KeepAlive(v)
	if err != nil {
		return nil, remapError(err)
	}
	v.data = data
	return data, nil
}

// PixelAt decodes the pixel at (x, y) according to the frame's format.
func (v *VideoFrame) PixelAt(x, y int) (Pixel, error) {
	data, err := v.Data()
	if err != nil {
		return nil, err
	}
	return pixelAt(data, v.Format(), int(v.geom.StrideBytes), v.Width(), v.Height(), x, y)
}

// DepthFrame is a video frame whose pixels encode distance. The raw payload
// is available through the VideoFrame accessors; DistanceAt converts to
// meters using the device's depth units.
type DepthFrame struct {
	VideoFrame
}

func newDepthFrame(base frameHandle) (*DepthFrame, error) {
	inner, err := makeVideoFrame(base)
	if err != nil {
		return nil, err
	}
	d := &DepthFrame{VideoFrame: inner}
	runtime.SetFinalizer(d, func(d *DepthFrame) { _ = d.Close() })
	return d, nil
}

func (d *DepthFrame) Close() error {
	if d == nil || d.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(d, nil)
	return d.frameHandle.Close()
}

// DistanceAt returns the distance at pixel (x, y) in meters. Requires the
// native frame, so it fails with ErrClosed after Close.
func (d *DepthFrame) DistanceAt(x, y int) (float32, error) {
	h, err := d.raw()
	if err != nil {
		return 0, err
	}
	dist, err := bindings.DepthFrameDistance(h, x, y)
	runtime.KeepAlive(d)
	return dist, remapError(err)
}

// DisparityFrame is a depth frame encoded as stereo disparity rather than
// distance.
type DisparityFrame struct {
	DepthFrame
}

func newDisparityFrame(base frameHandle) (*DisparityFrame, error) {
	inner, err := makeVideoFrame(base)
	if err != nil {
		return nil, err
	}
	f := &DisparityFrame{DepthFrame{VideoFrame: inner}}
	runtime.SetFinalizer(f, func(f *DisparityFrame) { _ = f.Close() })
	return f, nil
}

func (f *DisparityFrame) Close() error {
	if f == nil || f.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(f, nil)
	return f.frameHandle.Close()
}

// Baseline returns the distance between the stereo imagers in meters.
func (f *DisparityFrame) Baseline() (float32, error) {
	h, err := f.raw()
	if err != nil {
		return 0, err
	}
	b, err := bindings.DepthStereoFrameBaseline(h)
	runtime.KeepAlive(f)
	return b, remapError(err)
}
