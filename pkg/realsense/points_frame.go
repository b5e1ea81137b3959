package realsense

import (
	"runtime"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// Vertex is one point-cloud point in meters, relative to the depth sensor
// origin.
type Vertex = bindings.Vertex

// TextureCoordinate is a normalized UV coordinate into the texture frame a
// point cloud was mapped against.
type TextureCoordinate = bindings.TextureCoordinate

// PointsFrame is a point cloud produced by the library's pointcloud
// processing block. Vertex and UV buffers are copied out of native memory
// on access.
type PointsFrame struct {
	frameHandle
}

func newPointsFrame(base frameHandle) *PointsFrame {
	p := &PointsFrame{frameHandle: base}
	runtime.SetFinalizer(p, func(p *PointsFrame) { _ = p.Close() })
	return p
}

func (p *PointsFrame) Close() error {
	if p == nil || p.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(p, nil)
	return p.frameHandle.Close()
}

// Count reports the number of points.
func (p *PointsFrame) Count() (int, error) {
	h, err := p.raw()
	if err != nil {
		return 0, err
	}
	n, err := bindings.FramePointsCount(h)
	runtime.KeepAlive(p)
	return n, remapError(err)
}

// Vertices copies out the point positions.
func (p *PointsFrame) Vertices() ([]Vertex, error) {
	h, err := p.raw()
	if err != nil {
		return nil, err
	}
	v, err := bindings.FrameVertices(h)
	runtime.KeepAlive(p)
	return v, remapError(err)
}

// TextureCoordinates copies out the per-point UV mapping.
func (p *PointsFrame) TextureCoordinates() ([]TextureCoordinate, error) {
	h, err := p.raw()
	if err != nil {
		return nil, err
	}
	uv, err := bindings.FrameTextureCoordinates(h)
	runtime.KeepAlive(p)
	return uv, remapError(err)
}
