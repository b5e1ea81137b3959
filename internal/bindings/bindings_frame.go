//go:build cgo && !windows

package bindings

/*
#include <librealsense2/rs.h>
*/
import "C"

import (
	"unsafe"
)

func ReleaseFrame(frame unsafe.Pointer) {
	if frame != nil {
		C.rs2_release_frame((*C.rs2_frame)(frame))
	}
}

// EmbeddedFramesCount wraps rs2_embedded_frames_count.
func EmbeddedFramesCount(frame unsafe.Pointer) (int, error) {
	var e *C.rs2_error
	n := C.rs2_embedded_frames_count((*C.rs2_frame)(frame), &e)
	if err := errorFrom(e); err != nil {
		return 0, err
	}
	return int(n), nil
}

// ExtractFrame wraps rs2_extract_frame. The returned handle carries its own
// reference and must be released with ReleaseFrame.
func ExtractFrame(frame unsafe.Pointer, index int) (unsafe.Pointer, error) {
	var e *C.rs2_error
	f := C.rs2_extract_frame((*C.rs2_frame)(frame), C.int(index), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return unsafe.Pointer(f), nil
}

// IsFrameExtendableTo wraps rs2_is_frame_extendable_to.
func IsFrameExtendableTo(frame unsafe.Pointer, extension int32) (bool, error) {
	var e *C.rs2_error
	v := C.rs2_is_frame_extendable_to((*C.rs2_frame)(frame), C.rs2_extension(extension), &e)
	if err := errorFrom(e); err != nil {
		return false, err
	}
	return v != 0, nil
}

// FrameGeometry bundles the video-frame geometry queries.
func FrameGeometry(frame unsafe.Pointer) (VideoFrameGeometry, error) {
	f := (*C.rs2_frame)(frame)
	var e *C.rs2_error

	width := C.rs2_get_frame_width(f, &e)
	if err := errorFrom(e); err != nil {
		return VideoFrameGeometry{}, err
	}
	height := C.rs2_get_frame_height(f, &e)
	if err := errorFrom(e); err != nil {
		return VideoFrameGeometry{}, err
	}
	stride := C.rs2_get_frame_stride_in_bytes(f, &e)
	if err := errorFrom(e); err != nil {
		return VideoFrameGeometry{}, err
	}
	bpp := C.rs2_get_frame_bits_per_pixel(f, &e)
	if err := errorFrom(e); err != nil {
		return VideoFrameGeometry{}, err
	}
	size := C.rs2_get_frame_data_size(f, &e)
	if err := errorFrom(e); err != nil {
		return VideoFrameGeometry{}, err
	}

	return VideoFrameGeometry{
		Width:        int32(width),
		Height:       int32(height),
		StrideBytes:  int32(stride),
		BitsPerPixel: int32(bpp),
		DataSize:     int32(size),
	}, nil
}

// FrameDataSize wraps rs2_get_frame_data_size for non-video frames.
func FrameDataSize(frame unsafe.Pointer) (int, error) {
	var e *C.rs2_error
	size := C.rs2_get_frame_data_size((*C.rs2_frame)(frame), &e)
	if err := errorFrom(e); err != nil {
		return 0, err
	}
	return int(size), nil
}

// FrameData copies the frame payload into Go memory. Copying at the boundary
// keeps the slice valid after the frame handle is released.
func FrameData(frame unsafe.Pointer) ([]byte, error) {
	size, err := FrameDataSize(frame)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}

	var e *C.rs2_error
	ptr := C.rs2_get_frame_data((*C.rs2_frame)(frame), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return C.GoBytes(unsafe.Pointer(ptr), C.int(size)), nil
}

// FrameTimestamp wraps rs2_get_frame_timestamp (milliseconds since epoch of
// the frame's timestamp domain).
func FrameTimestamp(frame unsafe.Pointer) (float64, error) {
	var e *C.rs2_error
	ts := C.rs2_get_frame_timestamp((*C.rs2_frame)(frame), &e)
	if err := errorFrom(e); err != nil {
		return 0, err
	}
	return float64(ts), nil
}

// FrameTimestampDomain wraps rs2_get_frame_timestamp_domain.
func FrameTimestampDomain(frame unsafe.Pointer) (int32, error) {
	var e *C.rs2_error
	d := C.rs2_get_frame_timestamp_domain((*C.rs2_frame)(frame), &e)
	if err := errorFrom(e); err != nil {
		return 0, err
	}
	return int32(d), nil
}

// FrameStreamProfile wraps rs2_get_frame_stream_profile. The handle is owned
// by the frame and must not outlive it.
func FrameStreamProfile(frame unsafe.Pointer) (unsafe.Pointer, error) {
	var e *C.rs2_error
	sp := C.rs2_get_frame_stream_profile((*C.rs2_frame)(frame), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return unsafe.Pointer(sp), nil
}

// SupportsFrameMetadata wraps rs2_supports_frame_metadata.
func SupportsFrameMetadata(frame unsafe.Pointer, kind int32) (bool, error) {
	var e *C.rs2_error
	v := C.rs2_supports_frame_metadata((*C.rs2_frame)(frame), C.rs2_frame_metadata_value(kind), &e)
	if err := errorFrom(e); err != nil {
		return false, err
	}
	return v != 0, nil
}

// FrameMetadata wraps rs2_get_frame_metadata.
func FrameMetadata(frame unsafe.Pointer, kind int32) (int64, error) {
	var e *C.rs2_error
	v := C.rs2_get_frame_metadata((*C.rs2_frame)(frame), C.rs2_frame_metadata_value(kind), &e)
	if err := errorFrom(e); err != nil {
		return 0, err
	}
	return int64(v), nil
}

// FrameSensor wraps rs2_get_frame_sensor. Returns an owned sensor handle.
func FrameSensor(frame unsafe.Pointer) (unsafe.Pointer, error) {
	var e *C.rs2_error
	s := C.rs2_get_frame_sensor((*C.rs2_frame)(frame), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return unsafe.Pointer(s), nil
}

// DepthFrameDistance wraps rs2_depth_frame_get_distance (meters at a pixel).
func DepthFrameDistance(frame unsafe.Pointer, col, row int) (float32, error) {
	var e *C.rs2_error
	d := C.rs2_depth_frame_get_distance((*C.rs2_frame)(frame), C.int(col), C.int(row), &e)
	if err := errorFrom(e); err != nil {
		return 0, err
	}
	return float32(d), nil
}

// DepthStereoFrameBaseline wraps rs2_depth_stereo_frame_get_baseline.
func DepthStereoFrameBaseline(frame unsafe.Pointer) (float32, error) {
	var e *C.rs2_error
	b := C.rs2_depth_stereo_frame_get_baseline((*C.rs2_frame)(frame), &e)
	if err := errorFrom(e); err != nil {
		return 0, err
	}
	return float32(b), nil
}

// PoseFrameData wraps rs2_pose_frame_get_pose_data.
func PoseFrameData(frame unsafe.Pointer) (Pose, error) {
	var (
		e *C.rs2_error
		p C.rs2_pose
	)
	C.rs2_pose_frame_get_pose_data((*C.rs2_frame)(frame), &p, &e)
	if err := errorFrom(e); err != nil {
		return Pose{}, err
	}

	return Pose{
		Translation:         [3]float32{float32(p.translation.x), float32(p.translation.y), float32(p.translation.z)},
		Velocity:            [3]float32{float32(p.velocity.x), float32(p.velocity.y), float32(p.velocity.z)},
		Acceleration:        [3]float32{float32(p.acceleration.x), float32(p.acceleration.y), float32(p.acceleration.z)},
		Rotation:            [4]float32{float32(p.rotation.x), float32(p.rotation.y), float32(p.rotation.z), float32(p.rotation.w)},
		AngularVelocity:     [3]float32{float32(p.angular_velocity.x), float32(p.angular_velocity.y), float32(p.angular_velocity.z)},
		AngularAcceleration: [3]float32{float32(p.angular_acceleration.x), float32(p.angular_acceleration.y), float32(p.angular_acceleration.z)},
		TrackerConfidence:   uint32(p.tracker_confidence),
		MapperConfidence:    uint32(p.mapper_confidence),
	}, nil
}

// FramePointsCount wraps rs2_get_frame_points_count.
func FramePointsCount(frame unsafe.Pointer) (int, error) {
	var e *C.rs2_error
	n := C.rs2_get_frame_points_count((*C.rs2_frame)(frame), &e)
	if err := errorFrom(e); err != nil {
		return 0, err
	}
	return int(n), nil
}

// FrameVertices copies the point-cloud vertex buffer.
func FrameVertices(frame unsafe.Pointer) ([]Vertex, error) {
	count, err := FramePointsCount(frame)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	var e *C.rs2_error
	ptr := C.rs2_get_frame_vertices((*C.rs2_frame)(frame), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}

	src := unsafe.Slice(ptr, count)
	out := make([]Vertex, count)
	for i, v := range src {
		out[i] = Vertex{float32(v.xyz[0]), float32(v.xyz[1]), float32(v.xyz[2])}
	}
	return out, nil
}

// FrameTextureCoordinates copies the point-cloud UV buffer. librealsense2
// stores texture coordinates as rs2_pixel (two ints) but documents and uses
// them as two floats; the reinterpretation below matches the C++ wrapper.
func FrameTextureCoordinates(frame unsafe.Pointer) ([]TextureCoordinate, error) {
	count, err := FramePointsCount(frame)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	var e *C.rs2_error
	ptr := C.rs2_get_frame_texture_coordinates((*C.rs2_frame)(frame), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}

	src := unsafe.Slice((*[2]float32)(unsafe.Pointer(ptr)), count)
	out := make([]TextureCoordinate, count)
	for i, uv := range src {
		out[i] = TextureCoordinate{uv[0], uv[1]}
	}
	return out, nil
}
