package bindings

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary (cgo disabled, unsupported platform, or librealsense2
	// not installed at build time). Callers can use this to fall back to
	// device-less behavior.
	ErrNotBuilt = errors.New("realsense/internal/bindings: native bindings not built")
)

// NativeError carries an rs2_error verbatim: the librealsense2 exception
// class plus the message and the failed function/arguments reported by the
// library. The pkg/realsense layer remaps this into its public error type.
type NativeError struct {
	// Exception is the rs2_exception_type ordinal.
	Exception int32
	Message   string
	Function  string
	Args      string
}

func (e *NativeError) Error() string {
	if e.Function != "" {
		return fmt.Sprintf("%s(%s): %s", e.Function, e.Args, e.Message)
	}
	return e.Message
}

// StreamProfileData is the result of rs2_get_stream_profile_data plus the
// rs2_is_stream_profile_default flag, captured in one shot at wrap time.
type StreamProfileData struct {
	Stream    int32
	Format    int32
	Index     int32
	UniqueID  int32
	Framerate int32
	IsDefault bool
}

// VideoFrameGeometry bundles the per-frame geometry queries
// (rs2_get_frame_width/height/stride_in_bytes/bits_per_pixel/data_size).
type VideoFrameGeometry struct {
	Width        int32
	Height       int32
	StrideBytes  int32
	BitsPerPixel int32
	DataSize     int32
}

// Intrinsics mirrors rs2_intrinsics.
type Intrinsics struct {
	Width  int32
	Height int32
	PPX    float32
	PPY    float32
	FX     float32
	FY     float32
	Model  int32
	Coeffs [5]float32
}

// MotionDeviceIntrinsics mirrors rs2_motion_device_intrinsic.
type MotionDeviceIntrinsics struct {
	// Data holds a 3x4 matrix: scale on the diagonal of the left 3x3 block,
	// cross-axis terms off it, and bias in the last column.
	Data           [3][4]float32
	NoiseVariances [3]float32
	BiasVariances  [3]float32
}

// Extrinsics mirrors rs2_extrinsics: a column-major 3x3 rotation and a
// translation in meters.
type Extrinsics struct {
	Rotation    [9]float32
	Translation [3]float32
}

// Pose mirrors rs2_pose.
type Pose struct {
	Translation         [3]float32
	Velocity            [3]float32
	Acceleration        [3]float32
	Rotation            [4]float32
	AngularVelocity     [3]float32
	AngularAcceleration [3]float32
	TrackerConfidence   uint32
	MapperConfidence    uint32
}

// Vertex is one element of the buffer returned by rs2_get_frame_vertices,
// in meters relative to the depth sensor origin.
type Vertex [3]float32

// TextureCoordinate is one element of rs2_get_frame_texture_coordinates,
// normalized UV into the mapped texture frame.
type TextureCoordinate [2]float32
