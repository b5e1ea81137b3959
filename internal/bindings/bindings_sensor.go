//go:build cgo && !windows

package bindings

/*
#include <librealsense2/rs.h>
*/
import "C"

import (
	"unsafe"
)

func DeleteSensor(sensor unsafe.Pointer) {
	if sensor != nil {
		C.rs2_delete_sensor((*C.rs2_sensor)(sensor))
	}
}

// SupportsSensorInfo wraps rs2_supports_sensor_info.
func SupportsSensorInfo(sensor unsafe.Pointer, info int32) (bool, error) {
	var e *C.rs2_error
	v := C.rs2_supports_sensor_info((*C.rs2_sensor)(sensor), C.rs2_camera_info(info), &e)
	if err := errorFrom(e); err != nil {
		return false, err
	}
	return v != 0, nil
}

// SensorInfo wraps rs2_get_sensor_info. The C string is copied.
func SensorInfo(sensor unsafe.Pointer, info int32) (string, error) {
	var e *C.rs2_error
	v := C.rs2_get_sensor_info((*C.rs2_sensor)(sensor), C.rs2_camera_info(info), &e)
	if err := errorFrom(e); err != nil {
		return "", err
	}
	return C.GoString(v), nil
}

// IsSensorExtendableTo wraps rs2_is_sensor_extendable_to.
func IsSensorExtendableTo(sensor unsafe.Pointer, extension int32) (bool, error) {
	var e *C.rs2_error
	v := C.rs2_is_sensor_extendable_to((*C.rs2_sensor)(sensor), C.rs2_extension(extension), &e)
	if err := errorFrom(e); err != nil {
		return false, err
	}
	return v != 0, nil
}

// SensorOption wraps rs2_get_option on the sensor's rs2_options interface.
func SensorOption(sensor unsafe.Pointer, option int32) (float32, error) {
	var e *C.rs2_error
	v := C.rs2_get_option((*C.rs2_options)(sensor), C.rs2_option(option), &e)
	if err := errorFrom(e); err != nil {
		return 0, err
	}
	return float32(v), nil
}

// SetSensorOption wraps rs2_set_option on the sensor's rs2_options interface.
func SetSensorOption(sensor unsafe.Pointer, option int32, value float32) error {
	var e *C.rs2_error
	C.rs2_set_option((*C.rs2_options)(sensor), C.rs2_option(option), C.float(value), &e)
	return errorFrom(e)
}

// SensorSupportsOption wraps rs2_supports_option.
func SensorSupportsOption(sensor unsafe.Pointer, option int32) (bool, error) {
	var e *C.rs2_error
	v := C.rs2_supports_option((*C.rs2_options)(sensor), C.rs2_option(option), &e)
	if err := errorFrom(e); err != nil {
		return false, err
	}
	return v != 0, nil
}

// SensorStreamProfiles collects the sensor's stream profile handles. The
// profile list is deleted before returning; the individual profiles remain
// owned by the sensor and must not outlive it, nor be deleted by the caller.
func SensorStreamProfiles(sensor unsafe.Pointer) ([]unsafe.Pointer, error) {
	var e *C.rs2_error
	list := C.rs2_get_stream_profiles((*C.rs2_sensor)(sensor), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	defer C.rs2_delete_stream_profiles_list(list)

	count := C.rs2_get_stream_profiles_count(list, &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}

	profiles := make([]unsafe.Pointer, 0, int(count))
	for i := C.int(0); i < count; i++ {
		var le *C.rs2_error
		sp := C.rs2_get_stream_profile(list, i, &le)
		if err := errorFrom(le); err != nil {
			return nil, err
		}
		profiles = append(profiles, unsafe.Pointer(sp))
	}
	return profiles, nil
}

// GetStreamProfileData wraps rs2_get_stream_profile_data and
// rs2_is_stream_profile_default in one shot.
func GetStreamProfileData(sp unsafe.Pointer) (StreamProfileData, error) {
	var (
		e         *C.rs2_error
		stream    C.rs2_stream
		format    C.rs2_format
		index     C.int
		uniqueID  C.int
		framerate C.int
	)
	C.rs2_get_stream_profile_data((*C.rs2_stream_profile)(sp), &stream, &format, &index, &uniqueID, &framerate, &e)
	if err := errorFrom(e); err != nil {
		return StreamProfileData{}, err
	}

	isDefault := C.rs2_is_stream_profile_default((*C.rs2_stream_profile)(sp), &e)
	if err := errorFrom(e); err != nil {
		return StreamProfileData{}, err
	}

	return StreamProfileData{
		Stream:    int32(stream),
		Format:    int32(format),
		Index:     int32(index),
		UniqueID:  int32(uniqueID),
		Framerate: int32(framerate),
		IsDefault: isDefault != 0,
	}, nil
}

// VideoStreamIntrinsics wraps rs2_get_video_stream_intrinsics.
func VideoStreamIntrinsics(sp unsafe.Pointer) (Intrinsics, error) {
	var (
		e  *C.rs2_error
		in C.rs2_intrinsics
	)
	C.rs2_get_video_stream_intrinsics((*C.rs2_stream_profile)(sp), &in, &e)
	if err := errorFrom(e); err != nil {
		return Intrinsics{}, err
	}

	out := Intrinsics{
		Width:  int32(in.width),
		Height: int32(in.height),
		PPX:    float32(in.ppx),
		PPY:    float32(in.ppy),
		FX:     float32(in.fx),
		FY:     float32(in.fy),
		Model:  int32(in.model),
	}
	for i := 0; i < 5; i++ {
		out.Coeffs[i] = float32(in.coeffs[i])
	}
	return out, nil
}

// MotionIntrinsics wraps rs2_get_motion_intrinsics.
func MotionIntrinsics(sp unsafe.Pointer) (MotionDeviceIntrinsics, error) {
	var (
		e  *C.rs2_error
		in C.rs2_motion_device_intrinsic
	)
	C.rs2_get_motion_intrinsics((*C.rs2_stream_profile)(sp), &in, &e)
	if err := errorFrom(e); err != nil {
		return MotionDeviceIntrinsics{}, err
	}

	var out MotionDeviceIntrinsics
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			out.Data[r][c] = float32(in.data[r][c])
		}
		out.NoiseVariances[r] = float32(in.noise_variances[r])
		out.BiasVariances[r] = float32(in.bias_variances[r])
	}
	return out, nil
}

// GetExtrinsics wraps rs2_get_extrinsics between two stream profiles.
func GetExtrinsics(from, to unsafe.Pointer) (Extrinsics, error) {
	var (
		e  *C.rs2_error
		ex C.rs2_extrinsics
	)
	C.rs2_get_extrinsics((*C.rs2_stream_profile)(from), (*C.rs2_stream_profile)(to), &ex, &e)
	if err := errorFrom(e); err != nil {
		return Extrinsics{}, err
	}

	var out Extrinsics
	for i := 0; i < 9; i++ {
		out.Rotation[i] = float32(ex.rotation[i])
	}
	for i := 0; i < 3; i++ {
		out.Translation[i] = float32(ex.translation[i])
	}
	return out, nil
}

// RegisterExtrinsics wraps rs2_register_extrinsics.
func RegisterExtrinsics(from, to unsafe.Pointer, extrinsics Extrinsics) error {
	var ex C.rs2_extrinsics
	for i := 0; i < 9; i++ {
		ex.rotation[i] = C.float(extrinsics.Rotation[i])
	}
	for i := 0; i < 3; i++ {
		ex.translation[i] = C.float(extrinsics.Translation[i])
	}

	var e *C.rs2_error
	C.rs2_register_extrinsics((*C.rs2_stream_profile)(from), (*C.rs2_stream_profile)(to), ex, &e)
	return errorFrom(e)
}
