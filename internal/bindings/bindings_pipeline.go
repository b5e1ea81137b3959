//go:build cgo && !windows

package bindings

/*
#include <librealsense2/rs.h>
#include <librealsense2/h/rs_pipeline.h>
#include <librealsense2/h/rs_config.h>
*/
import "C"

import (
	"unsafe"
)

// CreatePipeline wraps rs2_create_pipeline. Release with DeletePipeline.
func CreatePipeline(ctx unsafe.Pointer) (unsafe.Pointer, error) {
	var e *C.rs2_error
	p := C.rs2_create_pipeline((*C.rs2_context)(ctx), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return unsafe.Pointer(p), nil
}

func DeletePipeline(pipe unsafe.Pointer) {
	if pipe != nil {
		C.rs2_delete_pipeline((*C.rs2_pipeline)(pipe))
	}
}

// PipelineStart wraps rs2_pipeline_start. Returns an owned pipeline profile
// handle (release with DeletePipelineProfile).
func PipelineStart(pipe unsafe.Pointer) (unsafe.Pointer, error) {
	var e *C.rs2_error
	pp := C.rs2_pipeline_start((*C.rs2_pipeline)(pipe), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return unsafe.Pointer(pp), nil
}

// PipelineStartWithConfig wraps rs2_pipeline_start_with_config.
func PipelineStartWithConfig(pipe, cfg unsafe.Pointer) (unsafe.Pointer, error) {
	var e *C.rs2_error
	pp := C.rs2_pipeline_start_with_config((*C.rs2_pipeline)(pipe), (*C.rs2_config)(cfg), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return unsafe.Pointer(pp), nil
}

// PipelineStop wraps rs2_pipeline_stop.
func PipelineStop(pipe unsafe.Pointer) error {
	var e *C.rs2_error
	C.rs2_pipeline_stop((*C.rs2_pipeline)(pipe), &e)
	return errorFrom(e)
}

// PipelineWaitForFrames wraps rs2_pipeline_wait_for_frames. Returns an owned
// composite frame handle (release with ReleaseFrame).
func PipelineWaitForFrames(pipe unsafe.Pointer, timeoutMS uint32) (unsafe.Pointer, error) {
	var e *C.rs2_error
	f := C.rs2_pipeline_wait_for_frames((*C.rs2_pipeline)(pipe), C.uint(timeoutMS), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return unsafe.Pointer(f), nil
}

// PipelinePollForFrames wraps rs2_pipeline_poll_for_frames. ok is false when
// no frame was ready.
func PipelinePollForFrames(pipe unsafe.Pointer) (frame unsafe.Pointer, ok bool, err error) {
	var (
		e *C.rs2_error
		f *C.rs2_frame
	)
	ready := C.rs2_pipeline_poll_for_frames((*C.rs2_pipeline)(pipe), &f, &e)
	if err := errorFrom(e); err != nil {
		return nil, false, err
	}
	if ready == 0 {
		return nil, false, nil
	}
	return unsafe.Pointer(f), true, nil
}

// ConfigResolve wraps rs2_config_resolve. Returns an owned pipeline profile
// handle.
func ConfigResolve(cfg, pipe unsafe.Pointer) (unsafe.Pointer, error) {
	var e *C.rs2_error
	pp := C.rs2_config_resolve((*C.rs2_config)(cfg), (*C.rs2_pipeline)(pipe), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return unsafe.Pointer(pp), nil
}

// ConfigCanResolve wraps rs2_config_can_resolve.
func ConfigCanResolve(cfg, pipe unsafe.Pointer) (bool, error) {
	var e *C.rs2_error
	v := C.rs2_config_can_resolve((*C.rs2_config)(cfg), (*C.rs2_pipeline)(pipe), &e)
	if err := errorFrom(e); err != nil {
		return false, err
	}
	return v != 0, nil
}

// PipelineProfileDevice wraps rs2_pipeline_profile_get_device. Returns an
// owned device handle.
func PipelineProfileDevice(pp unsafe.Pointer) (unsafe.Pointer, error) {
	var e *C.rs2_error
	dev := C.rs2_pipeline_profile_get_device((*C.rs2_pipeline_profile)(pp), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return unsafe.Pointer(dev), nil
}

// PipelineProfileStreams collects the profile's stream handles. The stream
// list is deleted before returning; the profile handles are owned by the
// pipeline's device and must not be deleted by the caller.
func PipelineProfileStreams(pp unsafe.Pointer) ([]unsafe.Pointer, error) {
	var e *C.rs2_error
	list := C.rs2_pipeline_profile_get_streams((*C.rs2_pipeline_profile)(pp), &e)
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

func DeletePipelineProfile(pp unsafe.Pointer) {
	if pp != nil {
		C.rs2_delete_pipeline_profile((*C.rs2_pipeline_profile)(pp))
	}
}
