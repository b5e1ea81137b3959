//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -Wno-deprecated-declarations
#cgo LDFLAGS: -lrealsense2
#cgo linux CFLAGS: -I/usr/local/include
#cgo linux LDFLAGS: -L/usr/local/lib
#cgo darwin CFLAGS: -I/usr/local/opt/librealsense/include
#cgo darwin LDFLAGS: -L/usr/local/opt/librealsense/lib

#include <stdlib.h>
#include <librealsense2/rs.h>
#include <librealsense2/h/rs_pipeline.h>
#include <librealsense2/h/rs_config.h>
*/
import "C"

import (
	"unsafe"
)

// errorFrom converts and frees an rs2_error out-parameter. Returns nil when
// the call succeeded. Every binding follows the same shape: declare a nil
// *C.rs2_error, pass its address, and run the result through errorFrom.
func errorFrom(e *C.rs2_error) error {
	if e == nil {
		return nil
	}
	ne := &NativeError{
		Exception: int32(C.rs2_get_librealsense_exception_type(e)),
		Message:   C.GoString(C.rs2_get_error_message(e)),
		Function:  C.GoString(C.rs2_get_failed_function(e)),
		Args:      C.GoString(C.rs2_get_failed_args(e)),
	}
	C.rs2_free_error(e)
	return ne
}

// APIVersion reports the runtime librealsense2 API version encoded as
// major*10000 + minor*100 + patch.
func APIVersion() (int32, error) {
	var e *C.rs2_error
	v := C.rs2_get_api_version(&e)
	if err := errorFrom(e); err != nil {
		return 0, err
	}
	return int32(v), nil
}

// CreateContext wraps rs2_create_context. The returned handle owns the
// native context and must be released with DeleteContext.
func CreateContext() (unsafe.Pointer, error) {
	var e *C.rs2_error
	ptr := C.rs2_create_context(C.RS2_API_VERSION, &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return unsafe.Pointer(ptr), nil
}

func DeleteContext(ctx unsafe.Pointer) {
	if ctx != nil {
		C.rs2_delete_context((*C.rs2_context)(ctx))
	}
}

// ContextAddDevice wraps rs2_context_add_device, registering a playback
// device backed by a recorded file.
func ContextAddDevice(ctx unsafe.Pointer, path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var e *C.rs2_error
	C.rs2_context_add_device((*C.rs2_context)(ctx), cpath, &e)
	return errorFrom(e)
}

// ContextRemoveDevice wraps rs2_context_remove_device.
func ContextRemoveDevice(ctx unsafe.Pointer, path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var e *C.rs2_error
	C.rs2_context_remove_device((*C.rs2_context)(ctx), cpath, &e)
	return errorFrom(e)
}

// CreateDeviceHub wraps rs2_create_device_hub. Release with DeleteDeviceHub.
func CreateDeviceHub(ctx unsafe.Pointer) (unsafe.Pointer, error) {
	var e *C.rs2_error
	ptr := C.rs2_create_device_hub((*C.rs2_context)(ctx), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return unsafe.Pointer(ptr), nil
}

func DeleteDeviceHub(hub unsafe.Pointer) {
	if hub != nil {
		C.rs2_delete_device_hub((*C.rs2_device_hub)(hub))
	}
}

// DeviceHubWaitForDevice blocks until any device is connected and returns an
// owned device handle (release with DeleteDevice).
func DeviceHubWaitForDevice(hub unsafe.Pointer) (unsafe.Pointer, error) {
	var e *C.rs2_error
	dev := C.rs2_device_hub_wait_for_device((*C.rs2_device_hub)(hub), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return unsafe.Pointer(dev), nil
}

// DeviceHubIsConnected wraps rs2_device_hub_is_device_connected.
func DeviceHubIsConnected(hub, dev unsafe.Pointer) (bool, error) {
	var e *C.rs2_error
	v := C.rs2_device_hub_is_device_connected((*C.rs2_device_hub)(hub), (*C.rs2_device)(dev), &e)
	if err := errorFrom(e); err != nil {
		return false, err
	}
	return v != 0, nil
}
