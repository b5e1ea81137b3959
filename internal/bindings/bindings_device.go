//go:build cgo && !windows

package bindings

/*
#include <librealsense2/rs.h>
*/
import "C"

import (
	"unsafe"
)

// QueryDevices enumerates devices matching the product-line mask. The device
// list itself is consumed and deleted here; the returned handles are owned by
// the caller and must each be released with DeleteDevice. Devices that fail
// to construct are skipped, matching the enumeration semantics of the C++
// context wrapper.
func QueryDevices(ctx unsafe.Pointer, productMask int32) ([]unsafe.Pointer, error) {
	var e *C.rs2_error
	list := C.rs2_query_devices_ex((*C.rs2_context)(ctx), C.int(productMask), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	defer C.rs2_delete_device_list(list)

	count := C.rs2_get_device_count(list, &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}

	devices := make([]unsafe.Pointer, 0, int(count))
	for i := C.int(0); i < count; i++ {
		var le *C.rs2_error
		dev := C.rs2_create_device(list, i, &le)
		if err := errorFrom(le); err != nil {
			continue
		}
		devices = append(devices, unsafe.Pointer(dev))
	}
	return devices, nil
}

func DeleteDevice(dev unsafe.Pointer) {
	if dev != nil {
		C.rs2_delete_device((*C.rs2_device)(dev))
	}
}

// SupportsDeviceInfo wraps rs2_supports_device_info.
func SupportsDeviceInfo(dev unsafe.Pointer, info int32) (bool, error) {
	var e *C.rs2_error
	v := C.rs2_supports_device_info((*C.rs2_device)(dev), C.rs2_camera_info(info), &e)
	if err := errorFrom(e); err != nil {
		return false, err
	}
	return v != 0, nil
}

// DeviceInfo wraps rs2_get_device_info. The C string is copied.
func DeviceInfo(dev unsafe.Pointer, info int32) (string, error) {
	var e *C.rs2_error
	v := C.rs2_get_device_info((*C.rs2_device)(dev), C.rs2_camera_info(info), &e)
	if err := errorFrom(e); err != nil {
		return "", err
	}
	return C.GoString(v), nil
}

// HardwareReset wraps rs2_hardware_reset. The device handle is invalid for
// further calls afterwards; the caller still releases it with DeleteDevice.
func HardwareReset(dev unsafe.Pointer) error {
	var e *C.rs2_error
	C.rs2_hardware_reset((*C.rs2_device)(dev), &e)
	return errorFrom(e)
}

// QuerySensors enumerates the device's sensors. The sensor list is deleted
// here; returned handles are owned by the caller (DeleteSensor). Sensors that
// fail to construct are skipped.
func QuerySensors(dev unsafe.Pointer) ([]unsafe.Pointer, error) {
	var e *C.rs2_error
	list := C.rs2_query_sensors((*C.rs2_device)(dev), &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	defer C.rs2_delete_sensor_list(list)

	count := C.rs2_get_sensors_count(list, &e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}

	sensors := make([]unsafe.Pointer, 0, int(count))
	for i := C.int(0); i < count; i++ {
		var le *C.rs2_error
		s := C.rs2_create_sensor(list, i, &le)
		if err := errorFrom(le); err != nil {
			continue
		}
		sensors = append(sensors, unsafe.Pointer(s))
	}
	return sensors, nil
}
