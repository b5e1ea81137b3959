//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <librealsense2/rs.h>
#include <librealsense2/h/rs_config.h>
*/
import "C"

import (
	"unsafe"
)

// CreateConfig wraps rs2_create_config. Release with DeleteConfig.
func CreateConfig() (unsafe.Pointer, error) {
	var e *C.rs2_error
	cfg := C.rs2_create_config(&e)
	if err := errorFrom(e); err != nil {
		return nil, err
	}
	return unsafe.Pointer(cfg), nil
}

func DeleteConfig(cfg unsafe.Pointer) {
	if cfg != nil {
		C.rs2_delete_config((*C.rs2_config)(cfg))
	}
}

// ConfigEnableStream wraps rs2_config_enable_stream. index -1 lets the
// library pick the stream index; zero width/height/framerate likewise defer
// to the library.
func ConfigEnableStream(cfg unsafe.Pointer, stream, index, width, height, format, framerate int32) error {
	var e *C.rs2_error
	C.rs2_config_enable_stream(
		(*C.rs2_config)(cfg),
		C.rs2_stream(stream),
		C.int(index),
		C.int(width),
		C.int(height),
		C.rs2_format(format),
		C.int(framerate),
		&e,
	)
	return errorFrom(e)
}

// ConfigEnableAllStreams wraps rs2_config_enable_all_stream.
func ConfigEnableAllStreams(cfg unsafe.Pointer) error {
	var e *C.rs2_error
	C.rs2_config_enable_all_stream((*C.rs2_config)(cfg), &e)
	return errorFrom(e)
}

// ConfigEnableDevice wraps rs2_config_enable_device, pinning the config to a
// device serial number.
func ConfigEnableDevice(cfg unsafe.Pointer, serial string) error {
	cserial := C.CString(serial)
	defer C.free(unsafe.Pointer(cserial))

	var e *C.rs2_error
	C.rs2_config_enable_device((*C.rs2_config)(cfg), cserial, &e)
	return errorFrom(e)
}

// ConfigEnableDeviceFromFile wraps
// rs2_config_enable_device_from_file_repeat_option.
func ConfigEnableDeviceFromFile(cfg unsafe.Pointer, path string, loop bool) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	repeat := C.int(0)
	if loop {
		repeat = 1
	}

	var e *C.rs2_error
	C.rs2_config_enable_device_from_file_repeat_option((*C.rs2_config)(cfg), cpath, repeat, &e)
	return errorFrom(e)
}

// ConfigEnableRecordToFile wraps rs2_config_enable_record_to_file.
func ConfigEnableRecordToFile(cfg unsafe.Pointer, path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var e *C.rs2_error
	C.rs2_config_enable_record_to_file((*C.rs2_config)(cfg), cpath, &e)
	return errorFrom(e)
}

// ConfigDisableStream wraps rs2_config_disable_stream.
func ConfigDisableStream(cfg unsafe.Pointer, stream int32) error {
	var e *C.rs2_error
	C.rs2_config_disable_stream((*C.rs2_config)(cfg), C.rs2_stream(stream), &e)
	return errorFrom(e)
}

// ConfigDisableIndexedStream wraps rs2_config_disable_indexed_stream.
func ConfigDisableIndexedStream(cfg unsafe.Pointer, stream, index int32) error {
	var e *C.rs2_error
	C.rs2_config_disable_indexed_stream((*C.rs2_config)(cfg), C.rs2_stream(stream), C.int(index), &e)
	return errorFrom(e)
}

// ConfigDisableAllStreams wraps rs2_config_disable_all_streams.
func ConfigDisableAllStreams(cfg unsafe.Pointer) error {
	var e *C.rs2_error
	C.rs2_config_disable_all_streams((*C.rs2_config)(cfg), &e)
	return errorFrom(e)
}
