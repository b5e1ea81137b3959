// Package bindings is the raw cgo layer over the librealsense2 C ABI.
//
// Every exported function mirrors one or a small fixed sequence of rs2_*
// calls and contains no policy: error pointers are converted to *NativeError,
// C buffers are copied at the boundary, and ownership of returned handles is
// documented per function. This package should ONLY be imported by
// pkg/realsense; the layering test in pkg/realsense/internalcheck enforces
// that.
//
// Builds without cgo (or on Windows) compile against bindings_stub.go, whose
// functions return ErrNotBuilt so that the pure-Go parts of the module remain
// testable everywhere.
package bindings
