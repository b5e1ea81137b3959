// Package realsense is an ownership-safe Go API over librealsense2.
//
// Every exported type owns exactly one native handle and mirrors the
// library's documented parent/child graph: Context owns the driver session,
// devices are enumerated from it, sensors from a device, stream profiles
// from a sensor or a frame, and pipelines deliver composite frames that
// decompose into typed frames. A child must not outlive its parent; the
// wrapper keeps that cheap to get right by caching plain-Go data (profile
// fields, frame geometry, pixel payloads) at construction and releasing
// native handles deterministically through Close. Finalizers exist only as
// a leak backstop.
//
// librealsense2 is not safe for uncoordinated concurrent pipeline operations
// across threads; callers serialize access to a device themselves.
//
// Binaries built without cgo (or on Windows) still compile: constructors
// then fail with ErrNotBuilt, which callers can treat as "no camera support
// in this build".
package realsense
