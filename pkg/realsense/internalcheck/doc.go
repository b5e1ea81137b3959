// Package internalcheck provides internal validation and testing utilities.
//
// This package contains static checks enforced as tests: the raw bindings
// layer stays confined behind pkg/realsense, and cgo never leaks into other
// packages. It is not intended for external use and the API may change
// without notice.
package internalcheck
