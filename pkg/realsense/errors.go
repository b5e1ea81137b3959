package realsense

import (
	"errors"
	"fmt"
	"strings"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// ErrNotBuilt reports that the binary was built without the native
// librealsense2 bindings (cgo disabled or Windows). It is the bindings
// sentinel re-exported so callers never import internal packages.
var ErrNotBuilt = bindings.ErrNotBuilt

var (
	// ErrClosed is returned when an operation is attempted on a handle
	// whose Close has already run.
	ErrClosed = errors.New("realsense: handle is closed")

	// ErrTimeout is returned by ActivePipeline.WaitFrames when no frameset
	// arrived within the deadline.
	ErrTimeout = errors.New("realsense: timed out waiting for frames")

	// ErrNoFrame is returned by frame accessors when the composite frame
	// does not carry a frame of the requested kind.
	ErrNoFrame = errors.New("realsense: no frame of the requested kind")
)

// ExceptionKind is the librealsense2 exception class carried by an Error.
type ExceptionKind int32

const (
	ExceptionUnknown ExceptionKind = iota
	ExceptionCameraDisconnected
	ExceptionBackend
	ExceptionInvalidValue
	ExceptionWrongAPICallSequence
	ExceptionNotImplemented
	ExceptionDeviceInRecoveryMode
	ExceptionIO
)

func (k ExceptionKind) String() string {
	switch k {
	case ExceptionUnknown:
		return "unknown"
	case ExceptionCameraDisconnected:
		return "camera disconnected"
	case ExceptionBackend:
		return "backend"
	case ExceptionInvalidValue:
		return "invalid value"
	case ExceptionWrongAPICallSequence:
		return "wrong API call sequence"
	case ExceptionNotImplemented:
		return "not implemented"
	case ExceptionDeviceInRecoveryMode:
		return "device in recovery mode"
	case ExceptionIO:
		return "io"
	default:
		return fmt.Sprintf("exception(%d)", int32(k))
	}
}

// Error is a failure reported by librealsense2, classified by the library's
// exception type and carrying the failed native call for diagnostics.
type Error struct {
	Kind     ExceptionKind
	Message  string
	Function string
	Args     string
}

func (e *Error) Error() string {
	if e.Function != "" {
		return fmt.Sprintf("realsense: %s: %s(%s): %s", e.Kind, e.Function, e.Args, e.Message)
	}
	return fmt.Sprintf("realsense: %s: %s", e.Kind, e.Message)
}

// remapError converts bindings layer errors to public API errors. ErrNotBuilt
// passes through unchanged so errors.Is keeps working on it.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	var native *bindings.NativeError
	if errors.As(err, &native) {
		return &Error{
			Kind:     ExceptionKind(native.Exception),
			Message:  native.Message,
			Function: native.Function,
			Args:     native.Args,
		}
	}
	return err
}

// isFrameTimeout recognizes the error librealsense2 raises when
// wait_for_frames exceeds its deadline. The library reports it as a plain
// runtime error, so the message is the only signal available.
func isFrameTimeout(err error) bool {
	var rsErr *Error
	if !errors.As(err, &rsErr) {
		return false
	}
	msg := strings.ToLower(rsErr.Message)
	return strings.Contains(msg, "didn't arrive") || strings.Contains(msg, "timeout")
}
