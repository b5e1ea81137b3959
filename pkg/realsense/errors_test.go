package realsense

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/w-utter/realsense-go/internal/bindings"
)

func TestRemapErrorNil(t *testing.T) {
	if err := remapError(nil); err != nil {
		t.Fatalf("remapError(nil) = %v", err)
	}
}

func TestRemapErrorNative(t *testing.T) {
	native := &bindings.NativeError{
		Exception: int32(ExceptionInvalidValue),
		Message:   "out of range value for argument \"exposure\"",
		Function:  "rs2_set_option",
		Args:      "options:0x1, option:Exposure, value:-1",
	}

	err := remapError(native)

	var rsErr *Error
	if !errors.As(err, &rsErr) {
		t.Fatalf("remapError returned %T, want *Error", err)
	}
	if rsErr.Kind != ExceptionInvalidValue {
		t.Fatalf("Kind = %v, want %v", rsErr.Kind, ExceptionInvalidValue)
	}
	if rsErr.Message != native.Message || rsErr.Function != native.Function || rsErr.Args != native.Args {
		t.Fatalf("fields not carried over: %+v", rsErr)
	}
	if !strings.Contains(rsErr.Error(), "rs2_set_option") {
		t.Fatalf("Error() should name the failed call: %q", rsErr.Error())
	}
}

func TestRemapErrorPassthrough(t *testing.T) {
	wrapped := fmt.Errorf("query devices: %w", bindings.ErrNotBuilt)
	if got := remapError(wrapped); !errors.Is(got, ErrNotBuilt) {
		t.Fatalf("ErrNotBuilt lost in remap: %v", got)
	}

	sentinel := errors.New("unrelated")
	if got := remapError(sentinel); got != sentinel {
		t.Fatalf("unrelated error rewritten: %v", got)
	}
}

func TestIsFrameTimeout(t *testing.T) {
	timeoutErr := remapError(&bindings.NativeError{
		Exception: int32(ExceptionUnknown),
		Message:   "Frame didn't arrive within 15000",
		Function:  "rs2_pipeline_wait_for_frames",
	})
	if !isFrameTimeout(timeoutErr) {
		t.Fatalf("wait-for-frames expiry not recognized: %v", timeoutErr)
	}

	otherErr := remapError(&bindings.NativeError{
		Exception: int32(ExceptionCameraDisconnected),
		Message:   "device disconnected",
	})
	if isFrameTimeout(otherErr) {
		t.Fatalf("disconnect misclassified as timeout: %v", otherErr)
	}
	if isFrameTimeout(errors.New("plain")) {
		t.Fatal("plain error misclassified as timeout")
	}
}

func TestExceptionKindStrings(t *testing.T) {
	if got := ExceptionCameraDisconnected.String(); got != "camera disconnected" {
		t.Fatalf("ExceptionCameraDisconnected = %q", got)
	}
	if got := ExceptionKind(99).String(); got != "exception(99)" {
		t.Fatalf("unknown kind = %q", got)
	}
}

func TestErrorStringWithoutFunction(t *testing.T) {
	err := &Error{Kind: ExceptionIO, Message: "failed to open file"}
	want := "realsense: io: failed to open file"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}
