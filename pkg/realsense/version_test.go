package realsense

import "testing"

func TestWrapperVersionDefault(t *testing.T) {
	if got := WrapperVersion(); got != "v0.0.0-in-progress" {
		t.Fatalf("WrapperVersion = %q", got)
	}
}
