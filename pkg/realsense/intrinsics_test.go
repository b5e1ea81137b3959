package realsense

import (
	"math"
	"testing"
)

func TestExtrinsicsTransformIdentity(t *testing.T) {
	identity := Extrinsics{
		Rotation: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
	}
	p := [3]float32{0.1, -0.2, 1.5}
	if got := identity.Transform(p); got != p {
		t.Fatalf("identity transform moved point: %v -> %v", p, got)
	}
}

func TestExtrinsicsTransformRotationAndTranslation(t *testing.T) {
	// 90 degree rotation around Z (column-major), then shift along X.
	ex := Extrinsics{
		Rotation:    [9]float32{0, 1, 0, -1, 0, 0, 0, 0, 1},
		Translation: [3]float32{1, 0, 0},
	}

	got := ex.Transform([3]float32{1, 0, 0})
	want := [3]float32{1, 1, 0}
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Fatalf("Transform = %v, want %v", got, want)
		}
	}
}

func TestDecodeMotionSample(t *testing.T) {
	// 1.0, -2.0, 0.5 as little-endian float32.
	data := []byte{
		0x00, 0x00, 0x80, 0x3f,
		0x00, 0x00, 0x00, 0xc0,
		0x00, 0x00, 0x00, 0x3f,
	}

	got, err := decodeMotionSample(data)
	if err != nil {
		t.Fatalf("decodeMotionSample: %v", err)
	}
	if want := [3]float32{1, -2, 0.5}; got != want {
		t.Fatalf("decodeMotionSample = %v, want %v", got, want)
	}
}

func TestDecodeMotionSampleShort(t *testing.T) {
	if _, err := decodeMotionSample(make([]byte, 8)); err == nil {
		t.Fatal("short payload accepted")
	}
}
