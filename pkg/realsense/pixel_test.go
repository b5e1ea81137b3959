package realsense

import (
	"errors"
	"testing"
)

func TestPixelAtYUYV(t *testing.T) {
	// One row, four pixels, two [y0 u y1 v] groups.
	data := []byte{
		10, 100, 20, 200,
		30, 110, 40, 210,
	}

	cases := []struct {
		x    int
		want PixelYUYV
	}{
		{0, PixelYUYV{Y: 10, U: 100, V: 200}},
		{1, PixelYUYV{Y: 20, U: 100, V: 200}},
		{2, PixelYUYV{Y: 30, U: 110, V: 210}},
		{3, PixelYUYV{Y: 40, U: 110, V: 210}},
	}
	for _, tc := range cases {
		got, err := pixelAt(data, FormatYUYV, 8, 4, 1, tc.x, 0)
		if err != nil {
			t.Fatalf("pixelAt(%d, 0): %v", tc.x, err)
		}
		if got != tc.want {
			t.Fatalf("pixelAt(%d, 0) = %+v, want %+v", tc.x, got, tc.want)
		}
	}
}

func TestPixelAtUYVY(t *testing.T) {
	data := []byte{100, 10, 200, 20}

	got, err := pixelAt(data, FormatUYVY, 4, 2, 1, 1, 0)
	if err != nil {
		t.Fatalf("pixelAt: %v", err)
	}
	want := PixelUYVY{Y: 20, U: 100, V: 200}
	if got != want {
		t.Fatalf("pixelAt = %+v, want %+v", got, want)
	}
}

func TestPixelAtRGBOrders(t *testing.T) {
	// Two pixels per row, stride padded to 8 bytes.
	data := []byte{
		1, 2, 3, 4, 5, 6, 0, 0,
		7, 8, 9, 10, 11, 12, 0, 0,
	}

	rgb, err := pixelAt(data, FormatRGB8, 8, 2, 2, 1, 1)
	if err != nil {
		t.Fatalf("pixelAt rgb8: %v", err)
	}
	if want := (PixelRGB8{R: 10, G: 11, B: 12}); rgb != want {
		t.Fatalf("rgb8 = %+v, want %+v", rgb, want)
	}

	bgr, err := pixelAt(data, FormatBGR8, 8, 2, 2, 1, 1)
	if err != nil {
		t.Fatalf("pixelAt bgr8: %v", err)
	}
	if want := (PixelBGR8{B: 10, G: 11, R: 12}); bgr != want {
		t.Fatalf("bgr8 = %+v, want %+v", bgr, want)
	}
}

func TestPixelAtRGBA(t *testing.T) {
	data := []byte{1, 2, 3, 4}

	rgba, err := pixelAt(data, FormatRGBA8, 4, 1, 1, 0, 0)
	if err != nil {
		t.Fatalf("pixelAt rgba8: %v", err)
	}
	if want := (PixelRGBA8{R: 1, G: 2, B: 3, A: 4}); rgba != want {
		t.Fatalf("rgba8 = %+v, want %+v", rgba, want)
	}

	bgra, err := pixelAt(data, FormatBGRA8, 4, 1, 1, 0, 0)
	if err != nil {
		t.Fatalf("pixelAt bgra8: %v", err)
	}
	if want := (PixelBGRA8{B: 1, G: 2, R: 3, A: 4}); bgra != want {
		t.Fatalf("bgra8 = %+v, want %+v", bgra, want)
	}
}

func TestPixelAt16BitFormats(t *testing.T) {
	// 0x1234 little-endian at pixel (1, 0).
	data := []byte{0, 0, 0x34, 0x12}

	z, err := pixelAt(data, FormatZ16, 4, 2, 1, 1, 0)
	if err != nil {
		t.Fatalf("pixelAt z16: %v", err)
	}
	if want := (PixelZ16{Depth: 0x1234}); z != want {
		t.Fatalf("z16 = %+v, want %+v", z, want)
	}

	d, err := pixelAt(data, FormatDisparity16, 4, 2, 1, 1, 0)
	if err != nil {
		t.Fatalf("pixelAt disparity16: %v", err)
	}
	if want := (PixelDisparity16{Disparity: 0x1234}); d != want {
		t.Fatalf("disparity16 = %+v, want %+v", d, want)
	}

	y, err := pixelAt(data, FormatY16, 4, 2, 1, 1, 0)
	if err != nil {
		t.Fatalf("pixelAt y16: %v", err)
	}
	if want := (PixelY16{Y: 0x1234}); y != want {
		t.Fatalf("y16 = %+v, want %+v", y, want)
	}
}

func TestPixelAt8BitFormats(t *testing.T) {
	data := []byte{5, 6, 7}

	y, err := pixelAt(data, FormatY8, 3, 3, 1, 2, 0)
	if err != nil {
		t.Fatalf("pixelAt y8: %v", err)
	}
	if want := (PixelY8{Y: 7}); y != want {
		t.Fatalf("y8 = %+v, want %+v", y, want)
	}

	raw, err := pixelAt(data, FormatRaw8, 3, 3, 1, 0, 0)
	if err != nil {
		t.Fatalf("pixelAt raw8: %v", err)
	}
	if want := (PixelRaw8{Value: 5}); raw != want {
		t.Fatalf("raw8 = %+v, want %+v", raw, want)
	}
}

func TestPixelAtOutOfBounds(t *testing.T) {
	data := make([]byte, 16)

	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err := pixelAt(data, FormatZ16, 8, 2, 2, xy[0], xy[1]); err == nil {
			t.Fatalf("pixelAt(%d, %d) succeeded on out-of-bounds pixel", xy[0], xy[1])
		}
	}
}

func TestPixelAtUnsupportedFormat(t *testing.T) {
	_, err := pixelAt(make([]byte, 16), FormatMJPEG, 8, 2, 2, 0, 0)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
