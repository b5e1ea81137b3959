package preview

import (
	"bytes"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w-utter/realsense-go/pkg/realsense"
)

func rgbImage(w, h int) Image {
	data := make([]byte, w*h*3)
	for i := range data {
		data[i] = byte(i * 7)
	}
	return Image{Data: data, Format: realsense.FormatRGB8, Width: w, Height: h, Stride: w * 3}
}

func TestEncodeJPEGRGB8(t *testing.T) {
	jpg, err := EncodeJPEG(rgbImage(16, 8), 0)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(jpg))
	require.NoError(t, err)
	assert.Equal(t, 16, decoded.Bounds().Dx())
	assert.Equal(t, 8, decoded.Bounds().Dy())
}

func TestEncodeJPEGFormats(t *testing.T) {
	cases := []struct {
		name   string
		format realsense.Format
		bpp    int
	}{
		{"bgr8", realsense.FormatBGR8, 3},
		{"rgba8", realsense.FormatRGBA8, 4},
		{"bgra8", realsense.FormatBGRA8, 4},
		{"yuyv", realsense.FormatYUYV, 2},
		{"uyvy", realsense.FormatUYVY, 2},
		{"y8", realsense.FormatY8, 1},
		{"z16", realsense.FormatZ16, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			const w, h = 8, 4
			img := Image{
				Data:   make([]byte, w*h*tc.bpp),
				Format: tc.format,
				Width:  w,
				Height: h,
				Stride: w * tc.bpp,
			}
			for i := range img.Data {
				img.Data[i] = byte(i)
			}

			jpg, err := EncodeJPEG(img, 90)
			require.NoError(t, err)

			decoded, err := jpeg.Decode(bytes.NewReader(jpg))
			require.NoError(t, err)
			assert.Equal(t, w, decoded.Bounds().Dx())
			assert.Equal(t, h, decoded.Bounds().Dy())
		})
	}
}

func TestEncodeJPEGStridePadding(t *testing.T) {
	// 2 pixels per row, rows padded to 16 bytes. The padding must not leak
	// into the output geometry.
	img := Image{
		Data:   make([]byte, 2*16),
		Format: realsense.FormatRGB8,
		Width:  2,
		Height: 2,
		Stride: 16,
	}

	jpg, err := EncodeJPEG(img, 0)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(jpg))
	require.NoError(t, err)
	assert.Equal(t, 2, decoded.Bounds().Dx())
	assert.Equal(t, 2, decoded.Bounds().Dy())
}

func TestEncodeJPEGZ16AllZero(t *testing.T) {
	img := Image{
		Data:   make([]byte, 8*4*2),
		Format: realsense.FormatZ16,
		Width:  8,
		Height: 4,
		Stride: 16,
	}

	_, err := EncodeJPEG(img, 0)
	assert.NoError(t, err)
}

func TestEncodeJPEGRejectsUnsupported(t *testing.T) {
	img := Image{
		Data:   make([]byte, 64),
		Format: realsense.FormatMotionXYZ32F,
		Width:  4,
		Height: 4,
		Stride: 16,
	}

	_, err := EncodeJPEG(img, 0)
	assert.Error(t, err)
}

func TestEncodeJPEGRejectsBadGeometry(t *testing.T) {
	_, err := EncodeJPEG(Image{Format: realsense.FormatRGB8}, 0)
	assert.Error(t, err)
}
