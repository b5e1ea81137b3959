package realsense

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned by PixelAt for formats the decoder does
// not understand (compressed or packed raw layouts).
var ErrUnsupportedFormat = errors.New("realsense: pixel format not supported for decoding")

// Pixel is one decoded pixel value. Type-switch on the concrete type, which
// follows the frame's Format: PixelZ16 for FormatZ16, PixelYUYV for
// FormatYUYV, and so on.
type Pixel interface {
	pixel()
}

// PixelZ16 is a depth sample in device depth units.
type PixelZ16 struct{ Depth uint16 }

// PixelDisparity16 is a stereo disparity sample.
type PixelDisparity16 struct{ Disparity uint16 }

// PixelYUYV is a luma sample with the chroma shared by its 2-pixel group.
type PixelYUYV struct{ Y, U, V uint8 }

// PixelUYVY is PixelYUYV with the alternate byte order on the wire.
type PixelUYVY struct{ Y, U, V uint8 }

// PixelRGB8 is an 8-bit RGB sample.
type PixelRGB8 struct{ R, G, B uint8 }

// PixelBGR8 is an 8-bit BGR sample.
type PixelBGR8 struct{ B, G, R uint8 }

// PixelRGBA8 is an 8-bit RGBA sample.
type PixelRGBA8 struct{ R, G, B, A uint8 }

// PixelBGRA8 is an 8-bit BGRA sample.
type PixelBGRA8 struct{ B, G, R, A uint8 }

// PixelY8 is an 8-bit luminance sample.
type PixelY8 struct{ Y uint8 }

// PixelY16 is a 16-bit luminance sample.
type PixelY16 struct{ Y uint16 }

// PixelRaw8 is an uninterpreted 8-bit sample.
type PixelRaw8 struct{ Value uint8 }

func (PixelZ16) pixel()         {}
func (PixelDisparity16) pixel() {}
func (PixelYUYV) pixel()        {}
func (PixelUYVY) pixel()        {}
func (PixelRGB8) pixel()        {}
func (PixelBGR8) pixel()        {}
func (PixelRGBA8) pixel()       {}
func (PixelBGRA8) pixel()       {}
func (PixelY8) pixel()          {}
func (PixelY16) pixel()         {}
func (PixelRaw8) pixel()        {}

// pixelAt decodes one pixel from a raw frame payload. stride is the row
// length in bytes; 16-bit quantities are little-endian, matching the wire
// layout librealsense2 delivers on every supported platform.
func pixelAt(data []byte, format Format, stride, width, height, x, y int) (Pixel, error) {
	if x < 0 || x >= width || y < 0 || y >= height {
		return nil, fmt.Errorf("realsense: pixel (%d, %d) outside %dx%d frame", x, y, width, height)
	}

	switch format {
	case FormatYUYV:
		// Two pixels share one [y0 u y1 v] group.
		group := data[y*stride+(x/2)*4:]
		p := PixelYUYV{U: group[1], V: group[3]}
		if x%2 == 0 {
			p.Y = group[0]
		} else {
			p.Y = group[2]
		}
		return p, nil

	case FormatUYVY:
		// Same grouping as YUYV with the order [u y0 v y1].
		group := data[y*stride+(x/2)*4:]
		p := PixelUYVY{U: group[0], V: group[2]}
		if x%2 == 0 {
			p.Y = group[1]
		} else {
			p.Y = group[3]
		}
		return p, nil

	case FormatRGB8:
		px := data[y*stride+x*3:]
		return PixelRGB8{R: px[0], G: px[1], B: px[2]}, nil

	case FormatBGR8:
		px := data[y*stride+x*3:]
		return PixelBGR8{B: px[0], G: px[1], R: px[2]}, nil

	case FormatRGBA8:
		px := data[y*stride+x*4:]
		return PixelRGBA8{R: px[0], G: px[1], B: px[2], A: px[3]}, nil

	case FormatBGRA8:
		px := data[y*stride+x*4:]
		return PixelBGRA8{B: px[0], G: px[1], R: px[2], A: px[3]}, nil

	case FormatZ16:
		return PixelZ16{Depth: binary.LittleEndian.Uint16(data[y*stride+x*2:])}, nil

	case FormatDisparity16:
		return PixelDisparity16{Disparity: binary.LittleEndian.Uint16(data[y*stride+x*2:])}, nil

	case FormatY16:
		return PixelY16{Y: binary.LittleEndian.Uint16(data[y*stride+x*2:])}, nil

	case FormatY8:
		return PixelY8{Y: data[y*stride+x]}, nil

	case FormatRaw8:
		return PixelRaw8{Value: data[y*stride+x]}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
