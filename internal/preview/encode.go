package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/w-utter/realsense-go/pkg/realsense"
)

// Image is one raw camera frame handed to the encoder. Data layout follows
// Format; Stride is the row length in bytes.
type Image struct {
	Data   []byte
	Format realsense.Format
	Width  int
	Height int
	Stride int
}

// DefaultQuality is the JPEG quality used when a caller passes 0.
const DefaultQuality = 80

// EncodeJPEG converts a raw frame into a JPEG. Supported formats are RGB8,
// BGR8, RGBA8, BGRA8, YUYV, UYVY, Y8, and Z16 (rendered as 8-bit depth
// grayscale).
func EncodeJPEG(img Image, quality int) ([]byte, error) {
	if quality <= 0 {
		quality = DefaultQuality
	}
	src, err := toImage(img)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("preview: encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func toImage(img Image) (image.Image, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("preview: bad frame geometry %dx%d", img.Width, img.Height)
	}

	switch img.Format {
	case realsense.FormatRGB8:
		return rgbToImage(img, 0, 2), nil
	case realsense.FormatBGR8:
		return rgbToImage(img, 2, 0), nil
	case realsense.FormatRGBA8:
		return rgbaToImage(img, 0, 2), nil
	case realsense.FormatBGRA8:
		return rgbaToImage(img, 2, 0), nil
	case realsense.FormatYUYV:
		return yuyvToImage(img, 0), nil
	case realsense.FormatUYVY:
		return yuyvToImage(img, 1), nil
	case realsense.FormatY8:
		return grayToImage(img), nil
	case realsense.FormatZ16:
		return depthToImage(img), nil
	default:
		return nil, fmt.Errorf("preview: format %s not encodable", img.Format)
	}
}

// rgbToImage handles the 3-byte channel orders; rOff and bOff locate the red
// and blue bytes within a pixel.
func rgbToImage(img Image, rOff, bOff int) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		row := img.Data[y*img.Stride:]
		for x := 0; x < img.Width; x++ {
			px := row[x*3:]
			i := out.PixOffset(x, y)
			out.Pix[i+0] = px[rOff]
			out.Pix[i+1] = px[1]
			out.Pix[i+2] = px[bOff]
			out.Pix[i+3] = 0xff
		}
	}
	return out
}

func rgbaToImage(img Image, rOff, bOff int) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		row := img.Data[y*img.Stride:]
		for x := 0; x < img.Width; x++ {
			px := row[x*4:]
			i := out.PixOffset(x, y)
			out.Pix[i+0] = px[rOff]
			out.Pix[i+1] = px[1]
			out.Pix[i+2] = px[bOff]
			out.Pix[i+3] = px[3]
		}
	}
	return out
}

// yuyvToImage handles the packed 4:2:2 layouts. yOff is 0 for YUYV
// ([y0 u y1 v]) and 1 for UYVY ([u y0 v y1]); chroma sits at the other
// offsets of the 4-byte group.
func yuyvToImage(img Image, yOff int) image.Image {
	out := image.NewYCbCr(image.Rect(0, 0, img.Width, img.Height), image.YCbCrSubsampleRatio422)
	uOff := 1 - yOff
	for y := 0; y < img.Height; y++ {
		row := img.Data[y*img.Stride:]
		for g := 0; g < img.Width/2; g++ {
			group := row[g*4:]
			out.Y[y*out.YStride+g*2] = group[yOff]
			out.Y[y*out.YStride+g*2+1] = group[yOff+2]
			out.Cb[y*out.CStride+g] = group[uOff]
			out.Cr[y*out.CStride+g] = group[uOff+2]
		}
	}
	return out
}

func grayToImage(img Image) image.Image {
	out := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		copy(out.Pix[y*out.Stride:(y+1)*out.Stride], img.Data[y*img.Stride:])
	}
	return out
}

// depthToImage renders Z16 by scaling each sample against the maximum in
// the frame, so near objects come out bright whatever the depth range.
func depthToImage(img Image) image.Image {
	out := image.NewGray(image.Rect(0, 0, img.Width, img.Height))

	var maxDepth uint16
	for y := 0; y < img.Height; y++ {
		row := img.Data[y*img.Stride:]
		for x := 0; x < img.Width; x++ {
			d := uint16(row[x*2]) | uint16(row[x*2+1])<<8
			if d > maxDepth {
				maxDepth = d
			}
		}
	}
	if maxDepth == 0 {
		return out
	}

	for y := 0; y < img.Height; y++ {
		row := img.Data[y*img.Stride:]
		for x := 0; x < img.Width; x++ {
			d := uint16(row[x*2]) | uint16(row[x*2+1])<<8
			out.Pix[y*out.Stride+x] = uint8(uint32(d) * 255 / uint32(maxDepth))
		}
	}
	return out
}
