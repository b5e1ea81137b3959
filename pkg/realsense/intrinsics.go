package realsense

import (
	"fmt"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// DistortionModel names the lens distortion model of a video stream. Values
// match rs2_distortion.
type DistortionModel int32

const (
	DistortionNone DistortionModel = iota
	DistortionModifiedBrownConrady
	DistortionInverseBrownConrady
	DistortionFTheta
	DistortionBrownConrady
	DistortionKannalaBrandt4
)

func (m DistortionModel) String() string {
	switch m {
	case DistortionNone:
		return "none"
	case DistortionModifiedBrownConrady:
		return "modified brown-conrady"
	case DistortionInverseBrownConrady:
		return "inverse brown-conrady"
	case DistortionFTheta:
		return "f-theta"
	case DistortionBrownConrady:
		return "brown-conrady"
	case DistortionKannalaBrandt4:
		return "kannala-brandt4"
	default:
		return fmt.Sprintf("distortion(%d)", int32(m))
	}
}

// Intrinsics are the pinhole projection parameters of a video stream:
// principal point (PPX, PPY) and focal length (FX, FY) in pixels, plus the
// distortion model and its coefficients.
type Intrinsics struct {
	Width  int
	Height int
	PPX    float32
	PPY    float32
	FX     float32
	FY     float32
	Model  DistortionModel
	Coeffs [5]float32
}

func intrinsicsFromBindings(raw bindings.Intrinsics) Intrinsics {
	return Intrinsics{
		Width:  int(raw.Width),
		Height: int(raw.Height),
		PPX:    raw.PPX,
		PPY:    raw.PPY,
		FX:     raw.FX,
		FY:     raw.FY,
		Model:  DistortionModel(raw.Model),
		Coeffs: raw.Coeffs,
	}
}

// MotionIntrinsics model an IMU stream: Data holds scale on the diagonal of
// the left 3x3 block, cross-axis sensitivity off it, and bias in the last
// column; the variance arrays are per axis.
type MotionIntrinsics struct {
	Data           [3][4]float32
	NoiseVariances [3]float32
	BiasVariances  [3]float32
}

// Extrinsics is the rigid transform between two stream coordinate spaces:
// a column-major 3x3 rotation and a translation in meters.
type Extrinsics struct {
	Rotation    [9]float32
	Translation [3]float32
}

// Transform applies the extrinsic transform to a point.
func (e Extrinsics) Transform(p [3]float32) [3]float32 {
	r := e.Rotation
	return [3]float32{
		r[0]*p[0] + r[3]*p[1] + r[6]*p[2] + e.Translation[0],
		r[1]*p[0] + r[4]*p[1] + r[7]*p[2] + e.Translation[1],
		r[2]*p[0] + r[5]*p[1] + r[8]*p[2] + e.Translation[2],
	}
}
