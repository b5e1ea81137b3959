package realsense

import "fmt"

// StreamKind identifies what a stream's frames represent. Values match
// rs2_stream.
type StreamKind int32

const (
	StreamAny StreamKind = iota
	StreamDepth
	StreamColor
	StreamInfrared
	StreamFisheye
	StreamGyro
	StreamAccel
	StreamGPIO
	StreamPose
	StreamConfidence
)

func (s StreamKind) String() string {
	switch s {
	case StreamAny:
		return "any"
	case StreamDepth:
		return "depth"
	case StreamColor:
		return "color"
	case StreamInfrared:
		return "infrared"
	case StreamFisheye:
		return "fisheye"
	case StreamGyro:
		return "gyro"
	case StreamAccel:
		return "accel"
	case StreamGPIO:
		return "gpio"
	case StreamPose:
		return "pose"
	case StreamConfidence:
		return "confidence"
	default:
		return fmt.Sprintf("stream(%d)", int32(s))
	}
}

// Format describes how a frame's payload is laid out in memory. Values match
// rs2_format.
type Format int32

const (
	FormatAny Format = iota
	FormatZ16
	FormatDisparity16
	FormatXYZ32F
	FormatYUYV
	FormatRGB8
	FormatBGR8
	FormatRGBA8
	FormatBGRA8
	FormatY8
	FormatY16
	FormatRaw10
	FormatRaw16
	FormatRaw8
	FormatUYVY
	FormatMotionRaw
	FormatMotionXYZ32F
	FormatGPIORaw
	Format6DOF
	FormatDisparity32
	FormatY10BPack
	FormatDistance
	FormatMJPEG
	FormatY8I
	FormatY12I
	FormatInzi
	FormatInvi
	FormatW10
	FormatZ16H
	FormatFG
)

func (f Format) String() string {
	switch f {
	case FormatAny:
		return "any"
	case FormatZ16:
		return "z16"
	case FormatDisparity16:
		return "disparity16"
	case FormatXYZ32F:
		return "xyz32f"
	case FormatYUYV:
		return "yuyv"
	case FormatRGB8:
		return "rgb8"
	case FormatBGR8:
		return "bgr8"
	case FormatRGBA8:
		return "rgba8"
	case FormatBGRA8:
		return "bgra8"
	case FormatY8:
		return "y8"
	case FormatY16:
		return "y16"
	case FormatRaw10:
		return "raw10"
	case FormatRaw16:
		return "raw16"
	case FormatRaw8:
		return "raw8"
	case FormatUYVY:
		return "uyvy"
	case FormatMotionRaw:
		return "motion_raw"
	case FormatMotionXYZ32F:
		return "motion_xyz32f"
	case FormatGPIORaw:
		return "gpio_raw"
	case Format6DOF:
		return "6dof"
	case FormatDisparity32:
		return "disparity32"
	case FormatY10BPack:
		return "y10bpack"
	case FormatDistance:
		return "distance"
	case FormatMJPEG:
		return "mjpeg"
	case FormatY8I:
		return "y8i"
	case FormatY12I:
		return "y12i"
	case FormatInzi:
		return "inzi"
	case FormatInvi:
		return "invi"
	case FormatW10:
		return "w10"
	case FormatZ16H:
		return "z16h"
	case FormatFG:
		return "fg"
	default:
		return fmt.Sprintf("format(%d)", int32(f))
	}
}
