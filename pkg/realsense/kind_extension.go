package realsense

import "fmt"

// Extension names a capability a handle may be downcast to via the
// librealsense2 extension mechanism. Values match rs2_extension.
type Extension int32

const (
	ExtensionUnknown Extension = iota
	ExtensionDebug
	ExtensionInfo
	ExtensionMotion
	ExtensionOptions
	ExtensionVideo
	ExtensionROI
	ExtensionDepthSensor
	ExtensionVideoFrame
	ExtensionMotionFrame
	ExtensionCompositeFrame
	ExtensionPoints
	ExtensionDepthFrame
	ExtensionAdvancedMode
	ExtensionRecord
	ExtensionVideoProfile
	ExtensionPlayback
	ExtensionDepthStereoSensor
	ExtensionDisparityFrame
	ExtensionMotionProfile
	ExtensionPoseFrame
	ExtensionPoseProfile
	ExtensionTM2
	ExtensionSoftwareDevice
	ExtensionSoftwareSensor
	ExtensionDecimationFilter
	ExtensionThresholdFilter
	ExtensionDisparityFilter
	ExtensionSpatialFilter
	ExtensionTemporalFilter
	ExtensionHoleFillingFilter
	ExtensionZeroOrderFilter
	ExtensionRecommendedFilters
	ExtensionPose
	ExtensionPoseSensor
	ExtensionWheelOdometer
	ExtensionGlobalTimer
	ExtensionUpdatable
	ExtensionUpdateDevice
	ExtensionL500DepthSensor
	ExtensionTM2Sensor
	ExtensionAutoCalibratedDevice
	ExtensionColorSensor
	ExtensionMotionSensor
	ExtensionFisheyeSensor
	ExtensionDepthHuffmanDecoder
	ExtensionSerializable
	ExtensionFWLogger
	ExtensionAutoCalibrationFilter
	ExtensionDeviceCalibration
	ExtensionCalibratedSensor
	ExtensionHDRMerge
	ExtensionSequenceIDFilter
	ExtensionMaxUsableRangeSensor
	ExtensionDebugStreamSensor
	ExtensionCalibrationChangeDevice
)

// sensorExtensions is checked in order when classifying a sensor; the first
// match wins, so the more specific kinds come before the generic ones.
var sensorExtensions = []Extension{
	ExtensionDepthStereoSensor,
	ExtensionL500DepthSensor,
	ExtensionDepthSensor,
	ExtensionColorSensor,
	ExtensionMotionSensor,
	ExtensionFisheyeSensor,
	ExtensionPoseSensor,
	ExtensionCalibratedSensor,
	ExtensionMaxUsableRangeSensor,
	ExtensionWheelOdometer,
	ExtensionTM2Sensor,
	ExtensionSoftwareSensor,
	ExtensionDebugStreamSensor,
}

func (x Extension) String() string {
	names := [...]string{
		"unknown",
		"debug",
		"info",
		"motion",
		"options",
		"video",
		"roi",
		"depth sensor",
		"video frame",
		"motion frame",
		"composite frame",
		"points",
		"depth frame",
		"advanced mode",
		"record",
		"video profile",
		"playback",
		"depth stereo sensor",
		"disparity frame",
		"motion profile",
		"pose frame",
		"pose profile",
		"tm2",
		"software device",
		"software sensor",
		"decimation filter",
		"threshold filter",
		"disparity filter",
		"spatial filter",
		"temporal filter",
		"hole filling filter",
		"zero order filter",
		"recommended filters",
		"pose",
		"pose sensor",
		"wheel odometer",
		"global timer",
		"updatable",
		"update device",
		"l500 depth sensor",
		"tm2 sensor",
		"auto calibrated device",
		"color sensor",
		"motion sensor",
		"fisheye sensor",
		"depth huffman decoder",
		"serializable",
		"fw logger",
		"auto calibration filter",
		"device calibration",
		"calibrated sensor",
		"hdr merge",
		"sequence id filter",
		"max usable range sensor",
		"debug stream sensor",
		"calibration change device",
	}
	if x >= 0 && int(x) < len(names) {
		return names[x]
	}
	return fmt.Sprintf("extension(%d)", int32(x))
}
