package realsense

import "testing"

// The constants below are wire values of the librealsense2 C ABI; a drifted
// value corrupts every call that passes the enum. Spot-check the ends and a
// few interior values of each range.
func TestEnumABIValues(t *testing.T) {
	cases := []struct {
		name string
		got  int32
		want int32
	}{
		{"StreamAny", int32(StreamAny), 0},
		{"StreamDepth", int32(StreamDepth), 1},
		{"StreamConfidence", int32(StreamConfidence), 9},
		{"FormatZ16", int32(FormatZ16), 1},
		{"FormatYUYV", int32(FormatYUYV), 4},
		{"FormatBGRA8", int32(FormatBGRA8), 8},
		{"FormatUYVY", int32(FormatUYVY), 14},
		{"Format6DOF", int32(Format6DOF), 18},
		{"FormatZ16H", int32(FormatZ16H), 28},
		{"FormatFG", int32(FormatFG), 29},
		{"CameraInfoName", int32(CameraInfoName), 0},
		{"CameraInfoProductLine", int32(CameraInfoProductLine), 10},
		{"CameraInfoIPAddress", int32(CameraInfoIPAddress), 13},
		{"TimestampDomainGlobalTime", int32(TimestampDomainGlobalTime), 2},
		{"ExceptionIO", int32(ExceptionIO), 7},
		{"DistortionBrownConrady", int32(DistortionBrownConrady), 4},
		{"DistortionKannalaBrandt4", int32(DistortionKannalaBrandt4), 5},
		{"ExtensionVideoFrame", int32(ExtensionVideoFrame), 8},
		{"ExtensionCompositeFrame", int32(ExtensionCompositeFrame), 10},
		{"ExtensionDepthFrame", int32(ExtensionDepthFrame), 12},
		{"ExtensionDisparityFrame", int32(ExtensionDisparityFrame), 18},
		{"ExtensionPoseFrame", int32(ExtensionPoseFrame), 20},
		{"ExtensionCalibrationChangeDevice", int32(ExtensionCalibrationChangeDevice), 55},
		{"MetadataFrameCounter", int32(MetadataFrameCounter), 0},
		{"MetadataTimeOfArrival", int32(MetadataTimeOfArrival), 7},
		{"MetadataSequenceSize", int32(MetadataSequenceSize), 35},
		{"OptionExposure", int32(OptionExposure), 3},
		{"OptionDepthUnits", int32(OptionDepthUnits), 28},
		{"OptionStereoBaseline", int32(OptionStereoBaseline), 40},
		{"OptionGlobalTimeEnabled", int32(OptionGlobalTimeEnabled), 53},
		{"OptionThermalCompensation", int32(OptionThermalCompensation), 72},
		{"ProductLineD400", int32(ProductLineD400), 0x02},
		{"ProductLineAny", int32(ProductLineAny), 0xff},
		{"ProductLineDepth", int32(ProductLineDepth), 0x0e},
	}

	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s = %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{StreamDepth.String(), "depth"},
		{StreamKind(42).String(), "stream(42)"},
		{FormatMotionXYZ32F.String(), "motion_xyz32f"},
		{Format(-1).String(), "format(-1)"},
		{CameraInfoSerialNumber.String(), "serial number"},
		{TimestampDomainHardwareClock.String(), "hardware clock"},
		{ProductLineL500.String(), "L500"},
		{ExtensionDepthStereoSensor.String(), "depth stereo sensor"},
		{Extension(200).String(), "extension(200)"},
		{MetadataActualFPS.String(), "actual fps"},
		{FrameMetadataKind(99).String(), "frame_metadata(99)"},
		{OptionLaserPower.String(), "laser power"},
		{Option(999).String(), "option(999)"},
		{DistortionFTheta.String(), "f-theta"},
		{PoseConfidenceHigh.String(), "high"},
	}

	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("String() = %q, want %q", tc.got, tc.want)
		}
	}
}
