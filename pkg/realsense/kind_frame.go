package realsense

import "fmt"

// TimestampDomain says which clock produced a frame timestamp. Comparing
// timestamps is only meaningful within one domain. Values match
// rs2_timestamp_domain.
type TimestampDomain int32

const (
	// TimestampDomainHardwareClock means the device clock stamped the frame.
	TimestampDomainHardwareClock TimestampDomain = iota
	// TimestampDomainSystemTime means the host OS clock stamped the frame,
	// typically because hardware timestamps are unavailable.
	TimestampDomainSystemTime
	// TimestampDomainGlobalTime means the device clock mapped through the
	// library's time synchronization onto the host clock.
	TimestampDomainGlobalTime
)

func (d TimestampDomain) String() string {
	switch d {
	case TimestampDomainHardwareClock:
		return "hardware clock"
	case TimestampDomainSystemTime:
		return "system time"
	case TimestampDomainGlobalTime:
		return "global time"
	default:
		return fmt.Sprintf("timestamp_domain(%d)", int32(d))
	}
}

// FrameMetadataKind selects a per-frame metadata attribute. Values match
// rs2_frame_metadata_value.
type FrameMetadataKind int32

const (
	MetadataFrameCounter FrameMetadataKind = iota
	MetadataFrameTimestamp
	MetadataSensorTimestamp
	MetadataActualExposure
	MetadataGainLevel
	MetadataAutoExposure
	MetadataWhiteBalance
	MetadataTimeOfArrival
	MetadataTemperature
	MetadataBackendTimestamp
	MetadataActualFPS
	MetadataFrameLaserPower
	MetadataFrameLaserPowerMode
	MetadataExposurePriority
	MetadataExposureROILeft
	MetadataExposureROIRight
	MetadataExposureROITop
	MetadataExposureROIBottom
	MetadataBrightness
	MetadataContrast
	MetadataSaturation
	MetadataSharpness
	MetadataAutoWhiteBalanceTemperature
	MetadataBacklightCompensation
	MetadataHue
	MetadataGamma
	MetadataManualWhiteBalance
	MetadataPowerLineFrequency
	MetadataLowLightCompensation
	MetadataFrameEmitterMode
	MetadataFrameLEDPower
	MetadataRawFrameSize
	MetadataGPIOInputData
	MetadataSequenceName
	MetadataSequenceID
	MetadataSequenceSize
)

func (m FrameMetadataKind) String() string {
	names := [...]string{
		"frame counter",
		"frame timestamp",
		"sensor timestamp",
		"actual exposure",
		"gain level",
		"auto exposure",
		"white balance",
		"time of arrival",
		"temperature",
		"backend timestamp",
		"actual fps",
		"frame laser power",
		"frame laser power mode",
		"exposure priority",
		"exposure roi left",
		"exposure roi right",
		"exposure roi top",
		"exposure roi bottom",
		"brightness",
		"contrast",
		"saturation",
		"sharpness",
		"auto white balance temperature",
		"backlight compensation",
		"hue",
		"gamma",
		"manual white balance",
		"power line frequency",
		"low light compensation",
		"frame emitter mode",
		"frame led power",
		"raw frame size",
		"gpio input data",
		"sequence name",
		"sequence id",
		"sequence size",
	}
	if m >= 0 && int(m) < len(names) {
		return names[m]
	}
	return fmt.Sprintf("frame_metadata(%d)", int32(m))
}
