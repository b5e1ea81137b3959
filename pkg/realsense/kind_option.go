package realsense

import "fmt"

// Option is a tunable sensor control. Values match rs2_option. Not every
// sensor supports every option; check Sensor.SupportsOption first.
type Option int32

const (
	OptionBacklightCompensation Option = iota
	OptionBrightness
	OptionContrast
	OptionExposure
	OptionGain
	OptionGamma
	OptionHue
	OptionSaturation
	OptionSharpness
	OptionWhiteBalance
	OptionEnableAutoExposure
	OptionEnableAutoWhiteBalance
	OptionVisualPreset
	OptionLaserPower
	OptionAccuracy
	OptionMotionRange
	OptionFilterOption
	OptionConfidenceThreshold
	OptionEmitterEnabled
	OptionFramesQueueSize
	OptionTotalFrameDrops
	OptionAutoExposureMode
	OptionPowerLineFrequency
	OptionASICTemperature
	OptionErrorPollingEnabled
	OptionProjectorTemperature
	OptionOutputTriggerEnabled
	OptionMotionModuleTemperature
	OptionDepthUnits
	OptionEnableMotionCorrection
	OptionAutoExposurePriority
	OptionColorScheme
	OptionHistogramEqualizationEnabled
	OptionMinDistance
	OptionMaxDistance
	OptionTextureSource
	OptionFilterMagnitude
	OptionFilterSmoothAlpha
	OptionFilterSmoothDelta
	OptionHolesFill
	OptionStereoBaseline
	OptionAutoExposureConvergeStep
	OptionInterCamSyncMode
	OptionStreamFilter
	OptionStreamFormatFilter
	OptionStreamIndexFilter
	OptionEmitterOnOff
	OptionZeroOrderPointX
	OptionZeroOrderPointY
	OptionLLDTemperature
	OptionMCTemperature
	OptionMATemperature
	OptionHardwarePreset
	OptionGlobalTimeEnabled
	OptionAPDTemperature
	OptionEnableMapping
	OptionEnableRelocalization
	OptionEnablePoseJumping
	OptionEnableDynamicCalibration
	OptionDepthOffset
	OptionLEDPower
	OptionZeroOrderEnabled
	OptionEnableMapPreservation
	OptionFreefallDetectionEnabled
	OptionAvalanchePhotoDiode
	OptionPostProcessingSharpening
	OptionPreProcessingSharpening
	OptionNoiseFiltering
	OptionInvalidationBypass
	OptionDigitalGain
	OptionSensorMode
	OptionEmitterAlwaysOn
	OptionThermalCompensation
)

func (o Option) String() string {
	names := [...]string{
		"backlight compensation",
		"brightness",
		"contrast",
		"exposure",
		"gain",
		"gamma",
		"hue",
		"saturation",
		"sharpness",
		"white balance",
		"enable auto exposure",
		"enable auto white balance",
		"visual preset",
		"laser power",
		"accuracy",
		"motion range",
		"filter option",
		"confidence threshold",
		"emitter enabled",
		"frames queue size",
		"total frame drops",
		"auto exposure mode",
		"power line frequency",
		"asic temperature",
		"error polling enabled",
		"projector temperature",
		"output trigger enabled",
		"motion module temperature",
		"depth units",
		"enable motion correction",
		"auto exposure priority",
		"color scheme",
		"histogram equalization enabled",
		"min distance",
		"max distance",
		"texture source",
		"filter magnitude",
		"filter smooth alpha",
		"filter smooth delta",
		"holes fill",
		"stereo baseline",
		"auto exposure converge step",
		"inter cam sync mode",
		"stream filter",
		"stream format filter",
		"stream index filter",
		"emitter on off",
		"zero order point x",
		"zero order point y",
		"lld temperature",
		"mc temperature",
		"ma temperature",
		"hardware preset",
		"global time enabled",
		"apd temperature",
		"enable mapping",
		"enable relocalization",
		"enable pose jumping",
		"enable dynamic calibration",
		"depth offset",
		"led power",
		"zero order enabled",
		"enable map preservation",
		"freefall detection enabled",
		"avalanche photo diode",
		"post processing sharpening",
		"pre processing sharpening",
		"noise filtering",
		"invalidation bypass",
		"digital gain",
		"sensor mode",
		"emitter always on",
		"thermal compensation",
	}
	if o >= 0 && int(o) < len(names) {
		return names[o]
	}
	return fmt.Sprintf("option(%d)", int32(o))
}
