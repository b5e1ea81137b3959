//go:build !cgo || windows

package bindings

import (
	"unsafe"
)

// Stub implementations for non-cgo builds and Windows. They keep the module
// compiling everywhere and report ErrNotBuilt when called.

func APIVersion() (int32, error) { return 0, ErrNotBuilt }

func CreateContext() (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func DeleteContext(unsafe.Pointer) {}

func ContextAddDevice(unsafe.Pointer, string) error { return ErrNotBuilt }

func ContextRemoveDevice(unsafe.Pointer, string) error { return ErrNotBuilt }

func CreateDeviceHub(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func DeleteDeviceHub(unsafe.Pointer) {}

func DeviceHubWaitForDevice(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func DeviceHubIsConnected(_, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func QueryDevices(unsafe.Pointer, int32) ([]unsafe.Pointer, error) { return nil, ErrNotBuilt }

func DeleteDevice(unsafe.Pointer) {}

func SupportsDeviceInfo(unsafe.Pointer, int32) (bool, error) { return false, ErrNotBuilt }

func DeviceInfo(unsafe.Pointer, int32) (string, error) { return "", ErrNotBuilt }

func HardwareReset(unsafe.Pointer) error { return ErrNotBuilt }

func QuerySensors(unsafe.Pointer) ([]unsafe.Pointer, error) { return nil, ErrNotBuilt }

func DeleteSensor(unsafe.Pointer) {}

func SupportsSensorInfo(unsafe.Pointer, int32) (bool, error) { return false, ErrNotBuilt }

func SensorInfo(unsafe.Pointer, int32) (string, error) { return "", ErrNotBuilt }

func IsSensorExtendableTo(unsafe.Pointer, int32) (bool, error) { return false, ErrNotBuilt }

func SensorOption(unsafe.Pointer, int32) (float32, error) { return 0, ErrNotBuilt }

func SetSensorOption(unsafe.Pointer, int32, float32) error { return ErrNotBuilt }

func SensorSupportsOption(unsafe.Pointer, int32) (bool, error) { return false, ErrNotBuilt }

func SensorStreamProfiles(unsafe.Pointer) ([]unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GetStreamProfileData(unsafe.Pointer) (StreamProfileData, error) {
	return StreamProfileData{}, ErrNotBuilt
}

func VideoStreamIntrinsics(unsafe.Pointer) (Intrinsics, error) { return Intrinsics{}, ErrNotBuilt }

func MotionIntrinsics(unsafe.Pointer) (MotionDeviceIntrinsics, error) {
	return MotionDeviceIntrinsics{}, ErrNotBuilt
}

func GetExtrinsics(_, _ unsafe.Pointer) (Extrinsics, error) { return Extrinsics{}, ErrNotBuilt }

func RegisterExtrinsics(_, _ unsafe.Pointer, _ Extrinsics) error { return ErrNotBuilt }

func CreateConfig() (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func DeleteConfig(unsafe.Pointer) {}

func ConfigEnableStream(_ unsafe.Pointer, _, _, _, _, _, _ int32) error { return ErrNotBuilt }

func ConfigEnableAllStreams(unsafe.Pointer) error { return ErrNotBuilt }

func ConfigEnableDevice(unsafe.Pointer, string) error { return ErrNotBuilt }

func ConfigEnableDeviceFromFile(unsafe.Pointer, string, bool) error { return ErrNotBuilt }

func ConfigEnableRecordToFile(unsafe.Pointer, string) error { return ErrNotBuilt }

func ConfigDisableStream(unsafe.Pointer, int32) error { return ErrNotBuilt }

func ConfigDisableIndexedStream(unsafe.Pointer, int32, int32) error { return ErrNotBuilt }

func ConfigDisableAllStreams(unsafe.Pointer) error { return ErrNotBuilt }

func CreatePipeline(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func DeletePipeline(unsafe.Pointer) {}

func PipelineStart(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func PipelineStartWithConfig(_, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func PipelineStop(unsafe.Pointer) error { return ErrNotBuilt }

func PipelineWaitForFrames(unsafe.Pointer, uint32) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func PipelinePollForFrames(unsafe.Pointer) (unsafe.Pointer, bool, error) {
	return nil, false, ErrNotBuilt
}

func ConfigResolve(_, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func ConfigCanResolve(_, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func PipelineProfileDevice(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func PipelineProfileStreams(unsafe.Pointer) ([]unsafe.Pointer, error) { return nil, ErrNotBuilt }

func DeletePipelineProfile(unsafe.Pointer) {}

func ReleaseFrame(unsafe.Pointer) {}

func EmbeddedFramesCount(unsafe.Pointer) (int, error) { return 0, ErrNotBuilt }

func ExtractFrame(unsafe.Pointer, int) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func IsFrameExtendableTo(unsafe.Pointer, int32) (bool, error) { return false, ErrNotBuilt }

func FrameGeometry(unsafe.Pointer) (VideoFrameGeometry, error) {
	return VideoFrameGeometry{}, ErrNotBuilt
}

func FrameDataSize(unsafe.Pointer) (int, error) { return 0, ErrNotBuilt }

func FrameData(unsafe.Pointer) ([]byte, error) { return nil, ErrNotBuilt }

func FrameTimestamp(unsafe.Pointer) (float64, error) { return 0, ErrNotBuilt }

func FrameTimestampDomain(unsafe.Pointer) (int32, error) { return 0, ErrNotBuilt }

func FrameStreamProfile(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func SupportsFrameMetadata(unsafe.Pointer, int32) (bool, error) { return false, ErrNotBuilt }

func FrameMetadata(unsafe.Pointer, int32) (int64, error) { return 0, ErrNotBuilt }

func FrameSensor(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func DepthFrameDistance(unsafe.Pointer, int, int) (float32, error) { return 0, ErrNotBuilt }

func DepthStereoFrameBaseline(unsafe.Pointer) (float32, error) { return 0, ErrNotBuilt }

func PoseFrameData(unsafe.Pointer) (Pose, error) { return Pose{}, ErrNotBuilt }

func FramePointsCount(unsafe.Pointer) (int, error) { return 0, ErrNotBuilt }

func FrameVertices(unsafe.Pointer) ([]Vertex, error) { return nil, ErrNotBuilt }

func FrameTextureCoordinates(unsafe.Pointer) ([]TextureCoordinate, error) {
	return nil, ErrNotBuilt
}
