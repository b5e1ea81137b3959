package realsense

import "fmt"

// CameraInfo selects a read-only device or sensor attribute. Values match
// rs2_camera_info.
type CameraInfo int32

const (
	CameraInfoName CameraInfo = iota
	CameraInfoSerialNumber
	CameraInfoFirmwareVersion
	CameraInfoRecommendedFirmwareVersion
	CameraInfoPhysicalPort
	CameraInfoDebugOpCode
	CameraInfoAdvancedMode
	CameraInfoProductID
	CameraInfoCameraLocked
	CameraInfoUSBTypeDescriptor
	CameraInfoProductLine
	CameraInfoASICSerialNumber
	CameraInfoFirmwareUpdateID
	CameraInfoIPAddress
)

func (c CameraInfo) String() string {
	switch c {
	case CameraInfoName:
		return "name"
	case CameraInfoSerialNumber:
		return "serial number"
	case CameraInfoFirmwareVersion:
		return "firmware version"
	case CameraInfoRecommendedFirmwareVersion:
		return "recommended firmware version"
	case CameraInfoPhysicalPort:
		return "physical port"
	case CameraInfoDebugOpCode:
		return "debug op code"
	case CameraInfoAdvancedMode:
		return "advanced mode"
	case CameraInfoProductID:
		return "product id"
	case CameraInfoCameraLocked:
		return "camera locked"
	case CameraInfoUSBTypeDescriptor:
		return "usb type descriptor"
	case CameraInfoProductLine:
		return "product line"
	case CameraInfoASICSerialNumber:
		return "asic serial number"
	case CameraInfoFirmwareUpdateID:
		return "firmware update id"
	case CameraInfoIPAddress:
		return "ip address"
	default:
		return fmt.Sprintf("camera_info(%d)", int32(c))
	}
}

// ProductLine is a bit mask over Intel camera families, used to filter
// device enumeration. Values match the RS2_PRODUCT_LINE_* constants.
type ProductLine int32

const (
	ProductLineAny      ProductLine = 0xff
	ProductLineAnyIntel ProductLine = 0xfe
	ProductLineNonIntel ProductLine = 0x01
	ProductLineD400     ProductLine = 0x02
	ProductLineSR300    ProductLine = 0x04
	ProductLineL500     ProductLine = 0x08
	ProductLineT200     ProductLine = 0x10

	ProductLineDepth    = ProductLineD400 | ProductLineSR300 | ProductLineL500
	ProductLineTracking = ProductLineT200
)

func (p ProductLine) String() string {
	switch p {
	case ProductLineAny:
		return "any"
	case ProductLineAnyIntel:
		return "any intel"
	case ProductLineNonIntel:
		return "non intel"
	case ProductLineD400:
		return "D400"
	case ProductLineSR300:
		return "SR300"
	case ProductLineL500:
		return "L500"
	case ProductLineT200:
		return "T200"
	case ProductLineDepth:
		return "depth"
	default:
		return fmt.Sprintf("product_line(%#x)", int32(p))
	}
}
