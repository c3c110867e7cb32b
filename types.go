package realsense

import (
	"fmt"

	"github.com/e7canasta/orion-realsense/internal/sys"
)

// Extension identifies a native derived type. The numeric values are stable
// ABI values (rs2_extension) and must not be reordered.
type Extension int32

const (
	ExtensionUnknown           Extension = 0
	ExtensionDebug             Extension = 1
	ExtensionInfo              Extension = 2
	ExtensionMotion            Extension = 3
	ExtensionOptions           Extension = 4
	ExtensionVideo             Extension = 5
	ExtensionROI               Extension = 6
	ExtensionDepthSensor       Extension = 7
	ExtensionVideoFrame        Extension = 8
	ExtensionMotionFrame       Extension = 9
	ExtensionCompositeFrame    Extension = 10
	ExtensionPoints            Extension = 11
	ExtensionDepthFrame        Extension = 12
	ExtensionAdvancedMode      Extension = 13
	ExtensionRecord            Extension = 14
	ExtensionVideoProfile      Extension = 15
	ExtensionPlayback          Extension = 16
	ExtensionDepthStereoSensor Extension = 17
	ExtensionDisparityFrame    Extension = 18
	ExtensionMotionProfile     Extension = 19
	ExtensionPoseFrame         Extension = 20
	ExtensionPoseProfile       Extension = 21
	ExtensionTm2               Extension = 22
	ExtensionSoftwareDevice    Extension = 23
	ExtensionSoftwareSensor    Extension = 24
	ExtensionPose              Extension = 33
	ExtensionPoseSensor        Extension = 34
	ExtensionWheelOdometer     Extension = 35
	ExtensionGlobalTimer       Extension = 36
	ExtensionUpdatable         Extension = 37
	ExtensionUpdateDevice      Extension = 38
	ExtensionL500DepthSensor   Extension = 39
	ExtensionTm2Sensor         Extension = 40
	ExtensionAutoCalibrated    Extension = 41
	ExtensionColorSensor       Extension = 42
	ExtensionMotionSensor      Extension = 43
	ExtensionFisheyeSensor     Extension = 44
)

// SensorExtensions is the fixed registry of capability extensions probed by
// Sensor.Extensions. Read-only; ordered by ABI value.
var SensorExtensions = [...]Extension{
	ExtensionDepthSensor,
	ExtensionDepthStereoSensor,
	ExtensionSoftwareSensor,
	ExtensionPoseSensor,
	ExtensionL500DepthSensor,
	ExtensionTm2Sensor,
	ExtensionColorSensor,
	ExtensionMotionSensor,
	ExtensionFisheyeSensor,
}

func (e Extension) String() string {
	switch e {
	case ExtensionVideoFrame:
		return "video-frame"
	case ExtensionMotionFrame:
		return "motion-frame"
	case ExtensionCompositeFrame:
		return "composite-frame"
	case ExtensionPoints:
		return "points"
	case ExtensionDepthFrame:
		return "depth-frame"
	case ExtensionDisparityFrame:
		return "disparity-frame"
	case ExtensionPoseFrame:
		return "pose-frame"
	case ExtensionDepthSensor:
		return "depth-sensor"
	case ExtensionDepthStereoSensor:
		return "depth-stereo-sensor"
	case ExtensionSoftwareSensor:
		return "software-sensor"
	case ExtensionPoseSensor:
		return "pose-sensor"
	case ExtensionL500DepthSensor:
		return "l500-depth-sensor"
	case ExtensionTm2Sensor:
		return "tm2-sensor"
	case ExtensionColorSensor:
		return "color-sensor"
	case ExtensionMotionSensor:
		return "motion-sensor"
	case ExtensionFisheyeSensor:
		return "fisheye-sensor"
	default:
		return fmt.Sprintf("extension(%d)", int32(e))
	}
}

// TimestampDomain describes which clock stamped a frame (rs2_timestamp_domain).
type TimestampDomain int32

const (
	// TimestampDomainHardwareClock means the timestamp was taken from the
	// device's internal clock.
	TimestampDomainHardwareClock TimestampDomain = 0
	// TimestampDomainSystemTime means the timestamp was taken from the host
	// clock at arrival.
	TimestampDomainSystemTime TimestampDomain = 1
	// TimestampDomainGlobalTime means the timestamp is hardware time mapped
	// onto the host clock by the global timestamp service.
	TimestampDomainGlobalTime TimestampDomain = 2
)

func (d TimestampDomain) String() string {
	switch d {
	case TimestampDomainHardwareClock:
		return "hardware-clock"
	case TimestampDomainSystemTime:
		return "system-time"
	case TimestampDomainGlobalTime:
		return "global-time"
	default:
		return fmt.Sprintf("timestamp-domain(%d)", int32(d))
	}
}

// timestampDomainFromNative decodes a native domain code. An unrecognised
// code indicates an SDK/ABI mismatch and is surfaced as an error rather
// than swallowed.
func timestampDomainFromNative(v int32) (TimestampDomain, error) {
	switch d := TimestampDomain(v); d {
	case TimestampDomainHardwareClock, TimestampDomainSystemTime, TimestampDomainGlobalTime:
		return d, nil
	default:
		return 0, fmt.Errorf("%w: code %d", ErrUnknownTimestampDomain, v)
	}
}

// Option identifies a sensor tunable (rs2_option). Subset of the native
// enumeration; values are stable ABI values.
type Option int32

const (
	OptionBacklightCompensation Option = 0
	OptionBrightness            Option = 1
	OptionContrast              Option = 2
	OptionExposure              Option = 3
	OptionGain                  Option = 4
	OptionGamma                 Option = 5
	OptionHue                   Option = 6
	OptionSaturation            Option = 7
	OptionSharpness             Option = 8
	OptionWhiteBalance          Option = 9
	OptionEnableAutoExposure    Option = 10
	OptionEnableAutoWhiteBal    Option = 11
	OptionVisualPreset          Option = 12
	OptionLaserPower            Option = 13
	OptionConfidenceThreshold   Option = 17
	OptionEmitterEnabled        Option = 18
	OptionFramesQueueSize       Option = 19
	OptionTotalFrameDrops       Option = 20
	OptionPowerLineFrequency    Option = 22
	OptionAsicTemperature       Option = 23
	OptionProjectorTemperature  Option = 25
	OptionDepthUnits            Option = 28
	OptionEnableMotionCorrect   Option = 29
	OptionAutoExposurePriority  Option = 30
	OptionMinDistance           Option = 33
	OptionMaxDistance           Option = 34
	OptionHolesFill             Option = 39
	OptionStereoBaseline        Option = 40
	OptionGlobalTimeEnabled     Option = 44
)

func (o Option) String() string {
	if name, ok := optionNames[o]; ok {
		return name
	}
	return fmt.Sprintf("option(%d)", int32(o))
}

var optionNames = map[Option]string{
	OptionBacklightCompensation: "backlight-compensation",
	OptionBrightness:            "brightness",
	OptionContrast:              "contrast",
	OptionExposure:              "exposure",
	OptionGain:                  "gain",
	OptionGamma:                 "gamma",
	OptionHue:                   "hue",
	OptionSaturation:            "saturation",
	OptionSharpness:             "sharpness",
	OptionWhiteBalance:          "white-balance",
	OptionEnableAutoExposure:    "enable-auto-exposure",
	OptionEnableAutoWhiteBal:    "enable-auto-white-balance",
	OptionVisualPreset:          "visual-preset",
	OptionLaserPower:            "laser-power",
	OptionConfidenceThreshold:   "confidence-threshold",
	OptionEmitterEnabled:        "emitter-enabled",
	OptionFramesQueueSize:       "frames-queue-size",
	OptionTotalFrameDrops:       "total-frame-drops",
	OptionPowerLineFrequency:    "power-line-frequency",
	OptionAsicTemperature:       "asic-temperature",
	OptionProjectorTemperature:  "projector-temperature",
	OptionDepthUnits:            "depth-units",
	OptionEnableMotionCorrect:   "enable-motion-correction",
	OptionAutoExposurePriority:  "auto-exposure-priority",
	OptionMinDistance:           "min-distance",
	OptionMaxDistance:           "max-distance",
	OptionHolesFill:             "holes-fill",
	OptionStereoBaseline:        "stereo-baseline",
	OptionGlobalTimeEnabled:     "global-time-enabled",
}

// OptionFromName resolves an option by its string name, as used in tool
// configs. The second return is false for unknown names.
func OptionFromName(name string) (Option, bool) {
	for opt, n := range optionNames {
		if n == name {
			return opt, true
		}
	}
	return 0, false
}

// OptionRange describes the valid values of a sensor option.
type OptionRange struct {
	Min     float32
	Max     float32
	Step    float32
	Default float32
}

// CameraInfo identifies a device/sensor info field (rs2_camera_info).
type CameraInfo int32

const (
	CameraInfoName              CameraInfo = 0
	CameraInfoSerialNumber      CameraInfo = 1
	CameraInfoFirmwareVersion   CameraInfo = 2
	CameraInfoRecommendedFW     CameraInfo = 3
	CameraInfoPhysicalPort      CameraInfo = 4
	CameraInfoDebugOpCode       CameraInfo = 5
	CameraInfoAdvancedMode      CameraInfo = 6
	CameraInfoProductID         CameraInfo = 7
	CameraInfoCameraLocked      CameraInfo = 8
	CameraInfoUSBTypeDescriptor CameraInfo = 9
	CameraInfoProductLine       CameraInfo = 10
	CameraInfoASICSerialNumber  CameraInfo = 11
	CameraInfoFirmwareUpdateID  CameraInfo = 12
)

func (i CameraInfo) String() string {
	switch i {
	case CameraInfoName:
		return "name"
	case CameraInfoSerialNumber:
		return "serial-number"
	case CameraInfoFirmwareVersion:
		return "firmware-version"
	case CameraInfoRecommendedFW:
		return "recommended-firmware-version"
	case CameraInfoPhysicalPort:
		return "physical-port"
	case CameraInfoProductID:
		return "product-id"
	case CameraInfoCameraLocked:
		return "camera-locked"
	case CameraInfoUSBTypeDescriptor:
		return "usb-type-descriptor"
	case CameraInfoProductLine:
		return "product-line"
	case CameraInfoASICSerialNumber:
		return "asic-serial-number"
	case CameraInfoFirmwareUpdateID:
		return "firmware-update-id"
	default:
		return fmt.Sprintf("camera-info(%d)", int32(i))
	}
}

// FrameMetadata identifies a per-frame metadata field
// (rs2_frame_metadata_value). Subset of the native enumeration.
type FrameMetadata int32

const (
	MetadataFrameCounter     FrameMetadata = 0
	MetadataFrameTimestamp   FrameMetadata = 1
	MetadataSensorTimestamp  FrameMetadata = 2
	MetadataActualExposure   FrameMetadata = 3
	MetadataGainLevel        FrameMetadata = 4
	MetadataAutoExposure     FrameMetadata = 5
	MetadataWhiteBalance     FrameMetadata = 6
	MetadataTimeOfArrival    FrameMetadata = 7
	MetadataTemperature      FrameMetadata = 8
	MetadataBackendTimestamp FrameMetadata = 9
	MetadataActualFPS        FrameMetadata = 10
)

// MetadataFields is the fixed registry of metadata fields known to this
// module, in native id order.
var MetadataFields = [...]FrameMetadata{
	MetadataFrameCounter,
	MetadataFrameTimestamp,
	MetadataSensorTimestamp,
	MetadataActualExposure,
	MetadataGainLevel,
	MetadataAutoExposure,
	MetadataWhiteBalance,
	MetadataTimeOfArrival,
	MetadataTemperature,
	MetadataBackendTimestamp,
	MetadataActualFPS,
}

// StreamKind identifies a stream modality (rs2_stream).
type StreamKind int32

const (
	StreamAny        StreamKind = 0
	StreamDepth      StreamKind = 1
	StreamColor      StreamKind = 2
	StreamInfrared   StreamKind = 3
	StreamFisheye    StreamKind = 4
	StreamGyro       StreamKind = 5
	StreamAccel      StreamKind = 6
	StreamGPIO       StreamKind = 7
	StreamPose       StreamKind = 8
	StreamConfidence StreamKind = 9
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

// Format identifies a pixel/sample layout (rs2_format). Subset.
type Format int32

const (
	FormatAny          Format = 0
	FormatZ16          Format = 1
	FormatDisparity16  Format = 2
	FormatXYZ32F       Format = 3
	FormatYUYV         Format = 4
	FormatRGB8         Format = 5
	FormatBGR8         Format = 6
	FormatRGBA8        Format = 7
	FormatBGRA8        Format = 8
	FormatY8           Format = 9
	FormatY16          Format = 10
	FormatRaw10        Format = 11
	FormatRaw16        Format = 12
	FormatRaw8         Format = 13
	FormatMotionRaw    Format = 15
	FormatMotionXYZ32F Format = 16
	FormatSixDOF       Format = 18
	FormatDisparity32  Format = 19
	FormatDistance     Format = 21
	FormatMJPEG        Format = 22
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
	case FormatMotionXYZ32F:
		return "motion-xyz32f"
	case FormatSixDOF:
		return "6dof"
	case FormatDisparity32:
		return "disparity32"
	case FormatDistance:
		return "distance"
	case FormatMJPEG:
		return "mjpeg"
	default:
		return fmt.Sprintf("format(%d)", int32(f))
	}
}

// Resolution is a width/height pair in pixels.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Fixed-layout native value structs are re-exported from the boundary
// package to avoid an import cycle (the boundary cannot import this
// package).

// PoseData is a 6DOF pose sample read by value from a pose frame.
type PoseData = sys.PoseData

// Vector is a native xyz float32 triple.
type Vector = sys.Vector

// Quaternion is a native xyzw float32 quadruple.
type Quaternion = sys.Quaternion

// Vertex is one point-cloud vertex (xyz, metres).
type Vertex = sys.Vertex

// TextureCoordinate is one point-cloud texture coordinate (uv).
type TextureCoordinate = sys.TextureCoordinate
