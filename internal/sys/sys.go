package sys

import (
	"errors"
	"unsafe"
)

// ErrUnavailable is returned by Load when the module was built without the
// "rs2" build tag and no native binding is linked in.
var ErrUnavailable = errors.New("sys: librealsense2 binding not compiled in (build with -tags rs2)")

// Opaque native handles. Zero is the null handle.
type (
	// FrameHandle references a native rs2_frame.
	FrameHandle uintptr
	// SensorHandle references a native rs2_sensor.
	SensorHandle uintptr
	// SensorListHandle references a native rs2_sensor_list.
	SensorListHandle uintptr
	// ProfileHandle references a native rs2_stream_profile.
	ProfileHandle uintptr
	// ProfileListHandle references a native rs2_stream_profile_list.
	ProfileListHandle uintptr
	// DeviceHandle references a native rs2_device.
	DeviceHandle uintptr
	// DeviceListHandle references a native rs2_device_list.
	DeviceListHandle uintptr
	// ContextHandle references a native rs2_context.
	ContextHandle uintptr
	// Error references a native rs2_error. Zero means no error.
	Error uintptr
)

// Vector is the native rs2_vector layout.
type Vector struct {
	X, Y, Z float32
}

// Quaternion is the native rs2_quaternion layout.
type Quaternion struct {
	X, Y, Z, W float32
}

// PoseData is the native rs2_pose layout, read by value through an
// out-parameter.
type PoseData struct {
	Translation         Vector
	Velocity            Vector
	Acceleration        Vector
	Rotation            Quaternion
	AngularVelocity     Vector
	AngularAcceleration Vector
	TrackerConfidence   uint32
	MapperConfidence    uint32
}

// Vertex is the native rs2_vertex layout (xyz, metres).
type Vertex [3]float32

// TextureCoordinate is the native rs2_pixel layout (uv).
type TextureCoordinate [2]float32

// API is the set of native calls the wrapper layer depends on. The cgo
// binding implements it against librealsense2; systest implements it as an
// in-memory handle table.
//
// The call names track the rs2_* functions they bind, without the prefix.
type API interface {
	// ErrorMessage returns the human-readable message of a pending error.
	ErrorMessage(e Error) string
	// FreeError releases a native error object. Every non-zero slot must be
	// freed exactly once.
	FreeError(e Error)

	// Frame lifetime and accessors.
	ReleaseFrame(f FrameHandle)
	FrameMetadata(f FrameHandle, kind int32, err *Error) int64
	FrameNumber(f FrameHandle, err *Error) uint64
	FrameDataSize(f FrameHandle, err *Error) int
	FrameTimestamp(f FrameHandle, err *Error) float64
	FrameTimestampDomain(f FrameHandle, err *Error) int32
	FrameData(f FrameHandle, err *Error) unsafe.Pointer
	FrameSensor(f FrameHandle, err *Error) SensorHandle
	FrameStreamProfile(f FrameHandle, err *Error) ProfileHandle
	IsFrameExtendableTo(f FrameHandle, extension int32, err *Error) int

	// Composite frames.
	EmbeddedFramesCount(f FrameHandle, err *Error) int
	ExtractFrame(f FrameHandle, index int, err *Error) FrameHandle

	// Typed frame accessors.
	FrameWidth(f FrameHandle, err *Error) int
	FrameHeight(f FrameHandle, err *Error) int
	FrameStrideInBytes(f FrameHandle, err *Error) int
	FrameBitsPerPixel(f FrameHandle, err *Error) int
	DepthFrameDistance(f FrameHandle, x, y int, err *Error) float32
	DepthStereoFrameBaseline(f FrameHandle, err *Error) float32
	PoseFrameData(f FrameHandle, out *PoseData, err *Error)
	FramePointsCount(f FrameHandle, err *Error) int
	FrameVertices(f FrameHandle, err *Error) unsafe.Pointer
	FrameTextureCoordinates(f FrameHandle, err *Error) unsafe.Pointer

	// Sensors and options.
	DeleteSensor(s SensorHandle)
	CreateSensor(list SensorListHandle, index int, err *Error) SensorHandle
	SensorsCount(list SensorListHandle, err *Error) int
	DeleteSensorList(list SensorListHandle)
	QuerySensors(d DeviceHandle, err *Error) SensorListHandle
	IsSensorExtendableTo(s SensorHandle, extension int32, err *Error) int
	GetOption(s SensorHandle, option int32, err *Error) float32
	SetOption(s SensorHandle, option int32, value float32, err *Error)
	OptionRange(s SensorHandle, option int32, min, max, step, def *float32, err *Error)
	SupportsOption(s SensorHandle, option int32, err *Error) int
	IsOptionReadOnly(s SensorHandle, option int32, err *Error) int
	SensorInfo(s SensorHandle, info int32, err *Error) string
	SupportsSensorInfo(s SensorHandle, info int32, err *Error) int

	// Stream profiles.
	StreamProfiles(s SensorHandle, err *Error) ProfileListHandle
	DeleteStreamProfilesList(list ProfileListHandle)
	StreamProfilesCount(list ProfileListHandle, err *Error) int
	StreamProfile(list ProfileListHandle, index int, err *Error) ProfileHandle
	StreamProfileData(p ProfileHandle, stream, format *int32, index, uid, framerate *int, err *Error)

	// Devices and context.
	CreateDeviceFromSensor(s SensorHandle, err *Error) DeviceHandle
	DeleteDevice(d DeviceHandle)
	DeviceInfo(d DeviceHandle, info int32, err *Error) string
	SupportsDeviceInfo(d DeviceHandle, info int32, err *Error) int
	CreateContext(err *Error) ContextHandle
	DeleteContext(c ContextHandle)
	QueryDevices(c ContextHandle, err *Error) DeviceListHandle
	DeviceCount(list DeviceListHandle, err *Error) int
	CreateDevice(list DeviceListHandle, index int, err *Error) DeviceHandle
	DeleteDeviceList(list DeviceListHandle)
}
