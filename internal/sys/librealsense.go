//go:build rs2

package sys

/*
#cgo LDFLAGS: -lrealsense2
#include <librealsense2/rs.h>
#include <stdlib.h>
*/
import "C"

import "unsafe"

// binding is the cgo-backed implementation of API.
type binding struct{}

// Load returns the librealsense2 binding.
func Load() (API, error) {
	return binding{}, nil
}

func frame(h FrameHandle) *C.rs2_frame {
	return (*C.rs2_frame)(unsafe.Pointer(uintptr(h)))
}

func sensor(h SensorHandle) *C.rs2_sensor {
	return (*C.rs2_sensor)(unsafe.Pointer(uintptr(h)))
}

func options(h SensorHandle) *C.rs2_options {
	return (*C.rs2_options)(unsafe.Pointer(uintptr(h)))
}

func sensorList(h SensorListHandle) *C.rs2_sensor_list {
	return (*C.rs2_sensor_list)(unsafe.Pointer(uintptr(h)))
}

func profile(h ProfileHandle) *C.rs2_stream_profile {
	return (*C.rs2_stream_profile)(unsafe.Pointer(uintptr(h)))
}

func profileList(h ProfileListHandle) *C.rs2_stream_profile_list {
	return (*C.rs2_stream_profile_list)(unsafe.Pointer(uintptr(h)))
}

func device(h DeviceHandle) *C.rs2_device {
	return (*C.rs2_device)(unsafe.Pointer(uintptr(h)))
}

func deviceList(h DeviceListHandle) *C.rs2_device_list {
	return (*C.rs2_device_list)(unsafe.Pointer(uintptr(h)))
}

func context(h ContextHandle) *C.rs2_context {
	return (*C.rs2_context)(unsafe.Pointer(uintptr(h)))
}

// setErr stores a pending native error into the caller's slot.
func setErr(slot *Error, cerr *C.rs2_error) {
	if cerr != nil {
		*slot = Error(uintptr(unsafe.Pointer(cerr)))
	}
}

func (binding) ErrorMessage(e Error) string {
	return C.GoString(C.rs2_get_error_message((*C.rs2_error)(unsafe.Pointer(uintptr(e)))))
}

func (binding) FreeError(e Error) {
	C.rs2_free_error((*C.rs2_error)(unsafe.Pointer(uintptr(e))))
}

func (binding) ReleaseFrame(f FrameHandle) {
	C.rs2_release_frame(frame(f))
}

func (binding) FrameMetadata(f FrameHandle, kind int32, err *Error) int64 {
	var cerr *C.rs2_error
	v := C.rs2_get_frame_metadata(frame(f), C.rs2_frame_metadata_value(kind), &cerr)
	setErr(err, cerr)
	return int64(v)
}

func (binding) FrameNumber(f FrameHandle, err *Error) uint64 {
	var cerr *C.rs2_error
	v := C.rs2_get_frame_number(frame(f), &cerr)
	setErr(err, cerr)
	return uint64(v)
}

func (binding) FrameDataSize(f FrameHandle, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_get_frame_data_size(frame(f), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) FrameTimestamp(f FrameHandle, err *Error) float64 {
	var cerr *C.rs2_error
	v := C.rs2_get_frame_timestamp(frame(f), &cerr)
	setErr(err, cerr)
	return float64(v)
}

func (binding) FrameTimestampDomain(f FrameHandle, err *Error) int32 {
	var cerr *C.rs2_error
	v := C.rs2_get_frame_timestamp_domain(frame(f), &cerr)
	setErr(err, cerr)
	return int32(v)
}

func (binding) FrameData(f FrameHandle, err *Error) unsafe.Pointer {
	var cerr *C.rs2_error
	p := C.rs2_get_frame_data(frame(f), &cerr)
	setErr(err, cerr)
	return unsafe.Pointer(p)
}

func (binding) FrameSensor(f FrameHandle, err *Error) SensorHandle {
	var cerr *C.rs2_error
	p := C.rs2_get_frame_sensor(frame(f), &cerr)
	setErr(err, cerr)
	return SensorHandle(uintptr(unsafe.Pointer(p)))
}

func (binding) FrameStreamProfile(f FrameHandle, err *Error) ProfileHandle {
	var cerr *C.rs2_error
	p := C.rs2_get_frame_stream_profile(frame(f), &cerr)
	setErr(err, cerr)
	return ProfileHandle(uintptr(unsafe.Pointer(p)))
}

func (binding) IsFrameExtendableTo(f FrameHandle, extension int32, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_is_frame_extendable_to(frame(f), C.rs2_extension(extension), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) EmbeddedFramesCount(f FrameHandle, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_embedded_frames_count(frame(f), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) ExtractFrame(f FrameHandle, index int, err *Error) FrameHandle {
	var cerr *C.rs2_error
	p := C.rs2_extract_frame(frame(f), C.int(index), &cerr)
	setErr(err, cerr)
	return FrameHandle(uintptr(unsafe.Pointer(p)))
}

func (binding) FrameWidth(f FrameHandle, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_get_frame_width(frame(f), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) FrameHeight(f FrameHandle, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_get_frame_height(frame(f), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) FrameStrideInBytes(f FrameHandle, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_get_frame_stride_in_bytes(frame(f), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) FrameBitsPerPixel(f FrameHandle, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_get_frame_bits_per_pixel(frame(f), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) DepthFrameDistance(f FrameHandle, x, y int, err *Error) float32 {
	var cerr *C.rs2_error
	v := C.rs2_depth_frame_get_distance(frame(f), C.int(x), C.int(y), &cerr)
	setErr(err, cerr)
	return float32(v)
}

func (binding) DepthStereoFrameBaseline(f FrameHandle, err *Error) float32 {
	var cerr *C.rs2_error
	v := C.rs2_depth_stereo_frame_get_baseline(frame(f), &cerr)
	setErr(err, cerr)
	return float32(v)
}

func (binding) PoseFrameData(f FrameHandle, out *PoseData, err *Error) {
	var cerr *C.rs2_error
	C.rs2_pose_frame_get_pose_data(frame(f), (*C.rs2_pose)(unsafe.Pointer(out)), &cerr)
	setErr(err, cerr)
}

func (binding) FramePointsCount(f FrameHandle, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_get_frame_points_count(frame(f), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) FrameVertices(f FrameHandle, err *Error) unsafe.Pointer {
	var cerr *C.rs2_error
	p := C.rs2_get_frame_vertices(frame(f), &cerr)
	setErr(err, cerr)
	return unsafe.Pointer(p)
}

func (binding) FrameTextureCoordinates(f FrameHandle, err *Error) unsafe.Pointer {
	var cerr *C.rs2_error
	p := C.rs2_get_frame_texture_coordinates(frame(f), &cerr)
	setErr(err, cerr)
	return unsafe.Pointer(p)
}

func (binding) DeleteSensor(s SensorHandle) {
	C.rs2_delete_sensor(sensor(s))
}

func (binding) CreateSensor(list SensorListHandle, index int, err *Error) SensorHandle {
	var cerr *C.rs2_error
	p := C.rs2_create_sensor(sensorList(list), C.int(index), &cerr)
	setErr(err, cerr)
	return SensorHandle(uintptr(unsafe.Pointer(p)))
}

func (binding) SensorsCount(list SensorListHandle, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_get_sensors_count(sensorList(list), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) DeleteSensorList(list SensorListHandle) {
	C.rs2_delete_sensor_list(sensorList(list))
}

func (binding) QuerySensors(d DeviceHandle, err *Error) SensorListHandle {
	var cerr *C.rs2_error
	p := C.rs2_query_sensors(device(d), &cerr)
	setErr(err, cerr)
	return SensorListHandle(uintptr(unsafe.Pointer(p)))
}

func (binding) IsSensorExtendableTo(s SensorHandle, extension int32, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_is_sensor_extendable_to(sensor(s), C.rs2_extension(extension), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) GetOption(s SensorHandle, option int32, err *Error) float32 {
	var cerr *C.rs2_error
	v := C.rs2_get_option(options(s), C.rs2_option(option), &cerr)
	setErr(err, cerr)
	return float32(v)
}

func (binding) SetOption(s SensorHandle, option int32, value float32, err *Error) {
	var cerr *C.rs2_error
	C.rs2_set_option(options(s), C.rs2_option(option), C.float(value), &cerr)
	setErr(err, cerr)
}

func (binding) OptionRange(s SensorHandle, option int32, min, max, step, def *float32, err *Error) {
	var cerr *C.rs2_error
	C.rs2_get_option_range(options(s), C.rs2_option(option),
		(*C.float)(min), (*C.float)(max), (*C.float)(step), (*C.float)(def), &cerr)
	setErr(err, cerr)
}

func (binding) SupportsOption(s SensorHandle, option int32, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_supports_option(options(s), C.rs2_option(option), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) IsOptionReadOnly(s SensorHandle, option int32, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_is_option_read_only(options(s), C.rs2_option(option), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) SensorInfo(s SensorHandle, info int32, err *Error) string {
	var cerr *C.rs2_error
	p := C.rs2_get_sensor_info(sensor(s), C.rs2_camera_info(info), &cerr)
	setErr(err, cerr)
	if cerr != nil || p == nil {
		return ""
	}
	return C.GoString(p)
}

func (binding) SupportsSensorInfo(s SensorHandle, info int32, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_supports_sensor_info(sensor(s), C.rs2_camera_info(info), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) StreamProfiles(s SensorHandle, err *Error) ProfileListHandle {
	var cerr *C.rs2_error
	p := C.rs2_get_stream_profiles(sensor(s), &cerr)
	setErr(err, cerr)
	return ProfileListHandle(uintptr(unsafe.Pointer(p)))
}

func (binding) DeleteStreamProfilesList(list ProfileListHandle) {
	C.rs2_delete_stream_profiles_list(profileList(list))
}

func (binding) StreamProfilesCount(list ProfileListHandle, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_get_stream_profiles_count(profileList(list), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) StreamProfile(list ProfileListHandle, index int, err *Error) ProfileHandle {
	var cerr *C.rs2_error
	p := C.rs2_get_stream_profile(profileList(list), C.int(index), &cerr)
	setErr(err, cerr)
	return ProfileHandle(uintptr(unsafe.Pointer(p)))
}

func (binding) StreamProfileData(p ProfileHandle, stream, format *int32, index, uid, framerate *int, err *Error) {
	var cerr *C.rs2_error
	var cStream C.rs2_stream
	var cFormat C.rs2_format
	var cIndex, cUID, cFramerate C.int
	C.rs2_get_stream_profile_data(profile(p), &cStream, &cFormat, &cIndex, &cUID, &cFramerate, &cerr)
	setErr(err, cerr)
	if cerr != nil {
		return
	}
	*stream = int32(cStream)
	*format = int32(cFormat)
	*index = int(cIndex)
	*uid = int(cUID)
	*framerate = int(cFramerate)
}

func (binding) CreateDeviceFromSensor(s SensorHandle, err *Error) DeviceHandle {
	var cerr *C.rs2_error
	p := C.rs2_create_device_from_sensor(sensor(s), &cerr)
	setErr(err, cerr)
	return DeviceHandle(uintptr(unsafe.Pointer(p)))
}

func (binding) DeleteDevice(d DeviceHandle) {
	C.rs2_delete_device(device(d))
}

func (binding) DeviceInfo(d DeviceHandle, info int32, err *Error) string {
	var cerr *C.rs2_error
	p := C.rs2_get_device_info(device(d), C.rs2_camera_info(info), &cerr)
	setErr(err, cerr)
	if cerr != nil || p == nil {
		return ""
	}
	return C.GoString(p)
}

func (binding) SupportsDeviceInfo(d DeviceHandle, info int32, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_supports_device_info(device(d), C.rs2_camera_info(info), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) CreateContext(err *Error) ContextHandle {
	var cerr *C.rs2_error
	p := C.rs2_create_context(C.RS2_API_VERSION, &cerr)
	setErr(err, cerr)
	return ContextHandle(uintptr(unsafe.Pointer(p)))
}

func (binding) DeleteContext(c ContextHandle) {
	C.rs2_delete_context(context(c))
}

func (binding) QueryDevices(c ContextHandle, err *Error) DeviceListHandle {
	var cerr *C.rs2_error
	p := C.rs2_query_devices(context(c), &cerr)
	setErr(err, cerr)
	return DeviceListHandle(uintptr(unsafe.Pointer(p)))
}

func (binding) DeviceCount(list DeviceListHandle, err *Error) int {
	var cerr *C.rs2_error
	v := C.rs2_get_device_count(deviceList(list), &cerr)
	setErr(err, cerr)
	return int(v)
}

func (binding) CreateDevice(list DeviceListHandle, index int, err *Error) DeviceHandle {
	var cerr *C.rs2_error
	p := C.rs2_create_device(deviceList(list), C.int(index), &cerr)
	setErr(err, cerr)
	return DeviceHandle(uintptr(unsafe.Pointer(p)))
}

func (binding) DeleteDeviceList(list DeviceListHandle) {
	C.rs2_delete_device_list(deviceList(list))
}
