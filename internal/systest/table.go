package systest

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/e7canasta/orion-realsense/internal/sys"
)

// FrameState describes one fake native frame.
type FrameState struct {
	// Number, Timestamp, Domain, Data and Metadata back the common frame
	// accessors.
	Number    uint64
	Timestamp float64
	Domain    int32
	Data      []byte
	Metadata  map[int32]int64

	// Extensions lists the extension ids this frame is extendable to.
	Extensions []int32

	// Video accessors.
	Width, Height, Stride, BitsPerPixel int

	// Depth/disparity accessors. A pixel absent from Distances is out of
	// bounds and fails the distance query.
	Distances map[[2]int]float32
	Baseline  float32

	// Pose and points accessors.
	Pose      sys.PoseData
	Vertices  []sys.Vertex
	TexCoords []sys.TextureCoordinate

	// Embedded holds a composite's sub-frames. Every extraction allocates
	// a fresh handle over the sub-frame state, like the SDK does.
	Embedded []*FrameState

	// Sensor and Profile back the frame's sensor and stream-profile
	// queries.
	Sensor  *SensorState
	Profile *ProfileState

	// ExtractFailMsg, when non-empty, makes extraction of index
	// ExtractFailAt fail.
	ExtractFailAt  int
	ExtractFailMsg string

	// Errs scripts failures for individual calls, keyed by sys.API method
	// name ("FrameNumber", "EmbeddedFramesCount", ...).
	Errs map[string]string
}

// OptionState describes one supported sensor option. Options not present
// in SensorState.Options are unsupported.
type OptionState struct {
	Value               float32
	Min, Max, Step, Def float32
	ReadOnly            bool
	GetErr, SetErr      string
	RangeErr            string
	SupportsErr         string
	ReadOnlyErr         string
}

// ProfileState describes one fake stream profile.
type ProfileState struct {
	Stream    int32
	Format    int32
	Index     int
	UID       int
	Framerate int
	// DataErr makes the profile-data query fail, so the wrapper must skip
	// this profile.
	DataErr string
}

// SensorState describes one fake native sensor.
type SensorState struct {
	Options map[int32]*OptionState
	Infos   map[int32]string

	// Extensions lists supported capability ids; ExtendProbeErrs scripts
	// probe failures per id.
	Extensions      []int32
	ExtendProbeErrs map[int32]string

	// Profiles backs the sensor's stream-profile list. ProfilesErr fails
	// the list fetch (and therefore sensor construction); ProfileCountErr
	// fails the count query; ProfileItemErrs fails individual fetches.
	Profiles        []*ProfileState
	ProfilesErr     string
	ProfileCountErr string
	ProfileItemErrs map[int]string

	// Device, when set, backs CreateDeviceFromSensor.
	Device    *DeviceState
	DeviceErr string

	handle sys.SensorHandle
}

// DeviceState describes one fake native device.
type DeviceState struct {
	Infos   map[int32]string
	Sensors []*SensorState
	// CreateSensorErrs fails sensor creation at the given list index.
	CreateSensorErrs map[int]string
}

// Table is the fake SDK: a handle table implementing sys.API. Zero is
// never a valid handle. All methods are safe for concurrent use.
type Table struct {
	mu   sync.Mutex
	next uintptr

	// Devices backs the context-level device enumeration.
	Devices []*DeviceState

	frames       map[sys.FrameHandle]*FrameState
	sensors      map[sys.SensorHandle]*SensorState
	sensorLists  map[sys.SensorListHandle][]*SensorState
	sensorOwners map[sys.SensorListHandle]*DeviceState
	profiles     map[sys.ProfileHandle]*ProfileState
	profileLists map[sys.ProfileListHandle]*SensorState
	devices      map[sys.DeviceHandle]*DeviceState
	deviceLists  map[sys.DeviceListHandle][]*DeviceState
	contexts     map[sys.ContextHandle]bool
	errors       map[sys.Error]string

	frameReleases      map[sys.FrameHandle]int
	sensorDeletes      map[sys.SensorHandle]int
	profileListDeletes int
	deviceDeletes      int
	extractCalls       int
	setOptionCalls     int
	doubleReleases     int
	freedErrors        int
}

// NewTable returns an empty fake SDK.
func NewTable() *Table {
	return &Table{
		frames:        make(map[sys.FrameHandle]*FrameState),
		sensors:       make(map[sys.SensorHandle]*SensorState),
		sensorLists:   make(map[sys.SensorListHandle][]*SensorState),
		sensorOwners:  make(map[sys.SensorListHandle]*DeviceState),
		profiles:      make(map[sys.ProfileHandle]*ProfileState),
		profileLists:  make(map[sys.ProfileListHandle]*SensorState),
		devices:       make(map[sys.DeviceHandle]*DeviceState),
		deviceLists:   make(map[sys.DeviceListHandle][]*DeviceState),
		contexts:      make(map[sys.ContextHandle]bool),
		errors:        make(map[sys.Error]string),
		frameReleases: make(map[sys.FrameHandle]int),
		sensorDeletes: make(map[sys.SensorHandle]int),
	}
}

func (t *Table) alloc() uintptr {
	t.next++
	return t.next
}

// fail allocates a native error object and stores it in the slot.
func (t *Table) fail(slot *sys.Error, msg string) {
	e := sys.Error(t.alloc())
	t.errors[e] = msg
	*slot = e
}

// scripted fails the call when the state scripts an error message for it.
func (t *Table) scripted(errs map[string]string, call string, slot *sys.Error) bool {
	if msg, ok := errs[call]; ok && msg != "" {
		t.fail(slot, msg)
		return true
	}
	return false
}

// AddFrame registers a frame state and returns its handle, modelling a
// frame delivered by the SDK.
func (t *Table) AddFrame(st *FrameState) sys.FrameHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := sys.FrameHandle(t.alloc())
	t.frames[h] = st
	return h
}

// AddSensor registers a sensor state and returns its stable handle.
func (t *Table) AddSensor(st *SensorState) sys.SensorHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sensorHandle(st)
}

func (t *Table) sensorHandle(st *SensorState) sys.SensorHandle {
	if st.handle == 0 {
		st.handle = sys.SensorHandle(t.alloc())
		t.sensors[st.handle] = st
	}
	return st.handle
}

// Inspection accessors for tests.

// FrameReleases returns how often the given frame handle was released.
func (t *Table) FrameReleases(h sys.FrameHandle) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frameReleases[h]
}

// LiveFrames counts registered frame handles that were never released.
func (t *Table) LiveFrames() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	live := 0
	for h := range t.frames {
		if t.frameReleases[h] == 0 {
			live++
		}
	}
	return live
}

// DoubleReleases counts releases of handles already released or unknown.
func (t *Table) DoubleReleases() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.doubleReleases
}

// ExtractCalls counts ExtractFrame invocations.
func (t *Table) ExtractCalls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.extractCalls
}

// SetOptionCalls counts native SetOption invocations.
func (t *Table) SetOptionCalls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.setOptionCalls
}

// SensorDeletes returns how often the given sensor handle was deleted.
func (t *Table) SensorDeletes(h sys.SensorHandle) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sensorDeletes[h]
}

// TotalSensorDeletes counts sensor deletions across all handles, fresh
// owned copies included.
func (t *Table) TotalSensorDeletes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	var n int
	for _, c := range t.sensorDeletes {
		n += c
	}
	return n
}

// ProfileListDeletes counts profile-list deletions.
func (t *Table) ProfileListDeletes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.profileListDeletes
}

// DeviceDeletes counts device deletions.
func (t *Table) DeviceDeletes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.deviceDeletes
}

// PendingErrors counts native error objects that were allocated but never
// freed; the error protocol requires this to be zero after any sequence
// of wrapper calls.
func (t *Table) PendingErrors() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.errors)
}

// sys.API implementation.

func (t *Table) ErrorMessage(e sys.Error) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if msg, ok := t.errors[e]; ok {
		return msg
	}
	return fmt.Sprintf("systest: unknown error handle %d", e)
}

func (t *Table) FreeError(e sys.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.errors, e)
	t.freedErrors++
}

func (t *Table) ReleaseFrame(f sys.FrameHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.frames[f]; !ok || t.frameReleases[f] > 0 {
		t.doubleReleases++
	}
	t.frameReleases[f]++
}

func (t *Table) frameState(f sys.FrameHandle) *FrameState {
	st, ok := t.frames[f]
	if !ok {
		panic(fmt.Sprintf("systest: unknown frame handle %d", f))
	}
	return st
}

func (t *Table) FrameMetadata(f sys.FrameHandle, kind int32, err *sys.Error) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	v, ok := st.Metadata[kind]
	if !ok {
		t.fail(err, fmt.Sprintf("metadata %d not available", kind))
		return 0
	}
	return v
}

func (t *Table) FrameNumber(f sys.FrameHandle, err *sys.Error) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FrameNumber", err) {
		return 0
	}
	return st.Number
}

func (t *Table) FrameDataSize(f sys.FrameHandle, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FrameDataSize", err) {
		return 0
	}
	return len(st.Data)
}

func (t *Table) FrameTimestamp(f sys.FrameHandle, err *sys.Error) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FrameTimestamp", err) {
		return 0
	}
	return st.Timestamp
}

func (t *Table) FrameTimestampDomain(f sys.FrameHandle, err *sys.Error) int32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FrameTimestampDomain", err) {
		return 0
	}
	return st.Domain
}

func (t *Table) FrameData(f sys.FrameHandle, err *sys.Error) unsafe.Pointer {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FrameData", err) {
		return nil
	}
	if len(st.Data) == 0 {
		return nil
	}
	return unsafe.Pointer(&st.Data[0])
}

func (t *Table) FrameSensor(f sys.FrameHandle, err *sys.Error) sys.SensorHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FrameSensor", err) {
		return 0
	}
	if st.Sensor == nil {
		t.fail(err, "frame has no sensor")
		return 0
	}
	return t.sensorHandle(st.Sensor)
}

func (t *Table) FrameStreamProfile(f sys.FrameHandle, err *sys.Error) sys.ProfileHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FrameStreamProfile", err) {
		return 0
	}
	if st.Profile == nil {
		t.fail(err, "frame has no stream profile")
		return 0
	}
	h := sys.ProfileHandle(t.alloc())
	t.profiles[h] = st.Profile
	return h
}

func (t *Table) IsFrameExtendableTo(f sys.FrameHandle, extension int32, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "IsFrameExtendableTo", err) {
		return 0
	}
	for _, e := range st.Extensions {
		if e == extension {
			return 1
		}
	}
	return 0
}

func (t *Table) EmbeddedFramesCount(f sys.FrameHandle, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "EmbeddedFramesCount", err) {
		return 0
	}
	return len(st.Embedded)
}

func (t *Table) ExtractFrame(f sys.FrameHandle, index int, err *sys.Error) sys.FrameHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.extractCalls++
	st := t.frameState(f)
	if st.ExtractFailMsg != "" && index == st.ExtractFailAt {
		t.fail(err, st.ExtractFailMsg)
		return 0
	}
	if index < 0 || index >= len(st.Embedded) {
		t.fail(err, fmt.Sprintf("extract index %d out of range", index))
		return 0
	}
	h := sys.FrameHandle(t.alloc())
	t.frames[h] = st.Embedded[index]
	return h
}

func (t *Table) FrameWidth(f sys.FrameHandle, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FrameWidth", err) {
		return 0
	}
	return st.Width
}

func (t *Table) FrameHeight(f sys.FrameHandle, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FrameHeight", err) {
		return 0
	}
	return st.Height
}

func (t *Table) FrameStrideInBytes(f sys.FrameHandle, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FrameStrideInBytes", err) {
		return 0
	}
	return st.Stride
}

func (t *Table) FrameBitsPerPixel(f sys.FrameHandle, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FrameBitsPerPixel", err) {
		return 0
	}
	return st.BitsPerPixel
}

func (t *Table) DepthFrameDistance(f sys.FrameHandle, x, y int, err *sys.Error) float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	d, ok := st.Distances[[2]int{x, y}]
	if !ok {
		t.fail(err, fmt.Sprintf("pixel (%d,%d) out of bounds", x, y))
		return 0
	}
	return d
}

func (t *Table) DepthStereoFrameBaseline(f sys.FrameHandle, err *sys.Error) float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "DepthStereoFrameBaseline", err) {
		return 0
	}
	return st.Baseline
}

func (t *Table) PoseFrameData(f sys.FrameHandle, out *sys.PoseData, err *sys.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "PoseFrameData", err) {
		return
	}
	*out = st.Pose
}

func (t *Table) FramePointsCount(f sys.FrameHandle, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FramePointsCount", err) {
		return 0
	}
	return len(st.Vertices)
}

func (t *Table) FrameVertices(f sys.FrameHandle, err *sys.Error) unsafe.Pointer {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FrameVertices", err) {
		return nil
	}
	if len(st.Vertices) == 0 {
		return nil
	}
	return unsafe.Pointer(&st.Vertices[0])
}

func (t *Table) FrameTextureCoordinates(f sys.FrameHandle, err *sys.Error) unsafe.Pointer {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.frameState(f)
	if t.scripted(st.Errs, "FrameTextureCoordinates", err) {
		return nil
	}
	if len(st.TexCoords) == 0 {
		return nil
	}
	return unsafe.Pointer(&st.TexCoords[0])
}

func (t *Table) DeleteSensor(s sys.SensorHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sensorDeletes[s]++
}

func (t *Table) CreateSensor(list sys.SensorListHandle, index int, err *sys.Error) sys.SensorHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	sensors, ok := t.sensorLists[list]
	if !ok {
		t.fail(err, "unknown sensor list")
		return 0
	}
	if owner := t.sensorOwners[list]; owner != nil {
		if msg, ok := owner.CreateSensorErrs[index]; ok && msg != "" {
			t.fail(err, msg)
			return 0
		}
	}
	if index < 0 || index >= len(sensors) {
		t.fail(err, fmt.Sprintf("sensor index %d out of range", index))
		return 0
	}
	// Owned copy: fresh handle over the same state, as rs2_create_sensor
	// returns a handle the caller must delete.
	h := sys.SensorHandle(t.alloc())
	t.sensors[h] = sensors[index]
	return h
}

func (t *Table) SensorsCount(list sys.SensorListHandle, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	sensors, ok := t.sensorLists[list]
	if !ok {
		t.fail(err, "unknown sensor list")
		return 0
	}
	return len(sensors)
}

func (t *Table) DeleteSensorList(list sys.SensorListHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sensorLists, list)
}

func (t *Table) QuerySensors(d sys.DeviceHandle, err *sys.Error) sys.SensorListHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.devices[d]
	if !ok {
		t.fail(err, "unknown device handle")
		return 0
	}
	h := sys.SensorListHandle(t.alloc())
	t.sensorLists[h] = st.Sensors
	t.sensorOwners[h] = st
	return h
}

func (t *Table) sensorState(s sys.SensorHandle) *SensorState {
	st, ok := t.sensors[s]
	if !ok {
		panic(fmt.Sprintf("systest: unknown sensor handle %d", s))
	}
	return st
}

func (t *Table) IsSensorExtendableTo(s sys.SensorHandle, extension int32, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.sensorState(s)
	if msg, ok := st.ExtendProbeErrs[extension]; ok && msg != "" {
		t.fail(err, msg)
		return 0
	}
	for _, e := range st.Extensions {
		if e == extension {
			return 1
		}
	}
	return 0
}

func (t *Table) option(s sys.SensorHandle, option int32) *OptionState {
	return t.sensorState(s).Options[option]
}

func (t *Table) GetOption(s sys.SensorHandle, option int32, err *sys.Error) float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	opt := t.option(s, option)
	if opt == nil {
		t.fail(err, "option not supported")
		return 0
	}
	if opt.GetErr != "" {
		t.fail(err, opt.GetErr)
		return 0
	}
	return opt.Value
}

func (t *Table) SetOption(s sys.SensorHandle, option int32, value float32, err *sys.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.setOptionCalls++
	opt := t.option(s, option)
	if opt == nil {
		t.fail(err, "option not supported")
		return
	}
	if opt.SetErr != "" {
		t.fail(err, opt.SetErr)
		return
	}
	opt.Value = value
}

func (t *Table) OptionRange(s sys.SensorHandle, option int32, min, max, step, def *float32, err *sys.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	opt := t.option(s, option)
	if opt == nil {
		t.fail(err, "option not supported")
		return
	}
	if opt.RangeErr != "" {
		t.fail(err, opt.RangeErr)
		return
	}
	*min, *max, *step, *def = opt.Min, opt.Max, opt.Step, opt.Def
}

func (t *Table) SupportsOption(s sys.SensorHandle, option int32, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	opt := t.option(s, option)
	if opt == nil {
		return 0
	}
	if opt.SupportsErr != "" {
		t.fail(err, opt.SupportsErr)
		return 0
	}
	return 1
}

func (t *Table) IsOptionReadOnly(s sys.SensorHandle, option int32, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	opt := t.option(s, option)
	if opt == nil {
		return 0
	}
	if opt.ReadOnlyErr != "" {
		t.fail(err, opt.ReadOnlyErr)
		return 0
	}
	if opt.ReadOnly {
		return 1
	}
	return 0
}

func (t *Table) SensorInfo(s sys.SensorHandle, info int32, err *sys.Error) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.sensorState(s).Infos[info]
	if !ok {
		t.fail(err, "camera info not supported")
		return ""
	}
	return v
}

func (t *Table) SupportsSensorInfo(s sys.SensorHandle, info int32, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.sensorState(s).Infos[info]; ok {
		return 1
	}
	return 0
}

func (t *Table) StreamProfiles(s sys.SensorHandle, err *sys.Error) sys.ProfileListHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.sensorState(s)
	if st.ProfilesErr != "" {
		t.fail(err, st.ProfilesErr)
		return 0
	}
	h := sys.ProfileListHandle(t.alloc())
	t.profileLists[h] = st
	return h
}

func (t *Table) DeleteStreamProfilesList(list sys.ProfileListHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.profileLists, list)
	t.profileListDeletes++
}

func (t *Table) StreamProfilesCount(list sys.ProfileListHandle, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.profileLists[list]
	if !ok {
		t.fail(err, "unknown profile list")
		return 0
	}
	if st.ProfileCountErr != "" {
		t.fail(err, st.ProfileCountErr)
		return 0
	}
	return len(st.Profiles)
}

func (t *Table) StreamProfile(list sys.ProfileListHandle, index int, err *sys.Error) sys.ProfileHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.profileLists[list]
	if !ok {
		t.fail(err, "unknown profile list")
		return 0
	}
	if msg, ok := st.ProfileItemErrs[index]; ok && msg != "" {
		t.fail(err, msg)
		return 0
	}
	if index < 0 || index >= len(st.Profiles) {
		t.fail(err, fmt.Sprintf("profile index %d out of range", index))
		return 0
	}
	h := sys.ProfileHandle(t.alloc())
	t.profiles[h] = st.Profiles[index]
	return h
}

func (t *Table) StreamProfileData(p sys.ProfileHandle, stream, format *int32, index, uid, framerate *int, err *sys.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.profiles[p]
	if !ok {
		t.fail(err, "unknown profile handle")
		return
	}
	if st.DataErr != "" {
		t.fail(err, st.DataErr)
		return
	}
	*stream = st.Stream
	*format = st.Format
	*index = st.Index
	*uid = st.UID
	*framerate = st.Framerate
}

func (t *Table) CreateDeviceFromSensor(s sys.SensorHandle, err *sys.Error) sys.DeviceHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.sensorState(s)
	if st.DeviceErr != "" {
		t.fail(err, st.DeviceErr)
		return 0
	}
	if st.Device == nil {
		t.fail(err, "sensor has no device")
		return 0
	}
	h := sys.DeviceHandle(t.alloc())
	t.devices[h] = st.Device
	return h
}

func (t *Table) DeleteDevice(d sys.DeviceHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.devices, d)
	t.deviceDeletes++
}

func (t *Table) DeviceInfo(d sys.DeviceHandle, info int32, err *sys.Error) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.devices[d]
	if !ok {
		t.fail(err, "unknown device handle")
		return ""
	}
	v, ok := st.Infos[info]
	if !ok {
		t.fail(err, "camera info not supported")
		return ""
	}
	return v
}

func (t *Table) SupportsDeviceInfo(d sys.DeviceHandle, info int32, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.devices[d]
	if !ok {
		t.fail(err, "unknown device handle")
		return 0
	}
	if _, ok := st.Infos[info]; ok {
		return 1
	}
	return 0
}

func (t *Table) CreateContext(err *sys.Error) sys.ContextHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := sys.ContextHandle(t.alloc())
	t.contexts[h] = true
	return h
}

func (t *Table) DeleteContext(c sys.ContextHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.contexts, c)
}

func (t *Table) QueryDevices(c sys.ContextHandle, err *sys.Error) sys.DeviceListHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := sys.DeviceListHandle(t.alloc())
	t.deviceLists[h] = t.Devices
	return h
}

func (t *Table) DeviceCount(list sys.DeviceListHandle, err *sys.Error) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	devices, ok := t.deviceLists[list]
	if !ok {
		t.fail(err, "unknown device list")
		return 0
	}
	return len(devices)
}

func (t *Table) CreateDevice(list sys.DeviceListHandle, index int, err *sys.Error) sys.DeviceHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	devices, ok := t.deviceLists[list]
	if !ok {
		t.fail(err, "unknown device list")
		return 0
	}
	if index < 0 || index >= len(devices) {
		t.fail(err, fmt.Sprintf("device index %d out of range", index))
		return 0
	}
	h := sys.DeviceHandle(t.alloc())
	t.devices[h] = devices[index]
	return h
}

func (t *Table) DeleteDeviceList(list sys.DeviceListHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.deviceLists, list)
}
