package realsense

import (
	"unsafe"

	"github.com/e7canasta/orion-realsense/internal/sys"
)

// frame owns exactly one native frame handle. It is embedded by every
// typed frame, so the common accessors are promoted onto all of them.
//
// Ownership: the handle is non-zero from construction until Release or
// take. take transfers ownership out and neutralises the wrapper, making a
// later Release a no-op; this is how kind re-tagging and consuming
// iteration move the handle without risking a double release.
//
// A frame may be handed to another goroutine, but concurrent use of the
// same frame requires external synchronisation.
type frame struct {
	api sys.API
	h   sys.FrameHandle
}

// Release returns the native frame to the SDK. Idempotent; releasing a
// taken or already-released frame is a no-op.
func (f *frame) Release() {
	if f.h == 0 {
		return
	}
	f.api.ReleaseFrame(f.h)
	f.h = 0
}

// take transfers the handle out and neutralises the wrapper.
func (f *frame) take() sys.FrameHandle {
	h := f.h
	f.h = 0
	return h
}

// attach binds a handle to the wrapper. Used when re-tagging a frame kind;
// the handle must have been taken from its previous owner.
func (f *frame) attach(api sys.API, h sys.FrameHandle) {
	f.api = api
	f.h = h
}

// Metadata reads one metadata field. Fails if the frame does not carry
// that field.
func (f *frame) Metadata(kind FrameMetadata) (int64, error) {
	var slot sys.Error
	v := f.api.FrameMetadata(f.h, int32(kind), &slot)
	if err := checkError(f.api, slot); err != nil {
		return 0, err
	}
	return v, nil
}

// Number returns the frame's sequence number.
func (f *frame) Number() (uint64, error) {
	var slot sys.Error
	v := f.api.FrameNumber(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return 0, err
	}
	return v, nil
}

// DataSize returns the size of the frame's data buffer in bytes.
func (f *frame) DataSize() (int, error) {
	var slot sys.Error
	v := f.api.FrameDataSize(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return 0, err
	}
	return v, nil
}

// Timestamp returns the frame timestamp in milliseconds.
func (f *frame) Timestamp() (float64, error) {
	var slot sys.Error
	v := f.api.FrameTimestamp(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return 0, err
	}
	return v, nil
}

// TimestampDomain reports which clock produced the frame timestamp. An
// unrecognised native code is an error, not a silent fallback.
func (f *frame) TimestampDomain() (TimestampDomain, error) {
	var slot sys.Error
	v := f.api.FrameTimestampDomain(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return 0, err
	}
	return timestampDomainFromNative(v)
}

// Data returns the frame's raw buffer. The returned slice aliases native
// memory owned by the frame: it is valid only until the frame is released
// and must be treated as read-only.
func (f *frame) Data() ([]byte, error) {
	size, err := f.DataSize()
	if err != nil {
		return nil, err
	}
	var slot sys.Error
	p := f.api.FrameData(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return nil, err
	}
	if size == 0 || p == nil {
		return nil, nil
	}
	return unsafe.Slice((*byte)(p), size), nil
}

// Sensor returns a wrapper around the sensor that produced this frame.
// The wrapper is independent of the frame and must be released by the
// caller, but it borrows the underlying sensor handle: releasing the
// wrapper frees its profile list only, never the sensor itself.
func (f *frame) Sensor() (*Sensor, error) {
	var slot sys.Error
	h := f.api.FrameSensor(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return nil, err
	}
	return newSensor(f.api, h)
}

// StreamProfile returns the profile the frame was captured under. The
// profile is borrowed from the frame and needs no release.
func (f *frame) StreamProfile() (*StreamProfile, error) {
	var slot sys.Error
	h := f.api.FrameStreamProfile(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return nil, err
	}
	return newStreamProfile(f.api, h)
}

// Frame is an untyped frame: one unit of sensor output whose concrete kind
// has not been established. Downcast to a typed frame with ExtendTo.
type Frame struct {
	frame
}

// newFrame wraps a validated non-zero native frame handle, taking
// ownership. Never fails.
func newFrame(api sys.API, h sys.FrameHandle) *Frame {
	f := &Frame{}
	f.attach(api, h)
	return f
}

// typedFrame is the closed set of kind-tagged frames, each carrying its
// native extension identifier. Satisfied via the embedded frame plus a
// per-kind extensionKind method.
type typedFrame interface {
	extensionKind() Extension
	attach(api sys.API, h sys.FrameHandle)
}

// ExtendTo downcasts an untyped frame to the given kind.
//
// On success the source frame is consumed: its handle moves into the
// returned wrapper with no native calls beyond the extendability probe and
// no new resources. If the frame is not extendable to that kind, ok is
// false and the source remains valid and fully usable. A probe failure is
// reported as an error and also leaves the source untouched.
//
//	depth, ok, err := realsense.ExtendTo[realsense.DepthFrame](f)
func ExtendTo[T any, PT interface {
	*T
	typedFrame
}](f *Frame) (t *T, ok bool, err error) {
	t = new(T)
	pt := PT(t)

	var slot sys.Error
	v := f.api.IsFrameExtendableTo(f.h, int32(pt.extensionKind()), &slot)
	if err := checkError(f.api, slot); err != nil {
		return nil, false, err
	}
	if v == 0 {
		return nil, false, nil
	}
	pt.attach(f.api, f.take())
	return t, true, nil
}
