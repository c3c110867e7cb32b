package realsense

import (
	"errors"

	"github.com/e7canasta/orion-realsense/internal/sys"
)

// Sentinel errors. Option write failures are distinguishable with errors.Is;
// native rejections additionally carry a *NativeError in the chain.
var (
	// ErrOptionNotSupported is returned by SetOption when the sensor does
	// not support the option at all.
	ErrOptionNotSupported = errors.New("realsense: option not supported by sensor")
	// ErrOptionReadOnly is returned by SetOption when the option is
	// supported but cannot be written.
	ErrOptionReadOnly = errors.New("realsense: option is read-only")
	// ErrUnknownTimestampDomain indicates the SDK reported a timestamp
	// domain code this wrapper does not know, which means an ABI mismatch.
	ErrUnknownTimestampDomain = errors.New("realsense: unknown timestamp domain")
	// ErrShortMotionBuffer is returned when a motion frame's buffer is too
	// small to hold a 3-axis float32 sample.
	ErrShortMotionBuffer = errors.New("realsense: motion frame buffer shorter than 12 bytes")
	// ErrBindingUnavailable is returned by Open when the module was built
	// without the native binding.
	ErrBindingUnavailable = sys.ErrUnavailable
)

// NativeError carries the message the SDK attached to a failed call.
type NativeError struct {
	Message string
}

func (e *NativeError) Error() string {
	return "realsense: native call failed: " + e.Message
}

// checkError drains a native error slot. If the call failed it frees the
// native error object and returns a *NativeError with its message; the raw
// return value of the call must then be discarded. Must run after every
// foreign call.
func checkError(api sys.API, slot sys.Error) error {
	if slot == 0 {
		return nil
	}
	msg := api.ErrorMessage(slot)
	api.FreeError(slot)
	return &NativeError{Message: msg}
}

// drainError frees a pending native error without surfacing it, for the
// probe paths that intentionally collapse failure into absence. Reports
// whether an error was pending.
func drainError(api sys.API, slot sys.Error) bool {
	if slot == 0 {
		return false
	}
	api.FreeError(slot)
	return true
}
