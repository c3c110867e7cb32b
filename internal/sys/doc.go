// Package sys defines the librealsense2 C ABI surface used by the wrapper.
//
// Every fallible native call takes a *Error out-parameter as its last
// argument, matching the shape of the C signatures. Callers must initialise
// the slot to zero, invoke the call, and inspect the slot before trusting
// the return value; the library may leave return values undefined when it
// reports an error.
//
// Handles are opaque pointers into the native object graph, carried here as
// uintptr-backed named types. Zero is the null handle. The package never
// interprets a handle; it only passes them across the boundary.
//
// The real binding links librealsense2 through cgo and is only compiled
// with the "rs2" build tag. Without the tag, Load returns ErrUnavailable,
// which keeps the module buildable (and its tests runnable against the
// in-memory fake) on machines without the SDK.
package sys
