// Package systest is an in-memory stand-in for the native SDK, used by
// the wrapper tests. It implements sys.API as a handle table with
// scriptable state and failures, and counts every create, release and
// delete so tests can assert release-exactly-once and call-count
// properties.
//
// State objects (FrameState, SensorState, ...) describe what the fake
// SDK reports; tests build them, register them with a Table, and hand the
// Table to the wrapper as its API. Scripted failures are per-call message
// strings; a non-empty message makes the corresponding native call fail
// through the regular error-slot protocol, including the allocation of a
// native error object that the wrapper is expected to free.
package systest
