// Package record serialises frame snapshots to a CBOR stream for offline
// analysis. A recording is one header followed by any number of
// snapshots, each self-contained: the stream can be cut at any snapshot
// boundary and the prefix stays readable.
//
// Snapshots copy the frame data out of native memory, so releasing the
// source frames does not invalidate a recording.
package record
