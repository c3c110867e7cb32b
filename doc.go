// Package realsense is a memory-safe ownership layer over the
// librealsense2 C ABI: frames, sensors, stream profiles and devices as
// typed Go wrappers around reference-counted native handles.
//
// This module is part of Orion 2.0 and implements Bounded Context "Depth
// Acquisition". It binds the SDK the way stream-capture binds GStreamer:
// a thin internal cgo boundary, with all lifetime and error discipline in
// Go on top of it. Camera algorithms, streaming and calibration stay in
// the native SDK; this layer only invokes them.
//
// # Ownership model
//
// Every wrapper owns exactly one native handle and releases it exactly
// once:
//
//	frame := ... // from the consuming application's pipeline
//	defer frame.Release()
//
// Release is idempotent. Operations that transfer ownership (kind
// downcasts, consuming iteration) neutralise the source wrapper, so its
// Release becomes a no-op and the handle cannot be freed twice. Borrowed
// handles (a sensor obtained from a frame) are never freed by the
// borrower.
//
// # Frame kinds
//
// Frames come out of the SDK untyped. The concrete kind is established
// with a runtime extendability probe and a zero-cost re-tag:
//
//	depth, ok, err := realsense.ExtendTo[realsense.DepthFrame](f)
//	if err != nil { ... }   // probe failed
//	if !ok { ... }          // not a depth frame; f still valid
//	defer depth.Release()   // f is consumed; depth owns the handle
//
// Kind-specific operations live on the typed frames only: Distance on
// DepthFrame, Resolution on VideoFrame, Motion on MotionFrame, and so on.
// Composite frames decompose by index (Get), by consuming iteration
// (Iter) or by typed scan (FramesOfExtension).
//
// # Concurrency
//
// There is no internal threading: every operation is a synchronous
// foreign call. Wrappers may be handed between goroutines, but concurrent
// use of one wrapper needs external synchronisation. Cancellation and
// timeouts belong to the pipeline layer above this module.
//
// # Building
//
// The native binding is only compiled with the "rs2" build tag and links
// librealsense2:
//
//	go build -tags rs2 ./...
//
// Without the tag the module still builds and its tests run against an
// in-memory fake of the SDK; Open then returns ErrBindingUnavailable.
package realsense
