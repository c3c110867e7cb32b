package realsense

import (
	"bytes"
	"errors"
	"testing"

	"github.com/e7canasta/orion-realsense/internal/systest"
)

func TestFrameReleaseExactlyOnce(t *testing.T) {
	table := systest.NewTable()
	h := table.AddFrame(&systest.FrameState{Number: 7})

	f := newFrame(table, h)
	f.Release()

	if got := table.FrameReleases(h); got != 1 {
		t.Fatalf("FrameReleases = %d, want 1", got)
	}

	// Releasing again must be a no-op, not a double release.
	f.Release()
	if got := table.FrameReleases(h); got != 1 {
		t.Errorf("FrameReleases after second Release = %d, want 1", got)
	}
	if got := table.DoubleReleases(); got != 0 {
		t.Errorf("DoubleReleases = %d, want 0", got)
	}
}

func TestFrameAccessors(t *testing.T) {
	table := systest.NewTable()
	h := table.AddFrame(&systest.FrameState{
		Number:    42,
		Timestamp: 1234.5,
		Domain:    int32(TimestampDomainGlobalTime),
		Data:      []byte{1, 2, 3, 4},
		Metadata:  map[int32]int64{int32(MetadataActualExposure): 8500},
	})
	f := newFrame(table, h)
	defer f.Release()

	if n, err := f.Number(); err != nil || n != 42 {
		t.Errorf("Number() = %d, %v, want 42, nil", n, err)
	}
	if ts, err := f.Timestamp(); err != nil || ts != 1234.5 {
		t.Errorf("Timestamp() = %v, %v, want 1234.5, nil", ts, err)
	}
	if d, err := f.TimestampDomain(); err != nil || d != TimestampDomainGlobalTime {
		t.Errorf("TimestampDomain() = %v, %v, want global-time, nil", d, err)
	}
	if size, err := f.DataSize(); err != nil || size != 4 {
		t.Errorf("DataSize() = %d, %v, want 4, nil", size, err)
	}

	data, err := f.Data()
	if err != nil {
		t.Fatalf("Data() error: %v", err)
	}
	if !bytes.Equal(data, []byte{1, 2, 3, 4}) {
		t.Errorf("Data() = %v, want [1 2 3 4]", data)
	}

	v, err := f.Metadata(MetadataActualExposure)
	if err != nil || v != 8500 {
		t.Errorf("Metadata(actual-exposure) = %d, %v, want 8500, nil", v, err)
	}
	if _, err := f.Metadata(MetadataWhiteBalance); err == nil {
		t.Error("Metadata(white-balance) succeeded, want error for absent field")
	}

	if got := table.PendingErrors(); got != 0 {
		t.Errorf("PendingErrors = %d, want 0 (native error objects must be freed)", got)
	}
}

func TestFrameUnknownTimestampDomain(t *testing.T) {
	table := systest.NewTable()
	f := newFrame(table, table.AddFrame(&systest.FrameState{Domain: 99}))
	defer f.Release()

	_, err := f.TimestampDomain()
	if !errors.Is(err, ErrUnknownTimestampDomain) {
		t.Fatalf("TimestampDomain() error = %v, want ErrUnknownTimestampDomain", err)
	}
}

func TestFrameQueryFailure(t *testing.T) {
	table := systest.NewTable()
	f := newFrame(table, table.AddFrame(&systest.FrameState{
		Errs: map[string]string{"FrameNumber": "hardware comms failure"},
	}))
	defer f.Release()

	_, err := f.Number()
	var native *NativeError
	if !errors.As(err, &native) {
		t.Fatalf("Number() error = %v, want *NativeError", err)
	}
	if native.Message != "hardware comms failure" {
		t.Errorf("native message = %q, want %q", native.Message, "hardware comms failure")
	}
	if got := table.PendingErrors(); got != 0 {
		t.Errorf("PendingErrors = %d, want 0", got)
	}
}

func TestExtendToNotExtendable(t *testing.T) {
	table := systest.NewTable()
	h := table.AddFrame(&systest.FrameState{
		Number:     11,
		Data:       []byte{1, 2},
		Extensions: []int32{int32(ExtensionMotionFrame)},
	})
	f := newFrame(table, h)
	defer f.Release()

	depth, ok, err := ExtendTo[DepthFrame](f)
	if err != nil {
		t.Fatalf("ExtendTo error: %v", err)
	}
	if ok || depth != nil {
		t.Fatalf("ExtendTo = %v, %v, want nil, false", depth, ok)
	}

	// The source must be untouched and fully usable.
	if f.h != h {
		t.Fatalf("source handle changed after failed extend: %v != %v", f.h, h)
	}
	if size, err := f.DataSize(); err != nil || size != 2 {
		t.Errorf("DataSize() after failed extend = %d, %v, want 2, nil", size, err)
	}
	if got := table.FrameReleases(h); got != 0 {
		t.Errorf("FrameReleases = %d, want 0 (no handle destroyed)", got)
	}
	if got := table.LiveFrames(); got != 1 {
		t.Errorf("LiveFrames = %d, want 1 (no handle created)", got)
	}
}

func TestExtendToConsumesSource(t *testing.T) {
	table := systest.NewTable()
	h := table.AddFrame(&systest.FrameState{
		Extensions: []int32{int32(ExtensionDepthFrame), int32(ExtensionVideoFrame)},
		Distances:  map[[2]int]float32{{3, 4}: 1.25},
	})
	f := newFrame(table, h)

	depth, ok, err := ExtendTo[DepthFrame](f)
	if err != nil || !ok {
		t.Fatalf("ExtendTo = %v, %v, want ok", err, ok)
	}

	// Re-tag, not copy: the typed wrapper holds the original handle and no
	// new native resource exists.
	if depth.h != h {
		t.Fatalf("extended handle = %v, want original %v", depth.h, h)
	}
	if got := table.LiveFrames(); got != 1 {
		t.Errorf("LiveFrames = %d, want 1", got)
	}

	// The source is neutralised; its Release must not free the handle the
	// typed wrapper now owns.
	f.Release()
	if got := table.FrameReleases(h); got != 0 {
		t.Fatalf("FrameReleases after source Release = %d, want 0", got)
	}

	if d, err := depth.Distance(3, 4); err != nil || d != 1.25 {
		t.Errorf("Distance(3,4) = %v, %v, want 1.25, nil", d, err)
	}

	depth.Release()
	if got := table.FrameReleases(h); got != 1 {
		t.Errorf("FrameReleases = %d, want 1", got)
	}
	if got := table.DoubleReleases(); got != 0 {
		t.Errorf("DoubleReleases = %d, want 0", got)
	}
}

func TestExtendToProbeFailure(t *testing.T) {
	table := systest.NewTable()
	h := table.AddFrame(&systest.FrameState{
		Errs: map[string]string{"IsFrameExtendableTo": "probe failed"},
	})
	f := newFrame(table, h)
	defer f.Release()

	_, ok, err := ExtendTo[VideoFrame](f)
	if err == nil || ok {
		t.Fatalf("ExtendTo = ok=%v err=%v, want probe error", ok, err)
	}
	if f.h != h {
		t.Error("source consumed by failed probe")
	}
	if got := table.PendingErrors(); got != 0 {
		t.Errorf("PendingErrors = %d, want 0", got)
	}
}

func TestFrameSensorIsBorrowed(t *testing.T) {
	table := systest.NewTable()
	sensorState := &systest.SensorState{
		Infos: map[int32]string{int32(CameraInfoName): "Stereo Module"},
	}
	f := newFrame(table, table.AddFrame(&systest.FrameState{Sensor: sensorState}))
	defer f.Release()

	s, err := f.Sensor()
	if err != nil {
		t.Fatalf("Sensor() error: %v", err)
	}

	if name, ok := s.Info(CameraInfoName); !ok || name != "Stereo Module" {
		t.Errorf("Info(name) = %q, %v, want Stereo Module, true", name, ok)
	}

	// Releasing the wrapper must free the profile list it fetched but
	// never the borrowed sensor handle.
	handle := table.AddSensor(sensorState)
	s.Release()
	if got := table.SensorDeletes(handle); got != 0 {
		t.Errorf("SensorDeletes = %d, want 0 (borrowed handle)", got)
	}
	if got := table.ProfileListDeletes(); got != 1 {
		t.Errorf("ProfileListDeletes = %d, want 1", got)
	}
}

func TestFrameStreamProfile(t *testing.T) {
	table := systest.NewTable()
	f := newFrame(table, table.AddFrame(&systest.FrameState{
		Profile: &systest.ProfileState{
			Stream:    int32(StreamDepth),
			Format:    int32(FormatZ16),
			Framerate: 30,
			UID:       9,
		},
	}))
	defer f.Release()

	p, err := f.StreamProfile()
	if err != nil {
		t.Fatalf("StreamProfile() error: %v", err)
	}
	if p.Stream() != StreamDepth || p.Format() != FormatZ16 || p.Framerate() != 30 || p.UID() != 9 {
		t.Errorf("profile = %v/%v uid=%d fps=%d, want depth/z16 uid=9 fps=30",
			p.Stream(), p.Format(), p.UID(), p.Framerate())
	}
}
