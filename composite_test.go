package realsense

import (
	"testing"

	"github.com/e7canasta/orion-realsense/internal/systest"
)

func newComposite(t *testing.T, table *systest.Table, st *systest.FrameState) *CompositeFrame {
	t.Helper()
	if st.Extensions == nil {
		st.Extensions = []int32{int32(ExtensionCompositeFrame)}
	}
	f := newFrame(table, table.AddFrame(st))
	c, ok, err := ExtendTo[CompositeFrame](f)
	if err != nil || !ok {
		t.Fatalf("ExtendTo[CompositeFrame] = %v, %v, want ok", err, ok)
	}
	return c
}

func TestCompositeGetBounds(t *testing.T) {
	embedded := []*systest.FrameState{
		{Number: 1}, {Number: 2}, {Number: 3},
	}
	tests := []struct {
		name  string
		count int
	}{
		{"empty", 0},
		{"single", 1},
		{"several", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := systest.NewTable()
			c := newComposite(t, table, &systest.FrameState{
				Embedded: embedded[:tt.count],
			})
			defer c.Release()

			if got := c.Count(); got != tt.count {
				t.Fatalf("Count() = %d, want %d", got, tt.count)
			}

			for i := 0; i < tt.count; i++ {
				f, ok, err := c.Get(i)
				if err != nil || !ok {
					t.Fatalf("Get(%d) = %v, %v, want ok", i, ok, err)
				}
				if n, err := f.Number(); err != nil || n != uint64(i+1) {
					t.Errorf("Get(%d).Number() = %d, %v, want %d", i, n, err, i+1)
				}
				f.Release()
			}

			// Out of range is absence, not failure.
			for _, i := range []int{-1, tt.count} {
				f, ok, err := c.Get(i)
				if err != nil {
					t.Errorf("Get(%d) error = %v, want nil", i, err)
				}
				if ok || f != nil {
					t.Errorf("Get(%d) = %v, %v, want nil, false", i, f, ok)
				}
			}

			if got := table.PendingErrors(); got != 0 {
				t.Errorf("PendingErrors = %d, want 0", got)
			}
		})
	}
}

func TestCompositeGetRepeatable(t *testing.T) {
	table := systest.NewTable()
	c := newComposite(t, table, &systest.FrameState{
		Embedded: []*systest.FrameState{{Number: 5}},
	})
	defer c.Release()

	// Extraction does not remove the sub-frame.
	for i := 0; i < 2; i++ {
		f, ok, err := c.Get(0)
		if err != nil || !ok {
			t.Fatalf("Get(0) pass %d = %v, %v, want ok", i, ok, err)
		}
		f.Release()
	}
	if got := table.ExtractCalls(); got != 2 {
		t.Errorf("ExtractCalls = %d, want 2", got)
	}
}

func TestCompositeIterEmpty(t *testing.T) {
	table := systest.NewTable()
	c := newComposite(t, table, &systest.FrameState{})

	iter, err := c.Iter()
	if err != nil {
		t.Fatalf("Iter() error: %v", err)
	}
	defer iter.Close()

	if f, ok := iter.Next(); ok || f != nil {
		t.Fatalf("Next() on empty = %v, %v, want nil, false", f, ok)
	}
	if err := iter.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
	if got := table.ExtractCalls(); got != 0 {
		t.Errorf("ExtractCalls = %d, want 0 for an empty composite", got)
	}
}

func TestCompositeIterConsumes(t *testing.T) {
	table := systest.NewTable()
	h := table.AddFrame(&systest.FrameState{
		Extensions: []int32{int32(ExtensionCompositeFrame)},
		Embedded:   []*systest.FrameState{{Number: 1}, {Number: 2}},
	})
	f := newFrame(table, h)
	c, ok, err := ExtendTo[CompositeFrame](f)
	if err != nil || !ok {
		t.Fatalf("ExtendTo = %v, %v, want ok", err, ok)
	}

	iter, err := c.Iter()
	if err != nil {
		t.Fatalf("Iter() error: %v", err)
	}

	// The composite was consumed; its Release must be inert with respect
	// to the handle the iterator now owns.
	c.Release()
	if got := table.FrameReleases(h); got != 0 {
		t.Fatalf("FrameReleases after composite Release = %d, want 0", got)
	}

	var numbers []uint64
	for {
		sub, ok := iter.Next()
		if !ok {
			break
		}
		n, err := sub.Number()
		if err != nil {
			t.Fatalf("Number() error: %v", err)
		}
		numbers = append(numbers, n)
		sub.Release()
	}
	if err := iter.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	if len(numbers) != 2 || numbers[0] != 1 || numbers[1] != 2 {
		t.Errorf("yielded numbers = %v, want [1 2]", numbers)
	}

	iter.Close()
	if got := table.FrameReleases(h); got != 1 {
		t.Errorf("FrameReleases after Close = %d, want 1", got)
	}
	iter.Close()
	if got := table.DoubleReleases(); got != 0 {
		t.Errorf("DoubleReleases = %d, want 0", got)
	}
}

func TestCompositeIterStopsAtFailure(t *testing.T) {
	table := systest.NewTable()
	c := newComposite(t, table, &systest.FrameState{
		Embedded:       []*systest.FrameState{{Number: 1}, {Number: 2}, {Number: 3}},
		ExtractFailAt:  1,
		ExtractFailMsg: "usb transfer aborted",
	})

	iter, err := c.Iter()
	if err != nil {
		t.Fatalf("Iter() error: %v", err)
	}
	defer iter.Close()

	first, ok := iter.Next()
	if !ok {
		t.Fatal("Next() = false on first frame, want true")
	}
	first.Release()

	if f, ok := iter.Next(); ok || f != nil {
		t.Fatalf("Next() after failure = %v, %v, want nil, false", f, ok)
	}
	if err := iter.Err(); err == nil {
		t.Fatal("Err() = nil, want the extraction failure")
	}

	// The sequence is over; the third frame must never be attempted.
	if f, ok := iter.Next(); ok || f != nil {
		t.Fatalf("Next() after end = %v, %v, want nil, false", f, ok)
	}
	if got := table.ExtractCalls(); got != 2 {
		t.Errorf("ExtractCalls = %d, want 2 (no attempt past the failure)", got)
	}
	if got := table.PendingErrors(); got != 0 {
		t.Errorf("PendingErrors = %d, want 0", got)
	}
}

func TestFramesOfExtension(t *testing.T) {
	table := systest.NewTable()
	c := newComposite(t, table, &systest.FrameState{
		Embedded: []*systest.FrameState{
			{
				Number:     1,
				Extensions: []int32{int32(ExtensionVideoFrame), int32(ExtensionDepthFrame)},
				Distances:  map[[2]int]float32{{0, 0}: 0.5},
			},
			{
				Number:     2,
				Extensions: []int32{int32(ExtensionMotionFrame)},
			},
			{
				Number:     3,
				Extensions: []int32{int32(ExtensionVideoFrame), int32(ExtensionDepthFrame)},
				Distances:  map[[2]int]float32{{0, 0}: 1.5},
			},
		},
	})
	defer c.Release()

	live := table.LiveFrames()

	depths := FramesOfExtension[DepthFrame](c)
	if len(depths) != 2 {
		t.Fatalf("matched %d depth frames, want 2", len(depths))
	}
	for i, want := range []float32{0.5, 1.5} {
		d, err := depths[i].Distance(0, 0)
		if err != nil || d != want {
			t.Errorf("depths[%d].Distance = %v, %v, want %v", i, d, err, want)
		}
		depths[i].Release()
	}

	// The non-matching extracted frame must have been released on the
	// spot, leaving no extra live handles behind.
	if got := table.LiveFrames(); got != live {
		t.Errorf("LiveFrames = %d, want %d", got, live)
	}

	// The composite survives the scan.
	if got := c.Count(); got != 3 {
		t.Errorf("Count() after scan = %d, want 3", got)
	}

	if none := FramesOfExtension[PoseFrame](c); none != nil {
		t.Errorf("FramesOfExtension[PoseFrame] = %v, want nil", none)
	}
}

func TestFramesOfExtensionSkipsFailedExtraction(t *testing.T) {
	table := systest.NewTable()
	c := newComposite(t, table, &systest.FrameState{
		Embedded: []*systest.FrameState{
			{Extensions: []int32{int32(ExtensionVideoFrame)}, Width: 640},
			{Extensions: []int32{int32(ExtensionVideoFrame)}, Width: 1280},
		},
		ExtractFailAt:  0,
		ExtractFailMsg: "decode error",
	})
	defer c.Release()

	videos := FramesOfExtension[VideoFrame](c)
	if len(videos) != 1 {
		t.Fatalf("matched %d video frames, want 1 (failed extraction skipped)", len(videos))
	}
	w, err := videos[0].Width()
	if err != nil || w != 1280 {
		t.Errorf("Width() = %d, %v, want 1280", w, err)
	}
	videos[0].Release()

	if got := table.PendingErrors(); got != 0 {
		t.Errorf("PendingErrors = %d, want 0", got)
	}
}
