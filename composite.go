package realsense

import (
	"log/slog"

	"github.com/e7canasta/orion-realsense/internal/sys"
)

// CompositeFrame is a container frame bundling sub-frames captured
// together. It wraps an immutable capture, so the embedded count never
// changes after creation.
type CompositeFrame struct {
	frame
}

func (*CompositeFrame) extensionKind() Extension { return ExtensionCompositeFrame }

// Count returns the number of embedded sub-frames. A failed count query
// degrades to 0: the count feeds loop bounds and must never take a
// consumer down.
func (c *CompositeFrame) Count() int {
	n, err := c.count()
	if err != nil {
		slog.Debug("realsense: embedded frame count query failed, treating as empty", "error", err)
		return 0
	}
	return n
}

// count is the strict variant used where the failure must not be hidden.
func (c *CompositeFrame) count() (int, error) {
	var slot sys.Error
	n := c.api.EmbeddedFramesCount(c.h, &slot)
	if err := checkError(c.api, slot); err != nil {
		return 0, err
	}
	return n, nil
}

// Get extracts the sub-frame at index as a fresh, independently owned
// untyped frame. ok is false when index is out of range. Extraction does
// not remove the sub-frame: the composite stays valid and may be queried
// repeatedly.
func (c *CompositeFrame) Get(index int) (f *Frame, ok bool, err error) {
	n, err := c.count()
	if err != nil {
		return nil, false, err
	}
	if index < 0 || index >= n {
		return nil, false, nil
	}
	var slot sys.Error
	h := c.api.ExtractFrame(c.h, index, &slot)
	if err := checkError(c.api, slot); err != nil {
		return nil, false, err
	}
	return newFrame(c.api, h), true, nil
}

// Iter consumes the composite into a FrameIter. On success the composite
// is neutralised: the iterator owns the handle and the one-shot extraction
// sequence it yields. If the initial count query fails, the composite is
// untouched and still owned by the caller.
func (c *CompositeFrame) Iter() (*FrameIter, error) {
	n, err := c.count()
	if err != nil {
		return nil, err
	}
	return &FrameIter{
		api:   c.api,
		h:     c.take(),
		count: n,
	}, nil
}

// FrameIter extracts sub-frames sequentially from a composite whose
// handle it owns. The sequence is finite and not restartable: it ends
// after count frames or at the first extraction failure, whichever comes
// first. A failure is reported by Err after Next returns false.
//
//	iter, err := composite.Iter()
//	if err != nil { ... }
//	defer iter.Close()
//	for {
//		f, ok := iter.Next()
//		if !ok {
//			break
//		}
//		// use f, then f.Release()
//	}
//	if err := iter.Err(); err != nil { ... }
type FrameIter struct {
	api   sys.API
	h     sys.FrameHandle
	index int
	count int
	done  bool
	err   error
}

// Next extracts and returns the next sub-frame as a fresh owned untyped
// frame. It returns false when the sequence is over, either exhausted or
// stopped by an extraction failure; no extraction call is made once the
// sequence is over, and none at all for an empty composite.
func (it *FrameIter) Next() (*Frame, bool) {
	if it.done || it.index >= it.count {
		it.done = true
		return nil, false
	}
	var slot sys.Error
	h := it.api.ExtractFrame(it.h, it.index, &slot)
	if err := checkError(it.api, slot); err != nil {
		it.err = err
		it.done = true
		return nil, false
	}
	it.index++
	return newFrame(it.api, h), true
}

// Err returns the extraction failure that ended the sequence, if any.
func (it *FrameIter) Err() error {
	return it.err
}

// Close releases the composite handle the iterator took ownership of.
// Idempotent.
func (it *FrameIter) Close() {
	if it.h == 0 {
		return
	}
	it.api.ReleaseFrame(it.h)
	it.h = 0
	it.done = true
}

// FramesOfExtension scans the composite for sub-frames of the given kind
// without consuming it. The scan is best-effort: a sub-frame whose
// extraction or kind probe fails is skipped, never aborting the scan, and
// a sub-frame of another kind is released on the spot. Returns nil when
// nothing matched.
func FramesOfExtension[T any, PT interface {
	*T
	typedFrame
}](c *CompositeFrame) []*T {
	ext := PT(new(T)).extensionKind()

	var matched []*T
	n := c.Count()
	for i := 0; i < n; i++ {
		var slot sys.Error
		h := c.api.ExtractFrame(c.h, i, &slot)
		if drainError(c.api, slot) {
			continue
		}

		v := c.api.IsFrameExtendableTo(h, int32(ext), &slot)
		if drainError(c.api, slot) || v == 0 {
			c.api.ReleaseFrame(h)
			continue
		}

		t := new(T)
		PT(t).attach(c.api, h)
		matched = append(matched, t)
	}
	return matched
}
