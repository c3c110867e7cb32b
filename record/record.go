package record

import (
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	realsense "github.com/e7canasta/orion-realsense"
)

// Version is the recording format version written into every header.
const Version = 1

// Header opens a recording and identifies the session that produced it.
type Header struct {
	SessionID string    `cbor:"session_id"`
	CreatedAt time.Time `cbor:"created_at"`
	Source    string    `cbor:"source"`
	Version   int       `cbor:"version"`
}

// NewHeader returns a header for a fresh session. Source names the
// producer, typically a device serial or tool name.
func NewHeader(source string) Header {
	return Header{
		SessionID: uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Source:    source,
		Version:   Version,
	}
}

// Snapshot is one recorded frame. Stream fields are zero when the frame
// carried no stream profile; Metadata holds only the fields the frame
// actually reported, keyed by native metadata id.
type Snapshot struct {
	Number    uint64          `cbor:"number"`
	Timestamp float64         `cbor:"timestamp"`
	Domain    int32           `cbor:"domain"`
	Stream    int32           `cbor:"stream,omitempty"`
	Format    int32           `cbor:"format,omitempty"`
	Framerate int             `cbor:"framerate,omitempty"`
	Data      []byte          `cbor:"data,omitempty"`
	Metadata  map[int32]int64 `cbor:"metadata,omitempty"`
}

// Source is the frame surface a snapshot is taken from. Every frame kind
// satisfies it.
type Source interface {
	Number() (uint64, error)
	Timestamp() (float64, error)
	TimestampDomain() (realsense.TimestampDomain, error)
	Data() ([]byte, error)
	Metadata(realsense.FrameMetadata) (int64, error)
	StreamProfile() (*realsense.StreamProfile, error)
}

// Capture reads a snapshot out of a live frame. The frame data is copied;
// the frame may be released as soon as Capture returns. The identity
// fields must be readable or Capture fails; metadata fields and the
// stream profile are optional and absent ones are simply left out.
func Capture(f Source) (*Snapshot, error) {
	number, err := f.Number()
	if err != nil {
		return nil, fmt.Errorf("record: could not read frame number: %w", err)
	}
	ts, err := f.Timestamp()
	if err != nil {
		return nil, fmt.Errorf("record: could not read frame timestamp: %w", err)
	}
	domain, err := f.TimestampDomain()
	if err != nil {
		return nil, fmt.Errorf("record: could not read timestamp domain: %w", err)
	}
	data, err := f.Data()
	if err != nil {
		return nil, fmt.Errorf("record: could not read frame data: %w", err)
	}

	s := &Snapshot{
		Number:    number,
		Timestamp: ts,
		Domain:    int32(domain),
	}
	if len(data) > 0 {
		s.Data = make([]byte, len(data))
		copy(s.Data, data)
	}

	for _, field := range realsense.MetadataFields {
		v, err := f.Metadata(field)
		if err != nil {
			continue
		}
		if s.Metadata == nil {
			s.Metadata = make(map[int32]int64)
		}
		s.Metadata[int32(field)] = v
	}

	if profile, err := f.StreamProfile(); err == nil {
		s.Stream = int32(profile.Stream())
		s.Format = int32(profile.Format())
		s.Framerate = profile.Framerate()
	}
	return s, nil
}

// Writer appends a header and snapshots to an output stream.
type Writer struct {
	enc   *cbor.Encoder
	count uint64
}

// NewWriter writes the header and returns a writer for the snapshots
// that follow it.
func NewWriter(w io.Writer, h Header) (*Writer, error) {
	enc := cbor.NewEncoder(w)
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("record: could not write header: %w", err)
	}
	return &Writer{enc: enc}, nil
}

// Write appends one snapshot.
func (w *Writer) Write(s *Snapshot) error {
	if err := w.enc.Encode(s); err != nil {
		return fmt.Errorf("record: could not write snapshot: %w", err)
	}
	w.count++
	return nil
}

// Count returns the number of snapshots written so far.
func (w *Writer) Count() uint64 {
	return w.count
}

// Reader consumes a recording produced by Writer.
type Reader struct {
	dec    *cbor.Decoder
	header Header
}

// NewReader reads and validates the header. A version other than Version
// or a malformed session id is rejected.
func NewReader(r io.Reader) (*Reader, error) {
	dec := cbor.NewDecoder(r)
	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("record: could not read header: %w", err)
	}
	if h.Version != Version {
		return nil, fmt.Errorf("record: unsupported recording version %d", h.Version)
	}
	if _, err := uuid.Parse(h.SessionID); err != nil {
		return nil, fmt.Errorf("record: malformed session id %q: %w", h.SessionID, err)
	}
	return &Reader{dec: dec, header: h}, nil
}

// Header returns the recording's header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next snapshot, or io.EOF at the end of the stream.
func (r *Reader) Next() (*Snapshot, error) {
	var s Snapshot
	if err := r.dec.Decode(&s); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("record: could not read snapshot: %w", err)
	}
	return &s, nil
}
