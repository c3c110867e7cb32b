package realsense

import (
	"errors"

	"github.com/e7canasta/orion-realsense/internal/sys"
)

// errNullProfile guards profile construction; a zero handle here means the
// SDK broke its own contract.
var errNullProfile = errors.New("realsense: null stream profile handle")

// StreamProfile describes one configurable output stream of a sensor:
// modality, format, stream index, unique id, and frame rate. Profiles are
// borrowed from the list or frame that produced them and carry no native
// resource of their own; the data is read once at construction.
type StreamProfile struct {
	stream    StreamKind
	format    Format
	index     int
	uid       int
	framerate int
}

// newStreamProfile reads the profile data out of a native handle. Fails
// on a zero handle or when the data query fails.
func newStreamProfile(api sys.API, h sys.ProfileHandle) (*StreamProfile, error) {
	if h == 0 {
		return nil, errNullProfile
	}
	var p StreamProfile
	var stream, format int32
	var slot sys.Error
	api.StreamProfileData(h, &stream, &format, &p.index, &p.uid, &p.framerate, &slot)
	if err := checkError(api, slot); err != nil {
		return nil, err
	}
	p.stream = StreamKind(stream)
	p.format = Format(format)
	return &p, nil
}

// Stream returns the profile's stream modality.
func (p *StreamProfile) Stream() StreamKind { return p.stream }

// Format returns the profile's data format.
func (p *StreamProfile) Format() Format { return p.format }

// Index returns the stream index, distinguishing multiple streams of the
// same modality.
func (p *StreamProfile) Index() int { return p.index }

// UID returns the profile's unique identifier within its device.
func (p *StreamProfile) UID() int { return p.uid }

// Framerate returns the stream's frame rate in frames per second.
func (p *StreamProfile) Framerate() int { return p.framerate }

func (p *StreamProfile) String() string {
	return p.stream.String() + "/" + p.format.String()
}
