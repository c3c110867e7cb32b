package realsense

import (
	"fmt"
	"log/slog"

	"github.com/e7canasta/orion-realsense/internal/sys"
)

// Sensor owns a native sensor handle plus the sensor's stream-profile
// list, which is fetched eagerly at construction and always owned.
//
// Whether the sensor handle itself is owned depends on where it came
// from: a sensor wrapped around a handle reported by a frame borrows it
// (the SDK owns it elsewhere), while a sensor created from a device's
// sensor list owns it. The two cases are separate constructors; there is
// no way to flip ownership after construction.
type Sensor struct {
	api       sys.API
	h         sys.SensorHandle
	profiles  sys.ProfileListHandle
	ownHandle bool
}

// newSensor wraps a borrowed sensor handle. Release frees the profile
// list only, never the sensor handle. Fails if the profile list cannot be
// fetched; no partially-built sensor is ever returned.
func newSensor(api sys.API, h sys.SensorHandle) (*Sensor, error) {
	profiles, err := fetchProfileList(api, h)
	if err != nil {
		return nil, err
	}
	return &Sensor{api: api, h: h, profiles: profiles}, nil
}

// createSensor creates an owned sensor from a sensor list and an index.
// Release frees both the profile list and the sensor handle.
func createSensor(api sys.API, list sys.SensorListHandle, index int) (*Sensor, error) {
	var slot sys.Error
	h := api.CreateSensor(list, index, &slot)
	if err := checkError(api, slot); err != nil {
		return nil, fmt.Errorf("realsense: could not get sensor %d from sensor list: %w", index, err)
	}
	profiles, err := fetchProfileList(api, h)
	if err != nil {
		api.DeleteSensor(h)
		return nil, err
	}
	return &Sensor{api: api, h: h, profiles: profiles, ownHandle: true}, nil
}

func fetchProfileList(api sys.API, h sys.SensorHandle) (sys.ProfileListHandle, error) {
	var slot sys.Error
	profiles := api.StreamProfiles(h, &slot)
	if err := checkError(api, slot); err != nil {
		return 0, fmt.Errorf("realsense: could not generate stream profile list: %w", err)
	}
	return profiles, nil
}

// Release frees the sensor's native resources: always the profile list,
// and the sensor handle only when this wrapper owns it. Idempotent.
func (s *Sensor) Release() {
	if s.profiles != 0 {
		s.api.DeleteStreamProfilesList(s.profiles)
		s.profiles = 0
	}
	if s.ownHandle && s.h != 0 {
		s.api.DeleteSensor(s.h)
	}
	s.h = 0
}

// Device creates a new device handle from this sensor. The device is
// independently owned by the caller and must be released.
func (s *Sensor) Device() (*Device, error) {
	var slot sys.Error
	h := s.api.CreateDeviceFromSensor(s.h, &slot)
	if err := checkError(s.api, slot); err != nil {
		return nil, fmt.Errorf("realsense: could not create device from sensor: %w", err)
	}
	return &Device{api: s.api, h: h}, nil
}

// Extensions probes the fixed capability registry and returns the
// extensions this sensor supports. A failed probe counts as "not
// supported"; probing never returns an error.
func (s *Sensor) Extensions() []Extension {
	var exts []Extension
	for _, ext := range SensorExtensions {
		var slot sys.Error
		v := s.api.IsSensorExtendableTo(s.h, int32(ext), &slot)
		if drainError(s.api, slot) {
			continue
		}
		if v != 0 {
			exts = append(exts, ext)
		}
	}
	return exts
}

// SupportsOption reports whether the sensor knows the option at all. A
// failed query counts as unsupported.
func (s *Sensor) SupportsOption(option Option) bool {
	var slot sys.Error
	v := s.api.SupportsOption(s.h, int32(option), &slot)
	if drainError(s.api, slot) {
		return false
	}
	return v != 0
}

// IsOptionReadOnly reports whether a supported option rejects writes. A
// failed query counts as writable.
func (s *Sensor) IsOptionReadOnly(option Option) bool {
	var slot sys.Error
	v := s.api.IsOptionReadOnly(s.h, int32(option), &slot)
	if drainError(s.api, slot) {
		return false
	}
	return v != 0
}

// GetOption returns the option's current value. ok is false when the
// option is unsupported or the query itself failed; the two are not
// distinguished, callers only learn availability.
func (s *Sensor) GetOption(option Option) (value float32, ok bool) {
	if !s.SupportsOption(option) {
		return 0, false
	}
	var slot sys.Error
	v := s.api.GetOption(s.h, int32(option), &slot)
	if drainError(s.api, slot) {
		return 0, false
	}
	return v, true
}

// OptionRange returns the valid range of the option. Same availability
// semantics as GetOption.
func (s *Sensor) OptionRange(option Option) (OptionRange, bool) {
	if !s.SupportsOption(option) {
		return OptionRange{}, false
	}
	var r OptionRange
	var slot sys.Error
	s.api.OptionRange(s.h, int32(option), &r.Min, &r.Max, &r.Step, &r.Default, &slot)
	if drainError(s.api, slot) {
		return OptionRange{}, false
	}
	return r, true
}

// SetOption writes a new option value. Unlike the read side, failures are
// genuine errors and are distinguished: ErrOptionNotSupported, then
// ErrOptionReadOnly, are checked in that order before the native write is
// attempted; a rejected write surfaces the native error.
func (s *Sensor) SetOption(option Option, value float32) error {
	if !s.SupportsOption(option) {
		return fmt.Errorf("%w: %v", ErrOptionNotSupported, option)
	}
	if s.IsOptionReadOnly(option) {
		return fmt.Errorf("%w: %v", ErrOptionReadOnly, option)
	}
	var slot sys.Error
	s.api.SetOption(s.h, int32(option), value, &slot)
	if err := checkError(s.api, slot); err != nil {
		return fmt.Errorf("realsense: could not set option %v: %w", option, err)
	}
	return nil
}

// StreamProfiles converts the cached profile list. Elements that fail to
// fetch or convert are skipped, so a partial result is possible; skips are
// logged at debug level. A failed count query yields an empty result.
func (s *Sensor) StreamProfiles() []*StreamProfile {
	var slot sys.Error
	n := s.api.StreamProfilesCount(s.profiles, &slot)
	if err := checkError(s.api, slot); err != nil {
		slog.Debug("realsense: stream profile count query failed", "error", err)
		return nil
	}

	profiles := make([]*StreamProfile, 0, n)
	for i := 0; i < n; i++ {
		var slot sys.Error
		h := s.api.StreamProfile(s.profiles, i, &slot)
		if err := checkError(s.api, slot); err != nil {
			slog.Debug("realsense: skipping stream profile", "index", i, "error", err)
			continue
		}
		profile, err := newStreamProfile(s.api, h)
		if err != nil {
			slog.Debug("realsense: skipping unconvertible stream profile", "index", i, "error", err)
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles
}

// SupportsInfo reports whether the sensor carries the given info field.
func (s *Sensor) SupportsInfo(info CameraInfo) bool {
	var slot sys.Error
	v := s.api.SupportsSensorInfo(s.h, int32(info), &slot)
	if drainError(s.api, slot) {
		return false
	}
	return v != 0
}

// Info returns the given info field. ok is false when the field is
// unsupported or the query failed. The string is copied out of the SDK's
// cache and stays valid after the sensor is released.
func (s *Sensor) Info(info CameraInfo) (string, bool) {
	if !s.SupportsInfo(info) {
		return "", false
	}
	var slot sys.Error
	v := s.api.SensorInfo(s.h, int32(info), &slot)
	if drainError(s.api, slot) {
		return "", false
	}
	return v, true
}
