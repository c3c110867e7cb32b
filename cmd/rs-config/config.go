package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	realsense "github.com/e7canasta/orion-realsense"
)

// Profile is the TOML schema for an option profile:
//
//	[[sensor]]
//	name = "Stereo Module"
//
//	[sensor.options]
//	laser-power = 150.0
//	emitter-enabled = 1.0
//
// Each [[sensor]] block targets the sensors whose reported name contains
// the given substring; an empty name targets every sensor.
type Profile struct {
	Sensors []SensorProfile `toml:"sensor"`
}

// SensorProfile is one [[sensor]] block: a name filter and the option
// values to apply, keyed by option name.
type SensorProfile struct {
	Name    string             `toml:"name"`
	Options map[string]float64 `toml:"options"`
}

// loadProfile reads and validates a profile file. Unknown TOML keys and
// unknown option names are rejected up front so a typo never silently
// skips an option on the device.
func loadProfile(path string) (*Profile, error) {
	var p Profile
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, fmt.Errorf("could not parse profile %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("profile %s has unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if len(p.Sensors) == 0 {
		return nil, fmt.Errorf("profile %s defines no [[sensor]] blocks", path)
	}
	for i, sp := range p.Sensors {
		if len(sp.Options) == 0 {
			return nil, fmt.Errorf("profile %s: sensor block %d sets no options", path, i)
		}
		for name := range sp.Options {
			if _, ok := realsense.OptionFromName(name); !ok {
				return nil, fmt.Errorf("profile %s: unknown option %q", path, name)
			}
		}
	}
	return &p, nil
}

// matchesName reports whether this block targets a sensor with the given
// reported name.
func (sp SensorProfile) matchesName(name string) bool {
	return sp.Name == "" || strings.Contains(name, sp.Name)
}

// apply writes the block's options to one sensor. Options the sensor does
// not support are counted as skipped, not failed; any other write error
// aborts the rest of the block.
func (sp SensorProfile) apply(s *realsense.Sensor) (set, skipped int, err error) {
	for name, value := range sp.Options {
		opt, _ := realsense.OptionFromName(name)
		if !s.SupportsOption(opt) {
			skipped++
			continue
		}
		if err := s.SetOption(opt, float32(value)); err != nil {
			return set, skipped, err
		}
		set++
	}
	return set, skipped, nil
}
