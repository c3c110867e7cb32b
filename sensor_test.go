package realsense

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/e7canasta/orion-realsense/internal/systest"
)

func newTestSensor(t *testing.T, table *systest.Table, st *systest.SensorState) *Sensor {
	t.Helper()
	s, err := newSensor(table, table.AddSensor(st))
	require.NoError(t, err)
	return s
}

func TestSensorOptionLifecycle(t *testing.T) {
	table := systest.NewTable()
	s := newTestSensor(t, table, &systest.SensorState{
		Options: map[int32]*systest.OptionState{
			int32(OptionExposure): {Value: 8500, Min: 1, Max: 165000, Step: 1, Def: 8500},
		},
	})
	defer s.Release()

	require.True(t, s.SupportsOption(OptionExposure))
	require.False(t, s.IsOptionReadOnly(OptionExposure))

	v, ok := s.GetOption(OptionExposure)
	require.True(t, ok)
	require.Equal(t, float32(8500), v)

	r, ok := s.OptionRange(OptionExposure)
	require.True(t, ok)
	want := OptionRange{Min: 1, Max: 165000, Step: 1, Default: 8500}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("OptionRange mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, s.SetOption(OptionExposure, 12000))
	v, ok = s.GetOption(OptionExposure)
	require.True(t, ok)
	require.Equal(t, float32(12000), v)

	require.Zero(t, table.PendingErrors())
}

func TestSetOptionUnsupported(t *testing.T) {
	table := systest.NewTable()
	s := newTestSensor(t, table, &systest.SensorState{})
	defer s.Release()

	err := s.SetOption(OptionGain, 64)
	require.ErrorIs(t, err, ErrOptionNotSupported)

	// The write must be refused before the native call is made.
	require.Zero(t, table.SetOptionCalls())
}

func TestSetOptionReadOnly(t *testing.T) {
	table := systest.NewTable()
	s := newTestSensor(t, table, &systest.SensorState{
		Options: map[int32]*systest.OptionState{
			int32(OptionAsicTemperature): {Value: 42, ReadOnly: true},
		},
	})
	defer s.Release()

	err := s.SetOption(OptionAsicTemperature, 10)
	require.ErrorIs(t, err, ErrOptionReadOnly)
	require.Zero(t, table.SetOptionCalls())

	// Reading a read-only option still works.
	v, ok := s.GetOption(OptionAsicTemperature)
	require.True(t, ok)
	require.Equal(t, float32(42), v)
}

func TestSetOptionNativeFailure(t *testing.T) {
	table := systest.NewTable()
	s := newTestSensor(t, table, &systest.SensorState{
		Options: map[int32]*systest.OptionState{
			int32(OptionLaserPower): {Value: 150, SetErr: "value out of range"},
		},
	})
	defer s.Release()

	err := s.SetOption(OptionLaserPower, 9000)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrOptionNotSupported)
	require.NotErrorIs(t, err, ErrOptionReadOnly)

	var native *NativeError
	require.True(t, errors.As(err, &native))
	require.Equal(t, "value out of range", native.Message)

	require.Equal(t, 1, table.SetOptionCalls())
	require.Zero(t, table.PendingErrors())
}

func TestGetOptionAbsence(t *testing.T) {
	table := systest.NewTable()
	s := newTestSensor(t, table, &systest.SensorState{
		Options: map[int32]*systest.OptionState{
			int32(OptionBrightness): {GetErr: "i2c read failed"},
			int32(OptionContrast):   {SupportsErr: "query refused"},
		},
	})
	defer s.Release()

	// Unsupported, failed read and failed support probe all collapse to
	// plain absence.
	for _, opt := range []Option{OptionGamma, OptionBrightness, OptionContrast} {
		if _, ok := s.GetOption(opt); ok {
			t.Errorf("GetOption(%v) ok = true, want false", opt)
		}
		if _, ok := s.OptionRange(opt); ok {
			t.Errorf("OptionRange(%v) ok = true, want false", opt)
		}
	}
	require.Zero(t, table.PendingErrors())
}

func TestSensorExtensions(t *testing.T) {
	table := systest.NewTable()
	s := newTestSensor(t, table, &systest.SensorState{
		Extensions: []int32{
			int32(ExtensionDepthSensor),
			int32(ExtensionColorSensor),
		},
		// A failed probe is a silent skip, never an abort.
		ExtendProbeErrs: map[int32]string{
			int32(ExtensionMotionSensor): "probe failed",
		},
	})
	defer s.Release()

	got := s.Extensions()
	want := []Extension{ExtensionDepthSensor, ExtensionColorSensor}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extensions mismatch (-want +got):\n%s", diff)
	}
	require.Zero(t, table.PendingErrors())
}

func TestStreamProfilesPartial(t *testing.T) {
	table := systest.NewTable()
	s := newTestSensor(t, table, &systest.SensorState{
		Profiles: []*systest.ProfileState{
			{Stream: int32(StreamDepth), Format: int32(FormatZ16), UID: 0, Framerate: 30},
			{Stream: int32(StreamColor), Format: int32(FormatRGB8), UID: 1, Framerate: 30},
			{Stream: int32(StreamInfrared), Format: int32(FormatY8), UID: 2, Framerate: 90},
			{Stream: int32(StreamColor), Format: int32(FormatYUYV), UID: 3, Framerate: 60},
			{Stream: int32(StreamGyro), Format: int32(FormatMotionXYZ32F), UID: 4, Framerate: 200},
		},
		// One element fails to fetch; it is skipped, the rest survive.
		ProfileItemErrs: map[int]string{1: "usb error"},
	})
	defer s.Release()

	profiles := s.StreamProfiles()
	require.Len(t, profiles, 4)

	uids := make([]int, len(profiles))
	for i, p := range profiles {
		uids[i] = p.UID()
	}
	require.Equal(t, []int{0, 2, 3, 4}, uids)
	require.Zero(t, table.PendingErrors())
}

func TestStreamProfilesSkipsBadData(t *testing.T) {
	table := systest.NewTable()
	s := newTestSensor(t, table, &systest.SensorState{
		Profiles: []*systest.ProfileState{
			{Stream: int32(StreamDepth), Format: int32(FormatZ16), UID: 7, Framerate: 30},
			{DataErr: "corrupt profile"},
		},
	})
	defer s.Release()

	profiles := s.StreamProfiles()
	require.Len(t, profiles, 1)
	require.Equal(t, 7, profiles[0].UID())
	require.Equal(t, StreamDepth, profiles[0].Stream())
	require.Equal(t, FormatZ16, profiles[0].Format())
	require.Zero(t, table.PendingErrors())
}

func TestStreamProfilesCountFailure(t *testing.T) {
	table := systest.NewTable()
	s := newTestSensor(t, table, &systest.SensorState{
		Profiles:        []*systest.ProfileState{{UID: 1}},
		ProfileCountErr: "list gone",
	})
	defer s.Release()

	require.Nil(t, s.StreamProfiles())
	require.Zero(t, table.PendingErrors())
}

func TestSensorConstructionFailsWithoutProfileList(t *testing.T) {
	table := systest.NewTable()
	_, err := newSensor(table, table.AddSensor(&systest.SensorState{
		ProfilesErr: "device disconnected",
	}))
	require.Error(t, err)
	require.Zero(t, table.PendingErrors())
}

func TestSensorInfo(t *testing.T) {
	table := systest.NewTable()
	s := newTestSensor(t, table, &systest.SensorState{
		Infos: map[int32]string{
			int32(CameraInfoName):         "RGB Camera",
			int32(CameraInfoSerialNumber): "923322071532",
		},
	})
	defer s.Release()

	require.True(t, s.SupportsInfo(CameraInfoName))
	name, ok := s.Info(CameraInfoName)
	require.True(t, ok)
	require.Equal(t, "RGB Camera", name)

	require.False(t, s.SupportsInfo(CameraInfoFirmwareVersion))
	_, ok = s.Info(CameraInfoFirmwareVersion)
	require.False(t, ok)
}

func TestSensorDevice(t *testing.T) {
	table := systest.NewTable()
	s := newTestSensor(t, table, &systest.SensorState{
		Device: &systest.DeviceState{
			Infos: map[int32]string{int32(CameraInfoName): "Intel RealSense D435"},
		},
	})
	defer s.Release()

	d, err := s.Device()
	require.NoError(t, err)

	name, ok := d.Info(CameraInfoName)
	require.True(t, ok)
	require.Equal(t, "Intel RealSense D435", name)

	d.Release()
	require.Equal(t, 1, table.DeviceDeletes())
	d.Release()
	require.Equal(t, 1, table.DeviceDeletes())
}
