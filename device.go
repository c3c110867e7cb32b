package realsense

import (
	"fmt"

	"github.com/e7canasta/orion-realsense/internal/sys"
)

// Device is an owned handle to the physical device behind a sensor. It
// exists at this layer so sensors can be enumerated and re-created; the
// richer device surface (firmware update, advanced mode) lives outside
// this module.
type Device struct {
	api sys.API
	h   sys.DeviceHandle
}

// Release frees the device handle. Idempotent.
func (d *Device) Release() {
	if d.h == 0 {
		return
	}
	d.api.DeleteDevice(d.h)
	d.h = 0
}

// Info returns the given device info field, or ok=false when the field is
// unsupported or the query failed.
func (d *Device) Info(info CameraInfo) (string, bool) {
	var slot sys.Error
	v := d.api.SupportsDeviceInfo(d.h, int32(info), &slot)
	if drainError(d.api, slot) || v == 0 {
		return "", false
	}
	s := d.api.DeviceInfo(d.h, int32(info), &slot)
	if drainError(d.api, slot) {
		return "", false
	}
	return s, true
}

// Sensors enumerates the device's sensors as owned wrappers, each created
// from the device's sensor list. The caller releases each sensor. On the
// first construction failure the already-built sensors are released and
// the error returned; a device never yields a partially-usable set.
func (d *Device) Sensors() ([]*Sensor, error) {
	var slot sys.Error
	list := d.api.QuerySensors(d.h, &slot)
	if err := checkError(d.api, slot); err != nil {
		return nil, fmt.Errorf("realsense: could not query sensors: %w", err)
	}
	defer d.api.DeleteSensorList(list)

	n := d.api.SensorsCount(list, &slot)
	if err := checkError(d.api, slot); err != nil {
		return nil, fmt.Errorf("realsense: could not count sensors: %w", err)
	}

	sensors := make([]*Sensor, 0, n)
	for i := 0; i < n; i++ {
		sensor, err := createSensor(d.api, list, i)
		if err != nil {
			for _, s := range sensors {
				s.Release()
			}
			return nil, err
		}
		sensors = append(sensors, sensor)
	}
	return sensors, nil
}

// Context is the entry point to the native SDK for the module's tools:
// it loads the binding and enumerates connected devices. Consuming
// applications with pipelines and streaming bring their own richer
// context; this one only covers what sensors need.
type Context struct {
	api sys.API
	h   sys.ContextHandle
}

// Open loads the native binding and creates an SDK context. Returns
// ErrBindingUnavailable when the module was built without the binding.
func Open() (*Context, error) {
	api, err := sys.Load()
	if err != nil {
		return nil, err
	}
	return newContext(api)
}

func newContext(api sys.API) (*Context, error) {
	var slot sys.Error
	h := api.CreateContext(&slot)
	if err := checkError(api, slot); err != nil {
		return nil, fmt.Errorf("realsense: could not create context: %w", err)
	}
	return &Context{api: api, h: h}, nil
}

// Release frees the context. Devices obtained from it stay valid; they
// are independently owned.
func (c *Context) Release() {
	if c.h == 0 {
		return
	}
	c.api.DeleteContext(c.h)
	c.h = 0
}

// Devices enumerates the connected devices as owned wrappers.
func (c *Context) Devices() ([]*Device, error) {
	var slot sys.Error
	list := c.api.QueryDevices(c.h, &slot)
	if err := checkError(c.api, slot); err != nil {
		return nil, fmt.Errorf("realsense: could not query devices: %w", err)
	}
	defer c.api.DeleteDeviceList(list)

	n := c.api.DeviceCount(list, &slot)
	if err := checkError(c.api, slot); err != nil {
		return nil, fmt.Errorf("realsense: could not count devices: %w", err)
	}

	devices := make([]*Device, 0, n)
	for i := 0; i < n; i++ {
		h := c.api.CreateDevice(list, i, &slot)
		if err := checkError(c.api, slot); err != nil {
			for _, d := range devices {
				d.Release()
			}
			return nil, fmt.Errorf("realsense: could not create device %d: %w", i, err)
		}
		devices = append(devices, &Device{api: c.api, h: h})
	}
	return devices, nil
}
