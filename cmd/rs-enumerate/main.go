// rs-enumerate lists the connected RealSense devices with their sensors,
// capabilities, stream profiles and option ranges. It is the quickest way
// to check what the native SDK sees on a machine.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	realsense "github.com/e7canasta/orion-realsense"
)

const version = "v0.1.0"

func main() {
	// Parse command-line flags
	showProfiles := flag.Bool("profiles", false, "List stream profiles per sensor")
	showOptions := flag.Bool("options", false, "List option ranges per sensor")
	debug := flag.Bool("debug", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("rs-enumerate %s\n", version)
		os.Exit(0)
	}

	// Set up logging
	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, err := realsense.Open()
	if err != nil {
		log.Fatalf("Failed to open SDK context: %v (build with -tags rs2 and librealsense2 installed)", err)
	}
	defer ctx.Release()

	devices, err := ctx.Devices()
	if err != nil {
		log.Fatalf("Failed to enumerate devices: %v", err)
	}
	if len(devices) == 0 {
		fmt.Println("No devices connected.")
		return
	}

	for i, d := range devices {
		printDevice(i, d, *showProfiles, *showOptions)
		d.Release()
	}
}

func printDevice(index int, d *realsense.Device, showProfiles, showOptions bool) {
	fmt.Printf("Device %d:\n", index)
	for _, info := range []realsense.CameraInfo{
		realsense.CameraInfoName,
		realsense.CameraInfoSerialNumber,
		realsense.CameraInfoFirmwareVersion,
		realsense.CameraInfoPhysicalPort,
		realsense.CameraInfoUSBTypeDescriptor,
	} {
		if v, ok := d.Info(info); ok {
			fmt.Printf("  %-22s %s\n", info.String()+":", v)
		}
	}

	sensors, err := d.Sensors()
	if err != nil {
		slog.Error("Failed to enumerate sensors", "device", index, "error", err)
		return
	}
	for _, s := range sensors {
		printSensor(s, showProfiles, showOptions)
		s.Release()
	}
	fmt.Printf("\n")
}

func printSensor(s *realsense.Sensor, showProfiles, showOptions bool) {
	name, ok := s.Info(realsense.CameraInfoName)
	if !ok {
		name = "(unnamed)"
	}
	fmt.Printf("  Sensor: %s\n", name)

	if exts := s.Extensions(); len(exts) > 0 {
		fmt.Printf("    Capabilities:")
		for _, e := range exts {
			fmt.Printf(" %s", e)
		}
		fmt.Printf("\n")
	}

	if showProfiles {
		for _, p := range s.StreamProfiles() {
			fmt.Printf("    Profile: %-24s uid=%-3d index=%d %d fps\n",
				p.String(), p.UID(), p.Index(), p.Framerate())
		}
	}

	if showOptions {
		for opt := realsense.OptionBacklightCompensation; opt <= realsense.OptionGlobalTimeEnabled; opt++ {
			r, ok := s.OptionRange(opt)
			if !ok {
				continue
			}
			v, _ := s.GetOption(opt)
			readOnly := ""
			if s.IsOptionReadOnly(opt) {
				readOnly = " (read-only)"
			}
			fmt.Printf("    Option: %-28s %g [%g..%g step %g, default %g]%s\n",
				opt.String(), v, r.Min, r.Max, r.Step, r.Default, readOnly)
		}
	}
}
