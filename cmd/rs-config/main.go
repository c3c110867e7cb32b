// rs-config applies a TOML option profile to connected RealSense
// sensors: exposure, laser power, emitter state and any other writable
// sensor option, set in one shot instead of a per-option tool invocation.
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
	profilePath := flag.String("profile", "", "Path to TOML option profile (required)")
	serial := flag.String("serial", "", "Only configure the device with this serial number")
	debug := flag.Bool("debug", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("rs-config %s\n", version)
		os.Exit(0)
	}

	if *profilePath == "" {
		fmt.Fprintf(os.Stderr, "Error: --profile flag is required\n\n")
		fmt.Fprintf(os.Stderr, "Usage example:\n")
		fmt.Fprintf(os.Stderr, "  rs-config --profile d435-lab.toml\n")
		fmt.Fprintf(os.Stderr, "  rs-config --profile d435-lab.toml --serial 923322071532\n\n")
		flag.PrintDefaults()
		os.Exit(1)
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

	profile, err := loadProfile(*profilePath)
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}

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
		log.Fatal("No devices connected")
	}

	configured := 0
	for _, d := range devices {
		if *serial != "" {
			s, ok := d.Info(realsense.CameraInfoSerialNumber)
			if !ok || s != *serial {
				d.Release()
				continue
			}
		}
		if err := configureDevice(d, profile); err != nil {
			d.Release()
			log.Fatalf("Failed to configure device: %v", err)
		}
		configured++
		d.Release()
	}
	if configured == 0 {
		log.Fatalf("No device matched serial %s", *serial)
	}
}

func configureDevice(d *realsense.Device, profile *Profile) error {
	name, _ := d.Info(realsense.CameraInfoName)
	serialNo, _ := d.Info(realsense.CameraInfoSerialNumber)
	fmt.Printf("Configuring %s (serial %s)\n", name, serialNo)

	sensors, err := d.Sensors()
	if err != nil {
		return fmt.Errorf("could not enumerate sensors: %w", err)
	}
	defer func() {
		for _, s := range sensors {
			s.Release()
		}
	}()

	for _, s := range sensors {
		sensorName, _ := s.Info(realsense.CameraInfoName)
		for _, sp := range profile.Sensors {
			if !sp.matchesName(sensorName) {
				continue
			}
			set, skipped, err := sp.apply(s)
			if err != nil {
				return fmt.Errorf("sensor %s: %w", sensorName, err)
			}
			fmt.Printf("  %-24s %d options set, %d unsupported\n", sensorName+":", set, skipped)
		}
	}
	return nil
}
