// Package camera queries the libcamera stack for sensor properties.
//
// The rpicam-apps (or the older libcamera-apps) package must be installed:
//
//	sudo apt install rpicam-apps
package camera

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"time"

	"picamrec/internal/config"
)

// Tried in order; Bookworm renamed libcamera-hello to rpicam-hello.
var listCommands = []string{"rpicam-hello", "libcamera-hello"}

var ErrNoCamera = errors.New("no camera listed")

// "0 : imx219 [3280x2464 10-bit RGGB] (/base/soc/i2c0mux/i2c@1/imx219@10)"
var cameraLine = regexp.MustCompile(`(?m)^\s*\d+\s*:\s*\S+\s*\[(\d+)x(\d+)`)

// QuerySensorSize returns the pixel array size of the first camera.
func QuerySensorSize(ctx context.Context) (config.Size, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var lastErr error
	for _, name := range listCommands {
		path, err := exec.LookPath(name)
		if err != nil {
			lastErr = err
			continue
		}
		out, err := exec.CommandContext(ctx, path, "--list-cameras").CombinedOutput()
		if err != nil {
			lastErr = fmt.Errorf("%s --list-cameras: %w (output: %s)", name, err, string(out))
			continue
		}
		return ParseSensorSize(string(out))
	}
	return config.Size{}, fmt.Errorf("camera: query sensor: %w", lastErr)
}

// SensorSizeOrDefault falls back to config.DefaultSensorSize when probing fails.
func SensorSizeOrDefault(ctx context.Context) (config.Size, error) {
	size, err := QuerySensorSize(ctx)
	if err != nil {
		return config.DefaultSensorSize, err
	}
	return size, nil
}

func ParseSensorSize(listing string) (config.Size, error) {
	m := cameraLine.FindStringSubmatch(listing)
	if m == nil {
		return config.Size{}, ErrNoCamera
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return config.Size{}, fmt.Errorf("camera: bad width %q: %w", m[1], err)
	}
	h, err := strconv.Atoi(m[2])
	if err != nil {
		return config.Size{}, fmt.Errorf("camera: bad height %q: %w", m[2], err)
	}
	return config.Size{Width: w, Height: h}, nil
}
