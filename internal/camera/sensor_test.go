package camera

import (
	"context"
	"errors"
	"testing"

	"picamrec/internal/config"
)

const imx219Listing = `Available cameras
-----------------
0 : imx219 [3280x2464 10-bit RGGB] (/base/soc/i2c0mux/i2c@1/imx219@10)
    Modes: 'SRGGB10_CSI2P' : 640x480 [206.65 fps - (1000, 752)/1280x960 crop]
                             1640x1232 [41.85 fps - (0, 0)/3280x2464 crop]
                             1920x1080 [47.57 fps - (680, 692)/1920x1080 crop]
                             3280x2464 [21.19 fps - (0, 0)/3280x2464 crop]
`

const imx708Listing = `Available cameras
-----------------
0 : imx708_wide [4608x2592 10-bit RGGB] (/base/axi/pcie@120000/rp1/i2c@88000/imx708@1a)
    Modes: 'SRGGB10_CSI2P' : 1536x864 [120.13 fps - (768, 432)/3072x1728 crop]
`

func TestParseSensorSize(t *testing.T) {
	tests := []struct {
		name    string
		listing string
		want    config.Size
	}{
		{"imx219", imx219Listing, config.Size{Width: 3280, Height: 2464}},
		{"imx708 wide", imx708Listing, config.Size{Width: 4608, Height: 2592}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSensorSize(tt.listing)
			if err != nil {
				t.Fatalf("ParseSensorSize() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseSensorSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSensorSize_NoCamera(t *testing.T) {
	for _, listing := range []string{"", "No cameras available!\n"} {
		if _, err := ParseSensorSize(listing); !errors.Is(err, ErrNoCamera) {
			t.Errorf("ParseSensorSize(%q) error = %v, want ErrNoCamera", listing, err)
		}
	}
}

func TestSensorSizeOrDefault_NoTools(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	size, err := SensorSizeOrDefault(context.Background())
	if err == nil {
		t.Fatal("expected an error without rpicam-hello on PATH")
	}
	if size != config.DefaultSensorSize {
		t.Errorf("size = %v, want %v", size, config.DefaultSensorSize)
	}
}
