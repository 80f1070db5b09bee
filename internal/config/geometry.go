package config

const (
	DefaultPreviewWidth = 800

	captureBaseHeight = 922
	captureRatioW     = 4
	captureRatioH     = 3
	minCaptureWidth   = 160
	minCaptureHeight  = 120
)

// DefaultSensorSize is used when the camera does not report its pixel array.
var DefaultSensorSize = Size{Width: 3280, Height: 2464}

type Geometry struct {
	Record  Size
	Capture Size
	Preview Size

	// FrameDurationUs is used as both frame duration limits.
	FrameDurationUs int
}

func NewGeometry(record Size, sensor Size, fps int, maxPreviewWidth int) Geometry {
	return Geometry{
		Record:          record,
		Capture:         CaptureSize(sensor),
		Preview:         PreviewSize(record, maxPreviewWidth),
		FrameDurationUs: FrameDurationUs(fps),
	}
}

// CaptureSize picks a 4:3 sensor mode around 922 lines, shrunk to the sensor width.
func CaptureSize(sensor Size) Size {
	w := captureBaseHeight * captureRatioW / captureRatioH
	h := captureBaseHeight
	if w > sensor.Width {
		w = sensor.Width
		h = w * captureRatioH / captureRatioW
	}
	return Size{
		Width:  max(minCaptureWidth, even(w)),
		Height: max(minCaptureHeight, even(h)),
	}
}

func PreviewWidth(record Size, maxWidth int) int {
	if maxWidth <= 0 {
		maxWidth = DefaultPreviewWidth
	}
	return min(record.Width, maxWidth)
}

func PreviewSize(record Size, maxWidth int) Size {
	w := PreviewWidth(record, maxWidth)
	h := int(float64(w) * float64(record.Height) / float64(record.Width))
	return Size{Width: even(w), Height: even(h)}
}

func FrameDurationUs(fps int) int {
	return int(1_000_000 / float64(fps))
}

func even(v int) int {
	return (v / 2) * 2
}
