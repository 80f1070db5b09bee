package video

import (
	"fmt"

	"gocv.io/x/gocv"

	"picamrec/internal/config"
	"picamrec/internal/frame"
)

// MainFormat is the 32-bit main stream format requested from libcamera.
const MainFormat = "BGRx"

type Stream struct {
	Video    *gocv.VideoCapture
	pipeline string
}

// Pipeline describes a libcamera session delivering record-sized frames at a
// fixed rate. The appsink keeps a single buffer and drops stale ones.
func Pipeline(source string, record config.Size, fps int) string {
	return fmt.Sprintf(
		"%s ! video/x-raw,width=%d,height=%d,framerate=%d/1,format=%s ! appsink drop=true max-buffers=1 sync=false",
		source, record.Width, record.Height, fps, MainFormat,
	)
}

// NewCameraStream configures and starts the camera.
func NewCameraStream(source string, record config.Size, fps int) (*Stream, error) {
	pipeline := Pipeline(source, record, fps)
	video, err := gocv.OpenVideoCaptureWithAPI(pipeline, gocv.VideoCaptureGstreamer)
	if err != nil {
		return nil, fmt.Errorf("unable to open camera: %v", err)
	}
	if !video.IsOpened() {
		video.Close()
		return nil, fmt.Errorf("unable to open camera pipeline: %s", pipeline)
	}
	return &Stream{Video: video, pipeline: pipeline}, nil
}

// Read captures one frame. It returns nil when the camera delivered nothing.
func (s *Stream) Read(frameIndex int) *frame.Frame {
	mat := gocv.NewMat()
	if ok := s.Video.Read(&mat); !ok || mat.Empty() {
		mat.Close()
		return nil
	}
	f, err := frame.NewFrame(frameIndex, &mat)
	if err != nil {
		mat.Close()
		return nil
	}
	return f
}

func (s *Stream) Pipeline() string {
	return s.pipeline
}

func (s *Stream) Close() {
	if s.Video != nil {
		s.Video.Close()
		s.Video = nil
	}
}
