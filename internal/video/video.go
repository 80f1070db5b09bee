package video

import (
	"fmt"

	"gocv.io/x/gocv"

	"picamrec/internal/config"
	"picamrec/internal/frame"
)

// Codec is the MPEG-4 Part 2 FourCC accepted by OpenCV's MP4 muxer.
const Codec = "mp4v"

type Writer struct {
	Video    *gocv.VideoWriter
	filename string
	frames   int
}

func OpenWriter(filename string, fps int, size config.Size) (*Writer, error) {
	video, err := gocv.VideoWriterFile(filename, Codec, float64(fps), size.Width, size.Height, true)
	if err != nil {
		return nil, fmt.Errorf("unable to open video writer %s: %v", filename, err)
	}
	if !video.IsOpened() {
		video.Close()
		return nil, fmt.Errorf("video writer not opened: %s", filename)
	}
	return &Writer{Video: video, filename: filename}, nil
}

func (w *Writer) Write(f *frame.Frame) error {
	if err := w.Video.Write(*f.Mat()); err != nil {
		return fmt.Errorf("unable to write frame %d: %v", f.FrameIndex(), err)
	}
	w.frames++
	return nil
}

func (w *Writer) Filename() string {
	return w.filename
}

func (w *Writer) Frames() int {
	return w.frames
}

func (w *Writer) Close() error {
	if w.Video == nil {
		return nil
	}
	err := w.Video.Close()
	w.Video = nil
	return err
}
