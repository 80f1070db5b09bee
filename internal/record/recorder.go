package record

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"picamrec/internal/config"
	"picamrec/internal/frame"
	"picamrec/internal/output"
	"picamrec/internal/pace"
	"picamrec/internal/preview"
	"picamrec/internal/video"
)

type Source interface {
	Read(frameIndex int) *frame.Frame
	Close()
}

type Sink interface {
	Write(f *frame.Frame) error
	Filename() string
	Frames() int
	Close() error
}

type Display interface {
	Show(f *frame.Frame) error
	PollKey() int
	Place()
	Close()
}

type Recorder struct {
	opts     config.Options
	cfg      *config.Config
	geometry config.Geometry

	OpenCamera  func() (Source, error)
	OpenWriter  func(filename string) (Sink, error)
	OpenPreview func(state *preview.State) Display
	Now         func() time.Time
	Sleep       func(ctx context.Context, d time.Duration)
}

// NewRecorder wires the recorder to the camera, MP4 writer and preview windows.
func NewRecorder(opts config.Options, cfg *config.Config, geometry config.Geometry) *Recorder {
	return &Recorder{
		opts:     opts,
		cfg:      cfg,
		geometry: geometry,
		OpenCamera: func() (Source, error) {
			s, err := video.NewCameraStream(cfg.CameraSource, opts.RecordSize, opts.FPS)
			if err != nil {
				return nil, err
			}
			log.Printf("[DEBUG] camera pipeline: %s", s.Pipeline())
			return s, nil
		},
		OpenWriter: func(filename string) (Sink, error) {
			w, err := video.OpenWriter(filename, opts.FPS, opts.RecordSize)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
		OpenPreview: func(state *preview.State) Display {
			return video.NewPreview(state, geometry.Preview)
		},
		Now:   time.Now,
		Sleep: sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Run records one clip. Whatever happens, the writer, camera and windows that
// were opened are released before it returns. The report is never nil.
func (r *Recorder) Run(ctx context.Context) (report *Report, err error) {
	var (
		camera  Source
		writer  Sink
		display Display
	)
	state := preview.NewState(r.opts.PreviewOn)
	report = NewReport(r.opts, r.Now())

	defer func() {
		if writer != nil {
			report.Frames = writer.Frames()
			if cerr := writer.Close(); cerr != nil {
				log.Printf("[ERROR] failed to close recording %s: %v", filepath.Base(writer.Filename()), cerr)
			} else {
				log.Printf("[INFO] recording closed: %s", filepath.Base(writer.Filename()))
			}
		}
		if camera != nil {
			camera.Close()
		}
		if display != nil {
			display.Close()
		}
		report.Finish(r.Now())
	}()

	if state.Enabled {
		log.Printf("[INFO] preview size: %s", r.geometry.Preview)
		display = r.OpenPreview(state)
	}

	camera, err = r.OpenCamera()
	if err != nil {
		return report, fmt.Errorf("record: start camera: %w", err)
	}
	end := r.Now().Add(r.opts.Duration())
	log.Printf("[INFO] camera started, recording")

	filename, err := output.NewFilename(r.cfg.OutputDir, r.Now())
	if err != nil {
		return report, fmt.Errorf("record: create filename: %w", err)
	}
	if ctx.Err() != nil {
		report.Interrupted = true
		log.Printf("[INFO] interrupted before recording started")
		return report, nil
	}
	writer, err = r.OpenWriter(filename)
	if err != nil {
		return report, fmt.Errorf("record: open writer: %w", err)
	}
	report.File = filename
	log.Printf("[INFO] recording started: %s", filepath.Base(filename))

	pacer := pace.NewWithClock(r.opts.FrameInterval(), r.Now, func(d time.Duration) { r.Sleep(ctx, d) })
	frameIndex := 0
	for r.Now().Before(end) {
		if ctx.Err() != nil {
			report.Interrupted = true
			log.Printf("[INFO] interrupted, stopping")
			break
		}

		captured, err := r.step(frameIndex, camera, writer, display, state)
		if err != nil {
			return report, err
		}
		if captured {
			frameIndex++
		} else {
			report.Skipped++
		}

		if display != nil {
			quit, changed := state.HandleKey(display.PollKey())
			if quit {
				report.Quit = true
				log.Printf("[INFO] quit requested")
				break
			}
			if changed {
				display.Place()
			}
		}

		pacer.Wait()
	}

	return report, nil
}

// step captures, converts, writes and shows one frame. It reports false when
// the camera delivered nothing.
func (r *Recorder) step(frameIndex int, camera Source, writer Sink, display Display, state *preview.State) (bool, error) {
	raw := camera.Read(frameIndex)
	if raw == nil {
		return false, nil
	}
	bgr, err := raw.BGR()
	raw.Close()
	if err != nil {
		return true, fmt.Errorf("record: convert frame %d: %w", frameIndex, err)
	}
	defer bgr.Close()

	if err := writer.Write(bgr); err != nil {
		return true, fmt.Errorf("record: %w", err)
	}

	if display != nil && state.Enabled {
		if err := display.Show(bgr); err != nil {
			return true, fmt.Errorf("record: preview frame %d: %w", frameIndex, err)
		}
	}
	return true, nil
}
