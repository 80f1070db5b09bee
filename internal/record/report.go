package record

import (
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid/v5"

	"picamrec/internal/config"
)

type Report struct {
	start time.Time
	end   time.Time

	UUID         string `json:"uuid"`
	File         string `json:"file"`
	Size         string `json:"size"`
	TargetFps    int    `json:"target_fps"`
	Frames       int    `json:"frames"`
	Skipped      int    `json:"skipped"`
	Duration     string `json:"duration"`
	EffectiveFps string `json:"effective_fps"`
	Date         string `json:"date"`
	Interrupted  bool   `json:"interrupted"`
	Quit         bool   `json:"quit"`
}

func NewReport(opts config.Options, now time.Time) *Report {
	ref, err := uuid.NewV4()
	if err != nil {
		ref = uuid.Nil
	}

	return &Report{
		start:     now,
		UUID:      ref.String(),
		Size:      opts.RecordSize.String(),
		TargetFps: opts.FPS,
		Date:      now.Format(time.RFC3339),
	}
}

// Finish stamps the elapsed time and the achieved frame rate.
func (r *Report) Finish(now time.Time) {
	r.end = now
	elapsed := r.Elapsed().Seconds()
	r.Duration = fmt.Sprintf("%.2f", elapsed)

	fps := 0.0
	if elapsed > 0 {
		fps = float64(r.Frames) / elapsed
	}
	r.EffectiveFps = fmt.Sprintf("%.2f", fps)
}

func (r *Report) Elapsed() time.Duration {
	if r.end.IsZero() {
		return 0
	}
	return r.end.Sub(r.start)
}

func (r *Report) String() string {
	return fmt.Sprintf("session=%s file=%q size=%s frames=%d skipped=%d duration=%ss fps=%s/%d interrupted=%t quit=%t",
		r.UUID, r.File, r.Size, r.Frames, r.Skipped, r.Duration, r.EffectiveFps, r.TargetFps, r.Interrupted, r.Quit)
}
