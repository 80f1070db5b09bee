package record

import (
	"strings"
	"testing"
	"time"

	uuid "github.com/gofrs/uuid/v5"

	"picamrec/internal/config"
)

func TestNewReport(t *testing.T) {
	opts, _ := config.ParseArgs([]string{"2000", "30", "qhd", "off"})
	start := time.Date(2025, 3, 7, 9, 5, 4, 0, time.UTC)

	r := NewReport(opts, start)
	if _, err := uuid.FromString(r.UUID); err != nil {
		t.Errorf("UUID %q does not parse: %v", r.UUID, err)
	}
	if r.Size != "960x540" {
		t.Errorf("Size = %q, want 960x540", r.Size)
	}
	if r.TargetFps != 30 {
		t.Errorf("TargetFps = %d, want 30", r.TargetFps)
	}
	if r.Date != "2025-03-07T09:05:04Z" {
		t.Errorf("Date = %q", r.Date)
	}
	if r.Elapsed() != 0 {
		t.Errorf("Elapsed() before Finish = %v, want 0", r.Elapsed())
	}
}

func TestReport_Finish(t *testing.T) {
	opts, _ := config.ParseArgs([]string{"2000", "30", "hd", "off"})
	start := time.Unix(1000, 0)

	r := NewReport(opts, start)
	r.Frames = 45
	r.Finish(start.Add(1500 * time.Millisecond))

	if r.Duration != "1.50" {
		t.Errorf("Duration = %q, want 1.50", r.Duration)
	}
	if r.EffectiveFps != "30.00" {
		t.Errorf("EffectiveFps = %q, want 30.00", r.EffectiveFps)
	}
	if s := r.String(); !strings.Contains(s, "frames=45") || !strings.Contains(s, r.UUID) {
		t.Errorf("String() = %q", s)
	}
}

func TestReport_FinishWithoutTime(t *testing.T) {
	opts, _ := config.ParseArgs([]string{"2000", "30", "hd", "off"})
	start := time.Unix(1000, 0)

	r := NewReport(opts, start)
	r.Finish(start)
	if r.EffectiveFps != "0.00" {
		t.Errorf("EffectiveFps = %q, want 0.00", r.EffectiveFps)
	}
}
