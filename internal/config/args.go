package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUsage       = errors.New("expected <duration_ms> <fps> <hd|qhd> <on|off>")
	ErrNotInteger  = errors.New("duration and fps must be integers")
	ErrBadSize     = errors.New("record size must be one of 'hd', 'qhd'")
	ErrNotPositive = errors.New("duration and fps must be positive")
)

type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

var recordSizes = map[string]Size{
	"hd":  {Width: 1280, Height: 720},
	"qhd": {Width: 960, Height: 540},
}

// RecordSize looks up a size key case-insensitively.
func RecordSize(key string) (Size, bool) {
	s, ok := recordSizes[strings.ToLower(key)]
	return s, ok
}

type Options struct {
	DurationMs int
	FPS        int
	SizeKey    string
	RecordSize Size
	PreviewOn  bool
}

// ParseArgs validates the positional arguments (program name excluded).
func ParseArgs(args []string) (Options, error) {
	if len(args) != 4 {
		return Options{}, ErrUsage
	}

	durationMs, err := strconv.Atoi(args[0])
	if err != nil {
		return Options{}, fmt.Errorf("%w: %q", ErrNotInteger, args[0])
	}
	fps, err := strconv.Atoi(args[1])
	if err != nil {
		return Options{}, fmt.Errorf("%w: %q", ErrNotInteger, args[1])
	}

	sizeKey := strings.ToLower(args[2])
	size, ok := RecordSize(sizeKey)
	if !ok {
		return Options{}, fmt.Errorf("%w: %q", ErrBadSize, args[2])
	}

	if durationMs <= 0 || fps <= 0 {
		return Options{}, ErrNotPositive
	}

	return Options{
		DurationMs: durationMs,
		FPS:        fps,
		SizeKey:    sizeKey,
		RecordSize: size,
		PreviewOn:  strings.ToLower(args[3]) == "on",
	}, nil
}

func (o Options) Duration() time.Duration {
	return time.Duration(o.DurationMs) * time.Millisecond
}

func (o Options) FrameInterval() time.Duration {
	return time.Second / time.Duration(o.FPS)
}
