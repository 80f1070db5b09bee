package output

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	Extension = ".mp4"

	maxSuffix = 99
)

var ErrTooManyFiles = errors.New("too many files with the same timestamp")

func DateDir(now time.Time) string {
	return now.Format("2006_01_02")
}

// NewFilename returns an unused <base>/<date>/<date>_<HHMMSS>[_NN].mp4 path,
// creating the date directory. The stem gets _01, _02, ... on collision.
func NewFilename(base string, now time.Time) (string, error) {
	date := DateDir(now)
	dir := filepath.Join(base, date)
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	stem := filepath.Join(dir, fmt.Sprintf("%s_%s", date, now.Format("150405")))
	filename := stem + Extension
	for count := 1; exists(filename); count++ {
		if count > maxSuffix {
			log.Printf("[WARNING] too many files with the same timestamp: %s", stem)
			return "", fmt.Errorf("output: %s: %w", stem, ErrTooManyFiles)
		}
		filename = fmt.Sprintf("%s_%02d%s", stem, count, Extension)
	}
	return filename, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
