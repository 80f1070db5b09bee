package output

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// EnsureDir creates path if needed and checks that it can be written to.
// When path names a file, its parent directory is checked instead.
func EnsureDir(path string) error {
	checkPath := path

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("output: create directory %s: %w", path, err)
		}
	case err != nil:
		return fmt.Errorf("output: stat %s: %w", path, err)
	case !info.IsDir():
		checkPath = filepath.Dir(path)
	}

	if err := unix.Access(checkPath, unix.W_OK); err != nil {
		return fmt.Errorf("output: %s is not writable: %w", checkPath, err)
	}
	return nil
}
