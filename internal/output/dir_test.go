package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory was not created: %v", err)
	}
}

func TestEnsureDir_Existing(t *testing.T) {
	if err := EnsureDir(t.TempDir()); err != nil {
		t.Errorf("EnsureDir() on existing dir error: %v", err)
	}
}

func TestEnsureDir_FileChecksParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDir(path); err != nil {
		t.Errorf("EnsureDir() on file in writable dir error: %v", err)
	}
}

func TestEnsureDir_NotWritable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	dir := filepath.Join(t.TempDir(), "readonly")
	if err := os.Mkdir(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	if err := EnsureDir(dir); err == nil {
		t.Error("EnsureDir() on read-only dir: expected error")
	}
	if err := EnsureDir(filepath.Join(dir, "sub")); err == nil {
		t.Error("EnsureDir() below read-only dir: expected error")
	}
}
