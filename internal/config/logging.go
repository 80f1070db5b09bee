package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

var levelNames = map[string]LogLevel{
	"DEBUG":    LevelDebug,
	"INFO":     LevelInfo,
	"WARN":     LevelWarning,
	"WARNING":  LevelWarning,
	"ERROR":    LevelError,
	"CRITICAL": LevelCritical,
}

// ParseLogLevel falls back to INFO for unknown names.
func ParseLogLevel(name string) LogLevel {
	if l, ok := levelNames[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return l
	}
	return LevelInfo
}

// Highest first, so a line tagged twice counts at its most severe tag.
var lineTags = []struct {
	tag   string
	level LogLevel
}{
	{"[CRITICAL]", LevelCritical},
	{"[ERROR]", LevelError},
	{"[WARNING]", LevelWarning},
	{"[DEBUG]", LevelDebug},
}

// levelFilterWriter drops log lines tagged below minLevel. Untagged lines are INFO.
type levelFilterWriter struct {
	minLevel LogLevel
	next     io.Writer
}

func (w *levelFilterWriter) Write(p []byte) (int, error) {
	level := LevelInfo
	for _, t := range lineTags {
		if strings.Contains(string(p), t.tag) {
			level = t.level
			break
		}
	}
	if level < w.minLevel {
		return len(p), nil
	}
	return w.next.Write(p)
}

// RotatingFileWriter shifts path to path.1 .. path.N before a write would
// push it past maxBytes. maxBytes <= 0 never rotates.
type RotatingFileWriter struct {
	mu       sync.Mutex
	path     string
	maxBytes int64
	backups  int
	f        *os.File
	size     int64
}

func NewRotatingFileWriter(path string, maxBytes, backups int) (*RotatingFileWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("config: create log dir: %w", err)
	}
	w := &RotatingFileWriter{path: path, maxBytes: int64(maxBytes), backups: backups}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *RotatingFileWriter) open() error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("config: open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("config: stat log file: %w", err)
	}
	w.f, w.size = f, info.Size()
	return nil
}

func (w *RotatingFileWriter) backupName(i int) string {
	if i == 0 {
		return w.path
	}
	return fmt.Sprintf("%s.%d", w.path, i)
}

func (w *RotatingFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.maxBytes > 0 && w.size > 0 && w.size+int64(len(p)) > w.maxBytes {
		w.f.Close()
		w.f = nil
		os.Remove(w.backupName(w.backups))
		for i := w.backups; i > 0; i-- {
			os.Rename(w.backupName(i-1), w.backupName(i))
		}
		if err := w.open(); err != nil {
			return 0, err
		}
	}
	if w.f == nil {
		return 0, fmt.Errorf("config: log file %s is closed", w.path)
	}
	n, err := w.f.Write(p)
	w.size += int64(n)
	return n, err
}

func (w *RotatingFileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}

// ConfigureLogging sends the standard logger to the log file, stdout, or
// both, filtered at cfg.LogLevel. cleanup restores stderr and closes the file.
func ConfigureLogging(cfg *Config) (cleanup func(), err error) {
	var out io.Writer = os.Stdout
	var file *RotatingFileWriter

	if cfg.LogFile != "" {
		file, err = NewRotatingFileWriter(cfg.LogFile, cfg.LogMaxBytes, cfg.LogBackupCount)
		switch {
		case err != nil:
			log.Printf("[WARNING] file logging disabled: %v", err)
			file = nil
		case cfg.LogToStdout:
			out = io.MultiWriter(file, os.Stdout)
		default:
			out = file
		}
	}

	log.SetOutput(&levelFilterWriter{minLevel: ParseLogLevel(cfg.LogLevel), next: out})
	log.SetFlags(log.Ldate | log.Ltime)

	return func() {
		log.SetOutput(os.Stderr)
		if file != nil {
			file.Close()
		}
	}, nil
}
