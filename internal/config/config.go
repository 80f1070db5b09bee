package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputDir      = "/media/c1/FCB7-43FD1/録画データ"
	DefaultCameraSource   = "libcamerasrc"
	DefaultLogLevel       = "INFO"
	DefaultLogMaxBytes    = 5 * 1024 * 1024
	DefaultLogBackupCount = 3
)

// Environment variables read by Load.
const (
	EnvConfigFile = "PICAMREC_CONFIG"
	EnvOutputDir  = "PICAMREC_OUTPUT_DIR"
	EnvLogLevel   = "PICAMREC_LOG_LEVEL"
	EnvLogFile    = "PICAMREC_LOG_FILE"
)

// Config holds settings that are not part of the command line.
type Config struct {
	OutputDir       string `yaml:"output_dir"`
	PreviewMaxWidth int    `yaml:"preview_max_width"`
	CameraSource    string `yaml:"camera_source"` // GStreamer source element

	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`
	LogMaxBytes    int    `yaml:"log_max_bytes"`
	LogBackupCount int    `yaml:"log_backup_count"`
	LogToStdout    bool   `yaml:"log_to_stdout"`
}

func DefaultConfig() *Config {
	return &Config{
		OutputDir:       DefaultOutputDir,
		PreviewMaxWidth: DefaultPreviewWidth,
		CameraSource:    DefaultCameraSource,
		LogLevel:        DefaultLogLevel,
		LogMaxBytes:     DefaultLogMaxBytes,
		LogBackupCount:  DefaultLogBackupCount,
		LogToStdout:     true,
	}
}

// Load reads the optional YAML file named by PICAMREC_CONFIG, then applies
// environment overrides.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.OutputDir = getEnvOrDefault(EnvOutputDir, cfg.OutputDir)
	cfg.LogLevel = getEnvOrDefault(EnvLogLevel, cfg.LogLevel)
	cfg.LogFile = getEnvOrDefault(EnvLogFile, cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid settings: %w", err)
	}
	return cfg, nil
}

// LoadFile overlays the values present in a YAML file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is empty")
	}
	if c.PreviewMaxWidth < 2 {
		return fmt.Errorf("preview_max_width too small: %d", c.PreviewMaxWidth)
	}
	if c.CameraSource == "" {
		return fmt.Errorf("camera_source is empty")
	}
	if c.LogMaxBytes < 0 {
		return fmt.Errorf("log_max_bytes is negative: %d", c.LogMaxBytes)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
