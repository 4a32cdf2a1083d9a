// Package config handles devlog project configuration parsing and management.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tralse/devlog/devlog"
)

// ConfigFile is the project configuration file name.
const ConfigFile = ".devlog.yaml"

// Config represents the devlog project configuration
type Config struct {
	Header       string   `yaml:"header"`
	ModeVar      string   `yaml:"mode_var"`
	VerbosityVar string   `yaml:"verbosity_var"`
	EnvFiles     []string `yaml:"env_files"`
	Color        string   `yaml:"color"`
}

// NewDefaultConfig creates a new default configuration
func NewDefaultConfig() *Config {
	return &Config{
		Header:       devlog.DefaultHeader,
		ModeVar:      devlog.DefaultModeVar,
		VerbosityVar: devlog.DefaultVerbosityVar,
		EnvFiles:     []string{devlog.DefaultEnvFile},
		Color:        string(devlog.ColorBlue),
	}
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, ConfigFile)
}

// Load loads configuration from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return NewDefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set defaults
	defaults := NewDefaultConfig()
	if cfg.Header == "" {
		cfg.Header = defaults.Header
	}
	if cfg.ModeVar == "" {
		cfg.ModeVar = defaults.ModeVar
	}
	if cfg.VerbosityVar == "" {
		cfg.VerbosityVar = defaults.VerbosityVar
	}
	if cfg.EnvFiles == nil {
		cfg.EnvFiles = defaults.EnvFiles
	}
	if cfg.Color == "" {
		cfg.Color = defaults.Color
	}

	return &cfg, nil
}

// Save saves configuration to dir
func (c *Config) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// EnvFilePaths returns the env files resolved against dir.
func (c *Config) EnvFilePaths(dir string) []string {
	paths := make([]string, 0, len(c.EnvFiles))
	for _, f := range c.EnvFiles {
		if filepath.IsAbs(f) {
			paths = append(paths, f)
		} else {
			paths = append(paths, filepath.Join(dir, f))
		}
	}
	return paths
}

// Options maps the configuration to logger options.
func (c *Config) Options() []devlog.Option {
	return []devlog.Option{
		devlog.WithHeader(c.Header),
		devlog.WithModeVar(c.ModeVar),
		devlog.WithVerbosityVar(c.VerbosityVar),
	}
}

// Hash computes a hash of the configuration
func (c *Config) Hash() string {
	data, _ := json.Marshal(c)
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])[:16]
}

// FindRoot finds the nearest directory at or above startPath holding a
// config file.
func FindRoot(startPath string) (string, error) {
	if startPath == "" {
		var err error
		startPath, err = os.Getwd()
		if err != nil {
			return "", err
		}
	}

	path, err := filepath.Abs(startPath)
	if err != nil {
		return "", err
	}

	for {
		if info, err := os.Stat(Path(path)); err == nil && !info.IsDir() {
			return path, nil
		}

		parent := filepath.Dir(path)
		if parent == path {
			break
		}
		path = parent
	}

	return "", fmt.Errorf("no %s found", ConfigFile)
}
