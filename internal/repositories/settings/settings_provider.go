package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/AntonioJCosta/drills/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const settingsDir = ".drills"
const settingsFilename = "config.yaml"

// EnvSettingsPath overrides the location of the settings file.
const EnvSettingsPath = "DRILLS_CONFIG"

// Defaults applied to any setting the file leaves empty.
const (
	DefaultMethod   = "fast"
	DefaultLogLevel = "warn"
)

// FileSettingsProvider reads user settings from a YAML file.
type FileSettingsProvider struct {
	settingsFilePath string
}

// NewFileSettingsProvider creates a provider for $DRILLS_CONFIG, falling back
// to $HOME/.drills/config.yaml.
func NewFileSettingsProvider() (ports.SettingsProvider, error) {
	if override := os.Getenv(EnvSettingsPath); override != "" {
		return &FileSettingsProvider{settingsFilePath: override}, nil
	}

	usr, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return &FileSettingsProvider{
		settingsFilePath: filepath.Join(usr.HomeDir, settingsDir, settingsFilename),
	}, nil
}

// GetSettingsPath returns the absolute path of the settings file.
func (p *FileSettingsProvider) GetSettingsPath() string {
	return p.settingsFilePath
}

// GetSettings implements the ports.SettingsProvider interface.
// A missing or empty file yields the defaults.
func (p *FileSettingsProvider) GetSettings() (ports.Settings, error) {
	s := ports.Settings{}

	data, err := os.ReadFile(p.settingsFilePath)
	if err != nil && !os.IsNotExist(err) {
		return ports.Settings{}, fmt.Errorf("failed to read settings file %s: %w", p.settingsFilePath, err)
	}

	if len(data) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return ports.Settings{}, fmt.Errorf("failed to parse settings file %s: %w", p.settingsFilePath, err)
		}
	}

	return applyDefaults(s), nil
}

func applyDefaults(s ports.Settings) ports.Settings {
	if s.Method == "" {
		s.Method = DefaultMethod
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	return s
}
