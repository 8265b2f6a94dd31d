package settings

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/drills/internal/core/ports"
)

// setupEnvVar sets an environment variable for the duration of the test.
func setupEnvVar(t *testing.T, key, value string) {
	t.Helper()
	originalValue, wasSet := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("Failed to set env var %s to %s: %v", key, value, err)
	}
	t.Cleanup(func() {
		if !wasSet {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, originalValue)
		}
	})
}

func TestNewFileSettingsProvider(t *testing.T) {
	t.Run("uses DRILLS_CONFIG when set", func(t *testing.T) {
		want := filepath.Join(t.TempDir(), "custom.yaml")
		setupEnvVar(t, EnvSettingsPath, want)

		provider, err := NewFileSettingsProvider()
		if err != nil {
			t.Fatalf("NewFileSettingsProvider() unexpected error = %v", err)
		}
		if got := provider.GetSettingsPath(); got != want {
			t.Errorf("GetSettingsPath() = %q, want %q", got, want)
		}
	})

	t.Run("falls back to home directory", func(t *testing.T) {
		setupEnvVar(t, EnvSettingsPath, "")
		currentUser, err := user.Current()
		if err != nil {
			t.Skipf("cannot determine current user: %v", err)
		}

		provider, err := NewFileSettingsProvider()
		if err != nil {
			t.Fatalf("NewFileSettingsProvider() unexpected error = %v", err)
		}
		want := filepath.Join(currentUser.HomeDir, ".drills", "config.yaml")
		if got := provider.GetSettingsPath(); got != want {
			t.Errorf("GetSettingsPath() = %q, want %q", got, want)
		}
	})
}

func TestFileSettingsProvider_GetSettings(t *testing.T) {
	defaults := ports.Settings{Method: DefaultMethod, LogLevel: DefaultLogLevel}

	tests := []struct {
		name              string
		content           string
		createFile        bool
		want              ports.Settings
		wantErr           bool
		wantErrorContains string
	}{
		{name: "missing file", createFile: false, want: defaults},
		{name: "empty file", createFile: true, content: "", want: defaults},
		{
			name:       "full settings",
			createFile: true,
			content:    "method: reference\nlog_level: debug\nrecords_file: /tmp/items.yaml\n",
			want:       ports.Settings{Method: "reference", LogLevel: "debug", RecordsFile: "/tmp/items.yaml"},
		},
		{
			name:       "partial settings keep defaults",
			createFile: true,
			content:    "records_file: items.yaml\n",
			want:       ports.Settings{Method: DefaultMethod, LogLevel: DefaultLogLevel, RecordsFile: "items.yaml"},
		},
		{
			name:              "unknown key",
			createFile:        true,
			content:           "colour: blue\n",
			wantErr:           true,
			wantErrorContains: "failed to parse settings file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.createFile {
				if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
					t.Fatalf("Failed to create test file %s: %v", path, err)
				}
			}
			provider := &FileSettingsProvider{settingsFilePath: path}

			got, err := provider.GetSettings()
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorContains) {
					t.Errorf("GetSettings() error = %q, want it to contain %q", err.Error(), tt.wantErrorContains)
				}
				return
			}
			if got != tt.want {
				t.Errorf("GetSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
