package testutil

import "github.com/AntonioJCosta/drills/internal/core/ports"

// MockSettingsProvider is a mock implementation of the ports.SettingsProvider interface.
type MockSettingsProvider struct {
	GetSettingsFunc     func() (ports.Settings, error)
	GetSettingsPathFunc func() string
}

// GetSettings mocks the GetSettings method.
func (m *MockSettingsProvider) GetSettings() (ports.Settings, error) {
	if m.GetSettingsFunc != nil {
		return m.GetSettingsFunc()
	}
	return ports.Settings{}, nil
}

// GetSettingsPath mocks the GetSettingsPath method.
func (m *MockSettingsProvider) GetSettingsPath() string {
	if m.GetSettingsPathFunc != nil {
		return m.GetSettingsPathFunc()
	}
	return ""
}

var _ ports.SettingsProvider = (*MockSettingsProvider)(nil)
