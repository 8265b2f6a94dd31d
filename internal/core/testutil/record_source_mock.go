package testutil

import (
	"github.com/AntonioJCosta/drills/internal/core/domain/record"
	"github.com/AntonioJCosta/drills/internal/core/ports"
)

// MockRecordSource is a mock implementation of the ports.RecordSource interface.
type MockRecordSource struct {
	GetRecordsFunc          func() ([]record.Record, error)
	GetSourceIdentifierFunc func() string
}

// GetRecords mocks the GetRecords method.
func (m *MockRecordSource) GetRecords() ([]record.Record, error) {
	if m.GetRecordsFunc != nil {
		return m.GetRecordsFunc()
	}
	return nil, nil
}

// GetSourceIdentifier mocks the GetSourceIdentifier method.
func (m *MockRecordSource) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc != nil {
		return m.GetSourceIdentifierFunc()
	}
	return "mock"
}

// Ensure MockRecordSource implements the ports.RecordSource interface.
var _ ports.RecordSource = (*MockRecordSource)(nil)
