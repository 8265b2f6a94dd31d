package recordyaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/drills/internal/core/domain/record"
	"github.com/AntonioJCosta/drills/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the RecordSource interface
// by reading a list of records from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing the records.
func NewYAMLProvider(filePath string) (ports.RecordSource, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetSourceIdentifier returns the file the records are read from.
func (p *YAMLProvider) GetSourceIdentifier() string {
	return fmt.Sprintf("File: %s", p.filePath)
}

// GetRecords reads and parses records from the configured YAML file.
// If the file does not exist or is empty, it returns an empty list and no error.
func (p *YAMLProvider) GetRecords() ([]record.Record, error) {
	// Start with an empty, non-nil slice so callers can range over it safely.
	records := []record.Record{}

	data, err := os.ReadFile(p.filePath)
	if err != nil {
		// A missing file means nothing has been recorded yet, not a failure.
		if os.IsNotExist(err) {
			return records, nil
		}
		return nil, fmt.Errorf("failed to read records file %s: %w", p.filePath, err)
	}
	if len(data) == 0 {
		return records, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject misspelled keys such as "brnad" instead of silently dropping them.
	decoder.KnownFields(true)

	if err := decoder.Decode(&records); err != nil {
		// A file holding only comments or "---" decodes to EOF.
		if errors.Is(err, io.EOF) {
			return []record.Record{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal records from %s: %w", p.filePath, err)
	}
	return records, nil
}
