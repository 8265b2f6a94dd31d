package ports

import "github.com/AntonioJCosta/drills/internal/core/domain/record"

// RecordSource defines the interface for loading the records to group,
// like a YAML file.
type RecordSource interface {
	// GetRecords loads the records in their original order.
	GetRecords() ([]record.Record, error)
	// GetSourceIdentifier returns a user-facing description of the source.
	GetSourceIdentifier() string
}
