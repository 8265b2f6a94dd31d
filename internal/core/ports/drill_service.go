package ports

import (
	"github.com/AntonioJCosta/drills/internal/core/domain/drill"
	"github.com/AntonioJCosta/drills/internal/core/domain/record"
)

// SecondLargestResult holds the second-ranked value and the index of its first occurrence.
type SecondLargestResult struct {
	Value float64
	Index int
}

// BoomerangResult holds the boomerang count and the start index of every match.
type BoomerangResult struct {
	Count  int
	Starts []int
}

// DrillService defines the contract for running the exercises with a chosen method.
type DrillService interface {
	Method() drill.Method

	FindName(names []string, target string) int
	SecondLargest(numbers []float64) (SecondLargestResult, error)
	SumUpTo(n int64, recursive bool) (int64, error)
	PairSumExists(a, b []int64, target int64) bool
	ContainsDigit(numbers []int64, digit int) (bool, error)
	CountBoomerangs(numbers []float64) BoomerangResult

	// GroupRecords loads records from the configured source and groups them.
	// It returns the grouped records together with the number of records read.
	GroupRecords() (groups []record.GroupedRecord, total int, err error)
}
