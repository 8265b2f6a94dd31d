package drillrunner

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/drills/internal/core/domain/drill"
	"github.com/AntonioJCosta/drills/internal/core/domain/record"
	"github.com/AntonioJCosta/drills/internal/core/exercises"
	"github.com/AntonioJCosta/drills/internal/core/ports"
	"go.uber.org/zap"
)

// ErrNoRecordSource is returned by GroupRecords when no record source is configured.
var ErrNoRecordSource = errors.New("record source is not configured")

type service struct {
	method       drill.Method
	recordSource ports.RecordSource // Can be nil if no records file is configured.
	logger       *zap.Logger
}

// NewService creates a new drill service running the given method variant.
// It panics if logger is nil. recordSource can be nil if grouping is not used.
func NewService(method drill.Method, recordSource ports.RecordSource, logger *zap.Logger) ports.DrillService {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if method == "" {
		method = drill.MethodFast
	}
	return &service{
		method:       method,
		recordSource: recordSource,
		logger:       logger.With(zap.String("method", string(method))),
	}
}

// Method returns the implementation variant this service runs.
func (s *service) Method() drill.Method {
	return s.method
}

// FindName returns the index of the first name equal to target, or -1.
// Linear search has a single form, so the method does not apply.
func (s *service) FindName(names []string, target string) int {
	idx := exercises.LinearSearch(names, target)
	s.logger.Debug("linear search", zap.String("target", target), zap.Int("items", len(names)), zap.Int("index", idx))
	return idx
}

// SecondLargest returns the second-ranked value and the index of its first occurrence.
// The reference method sorts a copy; the fast method scans once.
// Fewer than two numbers yield an error wrapping drill.ErrInsufficientInput.
func (s *service) SecondLargest(numbers []float64) (ports.SecondLargestResult, error) {
	second := exercises.SecondLargest[float64]
	if s.method == drill.MethodReference {
		second = exercises.SecondLargestSorted[float64]
	}

	value, err := second(numbers)
	if err != nil {
		s.logger.Warn("second largest rejected input", zap.Int("items", len(numbers)), zap.Error(err))
		return ports.SecondLargestResult{}, fmt.Errorf("second largest: %w", err)
	}
	idx, err := exercises.SecondLargestIndex(numbers)
	if err != nil {
		return ports.SecondLargestResult{}, fmt.Errorf("second largest index: %w", err)
	}

	s.logger.Debug("second largest", zap.Int("items", len(numbers)), zap.Float64("value", value), zap.Int("index", idx))
	return ports.SecondLargestResult{Value: value, Index: idx}, nil
}

// SumUpTo returns 1 + 2 + ... + n. The recursive form runs when recursive is set
// or the service runs the reference method; otherwise the loop form runs.
// Operands outside the form's domain yield an error wrapping drill.ErrInvalidDomain.
func (s *service) SumUpTo(n int64, recursive bool) (int64, error) {
	// The recursion is the straightforward solution, so it is the reference variant.
	recursive = recursive || s.method == drill.MethodReference
	sum := exercises.SumUpTo
	if recursive {
		sum = exercises.SumUpToRecursive
	}

	total, err := sum(n)
	if err != nil {
		s.logger.Warn("accumulate rejected input", zap.Int64("n", n), zap.Bool("recursive", recursive), zap.Error(err))
		return 0, fmt.Errorf("sum up to %d: %w", n, err)
	}
	s.logger.Debug("accumulate", zap.Int64("n", n), zap.Bool("recursive", recursive), zap.Int64("sum", total))
	return total, nil
}

// PairSumExists reports whether one integer from a and one from b add up to target.
// The reference method compares every pair; the fast method probes a set built from a.
func (s *service) PairSumExists(a, b []int64, target int64) bool {
	var found bool
	if s.method == drill.MethodReference {
		found = exercises.PairSumExistsNaive(a, b, target)
	} else {
		found = exercises.PairSumExists(a, b, target)
	}
	s.logger.Debug("pair sum", zap.Int("a", len(a)), zap.Int("b", len(b)), zap.Int64("target", target), zap.Bool("found", found))
	return found
}

// ContainsDigit reports whether any number's absolute value contains digit.
// The reference method scans directly; the fast method deduplicates first.
func (s *service) ContainsDigit(numbers []int64, digit int) (bool, error) {
	contains := exercises.ContainsDigitSet[int64]
	if s.method == drill.MethodReference {
		contains = exercises.ContainsDigit[int64]
	}

	found, err := contains(numbers, digit)
	if err != nil {
		s.logger.Warn("digit search rejected input", zap.Int("digit", digit), zap.Error(err))
		return false, fmt.Errorf("digit search: %w", err)
	}
	s.logger.Debug("digit search", zap.Int("items", len(numbers)), zap.Int("digit", digit), zap.Bool("found", found))
	return found, nil
}

// CountBoomerangs counts the [x, y, x] windows in numbers and lists where each starts.
// Boomerang counting has a single form, so the method does not apply.
func (s *service) CountBoomerangs(numbers []float64) ports.BoomerangResult {
	found := exercises.FindBoomerangs(numbers)
	starts := make([]int, 0, len(found))
	for _, b := range found {
		starts = append(starts, b.Index)
	}
	result := ports.BoomerangResult{Count: exercises.CountBoomerangs(numbers), Starts: starts}
	s.logger.Debug("boomerangs", zap.Int("items", len(numbers)), zap.Int("count", result.Count))
	return result
}

// GroupRecords loads records from the configured source and groups them by
// brand and name in first-seen order. It returns ErrNoRecordSource when the
// service was built without a source.
func (s *service) GroupRecords() ([]record.GroupedRecord, int, error) {
	if s.recordSource == nil {
		// Grouping is the only operation that needs a source; the others still work.
		return nil, 0, ErrNoRecordSource
	}
	records, err := s.recordSource.GetRecords()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load records from %s: %w", s.recordSource.GetSourceIdentifier(), err)
	}

	// An empty source is not an error; it simply yields no groups.
	groups := exercises.GroupAndCount(records)
	s.logger.Debug("grouped records",
		zap.String("source", s.recordSource.GetSourceIdentifier()),
		zap.Int("records", len(records)),
		zap.Int("groups", len(groups)))
	return groups, len(records), nil
}
