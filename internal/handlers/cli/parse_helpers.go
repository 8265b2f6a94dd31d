package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/drills/internal/core/domain/drill"
)

// parseFloats converts each argument to a float64. Commas inside an argument
// also separate values, so "1,2 3" yields [1 2 3]. NaN and infinities are
// rejected with drill.ErrInvalidDomain since ranking them is undefined.
func parseFloats(args []string) ([]float64, error) {
	numbers := []float64{}
	for _, field := range splitFields(args) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", field, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid number %q: %w: value must be finite", field, drill.ErrInvalidDomain)
		}
		numbers = append(numbers, v)
	}
	return numbers, nil
}

// parseInts converts each argument to an int64, splitting on commas like parseFloats.
func parseInts(args []string) ([]int64, error) {
	numbers := []int64{}
	for _, field := range splitFields(args) {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", field, err)
		}
		numbers = append(numbers, v)
	}
	return numbers, nil
}

func splitFields(args []string) []string {
	var fields []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				fields = append(fields, trimmed)
			}
		}
	}
	return fields
}

// formatNumbers renders numbers the way they were most likely typed.
func formatNumbers[T float64 | int64](numbers []T) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = formatNumber(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatNumber[T float64 | int64](n T) string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
