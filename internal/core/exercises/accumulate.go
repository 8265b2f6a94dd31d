package exercises

import (
	"fmt"

	"github.com/AntonioJCosta/drills/internal/core/domain/drill"
)

const (
	// MaxAccumulateOperand is the largest n whose sum 1..n fits in an int64.
	MaxAccumulateOperand int64 = 1<<32 - 1

	// MaxRecursionDepth bounds SumUpToRecursive, whose stack depth equals n.
	// Larger operands must use SumUpTo.
	MaxRecursionDepth int64 = 1 << 20
)

// SumUpTo returns 1 + 2 + ... + n using a loop.
// It returns drill.ErrInvalidDomain for n < 1 or n > MaxAccumulateOperand.
func SumUpTo(n int64) (int64, error) {
	if err := checkOperand(n, MaxAccumulateOperand); err != nil {
		return 0, err
	}
	var sum int64
	for i := int64(1); i <= n; i++ {
		sum += i
	}
	return sum, nil
}

/*
SumUpToRecursive returns 1 + 2 + ... + n by reducing to n-1 until the base
case n == 1. Each step adds a stack frame, so n is capped at MaxRecursionDepth.
*/
func SumUpToRecursive(n int64) (int64, error) {
	if err := checkOperand(n, MaxRecursionDepth); err != nil {
		return 0, err
	}
	return addUp(n), nil
}

func addUp(n int64) int64 {
	if n == 1 {
		return 1
	}
	return n + addUp(n-1)
}

func checkOperand(n, limit int64) error {
	if n < 1 {
		return fmt.Errorf("%w: n must be at least 1, got %d", drill.ErrInvalidDomain, n)
	}
	if n > limit {
		return fmt.Errorf("%w: n must be at most %d, got %d", drill.ErrInvalidDomain, limit, n)
	}
	return nil
}
