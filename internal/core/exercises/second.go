package exercises

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/AntonioJCosta/drills/internal/core/domain/drill"
)

/*
SecondLargestSorted returns the value ranked second after sorting a copy of
items in descending order. Rank is positional, so a repeated maximum ranks
both first and second: [5, 5] yields 5 and [50, 50, 40] yields 50.
It returns drill.ErrInsufficientInput for fewer than two items.
*/
func SecondLargestSorted[T drill.Number](items []T) (T, error) {
	var zero T
	if len(items) < 2 {
		return zero, insufficient(len(items))
	}
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b T) int { return cmp.Compare(b, a) })
	return sorted[1], nil
}

// SecondLargest is the single-pass form of SecondLargestSorted.
func SecondLargest[T drill.Number](items []T) (T, error) {
	var zero T
	if len(items) < 2 {
		return zero, insufficient(len(items))
	}

	largest, second := items[0], items[1]
	if second > largest {
		largest, second = second, largest
	}
	for _, v := range items[2:] {
		switch {
		case v > largest:
			second, largest = largest, v
		case v > second:
			// v may equal largest here; a repeated maximum occupies rank two.
			second = v
		}
	}
	return second, nil
}

/*
SecondLargestIndex returns the position of the second-ranked value in the
original order. When that value occurs more than once, the first occurrence
wins, so for [50, 50, 40] the result is 0.
*/
func SecondLargestIndex[T drill.Number](items []T) (int, error) {
	second, err := SecondLargest(items)
	if err != nil {
		return -1, err
	}
	return slices.Index(items, second), nil
}

func insufficient(n int) error {
	return fmt.Errorf("%w: need at least 2 numbers, got %d", drill.ErrInsufficientInput, n)
}
