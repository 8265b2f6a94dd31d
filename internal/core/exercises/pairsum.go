package exercises

import "github.com/AntonioJCosta/drills/internal/core/domain/drill"

// PairSumExistsNaive reports whether some x in a and y in b satisfy x+y == target,
// comparing every pair. Operands are integers: the sum wraps on overflow and
// the set-based form relies on that wrapping to stay equivalent.
func PairSumExistsNaive[T drill.Integer](a, b []T, target T) bool {
	for _, x := range a {
		for _, y := range b {
			if x+y == target {
				return true
			}
		}
	}
	return false
}

// PairSumExists is the set-based form of PairSumExistsNaive. It indexes a once
// and probes target-y for every y in b.
func PairSumExists[T drill.Integer](a, b []T, target T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	seen := make(map[T]struct{}, len(a))
	for _, x := range a {
		seen[x] = struct{}{}
	}
	for _, y := range b {
		if _, ok := seen[target-y]; ok {
			return true
		}
	}
	return false
}
