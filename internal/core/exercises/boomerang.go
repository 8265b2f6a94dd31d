package exercises

import "github.com/AntonioJCosta/drills/internal/core/domain/drill"

// Boomerang is a V-shaped window [x, y, x] with x != y starting at Index.
type Boomerang[T drill.Number] struct {
	Index  int
	Values [3]T
}

// CountBoomerangs counts the windows [x, y, x] with x != y in a single pass.
// Overlapping windows each count, and fewer than three items yield 0.
func CountBoomerangs[T drill.Number](items []T) int {
	count := 0
	for i := 0; i+2 < len(items); i++ {
		if isBoomerang(items[i], items[i+1], items[i+2]) {
			count++
		}
	}
	return count
}

// FindBoomerangs returns every window counted by CountBoomerangs, in order.
func FindBoomerangs[T drill.Number](items []T) []Boomerang[T] {
	found := []Boomerang[T]{}
	for i := 0; i+2 < len(items); i++ {
		if isBoomerang(items[i], items[i+1], items[i+2]) {
			found = append(found, Boomerang[T]{Index: i, Values: [3]T{items[i], items[i+1], items[i+2]}})
		}
	}
	return found
}

func isBoomerang[T drill.Number](a, b, c T) bool {
	return a == c && a != b
}
