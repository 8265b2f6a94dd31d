/*
Package exercises implements the pure array and record exercises.

Every function is stateless and reentrant, and never modifies the slices it
receives. Where an exercise has a straightforward solution and a faster one,
both are exported and always return the same result.
*/
package exercises

// LinearSearch returns the index of the first element equal to target,
// or -1 if target is absent. Matching is exact and case-sensitive.
func LinearSearch(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}

// FindTom returns the index of the first "Tom" in names, or -1.
func FindTom(names []string) int {
	return LinearSearch(names, "Tom")
}
