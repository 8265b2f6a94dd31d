package exercises

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCountBoomerangs(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		want  int
	}{
		{name: "mixed", items: []int{3, 7, 3, 2, 1, 5, 1, 2, 2, -2, 2}, want: 3},
		{name: "overlapping", items: []int{1, 7, 1, 7, 1, 7, 1}, want: 5},
		{name: "none", items: []int{1, 2, 3, 4, 5}, want: 0},
		{name: "empty", items: []int{}, want: 0},
		{name: "two items", items: []int{1, 1}, want: 0},
		{name: "flat triple is not a boomerang", items: []int{4, 4, 4}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := slices.Clone(tt.items)
			got := CountBoomerangs(tt.items)
			if got != tt.want {
				t.Errorf("CountBoomerangs(%v) = %d, want %d", tt.items, got, tt.want)
			}
			if again := CountBoomerangs(tt.items); again != got {
				t.Errorf("second call = %d, first call = %d", again, got)
			}
			if found := FindBoomerangs(tt.items); len(found) != tt.want {
				t.Errorf("len(FindBoomerangs(%v)) = %d, want %d", tt.items, len(found), tt.want)
			}
			if !slices.Equal(before, tt.items) {
				t.Errorf("input modified: got %v, want %v", tt.items, before)
			}
		})
	}
}

func TestFindBoomerangs(t *testing.T) {
	got := FindBoomerangs([]float64{3, 7, 3, 2, 1, 5, 1, 2, 2, -2, 2})
	want := []Boomerang[float64]{
		{Index: 0, Values: [3]float64{3, 7, 3}},
		{Index: 4, Values: [3]float64{1, 5, 1}},
		{Index: 8, Values: [3]float64{2, -2, 2}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindBoomerangs() mismatch (-want +got):\n%s", diff)
	}
}
