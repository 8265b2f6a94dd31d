package exercises

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/AntonioJCosta/drills/internal/core/domain/drill"
)

func TestSecondLargest(t *testing.T) {
	tests := []struct {
		name      string
		items     []int
		want      int
		wantIndex int
	}{
		{name: "ascending tail", items: []int{10, 40, 30, 20, 50}, want: 40, wantIndex: 1},
		{name: "unsorted", items: []int{25, 143, 89, 13, 105}, want: 105, wantIndex: 4},
		{name: "max first", items: []int{54, 23, 11, 17, 10}, want: 23, wantIndex: 1},
		{name: "two items", items: []int{1, 2}, want: 1, wantIndex: 0},
		{name: "only duplicates", items: []int{5, 5}, want: 5, wantIndex: 0},
		{name: "repeated maximum", items: []int{50, 40, 50}, want: 50, wantIndex: 0},
		{name: "negatives", items: []int{-3, -1, -2}, want: -2, wantIndex: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := slices.Clone(tt.items)

			got, err := SecondLargest(tt.items)
			if err != nil {
				t.Fatalf("SecondLargest() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SecondLargest(%v) = %d, want %d", tt.items, got, tt.want)
			}

			gotSorted, err := SecondLargestSorted(tt.items)
			if err != nil {
				t.Fatalf("SecondLargestSorted() unexpected error = %v", err)
			}
			if gotSorted != tt.want {
				t.Errorf("SecondLargestSorted(%v) = %d, want %d", tt.items, gotSorted, tt.want)
			}

			gotIndex, err := SecondLargestIndex(tt.items)
			if err != nil {
				t.Fatalf("SecondLargestIndex() unexpected error = %v", err)
			}
			if gotIndex != tt.wantIndex {
				t.Errorf("SecondLargestIndex(%v) = %d, want %d", tt.items, gotIndex, tt.wantIndex)
			}

			if !slices.Equal(before, tt.items) {
				t.Errorf("input modified: got %v, want %v", tt.items, before)
			}
		})
	}
}

func TestSecondLargest_InsufficientInput(t *testing.T) {
	for _, items := range [][]float64{nil, {}, {42}} {
		if _, err := SecondLargest(items); !errors.Is(err, drill.ErrInsufficientInput) {
			t.Errorf("SecondLargest(%v) error = %v, want ErrInsufficientInput", items, err)
		}
		if _, err := SecondLargestSorted(items); !errors.Is(err, drill.ErrInsufficientInput) {
			t.Errorf("SecondLargestSorted(%v) error = %v, want ErrInsufficientInput", items, err)
		}
		if idx, err := SecondLargestIndex(items); !errors.Is(err, drill.ErrInsufficientInput) || idx != -1 {
			t.Errorf("SecondLargestIndex(%v) = %d, %v, want -1 and ErrInsufficientInput", items, idx, err)
		}
	}
}

func TestSecondLargest_AgreesWithSorted(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 500; trial++ {
		items := make([]float64, 2+rng.IntN(20))
		for i := range items {
			// Small range forces plenty of duplicates.
			items[i] = float64(rng.IntN(11) - 5)
		}
		fast, err := SecondLargest(items)
		if err != nil {
			t.Fatalf("SecondLargest(%v) unexpected error = %v", items, err)
		}
		ref, err := SecondLargestSorted(items)
		if err != nil {
			t.Fatalf("SecondLargestSorted(%v) unexpected error = %v", items, err)
		}
		if fast != ref {
			t.Fatalf("trial %d: SecondLargest(%v) = %v, SecondLargestSorted = %v", trial, items, fast, ref)
		}
	}
}
