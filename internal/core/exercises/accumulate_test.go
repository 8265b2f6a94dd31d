package exercises

import (
	"errors"
	"testing"

	"github.com/AntonioJCosta/drills/internal/core/domain/drill"
)

func TestSumUpTo(t *testing.T) {
	tests := []struct {
		n    int64
		want int64
	}{
		{n: 1, want: 1},
		{n: 2, want: 3},
		{n: 13, want: 91},
		{n: 600, want: 180300},
	}

	for _, tt := range tests {
		got, err := SumUpTo(tt.n)
		if err != nil {
			t.Fatalf("SumUpTo(%d) unexpected error = %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("SumUpTo(%d) = %d, want %d", tt.n, got, tt.want)
		}
		gotRec, err := SumUpToRecursive(tt.n)
		if err != nil {
			t.Fatalf("SumUpToRecursive(%d) unexpected error = %v", tt.n, err)
		}
		if gotRec != tt.want {
			t.Errorf("SumUpToRecursive(%d) = %d, want %d", tt.n, gotRec, tt.want)
		}
	}
}

func TestSumUpTo_FormsAgree(t *testing.T) {
	for n := int64(1); n <= 1000; n++ {
		iter, err := SumUpTo(n)
		if err != nil {
			t.Fatalf("SumUpTo(%d) unexpected error = %v", n, err)
		}
		rec, err := SumUpToRecursive(n)
		if err != nil {
			t.Fatalf("SumUpToRecursive(%d) unexpected error = %v", n, err)
		}
		if iter != rec || iter != n*(n+1)/2 {
			t.Fatalf("n=%d: SumUpTo = %d, SumUpToRecursive = %d, closed form = %d", n, iter, rec, n*(n+1)/2)
		}
	}
}

func TestSumUpTo_InvalidDomain(t *testing.T) {
	tests := []struct {
		name string
		fn   func(int64) (int64, error)
		n    int64
	}{
		{name: "iterative zero", fn: SumUpTo, n: 0},
		{name: "iterative negative", fn: SumUpTo, n: -4},
		{name: "iterative overflow", fn: SumUpTo, n: MaxAccumulateOperand + 1},
		{name: "recursive zero", fn: SumUpToRecursive, n: 0},
		{name: "recursive too deep", fn: SumUpToRecursive, n: MaxRecursionDepth + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.n)
			if !errors.Is(err, drill.ErrInvalidDomain) {
				t.Errorf("error = %v, want ErrInvalidDomain", err)
			}
			if got != 0 {
				t.Errorf("result = %d, want 0 on error", got)
			}
		})
	}
}
