package util

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/dendrascience/sorts/sorts"
	"github.com/google/go-cmp/cmp"
)

func TestRandomSequence_Bounds(t *testing.T) {
	r := NewRand(42)
	values, err := RandomSequence(r, 10000, -5, 5)
	if err != nil {
		t.Fatalf("RandomSequence() error = %v", err)
	}
	if len(values) != 10000 {
		t.Fatalf("len = %d, want 10000", len(values))
	}
	seen := make(map[int]bool)
	for _, v := range values {
		if v < -5 || v >= 5 {
			t.Fatalf("value %d outside [-5, 5)", v)
		}
		seen[v] = true
	}
	if len(seen) != 10 {
		t.Errorf("saw %d distinct values, want all 10", len(seen))
	}
}

func TestRandomSequence_WideBounds(t *testing.T) {
	tests := []struct {
		name  string
		lower int
		upper int
	}{
		{name: "full int range", lower: math.MinInt, upper: math.MaxInt},
		{name: "min to zero", lower: math.MinInt, upper: 0},
		{name: "zero to max", lower: 0, upper: math.MaxInt},
		{name: "top two values", lower: math.MaxInt - 1, upper: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := RandomSequence(NewRand(7), 1000, tt.lower, tt.upper)
			if err != nil {
				t.Fatalf("RandomSequence() error = %v", err)
			}
			for _, v := range values {
				if v < tt.lower || v >= tt.upper {
					t.Fatalf("value %d outside [%d, %d)", v, tt.lower, tt.upper)
				}
			}
		})
	}
}

func TestRandomSequence_Errors(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		lower   int
		upper   int
		wantErr error
	}{
		{name: "zero count", n: 0, lower: 0, upper: 10, wantErr: ErrNonPositiveCount},
		{name: "negative count", n: -3, lower: 0, upper: 10, wantErr: ErrNonPositiveCount},
		{name: "equal bounds", n: 3, lower: 4, upper: 4, wantErr: ErrInvalidBounds},
		{name: "inverted bounds", n: 3, lower: 10, upper: -10, wantErr: ErrInvalidBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RandomSequence(NewRand(1), tt.n, tt.lower, tt.upper)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RandomSequence() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRand_SeedIsReproducible(t *testing.T) {
	a, err := RandomSequence(NewRand(99), 50, 0, 1000)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandomSequence(NewRand(99), 50, 0, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different sequences (-a +b):\n%s", diff)
	}
}

func TestRandomArray(t *testing.T) {
	values, err := RandomArray(NewRand(5), 1000)
	if err != nil {
		t.Fatalf("RandomArray() error = %v", err)
	}
	for _, v := range values {
		if v < DefaultLowerBound || v >= DefaultUpperBound {
			t.Fatalf("value %d outside default bounds", v)
		}
	}

	empty, err := RandomArray(NewRand(5), 0)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("RandomArray(0) = %v, %v; want empty slice", empty, err)
	}

	if _, err := RandomArray(NewRand(5), -1); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("RandomArray(-1) error = %v, want %v", err, ErrNegativeCount)
	}
}

func TestIncreasingSequence(t *testing.T) {
	values, err := IncreasingSequence(5)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, values); diff != "" {
		t.Errorf("IncreasingSequence(5) mismatch (-want +got):\n%s", diff)
	}
	if _, err := IncreasingSequence(0); !errors.Is(err, ErrNonPositiveCount) {
		t.Errorf("IncreasingSequence(0) error = %v, want %v", err, ErrNonPositiveCount)
	}
}

func TestShake_PreservesElements(t *testing.T) {
	values, _ := IncreasingSequence(1000)
	shaken := slices.Clone(values)
	Shake(NewRand(7), shaken)

	if slices.Equal(values, shaken) {
		t.Error("Shake left 1000 elements in their original order")
	}
	restored := slices.Clone(shaken)
	slices.Sort(restored)
	if diff := cmp.Diff(values, restored); diff != "" {
		t.Errorf("Shake changed the multiset (-want +got):\n%s", diff)
	}
}

func TestShake_EmptyAndSingle(t *testing.T) {
	Shake(NewRand(1), []int{})
	Shake(NewRand(1), []int(nil))

	one := []int{9}
	Shake(NewRand(1), one)
	if one[0] != 9 {
		t.Errorf("Shake([9]) = %v", one)
	}
}

func TestShakeThenSort_RestoresIncreasingSequence(t *testing.T) {
	for _, alg := range sorts.Algorithms {
		for _, n := range []int{1000, 10000} {
			increasing, _ := IncreasingSequence(n)
			shaken := slices.Clone(increasing)
			Shake(NewRand(uint64(n)), shaken)

			if err := sorts.Sort(alg, shaken); err != nil {
				t.Fatalf("%s: Sort() error = %v", alg, err)
			}
			if !slices.Equal(increasing, shaken) {
				t.Errorf("%s: shaken sequence of %d not restored", alg, n)
			}
		}
	}
}
