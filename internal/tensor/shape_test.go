package tensor

import (
	"errors"
	"slices"
	"testing"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
		rank  int
	}{
		{Shape{}, 1, 0},
		{Shape{5}, 5, 1},
		{Shape{2, 3}, 6, 2},
		{Shape{2, 3, 4}, 24, 3},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
		if got := tt.shape.Rank(); got != tt.rank {
			t.Errorf("%v.Rank() = %d, want %d", tt.shape, got, tt.rank)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b Shape
		want bool
	}{
		{Shape{}, Shape{}, true},
		{Shape{2, 3}, Shape{2, 3}, true},
		{Shape{2, 3}, Shape{3, 2}, false},
		{Shape{6}, Shape{2, 3}, false},
		{Shape{2}, Shape{}, false},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); !errors.Is(err, ErrBadShape) {
		t.Errorf("Validate() = %v, want ErrBadShape", err)
	}
	if err := (Shape{-1}).Validate(); !errors.Is(err, ErrBadShape) {
		t.Errorf("Validate() = %v, want ErrBadShape", err)
	}
}

func TestComputeStrides(t *testing.T) {
	got := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	if !slices.Equal(got, want) {
		t.Errorf("ComputeStrides() = %v, want %v", got, want)
	}
	if len(Shape{}.ComputeStrides()) != 0 {
		t.Error("scalar shape should have no strides")
	}
}

func TestFlattenIsBijection(t *testing.T) {
	shapes := []Shape{{}, {1}, {4}, {2, 3}, {3, 1, 2}, {2, 3, 4}}

	for _, shape := range shapes {
		count := shape.NumElements()
		seen := make([]bool, count)
		next := 0
		for idx := range shape.Indices() {
			flat, err := shape.Flatten(idx)
			if err != nil {
				t.Fatalf("%v: Flatten(%v) error: %v", shape, idx, err)
			}
			if flat != next {
				t.Errorf("%v: Flatten(%v) = %d, want row-major position %d", shape, idx, flat, next)
			}
			if seen[flat] {
				t.Errorf("%v: flat index %d produced twice", shape, flat)
			}
			seen[flat] = true
			if back := shape.Unflatten(flat); !slices.Equal(back, idx) {
				t.Errorf("%v: Unflatten(%d) = %v, want %v", shape, flat, back, idx)
			}
			next++
		}
		if next != count {
			t.Errorf("%v: Indices() yielded %d indices, want %d", shape, next, count)
		}
	}
}

func TestFlattenErrors(t *testing.T) {
	shape := Shape{2, 3}

	tests := []struct {
		name string
		idx  Index
	}{
		{"rank too small", Index{1}},
		{"rank too large", Index{1, 1, 1}},
		{"component too large", Index{2, 0}},
		{"last component too large", Index{0, 3}},
		{"negative component", Index{-1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := shape.Flatten(tt.idx); !errors.Is(err, ErrIndex) {
				t.Errorf("Flatten(%v) = %v, want ErrIndex", tt.idx, err)
			}
		})
	}
}

func TestFlattenValue(t *testing.T) {
	flat, err := Shape{2, 3, 4}.Flatten(Index{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	// 1*12 + 2*4 + 3
	if flat != 23 {
		t.Errorf("Flatten = %d, want 23", flat)
	}
}

func TestIndicesRestartable(t *testing.T) {
	seq := Shape{2, 2}.Indices()

	var first, second []Index
	for idx := range seq {
		first = append(first, idx)
	}
	for idx := range seq {
		second = append(second, idx)
	}

	want := []Index{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for _, got := range [][]Index{first, second} {
		if len(got) != len(want) {
			t.Fatalf("got %d indices, want %d", len(got), len(want))
		}
		for i := range want {
			if !slices.Equal(got[i], want[i]) {
				t.Errorf("index %d = %v, want %v", i, got[i], want[i])
			}
		}
	}
}

func TestIndicesEarlyStop(t *testing.T) {
	n := 0
	for range (Shape{10, 10}).Indices() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("visited %d indices, want 3", n)
	}
}

func TestUnflattenPanicsOutOfRange(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrIndex) {
			t.Errorf("expected ErrIndex panic, got %v", r)
		}
	}()
	Shape{2, 2}.Unflatten(4)
}

func TestShapeString(t *testing.T) {
	if got := (Shape{2, 3}).String(); got != "[2 3]" {
		t.Errorf("String() = %q", got)
	}
	if got := (Shape{}).String(); got != "[]" {
		t.Errorf("String() = %q", got)
	}
	assertEqualShape(t, Shape{2, 3}, Shape{2, 3}.Clone(), "Clone")
}
