package tensor

import (
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1}, // scalar
		{Shape{5}, 5},
		{Shape{3, 4}, 12},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{3, 4}).Equal(Shape{3, 4}) {
		t.Error("expected {3,4} == {3,4}")
	}
	if (Shape{3, 4}).Equal(Shape{4, 3}) {
		t.Error("expected {3,4} != {4,3}")
	}
	if (Shape{3, 4}).Equal(Shape{3, 4, 1}) {
		t.Error("expected {3,4} != {3,4,1}")
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{3, 4}).Validate(); err != nil {
		t.Errorf("unexpected error for {3,4}: %v", err)
	}
	if err := (Shape{3, 0}).Validate(); err == nil {
		t.Error("expected error for zero dimension")
	}
	if err := (Shape{3, -1}).Validate(); err == nil {
		t.Error("expected error for negative dimension")
	}
}

func TestShapeCloneIndependence(t *testing.T) {
	s := Shape{3, 4}
	c := s.Clone()
	c[0] = 99
	if s[0] != 3 {
		t.Error("Clone must not alias the original")
	}
}

func TestComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("strides = %v, want %v", strides, want)
			break
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{Shape{3, 4}, Shape{3, 4}, Shape{3, 4}, false, false},
		{Shape{3, 4}, Shape{3, 1}, Shape{3, 4}, true, false},
		{Shape{3, 4}, Shape{1, 1}, Shape{3, 4}, true, false},
		{Shape{3, 1}, Shape{1, 4}, Shape{3, 4}, true, false},
		{Shape{4}, Shape{3, 4}, Shape{3, 4}, true, false},
		{Shape{3, 4}, Shape{2, 4}, nil, false, true},
	}

	for _, tt := range tests {
		got, broadcast, err := BroadcastShapes(tt.a, tt.b)
		if tt.wantErr {
			if err == nil {
				t.Errorf("BroadcastShapes(%v, %v): expected error", tt.a, tt.b)
			}
			continue
		}
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v): %v", tt.a, tt.b, err)
			continue
		}
		if !got.Equal(tt.want) || broadcast != tt.broadcast {
			t.Errorf("BroadcastShapes(%v, %v) = %v (broadcast=%v), want %v (broadcast=%v)",
				tt.a, tt.b, got, broadcast, tt.want, tt.broadcast)
		}
	}
}
