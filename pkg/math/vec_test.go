package math

import (
	gomath "math"
	"testing"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := 5.0
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("normalizing zero vector = %v, want zero", zero)
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 6, 3}
	got := a.Distance(b)
	want := 5.0
	if gomath.Abs(got-want) > 1e-12 {
		t.Errorf("Vec3.Distance() = %v, want %v", got, want)
	}
}

func TestVec3MaxComponent(t *testing.T) {
	tests := []struct {
		v    Vec3
		want float64
	}{
		{Vec3{1, 2, 3}, 3},
		{Vec3{5, 2, 3}, 5},
		{Vec3{1, 7, 3}, 7},
		{Vec3{-1, -2, -3}, -1},
	}

	for _, tt := range tests {
		if got := tt.v.MaxComponent(); got != tt.want {
			t.Errorf("MaxComponent(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
