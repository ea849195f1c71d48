package math

import "testing"

func TestBox3ExtendPoint(t *testing.T) {
	b := EmptyBox3()
	if !b.IsEmpty() {
		t.Fatal("EmptyBox3 should be empty")
	}

	b = b.ExtendPoint(Vec3{1, 2, 3})
	b = b.ExtendPoint(Vec3{-1, 0, 5})

	if b.IsEmpty() {
		t.Fatal("box with points should not be empty")
	}
	if b.Min != (Vec3{-1, 0, 3}) {
		t.Errorf("Min = %v", b.Min)
	}
	if b.Max != (Vec3{1, 2, 5}) {
		t.Errorf("Max = %v", b.Max)
	}
}

func TestBox3CenterSize(t *testing.T) {
	b := Box3{Min: Vec3{-5, -5, -5}, Max: Vec3{5, 5, 5}}

	if b.Center() != (Vec3{0, 0, 0}) {
		t.Errorf("Center = %v", b.Center())
	}
	if b.Size() != (Vec3{10, 10, 10}) {
		t.Errorf("Size = %v", b.Size())
	}
	if b.MaxDim() != 10 {
		t.Errorf("MaxDim = %v", b.MaxDim())
	}
}

func TestBox3SizeEmpty(t *testing.T) {
	if EmptyBox3().Size() != (Vec3{}) {
		t.Error("empty box should report zero size")
	}
}

func TestBox3MaxDimAnisotropic(t *testing.T) {
	b := Box3{Min: Vec3{0, 0, 0}, Max: Vec3{2, 8, 3}}
	if b.MaxDim() != 8 {
		t.Errorf("MaxDim = %v, want 8", b.MaxDim())
	}
}
