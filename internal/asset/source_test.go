package asset

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/showroom/pkg/math"
)

// load runs a source synchronously and returns its outcome.
func load(t *testing.T, s Source) (Result, []float64, error) {
	t.Helper()

	var (
		result   Result
		progress []float64
		failure  error
		finished bool
	)

	s.Load(Callbacks{
		Progress: func(frac float64) { progress = append(progress, frac) },
		Done: func(r Result) {
			result = r
			finished = true
		},
		Fail: func(err error) { failure = err },
	})

	if !finished && failure == nil {
		t.Fatal("source finished without Done or Fail")
	}
	return result, progress, failure
}

func TestCubeSource(t *testing.T) {
	r, progress, err := load(t, &CubeSource{Size: 10})
	if err != nil {
		t.Fatalf("cube load failed: %v", err)
	}

	if len(r.Vertices) != 36*VertexStride {
		t.Errorf("cube vertex floats = %d, want %d", len(r.Vertices), 36*VertexStride)
	}
	if r.Bounds.Size() != (math.Vec3{X: 10, Y: 10, Z: 10}) {
		t.Errorf("cube bounds size = %v, want (10,10,10)", r.Bounds.Size())
	}
	if r.Bounds.Center() != (math.Vec3{}) {
		t.Errorf("cube bounds center = %v, want origin", r.Bounds.Center())
	}

	if len(progress) == 0 || progress[len(progress)-1] != 1 {
		t.Errorf("progress did not reach 1: %v", progress)
	}
}

func TestSphereSource(t *testing.T) {
	r, _, err := load(t, &SphereSource{Radius: 3, Segments: 16, Rings: 8})
	if err != nil {
		t.Fatalf("sphere load failed: %v", err)
	}

	size := r.Bounds.Size()
	if gomath.Abs(size.X-6) > 1e-3 || gomath.Abs(size.Z-6) > 1e-3 {
		t.Errorf("sphere bounds size = %v, want ~6 in X and Z", size)
	}
	if gomath.Abs(size.Y-6) > 1e-9 {
		t.Errorf("sphere bounds height = %v, want 6", size.Y)
	}

	// Every vertex sits on the sphere surface.
	for i := 0; i+VertexStride <= len(r.Vertices); i += VertexStride {
		p := math.Vec3{
			X: float64(r.Vertices[i]),
			Y: float64(r.Vertices[i+1]),
			Z: float64(r.Vertices[i+2]),
		}
		if gomath.Abs(p.Length()-3) > 1e-3 {
			t.Fatalf("vertex %v not on sphere surface", p)
		}
	}
}

func TestShowpieceSource(t *testing.T) {
	r, progress, err := load(t, &ShowpieceSource{Scale: 10})
	if err != nil {
		t.Fatalf("showpiece load failed: %v", err)
	}

	size := r.Bounds.Size()
	if size.X != 10 || size.Z != 10 {
		t.Errorf("showpiece footprint = %v x %v, want 10 x 10", size.X, size.Z)
	}
	if gomath.Abs(size.Y-7.5) > 1e-6 {
		t.Errorf("showpiece height = %v, want 7.5", size.Y)
	}

	for i := 1; i < len(progress); i++ {
		if progress[i] < progress[i-1] {
			t.Fatalf("progress not monotonic: %v", progress)
		}
	}
}

func TestSourceFailure(t *testing.T) {
	sources := []Source{
		&CubeSource{Size: 0},
		&SphereSource{Radius: -1},
		&ShowpieceSource{Scale: 0},
	}

	for _, s := range sources {
		_, _, err := load(t, s)
		if err == nil {
			t.Errorf("%s with invalid size should fail", s.Name())
		}
	}
}

func TestNewKinds(t *testing.T) {
	for _, kind := range []string{"cube", "sphere", "showpiece", "Cube"} {
		if _, err := New(kind, 5); err != nil {
			t.Errorf("New(%q) error: %v", kind, err)
		}
	}

	if _, err := New("teapot", 5); err == nil {
		t.Error("New with unknown kind should fail")
	}
}

func TestComputeBoundsEmpty(t *testing.T) {
	if !ComputeBounds(nil).IsEmpty() {
		t.Error("bounds of no vertices should be empty")
	}
	// A truncated vertex contributes nothing.
	if !ComputeBounds([]float32{1, 2, 3}).IsEmpty() {
		t.Error("bounds of a truncated buffer should be empty")
	}
}

func TestCallbacksNilSafe(t *testing.T) {
	// A source must tolerate absent callbacks.
	(&CubeSource{Size: 1}).Load(Callbacks{})
	(&CubeSource{Size: 0}).Load(Callbacks{})
}
