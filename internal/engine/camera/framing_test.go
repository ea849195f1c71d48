package camera

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/showroom/pkg/math"
)

func boxOfSize(size math.Vec3) math.Box3 {
	half := size.Scale(0.5)
	return math.Box3{Min: half.Neg(), Max: half}
}

func TestFrameCubeScenario(t *testing.T) {
	// 10x10x10 subject at 75 degree FOV.
	pose, limits, err := Frame(boxOfSize(math.Vec3{X: 10, Y: 10, Z: 10}), 75)
	if err != nil {
		t.Fatalf("Frame() error: %v", err)
	}

	distance := FitDistance(10, 75)
	if distance < 15.3 || distance > 16.0 {
		t.Errorf("FitDistance = %v, want ~15.5", distance)
	}

	if gomath.Abs(limits.MinDistance-1.0) > 1e-9 {
		t.Errorf("MinDistance = %v, want 1.0", limits.MinDistance)
	}
	if gomath.Abs(limits.MaxDistance-50.0) > 1e-9 {
		t.Errorf("MaxDistance = %v, want 50.0", limits.MaxDistance)
	}
	if gomath.Abs(pose.Near-0.1) > 1e-9 {
		t.Errorf("Near = %v, want 0.1", pose.Near)
	}
	if gomath.Abs(pose.Far-1000.0) > 1e-9 {
		t.Errorf("Far = %v, want 1000", pose.Far)
	}

	if pose.Target != (math.Vec3{}) {
		t.Errorf("Target = %v, want origin", pose.Target)
	}

	got := pose.Position.Distance(pose.Target)
	if got < distance*0.9 || got > distance*1.3 {
		t.Errorf("camera distance %v outside %v * [0.9, 1.3]", got, distance)
	}
}

func TestFrameInvariants(t *testing.T) {
	sizes := []math.Vec3{
		{X: 0.001, Y: 0.001, Z: 0.001},
		{X: 1, Y: 1, Z: 1},
		{X: 10, Y: 10, Z: 10},
		{X: 2, Y: 80, Z: 3},
		{X: 5000, Y: 100, Z: 100},
	}
	fovs := []float64{10, 45, 60, 75, 120, 170}

	for _, size := range sizes {
		for _, fov := range fovs {
			pose, limits, err := Frame(boxOfSize(size), fov)
			if err != nil {
				t.Fatalf("Frame(%v, %v) error: %v", size, fov, err)
			}

			if pose.Near >= pose.Far {
				t.Errorf("size %v fov %v: near %v >= far %v", size, fov, pose.Near, pose.Far)
			}
			if limits.MinDistance <= 0 || limits.MinDistance >= limits.MaxDistance {
				t.Errorf("size %v fov %v: distance limits %v..%v", size, fov,
					limits.MinDistance, limits.MaxDistance)
			}
			if limits.MinPolar != limits.MaxPolar {
				t.Errorf("polar limits should be a single fixed value, got %v..%v",
					limits.MinPolar, limits.MaxPolar)
			}
			if limits.MinPolar != gomath.Pi/3 {
				t.Errorf("polar angle = %v, want pi/3", limits.MinPolar)
			}
			if limits.MinAzimuth != -gomath.Pi/4 || limits.MaxAzimuth != gomath.Pi/4 {
				t.Errorf("azimuth arc = %v..%v, want -pi/4..pi/4",
					limits.MinAzimuth, limits.MaxAzimuth)
			}

			distance := FitDistance(size.MaxComponent(), fov)
			got := pose.Position.Distance(pose.Target)
			if got < distance*0.9 || got > distance*1.3 {
				t.Errorf("size %v fov %v: camera distance %v outside %v * [0.9, 1.3]",
					size, fov, got, distance)
			}
		}
	}
}

func TestFrameDegenerateBounds(t *testing.T) {
	cases := []math.Box3{
		boxOfSize(math.Vec3{}),
		math.EmptyBox3(),
		{Min: math.Vec3{X: 1, Y: 2, Z: 3}, Max: math.Vec3{X: 1, Y: 2, Z: 3}},
	}

	for _, b := range cases {
		_, _, err := Frame(b, 75)
		if !errors.Is(err, ErrDegenerateBounds) {
			t.Errorf("Frame(%v) error = %v, want ErrDegenerateBounds", b, err)
		}
	}
}
