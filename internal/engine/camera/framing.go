// Package camera implements subject framing and constrained orbit
// navigation for the viewer.
package camera

import (
	"errors"
	gomath "math"

	"github.com/Faultbox/showroom/pkg/math"
)

// ErrDegenerateBounds reports a bounding volume with no extent. Framing a
// zero-size subject would collapse the view distance to zero, so callers
// must treat this as a load failure and keep the camera untouched.
var ErrDegenerateBounds = errors.New("camera: bounding volume has zero extent")

// Pose is a complete camera description: where it sits, what it looks at,
// and its clipping range.
type Pose struct {
	Position   math.Vec3
	Target     math.Vec3
	Near       float64
	Far        float64
	FOVDegrees float64
}

// Limits constrains navigation around the framed subject. MinPolar and
// MaxPolar are equal: vertical orbit is disabled.
type Limits struct {
	MinDistance float64
	MaxDistance float64
	MinPolar    float64
	MaxPolar    float64
	MinAzimuth  float64
	MaxAzimuth  float64
}

// Framing constants. The viewing angle and offset ratios are a fixed
// cinematic default, not tunables.
const (
	fitMargin   = 1.2           // keep the subject off the frame edges
	viewHeading = gomath.Pi / 4 // look direction in the XZ plane
	heightRatio = 0.4           // camera height as a fraction of view distance
	reachRatio  = 1.18          // lateral reach as a fraction of view distance
	lockedPolar = gomath.Pi / 3 // fixed polar angle for orbiting
	azimuthArc  = gomath.Pi / 4 // orbit restricted to +-45 degrees

	nearDivisor   = 100.0
	farMultiplier = 100.0
	minDistRatio  = 0.1
	maxDistRatio  = 5.0
)

// FitDistance returns the padded view distance at which a subject of
// diameter maxDim fills the vertical field of view.
func FitDistance(maxDim, fovDegrees float64) float64 {
	fov := math.Radians(fovDegrees)
	return maxDim / gomath.Tan(fov/2) * fitMargin
}

// Frame computes the camera pose and navigation limits that fit the given
// bounding volume into view. The subject geometry is recentred by the
// renderer so its bounds center sits at the origin; the returned target is
// therefore always the origin, which keeps the orbit pivot math trivial.
func Frame(bounds math.Box3, fovDegrees float64) (Pose, Limits, error) {
	maxDim := bounds.MaxDim()
	if maxDim <= 0 {
		return Pose{}, Limits{}, ErrDegenerateBounds
	}

	distance := FitDistance(maxDim, fovDegrees)

	pose := Pose{
		Position: math.Vec3{
			X: distance * reachRatio * gomath.Cos(viewHeading),
			Y: distance * heightRatio,
			Z: distance * reachRatio * gomath.Sin(viewHeading),
		},
		Target:     math.Vec3{},
		Near:       maxDim / nearDivisor,
		Far:        maxDim * farMultiplier,
		FOVDegrees: fovDegrees,
	}

	limits := Limits{
		MinDistance: maxDim * minDistRatio,
		MaxDistance: maxDim * maxDistRatio,
		MinPolar:    lockedPolar,
		MaxPolar:    lockedPolar,
		MinAzimuth:  -azimuthArc,
		MaxAzimuth:  azimuthArc,
	}

	return pose, limits, nil
}
