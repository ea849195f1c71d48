package camera

import (
	gomath "math"

	"github.com/Faultbox/showroom/pkg/math"
)

// Mode identifies which navigation gesture owns the pointer.
type Mode int

const (
	// ModeOrbit rotates the camera around the pivot (default).
	ModeOrbit Mode = iota
	// ModeDolly translates the camera along its view direction while a
	// modifier-drag is active. All orbit and zoom input is ignored until
	// the pointer is released.
	ModeDolly
)

// Pixel-to-angle conversion for orbit drags, before the rotate speed
// multiplier is applied.
const dragSensitivity = 0.005

// Wheel zoom step as a fraction of the current distance.
const wheelZoomSensitivity = 0.1

// Options tune how navigation feels.
type Options struct {
	RotateSpeed float64 // drag-to-rotate multiplier, < 1 feels deliberate
	ZoomSpeed   float64 // dolly units per pixel of vertical drag
	Damping     float64 // blend toward the target azimuth per update
}

// DefaultOptions mirror the shipped config defaults.
func DefaultOptions() Options {
	return Options{
		RotateSpeed: 0.25,
		ZoomSpeed:   0.5,
		Damping:     0.1,
	}
}

// Controller implements orbit navigation constrained to a fixed polar angle
// and a narrow azimuth arc, plus a modifier-drag dolly that bypasses the
// orbit constraints entirely. Exactly one of the two modes owns pointer
// input at any instant; the entry guard is button-down with the modifier
// held, the exit guard is button-up.
type Controller struct {
	pose   Pose
	limits Limits
	opts   Options

	// Orbit state around the pivot. Azimuth is measured relative to the
	// framing heading, so the freshly framed camera sits at azimuth 0.
	azimuth       float64
	targetAzimuth float64
	distance      float64

	mode     Mode
	dragging bool
	lastX    float64
	lastY    float64

	baselinePose   Pose
	baselineLimits Limits
}

// NewController creates a controller for a freshly framed pose. The pose
// and limits are captured once as the reset baseline.
func NewController(pose Pose, limits Limits, opts Options) *Controller {
	c := &Controller{
		pose:           pose,
		limits:         limits,
		opts:           opts,
		baselinePose:   pose,
		baselineLimits: limits,
	}
	c.syncSpherical()
	return c
}

// Pose returns the current camera pose.
func (c *Controller) Pose() Pose {
	return c.pose
}

// Limits returns the active navigation limits.
func (c *Controller) Limits() Limits {
	return c.limits
}

// Mode returns the gesture that currently owns pointer input.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Azimuth returns the current orbit angle relative to the framing heading.
func (c *Controller) Azimuth() float64 {
	return c.azimuth
}

// Distance returns the current orbit distance from the pivot.
func (c *Controller) Distance() float64 {
	return c.distance
}

// PointerDown begins a gesture. A press with the modifier held enters dolly
// mode and records the pointer's vertical coordinate; a plain press starts
// an orbit drag.
func (c *Controller) PointerDown(x, y float64, modifier bool) {
	if modifier {
		c.mode = ModeDolly
		c.dragging = false
		c.lastY = y
		return
	}
	c.mode = ModeOrbit
	c.dragging = true
	c.lastX = x
	c.lastY = y
}

// PointerMove advances the active gesture.
func (c *Controller) PointerMove(x, y float64) {
	switch c.mode {
	case ModeDolly:
		deltaY := y - c.lastY
		c.lastY = y
		// Dragging up moves the camera forward, down moves it back.
		// No distance clamp here: flying past the pivot is allowed.
		c.dollyBy(-deltaY * c.opts.ZoomSpeed)
	case ModeOrbit:
		if !c.dragging {
			return
		}
		deltaX := x - c.lastX
		c.lastX = x
		c.lastY = y
		c.rotateBy(deltaX)
	}
}

// PointerUp ends any gesture and returns ownership to orbit mode.
func (c *Controller) PointerUp() {
	if c.mode == ModeDolly {
		c.mode = ModeOrbit
		// The dolly may have moved the camera off the constrained
		// sphere; rebuild the orbit state from where it ended up.
		c.syncSpherical()
	}
	c.dragging = false
}

// HandleZoom applies scroll zoom, clamped to the distance limits. Ignored
// while a dolly drag is active.
func (c *Controller) HandleZoom(delta float64) {
	if c.mode == ModeDolly {
		return
	}
	c.distance -= delta * c.distance * wheelZoomSensitivity
	c.distance = math.Clamp(c.distance, c.limits.MinDistance, c.limits.MaxDistance)
	c.applySpherical()
}

// Update advances orbit inertia: the current azimuth blends toward the
// drag target by the damping factor, so motion decelerates smoothly after
// release. No-op while a dolly drag owns the pointer.
func (c *Controller) Update(dt float64) {
	_ = dt // damping is per-update, matching the fixed-step frame loop
	if c.mode == ModeDolly {
		return
	}
	if c.azimuth == c.targetAzimuth {
		return
	}
	c.azimuth = math.Lerp(c.azimuth, c.targetAzimuth, c.opts.Damping)
	if gomath.Abs(c.targetAzimuth-c.azimuth) < 1e-6 {
		c.azimuth = c.targetAzimuth
	}
	c.applySpherical()
}

// Reset restores the pose and limits captured right after framing,
// discarding any orbit or dolly motion since.
func (c *Controller) Reset() {
	c.pose = c.baselinePose
	c.limits = c.baselineLimits
	c.mode = ModeOrbit
	c.dragging = false
	c.syncSpherical()
}

func (c *Controller) rotateBy(deltaX float64) {
	c.targetAzimuth = math.Clamp(
		c.targetAzimuth-deltaX*dragSensitivity*c.opts.RotateSpeed,
		c.limits.MinAzimuth,
		c.limits.MaxAzimuth,
	)
}

func (c *Controller) dollyBy(amount float64) {
	// Forward is the unit vector from camera to pivot. If the camera sits
	// exactly on the pivot the direction is undefined and the move is
	// dropped.
	forward := c.pose.Target.Sub(c.pose.Position).Normalize()
	c.pose.Position = c.pose.Position.Add(forward.Scale(amount))
}

// applySpherical recomputes the camera position from the orbit state. The
// polar angle is pinned to the single allowed value, so only azimuth and
// distance vary.
func (c *Controller) applySpherical() {
	heading := viewHeading + c.azimuth
	polar := c.limits.MinPolar // MinPolar == MaxPolar
	sinP := gomath.Sin(polar)
	c.pose.Position = c.pose.Target.Add(math.Vec3{
		X: c.distance * sinP * gomath.Cos(heading),
		Y: c.distance * gomath.Cos(polar),
		Z: c.distance * sinP * gomath.Sin(heading),
	})
}

// syncSpherical rebuilds the orbit state from the current pose without
// moving the camera. Called at construction, after reset, and when a dolly
// drag ends.
func (c *Controller) syncSpherical() {
	offset := c.pose.Position.Sub(c.pose.Target)
	c.distance = offset.Length()
	heading := gomath.Atan2(offset.Z, offset.X)
	c.azimuth = math.Clamp(
		normalizeAngle(heading-viewHeading),
		c.limits.MinAzimuth,
		c.limits.MaxAzimuth,
	)
	c.targetAzimuth = c.azimuth
}

// normalizeAngle wraps an angle to (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > gomath.Pi {
		a -= 2 * gomath.Pi
	}
	for a <= -gomath.Pi {
		a += 2 * gomath.Pi
	}
	return a
}
