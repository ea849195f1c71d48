// Package postfx implements the radial vignette post-effect.
package postfx

import (
	gomath "math"

	"github.com/Faultbox/showroom/pkg/math"
)

// Params control the radial fade toward FadeColor. Distances are measured
// from the screen center, where 0 is the center and 1 the mid-edge.
type Params struct {
	FadeColor [3]float64
	Strength  float64 // blend toward FadeColor at full falloff
	Radius    float64 // where the fade starts
	Softness  float64 // width of the fade band
}

// Falloff returns the blend factor toward the fade color at the given
// distance from the screen center: zero inside the radius, rising smoothly
// to Strength across the softness band. The GLSL pass evaluates the same
// expression per fragment.
func (p Params) Falloff(dist float64) float64 {
	return math.Smoothstep(p.Radius, p.Radius+p.Softness, dist) * p.Strength
}

// Pulse animates the radius with a slow sine around its base value for a
// subtle ambient breathing. The time accumulator is the only state carried
// across frames.
type Pulse struct {
	base    Params
	speed   float64
	amount  float64
	elapsed float64
}

// NewPulse wraps params with a radius animation. A speed of zero freezes
// the radius at its base value.
func NewPulse(p Params, speed float64) *Pulse {
	return &Pulse{
		base:   p,
		speed:  speed,
		amount: p.Radius * 0.08,
	}
}

// Advance accumulates dt and returns the params for the next frame.
func (pl *Pulse) Advance(dt float64) Params {
	pl.elapsed += dt
	p := pl.base
	p.Radius = pl.base.Radius + gomath.Sin(pl.elapsed*pl.speed)*pl.amount
	return p
}
