package asset

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/showroom/pkg/math"
)

// builder accumulates interleaved position+normal vertex data.
type builder struct {
	verts []float32
}

func (b *builder) vertex(p, n math.Vec3) {
	b.verts = append(b.verts,
		float32(p.X), float32(p.Y), float32(p.Z),
		float32(n.X), float32(n.Y), float32(n.Z),
	)
}

func (b *builder) tri(p1, p2, p3, n math.Vec3) {
	b.vertex(p1, n)
	b.vertex(p2, n)
	b.vertex(p3, n)
}

// quad emits two triangles; corners are given counter-clockwise.
func (b *builder) quad(p1, p2, p3, p4, n math.Vec3) {
	b.tri(p1, p2, p3, n)
	b.tri(p1, p3, p4, n)
}

// box emits an axis-aligned box centered at center.
func (b *builder) box(center, size math.Vec3) {
	h := size.Scale(0.5)
	min := center.Sub(h)
	max := center.Add(h)

	// Corner shorthand: xyz bits pick min or max per axis.
	c := func(x, y, z bool) math.Vec3 {
		p := min
		if x {
			p.X = max.X
		}
		if y {
			p.Y = max.Y
		}
		if z {
			p.Z = max.Z
		}
		return p
	}

	b.quad(c(false, false, true), c(true, false, true), c(true, true, true), c(false, true, true), math.Vec3{Z: 1})
	b.quad(c(true, false, false), c(false, false, false), c(false, true, false), c(true, true, false), math.Vec3{Z: -1})
	b.quad(c(true, false, true), c(true, false, false), c(true, true, false), c(true, true, true), math.Vec3{X: 1})
	b.quad(c(false, false, false), c(false, false, true), c(false, true, true), c(false, true, false), math.Vec3{X: -1})
	b.quad(c(false, true, true), c(true, true, true), c(true, true, false), c(false, true, false), math.Vec3{Y: 1})
	b.quad(c(false, false, false), c(true, false, false), c(true, false, true), c(false, false, true), math.Vec3{Y: -1})
}

// CubeSource generates a single axis-aligned cube.
type CubeSource struct {
	Size float64
}

// Name implements Source.
func (s *CubeSource) Name() string { return "cube" }

// Load implements Source.
func (s *CubeSource) Load(cb Callbacks) {
	if s.Size <= 0 {
		cb.fail(fmt.Errorf("asset: cube size must be positive, got %v", s.Size))
		return
	}

	cb.progress(0)
	var b builder
	b.box(math.Vec3{}, math.Vec3{X: s.Size, Y: s.Size, Z: s.Size})
	cb.progress(0.5)

	cb.progress(1)
	cb.done(Result{
		Name:     s.Name(),
		Vertices: b.verts,
		Bounds:   ComputeBounds(b.verts),
	})
}

// SphereSource generates a UV sphere.
type SphereSource struct {
	Radius   float64
	Segments int // around the equator
	Rings    int // pole to pole
}

// Name implements Source.
func (s *SphereSource) Name() string { return "sphere" }

// Load implements Source.
func (s *SphereSource) Load(cb Callbacks) {
	if s.Radius <= 0 {
		cb.fail(fmt.Errorf("asset: sphere radius must be positive, got %v", s.Radius))
		return
	}
	segments := s.Segments
	if segments < 3 {
		segments = 3
	}
	rings := s.Rings
	if rings < 2 {
		rings = 2
	}

	cb.progress(0)

	point := func(ring, seg int) math.Vec3 {
		polar := gomath.Pi * float64(ring) / float64(rings)
		azimuth := 2 * gomath.Pi * float64(seg) / float64(segments)
		return math.Vec3{
			X: s.Radius * gomath.Sin(polar) * gomath.Cos(azimuth),
			Y: s.Radius * gomath.Cos(polar),
			Z: s.Radius * gomath.Sin(polar) * gomath.Sin(azimuth),
		}
	}

	var b builder
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			p1 := point(ring, seg)
			p2 := point(ring+1, seg)
			p3 := point(ring+1, seg+1)
			p4 := point(ring, seg+1)

			// On a sphere the normal is the normalized position; use the
			// face centroid for flat shading.
			n := p1.Add(p2).Add(p3).Add(p4).Normalize()
			if ring == 0 {
				b.tri(p1, p2, p3, n)
			} else if ring == rings-1 {
				b.tri(p1, p2, p4, n)
			} else {
				b.quad(p1, p2, p3, p4, n)
			}
		}
		cb.progress(float64(ring+1) / float64(rings))
	}

	cb.done(Result{
		Name:     s.Name(),
		Vertices: b.verts,
		Bounds:   ComputeBounds(b.verts),
	})
}

// ShowpieceSource generates a pedestal with a floating slab above it, a
// subject with visibly different extents per axis so framing and orbiting
// are easy to judge.
type ShowpieceSource struct {
	Scale float64
}

// Name implements Source.
func (s *ShowpieceSource) Name() string { return "showpiece" }

// Load implements Source.
func (s *ShowpieceSource) Load(cb Callbacks) {
	if s.Scale <= 0 {
		cb.fail(fmt.Errorf("asset: showpiece scale must be positive, got %v", s.Scale))
		return
	}

	u := s.Scale / 10 // one grid unit

	cb.progress(0)
	var b builder
	b.box(math.Vec3{Y: 0.5 * u}, math.Vec3{X: 10 * u, Y: 1 * u, Z: 10 * u}) // base
	cb.progress(0.25)
	b.box(math.Vec3{Y: 2.5 * u}, math.Vec3{X: 4 * u, Y: 3 * u, Z: 4 * u}) // column
	cb.progress(0.5)
	b.box(math.Vec3{Y: 4.5 * u}, math.Vec3{X: 6 * u, Y: 1 * u, Z: 6 * u}) // cap
	cb.progress(0.75)
	b.box(math.Vec3{Y: 6.5 * u}, math.Vec3{X: 2 * u, Y: 2 * u, Z: 2 * u}) // exhibit
	cb.progress(1)

	cb.done(Result{
		Name:     s.Name(),
		Vertices: b.verts,
		Bounds:   ComputeBounds(b.verts),
	})
}
