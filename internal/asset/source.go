// Package asset provides the subject geometry for the viewer.
//
// The viewer does not parse model files; subjects come from a Source, which
// delivers geometry through callbacks so the session can surface load
// progress and treat failures uniformly.
package asset

import (
	"fmt"
	"strings"

	"github.com/Faultbox/showroom/pkg/math"
)

// VertexStride is the number of floats per vertex: position xyz + normal xyz.
const VertexStride = 6

// Result is a loaded subject: interleaved vertex data plus its bounding
// volume. Bounds is computed once at load and read-only afterwards.
type Result struct {
	Name     string
	Vertices []float32 // position(3) + normal(3) per vertex
	Bounds   math.Box3
}

// Callbacks receive load outcomes. Progress is fractional (0..1) and only
// drives UI text. Exactly one of Done or Fail fires, after which the source
// is finished. Fail must not panic the viewer; the session logs and swallows
// it.
type Callbacks struct {
	Progress func(frac float64)
	Done     func(Result)
	Fail     func(err error)
}

// Source produces a subject asynchronously through Callbacks.
type Source interface {
	Name() string
	Load(cb Callbacks)
}

// New returns the built-in source for the given kind, scaled to size.
func New(kind string, size float64) (Source, error) {
	switch strings.ToLower(kind) {
	case "cube":
		return &CubeSource{Size: size}, nil
	case "sphere":
		return &SphereSource{Radius: size / 2, Segments: 48, Rings: 24}, nil
	case "showpiece":
		return &ShowpieceSource{Scale: size}, nil
	default:
		return nil, fmt.Errorf("asset: unknown subject %q", kind)
	}
}

// ComputeBounds returns the axis-aligned bounding box of interleaved vertex
// data. An empty or truncated buffer yields an empty box.
func ComputeBounds(vertices []float32) math.Box3 {
	box := math.EmptyBox3()
	for i := 0; i+VertexStride <= len(vertices); i += VertexStride {
		box = box.ExtendPoint(math.Vec3{
			X: float64(vertices[i]),
			Y: float64(vertices[i+1]),
			Z: float64(vertices[i+2]),
		})
	}
	return box
}

func (cb Callbacks) progress(frac float64) {
	if cb.Progress != nil {
		cb.Progress(frac)
	}
}

func (cb Callbacks) done(r Result) {
	if cb.Done != nil {
		cb.Done(r)
	}
}

func (cb Callbacks) fail(err error) {
	if cb.Fail != nil {
		cb.Fail(err)
	}
}
