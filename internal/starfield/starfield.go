// Package starfield generates the slowly spinning point cloud behind the body and the
// exponential-squared fog used to fade it.
package starfield

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
)

// Field is a cloud of static points that rotates about the world Y axis.
type Field struct {
	points   []mgl64.Vec3
	Rotation float64 // about Y, radians
}

// New scatters count points uniformly in a cube of side spread centred on the origin.
func New(rng *rand.Rand, count int, spread float64) *Field {
	f := &Field{points: make([]mgl64.Vec3, count)}
	for i := range f.points {
		f.points[i] = mgl64.Vec3{
			(rng.Float64() - 0.5) * spread,
			(rng.Float64() - 0.5) * spread,
			(rng.Float64() - 0.5) * spread,
		}
	}
	return f
}

// Len returns the number of stars.
func (f *Field) Len() int {
	return len(f.points)
}

// Spin advances the rotation by delta. Stars keep spinning while the body is dragged.
func (f *Field) Spin(delta float64) {
	f.Rotation += delta
}

// Positions returns the world-space star positions for the current rotation.
func (f *Field) Positions() []mgl64.Vec3 {
	rot := mgl64.Rotate3DY(f.Rotation)
	out := make([]mgl64.Vec3, len(f.points))
	for i, p := range f.points {
		out[i] = rot.Mul3x1(p)
	}
	return out
}

// FogFactor returns the visibility, in [0, 1], of a point at distance from the eye
// under exponential-squared fog: exp(-(density*distance)^2).
func FogFactor(distance, density float32) float32 {
	d := density * distance
	return math32.Exp(-d * d)
}
