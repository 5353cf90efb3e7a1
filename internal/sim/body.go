package sim

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Angles is a pair of Euler angles in radians. Z rotation is never driven.
type Angles struct {
	X, Y float64
}

// Body is the moving dodecahedron: centre position, per-frame velocity and a free spin.
type Body struct {
	Position      mgl64.Vec3
	Velocity      mgl64.Vec3
	Rotation      Angles
	RotationSpeed Angles
}

// Params are the constants of the bounce update.
type Params struct {
	SpeedSpan        float64 // initial velocity drawn in ±SpeedSpan/2
	PushSpan         float64 // release velocity drawn in ±PushSpan/2
	MaxRotationSpeed float64 // rotation speed drawn in [0, MaxRotationSpeed)
	ZThreshold       float64
	ZDecay           float64
}

// DefaultParams are the constants of the original scene.
func DefaultParams() Params {
	return Params{
		SpeedSpan:        0.15,
		PushSpan:         0.2,
		MaxRotationSpeed: 0.02,
		ZThreshold:       0.1,
		ZDecay:           0.9,
	}
}

// NewBody returns a body at the origin with a random planar velocity and a random positive spin.
func NewBody(rng *rand.Rand, p Params) *Body {
	return &Body{
		Velocity: mgl64.Vec3{
			(rng.Float64() - 0.5) * p.SpeedSpan,
			(rng.Float64() - 0.5) * p.SpeedSpan,
			0,
		},
		RotationSpeed: Angles{
			X: rng.Float64() * p.MaxRotationSpeed,
			Y: rng.Float64() * p.MaxRotationSpeed,
		},
	}
}

// Push gives the body a fresh random planar velocity. Velocity.Z and the spin are kept.
func (b *Body) Push(rng *rand.Rand, span float64) {
	b.Velocity[0] = (rng.Float64() - 0.5) * span
	b.Velocity[1] = (rng.Float64() - 0.5) * span
}

// Step advances b by one frame inside bounds. While dragging nothing moves, spin included.
//
// Order: spin, integrate, reflect X then Y (clamp to the edge, negate that velocity
// component; the upper edge wins when both checks hold), then decay Z toward the plane.
func Step(b *Body, bounds Bounds, dragging bool, p Params) {
	if dragging {
		return
	}

	b.Rotation.X += b.RotationSpeed.X
	b.Rotation.Y += b.RotationSpeed.Y

	b.Position = b.Position.Add(b.Velocity)

	reflect(&b.Position[0], &b.Velocity[0], bounds.HalfWidth)
	reflect(&b.Position[1], &b.Velocity[1], bounds.HalfHeight)

	if math.Abs(b.Position[2]) > p.ZThreshold {
		b.Position[2] *= p.ZDecay
	}
}

func reflect(pos, vel *float64, half float64) {
	if *pos >= half {
		*pos = half
		*vel = -*vel
	} else if *pos <= -half {
		*pos = -half
		*vel = -*vel
	}
}
