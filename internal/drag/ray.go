package drag

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a pointer ray in world space. Direction need not be normalized.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// HitSphere returns the nearest non-negative ray parameter at which r enters the sphere.
// An origin inside the sphere hits at the exit point.
func HitSphere(r Ray, center mgl64.Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.Dot(r.Direction)
	if a == 0 {
		return 0, false
	}
	b := 2 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectPlaneZ returns where r crosses the plane z = z0. Rays parallel to the plane
// or pointing away from it miss.
func IntersectPlaneZ(r Ray, z0 float64) (mgl64.Vec3, bool) {
	dz := r.Direction.Z()
	if dz == 0 {
		return mgl64.Vec3{}, false
	}
	t := (z0 - r.Origin.Z()) / dz
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	return r.At(t), true
}

// Grab is an active pick: the body follows the pointer on the plane z = Plane, keeping
// the offset between the body centre and the point first grabbed.
type Grab struct {
	Plane  float64
	Offset mgl64.Vec3
}

// NewGrab picks a spherical body of the given centre and radius with r.
func NewGrab(r Ray, center mgl64.Vec3, radius float64) (*Grab, bool) {
	if _, ok := HitSphere(r, center, radius); !ok {
		return nil, false
	}
	g := &Grab{Plane: center.Z()}
	if p, ok := IntersectPlaneZ(r, g.Plane); ok {
		g.Offset = center.Sub(p)
	}
	return g, true
}

// Follow returns the new body centre for pointer ray r.
func (g *Grab) Follow(r Ray) (mgl64.Vec3, bool) {
	p, ok := IntersectPlaneZ(r, g.Plane)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return p.Add(g.Offset), true
}
