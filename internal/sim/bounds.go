// Package sim holds the kinematic core of the scene: the viewport bounds the body may
// occupy and the per-frame bounce update.
package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds is the half-width/half-height box, centred on the origin, that the body's centre
// may occupy on the z=0 plane.
type Bounds struct {
	HalfWidth  float64
	HalfHeight float64
}

// Degenerate reports whether the object is too large for the visible area on either axis.
func (b Bounds) Degenerate() bool {
	return b.HalfWidth < 0 || b.HalfHeight < 0
}

// ComputeBounds converts the camera's vertical field of view (degrees) and aspect ratio into
// the world-space box visible at cameraDistance, shrunk by radius on every side.
// The result goes negative when radius exceeds the visible half-extent.
func ComputeBounds(cameraDistance, fovYDegrees, aspect, radius float64) Bounds {
	fov := mgl64.DegToRad(fovYDegrees)
	visibleHeight := 2 * math.Tan(fov/2) * cameraDistance
	visibleWidth := visibleHeight * aspect
	return Bounds{
		HalfWidth:  visibleWidth/2 - radius,
		HalfHeight: visibleHeight/2 - radius,
	}
}

// Camera is the part of the host camera the bounds depend on.
type Camera struct {
	Distance float64
	FovY     float64 // degrees
	Aspect   float64
}

// Resize updates the aspect ratio from a viewport in pixels. A zero height is ignored.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// Bounds returns the box for an object of the given radius.
func (c Camera) Bounds(radius float64) Bounds {
	return ComputeBounds(c.Distance, c.FovY, c.Aspect, radius)
}
