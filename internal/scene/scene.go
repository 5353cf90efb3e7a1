package scene

import (
	"dodeca/internal/config"
	"dodeca/internal/drag"
	"dodeca/internal/geometry"
	"dodeca/internal/sim"
	"dodeca/internal/starfield"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	starSize  = 0.15
	starAlpha = 0.8
)

// Scene holds the raylib camera and the decoration around the simulated body: starfield,
// coloured mesh and lights. It turns mouse input into drag events on the world and draws
// the world's snapshot each frame.
type Scene struct {
	Camera rl.Camera3D
	Stars  *starfield.Field
	Mesh   geometry.Mesh
	Lights geometry.Lights

	fog      float32
	starSpin float64
	grab     *drag.Grab
}

// New returns a scene with a perspective camera at (0, 0, CameraDistance) looking at the origin.
// Stars and face colours are drawn from the world's PRNG so a seed reproduces the whole scene.
func New(cfg config.Config, w *sim.World) *Scene {
	s := &Scene{
		Stars:    starfield.New(w.Rand(), cfg.StarCount, cfg.StarSpread),
		Mesh:     geometry.BodyMesh(cfg.Radius, w.Rand()),
		Lights:   geometry.DefaultLights(),
		fog:      float32(cfg.FogDensity),
		starSpin: cfg.StarSpin,
	}
	s.Camera.Position = rl.NewVector3(0, 0, float32(cfg.CameraDistance))
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = float32(cfg.FovY)
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Update runs once per frame before the world ticks. A left press on the body starts a drag,
// moving the mouse while held drags it on its z-plane, releasing ends the drag.
func (s *Scene) Update(w *sim.World) {
	s.Stars.Spin(s.starSpin)

	ray := toRay(rl.GetScreenToWorldRay(rl.GetMousePosition(), s.Camera))
	switch {
	case s.grab == nil && rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		g, ok := drag.NewGrab(ray, w.Body.Position, w.Radius)
		if !ok {
			return
		}
		if err := w.BeginDrag(); err != nil {
			return
		}
		s.grab = g
	case s.grab != nil && rl.IsMouseButtonDown(rl.MouseButtonLeft):
		if p, ok := s.grab.Follow(ray); ok {
			_ = w.DragTo(p)
		}
	case s.grab != nil:
		s.grab = nil
		_ = w.EndDrag()
	}
}

// Draw renders the fogged starfield, then the flat-shaded body of the snapshot.
// Call between BeginDrawing and EndDrawing.
func (s *Scene) Draw(snap sim.Snapshot) {
	rl.BeginMode3D(s.Camera)
	eye := fromVector3(s.Camera.Position)

	size := rl.NewVector3(starSize, starSize, starSize)
	for _, p := range s.Stars.Positions() {
		fog := starfield.FogFactor(float32(p.Sub(eye).Len()), s.fog)
		a := uint8(255 * starAlpha * fog)
		rl.DrawCubeV(toVector3(p), size, rl.NewColor(255, 255, 255, a))
	}

	var emissive geometry.RGB
	if snap.Highlighted {
		emissive = geometry.Highlight
	}
	mesh := s.Mesh.Transform(snap.Rotation.X, snap.Rotation.Y, snap.Position)
	for _, t := range mesh.Triangles {
		fog := starfield.FogFactor(float32(t.Centroid().Sub(eye).Len()), s.fog)
		c := geometry.Shade(t, s.Lights, emissive)
		rl.DrawTriangle3D(toVector3(t.A), toVector3(t.B), toVector3(t.C), toColor(c, fog))
	}
	rl.EndMode3D()
}

func toVector3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}

func fromVector3(v rl.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func toRay(r rl.Ray) drag.Ray {
	return drag.Ray{Origin: fromVector3(r.Position), Direction: fromVector3(r.Direction)}
}

// toColor fades c toward the black background by the fog visibility.
func toColor(c geometry.RGB, fog float32) rl.Color {
	channel := func(v float64) uint8 {
		return uint8(math32.Round(math32.Min(1, math32.Max(0, float32(v)*fog)) * 255))
	}
	return rl.NewColor(channel(c.R), channel(c.G), channel(c.B), 255)
}
