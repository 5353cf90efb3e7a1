package sim

import (
	"fmt"
	"math/rand/v2"
	"time"

	"dodeca/internal/config"
	"dodeca/internal/drag"
	"dodeca/internal/logger"

	"github.com/go-gl/mathgl/mgl64"
)

// World is the simulation context: camera, bounds, the body and its drag state.
// It is owned by the caller and driven from a single goroutine: resize, drag and
// tick calls are applied in the order they are made, so a Resize is always seen by
// the next Tick.
type World struct {
	Camera Camera
	Radius float64
	Bounds Bounds
	Body   *Body
	Params Params
	Frame  uint64

	drag drag.Machine
	rng  *rand.Rand
	log  *logger.Logger
}

// NewWorld builds a world from cfg. The PRNG is seeded with cfg.Seed, or the clock when 0.
func NewWorld(cfg config.Config, log *logger.Logger) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	w := &World{
		Camera: Camera{Distance: cfg.CameraDistance, FovY: cfg.FovY, Aspect: 1},
		Radius: cfg.Radius,
		Params: Params{
			SpeedSpan:        cfg.SpeedSpan,
			PushSpan:         cfg.PushSpan,
			MaxRotationSpeed: cfg.MaxRotationSpeed,
			ZThreshold:       cfg.ZThreshold,
			ZDecay:           cfg.ZDecay,
		},
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		log: log,
	}
	w.Body = NewBody(w.rng, w.Params)
	w.drag.OnEnd = func() {
		w.Body.Push(w.rng, w.Params.PushSpan)
		w.log.Logf("drag end at (%.3f, %.3f, %.3f), push (%.3f, %.3f)",
			w.Body.Position[0], w.Body.Position[1], w.Body.Position[2], w.Body.Velocity[0], w.Body.Velocity[1])
	}
	w.drag.OnStart = func() {
		w.log.Logf("drag start at (%.3f, %.3f, %.3f)", w.Body.Position[0], w.Body.Position[1], w.Body.Position[2])
	}
	w.Resize(cfg.Width, cfg.Height)
	return w
}

// Rand returns the world's PRNG so scene decoration (stars, face colours) shares its seed.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Resize recomputes the bounds for a viewport of width×height pixels.
func (w *World) Resize(width, height int) {
	w.Camera.Resize(width, height)
	w.Bounds = w.Camera.Bounds(w.Radius)
	w.log.Logf("resize %dx%d: aspect %.4f, bounds %.3f x %.3f",
		width, height, w.Camera.Aspect, w.Bounds.HalfWidth, w.Bounds.HalfHeight)
	if w.Bounds.Degenerate() {
		w.log.Logf("warning: radius %.3f exceeds the visible half-extent, body will be pinned", w.Radius)
	}
}

// Tick advances the body by one frame.
func (w *World) Tick() {
	Step(w.Body, w.Bounds, w.drag.Dragging(), w.Params)
	w.Frame++
}

// DragState returns the current drag state.
func (w *World) DragState() drag.State {
	return w.drag.State()
}

// BeginDrag hands the body to the pointer.
func (w *World) BeginDrag() error {
	return w.drag.Start()
}

// DragTo moves a dragged body to p.
func (w *World) DragTo(p mgl64.Vec3) error {
	if !w.drag.Dragging() {
		return drag.ErrNotDragging
	}
	w.Body.Position = p
	return nil
}

// EndDrag releases the body with a random push.
func (w *World) EndDrag() error {
	return w.drag.End()
}

// Snapshot is what the renderer needs for one frame.
type Snapshot struct {
	Frame       uint64
	Position    mgl64.Vec3
	Rotation    Angles
	Highlighted bool
	State       drag.State
	Bounds      Bounds
}

// String is the one-line readout used by the debug overlay and the headless caption.
func (s Snapshot) String() string {
	return fmt.Sprintf("frame %d  pos (%.2f, %.2f, %.2f)  bounds %.2f x %.2f  %s",
		s.Frame, s.Position[0], s.Position[1], s.Position[2], s.Bounds.HalfWidth, s.Bounds.HalfHeight, s.State)
}

// Snapshot returns the current render state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Frame:       w.Frame,
		Position:    w.Body.Position,
		Rotation:    w.Body.Rotation,
		Highlighted: w.drag.Dragging(),
		State:       w.drag.State(),
		Bounds:      w.Bounds,
	}
}
