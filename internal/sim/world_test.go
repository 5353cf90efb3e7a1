package sim

import (
	"math"
	"strings"
	"testing"

	"dodeca/internal/config"
	"dodeca/internal/drag"
	"dodeca/internal/logger"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/smartystreets/goconvey/convey"
)

func testConfig() config.Config {
	c := config.Default()
	c.Seed = 42
	c.Width, c.Height = 1000, 1000
	c.LogFile = ""
	return c
}

func TestWorld(t *testing.T) {
	Convey("Given a seeded world", t, func() {
		log := logger.New("")
		w := NewWorld(testConfig(), log)

		So(w.Camera.Aspect, ShouldEqual, 1.0)
		So(w.Bounds, ShouldResemble, ComputeBounds(10, 75, 1, 1.5))
		So(w.Body.Position, ShouldResemble, mgl64.Vec3{})
		So(w.DragState(), ShouldEqual, drag.Free)

		Convey("Same seed gives the same body", func() {
			other := NewWorld(testConfig(), nil)
			So(other.Body, ShouldResemble, w.Body)
		})

		Convey("Resize is visible to the next tick", func() {
			w.Body.Position = mgl64.Vec3{5, 0, 0}
			w.Body.Velocity = mgl64.Vec3{0.1, 0, 0}
			w.Resize(500, 1000)
			So(w.Bounds.HalfWidth, ShouldBeLessThan, 5)
			w.Tick()
			So(w.Body.Position.X(), ShouldEqual, w.Bounds.HalfWidth)
			So(w.Body.Velocity.X(), ShouldEqual, -0.1)
			So(w.Frame, ShouldEqual, uint64(1))
		})

		Convey("Degenerate resize logs a warning", func() {
			w.Radius = 100
			w.Resize(800, 600)
			So(w.Bounds.Degenerate(), ShouldBeTrue)
			lines := log.Lines()
			So(lines[len(lines)-1], ShouldContainSubstring, "warning")
		})

		Convey("Drag lifecycle", func() {
			So(w.DragTo(mgl64.Vec3{1, 1, 0}), ShouldEqual, drag.ErrNotDragging)
			So(w.EndDrag(), ShouldEqual, drag.ErrNotDragging)

			So(w.BeginDrag(), ShouldBeNil)
			So(w.Snapshot().Highlighted, ShouldBeTrue)
			So(w.BeginDrag(), ShouldEqual, drag.ErrAlreadyDragging)

			So(w.DragTo(mgl64.Vec3{2, -1, 0.5}), ShouldBeNil)
			before := *w.Body
			w.Tick()
			So(*w.Body, ShouldResemble, before)
			So(w.Frame, ShouldEqual, uint64(1))

			w.Body.Velocity[2] = 0.25
			spin := w.Body.RotationSpeed
			So(w.EndDrag(), ShouldBeNil)
			So(w.DragState(), ShouldEqual, drag.Free)
			So(w.Snapshot().Highlighted, ShouldBeFalse)
			So(math.Abs(w.Body.Velocity.X()), ShouldBeLessThanOrEqualTo, 0.1)
			So(math.Abs(w.Body.Velocity.Y()), ShouldBeLessThanOrEqualTo, 0.1)
			So(w.Body.Velocity.Z(), ShouldEqual, 0.25)
			So(w.Body.RotationSpeed, ShouldResemble, spin)
			So(w.Body.Position, ShouldResemble, mgl64.Vec3{2, -1, 0.5})

			var sawStart, sawEnd bool
			for _, l := range log.Lines() {
				sawStart = sawStart || strings.Contains(l, "drag start")
				sawEnd = sawEnd || strings.Contains(l, "drag end")
			}
			So(sawStart, ShouldBeTrue)
			So(sawEnd, ShouldBeTrue)
		})

		Convey("Body stays inside the bounds over many frames", func() {
			for i := 0; i < 2000; i++ {
				w.Tick()
				p := w.Body.Position
				So(math.Abs(p.X()) <= w.Bounds.HalfWidth, ShouldBeTrue)
				So(math.Abs(p.Y()) <= w.Bounds.HalfHeight, ShouldBeTrue)
			}
		})

		Convey("Snapshot mirrors the body", func() {
			w.Tick()
			s := w.Snapshot()
			So(s.Frame, ShouldEqual, uint64(1))
			So(s.Position, ShouldResemble, w.Body.Position)
			So(s.Rotation, ShouldResemble, w.Body.Rotation)
			So(s.State, ShouldEqual, drag.Free)
			So(s.Bounds, ShouldResemble, w.Bounds)
			So(s.String(), ShouldStartWith, "frame 1  pos (")
			So(s.String(), ShouldEndWith, "free")
		})
	})
}
