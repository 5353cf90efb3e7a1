package drag

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMachine(t *testing.T) {
	// state transition:
	//   -> FREE --Start--> DRAGGED --End--> FREE
	Convey("Drag state machine", t, func() {
		var started, ended int
		m := &Machine{
			OnStart: func() { started++ },
			OnEnd:   func() { ended++ },
		}
		So(m.State(), ShouldEqual, Free)
		So(m.Dragging(), ShouldBeFalse)
		So(m.End(), ShouldEqual, ErrNotDragging)
		So(ended, ShouldEqual, 0)

		So(m.Start(), ShouldBeNil)
		So(m.State(), ShouldEqual, Dragged)
		So(m.Dragging(), ShouldBeTrue)
		So(started, ShouldEqual, 1)

		So(m.Start(), ShouldEqual, ErrAlreadyDragging)
		So(started, ShouldEqual, 1)

		So(m.End(), ShouldBeNil)
		So(m.State(), ShouldEqual, Free)
		So(ended, ShouldEqual, 1)

		So(Free.String(), ShouldEqual, "free")
		So(Dragged.String(), ShouldEqual, "dragged")
	})
}

func TestRay(t *testing.T) {
	down := Ray{Origin: mgl64.Vec3{0, 0, 10}, Direction: mgl64.Vec3{0, 0, -1}}

	Convey("Sphere hits", t, func() {
		tHit, ok := HitSphere(down, mgl64.Vec3{}, 1.5)
		So(ok, ShouldBeTrue)
		So(tHit, ShouldAlmostEqual, 8.5, 1e-9)

		_, ok = HitSphere(down, mgl64.Vec3{3, 0, 0}, 1.5)
		So(ok, ShouldBeFalse)

		Convey("Sphere behind the origin misses", func() {
			_, ok := HitSphere(down, mgl64.Vec3{0, 0, 20}, 1.5)
			So(ok, ShouldBeFalse)
		})

		Convey("Origin inside the sphere hits on exit", func() {
			r := Ray{Origin: mgl64.Vec3{}, Direction: mgl64.Vec3{1, 0, 0}}
			tHit, ok := HitSphere(r, mgl64.Vec3{}, 2)
			So(ok, ShouldBeTrue)
			So(tHit, ShouldAlmostEqual, 2, 1e-9)
		})
	})

	Convey("Plane intersection", t, func() {
		r := Ray{Origin: mgl64.Vec3{0, 0, 10}, Direction: mgl64.Vec3{0.1, 0.2, -1}}
		p, ok := IntersectPlaneZ(r, 0)
		So(ok, ShouldBeTrue)
		So(p.X(), ShouldAlmostEqual, 1, 1e-9)
		So(p.Y(), ShouldAlmostEqual, 2, 1e-9)
		So(p.Z(), ShouldAlmostEqual, 0, 1e-9)

		_, ok = IntersectPlaneZ(Ray{Origin: mgl64.Vec3{0, 0, 10}, Direction: mgl64.Vec3{1, 0, 0}}, 0)
		So(ok, ShouldBeFalse)

		_, ok = IntersectPlaneZ(Ray{Origin: mgl64.Vec3{0, 0, 10}, Direction: mgl64.Vec3{0, 0, 1}}, 0)
		So(ok, ShouldBeFalse)
	})

	Convey("Grab keeps its pick offset", t, func() {
		center := mgl64.Vec3{0.5, 0, 0}
		g, ok := NewGrab(down, center, 1.5)
		So(ok, ShouldBeTrue)
		So(g.Offset, ShouldResemble, mgl64.Vec3{0.5, 0, 0})

		moved := Ray{Origin: mgl64.Vec3{2, 1, 10}, Direction: mgl64.Vec3{0, 0, -1}}
		p, ok := g.Follow(moved)
		So(ok, ShouldBeTrue)
		So(p, ShouldResemble, mgl64.Vec3{2.5, 1, 0})

		_, ok = NewGrab(down, mgl64.Vec3{5, 5, 0}, 1.5)
		So(ok, ShouldBeFalse)
	})
}
