package sim

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/smartystreets/goconvey/convey"
)

func TestComputeBounds(t *testing.T) {
	Convey("Viewport bounds", t, func() {
		Convey("Square viewport at distance 10, fov 75", func() {
			b := ComputeBounds(10, 75, 1.0, 1.5)
			want := math.Tan(37.5*math.Pi/180)*10 - 1.5
			So(b.HalfHeight, ShouldAlmostEqual, want, 1e-12)
			So(b.HalfWidth, ShouldAlmostEqual, want, 1e-12)
			So(b.HalfHeight, ShouldAlmostEqual, 6.173, 1e-3)
			So(b.Degenerate(), ShouldBeFalse)
		})

		Convey("Width scales with aspect", func() {
			b := ComputeBounds(10, 75, 2.0, 0)
			So(b.HalfWidth, ShouldAlmostEqual, 2*b.HalfHeight, 1e-12)
		})

		Convey("Positive for any radius below the visible half-extent", func() {
			for _, fov := range []float64{1, 30, 75, 120, 179} {
				for _, aspect := range []float64{0.25, 1, 16.0 / 9} {
					for _, dist := range []float64{0.5, 10, 300} {
						h := math.Tan(fov*math.Pi/360) * dist
						r := 0.99 * math.Min(h, h*aspect)
						b := ComputeBounds(dist, fov, aspect, r)
						So(b.HalfWidth, ShouldBeGreaterThan, 0)
						So(b.HalfHeight, ShouldBeGreaterThan, 0)
					}
				}
			}
		})

		Convey("Pure", func() {
			So(ComputeBounds(7, 50, 1.3, 0.4), ShouldResemble, ComputeBounds(7, 50, 1.3, 0.4))
		})

		Convey("Oversized radius goes negative", func() {
			b := ComputeBounds(10, 75, 1.0, 10)
			So(b.HalfWidth, ShouldBeLessThan, 0)
			So(b.Degenerate(), ShouldBeTrue)
		})
	})
}

func TestCamera(t *testing.T) {
	Convey("Camera resize", t, func() {
		c := Camera{Distance: 10, FovY: 75, Aspect: 1}
		c.Resize(1920, 1080)
		So(c.Aspect, ShouldAlmostEqual, 16.0/9, 1e-12)
		c.Resize(800, 0)
		So(c.Aspect, ShouldAlmostEqual, 16.0/9, 1e-12)
		So(c.Bounds(1.5), ShouldResemble, ComputeBounds(10, 75, 16.0/9, 1.5))
	})
}

func TestStep(t *testing.T) {
	p := DefaultParams()
	wide := Bounds{HalfWidth: 100, HalfHeight: 100}

	Convey("Bounce step", t, func() {
		Convey("Spins then integrates", func() {
			b := &Body{
				Position:      mgl64.Vec3{1, 2, 0},
				Velocity:      mgl64.Vec3{0.5, -0.25, 0},
				RotationSpeed: Angles{X: 0.01, Y: 0.02},
			}
			Step(b, wide, false, p)
			So(b.Position, ShouldResemble, mgl64.Vec3{1.5, 1.75, 0})
			So(b.Rotation, ShouldResemble, Angles{X: 0.01, Y: 0.02})
			So(b.Velocity, ShouldResemble, mgl64.Vec3{0.5, -0.25, 0})
		})

		Convey("Reflects on the right edge", func() {
			bounds := Bounds{HalfWidth: 6.176, HalfHeight: 6.176}
			b := &Body{Position: mgl64.Vec3{6.5, 0, 0}, Velocity: mgl64.Vec3{0.1, 0, 0}}
			Step(b, bounds, false, p)
			So(b.Position.X(), ShouldEqual, 6.176)
			So(b.Velocity.X(), ShouldEqual, -0.1)
		})

		Convey("Reflection law just past the edge", func() {
			bounds := Bounds{HalfWidth: 3, HalfHeight: 3}
			b := &Body{Position: mgl64.Vec3{3 + 1e-6, 0, 0}, Velocity: mgl64.Vec3{0.2, 0, 0}}
			Step(b, bounds, false, p)
			So(b.Position.X(), ShouldEqual, 3.0)
			So(b.Velocity.X(), ShouldEqual, -0.2)
		})

		Convey("Reflects on the bottom edge", func() {
			bounds := Bounds{HalfWidth: 3, HalfHeight: 2}
			b := &Body{Position: mgl64.Vec3{0, -1.95, 0}, Velocity: mgl64.Vec3{0, -0.1, 0}}
			Step(b, bounds, false, p)
			So(b.Position.Y(), ShouldEqual, -2.0)
			So(b.Velocity.Y(), ShouldEqual, 0.1)
		})

		Convey("Upper edge wins on negative bounds", func() {
			bounds := Bounds{HalfWidth: -1, HalfHeight: -1}
			b := &Body{Position: mgl64.Vec3{0, 0, 0}, Velocity: mgl64.Vec3{0.1, 0.1, 0}}
			Step(b, bounds, false, p)
			So(b.Position.X(), ShouldEqual, -1.0)
			So(b.Velocity.X(), ShouldEqual, -0.1)
			So(b.Position.Y(), ShouldEqual, -1.0)
			So(b.Velocity.Y(), ShouldEqual, -0.1)
		})

		Convey("Z decays toward the plane then stops", func() {
			b := &Body{Position: mgl64.Vec3{0, 0, 1.0}}
			Step(b, wide, false, p)
			So(b.Position.Z(), ShouldAlmostEqual, 0.9, 1e-12)

			for i := 0; i < 100; i++ {
				Step(b, wide, false, p)
			}
			residual := b.Position.Z()
			So(residual, ShouldBeLessThanOrEqualTo, 0.1)
			So(residual, ShouldBeGreaterThan, 0.09)
			Step(b, wide, false, p)
			So(b.Position.Z(), ShouldEqual, residual)
		})

		Convey("Dragging suspends everything", func() {
			b := &Body{
				Position:      mgl64.Vec3{50, -50, 3},
				Velocity:      mgl64.Vec3{1, 1, 1},
				Rotation:      Angles{X: 0.3, Y: 0.4},
				RotationSpeed: Angles{X: 0.01, Y: 0.01},
			}
			before := *b
			Step(b, Bounds{HalfWidth: 1, HalfHeight: 1}, true, p)
			So(*b, ShouldResemble, before)
		})
	})
}

func TestBody(t *testing.T) {
	Convey("Body construction and push", t, func() {
		rng := rand.New(rand.NewPCG(1, 2))
		p := DefaultParams()
		for i := 0; i < 200; i++ {
			b := NewBody(rng, p)
			So(b.Position, ShouldResemble, mgl64.Vec3{})
			So(math.Abs(b.Velocity.X()), ShouldBeLessThanOrEqualTo, 0.075)
			So(math.Abs(b.Velocity.Y()), ShouldBeLessThanOrEqualTo, 0.075)
			So(b.Velocity.Z(), ShouldEqual, 0.0)
			So(b.RotationSpeed.X, ShouldBeBetweenOrEqual, 0.0, 0.02)
			So(b.RotationSpeed.Y, ShouldBeBetweenOrEqual, 0.0, 0.02)

			b.Velocity[2] = 0.5
			spin := b.RotationSpeed
			b.Push(rng, p.PushSpan)
			So(math.Abs(b.Velocity.X()), ShouldBeLessThanOrEqualTo, 0.1)
			So(math.Abs(b.Velocity.Y()), ShouldBeLessThanOrEqualTo, 0.1)
			So(b.Velocity.Z(), ShouldEqual, 0.5)
			So(b.RotationSpeed, ShouldResemble, spin)
		}
	})
}
