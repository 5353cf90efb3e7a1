package headless

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"dodeca/internal/geometry"
	"dodeca/internal/sim"
	"dodeca/internal/starfield"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	boundsColor  = color.RGBA{60, 60, 90, 255}
	captionColor = color.RGBA{200, 200, 200, 255}
)

// Renderer rasterizes a snapshot of the scene: fogged stars, the flat-shaded body and
// the bounds box its centre is confined to.
type Renderer struct {
	Mesh     geometry.Mesh
	Stars    *starfield.Field // optional
	Lights   geometry.Lights
	Fog      float32
	Camera   sim.Camera
	Near     float64
	Far      float64
	StarBlur float64 // gaussian radius in pixels, 0 disables
	Caption  bool
}

// projector maps world points to pixels for a camera on +Z looking at the origin.
type projector struct {
	eye       mgl64.Vec3
	focal     float64
	cx, cy    float64
	near, far float64
}

func (r *Renderer) projector(width, height int) projector {
	fov := mgl64.DegToRad(r.Camera.FovY)
	return projector{
		eye:   mgl64.Vec3{0, 0, r.Camera.Distance},
		focal: float64(height) / 2 / math.Tan(fov/2),
		cx:    float64(width) / 2,
		cy:    float64(height) / 2,
		near:  r.Near,
		far:   r.Far,
	}
}

// project returns the pixel position of p, or false when p is outside the depth range.
func (pr projector) project(p mgl64.Vec3) (x, y float64, ok bool) {
	depth := pr.eye.Z() - p.Z()
	if depth < pr.near || (pr.far > 0 && depth > pr.far) {
		return 0, 0, false
	}
	return pr.cx + p.X()*pr.focal/depth, pr.cy - p.Y()*pr.focal/depth, true
}

// Render draws s into a new width×height image.
func (r *Renderer) Render(s sim.Snapshot, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	pr := r.projector(width, height)

	if r.Stars != nil {
		r.drawStars(img, pr)
		if r.StarBlur > 0 {
			img = blur.Gaussian(img, r.StarBlur)
		}
	}

	if !s.Bounds.Degenerate() {
		hw, hh := s.Bounds.HalfWidth, s.Bounds.HalfHeight
		corners := []mgl64.Vec3{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}}
		for i := range corners {
			x1, y1, ok1 := pr.project(corners[i])
			x2, y2, ok2 := pr.project(corners[(i+1)%len(corners)])
			if ok1 && ok2 {
				DrawLine(img, int(x1), int(y1), int(x2), int(y2), boundsColor)
			}
		}
	}

	r.drawBody(img, pr, s)

	if r.Caption {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(captionColor),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(8, 16),
		}
		d.DrawString(s.String())
	}
	return img
}

func (r *Renderer) drawStars(img *image.RGBA, pr projector) {
	for _, p := range r.Stars.Positions() {
		x, y, ok := pr.project(p)
		if !ok {
			continue
		}
		fog := starfield.FogFactor(float32(p.Sub(pr.eye).Len()), r.Fog)
		v := uint8(255 * 0.8 * fog)
		c := color.RGBA{v, v, v, 255}
		ix, iy := int(x), int(y)
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				if image.Pt(ix+dx, iy+dy).In(img.Rect) {
					img.SetRGBA(ix+dx, iy+dy, c)
				}
			}
		}
	}
}

func (r *Renderer) drawBody(img *image.RGBA, pr projector, s sim.Snapshot) {
	var emissive geometry.RGB
	if s.Highlighted {
		emissive = geometry.Highlight
	}
	mesh := r.Mesh.Transform(s.Rotation.X, s.Rotation.Y, s.Position)
	for _, t := range mesh.Triangles {
		// The body is convex: front faces never overlap, so culling replaces a depth buffer.
		if t.Normal().Dot(pr.eye.Sub(t.Centroid())) <= 0 {
			continue
		}
		ax, ay, okA := pr.project(t.A)
		bx, by, okB := pr.project(t.B)
		cx, cy, okC := pr.project(t.C)
		if !okA || !okB || !okC {
			continue
		}
		fog := float64(starfield.FogFactor(float32(t.Centroid().Sub(pr.eye).Len()), r.Fog))
		cr, cg, cb := geometry.Shade(t, r.Lights, emissive).Scale(fog).Bytes()
		FillTriangle(img, [2]float64{ax, ay}, [2]float64{bx, by}, [2]float64{cx, cy}, color.RGBA{cr, cg, cb, 255})
	}
}

// Save writes img as a PNG file.
func Save(path string, img image.Image) error {
	return imgio.Save(path, img, imgio.PNGEncoder())
}
