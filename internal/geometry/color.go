package geometry

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// RGB is a linear colour with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Hex returns the colour of a 0xRRGGBB value.
func Hex(v uint32) RGB {
	return RGB{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}

// Add returns c + o per channel.
func (c RGB) Add(o RGB) RGB {
	return RGB{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Scale returns c * k per channel.
func (c RGB) Scale(k float64) RGB {
	return RGB{c.R * k, c.G * k, c.B * k}
}

// Mul returns the per-channel product.
func (c RGB) Mul(o RGB) RGB {
	return RGB{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Clamp limits every channel to [0, 1].
func (c RGB) Clamp() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Bytes returns the 8-bit channels of the clamped colour.
func (c RGB) Bytes() (r, g, b uint8) {
	c = c.Clamp()
	return uint8(math.Round(c.R * 255)), uint8(math.Round(c.G * 255)), uint8(math.Round(c.B * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// HSL converts hue, saturation and lightness, all in [0, 1], to RGB.
func HSL(h, s, l float64) RGB {
	h = h - math.Floor(h)
	if s == 0 {
		return RGB{l, l, l}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: hue(p, q, h+1.0/3),
		G: hue(p, q, h),
		B: hue(p, q, h-1.0/3),
	}
}

func hue(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*6*(2.0/3-t)
	}
	return p
}

// AssignFaceColors gives every triangle its own fully saturated random hue.
func AssignFaceColors(m *Mesh, rng *rand.Rand) {
	for i := range m.Triangles {
		m.Triangles[i].Color = HSL(rng.Float64(), 1.0, 0.5)
	}
}

// Lights is the scene lighting: a uniform ambient term and one directional light.
// Intensities are irradiance; the Lambert term divides by π.
type Lights struct {
	Ambient          RGB
	AmbientIntensity float64
	Direction        mgl64.Vec3 // towards the light
	Color            RGB
	Intensity        float64
}

// DefaultLights mirrors the original scene: dim grey ambient ×2, white key light ×3 from (5, 10, 7).
func DefaultLights() Lights {
	return Lights{
		Ambient:          Hex(0x404040),
		AmbientIntensity: 2,
		Direction:        mgl64.Vec3{5, 10, 7}.Normalize(),
		Color:            Hex(0xffffff),
		Intensity:        3,
	}
}

// Highlight is the emissive colour of a dragged body.
var Highlight = Hex(0x333333)

// Shade returns the flat-shaded colour of t lit by l, plus emissive.
func Shade(t Triangle, l Lights, emissive RGB) RGB {
	ndotl := math.Max(0, t.Normal().Dot(l.Direction))
	irradiance := l.Ambient.Scale(l.AmbientIntensity).Add(l.Color.Scale(l.Intensity * ndotl))
	return t.Color.Mul(irradiance.Scale(1 / math.Pi)).Add(emissive).Clamp()
}
