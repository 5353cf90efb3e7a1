package headless

import (
	"image"
	"image/color"
	"math"
)

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) with a DDA walk, clipping per pixel.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		if image.Pt(x1, y1).In(img.Rect) {
			img.SetRGBA(x1, y1, col)
		}
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		ix := int(math.Round(x))
		iy := int(math.Round(y))
		if image.Pt(ix, iy).In(img.Rect) {
			img.SetRGBA(ix, iy, col)
		}
		x += xInc
		y += yInc
	}
}

// FillTriangle fills the triangle abc (pixel coordinates) by testing pixel centres against
// its edge functions. Either winding is accepted.
func FillTriangle(img *image.RGBA, a, b, c [2]float64, col color.RGBA) {
	area := edge(a, b, c)
	if area == 0 {
		return
	}
	r := image.Rect(
		int(math.Floor(min(a[0], b[0], c[0]))),
		int(math.Floor(min(a[1], b[1], c[1]))),
		int(math.Ceil(max(a[0], b[0], c[0])))+1,
		int(math.Ceil(max(a[1], b[1], c[1])))+1,
	).Intersect(img.Rect)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := [2]float64{float64(x) + 0.5, float64(y) + 0.5}
			w0, w1, w2 := edge(b, c, p), edge(c, a, p), edge(a, b, p)
			if area > 0 && w0 >= 0 && w1 >= 0 && w2 >= 0 || area < 0 && w0 <= 0 && w1 <= 0 && w2 <= 0 {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

func edge(a, b, p [2]float64) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}
