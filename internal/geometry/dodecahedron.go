// Package geometry builds the flat-shaded, per-triangle coloured dodecahedron drawn by the scene.
package geometry

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Polyhedron is an indexed polyhedron with convex planar faces wound counter-clockwise
// seen from outside.
type Polyhedron struct {
	Vertices []mgl64.Vec3
	Faces    [][]int
}

// phi is the golden ratio.
var phi = (1 + math.Sqrt(5)) / 2

// Dodecahedron returns a regular dodecahedron centred on the origin with all vertices at
// distance radius.
func Dodecahedron(radius float64) Polyhedron {
	r := 1 / phi
	verts := []mgl64.Vec3{
		{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
		{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
		{0, -r, -phi}, {0, -r, phi}, {0, r, -phi}, {0, r, phi},
		{-r, -phi, 0}, {-r, phi, 0}, {r, -phi, 0}, {r, phi, 0},
		{-phi, 0, -r}, {phi, 0, -r}, {-phi, 0, r}, {phi, 0, r},
	}
	scale := radius / math.Sqrt(3)
	for i := range verts {
		verts[i] = verts[i].Mul(scale)
	}

	// Face centres of a dodecahedron point at the vertices of its dual icosahedron.
	var normals []mgl64.Vec3
	for _, a := range []float64{-1, 1} {
		for _, b := range []float64{-phi, phi} {
			normals = append(normals,
				mgl64.Vec3{0, b, a},
				mgl64.Vec3{b, a, 0},
				mgl64.Vec3{a, 0, b},
			)
		}
	}

	p := Polyhedron{Vertices: verts}
	for _, n := range normals {
		p.Faces = append(p.Faces, faceAround(verts, n.Normalize()))
	}
	return p
}

// faceAround returns the five vertices closest to direction n, sorted counter-clockwise about n.
func faceAround(verts []mgl64.Vec3, n mgl64.Vec3) []int {
	idx := make([]int, len(verts))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return verts[idx[i]].Dot(n) > verts[idx[j]].Dot(n)
	})
	face := idx[:5]

	u := verts[face[0]].Sub(n.Mul(verts[face[0]].Dot(n))).Normalize()
	w := n.Cross(u)
	angle := func(i int) float64 {
		v := verts[i]
		return math.Atan2(v.Dot(w), v.Dot(u))
	}
	sort.Slice(face, func(i, j int) bool { return angle(face[i]) < angle(face[j]) })
	return face
}

// Edges returns every undirected edge once, as vertex index pairs with the smaller index first.
func (p Polyhedron) Edges() [][2]int {
	seen := make(map[[2]int]bool)
	var out [][2]int
	for _, f := range p.Faces {
		for i := range f {
			a, b := f[i], f[(i+1)%len(f)]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

// Triangle is one flat-shaded triangle of a non-indexed mesh.
type Triangle struct {
	A, B, C mgl64.Vec3
	Color   RGB
}

// Normal returns the unit outward normal for counter-clockwise winding.
func (t Triangle) Normal() mgl64.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

// Centroid returns the mean of the three corners.
func (t Triangle) Centroid() mgl64.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3)
}

// Mesh is a non-indexed triangle list; every triangle carries its own colour.
type Mesh struct {
	Triangles []Triangle
}

// Triangulate fans every face from its first vertex. Triangles start white.
func (p Polyhedron) Triangulate() Mesh {
	var m Mesh
	for _, f := range p.Faces {
		for i := 1; i+1 < len(f); i++ {
			m.Triangles = append(m.Triangles, Triangle{
				A:     p.Vertices[f[0]],
				B:     p.Vertices[f[i]],
				C:     p.Vertices[f[i+1]],
				Color: RGB{1, 1, 1},
			})
		}
	}
	return m
}

// Transform returns a copy of m rotated by rx about X and ry about Y (Y applied first, as an
// XYZ Euler rotation) then translated by pos.
func (m Mesh) Transform(rx, ry float64, pos mgl64.Vec3) Mesh {
	rot := mgl64.Rotate3DX(rx).Mul3(mgl64.Rotate3DY(ry))
	out := Mesh{Triangles: make([]Triangle, len(m.Triangles))}
	for i, t := range m.Triangles {
		out.Triangles[i] = Triangle{
			A:     rot.Mul3x1(t.A).Add(pos),
			B:     rot.Mul3x1(t.B).Add(pos),
			C:     rot.Mul3x1(t.C).Add(pos),
			Color: t.Color,
		}
	}
	return out
}

// BodyMesh returns the triangulated dodecahedron with random per-triangle colours.
func BodyMesh(radius float64, rng *rand.Rand) Mesh {
	m := Dodecahedron(radius).Triangulate()
	AssignFaceColors(&m, rng)
	return m
}
