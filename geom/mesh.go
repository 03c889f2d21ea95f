// Package geom measures triangle meshes with linal vectors: surface
// area, centroids, normals, and bounding boxes, with loaders for glTF
// and STL geometry.
package geom

import (
	"github.com/ansipixels/linal"
)

// Triangle is a triangle in 3-space.
type Triangle struct {
	A, B, C linal.Vec3
}

// Normal returns the unit normal of the triangle, directed by the
// winding order (counter-clockwise winding faces the normal).
func (t Triangle) Normal() linal.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

// Area returns the area of the triangle, half the parallelogram
// spanned by its edges.
func (t Triangle) Area() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Len() / 2
}

// Centroid returns the barycenter of the triangle.
func (t Triangle) Centroid() linal.Vec3 {
	return t.A.Add(t.B).Add(t.C).Div(3)
}

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []linal.Vec3
	Faces    [][3]int // indices into Vertices

	// Bounding box (calculated on load)
	BoundsMin linal.Vec3
	BoundsMax linal.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() linal.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() linal.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Triangle returns face i as a Triangle.
func (m *Mesh) Triangle(i int) Triangle {
	f := m.Faces[i]
	return Triangle{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

// FaceNormal returns the unit normal of face i.
func (m *Mesh) FaceNormal(i int) linal.Vec3 {
	return m.Triangle(i).Normal()
}

// SurfaceArea returns the total area of all faces.
func (m *Mesh) SurfaceArea() float64 {
	var area float64
	for i := range m.Faces {
		area += m.Triangle(i).Area()
	}
	return area
}

// Centroid returns the area-weighted centroid of the mesh surface.
// Degenerate faces contribute nothing; a mesh with zero total area
// falls back to the bounding-box center.
func (m *Mesh) Centroid() linal.Vec3 {
	var sum linal.Vec3
	var total float64
	for i := range m.Faces {
		tri := m.Triangle(i)
		a := tri.Area()
		sum = sum.Add(tri.Centroid().Scale(a))
		total += a
	}
	if total == 0 {
		return m.Center()
	}
	return sum.Div(total)
}
