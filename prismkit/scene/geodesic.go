package scene

import (
	"math"

	"prism/prismkit/canvas"
	"prism/prismkit/fault"
	"prism/prismkit/geom"
	"prism/prismkit/shape"
	"prism/prismkit/view"
)

const (
	DefaultPasses = 2
	GeodesicScale = 5.0

	// icosaEdge is the edge length of the golden-ratio icosahedron.
	icosaEdge = 2.0
)

// subdividedOpacity is applied to the faces produced by subdivision.
const subdividedOpacity = 0.8

// Mesh is an indexed triangle mesh on a sphere centred at the origin.
type Mesh struct {
	Vertices []geom.Vec3
	Faces    [][3]int
	Radius   float64
}

// edgeKey identifies an undirected edge; A < B.
type edgeKey struct{ A, B int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// PassStats counts midpoint cache activity for one subdivision pass.
type PassStats struct {
	Faces     int // faces after the pass
	Midpoints int // vertices created
	CacheHits int // edges that reused an existing midpoint
}

// Icosahedron builds the 12-vertex, 20-face regular icosahedron from the
// cyclic permutations of (±1, ±G, 0). Faces are found as the vertex triples
// whose pairwise distances all equal the edge length, and wound outward.
func Icosahedron() *Mesh {
	g := (1 + math.Sqrt(5)) / 2
	m := &Mesh{Vertices: []geom.Vec3{
		geom.V3(1, g, 0), geom.V3(1, -g, 0), geom.V3(-1, g, 0), geom.V3(-1, -g, 0),
		geom.V3(0, 1, g), geom.V3(0, 1, -g), geom.V3(0, -1, g), geom.V3(0, -1, -g),
		geom.V3(g, 0, 1), geom.V3(-g, 0, 1), geom.V3(g, 0, -1), geom.V3(-g, 0, -1),
	}}
	m.Radius = m.Vertices[0].Len()
	for _, p := range m.Vertices {
		fault.Assert(math.Abs(m.Radius-p.Len()) < 1e-3, "icosahedron vertex %v off sphere %v", p, m.Radius)
	}

	isEdge := func(a, b int) bool {
		return math.Abs(m.Vertices[a].Dist(m.Vertices[b])-icosaEdge) < 1e-2
	}
	n := len(m.Vertices)
	for i1 := 0; i1 < n-2; i1++ {
		for i2 := i1 + 1; i2 < n-1; i2++ {
			if !isEdge(i1, i2) {
				continue
			}
			for i3 := i2 + 1; i3 < n; i3++ {
				if isEdge(i2, i3) && isEdge(i1, i3) {
					m.Faces = append(m.Faces, m.outward(i1, i2, i3))
				}
			}
		}
	}
	fault.Assert(len(m.Faces) == 20, "icosahedron has %d faces", len(m.Faces))
	return m
}

// outward orders a face so its winding normal points away from the origin,
// keeping a first. It matches shape.SortPoints on indices.
func (m *Mesh) outward(a, b, c int) [3]int {
	pa, pb, pc := m.Vertices[a], m.Vertices[b], m.Vertices[c]
	if pa.Dot(pb.Sub(pa).Cross(pc.Sub(pa))) > 0 {
		return [3]int{a, b, c}
	}
	return [3]int{a, c, b}
}

// Subdivide splits every face into four through its edge midpoints, pushed out
// to the sphere. A midpoint is created once per edge and shared by both faces.
func (m *Mesh) Subdivide() PassStats {
	var st PassStats
	cache := make(map[edgeKey]int, len(m.Faces)*3/2)
	mid := func(a, b int) int {
		k := newEdgeKey(a, b)
		if i, ok := cache[k]; ok {
			st.CacheHits++
			return i
		}
		p := m.Vertices[a].MidPoint(m.Vertices[b])
		p = p.Mul(m.Radius / p.Len())
		m.Vertices = append(m.Vertices, p)
		i := len(m.Vertices) - 1
		cache[k] = i
		st.Midpoints++
		return i
	}

	faces := make([][3]int, 0, 4*len(m.Faces))
	for _, f := range m.Faces {
		p1, p2, p3 := f[0], f[1], f[2]
		m1, m2, m3 := mid(p1, p2), mid(p2, p3), mid(p3, p1)
		faces = append(faces,
			m.outward(m1, p2, m2),
			m.outward(m2, p3, m3),
			m.outward(m3, p1, m1),
			m.outward(m1, m2, m3),
		)
	}
	m.Faces = faces
	st.Faces = len(faces)
	return st
}

// Scale multiplies every vertex and the radius by s.
func (m *Mesh) Scale(s float64) {
	for i, p := range m.Vertices {
		m.Vertices[i] = p.Mul(s)
	}
	m.Radius *= s
}

// Triangle returns the corners of face i.
func (m *Mesh) Triangle(i int) (a, b, c geom.Vec3) {
	f := m.Faces[i]
	return m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
}

// SubdivisionStats runs passes subdivisions of a fresh icosahedron and reports
// each pass.
func SubdivisionStats(passes int) []PassStats {
	m := Icosahedron()
	out := make([]PassStats, passes)
	for i := range out {
		out[i] = m.Subdivide()
	}
	return out
}

// GeodesicSphere is a subdivided icosahedron. With zero passes the faces are
// white material shaded by the view light; otherwise each face takes the
// translucent position color of its first corner.
type GeodesicSphere struct {
	*Static
	Mesh  *Mesh
	Stats []PassStats
}

func NewGeodesic(v *view.View, passes int, scale float64) *GeodesicSphere {
	m := Icosahedron()
	g := &GeodesicSphere{Mesh: m}
	for i := 0; i < passes; i++ {
		g.Stats = append(g.Stats, m.Subdivide())
	}
	m.Scale(scale)

	shapes := make([]shape.Shape, len(m.Faces))
	for i := range m.Faces {
		a, b, c := m.Triangle(i)
		tri := shape.NewPolygon([]geom.Vec3{a, b, c}, canvas.Black)
		if passes == 0 {
			tri.Material = [3]float64{1, 1, 1}
			tri.SetColor(v.LightDir)
		} else {
			tri.Color = cornerColor(m.Radius, a).WithOpacity(subdividedOpacity)
		}
		shapes[i] = tri
	}
	g.Static = NewStatic(shapes...)
	return g
}

// cornerColor is PositionColor with rounding instead of truncation.
func cornerColor(r float64, p geom.Vec3) canvas.Color {
	var ch [3]uint8
	for i, x := range p.Array() {
		ch[i] = uint8(math.Round(math.Max(0, math.Min(255, 255*(x+r)/(2*r)))))
	}
	return canvas.RGB(ch[0], ch[1], ch[2])
}
