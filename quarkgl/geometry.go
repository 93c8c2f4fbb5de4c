package quarkgl

import "math"

// Vertex is a mesh vertex in object space.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
}

// Geometry is an indexed triangle list.
//
// Geometry is treated as read-only once built; meshes and their clones share it.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of indexed triangles.
func (g *Geometry) TriangleCount() int {
	if g == nil {
		return 0
	}
	return len(g.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (g *Geometry) Bounds() (lo, hi Vec3) {
	if g == nil || len(g.Vertices) == 0 {
		return Vec3{}, Vec3{}
	}
	lo = g.Vertices[0].Pos
	hi = lo
	for _, v := range g.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Pos[i] < lo[i] {
				lo[i] = v.Pos[i]
			}
			if v.Pos[i] > hi[i] {
				hi[i] = v.Pos[i]
			}
		}
	}
	return lo, hi
}

// CapsuleGeometry builds a capsule around the Y axis: a cylinder of the given
// length capped by two hemispheres, so the total height is length+2*radius.
// capSegments < 1 defaults to 4, radialSegments < 3 defaults to 8.
func CapsuleGeometry(radius, length float32, capSegments, radialSegments int) *Geometry {
	if capSegments < 1 {
		capSegments = 4
	}
	if radialSegments < 3 {
		radialSegments = 8
	}

	// Profile runs from the bottom pole to the top pole.
	type profilePoint struct {
		r, y  float32
		angle float64
	}
	profile := make([]profilePoint, 0, 2*(capSegments+1))
	half := length / 2
	for i := 0; i <= capSegments; i++ {
		a := -math.Pi/2 + (math.Pi/2)*float64(i)/float64(capSegments)
		profile = append(profile, profilePoint{r: radius * cos32(a), y: -half + radius*sin32(a), angle: a})
	}
	for i := 0; i <= capSegments; i++ {
		a := (math.Pi / 2) * float64(i) / float64(capSegments)
		profile = append(profile, profilePoint{r: radius * cos32(a), y: half + radius*sin32(a), angle: a})
	}

	cols := radialSegments + 1
	rows := len(profile)
	g := &Geometry{
		Vertices: make([]Vertex, 0, cols*rows),
		Indices:  make([]uint32, 0, radialSegments*(rows-1)*6),
	}
	for i := 0; i < cols; i++ {
		phi := 2 * math.Pi * float64(i) / float64(radialSegments)
		sp, cp := sin32(phi), cos32(phi)
		for _, p := range profile {
			ca, sa := cos32(p.angle), sin32(p.angle)
			g.Vertices = append(g.Vertices, Vertex{
				Pos:    V3(p.r*sp, p.y, p.r*cp),
				Normal: V3(sp*ca, sa, cp*ca),
			})
		}
	}
	for i := 0; i < radialSegments; i++ {
		for j := 0; j < rows-1; j++ {
			a := uint32(i*rows + j)
			b := a + uint32(rows)
			c := b + 1
			d := a + 1
			g.Indices = append(g.Indices, a, b, d, c, d, b)
		}
	}
	return g
}

// SphereGeometry builds a sphere sector. Phi sweeps around the Y axis, theta
// runs from the top pole (0) downwards. A thetaLength of π/2 yields the upper
// hemisphere. Vertices follow thetaLength as given; pole triangles are pruned
// against min(thetaStart+thetaLength, π).
func SphereGeometry(radius float32, widthSegments, heightSegments int, phiStart, phiLength, thetaStart, thetaLength float64) *Geometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	thetaEnd := math.Min(thetaStart+thetaLength, math.Pi)

	g := &Geometry{
		Vertices: make([]Vertex, 0, (widthSegments+1)*(heightSegments+1)),
		Indices:  make([]uint32, 0, widthSegments*heightSegments*6),
	}
	grid := make([][]uint32, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		theta := thetaStart + v*thetaLength
		row := make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			phi := phiStart + u*phiLength
			n := V3(-cos32(phi)*sin32(theta), cos32(theta), sin32(phi)*sin32(theta))
			row[ix] = uint32(len(g.Vertices))
			g.Vertices = append(g.Vertices, Vertex{Pos: n.Mul(radius), Normal: Normalize(n)})
		}
		grid[iy] = row
	}
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 || thetaStart > 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 || thetaEnd < math.Pi {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	return g
}
