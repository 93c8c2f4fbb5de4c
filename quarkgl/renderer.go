package quarkgl

import "math"

// Stats describes the work done by the last Render call.
type Stats struct {
	Meshes    int
	Triangles int
	Drawn     int
}

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it; the depth buffer is kept between frames.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32
	disposed bool
	stats    Stats
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

// BufferBytes reports the memory held by internal buffers.
func (r *Renderer) BufferBytes() int { return cap(r.depthBuf) * 4 }

// Stats returns counters for the last frame.
func (r *Renderer) Stats() Stats { return r.stats }

// Dispose releases internal buffers. Later Render calls do nothing.
func (r *Renderer) Dispose() {
	if r == nil {
		return
	}
	r.depthBuf = nil
	r.disposed = true
	r.stats = Stats{}
}

func (r *Renderer) Disposed() bool { return r.disposed }

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = math.MaxFloat32
	}
}

// Render draws the scene as seen by cam into the target.
func (r *Renderer) Render(t Target, s *Scene, cam *PerspectiveCamera) {
	if r == nil || r.disposed || t == nil || s == nil || cam == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)
	r.stats = Stats{}

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	vp := cam.Projection().Mul4(cam.View())
	sh := shading{ambient: Clamp01(s.Ambient), eye: cam.Position}
	if l := s.Light(); l != nil {
		sh.light = l
		sh.dir = l.Direction()
	}

	var walk func(n *Node, parent Mat4)
	walk = func(n *Node, parent Mat4) {
		if !n.Visible {
			return
		}
		world := parent.Mul4(n.LocalMatrix())
		if n.Mesh != nil && n.Mesh.Geometry != nil {
			r.stats.Meshes++
			r.renderMesh(t, w, h, vp, world, n.Mesh, &sh)
		}
		for _, c := range n.children {
			walk(c, world)
		}
	}
	walk(s.Root, Mat4Identity())
}

type screenPoint struct {
	x, y int
	z    float32
}

func (r *Renderer) renderMesh(t Target, w, h int, vp, world Mat4, m *Mesh, sh *shading) {
	g := m.Geometry
	if len(g.Vertices) == 0 || len(g.Indices) < 3 {
		return
	}
	mvp := vp.Mul4(world)

	for i := 0; i+2 < len(g.Indices); i += 3 {
		r.stats.Triangles++
		i0, i1, i2 := int(g.Indices[i]), int(g.Indices[i+1]), int(g.Indices[i+2])
		if i0 >= len(g.Vertices) || i1 >= len(g.Vertices) || i2 >= len(g.Vertices) {
			continue
		}
		v0, v1, v2 := g.Vertices[i0].Pos, g.Vertices[i1].Pos, g.Vertices[i2].Pos

		c0 := mvp.Mul4x1(v0.Vec4(1))
		c1 := mvp.Mul4x1(v1.Vec4(1))
		c2 := mvp.Mul4x1(v2.Vec4(1))

		// Drop triangles touching the camera plane or in front of the near plane.
		if c0[3] <= 0 || c1[3] <= 0 || c2[3] <= 0 {
			continue
		}
		n0, n1, n2 := toNDC(c0), toNDC(c1), toNDC(c2)
		if n0[2] < -1 || n1[2] < -1 || n2[2] < -1 {
			continue
		}
		if outside(n0, n1, n2) {
			continue
		}

		p0 := ndcToScreen(n0, w, h)
		p1 := ndcToScreen(n1, w, h)
		p2 := ndcToScreen(n2, w, h)

		w0 := TransformPoint(world, v0)
		w1 := TransformPoint(world, v1)
		w2 := TransformPoint(world, v2)
		c := sh.shade(m.Material, w0, w1, w2)

		r.stats.Drawn++
		switch r.Mode {
		case RenderWireframe:
			r.drawLine(t, p0.x, p0.y, p1.x, p1.y, c)
			r.drawLine(t, p1.x, p1.y, p2.x, p2.y, c)
			r.drawLine(t, p2.x, p2.y, p0.x, p0.y, c)
		default:
			r.fillTriangleFlat(t, w, h, p0, p1, p2, c)
		}
	}
}

func toNDC(c Vec4) Vec3 {
	inv := 1 / c[3]
	return Vec3{c[0] * inv, c[1] * inv, c[2] * inv}
}

// outside reports whether all three points lie beyond one clip plane.
func outside(a, b, c Vec3) bool {
	for i := 0; i < 3; i++ {
		if a[i] > 1 && b[i] > 1 && c[i] > 1 {
			return true
		}
		if i < 2 && a[i] < -1 && b[i] < -1 && c[i] < -1 {
			return true
		}
	}
	return false
}

func ndcToScreen(p Vec3, w, h int) screenPoint {
	sx := (p[0]*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p[1]*0.5 + 0.5)) * float32(h-1)
	return screenPoint{x: int(sx + 0.5), y: int(sy + 0.5), z: p[2]}
}

type shading struct {
	ambient float32
	light   *DirectionalLight
	dir     Vec3
	eye     Vec3
}

// shade computes a flat color for a world-space triangle: ambient, Lambert
// diffuse and a Blinn-Phong highlight. Faces are lit from whichever side
// faces the viewer.
func (s *shading) shade(mat *StandardMaterial, a, b, c Vec3) Color {
	if mat == nil {
		return RGB(0xCC, 0xCC, 0xCC)
	}
	base := mat.Color
	if s.light == nil {
		return base.Scale(s.ambient)
	}

	n := Normalize(b.Sub(a).Cross(c.Sub(a)))
	view := Normalize(s.eye.Sub(a))
	if n.Dot(view) < 0 {
		n = n.Mul(-1)
	}

	metal := Clamp01(mat.Metalness)
	radiance := s.light.Intensity / math.Pi

	ndl := n.Dot(s.dir)
	if ndl < 0 {
		ndl = 0
	}
	diffuse := ndl * radiance * (1 - 0.5*metal)

	var spec float32
	if ndl > 0 {
		half := Normalize(s.dir.Add(view))
		nh := n.Dot(half)
		if nh > 0 {
			spec = float32(math.Pow(float64(nh), float64(mat.Shininess()))) * radiance * (0.04 + 0.96*metal)
		}
	}

	lit := base.Modulate(s.light.Color)
	out := base.Scale(s.ambient).Add(lit.Scale(diffuse))
	if spec > 0 {
		// Metals tint their highlight with the base color.
		hl := RGB(0xFF, 0xFF, 0xFF)
		if metal > 0.5 {
			hl = lit
		}
		out = out.Add(hl.Scale(spec))
	}
	return out
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx >= len(r.depthBuf) {
		return false
	}
	if z >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = z
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) fillTriangleFlat(t Target, w, h int, p0, p1, p2 screenPoint, c Color) {
	area := edgeFn(p0.x, p0.y, p1.x, p1.y, p2.x, p2.y)
	if area == 0 {
		return
	}
	// Both windings are filled.
	if area < 0 {
		p1, p2 = p2, p1
		area = -area
	}

	minX, maxX := min(p0.x, p1.x, p2.x), max(p0.x, p1.x, p2.x)
	minY, maxY := min(p0.y, p1.y, p2.y), max(p0.y, p1.y, p2.y)
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, w-1), min(maxY, h-1)
	if minX > maxX || minY > maxY {
		return
	}
	invArea := 1.0 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(p1.x, p1.y, p2.x, p2.y, x, y)
			w1 := edgeFn(p2.x, p2.y, p0.x, p0.y, x, y)
			w2 := edgeFn(p0.x, p0.y, p1.x, p1.y, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			z := (float32(w0)*p0.z + float32(w1)*p1.z + float32(w2)*p2.z) * invArea
			if !r.depthTest(w, x, y, z) {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
