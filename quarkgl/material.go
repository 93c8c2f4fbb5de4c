package quarkgl

// StandardMaterial is a metallic-roughness surface description.
//
// Values outside [0,1] are accepted and clamped at shading time.
type StandardMaterial struct {
	Color     Color
	Roughness float32
	Metalness float32
}

// NewStandardMaterial returns an opaque material.
func NewStandardMaterial(c Color, roughness, metalness float32) *StandardMaterial {
	if c.A == 0 {
		c.A = 0xFF
	}
	return &StandardMaterial{Color: c, Roughness: roughness, Metalness: metalness}
}

// Shininess maps roughness to a Blinn-Phong exponent.
func (m *StandardMaterial) Shininess() float32 {
	r := Clamp01(m.Roughness)
	if r < 0.05 {
		r = 0.05
	}
	r4 := r * r * r * r
	return 2/r4 - 2
}

// Mesh pairs a geometry with a material.
type Mesh struct {
	Geometry *Geometry
	Material *StandardMaterial
}

// NewMesh returns a mesh; a nil material falls back to a neutral grey.
func NewMesh(g *Geometry, m *StandardMaterial) *Mesh {
	if m == nil {
		m = NewStandardMaterial(RGB(0xCC, 0xCC, 0xCC), 1, 0)
	}
	return &Mesh{Geometry: g, Material: m}
}
