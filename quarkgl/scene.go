package quarkgl

import "github.com/go-gl/mathgl/mgl32"

// DirectionalLight shines from Position towards Target with parallel rays.
type DirectionalLight struct {
	Color     Color
	Intensity float32
	Position  Vec3
	Target    Vec3
}

// NewDirectionalLight returns a light aimed at the origin.
func NewDirectionalLight(c Color, intensity float32) *DirectionalLight {
	return &DirectionalLight{Color: c, Intensity: intensity, Position: V3(0, 1, 0)}
}

// Direction returns the unit vector pointing from the surface towards the light.
func (l *DirectionalLight) Direction() Vec3 {
	return Normalize(l.Position.Sub(l.Target))
}

// Scene is a scene graph root with a single light.
type Scene struct {
	Root    *Node
	Ambient float32

	light *DirectionalLight
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{Root: NewNode("scene"), Ambient: 0.12}
}

func (s *Scene) Add(n *Node) { s.Root.Add(n) }

// SetLight installs l, replacing any previous light.
func (s *Scene) SetLight(l *DirectionalLight) { s.light = l }

func (s *Scene) Light() *DirectionalLight { return s.light }

// CameraType selects camera projection.
type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrtho
)

// PerspectiveCamera describes the viewing transform. FOV is the vertical field
// of view in degrees.
type PerspectiveCamera struct {
	Type CameraType

	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	// Orthographic half-height.
	OrthoSize float32

	Position Vec3
	Up       Vec3

	target Vec3
}

// NewPerspectiveCamera returns a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		Type:      CameraPerspective,
		FOV:       fov,
		Aspect:    aspect,
		Near:      near,
		Far:       far,
		OrthoSize: 1,
		Up:        V3(0, 1, 0),
		target:    V3(0, 0, -1),
	}
}

// LookAt points the camera at p.
func (c *PerspectiveCamera) LookAt(p Vec3) { c.target = p }

func (c *PerspectiveCamera) Target() Vec3 { return c.target }

// View returns the camera view matrix.
func (c *PerspectiveCamera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return mgl32.LookAtV(c.Position, c.target, up)
}

// Projection returns the projection matrix for the camera aspect.
func (c *PerspectiveCamera) Projection() Mat4 {
	aspect := c.Aspect
	if aspect == 0 {
		aspect = 1
	}
	switch c.Type {
	case CameraOrtho:
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		return mgl32.Ortho(-size*aspect, size*aspect, -size, size, c.Near, c.Far)
	default:
		fov := c.FOV
		if fov == 0 {
			fov = 50
		}
		return mgl32.Perspective(Deg(fov), aspect, c.Near, c.Far)
	}
}
