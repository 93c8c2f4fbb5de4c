package quarkgl

import "math"

const polarEpsilon = 1e-4

// OrbitControls keeps a camera on a sphere around Target. Rotation is
// expressed as an azimuth (theta, around +Y) and a polar angle (phi, from +Y).
//
// It does not depend on any input system; callers feed it deltas.
type OrbitControls struct {
	Target Vec3

	MinDistance float32
	MaxDistance float32
	RotateSpeed float32
	ZoomSpeed   float32
	Enabled     bool

	cam    *PerspectiveCamera
	theta  float64
	phi    float64
	radius float64
}

// NewOrbitControls derives the orbit from the camera's current position and
// look-at target.
func NewOrbitControls(cam *PerspectiveCamera) *OrbitControls {
	c := &OrbitControls{
		RotateSpeed: 1,
		ZoomSpeed:   1,
		MaxDistance: float32(math.Inf(1)),
		Enabled:     true,
		cam:         cam,
	}
	if cam == nil {
		return c
	}
	c.Target = cam.Target()
	off := cam.Position.Sub(c.Target)
	c.radius = float64(off.Len())
	if c.radius > 0 {
		c.theta = math.Atan2(float64(off[0]), float64(off[2]))
		c.phi = math.Acos(clampF64(float64(off[1])/c.radius, -1, 1))
	}
	return c
}

// Spherical returns the current (radius, theta, phi).
func (c *OrbitControls) Spherical() (radius, theta, phi float64) {
	return c.radius, c.theta, c.phi
}

// Rotate moves the camera around the target by the given angles in radians.
func (c *OrbitControls) Rotate(dTheta, dPhi float64) {
	if !c.Enabled {
		return
	}
	c.theta += dTheta * float64(c.RotateSpeed)
	c.phi += dPhi * float64(c.RotateSpeed)
}

// Dolly scales the distance to the target; scale < 1 moves closer.
func (c *OrbitControls) Dolly(scale float64) {
	if !c.Enabled || scale <= 0 {
		return
	}
	c.radius *= scale
}

// HandlePointer maps a pointer drag in pixels to a rotation: dragging across
// the full viewport height turns the camera by a full circle.
func (c *OrbitControls) HandlePointer(dx, dy float64, viewportH int) {
	if viewportH <= 0 {
		return
	}
	h := float64(viewportH)
	c.Rotate(-2*math.Pi*dx/h, -2*math.Pi*dy/h)
}

// HandleWheel dollies on a wheel notch; positive dy zooms in.
func (c *OrbitControls) HandleWheel(dy float64) {
	if dy == 0 {
		return
	}
	scale := math.Pow(0.95, float64(c.ZoomSpeed))
	if dy < 0 {
		scale = 1 / scale
	}
	c.Dolly(scale)
}

// Update clamps the orbit and writes the camera position and target.
func (c *OrbitControls) Update() {
	c.phi = clampF64(c.phi, polarEpsilon, math.Pi-polarEpsilon)
	if c.MinDistance > 0 && c.radius < float64(c.MinDistance) {
		c.radius = float64(c.MinDistance)
	}
	if c.radius > float64(c.MaxDistance) {
		c.radius = float64(c.MaxDistance)
	}
	if c.cam == nil {
		return
	}
	sp := math.Sin(c.phi)
	off := V3(
		float32(c.radius*sp*math.Sin(c.theta)),
		float32(c.radius*math.Cos(c.phi)),
		float32(c.radius*sp*math.Cos(c.theta)),
	)
	c.cam.Position = c.Target.Add(off)
	c.cam.LookAt(c.Target)
	if c.cam.Up == (Vec3{}) {
		c.cam.Up = V3(0, 1, 0)
	}
}

func clampF64(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
