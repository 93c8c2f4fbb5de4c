package robot

import (
	"math"

	"robotscene/quarkgl"
)

// Shape selects the primitive a part is built from.
type Shape uint8

const (
	ShapeCapsule Shape = iota + 1
	ShapeSphere
)

const (
	BodyColor = 0x43b988
	EyeColor  = 0x212121

	partRoughness = 0.5
	partMetalness = 1.0

	sphereWidthSegments  = 32
	sphereHeightSegments = 16
)

// Part is one row of the robot's geometry table.
type Part struct {
	Name  string
	Shape Shape

	Radius      float32
	Length      float32 // capsule only
	CapSegments int     // capsule only, 0 means default
	ThetaLength float64 // sphere only

	Position quarkgl.Vec3
	Rotation quarkgl.Euler
	Color    uint32
}

var earTilt = float32(math.Pi * 30 / 180)

// Parts lists the robot in assembly order.
var Parts = []Part{
	{Name: "leg.back", Shape: ShapeCapsule, Radius: 1, Length: 4, Position: quarkgl.V3(0, 0, -2), Color: BodyColor},
	{Name: "leg.front", Shape: ShapeCapsule, Radius: 1, Length: 4, Position: quarkgl.V3(0, 0, 2), Color: BodyColor},
	{Name: "body", Shape: ShapeCapsule, Radius: 4, Length: 4, CapSegments: 6, Position: quarkgl.V3(0, 4, 0), Color: BodyColor},
	{Name: "arm.front", Shape: ShapeCapsule, Radius: 1, Length: 4, Position: quarkgl.V3(0, 3, 5), Color: BodyColor},
	{Name: "arm.back", Shape: ShapeCapsule, Radius: 1, Length: 4, Position: quarkgl.V3(0, 3, -5), Color: BodyColor},
	{Name: "head", Shape: ShapeSphere, Radius: 4, ThetaLength: math.Pi / 2, Position: quarkgl.V3(0, 6.5, 0), Color: BodyColor},
	{Name: "ear.back", Shape: ShapeCapsule, Radius: 0.1, Length: 2, Position: quarkgl.V3(0, 11, -1), Rotation: quarkgl.Euler{X: -earTilt}, Color: BodyColor},
	{Name: "ear.front", Shape: ShapeCapsule, Radius: 0.1, Length: 2, Position: quarkgl.V3(0, 11, 1), Rotation: quarkgl.Euler{X: earTilt}, Color: BodyColor},
	{Name: "eye.back", Shape: ShapeSphere, Radius: 0.5, ThetaLength: 2 * math.Pi, Position: quarkgl.V3(3, 8, -2), Color: EyeColor},
	{Name: "eye.front", Shape: ShapeSphere, Radius: 0.5, ThetaLength: 2 * math.Pi, Position: quarkgl.V3(3, 8, 2), Color: EyeColor},
}

// BuildPart creates the mesh node for p. Every part gets its own material.
func BuildPart(b Builder, p Part) *quarkgl.Node {
	var g *quarkgl.Geometry
	switch p.Shape {
	case ShapeSphere:
		g = b.CreateSphereSector(p.Radius, sphereWidthSegments, sphereHeightSegments, p.ThetaLength)
	default:
		g = b.CreateCapsule(p.Radius, p.Length, p.CapSegments)
	}
	m := b.CreateMaterial(quarkgl.Hex(p.Color), partRoughness, partMetalness)

	n := quarkgl.NewMeshNode(p.Name, quarkgl.NewMesh(g, m))
	n.Position = p.Position
	n.Rotation = p.Rotation
	return n
}

// BuildRobot returns the robot root with one child per entry in Parts.
func BuildRobot(b Builder) *quarkgl.Node {
	root := quarkgl.NewNode("robot")
	for _, p := range Parts {
		root.Add(BuildPart(b, p))
	}
	return root
}
