package robot

import (
	"math"

	"robotscene/quarkgl"
)

// Builder creates the geometry and materials the scene is assembled from.
type Builder interface {
	CreateCapsule(radius, length float32, capSegments int) *quarkgl.Geometry
	CreateSphereSector(radius float32, widthSegments, heightSegments int, thetaLength float64) *quarkgl.Geometry
	CreateMaterial(c quarkgl.Color, roughness, metalness float32) *quarkgl.StandardMaterial
}

// capsuleRadialSegments matches the default lathe resolution of a capsule.
const capsuleRadialSegments = 8

type meshBuilder struct{}

// NewBuilder returns a Builder backed by quarkgl primitives.
func NewBuilder() Builder { return meshBuilder{} }

func (meshBuilder) CreateCapsule(radius, length float32, capSegments int) *quarkgl.Geometry {
	return quarkgl.CapsuleGeometry(radius, length, capSegments, capsuleRadialSegments)
}

// CreateSphereSector sweeps the full circle around Y and thetaLength down from
// the top pole.
func (meshBuilder) CreateSphereSector(radius float32, widthSegments, heightSegments int, thetaLength float64) *quarkgl.Geometry {
	return quarkgl.SphereGeometry(radius, widthSegments, heightSegments, 0, 2*math.Pi, 0, thetaLength)
}

func (meshBuilder) CreateMaterial(c quarkgl.Color, roughness, metalness float32) *quarkgl.StandardMaterial {
	return quarkgl.NewStandardMaterial(c, roughness, metalness)
}
