package robot

import (
	"math"
	"math/rand/v2"

	"robotscene/quarkgl"
)

const (
	// StarCount is the default size of the star field.
	StarCount = 1000

	starSpread      = 15
	starRadius      = 0.2
	starSegments    = 3
	starRoughness   = 0.1
	starMetalness   = 5
	starSeedStretch = 0x9e3779b97f4a7c15
)

// Random is the uniform [0,1) source used to scatter stars.
type Random interface {
	Float64() float64
}

// NewRandom returns a PCG source. A nil seed draws one from the runtime.
func NewRandom(seed *uint64) Random {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, *seed^starSeedStretch))
}

// StarCoord draws one coordinate as floor(U*15) + floor(U*-15). The result is
// an integer in [-15, 14] and is not uniform.
func StarCoord(r Random) float32 {
	a := math.Floor(r.Float64() * starSpread)
	b := math.Floor(r.Float64() * -starSpread)
	return float32(a + b)
}

// BuildStars clones one low-poly sphere n times under a shared root and
// scatters the clones with StarCoord, drawing x, y then z.
func BuildStars(b Builder, rnd Random, n int) *quarkgl.Node {
	root := quarkgl.NewNode("stars")
	if n <= 0 {
		return root
	}

	tmpl := quarkgl.NewMeshNode("star", quarkgl.NewMesh(
		b.CreateSphereSector(starRadius, starSegments, starSegments, math.Pi),
		b.CreateMaterial(quarkgl.Hex(BodyColor), starRoughness, starMetalness),
	))
	for i := 0; i < n; i++ {
		s := tmpl.Clone()
		x := StarCoord(rnd)
		y := StarCoord(rnd)
		z := StarCoord(rnd)
		s.Position = quarkgl.V3(x, y, z)
		root.Add(s)
	}
	return root
}
