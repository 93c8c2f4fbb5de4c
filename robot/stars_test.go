package robot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRandom struct {
	vals []float64
	i    int
}

func (r *fixedRandom) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func TestStarCoordExtremes(t *testing.T) {
	cases := []struct {
		a, b float64
		want float32
	}{
		{0, 0, 0},
		{0.999999, 0, 14},
		{0, 0.999999, -15},
		{0.999999, 0.999999, -1},
		{0.5, 0.5, -1},
		{0.2, 0.01, 2},
	}
	for _, c := range cases {
		r := &fixedRandom{vals: []float64{c.a, c.b}}
		assert.Equal(t, c.want, StarCoord(r), "U=(%v,%v)", c.a, c.b)
		assert.Equal(t, 2, r.i)
	}
}

func TestBuildStarsRange(t *testing.T) {
	stars := BuildStars(NewBuilder(), NewRandom(nil), StarCount)
	kids := stars.Children()
	require.Len(t, kids, StarCount)

	for _, s := range kids {
		for axis, v := range s.Position {
			require.GreaterOrEqual(t, v, float32(-15), "axis %d", axis)
			require.LessOrEqual(t, v, float32(14), "axis %d", axis)
			require.Equal(t, float64(v), math.Trunc(float64(v)), "axis %d not integral", axis)
		}
	}
}

func TestBuildStarsSeeded(t *testing.T) {
	seed := uint64(42)
	a := BuildStars(NewBuilder(), NewRandom(&seed), 100).Children()
	b := BuildStars(NewBuilder(), NewRandom(&seed), 100).Children()
	for i := range a {
		assert.Equal(t, a[i].Position, b[i].Position)
	}

	other := uint64(43)
	c := BuildStars(NewBuilder(), NewRandom(&other), 100).Children()
	differs := false
	for i := range a {
		if a[i].Position != c[i].Position {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}

func TestBuildStarsDrawOrder(t *testing.T) {
	// x from (0.999, 0), y from (0, 0.999), z from (0, 0).
	r := &fixedRandom{vals: []float64{0.999, 0, 0, 0.999, 0, 0}}
	stars := BuildStars(NewBuilder(), r, 1).Children()
	require.Len(t, stars, 1)
	assert.Equal(t, [3]float32{14, -15, 0}, [3]float32(stars[0].Position))
}

func TestBuildStarsSharesTemplate(t *testing.T) {
	b := newRecordingBuilder()
	kids := BuildStars(b, NewRandom(nil), 5).Children()

	assert.Len(t, b.spheres, 1)
	assert.Len(t, b.materials, 1)
	for _, k := range kids[1:] {
		assert.Same(t, kids[0].Mesh, k.Mesh)
	}
	assert.Equal(t, 12, kids[0].Mesh.Geometry.TriangleCount())
	assert.Equal(t, float32(0.1), kids[0].Mesh.Material.Roughness)
	assert.Equal(t, float32(5), kids[0].Mesh.Material.Metalness)

	kids[0].Position[0] = 99
	assert.NotEqual(t, float32(99), kids[1].Position[0])
}

func TestBuildStarsEmpty(t *testing.T) {
	assert.Equal(t, 0, BuildStars(NewBuilder(), NewRandom(nil), 0).NumChildren())
	assert.Equal(t, 0, BuildStars(NewBuilder(), NewRandom(nil), -3).NumChildren())
}
