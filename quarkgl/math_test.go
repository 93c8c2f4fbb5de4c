package quarkgl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Compose(V3(1, 2, 3), Euler{}, V3(1, 1, 1))
	if got := a.Mul4(b); got != b {
		t.Fatalf("identity*a mismatch")
	}
	if got := b.Mul4(a); got != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestEulerRotateX(t *testing.T) {
	m := Euler{X: math.Pi / 2}.Matrix()
	p := TransformPoint(m, V3(0, 1, 0))
	assert.InDelta(t, 0, p[0], 1e-6)
	assert.InDelta(t, 0, p[1], 1e-6)
	assert.InDelta(t, 1, p[2], 1e-6)
}

func TestEulerOrderXYZ(t *testing.T) {
	e := Euler{X: 0.3, Y: -0.7, Z: 1.1}
	want := Euler{X: 0.3}.Matrix().Mul4(Euler{Y: -0.7}.Matrix()).Mul4(Euler{Z: 1.1}.Matrix())
	got := e.Matrix()
	for i := range got {
		assert.InDelta(t, want[i], got[i], 1e-6, "element %d", i)
	}
}

func TestComposeTranslatesAfterRotating(t *testing.T) {
	m := Compose(V3(0, 4, 0), Euler{Y: math.Pi}, V3(1, 1, 1))
	p := TransformPoint(m, V3(1, 0, 0))
	require.InDelta(t, -1, p[0], 1e-5)
	require.InDelta(t, 4, p[1], 1e-5)
	require.InDelta(t, 0, p[2], 1e-5)
}

func TestNormalizeZero(t *testing.T) {
	assert.Equal(t, Vec3{}, Normalize(Vec3{}))
	assert.InDelta(t, 1, Normalize(V3(3, 4, 0)).Len(), 1e-6)
}

func TestHexColor(t *testing.T) {
	c := Hex(0x43b988)
	assert.Equal(t, RGB(0x43, 0xb9, 0x88), c)
	assert.Equal(t, uint32(0x43b988), c.Hex())
	assert.Equal(t, RGB(0xFF, 0xFF, 0xFF), RGB(0x80, 0x80, 0x80).Scale(4))
}
