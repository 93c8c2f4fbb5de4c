package quarkgl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeAddReparents(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")

	a.Add(c)
	require.Equal(t, a, c.Parent())

	b.Add(c)
	assert.Equal(t, b, c.Parent())
	assert.Equal(t, 0, a.NumChildren())
	assert.Equal(t, 1, b.NumChildren())
}

func TestNodeAddRejectsCycles(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	a.Add(b)

	b.Add(a)
	a.Add(a)
	a.Add(nil)

	assert.Nil(t, a.Parent())
	assert.Equal(t, 1, a.NumChildren())
	assert.Equal(t, 0, b.NumChildren())
}

func TestNodeRemove(t *testing.T) {
	root := NewNode("root")
	kids := []*Node{NewNode("0"), NewNode("1"), NewNode("2")}
	for _, k := range kids {
		root.Add(k)
	}

	assert.True(t, root.Remove(kids[1]))
	assert.False(t, root.Remove(kids[1]))
	assert.Nil(t, kids[1].Parent())
	assert.Equal(t, []*Node{kids[0], kids[2]}, root.Children())
}

func TestNodeWorldMatrixComposesParents(t *testing.T) {
	root := NewNode("root")
	root.Rotation.Y = math.Pi / 2
	child := NewNode("child")
	child.Position = V3(0, 0, 2)
	root.Add(child)

	p := TransformPoint(child.WorldMatrix(), Vec3{})
	assert.InDelta(t, 2, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.InDelta(t, 0, p[2], 1e-5)
}

func TestNodeCloneSharesMeshNotTransform(t *testing.T) {
	mesh := NewMesh(SphereGeometry(1, 3, 3, 0, 2*math.Pi, 0, math.Pi), nil)
	src := NewMeshNode("src", mesh)
	src.Add(NewNode("child"))

	dst := src.Clone()
	dst.Position = V3(1, 2, 3)

	assert.Equal(t, Vec3{}, src.Position)
	assert.Same(t, mesh, dst.Mesh)
	assert.Nil(t, dst.Parent())
	require.Equal(t, 1, dst.NumChildren())
	assert.NotSame(t, src.Children()[0], dst.Children()[0])
}

func TestNodeTraverseOrder(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	a.Add(NewNode("a1"))
	root.Add(a)
	root.Add(NewNode("b"))

	var names []string
	root.Traverse(func(n *Node) { names = append(names, n.Name) })
	assert.Equal(t, []string{"root", "a", "a1", "b"}, names)
}

func TestNodeDispose(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	a1 := NewNode("a1")
	a.Add(a1)
	root.Add(a)

	a.Dispose()
	assert.Equal(t, 0, root.NumChildren())
	assert.Equal(t, 0, a.NumChildren())
	assert.Nil(t, a1.Parent())
}
