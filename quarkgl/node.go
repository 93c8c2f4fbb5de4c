package quarkgl

// Node is a transform in the scene graph. It owns its children and may carry
// one mesh. A child's world transform is its parent's world transform composed
// with its own local transform.
type Node struct {
	Name     string
	Position Vec3
	Rotation Euler
	Scale    Vec3
	Mesh     *Mesh
	Visible  bool

	parent   *Node
	children []*Node
}

// NewNode returns an empty visible node with unit scale.
func NewNode(name string) *Node {
	return &Node{Name: name, Scale: V3(1, 1, 1), Visible: true}
}

// NewMeshNode returns a node carrying mesh.
func NewMeshNode(name string, mesh *Mesh) *Node {
	n := NewNode(name)
	n.Mesh = mesh
	return n
}

func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *Node) NumChildren() int { return len(n.children) }

// Add appends child, detaching it from any previous parent.
// Adding nil, n itself or one of n's ancestors is ignored.
func (n *Node) Add(child *Node) {
	if n == nil || child == nil || child == n {
		return
	}
	for p := n.parent; p != nil; p = p.parent {
		if p == child {
			return
		}
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches child and reports whether it was a direct child of n.
func (n *Node) Remove(child *Node) bool {
	if n == nil || child == nil {
		return false
	}
	for i, c := range n.children {
		if c != child {
			continue
		}
		copy(n.children[i:], n.children[i+1:])
		n.children[len(n.children)-1] = nil
		n.children = n.children[:len(n.children)-1]
		child.parent = nil
		return true
	}
	return false
}

// LocalMatrix returns T * R * S for this node.
func (n *Node) LocalMatrix() Mat4 {
	s := n.Scale
	if s == (Vec3{}) {
		s = V3(1, 1, 1)
	}
	return Compose(n.Position, n.Rotation, s)
}

// WorldMatrix composes every ancestor's local transform with this node's.
func (n *Node) WorldMatrix() Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// Traverse visits n and its descendants depth-first, parents first.
func (n *Node) Traverse(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.children {
		c.Traverse(fn)
	}
}

// Clone copies the transform subtree. Meshes are shared, transforms are not.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Name:     n.Name,
		Position: n.Position,
		Rotation: n.Rotation,
		Scale:    n.Scale,
		Mesh:     n.Mesh,
		Visible:  n.Visible,
	}
	for _, ch := range n.children {
		c.Add(ch.Clone())
	}
	return c
}

// Dispose detaches n from its parent and releases the whole subtree.
func (n *Node) Dispose() {
	if n == nil {
		return
	}
	if n.parent != nil {
		n.parent.Remove(n)
	}
	for _, c := range n.children {
		c.parent = nil
		c.Dispose()
	}
	n.children = nil
	n.Mesh = nil
}
