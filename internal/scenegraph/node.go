// Package scenegraph implements the node tree the viewer renders: nodes with local
// transforms, optional geometry, owned children and an optional rotation animation.
package scenegraph

import (
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/jinzhu/copier"
)

// ErrCycle is returned by AddChild when the child is the parent itself or one of its ancestors.
var ErrCycle = errors.New("scenegraph: node cannot be added below itself")

var lastID atomic.Uint64

// Node is an element of the scene graph. A node exclusively owns its children: adding a
// node to a new parent detaches it from the old one.
type Node struct {
	Name      string
	Transform Transform
	// Geometry is shared, not copied, by Clone.
	Geometry  *Geometry
	Animation *Animation

	id       uint64
	parent   *Node
	children []*Node
}

// New returns an empty node with an identity transform.
func New(name string) *Node {
	return &Node{
		Name:      name,
		Transform: Identity(),
		id:        lastID.Add(1),
	}
}

// NewWithGeometry returns a node carrying g.
func NewWithGeometry(name string, g *Geometry) *Node {
	n := New(name)
	n.Geometry = g
	return n
}

// ID returns the node's process-unique identity. Clones get new IDs.
func (n *Node) ID() uint64 {
	return n.id
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in insertion order. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// SetPosition sets the local position.
func (n *Node) SetPosition(x, y, z float32) *Node {
	n.Transform.Position = Vec3{x, y, z}
	return n
}

// RunAnimation attaches a to the node, replacing any previous animation.
func (n *Node) RunAnimation(a *Animation) *Node {
	n.Animation = a
	return n
}

// AddChild appends c to n's children, detaching it from its previous parent first.
// It returns ErrCycle if c is n or an ancestor of n.
func (n *Node) AddChild(c *Node) error {
	for p := n; p != nil; p = p.parent {
		if p == c {
			return ErrCycle
		}
	}
	c.RemoveFromParent()
	c.parent = n
	n.children = append(n.children, c)
	return nil
}

// MustAddChild is like AddChild but panics on error. It is meant for trees built from
// fresh nodes, where a cycle is a programming error.
func (n *Node) MustAddChild(c *Node) *Node {
	if err := n.AddChild(c); err != nil {
		panic(err)
	}
	return n
}

// RemoveFromParent detaches n from its parent. It does nothing for a root.
func (n *Node) RemoveFromParent() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Clone returns a deep copy of the subtree rooted at n. The copy has new nodes with their
// own transforms and animations, shares n's geometries and has no parent.
func (n *Node) Clone() *Node {
	c := New(n.Name)
	c.Transform = n.Transform
	c.Geometry = n.Geometry
	if n.Animation != nil {
		c.Animation = &Animation{}
		err := copier.CopyWithOption(c.Animation, n.Animation, copier.Option{CaseSensitive: true, DeepCopy: true})
		if err != nil {
			slog.Error("scenegraph.Node.Clone", "err", err)
		}
	}
	for _, kid := range n.children {
		kc := kid.Clone()
		kc.parent = c
		c.children = append(c.children, kc)
	}
	return c
}

// Walk calls fn for n and its descendants in depth-first order. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, kid := range n.children {
		kid.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree, n included.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}

// Find returns the first node named name in the subtree, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(k *Node) bool {
		if found != nil {
			return false
		}
		if k.Name == name {
			found = k
			return false
		}
		return true
	})
	return found
}

// LocalMatrixAt returns the node's local matrix with its animation evaluated t seconds in.
func (n *Node) LocalMatrixAt(t float64) Mat4 {
	if n.Animation == nil {
		return n.Transform.Matrix()
	}
	return n.Transform.matrixWith(n.Transform.EulerAngles.Add(n.Animation.At(t)))
}

// WorldMatrix returns the product of the local matrices from the root down to n,
// ignoring animations.
func (n *Node) WorldMatrix() Mat4 {
	m := n.Transform.Matrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Transform.Matrix().Mul(m)
	}
	return m
}

// WalkWorld calls fn for every node in the subtree with its world matrix, evaluating
// animations t seconds in. parent is the world matrix of n's parent.
func (n *Node) WalkWorld(parent Mat4, t float64, fn func(*Node, Mat4)) {
	world := parent.Mul(n.LocalMatrixAt(t))
	fn(n, world)
	for _, kid := range n.children {
		kid.WalkWorld(world, t, fn)
	}
}
