package scenegraph

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

const eps = 1e-5

func assertVec(t *testing.T, want, have Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], have[i], eps, "component %d of %v", i, have)
	}
}

func TestAddChildReparents(t *testing.T) {
	a := New("a")
	b := New("b")
	c := New("c")
	require.NoError(t, a.AddChild(c))
	require.NoError(t, b.AddChild(c))

	assert.Empty(t, a.Children())
	assert.Equal(t, []*Node{c}, b.Children())
	assert.Same(t, b, c.Parent())
}

func TestAddChildRejectsCycle(t *testing.T) {
	root := New("root")
	mid := New("mid")
	leaf := New("leaf")
	root.MustAddChild(mid)
	mid.MustAddChild(leaf)

	assert.ErrorIs(t, leaf.AddChild(root), ErrCycle)
	assert.ErrorIs(t, root.AddChild(root), ErrCycle)
	assert.Nil(t, root.Parent())
	assert.Equal(t, 3, root.Count())
}

func TestRemoveFromParent(t *testing.T) {
	root := New("root")
	kids := []*Node{New("0"), New("1"), New("2")}
	for _, k := range kids {
		root.MustAddChild(k)
	}
	kids[1].RemoveFromParent()
	assert.Equal(t, []*Node{kids[0], kids[2]}, root.Children())
	assert.Nil(t, kids[1].Parent())

	// no-op on a root
	root.RemoveFromParent()
	assert.Nil(t, root.Parent())
}

func TestCloneIsDeep(t *testing.T) {
	geom := NewSphere(1)
	geom.FirstMaterial().Diffuse = colornames.Green

	root := New("tree")
	root.SetPosition(1, 2, 3)
	root.RunAnimation(RotateBy(0, 1, 0, 2).RepeatForever())
	leaf := NewWithGeometry("leaf", geom)
	leaf.SetPosition(0, 2.5, 0)
	root.MustAddChild(leaf)

	c := root.Clone()
	require.Len(t, c.Children(), 1)
	cl := c.Children()[0]

	assert.NotEqual(t, root.ID(), c.ID())
	assert.NotEqual(t, leaf.ID(), cl.ID())
	assert.NotSame(t, leaf, cl)
	assert.Nil(t, c.Parent())
	assert.Same(t, c, cl.Parent())
	assert.Equal(t, root.Transform, c.Transform)
	assert.Equal(t, "leaf", cl.Name)

	// geometry is shared
	assert.Same(t, geom, cl.Geometry)

	// transforms and animations are not
	require.NotNil(t, c.Animation)
	assert.NotSame(t, root.Animation, c.Animation)
	c.Animation.Duration = 10
	assert.Equal(t, float32(2), root.Animation.Duration)

	cl.SetPosition(9, 9, 9)
	assertVec(t, Vec3{0, 2.5, 0}, leaf.Transform.Position)
	c.Transform.Scale[0] = 4
	assert.Equal(t, float32(1), root.Transform.Scale[0])

	// new children of the clone do not show up in the original
	c.MustAddChild(New("extra"))
	assert.Len(t, root.Children(), 1)
}

func TestClonesShareNoNodes(t *testing.T) {
	root := New("root")
	kid := New("kid")
	root.MustAddChild(kid)

	a := root.Clone()
	b := root.Clone()
	require.Len(t, a.Children(), 1)
	require.Len(t, b.Children(), 1)
	assert.NotSame(t, kid, a.Children()[0])
	assert.NotSame(t, a.Children()[0], b.Children()[0])

	ids := map[uint64]bool{}
	for _, n := range []*Node{root, kid, a, a.Children()[0], b, b.Children()[0]} {
		ids[n.ID()] = true
	}
	assert.Len(t, ids, 6)

	a.Children()[0].SetPosition(5, 5, 5)
	assert.Equal(t, Vec3{}, kid.Transform.Position)
	assert.Equal(t, Vec3{}, b.Children()[0].Transform.Position)
}

func TestFind(t *testing.T) {
	root := New("root")
	a := New("a")
	b := New("b")
	root.MustAddChild(a)
	a.MustAddChild(b)
	assert.Same(t, b, root.Find("b"))
	assert.Nil(t, root.Find("missing"))
}

func TestWorldMatrix(t *testing.T) {
	root := New("root")
	root.SetPosition(0, 0, -3)
	kid := New("kid")
	kid.SetPosition(0, 0.5, 0)
	root.MustAddChild(kid)

	assertVec(t, Vec3{0, 0.5, -3}, kid.WorldMatrix().MulPoint(Vec3{}))

	var seen []Vec3
	root.WalkWorld(Ident4(), 0, func(n *Node, world Mat4) {
		seen = append(seen, world.MulPoint(Vec3{}))
	})
	require.Len(t, seen, 2)
	assertVec(t, Vec3{0, 0, -3}, seen[0])
	assertVec(t, Vec3{0, 0.5, -3}, seen[1])
}

func TestRotationXTurnsPlaneNormalUp(t *testing.T) {
	tr := Identity()
	tr.EulerAngles[0] = -math32.Pi / 2
	assertVec(t, Vec3{0, 1, 0}, tr.Matrix().MulDir(Vec3{0, 0, 1}))
}

func TestAnimationAt(t *testing.T) {
	a := RotateBy(0, -2*math32.Pi, 0, 3).RepeatForever()
	assertVec(t, Vec3{}, a.At(0))
	assertVec(t, Vec3{0, -math32.Pi, 0}, a.At(1.5))
	assertVec(t, Vec3{}, a.At(6))

	once := RotateBy(1, 0, 0, 2)
	assertVec(t, Vec3{0.5, 0, 0}, once.At(1))
	assertVec(t, Vec3{1, 0, 0}, once.At(5))
}

func TestAnimationAtLongRunning(t *testing.T) {
	full := RotateBy(0, -2*math32.Pi, 0, 3).RepeatForever()
	// 100000 turns in, the angle is back at zero
	assertVec(t, Vec3{}, full.At(300000))
	assertVec(t, Vec3{0, -math32.Pi, 0}, full.At(300001.5))

	// a quarter turn per second: after 5 s the node is a quarter turn in
	quarter := RotateBy(math32.Pi/2, 0, 0, 1).RepeatForever()
	assertVec(t, Vec3{math32.Pi / 2, 0, 0}, quarter.At(5))

	// the clock itself is float64, so frame steps are not lost over hours
	clock := 0.0
	for i := 0; i < 3*60*60*60; i++ {
		clock += float64(float32(1.0 / 60))
	}
	assert.InDelta(t, 10800, clock, 0.01)
	m := (&Node{Transform: Identity(), Animation: full}).LocalMatrixAt(clock)
	assertVec(t, Vec3{1, 0, 0}, m.MulDir(Vec3{1, 0, 0}))
}

func TestLocalMatrixAtAppliesAnimation(t *testing.T) {
	n := New("spinner")
	n.RunAnimation(RotateBy(0, math32.Pi/2, 0, 1).RepeatForever())
	// a quarter turn about y maps +x to -z
	assertVec(t, Vec3{0, 0, -1}, n.LocalMatrixAt(1).MulDir(Vec3{1, 0, 0}))
	assertVec(t, Vec3{1, 0, 0}, n.LocalMatrixAt(0).MulDir(Vec3{1, 0, 0}))
}

func TestFirstMaterialDefault(t *testing.T) {
	g := NewBox(3, 1, 1, 0)
	m := g.FirstMaterial()
	assert.Equal(t, DefaultColor, m.Diffuse)
	assert.Same(t, m, g.FirstMaterial())
	assert.Len(t, g.Materials, 1)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("cube")
	require.NoError(t, err)
	assert.Equal(t, Box, k)
	k, err = ParseKind("cylinder")
	require.NoError(t, err)
	assert.Equal(t, Cylinder, k)
	_, err = ParseKind("torus")
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	root := New("campus")
	root.MustAddChild(NewWithGeometry("box", NewBox(3, 1, 1, 0)).SetPosition(0, 0.5, 0))
	assert.Equal(t, "campus [0, 0, 0]\n    box [0, 0.5, 0] Box [3 1 1]\n", Dump(root))
}
