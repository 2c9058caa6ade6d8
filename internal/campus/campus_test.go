package campus

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"ar-campus/internal/scenegraph"
)

func TestBuildBuilding(t *testing.T) {
	b := BuildBuilding()
	require.Len(t, b.Children(), 2)

	box := b.Find(BoxName)
	require.NotNil(t, box)
	require.NotNil(t, box.Geometry)
	assert.Equal(t, scenegraph.Box, box.Geometry.Kind)
	assert.Equal(t, scenegraph.Vec3{3, 1, 1}, box.Geometry.Extent())
	assert.Equal(t, box.Geometry.Height/2, box.Transform.Position[1])
	assert.Equal(t, float32(0.5), box.Transform.Position[1])
	assert.Len(t, box.Geometry.Materials, 0, "box keeps the implicit default material")

	grass := b.Find(GrassName)
	require.NotNil(t, grass)
	assert.Equal(t, scenegraph.Plane, grass.Geometry.Kind)
	assert.Equal(t, float32(6), grass.Geometry.Width)
	assert.Equal(t, float32(2), grass.Geometry.Height)
	assert.Equal(t, colornames.Green, grass.Geometry.FirstMaterial().Diffuse)
}

func TestGrassLiesFlat(t *testing.T) {
	grass := BuildBuilding().Find(GrassName)
	require.NotNil(t, grass)
	// the plane faces +z before rotation; after it the normal points straight up
	n := grass.Transform.Matrix().MulDir(scenegraph.Vec3{0, 0, 1})
	assert.InDelta(t, 0, n[0], 1e-6)
	assert.InDelta(t, 1, n[1], 1e-6)
	assert.InDelta(t, 0, n[2], 1e-6)
}

func TestBuildTree(t *testing.T) {
	tree := BuildTree()
	require.Len(t, tree.Children(), 2)
	assert.Equal(t, scenegraph.Vec3{}, tree.Transform.Position)

	trunk, foliage := tree.Children()[0], tree.Children()[1]
	assert.Equal(t, scenegraph.Cylinder, trunk.Geometry.Kind)
	assert.Equal(t, float32(0.1), trunk.Geometry.Radius)
	assert.Equal(t, float32(2), trunk.Geometry.Height)
	assert.Equal(t, float32(1), trunk.Transform.Position[1])
	assert.Equal(t, colornames.Brown, trunk.Geometry.FirstMaterial().Diffuse)

	assert.Equal(t, scenegraph.Sphere, foliage.Geometry.Kind)
	assert.Equal(t, float32(1), foliage.Geometry.Radius)
	assert.Equal(t, float32(2.5), foliage.Transform.Position[1])
	assert.Greater(t, foliage.Transform.Position[1], trunk.Transform.Position[1]+trunk.Geometry.Height/2)
	assert.Equal(t, colornames.Green, foliage.Geometry.FirstMaterial().Diffuse)
}

func TestBuildForest(t *testing.T) {
	base := BuildTree()
	forest := BuildForest(base)
	assert.Same(t, base, forest)
	assert.Equal(t, ForestOrigin, forest.Transform.Position)

	kids := forest.Children()
	require.Len(t, kids, 2+len(CloneOffsets))
	clones := kids[2:]

	ids := map[uint64]bool{forest.ID(): true}
	positions := []scenegraph.Vec3{forest.Transform.Position}
	for i, c := range clones {
		assert.Equal(t, CloneOffsets[i], c.Transform.Position)
		assert.Len(t, c.Children(), 2, "clone %d should be a plain tree", i)
		assert.Same(t, forest, c.Parent())
		ids[c.ID()] = true
		positions = append(positions, c.Transform.Position)
	}
	assert.Len(t, ids, 6, "all six trees are distinct nodes")
	for i := range positions {
		for j := i + 1; j < len(positions); j++ {
			assert.NotEqual(t, positions[i], positions[j], "trees %d and %d overlap", i, j)
		}
	}

	// clones share geometry with the base tree
	assert.Same(t, kids[0].Geometry, clones[0].Children()[0].Geometry)
}

func TestForestClonesAreIndependent(t *testing.T) {
	forest := BuildForest(BuildTree())
	clones := forest.Children()[2:]

	clones[0].Transform.Position[1] = 42
	clones[0].Children()[1].Transform.Scale = scenegraph.Vec3{3, 3, 3}

	assert.Equal(t, ForestOrigin, forest.Transform.Position)
	for i, c := range clones[1:] {
		assert.Equal(t, CloneOffsets[i+1], c.Transform.Position)
		assert.Equal(t, scenegraph.Vec3{1, 1, 1}, c.Children()[1].Transform.Scale)
	}
	assert.Equal(t, scenegraph.Vec3{1, 1, 1}, forest.Children()[1].Transform.Scale)
}

func TestBuildCampus(t *testing.T) {
	c := BuildCampus()
	require.NotNil(t, c)
	require.Len(t, c.Children(), 2)

	building, forest := c.Children()[0], c.Children()[1]
	assert.Equal(t, BuildingName, building.Name)
	assert.Equal(t, float32(-3), building.Transform.Position[2])
	assert.Equal(t, TreeName, forest.Name)
	assert.Len(t, forest.Children(), 7)

	a := c.Animation
	require.NotNil(t, a)
	assert.True(t, a.Forever)
	assert.Equal(t, float32(3), a.Duration)
	assert.InDelta(t, 2*math32.Pi, math32.Abs(a.Delta[1]), 1e-6)
	assert.Zero(t, a.Delta[0])
	assert.Zero(t, a.Delta[2])

	// the box ends up at z = -3 in campus space
	box := c.Find(BoxName)
	p := box.WorldMatrix().MulPoint(scenegraph.Vec3{})
	assert.InDelta(t, 0.5, p[1], 1e-6)
	assert.InDelta(t, -3, p[2], 1e-6)
}

func TestBuildCampusIsPure(t *testing.T) {
	a := BuildCampus()
	b := BuildCampus()
	assert.Equal(t, scenegraph.Dump(a), scenegraph.Dump(b))
	assert.Equal(t, a.Count(), b.Count())

	ids := map[uint64]bool{}
	a.Walk(func(n *scenegraph.Node) bool {
		ids[n.ID()] = true
		return true
	})
	b.Walk(func(n *scenegraph.Node) bool {
		assert.False(t, ids[n.ID()], "node %q shared between builds", n.Name)
		return true
	})
	// geometry is rebuilt too
	assert.NotSame(t, a.Find(BoxName).Geometry, b.Find(BoxName).Geometry)
}
