// Package campus builds the procedural campus: a building on a patch of grass and a
// cluster of six trees, grouped under a slowly spinning top-level node.
//
// Every builder returns a fresh tree made from the constants below; nothing is cached
// between calls.
package campus

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"

	"ar-campus/internal/scenegraph"
)

// Building dimensions. The box rests on the grass, so its node sits half its height up.
const (
	BoxWidth   = 3
	BoxHeight  = 1
	BoxLength  = 1
	GrassWidth = 6
	GrassDepth = 2
)

// Tree dimensions. The foliage sphere is centered half a radius above the trunk top.
const (
	TrunkRadius   = 0.1
	TrunkHeight   = 2
	FoliageRadius = 1
	FoliageY      = 2.5
)

// BuildingDepthOffset is how far the building is pushed back along z inside the campus.
const BuildingDepthOffset = -3

// SpinPeriod is the number of seconds the campus takes for one full turn.
const SpinPeriod = 3

// SpinDelta is the rotation about y per SpinPeriod: one full turn, clockwise seen from above.
const SpinDelta = -2 * math32.Pi

var (
	// ForestOrigin is where the first tree of the forest is placed.
	ForestOrigin = scenegraph.Vec3{-2.5, 0, -3}
	// CloneOffsets are the positions of the five cloned trees, relative to the first tree.
	CloneOffsets = [5]scenegraph.Vec3{
		{5, 0, -0.75},
		{0, 0, -0.75},
		{5, 0, 0.75},
		{0, 0, 0.75},
		{5, 0, 0},
	}
)

// Node names, used by callers that look parts of the campus up with Node.Find.
const (
	CampusName   = "campus"
	BuildingName = "building"
	BoxName      = "building.box"
	GrassName    = "building.grass"
	TreeName     = "tree"
	TrunkName    = "tree.trunk"
	FoliageName  = "tree.foliage"
)

// BuildBuilding returns a node holding a box standing on a green ground plane.
// The plane is created upright (facing +z) and tipped back a quarter turn about x so it
// lies flat, facing up.
func BuildBuilding() *scenegraph.Node {
	building := scenegraph.New(BuildingName)

	box := scenegraph.NewWithGeometry(BoxName, scenegraph.NewBox(BoxWidth, BoxHeight, BoxLength, 0))
	box.Transform.Position[1] += BoxHeight / 2.0
	building.MustAddChild(box)

	grass := scenegraph.NewWithGeometry(GrassName, scenegraph.NewPlane(GrassWidth, GrassDepth))
	grass.Transform.EulerAngles[0] -= math32.Pi / 2
	grass.Geometry.FirstMaterial().Diffuse = colornames.Green
	building.MustAddChild(grass)

	return building
}

// BuildTree returns a node holding a brown trunk with a green sphere of foliage on top.
// The trunk is centered half its height up so its base touches the ground.
func BuildTree() *scenegraph.Node {
	tree := scenegraph.New(TreeName)

	trunk := scenegraph.NewWithGeometry(TrunkName, scenegraph.NewCylinder(TrunkRadius, TrunkHeight))
	trunk.Transform.Position[1] = TrunkHeight / 2.0
	trunk.Geometry.FirstMaterial().Diffuse = colornames.Brown

	foliage := scenegraph.NewWithGeometry(FoliageName, scenegraph.NewSphere(FoliageRadius))
	foliage.Transform.Position[1] = FoliageY
	foliage.Geometry.FirstMaterial().Diffuse = colornames.Green

	tree.MustAddChild(trunk)
	tree.MustAddChild(foliage)
	return tree
}

// BuildForest moves base to ForestOrigin and attaches five clones of it, one per
// CloneOffsets entry. All clones are taken before any is attached, so each is a plain
// copy of base. It returns base, now the root of the six-tree cluster.
func BuildForest(base *scenegraph.Node) *scenegraph.Node {
	base.Transform.Position = ForestOrigin

	clones := make([]*scenegraph.Node, len(CloneOffsets))
	for i, off := range CloneOffsets {
		clones[i] = base.Clone()
		clones[i].Transform.Position = off
	}
	for _, c := range clones {
		base.MustAddChild(c)
	}
	return base
}

// BuildCampus returns the top-level campus node: the building, pushed back by
// BuildingDepthOffset, followed by a forest. The node spins about y forever, one full
// turn every SpinPeriod seconds.
func BuildCampus() *scenegraph.Node {
	campus := scenegraph.New(CampusName)

	building := BuildBuilding()
	building.Transform.Position[2] += BuildingDepthOffset
	campus.MustAddChild(building)
	campus.MustAddChild(BuildForest(BuildTree()))

	campus.RunAnimation(scenegraph.RotateBy(0, SpinDelta, 0, SpinPeriod).RepeatForever())
	return campus
}
