package fit

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"ar-campus/internal/scenegraph"
)

func assertVec(t *testing.T, want, have scenegraph.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], have[i], 1e-5, "component %d of %v", i, have)
	}
}

func TestModelMatrix(t *testing.T) {
	tests := []struct {
		name string
		g    *scenegraph.Geometry
		in   scenegraph.Vec3 // point on the unit mesh
		want scenegraph.Vec3 // same point on the geometry
	}{
		{"box corner", scenegraph.NewBox(3, 1, 1, 0), scenegraph.Vec3{0.5, 0.5, 0.5}, scenegraph.Vec3{1.5, 0.5, 0.5}},
		{"sphere top", scenegraph.NewSphere(1), scenegraph.Vec3{0, 0.5, 0}, scenegraph.Vec3{0, 1, 0}},
		{"cylinder base", scenegraph.NewCylinder(0.1, 2), scenegraph.Vec3{0, 0, 0}, scenegraph.Vec3{0, -1, 0}},
		{"cylinder top rim", scenegraph.NewCylinder(0.1, 2), scenegraph.Vec3{0.5, 1, 0}, scenegraph.Vec3{0.1, 1, 0}},
		{"plane width edge", scenegraph.NewPlane(6, 2), scenegraph.Vec3{0.5, 0, 0}, scenegraph.Vec3{3, 0, 0}},
		{"plane length edge", scenegraph.NewPlane(6, 2), scenegraph.Vec3{0, 0, 0.5}, scenegraph.Vec3{0, -1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, ModelMatrix(tt.g).MulPoint(tt.in))
		})
	}
}

func TestModelMatrixPlaneFacesZ(t *testing.T) {
	n := ModelMatrix(scenegraph.NewPlane(6, 2)).MulDir(scenegraph.Vec3{0, 1, 0})
	assertVec(t, scenegraph.Vec3{0, 0, 1}, n)
}

func TestNearestPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{300, 256},
		{384, 512},
		{400, 512},
		{1024, 1024},
		{5000, MaxTextureSize},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NearestPowerOfTwo(tt.in), "n=%d", tt.in)
	}
}

func TestPowerOfTwo(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 64))
	out := PowerOfTwo(img)
	assert.Equal(t, image.Rect(0, 0, 256, 64), out.Bounds())

	square := image.NewRGBA(image.Rect(0, 0, 128, 128))
	assert.Same(t, square, PowerOfTwo(square))
}
