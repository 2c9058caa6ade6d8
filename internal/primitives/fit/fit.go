// Package fit maps scene-graph geometry and images onto what the renderer expects:
// unit meshes scaled to a geometry's size, and textures at power-of-two sizes.
// It has no renderer dependency so the mapping can be tested on its own.
package fit

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/chewxy/math32"

	"ar-campus/internal/scenegraph"
)

// MaxTextureSize caps texture sides; larger images are scaled down.
const MaxTextureSize = 2048

// ModelMatrix maps the renderer's unit mesh for g's kind onto g's size and orientation.
// The unit meshes differ from scene-graph geometry in two ways: the cylinder has its
// base at y=0 (shifted down by half to center it), and the plane lies in XZ facing +Y
// (tipped a quarter turn about x so it lies in XY facing +Z).
func ModelMatrix(g *scenegraph.Geometry) scenegraph.Mat4 {
	switch g.Kind {
	case scenegraph.Box:
		return scenegraph.Scaling(g.Width, g.Height, g.Length)
	case scenegraph.Plane:
		return scenegraph.RotationX(math32.Pi / 2).Mul(scenegraph.Scaling(g.Width, 1, g.Height))
	case scenegraph.Cylinder:
		d := 2 * g.Radius
		return scenegraph.Scaling(d, g.Height, d).Mul(scenegraph.Translation(0, -0.5, 0))
	case scenegraph.Sphere:
		d := 2 * g.Radius
		return scenegraph.Scaling(d, d, d)
	}
	return scenegraph.Ident4()
}

// PowerOfTwo returns img resized to the nearest power-of-two size not above MaxTextureSize.
// img itself is returned when it already has such a size.
func PowerOfTwo(img image.Image) image.Image {
	b := img.Bounds()
	w, h := NearestPowerOfTwo(b.Dx()), NearestPowerOfTwo(b.Dy())
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// NearestPowerOfTwo returns the power of two closest to n, at least 1 and at most
// MaxTextureSize. Ties round up.
func NearestPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n && p < MaxTextureSize {
		p <<= 1
	}
	if p > n && p-n > n-p/2 {
		p /= 2
	}
	return p
}
