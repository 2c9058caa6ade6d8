package scenegraph

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Kind identifies the shape of a Geometry.
type Kind int

const (
	Box Kind = iota
	Plane
	Cylinder
	Sphere
)

var kindNames = [...]string{"box", "plane", "cylinder", "sphere"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind for a lowercase shape name ("box", "plane", "cylinder", "sphere").
// "cube" is accepted as an alias for "box".
func ParseKind(s string) (Kind, error) {
	if s == "cube" {
		return Box, nil
	}
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("scenegraph: unknown geometry type %q", s)
}

// DefaultColor is the diffuse color of a material nobody has set, white.
var DefaultColor = colornames.White

// Material is the surface of a geometry: a diffuse color, or a texture image when Texture is set.
type Material struct {
	Diffuse color.RGBA
	Texture string // path to an image, relative to the asset directory
}

// NewMaterial returns a material with the given diffuse color.
func NewMaterial(c color.RGBA) *Material {
	return &Material{Diffuse: c}
}

// Geometry describes a shape and its material slots. Only the fields that apply to Kind
// are meaningful: Width/Height/Length/ChamferRadius for Box, Width/Height for Plane,
// Radius/Height for Cylinder, Radius for Sphere.
//
// A Geometry is shared between a node and its clones; treat it as immutable once attached.
type Geometry struct {
	Kind          Kind
	Width         float32
	Height        float32
	Length        float32
	ChamferRadius float32
	Radius        float32
	Materials     []*Material
}

// NewBox returns a box centered at the origin with extents width (x), height (y) and length (z).
func NewBox(width, height, length, chamferRadius float32) *Geometry {
	return &Geometry{Kind: Box, Width: width, Height: height, Length: length, ChamferRadius: chamferRadius}
}

// NewPlane returns a one-sided plane in the local XY plane facing +Z.
func NewPlane(width, height float32) *Geometry {
	return &Geometry{Kind: Plane, Width: width, Height: height}
}

// NewCylinder returns a cylinder centered at the origin with its axis along y.
func NewCylinder(radius, height float32) *Geometry {
	return &Geometry{Kind: Cylinder, Radius: radius, Height: height}
}

// NewSphere returns a sphere centered at the origin.
func NewSphere(radius float32) *Geometry {
	return &Geometry{Kind: Sphere, Radius: radius}
}

// FirstMaterial returns the first material slot, creating a default one when there is none.
func (g *Geometry) FirstMaterial() *Material {
	if len(g.Materials) == 0 {
		g.Materials = append(g.Materials, NewMaterial(DefaultColor))
	}
	return g.Materials[0]
}

// Extent returns the size of the geometry's local bounding box.
func (g *Geometry) Extent() Vec3 {
	switch g.Kind {
	case Box:
		return Vec3{g.Width, g.Height, g.Length}
	case Plane:
		return Vec3{g.Width, g.Height, 0}
	case Cylinder:
		return Vec3{2 * g.Radius, g.Height, 2 * g.Radius}
	case Sphere:
		d := 2 * g.Radius
		return Vec3{d, d, d}
	}
	return Vec3{}
}
