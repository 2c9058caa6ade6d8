package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"ar-campus/internal/scenegraph"
)

// NodeDef is the YAML form of one node of an authored scene (e.g. assets/art.scnassets/Campus.scene.yaml).
// Type selects the geometry ("box", "plane", "cylinder", "sphere"); an empty Type makes a plain group node.
// Box uses Size as width, height, length; Plane uses Size as width, height; Cylinder uses Radius and Height;
// Sphere uses Radius. Rotation is in degrees. A missing Scale means 1, 1, 1.
type NodeDef struct {
	Name     string      `yaml:"name,omitempty"`
	Type     string      `yaml:"type,omitempty"`
	Size     []float32   `yaml:"size,omitempty"`
	Radius   float32     `yaml:"radius,omitempty"`
	Height   float32     `yaml:"height,omitempty"`
	Color    string      `yaml:"color,omitempty"`
	Texture  string      `yaml:"texture,omitempty"`
	Position [3]float32  `yaml:"position,omitempty"`
	Rotation [3]float32  `yaml:"rotation,omitempty"`
	Scale    *[3]float32 `yaml:"scale,omitempty"`
	Children []NodeDef   `yaml:"children,omitempty"`
}

// ErrEmptyScene is returned by Parse for a document with no scene in it.
var ErrEmptyScene = errors.New("assets: document has no scene")

// Parse decodes a YAML scene document and builds its node tree. Unknown keys are errors,
// so a misspelled field is reported instead of silently dropped.
func Parse(data []byte) (*scenegraph.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var def NodeDef
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScene
		}
		return nil, fmt.Errorf("assets: %w", err)
	}
	return def.Build()
}

// fold normalizes an authored name for case-insensitive lookup ("Sphere", "SaddleBrown").
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Build turns the definition and its children into a node tree.
func (d *NodeDef) Build() (*scenegraph.Node, error) {
	n := scenegraph.New(d.Name)
	n.Transform.Position = d.Position
	for i, deg := range d.Rotation {
		n.Transform.EulerAngles[i] = deg * math32.Pi / 180
	}
	if d.Scale != nil {
		n.Transform.Scale = *d.Scale
	}
	if d.Type != "" {
		g, err := d.geometry()
		if err != nil {
			return nil, fmt.Errorf("assets: node %q: %w", d.Name, err)
		}
		n.Geometry = g
	}
	for i := range d.Children {
		kid, err := d.Children[i].Build()
		if err != nil {
			return nil, err
		}
		n.MustAddChild(kid)
	}
	return n, nil
}

func (d *NodeDef) geometry() (*scenegraph.Geometry, error) {
	kind, err := scenegraph.ParseKind(fold(d.Type))
	if err != nil {
		return nil, err
	}
	var g *scenegraph.Geometry
	switch kind {
	case scenegraph.Box:
		if !positive(d.Size, 3) {
			return nil, fmt.Errorf("box needs a positive size [w, h, l], have %v", d.Size)
		}
		g = scenegraph.NewBox(d.Size[0], d.Size[1], d.Size[2], 0)
	case scenegraph.Plane:
		if !positive(d.Size, 2) {
			return nil, fmt.Errorf("plane needs a positive size [w, h], have %v", d.Size)
		}
		g = scenegraph.NewPlane(d.Size[0], d.Size[1])
	case scenegraph.Cylinder:
		if d.Radius <= 0 || d.Height <= 0 {
			return nil, fmt.Errorf("cylinder needs a positive radius and height")
		}
		g = scenegraph.NewCylinder(d.Radius, d.Height)
	case scenegraph.Sphere:
		if d.Radius <= 0 {
			return nil, fmt.Errorf("sphere needs a positive radius")
		}
		g = scenegraph.NewSphere(d.Radius)
	}
	if d.Color != "" {
		c, err := ParseColor(d.Color)
		if err != nil {
			return nil, err
		}
		g.FirstMaterial().Diffuse = c
	}
	if d.Texture != "" {
		g.FirstMaterial().Texture = d.Texture
	}
	return g, nil
}

// positive reports whether v has exactly n elements, all greater than zero.
func positive(v []float32, n int) bool {
	if len(v) != n {
		return false
	}
	for _, x := range v {
		if x <= 0 {
			return false
		}
	}
	return true
}

// ParseColor accepts an SVG/X11 color name in any case ("green", "SaddleBrown") or a hex triplet ("#8b4513").
func ParseColor(s string) (color.RGBA, error) {
	s = fold(s)
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}
