package primitives

import (
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ar-campus/internal/primitives/fit"
	"ar-campus/internal/scenegraph"
	"ar-campus/internal/session"
)

// cached holds the unit mesh and materials for one geometry kind. Created lazily on first Draw.
// texturedMtl is used when the geometry's material has a texture (same mesh, different material).
type cached struct {
	mesh        rl.Mesh
	mtl         rl.Material
	texturedMtl rl.Material
}

// Registry maps geometry kinds to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
// Each kind has one unit-sized mesh; the geometry's parameters become a model matrix
// (see fit.ModelMatrix).
type Registry struct {
	cache     map[scenegraph.Kind]cached
	textures  map[string]rl.Texture2D
	assetDir  string
	lit       bool
	shader    rl.Shader
	shaderErr error
	viewPos   [3]float32 // camera position, set each frame for lighting
	lightDir  [3]float32 // direction to light (normalized in the shader), set each frame
	draws     int
}

// NewRegistry returns an empty registry. When lit is true meshes are drawn with the default
// lighting shader, otherwise with raylib's flat default shader. Texture paths are resolved
// against assetDir.
func NewRegistry(lit bool, assetDir string) *Registry {
	return &Registry{
		cache:    make(map[scenegraph.Kind]cached),
		textures: make(map[string]rl.Texture2D),
		assetDir: assetDir,
		lit:      lit,
		lightDir: defaultLightDir,
	}
}

// SetView sets camera position and direction-to-light for this frame and resets the draw counter.
// Call once per frame before drawing.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
	r.draws = 0
}

// Draws returns the number of meshes drawn since the last SetView.
func (r *Registry) Draws() int {
	return r.draws
}

// Err returns session.ErrShaderUnavailable if default lighting was requested but the shader
// failed to compile. Drawing falls back to the flat shader in that case.
func (r *Registry) Err() error {
	return r.shaderErr
}

// litShader compiles the lighting shader once. ok is false when lighting is off or unavailable.
func (r *Registry) litShader() (rl.Shader, bool) {
	if !r.lit || r.shaderErr != nil {
		return rl.Shader{}, false
	}
	if !rl.IsShaderValid(r.shader) {
		r.shader = loadLitShader()
		if !rl.IsShaderValid(r.shader) {
			r.shaderErr = session.ErrShaderUnavailable
			return rl.Shader{}, false
		}
	}
	return r.shader, true
}

func genUnitMesh(kind scenegraph.Kind) rl.Mesh {
	switch kind {
	case scenegraph.Plane:
		return rl.GenMeshPlane(1, 1, defaultPlaneRes, defaultPlaneRes)
	case scenegraph.Cylinder:
		return rl.GenMeshCylinder(0.5, 1, defaultCylinderSlices)
	case scenegraph.Sphere:
		return rl.GenMeshSphere(0.5, defaultSphereRings, defaultSphereSlices)
	default:
		return rl.GenMeshCube(1, 1, 1)
	}
}

// Mesh resolution.
const (
	defaultSphereRings    = 24
	defaultSphereSlices   = 24
	defaultCylinderSlices = 24
	defaultPlaneRes       = 1
)

// ensure creates the mesh and materials for kind if not yet cached.
func (r *Registry) ensure(kind scenegraph.Kind) cached {
	if c, ok := r.cache[kind]; ok {
		return c
	}
	c := cached{
		mesh:        genUnitMesh(kind),
		mtl:         rl.LoadMaterialDefault(),
		texturedMtl: rl.LoadMaterialDefault(),
	}
	if shader, ok := r.litShader(); ok {
		c.mtl.Shader = shader
		c.texturedMtl.Shader = shader
	}
	r.cache[kind] = c
	return c
}

// Draw draws g with the given world matrix using its first material.
// Must be called between BeginMode3D and EndMode3D, after SetView.
func (r *Registry) Draw(g *scenegraph.Geometry, world scenegraph.Mat4) {
	c := r.ensure(g.Kind)
	m := g.FirstMaterial()
	mtl := c.mtl
	if m.Texture != "" {
		if tex, ok := r.texture(m.Texture); ok {
			rl.SetMaterialTexture(&c.texturedMtl, rl.MapAlbedo, tex)
			mtl = c.texturedMtl
		}
	}
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.NewColor(m.Diffuse.R, m.Diffuse.G, m.Diffuse.B, m.Diffuse.A)
	}
	if r.lit && r.shaderErr == nil {
		r.setLitShaderUniforms(mtl.Shader)
	}
	rl.DrawMesh(c.mesh, mtl, toMatrix(world.Mul(fit.ModelMatrix(g))))
	r.draws++
}

// texture returns the GPU texture for path, loading it on first use. Failed loads are
// remembered so they are not retried every frame.
func (r *Registry) texture(path string) (rl.Texture2D, bool) {
	tex, seen := r.textures[path]
	if !seen {
		tex = loadTexture(filepath.Join(r.assetDir, filepath.FromSlash(path)))
		r.textures[path] = tex
	}
	return tex, rl.IsTextureValid(tex)
}

// Unload releases all GPU resources. Call before the window closes.
func (r *Registry) Unload() {
	if len(r.cache) > 0 {
		def := rl.LoadMaterialDefault()
		for kind, c := range r.cache {
			rl.UnloadMesh(&c.mesh)
			releaseMaterial(c.mtl, def)
			releaseMaterial(c.texturedMtl, def)
			delete(r.cache, kind)
		}
		rl.UnloadMaterial(def)
	}
	for path, tex := range r.textures {
		if rl.IsTextureValid(tex) {
			rl.UnloadTexture(tex)
		}
		delete(r.textures, path)
	}
	if rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
		r.shader = rl.Shader{}
	}
}

// releaseMaterial frees m's map array. The shared shader and cached textures are swapped
// for def's defaults first, since UnloadMaterial would otherwise free them too; Unload
// releases those itself.
func releaseMaterial(m, def rl.Material) {
	m.Shader = def.Shader
	if albedo := m.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Texture = def.GetMap(rl.MapAlbedo).Texture
	}
	rl.UnloadMaterial(m)
}
