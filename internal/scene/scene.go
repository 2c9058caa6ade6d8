package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"ar-campus/internal/primitives"
	"ar-campus/internal/scenegraph"
	"ar-campus/internal/viewconfig"
)

// Scene is the 3D view: it owns the scene graph root, a perspective camera and the
// primitives registry that draws geometry. Update advances animations and camera; Draw
// renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera rl.Camera3D

	root          *scenegraph.Node
	reg           *primitives.Registry
	clock         float64 // seconds
	cameraControl bool
	cursorDone    bool
}

// New returns an empty scene configured from prefs. The camera stands where a phone held
// at eye height would, looking slightly down at the origin.
func New(prefs viewconfig.ViewPrefs) *Scene {
	s := &Scene{
		root:          scenegraph.New("root"),
		reg:           primitives.NewRegistry(prefs.AutoenablesDefaultLighting, prefs.AssetDir),
		cameraControl: prefs.AllowsCameraControl,
	}
	s.Camera.Position = rl.NewVector3(0, 3, 6)
	s.Camera.Target = rl.NewVector3(0, 0.5, -2)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 60
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Root returns the scene root. Callers attach their node trees to it.
func (s *Scene) Root() *scenegraph.Node {
	return s.root
}

// Clock returns the seconds of animation time elapsed so far.
func (s *Scene) Clock() float64 {
	return s.clock
}

// Err returns a rendering error the view cannot recover from by itself (e.g. the lighting
// shader failed to compile), or nil.
func (s *Scene) Err() error {
	return s.reg.Err()
}

// Update runs once per frame with the frame time in seconds. It advances the animation
// clock and, when camera control is allowed, moves the camera with raylib's free camera
// (mouse to look and zoom, WASD to move). The cursor is captured on first use.
func (s *Scene) Update(dt float32) {
	if dt > 0 {
		s.clock += float64(dt)
	}
	if !s.cameraControl {
		return
	}
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	rl.UpdateCamera(&s.Camera, rl.CameraFree)
}

// Draw renders the scene graph. Call after ClearBackground and before any 2D overlay.
// It returns the number of meshes drawn.
func (s *Scene) Draw() int {
	pos := s.Camera.Position
	s.reg.SetView([3]float32{pos.X, pos.Y, pos.Z}, lightDirection)
	rl.BeginMode3D(s.Camera)
	s.root.WalkWorld(scenegraph.Ident4(), s.clock, func(n *scenegraph.Node, world scenegraph.Mat4) {
		if n.Geometry != nil {
			s.reg.Draw(n.Geometry, world)
		}
	})
	rl.EndMode3D()
	return s.reg.Draws()
}

// Unload releases GPU resources held by the scene.
func (s *Scene) Unload() {
	s.reg.Unload()
}

// lightDirection points from the scene toward the key light: high, slightly in front and to the right.
var lightDirection = func() [3]float32 {
	x, y, z := float32(0.4), float32(1), float32(0.6)
	l := math32.Sqrt(x*x + y*y + z*z)
	return [3]float32{x / l, y / l, z / l}
}()
