package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"ar-campus/internal/scenegraph"
)

// toMatrix converts a column-major scene-graph matrix to raylib's layout (also column-major).
func toMatrix(m scenegraph.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
