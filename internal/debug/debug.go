package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	statsFontSize   = 20
	statsPadding    = 12
	statsLineHeight = statsFontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats are the per-frame figures shown by the statistics overlay.
type Stats struct {
	Nodes  int // nodes in the scene graph
	Draws  int // meshes drawn this frame
	Paused bool
}

// Debug draws the statistics overlay (FPS, scene size, heap) in the top-left corner.
// Hidden unless ShowStatistics is set.
type Debug struct {
	ShowStatistics bool
	frameCount     uint32
	lines          []string
	memStats       runtime.MemStats
}

// New returns a Debug overlay, shown when show is true.
func New(show bool) *Debug {
	return &Debug{ShowStatistics: show}
}

// Draw renders the overlay with the given stats. Call after the scene in the draw loop.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(st Stats) {
	if !d.ShowStatistics {
		return
	}
	d.frameCount++
	if d.frameCount%updateInterval == 1 || d.lines == nil {
		runtime.ReadMemStats(&d.memStats)
		d.lines = append(d.lines[:0],
			fmt.Sprintf("FPS: %d", rl.GetFPS()),
			fmt.Sprintf("Nodes: %d  Draws: %d", st.Nodes, st.Draws),
			fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024)),
		)
	}
	y := int32(statsPadding)
	for _, line := range d.lines {
		rl.DrawText(line, statsPadding, y, statsFontSize, rl.Green)
		y += statsLineHeight
	}
	if st.Paused {
		rl.DrawText("Session paused", statsPadding, y, statsFontSize, rl.Orange)
	}
}
