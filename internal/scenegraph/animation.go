package scenegraph

import "math"

// Animation rotates a node by Delta (radians about x, y, z) over Duration seconds.
// When Forever is set the rotation keeps accumulating, one Delta per Duration.
type Animation struct {
	Delta    Vec3
	Duration float32
	Forever  bool
}

// RotateBy returns a one-shot rotation animation.
func RotateBy(x, y, z, duration float32) *Animation {
	return &Animation{Delta: Vec3{x, y, z}, Duration: duration}
}

// RepeatForever marks a as repeating and returns it.
func (a *Animation) RepeatForever() *Animation {
	a.Forever = true
	return a
}

// turnEpsilon is how close, in turns, a delta must be to a whole number of turns to count as one.
const turnEpsilon = 1e-6

// At returns the rotation accumulated t seconds after the animation started.
// A one-shot animation holds at Delta once it completes. A repeating one is reduced to
// (-2π, 2π) per axis; an axis whose Delta is a whole number of turns restarts exactly
// every Duration, so the angle does not drift however long it runs.
func (a *Animation) At(t float64) Vec3 {
	if t <= 0 {
		return Vec3{}
	}
	if a.Duration <= 0 {
		return a.Delta
	}
	f := t / float64(a.Duration)
	if !a.Forever {
		return a.Delta.Scaled(float32(math.Min(f, 1)))
	}
	whole, frac := math.Modf(f)
	var out Vec3
	for i, d := range a.Delta {
		delta := float64(d)
		turns := delta / (2 * math.Pi)
		var angle float64
		if math.Abs(turns-math.Round(turns)) < turnEpsilon {
			angle = delta * frac
		} else {
			angle = math.Mod(delta*whole, 2*math.Pi) + delta*frac
		}
		out[i] = float32(math.Mod(angle, 2*math.Pi))
	}
	return out
}
