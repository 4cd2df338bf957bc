package compose

import "math/rand/v2"

// WalkConfig parametrizes a bounded random walk over a scale.
type WalkConfig struct {
	Scale   []int // pitches, low to high
	Start   int   // starting index into Scale
	MaxJump int   // largest index move per step, >= 1
}

// RandomWalk moves through the scale one step at a time, clamping at the
// scale boundaries. Same seed, same walk.
func RandomWalk(cfg WalkConfig, seed uint64, steps int) Pattern {
	if len(cfg.Scale) == 0 || steps <= 0 {
		return Pattern{Steps: steps}
	}
	jump := cfg.MaxJump
	if jump < 1 {
		jump = 1
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	pos := cfg.Start
	if pos < 0 {
		pos = 0
	}
	if pos >= len(cfg.Scale) {
		pos = len(cfg.Scale) - 1
	}

	p := Pattern{Steps: steps}
	for i := 0; i < steps; i++ {
		p.Notes = append(p.Notes, Note{Pitch: cfg.Scale[pos], Step: i, Velocity: DefaultVelocity})

		// Move in [-jump, +jump], clamped to the scale.
		pos += rng.IntN(2*jump+1) - jump
		if pos < 0 {
			pos = 0
		}
		if pos >= len(cfg.Scale) {
			pos = len(cfg.Scale) - 1
		}
	}
	return p
}
