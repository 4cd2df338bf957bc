package compose

import (
	"math/rand/v2"
	"sort"
)

// Chain is a first-order markov chain over a pitch set. Transitions map
// each pitch to the pitches it may move to; unlisted pitches are
// terminal and repeat themselves.
type Chain struct {
	Start       int
	Transitions map[int][]int
}

// Generate walks the chain for the given number of steps, placing one
// note per step. The walk is fully determined by the seed.
func (c Chain) Generate(seed uint64, steps int) Pattern {
	rng := rand.New(rand.NewPCG(seed, seed))

	p := Pattern{Steps: steps}
	pitch := c.Start
	for i := 0; i < steps; i++ {
		p.Notes = append(p.Notes, Note{Pitch: pitch, Step: i, Velocity: DefaultVelocity})

		next := c.Transitions[pitch]
		if len(next) == 0 {
			continue
		}
		pitch = next[rng.IntN(len(next))]
	}
	return p
}

// UniformChain builds a chain where every pitch in the scale may move to
// any other with equal probability. Useful as a library default; custom
// transition tables give a technique its character.
func UniformChain(scale []int) Chain {
	sorted := append([]int(nil), scale...)
	sort.Ints(sorted)

	t := make(map[int][]int, len(sorted))
	for _, from := range sorted {
		for _, to := range sorted {
			if to != from {
				t[from] = append(t[from], to)
			}
		}
	}
	start := 0
	if len(sorted) > 0 {
		start = sorted[0]
	}
	return Chain{Start: start, Transitions: t}
}
