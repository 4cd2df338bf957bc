package compose

// Direction controls arpeggiator traversal order.
type Direction int

const (
	Up Direction = iota
	Down
	UpDown
)

// Arpeggiate cycles through the chord tones in the given direction, one
// note per step. UpDown plays the chord up then back down without
// repeating the turnaround tones, the usual hardware-arp convention.
func Arpeggiate(chord []int, dir Direction, steps int) Pattern {
	p := Pattern{Steps: steps}
	if len(chord) == 0 || steps <= 0 {
		return p
	}

	cycle := arpCycle(chord, dir)
	for i := 0; i < steps; i++ {
		p.Notes = append(p.Notes, Note{Pitch: cycle[i%len(cycle)], Step: i, Velocity: DefaultVelocity})
	}
	return p
}

func arpCycle(chord []int, dir Direction) []int {
	switch dir {
	case Down:
		cycle := make([]int, len(chord))
		for i, pch := range chord {
			cycle[len(chord)-1-i] = pch
		}
		return cycle

	case UpDown:
		if len(chord) <= 2 {
			return append([]int(nil), chord...)
		}
		cycle := append([]int(nil), chord...)
		for i := len(chord) - 2; i >= 1; i-- {
			cycle = append(cycle, chord[i])
		}
		return cycle

	default: // Up
		return append([]int(nil), chord...)
	}
}
