package compose

// EuclidOnsets distributes pulses as evenly as possible across steps and
// returns the onset mask. This is the classic euclidean rhythm: position
// i carries an onset iff (i*pulses) mod steps < pulses, which yields the
// same necklace as Bjorklund's algorithm. Rotation shifts the mask left.
func EuclidOnsets(pulses, steps, rotation int) []bool {
	if steps <= 0 {
		return nil
	}
	if pulses < 0 {
		pulses = 0
	}
	if pulses > steps {
		pulses = steps
	}

	mask := make([]bool, steps)
	for i := 0; i < steps; i++ {
		mask[i] = (i*pulses)%steps < pulses
	}

	if rotation != 0 {
		rotated := make([]bool, steps)
		for i := range mask {
			rotated[i] = mask[((i+rotation)%steps+steps)%steps]
		}
		mask = rotated
	}
	return mask
}

// Euclid builds a single-pitch rhythm pattern from a euclidean onset mask.
func Euclid(pulses, steps, rotation, pitch int) Pattern {
	mask := EuclidOnsets(pulses, steps, rotation)
	p := Pattern{Steps: len(mask)}
	for i, on := range mask {
		if on {
			p.Notes = append(p.Notes, Note{Pitch: pitch, Step: i, Velocity: DefaultVelocity})
		}
	}
	return p
}
