package compose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onsetString(mask []bool) string {
	var b strings.Builder
	for _, on := range mask {
		if on {
			b.WriteByte('x')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func TestEuclidKnownRhythms(t *testing.T) {
	tests := []struct {
		name           string
		pulses, steps  int
		want           string
	}{
		{"tresillo", 3, 8, "x..x..x."},
		{"cinquillo necklace", 5, 8, "x.x.xx.x"},
		{"four on the floor", 4, 16, "x...x...x...x..."},
		{"all pulses", 8, 8, "xxxxxxxx"},
		{"no pulses", 0, 8, "........"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := onsetString(EuclidOnsets(tt.pulses, tt.steps, 0))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEuclidRotationPreservesPulseCount(t *testing.T) {
	for rot := -8; rot <= 8; rot++ {
		mask := EuclidOnsets(3, 8, rot)
		count := 0
		for _, on := range mask {
			if on {
				count++
			}
		}
		assert.Equal(t, 3, count, "rotation %d", rot)
	}
	// Full rotation is the identity.
	assert.Equal(t, EuclidOnsets(3, 8, 0), EuclidOnsets(3, 8, 8))
}

func TestEuclidPatternNotes(t *testing.T) {
	p := Euclid(3, 8, 0, 36)
	assert.Equal(t, 8, p.Steps)
	require.Len(t, p.Notes, 3)
	assert.Equal(t, []int{0, 3, 6}, []int{p.Notes[0].Step, p.Notes[1].Step, p.Notes[2].Step})
	for _, n := range p.Notes {
		assert.Equal(t, 36, n.Pitch)
		assert.Equal(t, DefaultVelocity, n.Velocity)
	}
}

func TestMarkovDeterministicPerSeed(t *testing.T) {
	chain := UniformChain([]int{60, 62, 64, 67, 69})

	a := chain.Generate(42, 32)
	b := chain.Generate(42, 32)
	c := chain.Generate(43, 32)

	assert.Equal(t, a, b, "same seed must reproduce the walk")
	assert.NotEqual(t, a, c, "different seeds should diverge")
	require.Len(t, a.Notes, 32)
	assert.Equal(t, 60, a.Notes[0].Pitch, "walk starts at the chain start pitch")
}

func TestMarkovStaysOnChain(t *testing.T) {
	chain := Chain{
		Start: 60,
		Transitions: map[int][]int{
			60: {64},
			64: {67},
			67: {60},
		},
	}
	p := chain.Generate(7, 9)
	want := []int{60, 64, 67, 60, 64, 67, 60, 64, 67}
	for i, n := range p.Notes {
		assert.Equal(t, want[i], n.Pitch, "step %d", i)
		assert.Equal(t, i, n.Step)
	}
}

func TestMarkovTerminalPitchRepeats(t *testing.T) {
	chain := Chain{Start: 60, Transitions: map[int][]int{}}
	p := chain.Generate(1, 4)
	for _, n := range p.Notes {
		assert.Equal(t, 60, n.Pitch)
	}
}

func TestRandomWalkStaysInScale(t *testing.T) {
	scale := []int{57, 60, 62, 64, 67, 69, 72}
	inScale := make(map[int]bool, len(scale))
	for _, pch := range scale {
		inScale[pch] = true
	}

	cfg := WalkConfig{Scale: scale, Start: 3, MaxJump: 2}
	p := RandomWalk(cfg, 99, 64)
	require.Len(t, p.Notes, 64)
	for _, n := range p.Notes {
		assert.True(t, inScale[n.Pitch], "pitch %d escaped the scale", n.Pitch)
	}

	assert.Equal(t, p, RandomWalk(cfg, 99, 64))
}

func TestArpeggiateDirections(t *testing.T) {
	chord := []int{60, 64, 67, 72} // Cmaj add octave

	pitches := func(p Pattern) []int {
		out := make([]int, len(p.Notes))
		for i, n := range p.Notes {
			out[i] = n.Pitch
		}
		return out
	}

	assert.Equal(t, []int{60, 64, 67, 72, 60, 64}, pitches(Arpeggiate(chord, Up, 6)))
	assert.Equal(t, []int{72, 67, 64, 60, 72, 67}, pitches(Arpeggiate(chord, Down, 6)))
	// Up-down cycle: 60 64 67 72 67 64, then wraps.
	assert.Equal(t, []int{60, 64, 67, 72, 67, 64, 60, 64}, pitches(Arpeggiate(chord, UpDown, 8)))
}

func TestPitchName(t *testing.T) {
	assert.Equal(t, "C4", PitchName(60))
	assert.Equal(t, "A4", PitchName(69))
	assert.Equal(t, "F#3", PitchName(54))
	assert.Equal(t, "C-1", PitchName(0))
	assert.Equal(t, "?128", PitchName(128))
}

func TestRenderGrid(t *testing.T) {
	p := Euclid(3, 8, 0, 36)
	grid := RenderGrid(p, 80)

	assert.Contains(t, grid, "C1")
	assert.Contains(t, grid, "■")
	assert.Contains(t, grid, "·")

	// Narrow widths truncate rather than overflow.
	for _, line := range strings.Split(RenderGrid(p, 12), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 13)
	}

	assert.Equal(t, "(empty pattern)", RenderGrid(Pattern{}, 80))
}
