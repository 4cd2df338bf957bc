// Package compose implements the note model and the pattern generators
// behind arpeggio's technique previews.
//
// Every generator is deterministic: the same parameters and seed always
// produce the same Pattern. Pitches are MIDI note numbers.
package compose

import (
	"fmt"
	"sort"
	"strings"
)

// Note is a single onset within a pattern.
type Note struct {
	Pitch    int `json:"pitch"` // MIDI note number
	Step     int `json:"step"`  // onset position, 0-based
	Velocity int `json:"velocity"`
}

// Pattern is an ordered sequence of notes over a fixed number of steps.
type Pattern struct {
	Steps int    `json:"steps"`
	Notes []Note `json:"notes"`
}

// DefaultVelocity is used by generators that do not vary dynamics.
const DefaultVelocity = 96

var pitchNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchName renders a MIDI note number as scientific pitch notation,
// e.g. 60 -> "C4".
func PitchName(midi int) string {
	if midi < 0 || midi > 127 {
		return fmt.Sprintf("?%d", midi)
	}
	return fmt.Sprintf("%s%d", pitchNames[midi%12], midi/12-1)
}

// RenderGrid draws a pattern as a step grid, one row per distinct pitch,
// highest pitch on top. Cells are two characters wide; the grid is
// truncated to fit the given width.
func RenderGrid(p Pattern, width int) string {
	if p.Steps == 0 {
		return "(empty pattern)"
	}

	onsets := make(map[int]map[int]bool) // pitch -> step set
	for _, n := range p.Notes {
		if onsets[n.Pitch] == nil {
			onsets[n.Pitch] = make(map[int]bool)
		}
		onsets[n.Pitch][n.Step] = true
	}

	pitches := make([]int, 0, len(onsets))
	for pch := range onsets {
		pitches = append(pitches, pch)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pitches)))

	const labelWidth = 5
	maxSteps := p.Steps
	if width > labelWidth {
		if fit := (width - labelWidth) / 2; fit < maxSteps {
			maxSteps = fit
		}
	}
	if maxSteps < 1 {
		maxSteps = 1
	}

	var b strings.Builder
	for _, pch := range pitches {
		b.WriteString(fmt.Sprintf("%-*s", labelWidth, PitchName(pch)))
		for step := 0; step < maxSteps; step++ {
			if onsets[pch][step] {
				b.WriteString("■ ")
			} else {
				b.WriteString("· ")
			}
		}
		b.WriteString("\n")
	}

	// Beat ruler under the grid, marking every fourth step.
	b.WriteString(strings.Repeat(" ", labelWidth))
	for step := 0; step < maxSteps; step++ {
		if step%4 == 0 {
			b.WriteString(fmt.Sprintf("%-2d", step/4+1))
		} else {
			b.WriteString("  ")
		}
	}
	return strings.TrimRight(b.String(), " ")
}
