// Package library ships arpeggio's built-in catalog: the algorithmic
// composition techniques, their reference documentation, and the wiring
// from each technique to the compose generator that previews it.
//
// The catalog is fixed: its contents and order are decided here at
// compile time and never change at runtime.
package library

import (
	"github.com/arpeggio-cli/arpeggio/internal/catalog"
	"github.com/arpeggio-cli/arpeggio/internal/compose"
	"github.com/arpeggio-cli/arpeggio/pkg/jsonutil"
)

// Options tune the generated previews without changing catalog identity.
type Options struct {
	Steps int    // preview length in steps
	Seed  uint64 // seed for stochastic generators
}

// DefaultOptions give a two-bar sixteenth grid.
func DefaultOptions() Options {
	return Options{Steps: 32, Seed: 1}
}

// Technique is one library entry: catalog metadata plus the generator
// that produces its preview pattern.
type Technique struct {
	ID          string
	Name        string
	Category    string
	Description string
	Params      map[string]any

	generate func(opts Options) compose.Pattern
}

// ParamsJSON returns the generator parameters as compact JSON, the form
// the store mirrors.
func (t Technique) ParamsJSON() string {
	return jsonutil.MustMarshal(t.Params)
}

// Pattern generates the technique's preview pattern.
func (t Technique) Pattern(opts Options) compose.Pattern {
	return t.generate(opts)
}

// Items builds the catalog in its curated order, attaching a render
// capability per technique.
func Items(opts Options) []catalog.Item {
	defs := Definitions()
	items := make([]catalog.Item, 0, len(defs))
	for _, def := range defs {
		gen := def.generate
		items = append(items, catalog.Item{
			ID:          def.ID,
			Name:        def.Name,
			Category:    def.Category,
			Description: def.Description,
			Render: catalog.RenderFunc(func(width int) string {
				return compose.RenderGrid(gen(opts), width)
			}),
		})
	}
	return items
}

// Definitions returns the built-in techniques in catalog order.
func Definitions() []Technique {
	return []Technique{
		{
			ID:          "euclid-tresillo",
			Name:        "Euclidean Tresillo",
			Category:    "rhythm",
			Description: descTresillo,
			Params:      map[string]any{"pulses": 3, "steps": 8, "rotation": 0, "pitch": 36},
			generate: func(Options) compose.Pattern {
				return compose.Euclid(3, 8, 0, 36)
			},
		},
		{
			ID:          "euclid-cinquillo",
			Name:        "Euclidean Cinquillo",
			Category:    "rhythm",
			Description: descCinquillo,
			Params:      map[string]any{"pulses": 5, "steps": 8, "rotation": 0, "pitch": 38},
			generate: func(Options) compose.Pattern {
				return compose.Euclid(5, 8, 0, 38)
			},
		},
		{
			ID:          "euclid-hats",
			Name:        "Euclidean Hi-Hats",
			Category:    "rhythm",
			Description: descHats,
			Params:      map[string]any{"pulses": 7, "steps": 16, "rotation": 0, "pitch": 42},
			generate: func(Options) compose.Pattern {
				return compose.Euclid(7, 16, 0, 42)
			},
		},
		{
			ID:          "markov-pentatonic",
			Name:        "Markov Pentatonic",
			Category:    "melody",
			Description: descMarkovPenta,
			Params:      map[string]any{"scale": "C minor pentatonic", "order": 1},
			generate: func(opts Options) compose.Pattern {
				return pentatonicChain().Generate(opts.Seed, opts.Steps)
			},
		},
		{
			ID:          "markov-modal",
			Name:        "Markov Modal Drift",
			Category:    "melody",
			Description: descMarkovModal,
			Params:      map[string]any{"scale": "D dorian", "order": 1, "transitions": "uniform"},
			generate: func(opts Options) compose.Pattern {
				return compose.UniformChain(dorianScale()).Generate(opts.Seed, opts.Steps)
			},
		},
		{
			ID:          "random-walk",
			Name:        "Bounded Random Walk",
			Category:    "melody",
			Description: descWalk,
			Params:      map[string]any{"scale": "A natural minor", "max_jump": 2},
			generate: func(opts Options) compose.Pattern {
				cfg := compose.WalkConfig{Scale: minorScale(), Start: 3, MaxJump: 2}
				return compose.RandomWalk(cfg, opts.Seed, opts.Steps)
			},
		},
		{
			ID:          "arp-up",
			Name:        "Arpeggio Up",
			Category:    "harmony",
			Description: descArpUp,
			Params:      map[string]any{"chord": "Cmaj7", "direction": "up"},
			generate: func(opts Options) compose.Pattern {
				return compose.Arpeggiate(cmaj7(), compose.Up, opts.Steps)
			},
		},
		{
			ID:          "arp-updown",
			Name:        "Arpeggio Up-Down",
			Category:    "harmony",
			Description: descArpUpDown,
			Params:      map[string]any{"chord": "Am7", "direction": "updown"},
			generate: func(opts Options) compose.Pattern {
				return compose.Arpeggiate(am7(), compose.UpDown, opts.Steps)
			},
		},
	}
}

// ── Pitch material ──

func pentatonicChain() compose.Chain {
	// C minor pentatonic: C4 Eb4 F4 G4 Bb4. Weighted toward stepwise
	// motion by listing neighbors twice.
	return compose.Chain{
		Start: 60,
		Transitions: map[int][]int{
			60: {63, 63, 65, 67},
			63: {60, 60, 65, 65, 67},
			65: {63, 63, 67, 67, 60},
			67: {65, 65, 70, 63},
			70: {67, 67, 65},
		},
	}
}

func dorianScale() []int {
	return []int{62, 64, 65, 67, 69, 71, 72, 74} // D4..D5 dorian
}

func minorScale() []int {
	return []int{57, 59, 60, 62, 64, 65, 67, 69} // A3..A4 natural minor
}

func cmaj7() []int {
	return []int{60, 64, 67, 71}
}

func am7() []int {
	return []int{57, 60, 64, 67}
}
