package library

// Reference documentation per technique, rendered as markdown in the
// detail pane.

const descTresillo = `Distributes **3 pulses** as evenly as possible across **8 steps**,
producing the tresillo (3-3-2) figure that underpins much of Afro-Cuban
and electronic music.

## How it works

The euclidean rhythm E(k, n) spaces k onsets over n steps so the gaps
between onsets differ by at most one. E(3, 8) yields:

    x . . x . . x .

## Usage notes

- Rotate the pattern to move the downbeat without changing its feel.
- Layer against a straight four-on-the-floor kick for classic syncopation.
`

const descCinquillo = `E(5, 8): **5 pulses over 8 steps**, the cinquillo necklace heard in
habanera, danzón and ragtime.

## How it works

With more pulses than gaps, the euclidean spacing inverts the tresillo:
rests, not onsets, are what gets distributed evenly.

## Usage notes

- Works well on snare or rim against a tresillo kick.
- All rotations of the necklace are equally valid starting points.
`

const descHats = `E(7, 16) puts **7 hi-hat onsets over a 16-step bar**, a staple of broken
beat and UK garage programming.

## How it works

Seven does not divide sixteen, so the euclidean distribution alternates
two- and three-step gaps, giving the line its limp.

## Usage notes

- Try rotating by one or two steps each bar for evolving top lines.
- Pair with E(3, 8) or E(5, 8) low-end patterns.
`

const descMarkovPenta = `A **first-order markov chain** over the C minor pentatonic scale. Each
pitch carries its own transition list; the melody is a weighted walk
through those lists.

## How it works

From the current pitch the generator picks the next uniformly from the
pitch's transition list. Listing a neighbor twice doubles its odds, which
is how this chain favors stepwise motion.

## Usage notes

- The seed fully determines the melody; change it to audition variations.
- Sparser transition lists give more idiomatic, less wandering lines.
`

const descMarkovModal = `A markov chain with **uniform transitions** over D dorian: from any
scale tone, every other tone is equally likely.

## How it works

Uniform transitions are the degenerate chain, melodically closer to
shuffling the scale than to composing with it. The entry exists as the
baseline against which weighted chains are heard.

## Usage notes

- Compare with Markov Pentatonic at the same seed to hear what
  transition weighting buys.
`

const descWalk = `A **bounded random walk** over A natural minor. Each step moves at most
two scale degrees up or down, clamped at the scale boundaries.

## How it works

Small moves dominate and the line never leaps more than a third, so the
contour stays singable even though the walk is random.

## Usage notes

- Widen max_jump for more angular lines.
- Clamping at the boundaries creates natural phrase turnarounds.
`

const descArpUp = `Cycles **Cmaj7 tones bottom to top**, one per step, wrapping at the
octave. The plainest arpeggiator setting and the backbone of countless
sequenced lines.

## How it works

The chord is traversed in order and repeats. Against a 16-step grid a
4-note chord phases every bar, which is the pattern's pulse.

## Usage notes

- Chord voicing is the whole sound: re-voice rather than re-program.
- Odd chord sizes against even step counts produce polymetric phasing.
`

const descArpUpDown = `Plays **Am7 up then back down** without repeating the top and bottom
tones, the standard hardware arpeggiator up-down mode.

## How it works

A 4-note chord yields a 6-step cycle (up 4, down the 2 inner tones), so
the figure phases against a 16-step grid every three bars.

## Usage notes

- The turnaround tones land on shifting beats; accent them for motion.
- Compare with Arpeggio Up at the same tempo to hear the cycle length.
`
