package incan

import "github.com/Matthew-w56/incan-gold-cli/card"

// hazardTracker counts hazard reveals per kind within the current round.
type hazardTracker struct {
	counts map[card.HazardKind]int
}

func newHazardTracker() *hazardTracker {
	return &hazardTracker{counts: make(map[card.HazardKind]int)}
}

func (t *hazardTracker) reset() {
	t.counts = make(map[card.HazardKind]int)
}

// record increments the count for kind and reports whether this reveal
// is the second occurrence this round (the bust condition). Only the
// first two occurrences matter; later ones have no further effect.
func (t *hazardTracker) record(kind card.HazardKind) bool {
	t.counts[kind]++
	return t.counts[kind] == 2
}

func (t *hazardTracker) count(kind card.HazardKind) int {
	return t.counts[kind]
}

// kindsSeenOnce returns how many hazard kinds sit at exactly one
// occurrence, i.e. how many distinct cards left in play would bust.
func (t *hazardTracker) kindsSeenOnce() int {
	n := 0
	for _, c := range t.counts {
		if c == 1 {
			n++
		}
	}
	return n
}

func (t *hazardTracker) snapshot() map[card.HazardKind]int {
	out := make(map[card.HazardKind]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}
