package incan

import (
	"fmt"

	"github.com/Matthew-w56/incan-gold-cli/card"
)

type Config struct {
	// Rounds in the expedition (0 => DefaultRounds).
	Rounds int

	// DecisionRetries bounds re-prompts after a failed or invalid
	// decision before the engine falls back to LEAVE (0 => 3).
	DecisionRetries int

	// RNG seed (0 => time-based)
	Seed int64

	// DeckOverride forces the reveal order per round (front card first),
	// bypassing deck building and shuffling for the rounds it covers.
	// Used by tests and the replayer.
	DeckOverride [][]card.Card
}

func (c Config) validate() error {
	if c.Rounds < 0 {
		return fmt.Errorf("Rounds must be >= 0")
	}
	if c.DecisionRetries < 0 {
		return fmt.Errorf("DecisionRetries must be >= 0")
	}
	if len(c.DeckOverride) > 0 {
		for i, deck := range c.DeckOverride {
			for _, cc := range deck {
				if cc.Kind() == card.KindInvalid {
					return fmt.Errorf("deck override round %d contains invalid card 0x%02x", i+1, byte(cc))
				}
			}
		}
	}
	return nil
}
