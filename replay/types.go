package replay

import "github.com/Matthew-w56/incan-gold-cli/incan"

const tapeVersion = 1

// GameSpec describes a fully scripted, reproducible expedition: seeded
// AI seats and/or per-seat decision scripts, optionally with forced
// per-round reveal orders.
type GameSpec struct {
	Seed   int64      `json:"seed"`
	Rounds int        `json:"rounds,omitempty"`
	Seats  []SeatSpec `json:"seats"`

	// Decks forces the reveal order per round; card strings use the
	// ParseCard format ("t7", "a5", "snake"). When absent, decks are
	// built and shuffled from Seed.
	Decks [][]string `json:"decks,omitempty"`
}

type SeatSpec struct {
	Name string `json:"name"`

	// Persona selects a registry brain for this seat. Empty means the
	// seat plays from Script.
	Persona string `json:"persona,omitempty"`

	// Script is a sequence of "continue"/"leave" answers consumed one
	// per decision point; an exhausted script keeps answering "leave".
	Script []string `json:"script,omitempty"`
}

// Tape is the recorded event stream of one expedition. Identical specs
// always produce identical tapes.
type Tape struct {
	TapeVersion int                `json:"tapeVersion"`
	GameID      string             `json:"gameId"`
	Events      []incan.Event      `json:"events"`
	Report      *incan.FinalReport `json:"report"`
}
