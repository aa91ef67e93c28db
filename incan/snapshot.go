package incan

import "github.com/Matthew-w56/incan-gold-cli/card"

type PlayerSnapshot struct {
	Seat         int
	Name         string
	Human        bool
	Camp         int
	Held         int
	Artifacts    int
	InTemple     bool
	LastDecision Decision
}

type Snapshot struct {
	GameID string
	Round  int
	Phase  Phase
	Ended  bool

	DeckRemaining int
	Revealed      []card.Card
	HazardCounts  map[card.HazardKind]int
	PathTreasure  int
	PathArtifacts []card.Card

	Players []PlayerSnapshot
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		GameID:        g.id,
		Round:         g.round,
		Phase:         g.phase,
		Ended:         g.ended,
		DeckRemaining: g.deck.Count(),
		Revealed:      append([]card.Card{}, g.revealed...),
		HazardCounts:  g.hazards.snapshot(),
		PathTreasure:  g.path.carry,
		PathArtifacts: append([]card.Card{}, g.path.artifacts...),
	}
	for _, p := range g.players {
		s.Players = append(s.Players, PlayerSnapshot{
			Seat:         p.Seat,
			Name:         p.Name,
			Human:        p.Human,
			Camp:         p.camp,
			Held:         p.held,
			Artifacts:    p.artifacts,
			InTemple:     p.inTemple,
			LastDecision: p.lastDecision,
		})
	}
	return s
}

// TurnView is the read-only projection a Decider sees at one decision
// point. Every active player's view for a given card is built from the
// same pre-decision state; only the Held/Camp/Artifacts fields differ
// per player.
type TurnView struct {
	Round         int
	DeckRemaining int
	Revealed      []card.Card
	HazardCounts  map[card.HazardKind]int
	PathTreasure  int
	PathArtifacts int

	Held      int
	Camp      int
	Artifacts int

	// ActiveCount includes the deciding player.
	ActiveCount int
}

// HazardKindsSeenOnce counts hazard kinds revealed exactly once so far:
// each such kind has one twin still in play that would bust the round.
func (v TurnView) HazardKindsSeenOnce() int {
	n := 0
	for _, c := range v.HazardCounts {
		if c == 1 {
			n++
		}
	}
	return n
}

// BustChance estimates the probability that the next reveal busts the
// round: armed hazard twins over cards remaining.
func (v TurnView) BustChance() float64 {
	if v.DeckRemaining <= 0 {
		return 0
	}
	return float64(v.HazardKindsSeenOnce()) / float64(v.DeckRemaining)
}

func (g *Game) turnViewLocked(p *Player) TurnView {
	return TurnView{
		Round:         g.round,
		DeckRemaining: g.deck.Count(),
		Revealed:      append([]card.Card{}, g.revealed...),
		HazardCounts:  g.hazards.snapshot(),
		PathTreasure:  g.path.carry,
		PathArtifacts: len(g.path.artifacts),
		Held:          p.held,
		Camp:          p.camp,
		Artifacts:     p.artifacts,
		ActiveCount:   g.countActiveLocked(),
	}
}
