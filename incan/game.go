package incan

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Matthew-w56/incan-gold-cli/card"
)

const defaultDecisionRetries = 3

// Game runs one full expedition: five rounds of reveal / resolve /
// decide / depart, then final scoring. All mutable round state (deck,
// hazard tracker, path ledger, players) is owned by the engine; deciders
// and sinks only ever see read-only projections.
type Game struct {
	cfg Config
	rng *rand.Rand

	mu sync.Mutex
	id string

	players  []*Player
	deciders []Decider

	// round state
	round    int
	phase    Phase
	deck     card.CardList
	revealed card.CardList
	hazards  *hazardTracker
	path     pathLedger

	eventSeq uint64
	sink     EventSink

	started bool
	ended   bool

	report *FinalReport
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Rounds == 0 {
		cfg.Rounds = DefaultRounds
	}
	if cfg.DecisionRetries == 0 {
		cfg.DecisionRetries = defaultDecisionRetries
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		id:      uuid.NewString(),
		hazards: newHazardTracker(),
		phase:   PhaseRoundStart,
	}
	return g, nil
}

func (g *Game) ID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

// AddPlayer seats a player before the game starts. Seats are assigned
// in join order.
func (g *Game) AddPlayer(name string, human bool, decider Decider) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		return ErrGameInProgress
	}
	if len(g.players) >= MaxPlayers {
		return ErrTableFull
	}
	if name == "" {
		return fmt.Errorf("empty player name")
	}
	if decider == nil {
		return fmt.Errorf("player %q has no decider", name)
	}
	g.players = append(g.players, &Player{
		Seat:     len(g.players),
		Name:     name,
		Human:    human,
		inTemple: false,
	})
	g.deciders = append(g.deciders, decider)
	return nil
}

// Subscribe attaches an event sink. Only valid before Run.
func (g *Game) Subscribe(s EventSink) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		return ErrGameInProgress
	}
	if s == nil {
		return nil
	}
	if g.sink == nil {
		g.sink = s
		return nil
	}
	g.sink = MultiSink(g.sink, s)
	return nil
}

// Run plays the full expedition synchronously and returns the final
// ranked report. Human prompts block the loop; no engine method may be
// called from inside a Decider or EventSink.
func (g *Game) Run() (*FinalReport, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ended {
		return nil, ErrGameEnded
	}
	if g.started {
		return nil, ErrGameInProgress
	}
	if len(g.players) < MinPlayers {
		return nil, fmt.Errorf("%w: %d < %d", ErrTooFewPlayers, len(g.players), MinPlayers)
	}
	g.started = true

	for r := 1; r <= g.cfg.Rounds; r++ {
		if err := g.playRoundLocked(r); err != nil {
			return nil, err
		}
	}

	g.phase = PhaseGameEnd
	g.ended = true
	g.report = g.buildReportLocked()
	g.emit(Event{Type: EventGameEnded, Report: g.report})
	return g.report, nil
}

func (g *Game) playRoundLocked(round int) error {
	g.round = round
	g.phase = PhaseRoundStart
	g.buildRoundDeckLocked(round)
	g.revealed = nil
	g.hazards.reset()
	g.path.reset()
	for _, p := range g.players {
		p.ResetForRound()
	}
	g.emit(Event{
		Type:          EventRoundStarted,
		DeckRemaining: g.deck.Count(),
		ActiveCount:   g.countActiveLocked(),
	})

	for {
		if g.countActiveLocked() == 0 {
			break
		}
		if g.deck.Count() == 0 {
			// Natural exhaustion: survivors bank their haul, no penalty.
			g.emit(Event{Type: EventDeckExhausted, ActiveCount: g.countActiveLocked()})
			for _, p := range g.players {
				if !p.inTemple {
					continue
				}
				banked := p.bankHeld()
				g.emit(Event{Type: EventTreasureBanked, Player: p.Name, Amount: banked})
			}
			break
		}

		g.phase = PhaseRevealing
		c := g.deck.PopCard()
		g.revealed.Add(c)
		g.emit(Event{Type: EventCardRevealed, Card: c, DeckRemaining: g.deck.Count()})

		g.phase = PhaseResolving
		bust, err := g.resolveCardLocked(c)
		if err != nil {
			return err
		}
		if bust {
			// No decision collection follows a bust.
			break
		}

		g.phase = PhaseDeciding
		decisions, err := g.collectDecisionsLocked()
		if err != nil {
			return err
		}

		g.phase = PhaseDepartures
		g.processDeparturesLocked(decisions)
	}

	g.phase = PhaseRoundEnd
	g.emit(Event{Type: EventRoundEnded, ActiveCount: g.countActiveLocked()})
	return nil
}

func (g *Game) buildRoundDeckLocked(round int) {
	if len(g.cfg.DeckOverride) >= round {
		g.deck.Init(g.cfg.DeckOverride[round-1])
		return
	}
	g.deck.Init(card.BuildDeck(round))
	g.deck.Shuffle(g.rng)
}

func (g *Game) countActiveLocked() int {
	n := 0
	for _, p := range g.players {
		if p.inTemple {
			n++
		}
	}
	return n
}

func (g *Game) resolveCardLocked(c card.Card) (bust bool, err error) {
	switch c.Kind() {
	case card.KindTreasure:
		active := g.countActiveLocked()
		share := g.path.addTreasure(c.Value(), active)
		for _, p := range g.players {
			if p.inTemple {
				p.addHeld(share)
			}
		}
		g.emit(Event{
			Type:        EventTreasureSplit,
			Card:        c,
			Amount:      share,
			Carry:       g.path.carry,
			ActiveCount: active,
		})
		return false, nil

	case card.KindArtifact:
		g.path.depositArtifact(c)
		g.emit(Event{Type: EventArtifactDeposited, Card: c, Artifacts: len(g.path.artifacts)})
		return false, nil

	case card.KindHazard:
		kind := c.Hazard()
		triggered := g.hazards.record(kind)
		g.emit(Event{
			Type:        EventHazardWarning,
			Card:        c,
			Hazard:      kind.String(),
			HazardCount: g.hazards.count(kind),
		})
		if !triggered {
			return false, nil
		}
		// Second occurrence: everyone still inside loses the round.
		for _, p := range g.players {
			if p.inTemple {
				p.loseHeld()
			}
		}
		g.emit(Event{Type: EventHazardBust, Card: c, Hazard: kind.String()})
		return true, nil
	}

	return false, fmt.Errorf("%w: 0x%02x", ErrMalformedCard, byte(c))
}

// collectDecisionsLocked gathers one decision per active player, all
// computed from the same pre-decision state: no player's view reflects
// another's decision on the current card. Decisions are indexed by seat.
func (g *Game) collectDecisionsLocked() ([]Decision, error) {
	decisions := make([]Decision, len(g.players))
	for i, p := range g.players {
		if !p.inTemple {
			continue
		}
		d, err := g.askLocked(g.deciders[i], p)
		if err != nil {
			return nil, err
		}
		decisions[i] = d
	}

	// Outcomes are announced only after the whole batch is collected.
	for i, p := range g.players {
		if !p.inTemple {
			continue
		}
		p.setDecision(decisions[i])
		g.emit(Event{
			Type:     EventDecisionMade,
			Player:   p.Name,
			Decision: DecisionDictionary[decisions[i]],
		})
	}
	return decisions, nil
}

// askLocked invokes one decider, re-prompting on failure or an invalid
// answer. Recovery never mutates engine state; after the retry budget
// the player is treated as leaving.
func (g *Game) askLocked(decider Decider, p *Player) (Decision, error) {
	view := g.turnViewLocked(p)
	for attempt := 0; attempt < g.cfg.DecisionRetries; attempt++ {
		d, err := decider.Decide(view)
		if err != nil {
			if errors.Is(err, ErrGameAborted) {
				return DecisionNone, err
			}
			continue
		}
		if d == DecisionContinue || d == DecisionLeave {
			return d, nil
		}
	}
	return DecisionLeave, nil
}

func (g *Game) processDeparturesLocked(decisions []Decision) {
	leavers := make([]*Player, 0, len(g.players))
	for i, p := range g.players {
		if p.inTemple && decisions[i] == DecisionLeave {
			leavers = append(leavers, p)
		}
	}
	if len(leavers) == 0 {
		return
	}

	// A lone departer sweeps the path; simultaneous departures leave
	// the unclaimed pools untouched.
	if len(leavers) == 1 {
		loot, artifacts := g.path.claimAll()
		if loot > 0 || len(artifacts) > 0 {
			leavers[0].addHeld(loot)
			leavers[0].addArtifacts(len(artifacts))
			g.emit(Event{
				Type:      EventSpoilsClaimed,
				Player:    leavers[0].Name,
				Amount:    loot,
				Artifacts: len(artifacts),
			})
		}
	}

	for _, p := range leavers {
		banked := p.bankHeld()
		g.emit(Event{
			Type:      EventPlayerDeparted,
			Player:    p.Name,
			Amount:    banked,
			Artifacts: p.artifacts,
		})
	}
}
