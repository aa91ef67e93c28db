package replay

import (
	"strings"

	"github.com/Matthew-w56/incan-gold-cli/card"
	"github.com/Matthew-w56/incan-gold-cli/incan"
	"github.com/Matthew-w56/incan-gold-cli/incan/npc"
)

// Generate plays the scripted expedition and records its event tape.
func Generate(spec GameSpec) (*Tape, error) {
	if len(spec.Seats) == 0 {
		return nil, errSpec("at least one seat is required")
	}
	if spec.Seed == 0 && len(spec.Decks) == 0 {
		return nil, errSpec("a seed or forced decks are required for a reproducible tape")
	}

	override, err := parseDecks(spec.Decks)
	if err != nil {
		return nil, err
	}

	game, err := incan.NewGame(incan.Config{
		Rounds:       spec.Rounds,
		Seed:         spec.Seed,
		DeckOverride: override,
	})
	if err != nil {
		return nil, &ReplayError{Reason: "engine_init_failed", Message: err.Error()}
	}

	registry := npc.NewRegistry()
	for i, seat := range spec.Seats {
		decider, err := seatDecider(registry, seat, spec.Seed+int64(i))
		if err != nil {
			return nil, err
		}
		if err := game.AddPlayer(seat.Name, false, decider); err != nil {
			return nil, &ReplayError{Reason: "seat_init_failed", Message: err.Error()}
		}
	}

	tape := &Tape{TapeVersion: tapeVersion, GameID: game.ID()}
	if err := game.Subscribe(incan.EventSinkFunc(func(e incan.Event) {
		tape.Events = append(tape.Events, e)
	})); err != nil {
		return nil, &ReplayError{Reason: "subscribe_failed", Message: err.Error()}
	}

	report, err := game.Run()
	if err != nil {
		return nil, &ReplayError{Reason: "run_failed", Message: err.Error()}
	}
	tape.Report = report
	return tape, nil
}

func parseDecks(raw [][]string) ([][]card.Card, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([][]card.Card, 0, len(raw))
	for round, names := range raw {
		deck := make([]card.Card, 0, len(names))
		for _, name := range names {
			c, err := card.ParseCard(name)
			if err != nil {
				return nil, errSpec("round %d: %v", round+1, err)
			}
			deck = append(deck, c)
		}
		out = append(out, deck)
	}
	return out, nil
}

func seatDecider(registry *npc.Registry, seat SeatSpec, seed int64) (incan.Decider, error) {
	if seat.Persona != "" {
		persona := registry.Get(seat.Persona)
		if persona == nil {
			return nil, errSpec("unknown persona %q for seat %s", seat.Persona, seat.Name)
		}
		brain, err := npc.NewBrain(persona, seed)
		if err != nil {
			return nil, errSpec("seat %s: %v", seat.Name, err)
		}
		return brain, nil
	}
	return newScriptDecider(seat.Name, seat.Script)
}

// scriptDecider replays a fixed answer list, one per decision point.
type scriptDecider struct {
	label   string
	answers []incan.Decision
	next    int
}

func newScriptDecider(label string, script []string) (*scriptDecider, error) {
	answers := make([]incan.Decision, 0, len(script))
	for i, raw := range script {
		switch strings.ToUpper(strings.TrimSpace(raw)) {
		case "CONTINUE", "C":
			answers = append(answers, incan.DecisionContinue)
		case "LEAVE", "L":
			answers = append(answers, incan.DecisionLeave)
		default:
			return nil, errSpec("seat %s: unsupported scripted decision %q at step %d", label, raw, i)
		}
	}
	return &scriptDecider{label: label, answers: answers}, nil
}

func (s *scriptDecider) Name() string { return s.label }

func (s *scriptDecider) Decide(incan.TurnView) (incan.Decision, error) {
	if s.next >= len(s.answers) {
		return incan.DecisionLeave, nil
	}
	d := s.answers[s.next]
	s.next++
	return d, nil
}
