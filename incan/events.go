package incan

import "github.com/Matthew-w56/incan-gold-cli/card"

type EventType string

const (
	EventRoundStarted      EventType = "round_started"
	EventCardRevealed      EventType = "card_revealed"
	EventTreasureSplit     EventType = "treasure_split"
	EventArtifactDeposited EventType = "artifact_deposited"
	EventHazardWarning     EventType = "hazard_warning"
	EventHazardBust        EventType = "hazard_bust"
	EventDecisionMade      EventType = "decision_made"
	EventSpoilsClaimed     EventType = "spoils_claimed"
	EventPlayerDeparted    EventType = "player_departed"
	EventDeckExhausted     EventType = "deck_exhausted"
	EventTreasureBanked    EventType = "treasure_banked"
	EventRoundEnded        EventType = "round_ended"
	EventGameEnded         EventType = "game_ended"
)

// Event is one entry of the engine's ordered notification stream.
// Renderers, the spectator gateway and the replay tape consume it;
// the engine never depends on a sink being attached.
type Event struct {
	Type  EventType `json:"type"`
	Seq   uint64    `json:"seq"`
	Round int       `json:"round"`

	Card        card.Card `json:"card,omitempty"`
	Hazard      string    `json:"hazard,omitempty"`
	HazardCount int       `json:"hazardCount,omitempty"`

	Player   string `json:"player,omitempty"`
	Decision string `json:"decision,omitempty"`

	// Amount is the per-player share for treasure_split, the claimed
	// treasure for spoils_claimed and the banked total for
	// player_departed / treasure_banked.
	Amount    int `json:"amount,omitempty"`
	Carry     int `json:"carry,omitempty"`
	Artifacts int `json:"artifacts,omitempty"`

	DeckRemaining int `json:"deckRemaining,omitempty"`
	ActiveCount   int `json:"activeCount,omitempty"`

	Report *FinalReport `json:"report,omitempty"`
}

// EventSink receives engine events in emission order. OnEvent is called
// synchronously from the round loop and must not call back into the
// engine.
type EventSink interface {
	OnEvent(Event)
}

type EventSinkFunc func(Event)

func (f EventSinkFunc) OnEvent(e Event) { f(e) }

type multiSink []EventSink

func (m multiSink) OnEvent(e Event) {
	for _, s := range m {
		s.OnEvent(e)
	}
}

// MultiSink fans events out to every non-nil sink.
func MultiSink(sinks ...EventSink) EventSink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (g *Game) emit(e Event) {
	if g.sink == nil {
		return
	}
	g.eventSeq++
	e.Seq = g.eventSeq
	e.Round = g.round
	g.sink.OnEvent(e)
}
