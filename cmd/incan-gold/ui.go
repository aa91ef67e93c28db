package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Matthew-w56/incan-gold-cli/card"
	"github.com/Matthew-w56/incan-gold-cli/incan"
)

// Renderer narrates engine events to the terminal. It implements
// incan.EventSink and is called synchronously from the round loop.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) OnEvent(e incan.Event) {
	switch e.Type {
	case incan.EventRoundStarted:
		fmt.Fprintf(r.out, "\n=== Round %d ===\n", e.Round)
	case incan.EventCardRevealed:
		fmt.Fprintf(r.out, "A card turns over: %s (%d left in the deck)\n", describeCard(e.Card), e.DeckRemaining)
	case incan.EventTreasureSplit:
		fmt.Fprintf(r.out, "  Each explorer pockets %d, %d left glittering on the path\n", e.Amount, e.Carry)
	case incan.EventArtifactDeposited:
		fmt.Fprintf(r.out, "  An artifact rests on the path, waiting for a lone departer\n")
	case incan.EventHazardWarning:
		fmt.Fprintf(r.out, "  %s! First sighting, press on at your peril\n", e.Hazard)
	case incan.EventHazardBust:
		fmt.Fprintf(r.out, "  A second %s! Everyone still inside flees with nothing\n", e.Hazard)
	case incan.EventSpoilsClaimed:
		fmt.Fprintf(r.out, "  %s scoops up the spoils alone: %d treasure, %d artifact(s)\n", e.Player, e.Amount, e.Artifacts)
	case incan.EventPlayerDeparted:
		fmt.Fprintf(r.out, "  %s heads back to camp, banking %d\n", e.Player, e.Amount)
	case incan.EventDeckExhausted:
		fmt.Fprintf(r.out, "  The deck runs out, everyone still inside walks home safe\n")
	case incan.EventTreasureBanked:
		fmt.Fprintf(r.out, "  %s banks %d\n", e.Player, e.Amount)
	case incan.EventRoundEnded:
		fmt.Fprintf(r.out, "=== Round %d over ===\n", e.Round)
	case incan.EventGameEnded:
		if e.Report != nil {
			r.printReport(e.Report)
		}
	}
}

func (r *Renderer) printReport(rep *incan.FinalReport) {
	fmt.Fprintf(r.out, "\n===== Final standings =====\n")
	for i, res := range rep.Results {
		marker := " "
		if res.Winner {
			marker = "*"
		}
		fmt.Fprintf(r.out, "%s %d. %-20s %3d points (camp %d, %d artifact(s))\n",
			marker, i+1, res.Name, res.FinalScore, res.CampScore, res.Artifacts)
	}
	if len(rep.Winners) == 1 {
		fmt.Fprintf(r.out, "Winner: %s\n", rep.Winners[0])
	} else {
		fmt.Fprintf(r.out, "Winners (tie): %s\n", strings.Join(rep.Winners, ", "))
	}
}

func describeCard(c card.Card) string {
	switch c.Kind() {
	case card.KindTreasure:
		return fmt.Sprintf("treasure %d", c.Value())
	case card.KindHazard:
		return c.Hazard().String()
	case card.KindArtifact:
		return fmt.Sprintf("artifact (face %d)", c.Value())
	default:
		return "unknown card"
	}
}

// PromptDecision reads one continue/leave answer from the reader.
// Returns an error wrapping incan.ErrGameAborted when the player quits
// or input ends.
func PromptDecision(in *bufio.Reader, out io.Writer) incan.PromptFunc {
	return func(view incan.TurnView) (incan.Decision, error) {
		fmt.Fprintf(out, "\nYou hold %d treasure. Path carry: %d, artifacts on path: %d, explorers inside: %d.\n",
			view.Held, view.PathTreasure, view.PathArtifacts, view.ActiveCount)
		if n := view.HazardKindsSeenOnce(); n > 0 {
			fmt.Fprintf(out, "Hazards seen once: %d (bust chance next card: %.0f%%)\n", n, view.BustChance()*100)
		}
		fmt.Fprintf(out, "[c]ontinue, [l]eave or [q]uit? ")

		line, err := in.ReadString('\n')
		if err != nil {
			return incan.DecisionNone, fmt.Errorf("read decision: %w", incan.ErrGameAborted)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "c", "continue":
			return incan.DecisionContinue, nil
		case "l", "leave":
			return incan.DecisionLeave, nil
		case "q", "quit":
			return incan.DecisionNone, incan.ErrGameAborted
		default:
			return incan.DecisionNone, fmt.Errorf("unrecognized answer %q", strings.TrimSpace(line))
		}
	}
}
