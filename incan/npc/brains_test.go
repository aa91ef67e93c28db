package npc

import (
	"testing"

	"github.com/Matthew-w56/incan-gold-cli/card"
	"github.com/Matthew-w56/incan-gold-cli/incan"
)

func calmView() incan.TurnView {
	return incan.TurnView{
		Round:         1,
		DeckRemaining: 20,
		Revealed:      []card.Card{card.CardTreasure7},
		HazardCounts:  map[card.HazardKind]int{},
		Held:          7,
		ActiveCount:   4,
	}
}

func dangerousView() incan.TurnView {
	return incan.TurnView{
		Round:         3,
		DeckRemaining: 12,
		Revealed: []card.Card{
			card.CardSnake, card.CardSpider, card.CardMummy,
			card.CardTreasure5, card.CardTreasure9, card.CardTreasure11,
		},
		HazardCounts: map[card.HazardKind]int{
			card.Snake: 1, card.Spider: 1, card.Mummy: 1,
		},
		Held:        14,
		ActiveCount: 2,
	}
}

func TestBoldBrain(t *testing.T) {
	b := NewBoldBrain("bold")

	if d, _ := b.Decide(calmView()); d != incan.DecisionContinue {
		t.Fatalf("bold should press on in a calm temple, got %v", d)
	}
	if d, _ := b.Decide(dangerousView()); d != incan.DecisionLeave {
		t.Fatalf("bold should leave with three hazard kinds out, got %v", d)
	}

	rich := calmView()
	rich.Held = 45
	if d, _ := b.Decide(rich); d != incan.DecisionLeave {
		t.Fatalf("bold should cash out above its ceiling, got %v", d)
	}
}

func TestCautiousBrain(t *testing.T) {
	b := NewCautiousBrain("cautious")

	early := calmView()
	early.Held = 3
	if d, _ := b.Decide(early); d != incan.DecisionContinue {
		t.Fatalf("cautious should continue early with a small haul, got %v", d)
	}

	modest := calmView()
	modest.Held = 12
	if d, _ := b.Decide(modest); d != incan.DecisionLeave {
		t.Fatalf("cautious should bank a modest haul, got %v", d)
	}

	long := calmView()
	long.Held = 3
	long.Revealed = make([]card.Card, 6)
	if d, _ := b.Decide(long); d != incan.DecisionLeave {
		t.Fatalf("cautious should exit after a long path, got %v", d)
	}

	twoKinds := calmView()
	twoKinds.Held = 3
	twoKinds.HazardCounts = map[card.HazardKind]int{card.Fire: 1, card.Snake: 1}
	if d, _ := b.Decide(twoKinds); d != incan.DecisionLeave {
		t.Fatalf("cautious should exit on a second hazard kind, got %v", d)
	}
}

func TestLuckyBrain_BustThresholdAlwaysLeaves(t *testing.T) {
	b := NewLuckyBrain("lucky", 1)

	// Three armed twins in a 10-card deck: 30% bust, over the 25%
	// threshold, so the coin never flips.
	view := dangerousView()
	view.DeckRemaining = 10
	for i := 0; i < 50; i++ {
		if d, _ := b.Decide(view); d != incan.DecisionLeave {
			t.Fatalf("lucky must always leave above its bust threshold")
		}
	}
}

func TestLuckyBrain_SeededDeterminism(t *testing.T) {
	a := NewLuckyBrain("a", 7)
	b := NewLuckyBrain("b", 7)

	view := calmView()
	for i := 0; i < 200; i++ {
		da, _ := a.Decide(view)
		db, _ := b.Decide(view)
		if da != db {
			t.Fatalf("same seed diverged at call %d: %v vs %v", i, da, db)
		}
	}
}

func TestLuckyBrain_LeaveRateTracksOdds(t *testing.T) {
	b := NewLuckyBrain("lucky", 3)

	// Round 1, no hazards, empty pockets, four explorers: the leave
	// probability works out to 0.30.
	view := incan.TurnView{
		Round:         1,
		DeckRemaining: 26,
		HazardCounts:  map[card.HazardKind]int{},
		Held:          0,
		ActiveCount:   4,
	}

	const trials = 4000
	leaves := 0
	for i := 0; i < trials; i++ {
		if d, _ := b.Decide(view); d == incan.DecisionLeave {
			leaves++
		}
	}
	rate := float64(leaves) / float64(trials)
	if rate < 0.24 || rate > 0.36 {
		t.Fatalf("leave rate = %.3f, expected near 0.30", rate)
	}
}

func TestRegistry_RosterAndMerge(t *testing.T) {
	r := NewRegistry()
	if r.Count() != len(BuiltinPersonas()) {
		t.Fatalf("builtin count = %d, want %d", r.Count(), len(BuiltinPersonas()))
	}

	roster := r.Roster(3)
	if len(roster) != 3 {
		t.Fatalf("roster size = %d, want 3", len(roster))
	}
	if roster[0].ID != "maya_the_bold" || roster[1].ID != "diego_the_cautious" || roster[2].ID != "carmen_the_lucky" {
		t.Fatalf("roster out of registration order: %s, %s, %s", roster[0].ID, roster[1].ID, roster[2].ID)
	}

	err := r.LoadFromJSON([]byte(`[
		{"id": "rex_the_reckless", "name": "Rex the Reckless",
		 "brain": {"personality": "bold", "treasureCeiling": 70}},
		{"id": "maya_the_bold", "name": "Maya Rewritten",
		 "brain": {"personality": "cautious"}}
	]`))
	if err != nil {
		t.Fatalf("LoadFromJSON err: %v", err)
	}

	if r.Count() != len(BuiltinPersonas())+1 {
		t.Fatalf("count after merge = %d, want %d", r.Count(), len(BuiltinPersonas())+1)
	}
	if got := r.Get("maya_the_bold").Name; got != "Maya Rewritten" {
		t.Fatalf("merge should overwrite by ID, got name %q", got)
	}
	if r.Get("rex_the_reckless") == nil {
		t.Fatalf("merged persona missing")
	}
	// Overwriting keeps the original slot in the roster order.
	if got := r.Roster(1)[0].Name; got != "Maya Rewritten" {
		t.Fatalf("roster slot 0 = %q, want the overwritten persona", got)
	}
}

func TestNewBrain_Profiles(t *testing.T) {
	r := NewRegistry()

	brain, err := NewBrain(r.Get("felix_the_daring"), 1)
	if err != nil {
		t.Fatalf("NewBrain err: %v", err)
	}
	bold, ok := brain.(*BoldBrain)
	if !ok {
		t.Fatalf("felix should be a BoldBrain, got %T", brain)
	}
	if bold.TreasureCeiling != 55 || bold.DangerKinds != 4 {
		t.Fatalf("profile overrides not applied: %+v", bold)
	}

	if _, err := NewBrain(&Persona{ID: "x", Brain: Profile{Personality: "psychic"}}, 1); err == nil {
		t.Fatalf("unknown personality should error")
	}
}
