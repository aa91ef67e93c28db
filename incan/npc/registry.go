package npc

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/Matthew-w56/incan-gold-cli/incan"
)

// Registry holds all AI persona definitions.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	personas map[string]*Persona
}

// NewRegistry creates a registry pre-loaded with the builtin roster.
func NewRegistry() *Registry {
	r := &Registry{personas: make(map[string]*Persona)}
	for _, p := range BuiltinPersonas() {
		r.put(p)
	}
	return r
}

func (r *Registry) put(p *Persona) {
	if _, exists := r.personas[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.personas[p.ID] = p
}

// LoadFromFile merges personas from a JSON file over the builtins.
func (r *Registry) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read personas file: %w", err)
	}
	return r.LoadFromJSON(data)
}

// LoadFromJSON merges personas from raw JSON bytes.
func (r *Registry) LoadFromJSON(data []byte) error {
	var list []*Persona
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parse personas JSON: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range list {
		if p.ID == "" {
			continue
		}
		r.put(p)
	}
	return nil
}

// Get returns a persona by ID.
func (r *Registry) Get(id string) *Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.personas[id]
}

// Roster returns the first n personas in registration order.
func (r *Registry) Roster(n int) []*Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n > len(r.order) {
		n = len(r.order)
	}
	out := make([]*Persona, 0, n)
	for _, id := range r.order[:n] {
		out = append(out, r.personas[id])
	}
	return out
}

// Count returns the total number of registered personas.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.personas)
}

// NewBrain builds the decider for a persona. The seed only matters for
// probabilistic personalities.
func NewBrain(p *Persona, seed int64) (incan.Decider, error) {
	switch p.Brain.Personality {
	case "bold":
		b := NewBoldBrain(p.Name)
		if p.Brain.TreasureCeiling > 0 {
			b.TreasureCeiling = p.Brain.TreasureCeiling
		}
		if p.Brain.DangerKinds > 0 {
			b.DangerKinds = p.Brain.DangerKinds
		}
		return b, nil
	case "cautious":
		b := NewCautiousBrain(p.Name)
		if p.Brain.TreasureCeiling > 0 {
			b.TreasureFloor = p.Brain.TreasureCeiling
		}
		if p.Brain.ExitAfterCards > 0 {
			b.ExitAfterCards = p.Brain.ExitAfterCards
		}
		if p.Brain.DangerKinds > 0 {
			b.DangerKinds = p.Brain.DangerKinds
		}
		return b, nil
	case "lucky":
		b := NewLuckyBrain(p.Name, seed)
		if p.Brain.RiskTolerance > 0 {
			b.RiskTolerance = p.Brain.RiskTolerance
		}
		if p.Brain.BustThreshold > 0 {
			b.BustThreshold = p.Brain.BustThreshold
		}
		return b, nil
	}
	return nil, fmt.Errorf("unknown personality %q for persona %s", p.Brain.Personality, p.ID)
}

// BuiltinPersonas is the default AI roster, seated in order.
func BuiltinPersonas() []*Persona {
	return []*Persona{
		{
			ID: "maya_the_bold", Name: "Maya the Bold",
			Tagline: "Leaves when the walls start shaking, not before.",
			Brain:   Profile{Personality: "bold", TreasureCeiling: 40, DangerKinds: 3},
		},
		{
			ID: "diego_the_cautious", Name: "Diego the Cautious",
			Tagline: "A small sack carried home beats a big one buried.",
			Brain:   Profile{Personality: "cautious", TreasureCeiling: 12, ExitAfterCards: 6, DangerKinds: 2},
		},
		{
			ID: "carmen_the_lucky", Name: "Carmen the Lucky",
			Tagline: "Counts the snakes, then flips a weighted coin.",
			Brain:   Profile{Personality: "lucky", RiskTolerance: 0.55, BustThreshold: 0.25},
		},
		{
			ID: "zara_the_wise", Name: "Zara the Wise",
			Tagline: "Reads the path like a ledger.",
			Brain:   Profile{Personality: "lucky", RiskTolerance: 0.4, BustThreshold: 0.2},
		},
		{
			ID: "felix_the_daring", Name: "Felix the Daring",
			Tagline: "The idol is always one more card away.",
			Brain:   Profile{Personality: "bold", TreasureCeiling: 55, DangerKinds: 4},
		},
		{
			ID: "iris_the_patient", Name: "Iris the Patient",
			Tagline: "Five rounds is a long game.",
			Brain:   Profile{Personality: "cautious", TreasureCeiling: 9, ExitAfterCards: 5, DangerKinds: 2},
		},
	}
}
