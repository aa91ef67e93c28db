package npc

import (
	"math/rand"

	"github.com/Matthew-w56/incan-gold-cli/incan"
)

// The three AI personalities are independent strategy structs, each
// holding its own thresholds. All are deterministic for a given view
// (and, for LuckyBrain, a given seed).

// BoldBrain presses on until the temple is visibly about to collapse or
// its pockets are full.
type BoldBrain struct {
	Label           string
	TreasureCeiling int
	DangerKinds     int
}

func NewBoldBrain(label string) *BoldBrain {
	return &BoldBrain{Label: label, TreasureCeiling: 40, DangerKinds: 3}
}

func (b *BoldBrain) Name() string { return b.Label }

func (b *BoldBrain) Decide(view incan.TurnView) (incan.Decision, error) {
	if len(view.HazardCounts) >= b.DangerKinds {
		return incan.DecisionLeave, nil
	}
	if view.Held >= b.TreasureCeiling {
		return incan.DecisionLeave, nil
	}
	return incan.DecisionContinue, nil
}

// CautiousBrain banks early: a modest haul, a long path or a second
// hazard kind is enough to send it home.
type CautiousBrain struct {
	Label          string
	TreasureFloor  int
	ExitAfterCards int
	DangerKinds    int
}

func NewCautiousBrain(label string) *CautiousBrain {
	return &CautiousBrain{Label: label, TreasureFloor: 12, ExitAfterCards: 6, DangerKinds: 2}
}

func (b *CautiousBrain) Name() string { return b.Label }

func (b *CautiousBrain) Decide(view incan.TurnView) (incan.Decision, error) {
	if view.Held >= b.TreasureFloor {
		return incan.DecisionLeave, nil
	}
	if len(view.Revealed) >= b.ExitAfterCards {
		return incan.DecisionLeave, nil
	}
	if len(view.HazardCounts) >= b.DangerKinds {
		return incan.DecisionLeave, nil
	}
	return incan.DecisionContinue, nil
}

// LuckyBrain mixes an explicit bust estimate with a weighted coin flip.
// Above BustThreshold it always leaves; below, the leave probability
// blends revealed danger, carried treasure, crowd size and its risk
// tolerance, weights carried over from the original balance settings.
type LuckyBrain struct {
	Label         string
	RiskTolerance float64
	BustThreshold float64

	rng *rand.Rand
}

const (
	luckyRiskWeight     = 0.5
	luckyTreasureWeight = 0.3
	luckyPlayerWeight   = 0.2
)

func NewLuckyBrain(label string, seed int64) *LuckyBrain {
	return &LuckyBrain{
		Label:         label,
		RiskTolerance: 0.55,
		BustThreshold: 0.25,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

func (b *LuckyBrain) Name() string { return b.Label }

func (b *LuckyBrain) Decide(view incan.TurnView) (incan.Decision, error) {
	if view.BustChance() >= b.BustThreshold {
		return incan.DecisionLeave, nil
	}

	maxHazards := 0
	for _, c := range view.HazardCounts {
		if c > maxHazards {
			maxHazards = c
		}
	}
	active := view.ActiveCount
	if active < 1 {
		active = 1
	}

	riskFactor := float64(maxHazards) * luckyRiskWeight
	treasureFactor := minFloat(float64(view.Held)/20.0, 1.0) * luckyTreasureWeight
	playerFactor := (1.0 / float64(active)) * luckyPlayerWeight

	leaveProbability := (riskFactor + treasureFactor - playerFactor + (1 - b.RiskTolerance)) / 2
	// Later rounds: a bad break costs a bigger share of the game.
	leaveProbability += float64(view.Round) / 10.0

	if b.rng.Float64() > leaveProbability {
		return incan.DecisionContinue, nil
	}
	return incan.DecisionLeave, nil
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
