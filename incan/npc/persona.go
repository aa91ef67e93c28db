package npc

// Profile defines the tunable thresholds for a brain.
type Profile struct {
	// Personality selects the strategy: "bold", "cautious" or "lucky".
	Personality string `json:"personality"`

	// RiskTolerance 0.0-1.0: appetite for staying in a dangerous temple
	// (lucky only).
	RiskTolerance float64 `json:"riskTolerance,omitempty"`
	// TreasureCeiling: held treasure at which the brain cashes out.
	TreasureCeiling int `json:"treasureCeiling,omitempty"`
	// ExitAfterCards: reveals after which a cautious brain heads home.
	ExitAfterCards int `json:"exitAfterCards,omitempty"`
	// DangerKinds: distinct hazard kinds seen that trigger an exit.
	DangerKinds int `json:"dangerKinds,omitempty"`
	// BustThreshold: estimated bust probability above which a lucky
	// brain always leaves.
	BustThreshold float64 `json:"bustThreshold,omitempty"`
}

// Persona defines a named AI explorer.
type Persona struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Tagline string  `json:"tagline"`
	Brain   Profile `json:"brain"`
}
