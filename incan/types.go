package incan

// Phase 回合阶段
type Phase byte

const (
	PhaseRoundStart Phase = 0
	PhaseRevealing  Phase = 1
	PhaseResolving  Phase = 2
	PhaseDeciding   Phase = 3
	PhaseDepartures Phase = 4
	PhaseRoundEnd   Phase = 5
	PhaseGameEnd    Phase = 6
)

var PhaseDictionary = map[Phase]string{
	PhaseRoundStart: "roundstart",
	PhaseRevealing:  "revealing",
	PhaseResolving:  "resolving",
	PhaseDeciding:   "deciding",
	PhaseDepartures: "departures",
	PhaseRoundEnd:   "roundend",
	PhaseGameEnd:    "gameend",
}

// Decision 玩家表态：0-NONE 1-CONTINUE 2-LEAVE
type Decision byte

const (
	DecisionNone     Decision = 0
	DecisionContinue Decision = 1
	DecisionLeave    Decision = 2
)

var DecisionDictionary = map[Decision]string{
	DecisionNone:     "NONE",
	DecisionContinue: "CONTINUE",
	DecisionLeave:    "LEAVE",
}

const (
	// DefaultRounds is the expedition length of a standard game.
	DefaultRounds = 5

	// MinPlayers and MaxPlayers bound the temple party, human included.
	MinPlayers = 1
	MaxPlayers = 7
)
