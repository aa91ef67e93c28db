package incan

// Decider chooses, at one decision point, whether a player presses on
// into the temple or returns to camp. Decide is called synchronously
// from the round loop with a read-only view; it must not call back
// into the engine.
type Decider interface {
	Decide(view TurnView) (Decision, error)
	// Name returns a human-readable identifier for logs and events.
	Name() string
}

// PromptFunc collects a single continue/leave answer from outside the
// engine, typically a blocking terminal read. Returning an error that
// wraps ErrGameAborted stops the game; any other error triggers a
// re-prompt.
type PromptFunc func(view TurnView) (Decision, error)

// Human adapts an injected prompt to the Decider contract.
type Human struct {
	Label  string
	Prompt PromptFunc
}

func (h Human) Name() string {
	if h.Label != "" {
		return h.Label
	}
	return "human"
}

func (h Human) Decide(view TurnView) (Decision, error) {
	if h.Prompt == nil {
		return DecisionNone, ErrInvalidState("human decider without prompt")
	}
	return h.Prompt(view)
}
