package incan

type Player struct {
	Seat  int
	Name  string
	Human bool

	camp      int
	held      int
	artifacts int

	inTemple     bool
	lastDecision Decision
}

func (p *Player) Camp() int      { return p.camp }
func (p *Player) Held() int      { return p.held }
func (p *Player) Artifacts() int { return p.artifacts }
func (p *Player) InTemple() bool { return p.inTemple }

func (p *Player) LastDecision() Decision { return p.lastDecision }

func (p *Player) ResetForRound() {
	p.held = 0
	p.inTemple = true
	p.lastDecision = DecisionNone
}

func (p *Player) addHeld(amount int) {
	if amount <= 0 {
		return
	}
	p.held += amount
}

func (p *Player) addArtifacts(n int) {
	p.artifacts += n
}

// bankHeld moves the round haul to camp and takes the player out of the
// temple. Returns the banked amount.
func (p *Player) bankHeld() int {
	banked := p.held
	p.camp += banked
	p.held = 0
	p.inTemple = false
	return banked
}

// loseHeld drops the round haul without banking (hazard bust).
func (p *Player) loseHeld() {
	p.held = 0
	p.inTemple = false
}

func (p *Player) setDecision(d Decision) { p.lastDecision = d }
