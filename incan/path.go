package incan

import "github.com/Matthew-w56/incan-gold-cli/card"

// pathLedger accumulates the undistributed treasure remainder and the
// artifacts lying on the expedition path. Cleared at round start;
// whatever is unclaimed at round end is lost.
type pathLedger struct {
	carry     int
	artifacts []card.Card
}

func (l *pathLedger) reset() {
	l.carry = 0
	l.artifacts = nil
}

// addTreasure splits total among the active players and returns the
// per-player share. The remainder joins the carry, which accumulates
// across treasure cards within the round.
func (l *pathLedger) addTreasure(total, activePlayers int) int {
	if activePlayers <= 0 {
		l.carry += total
		return 0
	}
	share := total / activePlayers
	l.carry += total % activePlayers
	return share
}

func (l *pathLedger) depositArtifact(c card.Card) {
	l.artifacts = append(l.artifacts, c)
}

// claimAll empties both unclaimed pools. Called only for a lone
// departer; the artifact rule awards path artifacts exclusively to a
// player who leaves alone.
func (l *pathLedger) claimAll() (treasure int, artifacts []card.Card) {
	treasure = l.carry
	artifacts = l.artifacts
	l.carry = 0
	l.artifacts = nil
	return treasure, artifacts
}
