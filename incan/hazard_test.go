package incan

import (
	"testing"

	"github.com/Matthew-w56/incan-gold-cli/card"
)

func TestHazardTracker_SecondOccurrenceTriggers(t *testing.T) {
	tracker := newHazardTracker()

	if tracker.record(card.Snake) {
		t.Fatalf("first snake should not trigger")
	}
	if tracker.record(card.Spider) {
		t.Fatalf("first spider should not trigger")
	}
	if !tracker.record(card.Snake) {
		t.Fatalf("second snake should trigger")
	}
	// Overlapping forced decks can surface a third copy; it stays inert.
	if tracker.record(card.Snake) {
		t.Fatalf("third snake should not trigger again")
	}

	if got := tracker.count(card.Snake); got != 3 {
		t.Fatalf("snake count = %d, want 3", got)
	}
	if got := tracker.kindsSeenOnce(); got != 1 {
		t.Fatalf("kinds seen once = %d, want 1 (spider)", got)
	}
}

func TestHazardTracker_ResetClears(t *testing.T) {
	tracker := newHazardTracker()
	tracker.record(card.Fire)
	tracker.record(card.Fire)
	tracker.reset()

	if tracker.record(card.Fire) {
		t.Fatalf("fire after reset should count as first occurrence")
	}
	if got := tracker.count(card.Collapse); got != 0 {
		t.Fatalf("collapse count after reset = %d, want 0", got)
	}
}
