package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Card is one expedition card.
//
// Encoding:
// - high 4 bits: kind (1:Treasure, 2:Hazard, 3:Artifact)
// - low 4 bits: payload (treasure value 1-15, hazard kind 0-4, artifact face value 5 or 10)
type Card byte

func (c Card) String() string {
	switch c.Kind() {
	case KindTreasure:
		return fmt.Sprintf("Treasure %d", c.Value())
	case KindHazard:
		return c.Hazard().String()
	case KindArtifact:
		return fmt.Sprintf("Artifact %d", c.Value())
	}
	return "Invalid"
}

// Kind returns the card kind encoded in the high 4 bits.
func (c Card) Kind() Kind {
	k := Kind(c >> 4)
	if k > KindArtifact {
		return KindInvalid
	}
	return k
}

// Value returns the treasure or artifact face value, 0 otherwise.
func (c Card) Value() int {
	switch c.Kind() {
	case KindTreasure, KindArtifact:
		return int(c & 0x0F)
	}
	return 0
}

// Hazard returns the hazard kind; meaningful only when Kind() == KindHazard.
func (c Card) Hazard() HazardKind {
	return HazardKind(c & 0x0F)
}

func (c Card) IsHazard() bool {
	return c.Kind() == KindHazard
}

type Kind byte

const (
	KindInvalid  Kind = 0
	KindTreasure Kind = 1
	KindHazard   Kind = 2
	KindArtifact Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindTreasure:
		return "treasure"
	case KindHazard:
		return "hazard"
	case KindArtifact:
		return "artifact"
	}
	return "invalid"
}

type HazardKind byte

const (
	Snake HazardKind = iota
	Spider
	Mummy
	Fire
	Collapse
)

func (h HazardKind) String() string {
	switch h {
	case Snake:
		return "Snake"
	case Spider:
		return "Spider"
	case Mummy:
		return "Mummy"
	case Fire:
		return "Fire"
	case Collapse:
		return "Collapse"
	}
	return "?"
}

// ParseCard converts a string ("t7", "a10", "snake") to a Card constant.
func ParseCard(raw string) (Card, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return CardInvalid, fmt.Errorf("empty card string")
	}

	switch s {
	case "snake":
		return CardSnake, nil
	case "spider":
		return CardSpider, nil
	case "mummy":
		return CardMummy, nil
	case "fire":
		return CardFire, nil
	case "collapse":
		return CardCollapse, nil
	}

	prefix, rest := s[:1], s[1:]
	v, err := strconv.Atoi(rest)
	if err != nil {
		return CardInvalid, fmt.Errorf("invalid card string: %s", raw)
	}
	switch prefix {
	case "t":
		if v < 1 || v > 15 {
			return CardInvalid, fmt.Errorf("treasure value out of range: %d", v)
		}
		return Card(0x10 | byte(v)), nil
	case "a":
		if v != 5 && v != 10 {
			return CardInvalid, fmt.Errorf("artifact value must be 5 or 10, got %d", v)
		}
		return Card(0x30 | byte(v)), nil
	}
	return CardInvalid, fmt.Errorf("invalid card string: %s", raw)
}
