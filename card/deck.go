package card

// TreasureCards is the fixed treasure population of every round deck.
// Value 5 appears twice, matching the published card set.
var TreasureCards = []Card{
	CardTreasure1, CardTreasure2, CardTreasure3, CardTreasure4,
	CardTreasure5, CardTreasure5, CardTreasure6, CardTreasure7,
	CardTreasure8, CardTreasure9, CardTreasure10, CardTreasure11,
	CardTreasure12, CardTreasure13, CardTreasure14, CardTreasure15,
}

// HazardCards holds two copies of each hazard kind.
var HazardCards = []Card{
	CardSnake, CardSnake,
	CardSpider, CardSpider,
	CardMummy, CardMummy,
	CardFire, CardFire,
	CardCollapse, CardCollapse,
}

// ArtifactForRound returns the single artifact seeded into the given
// round's deck: the 5-value idols enter in rounds 1-3, the 10-value
// ones in rounds 4 and 5.
func ArtifactForRound(round int) Card {
	if round >= 4 {
		return CardArtifact10
	}
	return CardArtifact5
}

// BuildDeck enumerates the full fixed population for one round, in
// deterministic order. The caller shuffles.
func BuildDeck(round int) []Card {
	deck := make([]Card, 0, len(TreasureCards)+len(HazardCards)+1)
	deck = append(deck, TreasureCards...)
	deck = append(deck, HazardCards...)
	deck = append(deck, ArtifactForRound(round))
	return deck
}
