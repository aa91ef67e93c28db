package card

const CardInvalid Card = 0

// Treasure 宝石牌
const (
	CardTreasure1 Card = iota + 0x11
	CardTreasure2
	CardTreasure3
	CardTreasure4
	CardTreasure5
	CardTreasure6
	CardTreasure7
	CardTreasure8
	CardTreasure9
	CardTreasure10
	CardTreasure11
	CardTreasure12
	CardTreasure13
	CardTreasure14
	CardTreasure15
)

// Hazard 灾难牌
const (
	CardSnake Card = iota + 0x20
	CardSpider
	CardMummy
	CardFire
	CardCollapse
)

// Artifact 神器牌
const (
	CardArtifact5  Card = 0x35
	CardArtifact10 Card = 0x3A
)
