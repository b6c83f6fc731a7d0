package cards

// PackSize is the number of cards in one standard pack.
const PackSize = 52

// NewPack creates a standard pack of 52 cards
func NewPack() Stack {
	pack := make(Stack, 0, PackSize)
	for _, suit := range Suits {
		for _, value := range Values {
			pack = append(pack, Card{Suit: suit, Value: value})
		}
	}
	return pack
}

// NewPacks creates numPacks standard packs stacked on top of each other
func NewPacks(numPacks int) Stack {
	if numPacks < 1 {
		return Stack{}
	}
	cards := make(Stack, 0, numPacks*PackSize)
	for i := 0; i < numPacks; i++ {
		cards = append(cards, NewPack()...)
	}
	return cards
}
