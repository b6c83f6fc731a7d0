package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPack(t *testing.T) {
	pack := NewPack()

	assert.Len(t, pack, PackSize)
	assert.Len(t, pack.Counts(), PackSize, "every card in a pack is unique")
	assert.Equal(t, Card{Suit: Spades, Value: Two}, pack[0], "bottom card")
	assert.Equal(t, Card{Suit: Hearts, Value: Jack}, pack[len(pack)-1], "top card")
}

func TestNewPacks(t *testing.T) {
	tests := []struct {
		name     string
		numPacks int
		want     int
	}{
		{"single", 1, 52},
		{"double", 2, 104},
		{"six", 6, 312},
		{"zero", 0, 0},
		{"negative", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack := NewPacks(tt.numPacks)
			assert.Len(t, stack, tt.want)
			for _, n := range stack.Counts() {
				assert.Equal(t, tt.numPacks, n)
			}
		})
	}
}

func TestStack_Clone(t *testing.T) {
	stack := NewStack(Card{Suit: Clubs, Value: Ace}, Card{Suit: Diamonds, Value: Two})
	clone := stack.Clone()

	clone[0] = Card{Suit: Hearts, Value: King}

	assert.Equal(t, Card{Suit: Clubs, Value: Ace}, stack[0], "clone must not share memory")
	assert.Nil(t, Stack(nil).Clone())
}

func TestStack_String(t *testing.T) {
	stack := NewStack(Card{Suit: Clubs, Value: Ace}, Card{Suit: Diamonds, Value: Two})

	assert.Equal(t, "A♣ 2♦", stack.String())
	assert.Equal(t, 2, stack.Len())
}
