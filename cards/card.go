package cards

import "fmt"

// CardFromString creates a card from its short representation
// e.g., "10♠" or "10s" or "10S" -> Card{Suit: Spades, Value: Ten}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %q", s)
	}

	var suit Suit
	var rest string
	switch {
	case hasSuffix(s, "♠", "s", "S"):
		suit, rest = Spades, trimSuit(s)
	case hasSuffix(s, "♥", "h", "H"):
		suit, rest = Hearts, trimSuit(s)
	case hasSuffix(s, "♦", "d", "D"):
		suit, rest = Diamonds, trimSuit(s)
	case hasSuffix(s, "♣", "c", "C"):
		suit, rest = Clubs, trimSuit(s)
	default:
		return Card{}, fmt.Errorf("invalid card suit: %q", s)
	}

	for _, v := range Values {
		if string(v) == rest {
			return Card{Suit: suit, Value: v}, nil
		}
	}
	return Card{}, fmt.Errorf("invalid card value: %q", rest)
}

func hasSuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if len(s) > len(suffix) && s[len(s)-len(suffix):] == suffix {
			return true
		}
	}
	return false
}

func trimSuit(s string) string {
	for _, symbol := range []string{"♠", "♥", "♦", "♣"} {
		if len(s) > len(symbol) && s[len(s)-len(symbol):] == symbol {
			return s[:len(s)-len(symbol)]
		}
	}
	return s[:len(s)-1]
}

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Clubs    Suit = "♣"
	Diamonds Suit = "♦"
	Hearts   Suit = "♥"
)

// Suits in the order a fresh pack is built.
var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

// Name returns the suit's English name
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "Spades"
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	}
	return string(s)
}

// Value represents a card value
type Value string

const (
	Two   Value = "2"
	Three Value = "3"
	Four  Value = "4"
	Five  Value = "5"
	Six   Value = "6"
	Seven Value = "7"
	Eight Value = "8"
	Nine  Value = "9"
	Ten   Value = "10"
	Ace   Value = "A"
	King  Value = "K"
	Queen Value = "Q"
	Jack  Value = "J"
)

// Values in the order a fresh pack is built.
var Values = []Value{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Ace, King, Queen, Jack}

// Card represents a playing card
type Card struct {
	Suit  Suit
	Value Value
}

// String returns the short representation of a card, e.g. "10♠"
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Value, c.Suit)
}

// Long returns the card spelled out, e.g. "10 of Spades"
func (c Card) Long() string {
	return fmt.Sprintf("%s of %s", c.Value, c.Suit.Name())
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Value == other.Value
}
