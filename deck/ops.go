package deck

import (
	"fmt"
	"time"

	"github.com/lazharichir/jordeck/cards"
	"github.com/lazharichir/jordeck/events"
	"github.com/lazharichir/jordeck/shuffle"
)

// Draw removes and returns the top card.
func (d *Deck) Draw() (cards.Card, error) {
	if len(d.cards) == 0 {
		return cards.Card{}, fmt.Errorf("draw: %w", ErrEmptyDeck)
	}
	card := d.pop()
	d.emit(events.CardsDrawn{DeckID: d.ID, Count: 1, Remaining: len(d.cards)})
	return card, nil
}

// Deal draws n cards, the first card drawn first in the result. Either all
// n cards are dealt or none are.
func (d *Deck) Deal(n int) (cards.Stack, error) {
	if n < 0 {
		return nil, fmt.Errorf("deal %d cards: %w", n, ErrInvalidArgument)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("deal %d cards with %d left: %w", n, len(d.cards), ErrEmptyDeck)
	}

	dealt := make(cards.Stack, 0, n)
	for i := 0; i < n; i++ {
		dealt = append(dealt, d.pop())
	}
	d.emit(events.CardsDrawn{DeckID: d.ID, Count: n, Remaining: len(d.cards)})
	return dealt, nil
}

// Burn moves the top card to the discard pile and returns it.
func (d *Deck) Burn() (cards.Card, error) {
	if len(d.cards) == 0 {
		return cards.Card{}, fmt.Errorf("burn: %w", ErrEmptyDeck)
	}
	card := d.pop()
	d.discards = append(d.discards, card)
	d.emit(events.CardBurned{DeckID: d.ID, Card: card})
	return card, nil
}

func (d *Deck) pop() cards.Card {
	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card
}

func (d *Deck) InsertTop(card cards.Card) {
	d.cards = append(d.cards, card)
	d.emit(events.CardsInserted{DeckID: d.ID, Card: card, OnTop: true})
}

func (d *Deck) InsertBottom(card cards.Card) {
	d.cards = append(cards.Stack{card}, d.cards...)
	d.emit(events.CardsInserted{DeckID: d.ID, Card: card, OnTop: false})
}

// PutOnTopOf places the whole deck on top of target. d is left empty.
func (d *Deck) PutOnTopOf(target *Deck) error {
	if target == nil || target == d {
		return fmt.Errorf("put deck on top of itself or nothing: %w", ErrInvalidArgument)
	}
	count := len(d.cards)
	target.cards = append(target.cards, d.cards...)
	d.cards = nil
	d.emit(events.DeckMerged{DeckID: d.ID, TargetDeckID: target.ID, Count: count})
	return nil
}

// Discard puts cards on the discard pile. The cards are expected to have
// been drawn from this deck earlier.
func (d *Deck) Discard(cs ...cards.Card) {
	d.discards = append(d.discards, cs...)
	d.emit(events.CardsDiscarded{DeckID: d.ID, Count: len(cs), Discards: len(d.discards)})
}

// Refill puts the discard pile back on top of the live pile.
func (d *Deck) Refill() {
	count := len(d.discards)
	d.cards = append(d.cards, d.discards...)
	d.discards = nil
	d.emit(events.DeckRefilled{DeckID: d.ID, Count: count, Size: len(d.cards)})
}

// Shuffle shuffles the live pile with the recipe for the deck's pack count.
func (d *Deck) Shuffle() error {
	return d.ShuffleWith(shuffle.RecipeFor(d.packCount))
}

// Wash randomises the live pile completely, whatever the pack count.
func (d *Deck) Wash() error {
	return d.ShuffleWith(shuffle.WashOnly)
}

// ShuffleWith applies recipe to the live pile. If any move fails the pile
// is left exactly as it was.
func (d *Deck) ShuffleWith(recipe shuffle.Recipe) error {
	var applied []events.Event
	shuffled, err := shuffle.Run(d.cards, recipe, d.src, func(step shuffle.Step, size int) {
		applied = append(applied, events.ShuffleStepApplied{DeckID: d.ID, Step: step.String(), Size: size})
	})
	if err != nil {
		return fmt.Errorf("shuffle deck %s: %w", d.ID, err)
	}

	d.cards = shuffled
	for _, event := range applied {
		d.emit(event)
	}
	d.emit(events.DeckShuffled{
		DeckID: d.ID,
		Recipe: recipe.Name,
		Steps:  len(recipe.Steps),
		Size:   len(shuffled),
		At:     time.Now(),
	})
	return nil
}
