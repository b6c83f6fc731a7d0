// Package deck holds the live pile and discard pile of a card game and
// shuffles them the way a dealer would.
//
// A Deck is not safe for concurrent use; callers sharing one between
// goroutines must guard it with their own lock.
package deck

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lazharichir/jordeck/cards"
	"github.com/lazharichir/jordeck/events"
	"github.com/lazharichir/jordeck/rng"
	"github.com/lazharichir/jordeck/shuffle"
)

var (
	ErrEmptyDeck       = errors.New("empty deck")
	ErrInvalidArgument = shuffle.ErrInvalidArgument
)

// Deck is a pile of cards whose top is the end of the slice, plus the
// cards discarded from it.
type Deck struct {
	ID string

	packCount int
	cards     cards.Stack
	discards  cards.Stack

	src      rng.Source
	store    events.EventStore
	eventErr error
}

type Option func(*Deck)

// WithSource sets the randomness used by Shuffle and Wash.
func WithSource(src rng.Source) Option {
	return func(d *Deck) { d.src = src }
}

// WithEventStore records everything that happens to the deck in store.
// A failing Append never fails the deck operation that caused it; the first
// such failure is kept and reported by EventErr.
func WithEventStore(store events.EventStore) Option {
	return func(d *Deck) { d.store = store }
}

func WithID(id string) Option {
	return func(d *Deck) { d.ID = id }
}

// New creates a deck of packCount fresh 52-card packs.
func New(packCount int, opts ...Option) (*Deck, error) {
	if packCount < 1 {
		return nil, fmt.Errorf("new deck of %d packs: must be at least 1: %w", packCount, ErrInvalidArgument)
	}
	return newDeck(packCount, cards.NewPacks(packCount), opts), nil
}

// FromCards creates a deck holding a copy of cs, bottom card first.
// packCount only chooses the recipe Shuffle applies.
func FromCards(packCount int, cs cards.Stack, opts ...Option) (*Deck, error) {
	if packCount < 1 {
		return nil, fmt.Errorf("deck from cards with pack count %d: must be at least 1: %w", packCount, ErrInvalidArgument)
	}
	return newDeck(packCount, cs.Clone(), opts), nil
}

func newDeck(packCount int, cs cards.Stack, opts []Option) *Deck {
	d := &Deck{
		ID:        uuid.NewString(),
		packCount: packCount,
		cards:     cs,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.src == nil {
		d.src = rng.NewTimeSeeded()
	}

	d.emit(events.DeckCreated{
		DeckID:    d.ID,
		PackCount: packCount,
		Size:      len(cs),
		At:        time.Now(),
	})
	return d
}

func (d *Deck) emit(event events.Event) {
	if d.store == nil {
		return
	}
	if err := d.store.Append(event); err != nil && d.eventErr == nil {
		d.eventErr = fmt.Errorf("record %s for deck %s: %w", event.EventName(), d.ID, err)
	}
}

// EventErr returns the first error the event store gave back, if any.
func (d *Deck) EventErr() error {
	return d.eventErr
}

// PackCount returns the number of packs the deck was built for.
func (d *Deck) PackCount() int {
	return d.packCount
}

// Len returns the number of cards left in the live pile.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the live pile, bottom card first.
func (d *Deck) Cards() cards.Stack {
	return d.cards.Clone()
}

// Discards returns a copy of the discard pile.
func (d *Deck) Discards() cards.Stack {
	return d.discards.Clone()
}
