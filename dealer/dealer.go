package dealer

import (
	"fmt"
	"io"
	"log"

	"github.com/lazharichir/jordeck/config"
	"github.com/lazharichir/jordeck/deck"
	"github.com/lazharichir/jordeck/display"
	"github.com/lazharichir/jordeck/events"
	"github.com/lazharichir/jordeck/rng"
)

// Dealer runs one shuffle session: build the shoe, shuffle it, then insert,
// burn, deal and print as the options ask.
type Dealer struct {
	opts  config.Options
	src   rng.Source
	store *events.InMemoryEventStore
	out   io.Writer
}

// NewDealer creates a dealer writing its output to out
func NewDealer(opts config.Options, out io.Writer) *Dealer {
	return &Dealer{
		opts:  opts,
		src:   opts.Source(),
		store: events.NewInMemoryEventStore(),
		out:   out,
	}
}

// Run performs the session and returns the deck as it was left.
func (d *Dealer) Run() (*deck.Deck, error) {
	recipe, err := d.opts.ShuffleRecipe()
	if err != nil {
		return nil, err
	}

	shoe, err := deck.New(d.opts.Packs, deck.WithSource(d.src), deck.WithEventStore(d.store))
	if err != nil {
		return nil, err
	}
	log.Printf("Created deck %s with %d packs (%d cards)", shoe.ID, shoe.PackCount(), shoe.Len())

	if err := shoe.ShuffleWith(recipe); err != nil {
		return nil, err
	}
	log.Printf("Shuffled deck %s with %s: %s", shoe.ID, recipe.Name, recipe)

	inserted, err := d.opts.InsertCards()
	if err != nil {
		return nil, err
	}
	for _, card := range inserted {
		shoe.InsertTop(card)
		log.Printf("Inserted %s on top", card.Long())
	}

	if d.opts.Burn {
		card, err := shoe.Burn()
		if err != nil {
			return nil, err
		}
		log.Printf("Burned %s", card.Long())
	}

	if d.opts.Deal > 0 {
		hand, err := shoe.Deal(d.opts.Deal)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Fprintf(d.out, "Dealt: %s\n", hand); err != nil {
			return nil, err
		}
	}

	if d.opts.Show {
		if err := display.Show(d.out, shoe.Cards()); err != nil {
			return nil, err
		}
	}

	if d.opts.Events {
		recorded, err := d.store.LoadEvents(shoe.ID)
		if err != nil {
			return nil, err
		}
		if err := display.Dump(d.out, recorded); err != nil {
			return nil, err
		}
	}

	return shoe, nil
}
