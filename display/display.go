// Package display renders decks for humans. Nothing in the shuffle engine
// depends on it.
package display

import (
	"fmt"
	"io"

	"github.com/lazharichir/jordeck/cards"
	"github.com/lazharichir/jordeck/events"
	"github.com/sanity-io/litter"
)

// Show writes the size of the pile followed by one card per line, bottom first.
func Show(w io.Writer, pile cards.Stack) error {
	if _, err := fmt.Fprintf(w, "Deck size: %d\n", len(pile)); err != nil {
		return err
	}
	for _, card := range pile {
		if _, err := fmt.Fprintln(w, card.Long()); err != nil {
			return err
		}
	}
	return nil
}

// Dump pretty-prints recorded events, one literal per event.
func Dump(w io.Writer, recorded []events.Event) error {
	for _, event := range recorded {
		if _, err := fmt.Fprintf(w, "%s %s\n", event.EventName(), dumpOptions.Sdump(event)); err != nil {
			return err
		}
	}
	return nil
}

var dumpOptions = litter.Options{
	Compact:           true,
	StripPackageNames: true,
	HidePrivateFields: true,
}
