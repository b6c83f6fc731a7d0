package events

import (
	"time"

	"github.com/lazharichir/jordeck/cards"
)

type DeckCreated struct {
	DeckID    string
	PackCount int
	Size      int
	At        time.Time
}

func (e DeckCreated) EventName() string { return "deck-created" }

// DeckShuffled is recorded once a whole recipe has been applied.
type DeckShuffled struct {
	DeckID string
	Recipe string
	Steps  int
	Size   int
	At     time.Time
}

func (e DeckShuffled) EventName() string { return "deck-shuffled" }

type ShuffleStepApplied struct {
	DeckID string
	Step   string
	Size   int
}

func (e ShuffleStepApplied) EventName() string { return "shuffle-step-applied" }

type CardsDrawn struct {
	DeckID    string
	Count     int
	Remaining int
}

func (e CardsDrawn) EventName() string { return "cards-drawn" }

type CardBurned struct {
	DeckID string
	Card   cards.Card
}

func (e CardBurned) EventName() string { return "card-burned" }

type CardsInserted struct {
	DeckID string
	Card   cards.Card
	OnTop  bool
}

func (e CardsInserted) EventName() string { return "cards-inserted" }

type CardsDiscarded struct {
	DeckID   string
	Count    int
	Discards int
}

func (e CardsDiscarded) EventName() string { return "cards-discarded" }

type DeckRefilled struct {
	DeckID string
	Count  int
	Size   int
}

func (e DeckRefilled) EventName() string { return "deck-refilled" }

// DeckMerged is recorded on the deck that was placed on top of another.
type DeckMerged struct {
	DeckID       string
	TargetDeckID string
	Count        int
}

func (e DeckMerged) EventName() string { return "deck-merged" }
