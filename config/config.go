package config

import (
	"fmt"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/lazharichir/jordeck/cards"
	"github.com/lazharichir/jordeck/rng"
	"github.com/lazharichir/jordeck/shuffle"
)

const (
	RNGPCG     = "pcg"
	RNGMT19937 = "mt19937"
)

// Options configures a jordeck run. Every option can also be set from the
// environment or a .env file in the working directory.
type Options struct {
	Packs  int    `short:"p" long:"packs" env:"JORDECK_PACKS" default:"1" description:"Number of 52-card packs in the deck"`
	Seed   int64  `short:"s" long:"seed" env:"JORDECK_SEED" default:"0" description:"Random seed; 0 seeds from the clock"`
	RNG    string `long:"rng" env:"JORDECK_RNG" default:"pcg" choice:"pcg" choice:"mt19937" description:"Random generator"`
	Recipe string `long:"recipe" env:"JORDECK_RECIPE" description:"Custom recipe, e.g. strip:4,riffle,box,cut:10"`

	Insert []string `short:"i" long:"insert" description:"Card to put on top after shuffling, e.g. As or 10♥ (repeatable)"`
	Burn   bool     `long:"burn" description:"Burn the top card after shuffling"`
	Deal   int      `short:"d" long:"deal" default:"0" description:"Deal this many cards after shuffling"`
	Show   bool     `long:"show" description:"Print the whole deck"`
	Events bool     `long:"events" description:"Dump the recorded deck events"`
}

// Load reads .env (if present), then parses args on top of the environment.
func Load(args []string) (Options, error) {
	_ = godotenv.Load()

	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "jordeck"
	if _, err := parser.ParseArgs(args); err != nil {
		return opts, err
	}
	return opts, opts.Validate()
}

func (o Options) Validate() error {
	if o.Packs < 1 {
		return fmt.Errorf("packs %d: must be at least 1: %w", o.Packs, shuffle.ErrInvalidArgument)
	}
	if o.Deal < 0 {
		return fmt.Errorf("deal %d: must not be negative: %w", o.Deal, shuffle.ErrInvalidArgument)
	}
	if o.RNG != RNGPCG && o.RNG != RNGMT19937 {
		return fmt.Errorf("unknown rng %q: %w", o.RNG, shuffle.ErrInvalidArgument)
	}
	if o.Recipe != "" {
		if _, err := shuffle.ParseRecipe(o.Recipe); err != nil {
			return err
		}
	}
	if _, err := o.InsertCards(); err != nil {
		return err
	}
	return nil
}

// InsertCards parses the --insert cards in the order they were given.
func (o Options) InsertCards() (cards.Stack, error) {
	inserted := make(cards.Stack, 0, len(o.Insert))
	for _, s := range o.Insert {
		card, err := cards.CardFromString(s)
		if err != nil {
			return nil, fmt.Errorf("insert %q: %v: %w", s, err, shuffle.ErrInvalidArgument)
		}
		inserted = append(inserted, card)
	}
	return inserted, nil
}

var now = time.Now

// Source builds the random generator the options ask for. A zero seed
// seeds the chosen generator from the clock.
func (o Options) Source() rng.Source {
	seed := o.Seed
	if seed == 0 {
		seed = now().UnixNano()
	}
	if o.RNG == RNGMT19937 {
		return rng.NewMersenneTwister(seed)
	}
	return rng.New(seed)
}

// ShuffleRecipe returns the custom recipe, or the standard one for the pack count.
func (o Options) ShuffleRecipe() (shuffle.Recipe, error) {
	if o.Recipe == "" {
		return shuffle.RecipeFor(o.Packs), nil
	}
	return shuffle.ParseRecipe(o.Recipe)
}

// IsHelp reports whether err is go-flags asking for the usage text.
func IsHelp(err error) bool {
	flagsErr, ok := err.(*flags.Error)
	return ok && flagsErr.Type == flags.ErrHelp
}
