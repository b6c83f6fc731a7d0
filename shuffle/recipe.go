package shuffle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lazharichir/jordeck/rng"
)

// StepKind names a single shuffle move
type StepKind string

const (
	StepStrip            StepKind = "strip"
	StepRiffle           StepKind = "riffle"
	StepBox              StepKind = "box"
	StepCut              StepKind = "cut"
	StepThirdTopToBottom StepKind = "third-top-to-bottom"
	StepThirdBottomToTop StepKind = "third-bottom-to-top"
	StepWash             StepKind = "wash"
	StepMultiPack        StepKind = "multi-pack"
)

// Step is one move of a recipe with its parameters. Times only applies to
// strips; Margin and Position only apply to cuts.
type Step struct {
	Kind     StepKind
	Times    int
	Margin   int
	Position int
}

func (s Step) String() string {
	switch s.Kind {
	case StepStrip:
		return fmt.Sprintf("%s:%d", s.Kind, s.Times)
	case StepCut:
		if s.Position == RandomCut {
			return fmt.Sprintf("%s:%d", s.Kind, s.Margin)
		}
		return fmt.Sprintf("%s:%d:%d", s.Kind, s.Margin, s.Position)
	}
	return string(s.Kind)
}

func strip(times int) Step { return Step{Kind: StepStrip, Times: times} }

func cut(margin int) Step { return Step{Kind: StepCut, Margin: margin, Position: RandomCut} }

var (
	riffle           = Step{Kind: StepRiffle}
	box              = Step{Kind: StepBox}
	thirdTopToBottom = Step{Kind: StepThirdTopToBottom}
	thirdBottomToTop = Step{Kind: StepThirdBottomToTop}
)

// Recipe is an ordered list of moves applied to a pile.
type Recipe struct {
	Name  string
	Steps []Step
}

func (r Recipe) String() string {
	parts := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

var (
	// SinglePack: strip 4, riffle, strip 4, riffle, box, riffle, cut 10.
	SinglePack = Recipe{
		Name:  "single-pack",
		Steps: []Step{strip(4), riffle, strip(4), riffle, box, riffle, cut(10)},
	}

	// DoublePack: riffle, strip 7, third to bottom, riffle, third to top,
	// riffle, riffle, cut 20.
	DoublePack = Recipe{
		Name:  "double-pack",
		Steps: []Step{riffle, strip(7), thirdTopToBottom, riffle, thirdBottomToTop, riffle, riffle, cut(20)},
	}

	MultiPackShoe = Recipe{
		Name:  "multi-pack",
		Steps: []Step{{Kind: StepMultiPack}},
	}

	WashOnly = Recipe{
		Name:  "wash",
		Steps: []Step{{Kind: StepWash}},
	}
)

// RecipeFor returns the shuffle used for a shoe of packCount packs. Shoe
// sizes with no dealer procedure are washed.
func RecipeFor(packCount int) Recipe {
	switch packCount {
	case 1:
		return SinglePack
	case 2:
		return DoublePack
	case 4, 6, 8:
		return MultiPackShoe
	default:
		return WashOnly
	}
}

// ParseRecipe reads a comma separated list of moves such as
// "strip:4,riffle,box,cut:10". A cut takes its margin and optionally a fixed
// position ("cut:10:26").
func ParseRecipe(text string) (Recipe, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Recipe{}, fmt.Errorf("empty recipe: %w", ErrInvalidArgument)
	}

	var steps []Step
	for _, field := range strings.Split(text, ",") {
		step, err := parseStep(strings.TrimSpace(field))
		if err != nil {
			return Recipe{}, err
		}
		steps = append(steps, step)
	}
	return Recipe{Name: "custom", Steps: steps}, nil
}

func parseStep(field string) (Step, error) {
	parts := strings.Split(field, ":")
	kind := StepKind(strings.ToLower(parts[0]))
	args := make([]int, 0, len(parts)-1)
	for _, p := range parts[1:] {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Step{}, fmt.Errorf("step %q: parameter %q is not an integer: %w", field, p, ErrInvalidArgument)
		}
		args = append(args, n)
	}

	switch kind {
	case StepStrip:
		if len(args) != 1 {
			return Step{}, fmt.Errorf("step %q: strip takes exactly one parameter: %w", field, ErrInvalidArgument)
		}
		if args[0] <= 1 {
			return Step{}, fmt.Errorf("step %q: strip times must be greater than 1: %w", field, ErrInvalidArgument)
		}
		return strip(args[0]), nil
	case StepCut:
		step := cut(0)
		switch len(args) {
		case 0:
		case 2:
			if args[1] <= 0 {
				return Step{}, fmt.Errorf("step %q: cut position must be positive: %w", field, ErrInvalidArgument)
			}
			step.Position = args[1]
			fallthrough
		case 1:
			step.Margin = args[0]
		default:
			return Step{}, fmt.Errorf("step %q: cut takes at most two parameters: %w", field, ErrInvalidArgument)
		}
		if step.Margin < 0 {
			return Step{}, fmt.Errorf("step %q: cut margin must not be negative: %w", field, ErrInvalidArgument)
		}
		return step, nil
	case StepRiffle, StepBox, StepThirdTopToBottom, StepThirdBottomToTop, StepWash, StepMultiPack:
		if len(args) != 0 {
			return Step{}, fmt.Errorf("step %q: %s takes no parameters: %w", field, kind, ErrInvalidArgument)
		}
		return Step{Kind: kind}, nil
	}
	return Step{}, fmt.Errorf("unknown step %q: %w", field, ErrInvalidArgument)
}

// Apply performs a single move.
func Apply[T any](seq []T, step Step, src rng.Source) ([]T, error) {
	switch step.Kind {
	case StepStrip:
		return Strip(seq, step.Times, src)
	case StepRiffle:
		return Riffle(seq), nil
	case StepBox:
		return Box(seq), nil
	case StepCut:
		return Cut(seq, step.Position, step.Margin, src)
	case StepThirdTopToBottom:
		return ThirdTopToBottom(seq), nil
	case StepThirdBottomToTop:
		return ThirdBottomToTop(seq), nil
	case StepWash:
		return Wash(seq, src), nil
	case StepMultiPack:
		return MultiPack(seq, src)
	}
	return nil, fmt.Errorf("unknown step %q: %w", step.Kind, ErrInvalidArgument)
}

// Observer is told about every move a recipe completes.
type Observer func(step Step, size int)

// Run applies every move of recipe in order. seq is left untouched; if any
// move fails the partial result is discarded.
func Run[T any](seq []T, recipe Recipe, src rng.Source, observe Observer) ([]T, error) {
	shuffled := clone(seq)
	for i, step := range recipe.Steps {
		next, err := Apply(shuffled, step, src)
		if err != nil {
			return nil, fmt.Errorf("%s step %d (%s): %w", recipe.Name, i+1, step, err)
		}
		shuffled = next
		if observe != nil {
			observe(step, len(shuffled))
		}
	}
	return shuffled, nil
}
