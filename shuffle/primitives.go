// Package shuffle reproduces the hand shuffles a casino dealer performs:
// strips, riffles, boxes and cuts, composed into recipes per shoe size.
//
// Every move works on an ordered sequence whose top is the END of the slice.
// Moves never modify their input; they return a new slice holding exactly
// the same elements in a new order.
package shuffle

import (
	"fmt"

	"github.com/lazharichir/jordeck/rng"
)

// RandomCut asks Cut to pick the cut position itself.
const RandomCut = -1

// Strip pulls packets off the top of the pile and drops them one on top of
// the other, so the first packet pulled ends up at the bottom of the result.
// Packet sizes vary between roughly two thirds and all of len(seq)/times.
func Strip[T any](seq []T, times int, src rng.Source) ([]T, error) {
	if times <= 1 {
		return nil, fmt.Errorf("strip %d times: must be greater than 1: %w", times, ErrInvalidArgument)
	}

	total := len(seq)
	maxSize := total / times
	if maxSize == 0 {
		return clone(seq), nil
	}
	variation := maxSize / 3

	stripped := make([]T, 0, total)
	offset := total
	for offset >= maxSize {
		size := maxSize - src.IntRange(0, variation)
		stripped = append(stripped, seq[offset-size:offset]...)
		offset -= size
	}
	return append(stripped, seq[:offset]...), nil
}

// Riffle splits the pile in half and interleaves the halves card by card,
// lower half first. On an odd pile the upper half has one card more, which
// lands on top unshuffled.
func Riffle[T any](seq []T) []T {
	half := len(seq) / 2
	left, right := seq[:half], seq[half:]

	riffled := make([]T, 0, len(seq))
	for i := 0; i < len(left) && i < len(right); i++ {
		riffled = append(riffled, left[i], right[i])
	}
	if len(right) > len(left) {
		return append(riffled, right[len(left):]...)
	}
	return append(riffled, left[len(right):]...)
}

// Box moves the bottom third of the pile to the top.
func Box[T any](seq []T) []T {
	return rotate(seq, len(seq)/3)
}

// ThirdBottomToTop moves the bottom third of the pile to the top.
func ThirdBottomToTop[T any](seq []T) []T {
	return rotate(seq, len(seq)/3)
}

// ThirdTopToBottom moves the top third of the pile to the bottom.
func ThirdTopToBottom[T any](seq []T) []T {
	return rotate(seq, len(seq)-len(seq)/3)
}

// Cut takes position cards off the top and puts them underneath the rest.
// The cut may not fall within margin cards of either end of the pile. Pass
// RandomCut to let src choose the position.
func Cut[T any](seq []T, position, margin int, src rng.Source) ([]T, error) {
	total := len(seq)
	if margin < 0 || margin >= total/2 {
		return nil, fmt.Errorf("cut margin %d on %d cards: must be in [0, %d): %w", margin, total, total/2, ErrInvalidArgument)
	}

	if position == RandomCut {
		position = src.IntRange(margin+1, total-margin-1)
	} else if position <= margin || position >= total-margin {
		return nil, fmt.Errorf("cut at %d on %d cards: must be in (%d, %d): %w", position, total, margin, total-margin, ErrInvalidArgument)
	}

	return rotate(seq, total-position), nil
}

// Wash randomises the pile completely, the way cards are spread and mixed
// face down on the table.
func Wash[T any](seq []T, src rng.Source) []T {
	washed := clone(seq)
	for i := len(washed) - 1; i > 0; i-- {
		j := src.IntRange(0, i)
		washed[i], washed[j] = washed[j], washed[i]
	}
	return washed
}

// rotate returns seq[k:] followed by seq[:k].
func rotate[T any](seq []T, k int) []T {
	rotated := make([]T, 0, len(seq))
	rotated = append(rotated, seq[k:]...)
	return append(rotated, seq[:k]...)
}

func clone[T any](seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	return out
}

func concat[T any](bottom, top []T) []T {
	out := make([]T, 0, len(bottom)+len(top))
	out = append(out, bottom...)
	return append(out, top...)
}
