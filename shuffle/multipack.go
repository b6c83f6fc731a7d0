package shuffle

import (
	"github.com/lazharichir/jordeck/rng"
)

// pile is one half of a split shoe. Cards are taken from the top down;
// offset marks the top of what has not been taken yet.
type pile[T any] struct {
	cards  []T
	offset int
}

func newPile[T any](cards []T) *pile[T] {
	return &pile[T]{cards: cards, offset: len(cards)}
}

func (p *pile[T]) remaining() int {
	return p.offset
}

// take removes up to size cards from the top of the pile. Near the bottom
// it hands back whatever is left.
func (p *pile[T]) take(size int) []T {
	size = min(max(size, 0), p.offset)
	chunk := clone(p.cards[p.offset-size : p.offset])
	p.offset -= size
	return chunk
}

func (p *pile[T]) rest() []T {
	return p.take(p.offset)
}

type multiPack[T any] struct {
	src       rng.Source
	chunkMax  int
	variation int
}

func (m *multiPack[T]) chunkSize() int {
	return m.chunkMax - m.src.IntRange(0, m.variation)
}

// mix is the riffle, strip, riffle sequence every packet goes through.
func (m *multiPack[T]) mix(seq []T) ([]T, error) {
	mixed, err := Strip(Riffle(seq), 4, m.src)
	if err != nil {
		return nil, err
	}
	return Riffle(mixed), nil
}

// fold combines chunk with a packet off the top of the working pile, mixes
// them, and puts the result back on top of the working pile.
func (m *multiPack[T]) fold(working, chunk []T) ([]T, error) {
	size := min(m.chunkSize(), len(working))
	split := len(working) - size

	mixed, err := m.mix(concat(chunk, working[split:]))
	if err != nil {
		return nil, err
	}
	return concat(working[:split], mixed), nil
}

// MultiPack shuffles a 4, 6 or 8 pack shoe, which is too tall to riffle in
// one go. Packets of about an eighth of the shoe are taken alternately from
// each half and mixed into a working pile; the working pile is then split
// again and re-riffled packet by packet into the final shoe, which is cut.
func MultiPack[T any](seq []T, src rng.Source) ([]T, error) {
	total := len(seq)
	if total < 2 {
		return clone(seq), nil
	}

	m := &multiPack[T]{src: src, chunkMax: max((total/2)/4, 1)}
	m.variation = m.chunkMax / 4

	left, right := newPile(seq[:total/2]), newPile(seq[total/2:])

	working, err := m.mix(concat(left.take(m.chunkSize()), right.take(m.chunkSize())))
	if err != nil {
		return nil, err
	}

	for left.remaining() >= m.chunkMax && right.remaining() >= m.chunkMax {
		if working, err = m.fold(working, left.take(m.chunkSize())); err != nil {
			return nil, err
		}
		if working, err = m.fold(working, right.take(m.chunkSize())); err != nil {
			return nil, err
		}
	}
	if working, err = m.fold(working, left.rest()); err != nil {
		return nil, err
	}
	if working, err = m.fold(working, right.rest()); err != nil {
		return nil, err
	}

	left, right = newPile(working[:total/2]), newPile(working[total/2:])

	shoe := make([]T, 0, total)
	for left.remaining() >= m.chunkMax && right.remaining() >= m.chunkMax {
		shoe = append(shoe, Riffle(concat(left.take(m.chunkSize()), right.take(m.chunkSize())))...)
	}
	shoe = append(shoe, Riffle(concat(left.rest(), right.rest()))...)

	return Cut(shoe, RandomCut, min(m.chunkMax, (total-2)/2), src)
}
