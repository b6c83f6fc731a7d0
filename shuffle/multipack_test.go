package shuffle

import (
	"testing"

	"github.com/lazharichir/jordeck/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiPack_KeepsEveryCard(t *testing.T) {
	for _, packs := range []int{4, 6, 8} {
		n := packs * 52
		input := seq(n)

		got, err := MultiPack(input, rng.New(int64(packs)))

		require.NoError(t, err)
		assert.Len(t, got, n)
		assert.ElementsMatch(t, seq(n), got, "%d packs", packs)
		assert.NotEqual(t, seq(n), got, "%d packs", packs)
		assert.Equal(t, seq(n), input, "input must not be modified")
	}
}

func TestMultiPack_SmallPiles(t *testing.T) {
	src := rng.New(17)
	for n := 0; n <= 40; n++ {
		got, err := MultiPack(seq(n), src)

		require.NoError(t, err, "n=%d", n)
		assert.ElementsMatch(t, seq(n), got, "n=%d", n)
	}
}

func TestMultiPack_OddSizes(t *testing.T) {
	src := rng.NewMersenneTwister(3)
	for _, n := range []int{209, 311, 417} {
		got, err := MultiPack(seq(n), src)

		require.NoError(t, err, "n=%d", n)
		assert.ElementsMatch(t, seq(n), got, "n=%d", n)
	}
}

func TestMultiPack_Deterministic(t *testing.T) {
	a, err := MultiPack(seq(312), rng.New(2021))
	require.NoError(t, err)
	b, err := MultiPack(seq(312), rng.New(2021))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMultiPack_WithoutVariation(t *testing.T) {
	// A script that always answers the low end makes every packet exactly
	// chunkMax cards, so the shuffle is fully determined.
	src := rng.NewScripted()
	a, err := MultiPack(seq(208), src)
	require.NoError(t, err)
	b, err := MultiPack(seq(208), rng.NewScripted())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.ElementsMatch(t, seq(208), a)
	assert.Positive(t, src.IntCalls)
}

func TestPile_TakeClampsToRemaining(t *testing.T) {
	p := newPile(seq(5))

	assert.Equal(t, []int{2, 3, 4}, p.take(3))
	assert.Equal(t, []int{0, 1}, p.take(3), "short final chunk")
	assert.Empty(t, p.take(3))
	assert.Equal(t, 0, p.remaining())
}

func TestPile_TakeDoesNotAlias(t *testing.T) {
	cards := seq(4)
	p := newPile(cards)

	chunk := p.take(2)
	chunk[0] = 99

	assert.Equal(t, seq(4), cards)
	assert.Equal(t, []int{0, 1}, p.rest())
}
