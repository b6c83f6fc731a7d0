package shuffle

import (
	"testing"

	"github.com/lazharichir/jordeck/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestStrip(t *testing.T) {
	src := rng.NewScripted(0, 1, 0, 0)
	input := seq(12)

	got, err := Strip(input, 4, src)

	require.NoError(t, err)
	assert.Equal(t, []int{9, 10, 11, 7, 8, 4, 5, 6, 1, 2, 3, 0}, got)
	assert.Equal(t, 4, src.IntCalls)
	assert.Equal(t, seq(12), input, "input must not be modified")
}

func TestStrip_InvalidTimes(t *testing.T) {
	for _, times := range []int{1, 0, -1, -10} {
		got, err := Strip(seq(52), times, rng.New(1))
		require.ErrorIs(t, err, ErrInvalidArgument, "strip(%d)", times)
		assert.Nil(t, got)
	}
}

func TestStrip_FewerCardsThanStrips(t *testing.T) {
	got, err := Strip(seq(3), 4, rng.New(1))

	require.NoError(t, err)
	assert.Equal(t, seq(3), got)
}

func TestStrip_KeepsEveryCard(t *testing.T) {
	src := rng.New(99)
	for _, n := range []int{0, 1, 2, 7, 52, 104, 416} {
		for _, times := range []int{2, 4, 7} {
			got, err := Strip(seq(n), times, src)
			require.NoError(t, err)
			assert.ElementsMatch(t, seq(n), got, "n=%d times=%d", n, times)
		}
	}
}

func TestRiffle(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"even", []string{"A", "B", "C", "D"}, []string{"A", "C", "B", "D"}},
		{"odd keeps the extra card on top", []string{"1", "2", "3", "4", "5"}, []string{"1", "3", "2", "4", "5"}},
		{"single", []string{"A"}, []string{"A"}},
		{"empty", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Riffle(tt.input))
		})
	}
}

func TestBox(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5, 6, 1, 2}, Box([]int{1, 2, 3, 4, 5, 6}))
	assert.Equal(t, []int{1, 2}, Box([]int{1, 2}), "no third to move")
}

func TestThirds(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{3, 4, 5, 6, 7, 1, 2}, ThirdBottomToTop(input))
	assert.Equal(t, []int{6, 7, 1, 2, 3, 4, 5}, ThirdTopToBottom(input))
	assert.Equal(t, input, ThirdBottomToTop(ThirdTopToBottom(input)), "the two moves undo each other")
}

func TestCut(t *testing.T) {
	got, err := Cut(seq(10), 3, 1, rng.New(1))

	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9, 0, 1, 2, 3, 4, 5, 6}, got)
}

func TestCut_InvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		position int
		margin   int
	}{
		{"margin of half the pile", 10, RandomCut, 5},
		{"margin over half the pile", 10, RandomCut, 8},
		{"negative margin", 10, RandomCut, -1},
		{"position inside bottom margin", 10, 1, 1},
		{"position inside top margin", 10, 9, 1},
		{"position past the pile", 10, 12, 0},
		{"zero position", 10, 0, 0},
		{"single card", 1, RandomCut, 0},
		{"empty", 0, RandomCut, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := seq(tt.n)
			got, err := Cut(input, tt.position, tt.margin, rng.New(1))

			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, got)
			assert.Equal(t, seq(tt.n), input)
		})
	}
}

func TestCut_RandomStaysInsideMargins(t *testing.T) {
	const n = 20
	src := rng.New(5)

	for margin := 0; margin < n/2; margin++ {
		for i := 0; i < 50; i++ {
			got, err := Cut(seq(n), RandomCut, margin, src)
			require.NoError(t, err)

			// the result is seq rotated so that seq[n-k] comes first
			k := n - got[0]
			assert.Greater(t, k, margin)
			assert.Less(t, k, n-margin)
			assert.Equal(t, rotate(seq(n), n-k), got)
		}
	}
}

func TestWash(t *testing.T) {
	input := seq(52)
	got := Wash(input, rng.New(11))

	assert.ElementsMatch(t, input, got)
	assert.NotEqual(t, input, got)
	assert.Equal(t, seq(52), input)
}
