package huffman

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue_RemoveMinIsMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for round := 0; round < 50; round++ {
		size := 1 + rng.Intn(DefaultAlphabetSize)
		pool := NewPool(size)
		q := NewQueue(pool, size)
		for i := 0; i < size; i++ {
			require.NoError(t, q.Insert(pool.NewLeaf(Symbol(i), uint32(rng.Intn(8)))))
		}

		var last uint32
		for q.Len() > 0 {
			id, err := q.RemoveMin()
			require.NoError(t, err)
			freq := pool.Freq(id)
			require.GreaterOrEqual(t, freq, last)
			last = freq
		}
	}
}

func TestQueue_TieBreak(t *testing.T) {
	pool := NewPool(4)
	q := NewQueue(pool, 4)

	a := pool.NewLeaf('A', 5)
	b := pool.NewLeaf('B', 2)
	c := pool.NewLeaf('C', 1)
	d := pool.NewLeaf('D', 1)
	for _, id := range []NodeID{a, b, c, d} {
		require.NoError(t, q.Insert(id))
	}

	// 'C' reaches the root first and a tied 'D' never displaces it.
	expect := []NodeID{c, d, b, a}
	for _, want := range expect {
		id, err := q.RemoveMin()
		require.NoError(t, err)
		require.Equal(t, want, id)
	}
}

func TestQueue_Errors(t *testing.T) {
	t.Run("Overflow", func(t *testing.T) {
		pool := NewPool(2)
		q := NewQueue(pool, 2)
		require.NoError(t, q.Insert(pool.NewLeaf(0, 1)))
		require.NoError(t, q.Insert(pool.NewLeaf(1, 1)))
		require.ErrorIs(t, q.Insert(pool.NewInternal(0, 1)), ErrQueueOverflow)
		require.Equal(t, 2, q.Len())
	})

	t.Run("Underflow", func(t *testing.T) {
		q := NewQueue(NewPool(1), 1)
		id, err := q.RemoveMin()
		require.ErrorIs(t, err, ErrQueueUnderflow)
		require.Equal(t, NoNode, id)
	})
}
