package huffman

import (
	"container/heap"

	"github.com/pkg/errors"
)

// Queue is a binary min-heap of pool nodes keyed by frequency.  It holds
// references into a Pool and does not own the nodes.
//
// There is no secondary key.  Insertion sifts up only while the parent is
// strictly greater, and extraction sifts down towards the left child unless
// the right child is strictly smaller, so equal frequencies are resolved by
// insertion order and heap position alone.  Decoding a payload produced by
// an encoder that uses the same rules therefore yields the same tree.
//
type Queue struct {
	h        freqHeap
	capacity int
}

// NewQueue returns an empty Queue over pool that can hold up to capacity
// nodes.
func NewQueue(pool *Pool, capacity int) *Queue {
	return &Queue{
		h:        freqHeap{pool: pool, list: make([]NodeID, 0, capacity)},
		capacity: capacity,
	}
}

// Insert adds a node to the queue.
func (q *Queue) Insert(id NodeID) error {
	if q.h.Len() >= q.capacity {
		return errors.Wrapf(ErrQueueOverflow, "capacity %d", q.capacity)
	}
	heap.Push(&q.h, id)
	return nil
}

// RemoveMin removes and returns the node with the smallest frequency.
func (q *Queue) RemoveMin() (NodeID, error) {
	if q.h.Len() == 0 {
		return NoNode, ErrQueueUnderflow
	}
	return heap.Pop(&q.h).(NodeID), nil
}

// Len returns the number of queued nodes.
func (q *Queue) Len() int {
	return q.h.Len()
}

// type freqHeap {{{

type freqHeap struct {
	pool *Pool
	list []NodeID
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	return h.pool.Freq(h.list[i]) < h.pool.Freq(h.list[j])
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(NodeID))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
