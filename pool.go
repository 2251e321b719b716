package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// NodeID is a handle to a node owned by a Pool.
type NodeID int32

// NoNode is the NodeID of a missing child.
const NoNode = NodeID(-1)

type nodeKind byte

const (
	leafNode nodeKind = iota
	internalNode
)

type node struct {
	kind   nodeKind
	symbol Symbol
	freq   uint32
	left   NodeID
	right  NodeID
}

// Pool is a fixed-capacity arena holding every leaf and internal node of one
// tree.  Nodes are never freed individually; the whole Pool is discarded
// once decoding finishes.
type Pool struct {
	nodes []node
}

// NewPool returns a Pool large enough for a complete tree over an alphabet
// of the given size, i.e. 2*alphabetSize - 1 nodes.
func NewPool(alphabetSize int) *Pool {
	assert.Assertf(alphabetSize >= 1, "alphabetSize %d < 1", alphabetSize)
	return &Pool{nodes: make([]node, 0, 2*alphabetSize-1)}
}

// NewLeaf allocates a leaf node.
func (p *Pool) NewLeaf(symbol Symbol, freq uint32) NodeID {
	return p.alloc(node{kind: leafNode, symbol: symbol, freq: freq, left: NoNode, right: NoNode})
}

// NewInternal allocates an internal node whose frequency is the sum of its
// children's frequencies.
func (p *Pool) NewInternal(left NodeID, right NodeID) NodeID {
	assert.Assertf(p.valid(left), "invalid left child %d", left)
	assert.Assertf(p.valid(right), "invalid right child %d", right)
	freq := p.nodes[left].freq + p.nodes[right].freq
	return p.alloc(node{kind: internalNode, freq: freq, left: left, right: right})
}

func (p *Pool) alloc(n node) NodeID {
	assert.Assertf(len(p.nodes) < cap(p.nodes), "node pool exhausted: capacity %d", cap(p.nodes))
	id := NodeID(len(p.nodes))
	p.nodes = append(p.nodes, n)
	return id
}

func (p *Pool) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(p.nodes)
}

// IsLeaf returns true iff id refers to a leaf node.
func (p *Pool) IsLeaf(id NodeID) bool {
	return p.nodes[id].kind == leafNode
}

// Symbol returns the symbol of a leaf node.  The second return value is
// false for internal nodes.
func (p *Pool) Symbol(id NodeID) (Symbol, bool) {
	n := &p.nodes[id]
	return n.symbol, n.kind == leafNode
}

// Freq returns the frequency of a node.
func (p *Pool) Freq(id NodeID) uint32 {
	return p.nodes[id].freq
}

// Left returns the left child of a node, or NoNode for leaves.
func (p *Pool) Left(id NodeID) NodeID {
	return p.nodes[id].left
}

// Right returns the right child of a node, or NoNode for leaves.
func (p *Pool) Right(id NodeID) NodeID {
	return p.nodes[id].right
}

// Len is the number of nodes allocated so far.
func (p *Pool) Len() int {
	return len(p.nodes)
}

// Cap is the maximum number of nodes this Pool can hold.
func (p *Pool) Cap() int {
	return cap(p.nodes)
}
