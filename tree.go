package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Tree is a Huffman tree rebuilt from a FrequencyTable.  It is immutable once
// built.
type Tree struct {
	pool *Pool
	root NodeID
}

// builder bundles the state of one tree reconstruction.  A fresh builder is
// created for every call to BuildTree and is never shared.
type builder struct {
	table        FrequencyTable
	alphabetSize int
	pool         *Pool
	queue        *Queue
}

// BuildTree reconstructs the Huffman tree for the given frequency table.
//
// Leaves are queued in ascending symbol order.  Then, while more than one
// node is queued, the two lowest-frequency nodes a and b are removed (in
// that order) and replaced by a new internal node with left child a and
// right child b.  The last node standing is the root.
//
// A table with no positive counts yields ErrEmptyAlphabet.  A table with a
// single positive count yields a degenerate tree whose root is a leaf.
//
func BuildTree(table FrequencyTable, opts Options) (*Tree, error) {
	alphabetSize := opts.alphabetSize()
	pool := NewPool(alphabetSize)
	b := builder{
		table:        table,
		alphabetSize: alphabetSize,
		pool:         pool,
		queue:        NewQueue(pool, alphabetSize),
	}
	return b.build()
}

func (b *builder) build() (*Tree, error) {
	for index, freq := range b.table {
		if freq == 0 {
			continue
		}
		if index >= b.alphabetSize {
			return nil, errors.Wrapf(ErrQueueOverflow, "symbol %d outside alphabet of %d symbols", index, b.alphabetSize)
		}
		if err := b.queue.Insert(b.pool.NewLeaf(Symbol(index), uint32(freq))); err != nil {
			return nil, err
		}
	}

	if b.queue.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}

	for b.queue.Len() > 1 {
		x, err := b.queue.RemoveMin()
		if err != nil {
			return nil, err
		}
		y, err := b.queue.RemoveMin()
		if err != nil {
			return nil, err
		}
		if err := b.queue.Insert(b.pool.NewInternal(x, y)); err != nil {
			return nil, err
		}
	}

	root, err := b.queue.RemoveMin()
	if err != nil {
		return nil, err
	}
	return &Tree{pool: b.pool, root: root}, nil
}

// Root returns the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Pool returns the arena that owns this tree's nodes.
func (t *Tree) Pool() *Pool {
	return t.pool
}

// IsDegenerate returns true iff the root is a leaf, i.e. the alphabet holds
// exactly one symbol.
func (t *Tree) IsDegenerate() bool {
	return t.pool.IsLeaf(t.root)
}

// NumSymbols returns the number of leaves in the tree.
func (t *Tree) NumSymbols() int {
	return (t.pool.Len() + 1) / 2
}

// String returns a brief description of this Tree.
func (t *Tree) String() string {
	codes := t.Codes()
	return fmt.Sprintf("(Huffman tree with %d symbols, with coded lengths of %d .. %d bits)",
		t.NumSymbols(), codes.MinSize(), codes.MaxSize())
}

// Dump writes a programmer-readable debugging dump of the tree's shape to
// the given writer.  Each line is one node; children are indented below
// their parent, left before right.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	var walk func(id NodeID, depth int, prefix string)
	walk = func(id NodeID, depth int, prefix string) {
		for i := 0; i <= depth; i++ {
			buf.WriteByte('\t')
		}
		if symbol, ok := t.pool.Symbol(id); ok {
			fmt.Fprintf(&buf, "%sLeaf(%v, %d)\n", prefix, symbol, t.pool.Freq(id))
			return
		}
		fmt.Fprintf(&buf, "%sInternal(%d)\n", prefix, t.pool.Freq(id))
		walk(t.pool.Left(id), depth+1, "0: ")
		walk(t.pool.Right(id), depth+1, "1: ")
	}
	walk(t.root, 0, "")
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
