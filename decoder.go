package huffman

import (
	"bufio"
	"fmt"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Decoder walks a Tree bit by bit to recover the symbols of a packed
// payload.  Bits are consumed most significant first.
type Decoder struct {
	tree    *Tree
	br      *bitio.Reader
	numBits uint64
	pos     uint64
	cur     NodeID
	err     error
}

// NewDecoder returns a Decoder that reads numBits bits of packed payload from
// r and decodes them against tree.  The header must already have been
// consumed; see ReadHeader.
func NewDecoder(tree *Tree, r io.Reader, numBits uint64) *Decoder {
	return &Decoder{
		tree:    tree,
		br:      bitio.NewReader(r),
		numBits: numBits,
		cur:     tree.root,
	}
}

// ReadSymbol decodes the next symbol.
//
// Once the declared bits are exhausted, ReadSymbol returns io.EOF if the
// last codeword was complete, or ErrTrailingGarbage if the bits ran out in
// the middle of a codeword.  ErrTruncatedPayload is returned if the payload
// ends before the declared number of bits.  Errors are sticky.
//
func (d *Decoder) ReadSymbol() (Symbol, error) {
	if d.err != nil {
		return 0, d.err
	}

	pool := d.tree.pool
	for d.pos < d.numBits {
		bit, err := d.br.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				d.err = errors.Wrapf(ErrTruncatedPayload, "after %d of %d bits", d.pos, d.numBits)
			} else {
				d.err = errors.Wrapf(err, "failed to read bit %d", d.pos)
			}
			return 0, d.err
		}
		d.pos++

		// A leaf root has no children to walk: every bit is one symbol.
		if symbol, ok := pool.Symbol(d.cur); ok {
			return symbol, nil
		}

		if bit {
			d.cur = pool.Right(d.cur)
		} else {
			d.cur = pool.Left(d.cur)
		}

		if symbol, ok := pool.Symbol(d.cur); ok {
			d.cur = d.tree.root
			return symbol, nil
		}
	}

	if d.cur != d.tree.root {
		d.err = errors.Wrapf(ErrTrailingGarbage, "%d bits consumed, stopped at byte %d bit %d", d.pos, (d.pos-1)/8, (d.pos-1)%8)
	} else {
		d.err = io.EOF
	}
	return 0, d.err
}

// WriteTo decodes every remaining symbol and writes it to w.  Output is
// flushed even when decoding stops early, so that everything decoded before
// an ErrTrailingGarbage or ErrTruncatedPayload reaches w.
func (d *Decoder) WriteTo(w io.Writer) (int64, error) {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}

	var n int64
	for {
		symbol, err := d.ReadSymbol()
		if err != nil {
			flushErr := bw.Flush()
			if err == io.EOF {
				err = nil
			}
			if err == nil && flushErr != nil {
				err = errors.Wrap(flushErr, "failed to write output")
			}
			return n, err
		}
		if err := bw.WriteByte(byte(symbol)); err != nil {
			return n, errors.Wrap(err, "failed to write output")
		}
		n++
	}
}

// Pos returns the number of payload bits consumed so far.
func (d *Decoder) Pos() uint64 {
	return d.pos
}

// Remaining returns the number of declared bits not yet consumed.
func (d *Decoder) Remaining() uint64 {
	return d.numBits - d.pos
}

// String returns a brief description of the decoder's position.
func (d *Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder at bit %d of %d)", d.pos, d.numBits)
}

var _ io.WriterTo = (*Decoder)(nil)
