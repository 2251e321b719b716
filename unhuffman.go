package huffman

import (
	"bufio"
	"io"
)

// Stats summarises one call to Decompress.
type Stats struct {
	// Symbols is the number of symbols written to the output.
	Symbols int64

	// Bits is the number of payload bits consumed.
	Bits uint64

	// Garbage is true if the payload ended in the middle of a codeword.
	Garbage bool
}

// Decompress rebuilds the tree for table, parses the payload header, and
// writes every decoded symbol to out.
//
// Structural problems (ErrEmptyAlphabet, ErrQueueOverflow,
// ErrQueueUnderflow, ErrMalformedHeader) are detected before anything is
// written.  ErrTrailingGarbage is returned after all complete symbols have
// been written and flushed; use IsWarning to tell it apart.
//
func Decompress(table FrequencyTable, payload io.Reader, out io.Writer, opts Options) (Stats, error) {
	tree, err := BuildTree(table, opts)
	if err != nil {
		return Stats{}, err
	}
	return DecodePayload(tree, payload, out, opts)
}

// DecodePayload parses the payload header and writes every symbol decoded
// against an already-built tree to out.
func DecodePayload(tree *Tree, payload io.Reader, out io.Writer, opts Options) (Stats, error) {
	var stats Stats

	br, ok := payload.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(payload)
	}
	numBits, err := ReadHeader(br)
	if err != nil {
		return stats, err
	}

	var bw *bufio.Writer
	if opts.BufferSize > 0 {
		bw = bufio.NewWriterSize(out, opts.BufferSize)
	} else {
		bw = bufio.NewWriter(out)
	}

	d := NewDecoder(tree, br, numBits)
	stats.Symbols, err = d.WriteTo(bw)
	stats.Bits = d.Pos()
	stats.Garbage = IsWarning(err)
	return stats, err
}
