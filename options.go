package huffman

// Options configures tree reconstruction and decoding.
type Options struct {
	// AlphabetSize bounds the symbols that may appear in the frequency
	// table.  It sizes both the priority queue (AlphabetSize entries) and
	// the node pool (2*AlphabetSize - 1 entries).  Must be in 1 ..
	// MaxAlphabetSize; out-of-range values fall back to
	// DefaultAlphabetSize.
	AlphabetSize int

	// BufferSize is the size of the buffer placed in front of the output
	// sink.  Values <= 0 select the bufio default.
	BufferSize int
}

// DefaultOptions returns the options matching the classic 7-bit ASCII
// table format.
func DefaultOptions() Options {
	return Options{
		AlphabetSize: DefaultAlphabetSize,
		BufferSize:   4096,
	}
}

func (opts Options) alphabetSize() int {
	if opts.AlphabetSize < 1 || opts.AlphabetSize > MaxAlphabetSize {
		return DefaultAlphabetSize
	}
	return opts.AlphabetSize
}
