package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest codeword a Code can hold.
const maxBitsPerCode = 32

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size valid bits is the first bit, i.e. the first branch taken
	// from the root.
	Bits uint32
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint32) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one more bit.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "code longer than %d bits", maxBitsPerCode)
	hc.Bits <<= 1
	if bit {
		hc.Bits |= 1
	}
	hc.Size++
	return hc
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// CodeTable holds the codeword for each Symbol, indexed by symbol.  Symbols
// absent from the tree have a zero-sized Code.
type CodeTable []Code

// Codes derives the codeword of every leaf: a left branch appends a 0 bit and
// a right branch appends a 1 bit.  The single leaf of a degenerate tree gets
// the one-bit codeword "0", since every payload bit decodes to it.
func (t *Tree) Codes() CodeTable {
	var maxSymbol int
	for id := NodeID(0); int(id) < t.pool.Len(); id++ {
		if symbol, ok := t.pool.Symbol(id); ok && int(symbol) > maxSymbol {
			maxSymbol = int(symbol)
		}
	}
	codes := make(CodeTable, maxSymbol+1)

	if symbol, ok := t.pool.Symbol(t.root); ok {
		codes[symbol] = MakeCode(1, 0)
		return codes
	}

	// Walk the tree with an explicit stack.  The top item's x field
	// records how far along it we are:
	//   x=0 → We just arrived at this node for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		id   NodeID
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.NumSymbols())))

	processChild := func(id NodeID, code Code) {
		if symbol, ok := t.pool.Symbol(id); ok {
			codes[symbol] = code
			return
		}
		stack = append(stack, stackItem{id: id, code: code})
	}

	stack = append(stack, stackItem{id: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.pool.Left(top.id), top.code.Append(false))
		case 1:
			processChild(t.pool.Right(top.id), top.code.Append(true))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
	return codes
}

// Lookup returns the codeword for symbol.  The second return value is false
// if symbol is not part of the code.
func (codes CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if int(symbol) >= len(codes) || codes[symbol].Size == 0 {
		return Code{}, false
	}
	return codes[symbol], true
}

// MinSize is the bit length of the shortest codeword.
func (codes CodeTable) MinSize() byte {
	var minSize byte
	for _, hc := range codes {
		if hc.Size != 0 && (minSize == 0 || hc.Size < minSize) {
			minSize = hc.Size
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest codeword.
func (codes CodeTable) MaxSize() byte {
	var maxSize byte
	for _, hc := range codes {
		if hc.Size > maxSize {
			maxSize = hc.Size
		}
	}
	return maxSize
}

// SizeBySymbol returns the bit length of each Symbol's codeword.
func (codes CodeTable) SizeBySymbol() []byte {
	out := make([]byte, len(codes))
	for symbol, hc := range codes {
		out[symbol] = hc.Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the code table to the
// given writer.
func (codes CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", codes.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", codes.MaxSize())
	for symbol, hc := range codes {
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tCode(%v) = %s\n", Symbol(symbol), hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON renders the table as an object mapping each present symbol's
// decimal value to its codeword, e.g. {"65":"1","66":"00"}.
func (codes CodeTable) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(codes))
	for symbol, hc := range codes {
		if hc.Size == 0 {
			continue
		}
		out[strconv.Itoa(symbol)] = fmt.Sprintf("%0*b", int(hc.Size), hc.Bits)
	}
	return json.Marshal(out)
}
