package huffman

import (
	"strconv"
)

// Symbol represents one decodable byte value.
type Symbol uint8

// DefaultAlphabetSize is the number of symbols in the default alphabet
// (7-bit ASCII).
const DefaultAlphabetSize = 128

// MaxAlphabetSize is the largest alphabet that a single-byte Symbol can
// address.
const MaxAlphabetSize = 256

// String returns a quoted character for printable symbols and a decimal
// number for everything else.
func (s Symbol) String() string {
	if s >= 0x20 && s < 0x7f {
		return strconv.QuoteRune(rune(s))
	}
	return strconv.FormatUint(uint64(s), 10)
}
